package output

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/rgehrsitz/nestegg/internal/domain"
)

const (
	pdfMargin    = 12.0
	pdfRowHeight = 6.0
)

// PDFExporter writes a landscape report with a summary block followed by the table.
// Money is formatted with Currency, or the default formatter when nil.
type PDFExporter struct {
	Currency *CurrencyFormatter
}

func (PDFExporter) Name() string        { return "pdf" }
func (PDFExporter) ContentType() string { return "application/pdf" }

func (pe PDFExporter) Export(w io.Writer, table *Table, result *domain.ProjectionResult) error {
	cf := pe.Currency
	if cf == nil {
		cf = DefaultCurrencyFormatter()
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, pageH := pdf.GetPageSize()
	contentWidth := pageW - 2*pdfMargin

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(contentWidth, 10, tr(table.Title), "", 1, "L", false, 0, "")

	if result != nil {
		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(50, 50, 50)
		for _, line := range summaryLines(result, cf) {
			pdf.CellFormat(60, 5, tr(line[0]), "", 0, "L", false, 0, "")
			pdf.CellFormat(contentWidth-60, 5, tr(line[1]), "", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}

	colWidth := contentWidth / float64(len(table.Headers))
	header := func() {
		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(0, 51, 102)
		pdf.SetTextColor(255, 255, 255)
		for _, h := range table.Headers {
			pdf.CellFormat(colWidth, pdfRowHeight+1, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(50, 50, 50)
	}
	header()

	for i, row := range table.Rows {
		if pdf.GetY()+pdfRowHeight > pageH-pdfMargin {
			pdf.AddPage()
			header()
		}
		fill := i%2 == 1
		pdf.SetFillColor(245, 247, 250)
		for _, c := range row {
			text := c.String()
			if c.Kind == MoneyCell {
				text = cf.FormatDecimal(c.Money, false)
			}
			pdf.CellFormat(colWidth, pdfRowHeight, tr(text), "LR", 0, "R", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	return pdf.Output(w)
}

// summaryLines lists the headline figures of a projection as label/value pairs.
func summaryLines(r *domain.ProjectionResult, cf *CurrencyFormatter) [][2]string {
	p := r.Parameters
	money := func(nominal, today float64) string {
		return fmt.Sprintf("%s (today: %s)", cf.Format(nominal, false), cf.Format(today, false))
	}
	return [][2]string{
		{"Plan", fmt.Sprintf("%d years at %.1f%% return, %.1f%% inflation, %d years of retirement",
			p.Years, p.AnnualReturnPct, p.InflationPct, p.RetirementYears)},
		{"Final portfolio", money(r.FinalPortfolio.InexactFloat64(), r.FinalPortfolioDeflated.InexactFloat64())},
		{"Safe monthly withdrawal", money(r.SafeWithdrawalMonthly.InexactFloat64(), r.SafeWithdrawalMonthlyDeflated.InexactFloat64())},
		{"Total contributed", money(r.TotalContributions.InexactFloat64(), r.TotalContributionsDeflated.InexactFloat64())},
		{"Required contribution", cf.Format(r.NeededMonthly.InexactFloat64(), false) + " per month"},
	}
}
