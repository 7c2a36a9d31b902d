package output

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/rgehrsitz/nestegg/internal/domain"
)

// XLSXSheetName is the worksheet that holds exported series.
const XLSXSheetName = "Data"

// minColumnWidth is the narrowest exported column, in characters.
const minColumnWidth = 14

// XLSXExporter writes a single-sheet workbook. Numbers are stored as numbers so the
// sheet can be recalculated.
type XLSXExporter struct{}

func (XLSXExporter) Name() string { return "xlsx" }

func (XLSXExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (XLSXExporter) Export(w io.Writer, table *Table, _ *domain.ProjectionResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), XLSXSheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	// Built-in number format 3 is "#,##0".
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 3})
	if err != nil {
		return err
	}

	for col, header := range table.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(XLSXSheetName, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(XLSXSheetName, cell, cell, headerStyle); err != nil {
			return err
		}

		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(XLSXSheetName, name, name, columnWidth(header)); err != nil {
			return err
		}
	}

	for r, row := range table.Rows {
		for col, c := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, r+2)
			if err != nil {
				return err
			}
			if c.Kind == IntCell {
				err = f.SetCellInt(XLSXSheetName, cell, c.Int)
			} else {
				// Money can exceed int64; spreadsheets hold numbers as doubles anyway.
				err = f.SetCellFloat(XLSXSheetName, cell, c.Money.InexactFloat64(), 0, 64)
				if err == nil {
					err = f.SetCellStyle(XLSXSheetName, cell, cell, moneyStyle)
				}
			}
			if err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}

// columnWidth sizes a column to its header with a floor of minColumnWidth.
func columnWidth(header string) float64 {
	return float64(max(len(header)+2, minColumnWidth))
}
