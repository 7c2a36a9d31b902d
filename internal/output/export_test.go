package output

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/rgehrsitz/nestegg/internal/calculation"
	"github.com/rgehrsitz/nestegg/internal/domain"
)

func TestGetExporterByName(t *testing.T) {
	assert.Equal(t, "csv", GetExporterByName("CSV").Name())
	assert.Equal(t, "xlsx", GetExporterByName("excel").Name())
	assert.Equal(t, "pdf", GetExporterByName(" pdf ").Name())
	assert.Nil(t, GetExporterByName("docx"))
	assert.Equal(t, []string{"csv", "pdf", "xlsx"}, AvailableExporterNames())
}

func TestExportSeries_CSV(t *testing.T) {
	result := buildTestProjection(t)

	var buf bytes.Buffer
	require.NoError(t, ExportSeries(&buf, result, domain.PhaseAccumulation, domain.GranularityYearly, "csv"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Year,Period Contribution,Period Return,Total Contributed,Accumulated Gains,Portfolio,Portfolio (today)", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "1,12000,"), lines[1])
}

func TestExportSeries_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := ExportSeries(&buf, buildTestProjection(t), domain.PhaseAccumulation, domain.GranularityYearly, "docx")
	assert.ErrorContains(t, err, "unsupported export format")
}

func TestExportSeries_XLSX(t *testing.T) {
	result := buildTestProjection(t)

	var buf bytes.Buffer
	require.NoError(t, ExportSeries(&buf, result, domain.PhaseRetirement, domain.GranularityYearly, "xlsx"))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{XLSXSheetName}, f.GetSheetList())

	header, err := f.GetCellValue(XLSXSheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Year", header)

	year, err := f.GetCellValue(XLSXSheetName, "A3")
	require.NoError(t, err)
	assert.Equal(t, "2", year)

	rows, err := f.GetRows(XLSXSheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	width, err := f.GetColWidth(XLSXSheetName, "A")
	require.NoError(t, err)
	assert.Equal(t, 14.0, width, "short headers get the minimum width")

	width, err = f.GetColWidth(XLSXSheetName, "B")
	require.NoError(t, err)
	assert.Equal(t, float64(len("Period Withdrawal")+2), width)
}

func TestExportSeries_XLSXLargeAmounts(t *testing.T) {
	params := domain.DefaultInputParameters()
	params.Years = 45
	params.AnnualReturnPct = 200

	result, err := calculation.NewProjectionEngine().Project(params)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ExportSeries(&buf, result, domain.PhaseAccumulation, domain.GranularityYearly, "xlsx"))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	// Row 46 is year 45, column F the nominal portfolio.
	raw, err := f.GetCellValue(XLSXSheetName, "F46", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	stored, err := strconv.ParseFloat(raw, 64)
	require.NoError(t, err)

	want := result.FinalPortfolio.InexactFloat64()
	assert.Greater(t, want, 9.3e18, "amount must exceed int64")
	assert.InEpsilon(t, want, stored, 1e-9)

	text := DefaultCurrencyFormatter().FormatDecimal(result.FinalPortfolio, false)
	assert.False(t, strings.HasPrefix(text, "-"), text)
}

func TestExportSeries_PDF(t *testing.T) {
	result := buildTestProjection(t)

	var buf bytes.Buffer
	require.NoError(t, ExportSeries(&buf, result, domain.PhaseAccumulation, domain.GranularityMonthly, "pdf"))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestColumnWidth(t *testing.T) {
	assert.Equal(t, 14.0, columnWidth("Year"))
	assert.Equal(t, 21.0, columnWidth("Period Contribution"))
}
