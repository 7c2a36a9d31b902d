package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rgehrsitz/nestegg/internal/domain"
)

// Exporter writes a series table as a downloadable file.
type Exporter interface {
	// Name returns the format identifier, which is also the file extension.
	Name() string
	ContentType() string
	Export(w io.Writer, table *Table, result *domain.ProjectionResult) error
}

var builtInExporters = []Exporter{
	CSVExporter{},
	XLSXExporter{},
	PDFExporter{},
}

// GetExporterByName returns the exporter for a format name, or nil.
func GetExporterByName(name string) Exporter {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "excel" {
		n = "xlsx"
	}
	for _, e := range builtInExporters {
		if e.Name() == n {
			return e
		}
	}
	return nil
}

// AvailableExporterNames returns the supported export formats.
func AvailableExporterNames() []string {
	names := make([]string, 0, len(builtInExporters))
	for _, e := range builtInExporters {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// ExportSeries tabulates one series of result and writes it with the named exporter.
func ExportSeries(w io.Writer, result *domain.ProjectionResult, phase domain.Phase, granularity domain.Granularity, format string) error {
	exporter := GetExporterByName(format)
	if exporter == nil {
		return fmt.Errorf("unsupported export format %q (valid: %s)", format, strings.Join(AvailableExporterNames(), ", "))
	}
	table, err := SeriesTable(result, phase, granularity)
	if err != nil {
		return err
	}
	if err := exporter.Export(w, table, result); err != nil {
		return fmt.Errorf("%s export failed: %w", exporter.Name(), err)
	}
	return nil
}

// CSVExporter writes plain numbers with a header row.
type CSVExporter struct{}

func (CSVExporter) Name() string        { return "csv" }
func (CSVExporter) ContentType() string { return "text/csv" }

func (CSVExporter) Export(w io.Writer, table *Table, _ *domain.ProjectionResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(table.Headers); err != nil {
		return err
	}
	for _, row := range table.Rows {
		record := make([]string, len(row))
		for i, c := range row {
			record[i] = c.String()
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
