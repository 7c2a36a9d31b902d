package output

import (
	"bytes"

	"github.com/rgehrsitz/nestegg/internal/domain"
)

// CSVFormatter writes both series of a projection as CSV, accumulation first, with a
// blank line between them.
type CSVFormatter struct {
	Granularity domain.Granularity
}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(r *domain.ProjectionResult) ([]byte, error) {
	var buf bytes.Buffer
	for i, phase := range []domain.Phase{domain.PhaseAccumulation, domain.PhaseRetirement} {
		if i > 0 {
			buf.WriteByte('\n')
		}
		t, err := SeriesTable(r, phase, c.Granularity)
		if err != nil {
			return nil, err
		}
		if err := (CSVExporter{}).Export(&buf, t, r); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
