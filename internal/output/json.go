package output

import (
	"encoding/json"

	"github.com/rgehrsitz/nestegg/internal/domain"
)

// JSONFormatter emits the full projection, both granularities included.
type JSONFormatter struct {
	Pretty bool
}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(r *domain.ProjectionResult) ([]byte, error) {
	if j.Pretty {
		return json.MarshalIndent(r, "", "  ")
	}
	return json.Marshal(r)
}
