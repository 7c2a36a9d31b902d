package api

import (
	"github.com/rgehrsitz/nestegg/internal/domain"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// HealthResponse is returned by the health check.
type HealthResponse struct {
	Status string `json:"status"`
}

// TemplateResponse describes one built-in what-if template.
type TemplateResponse struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Transforms  []string `json:"transforms"`
}

// CompareRequest asks for the base plan projected next to one variant per template.
// Omitted parameters take the calculator defaults.
type CompareRequest struct {
	Name       string                 `json:"name"`
	Parameters domain.InputParameters `json:"parameters"`
	Templates  []string               `json:"templates"`
}
