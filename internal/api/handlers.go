package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/rgehrsitz/nestegg/internal/calculation"
	"github.com/rgehrsitz/nestegg/internal/compare"
	"github.com/rgehrsitz/nestegg/internal/domain"
	"github.com/rgehrsitz/nestegg/internal/output"
)

const maxBodyBytes = 1 << 20

// Handler serves the projection endpoints.
type Handler struct {
	projector calculation.Projector
	compare   *compare.CompareEngine
}

// NewHandler creates a handler. Comparisons run through the same projector.
func NewHandler(projector calculation.Projector) *Handler {
	if projector == nil {
		projector = calculation.NewProjectionEngine()
	}
	return &Handler{
		projector: projector,
		compare:   compare.NewCompareEngine(projector),
	}
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Project handles POST /api/v1/projection.
func (h *Handler) Project(w http.ResponseWriter, r *http.Request) {
	params, ok := decodeParameters(w, r)
	if !ok {
		return
	}

	result, err := h.projector.Project(params)
	if err != nil {
		writeProjectionError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Export handles POST /api/v1/projection/export and returns one series as a file.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	phase, err := domain.ParsePhase(query.Get("phase"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid phase", err)
		return
	}
	granularity, err := domain.ParseGranularity(query.Get("granularity"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid granularity", err)
		return
	}
	format := query.Get("format")
	if format == "" {
		format = "xlsx"
	}
	exporter := output.GetExporterByName(format)
	if exporter == nil {
		writeError(w, http.StatusBadRequest, "Invalid format",
			fmt.Errorf("unsupported export format %q", format))
		return
	}

	params, ok := decodeParameters(w, r)
	if !ok {
		return
	}
	result, err := h.projector.Project(params)
	if err != nil {
		writeProjectionError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := output.ExportSeries(&buf, result, phase, granularity, exporter.Name()); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("export failed")
		writeError(w, http.StatusInternalServerError, "Failed to export projection", err)
		return
	}

	filename := output.ExportFileName(phase, granularity, exporter.Name())
	w.Header().Set("Content-Type", exporter.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// ListTemplates handles GET /api/v1/templates.
func (h *Handler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	templates := h.compare.TemplateRegistry.Templates()
	resp := make([]TemplateResponse, 0, len(templates))
	for _, t := range templates {
		transforms := make([]string, 0, len(t.Transforms))
		for _, tr := range t.Transforms {
			transforms = append(transforms, tr.Description())
		}
		resp = append(resp, TemplateResponse{
			Name:        t.Name,
			Description: t.Description,
			Transforms:  transforms,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Compare handles POST /api/v1/compare.
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	req := CompareRequest{
		Name:       "base",
		Parameters: domain.DefaultInputParameters(),
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if len(req.Templates) == 0 {
		writeError(w, http.StatusBadRequest, "Invalid request", errors.New("at least one template is required"))
		return
	}
	for _, name := range req.Templates {
		if _, ok := h.compare.TemplateRegistry.Get(name); !ok {
			writeError(w, http.StatusBadRequest, "Unknown template", fmt.Errorf("template %s not found", name))
			return
		}
	}

	plan := domain.Plan{Name: req.Name, InputParameters: req.Parameters}
	set, err := h.compare.Compare(r.Context(), plan, compare.CompareOptions{Templates: req.Templates})
	if err != nil {
		writeProjectionError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, set)
}

// decodeParameters reads InputParameters from the body on top of the defaults.
func decodeParameters(w http.ResponseWriter, r *http.Request) (domain.InputParameters, bool) {
	params := domain.DefaultInputParameters()
	if !decodeBody(w, r, &params) {
		return params, false
	}
	return params, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return false
	}
	return true
}

// writeProjectionError maps engine errors to a status. Invalid or overflowing
// inputs are the client's fault.
func writeProjectionError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidParameters):
		writeError(w, http.StatusBadRequest, "Invalid parameters", err)
	case errors.Is(err, calculation.ErrNonFinite):
		writeError(w, http.StatusBadRequest, "Parameters out of range", err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, "Request cancelled", err)
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("projection failed")
		writeError(w, http.StatusInternalServerError, "Projection failed", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
