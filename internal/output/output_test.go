package output

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/nestegg/internal/calculation"
	"github.com/rgehrsitz/nestegg/internal/domain"
)

// buildTestProjection runs a short plan so tables stay small.
func buildTestProjection(t *testing.T) *domain.ProjectionResult {
	t.Helper()
	params := domain.DefaultInputParameters()
	params.Years = 3
	params.RetirementYears = 2

	result, err := calculation.NewProjectionEngine().Project(params)
	require.NoError(t, err)
	return result
}
