package compare

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestSet(t *testing.T) *ComparisonSet {
	t.Helper()
	set, err := NewCompareEngine(nil).Compare(context.Background(), basePlan(), CompareOptions{
		Templates: []string{"aggressive", "high_inflation"},
	})
	require.NoError(t, err)
	set.ConfigPath = "plan.yaml"
	return set
}

func TestTableFormatter_Format(t *testing.T) {
	out := (&TableFormatter{}).Format(buildTestSet(t))

	assert.Contains(t, out, "RETIREMENT PLAN COMPARISON")
	assert.Contains(t, out, "Base Plan: Base")
	assert.Contains(t, out, "Configuration: plan.yaml")
	assert.Contains(t, out, "Base (base)")
	assert.Contains(t, out, "Base_aggressive")
	assert.Contains(t, out, "COMPARISON TO BASE")
	assert.Contains(t, out, "R$")
}

func TestTableFormatter_FormatCompact(t *testing.T) {
	out := (&TableFormatter{}).FormatCompact(buildTestSet(t))

	assert.True(t, strings.HasPrefix(out, "Base: Base | "))
	assert.Contains(t, out, "Base_aggressive: +R$")
	assert.Contains(t, out, " | Base_high_inflation: ")
}

func TestTableFormatter_Truncate(t *testing.T) {
	tf := &TableFormatter{}
	assert.Equal(t, "short", tf.truncate("short", 10))
	assert.Equal(t, "a very ...", tf.truncate("a very long plan name", 10))
}

func TestCSVFormatter_Format(t *testing.T) {
	out, err := (&CSVFormatter{}).Format(buildTestSet(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "Plan,Type,Final Portfolio"))
	assert.True(t, strings.HasPrefix(lines[1], "Base,base,"))
	assert.True(t, strings.HasPrefix(lines[2], "Base_aggressive,alternative,"))
}

func TestJSONFormatter_Format(t *testing.T) {
	set := buildTestSet(t)

	for _, pretty := range []bool{true, false} {
		out, err := (&JSONFormatter{Pretty: pretty}).Format(set)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		assert.Equal(t, "Base", decoded["baseScenarioName"])
		assert.Len(t, decoded["alternativeResults"], 2)
		assert.False(t, strings.HasSuffix(out, "\n"))
	}
}
