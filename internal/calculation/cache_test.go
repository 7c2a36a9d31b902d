package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedEngine(t *testing.T) {
	cached, err := NewCachedEngine(nil, 2)
	require.NoError(t, err)

	first, err := cached.Project(baseParams())
	require.NoError(t, err)
	second, err := cached.Project(baseParams())
	require.NoError(t, err)

	assert.Same(t, first, second, "second call should hit the cache")
	assert.Equal(t, 1, cached.Len())

	other := baseParams()
	other.Years = 20
	_, err = cached.Project(other)
	require.NoError(t, err)
	assert.Equal(t, 2, cached.Len())

	third := baseParams()
	third.Years = 10
	_, err = cached.Project(third)
	require.NoError(t, err)
	assert.Equal(t, 2, cached.Len(), "capacity is bounded")

	cached.Purge()
	assert.Equal(t, 0, cached.Len())
}

func TestCachedEngine_ErrorsAreNotCached(t *testing.T) {
	cached, err := NewCachedEngine(NewProjectionEngine(), 0)
	require.NoError(t, err)

	bad := baseParams()
	bad.Years = 0
	_, err = cached.Project(bad)
	assert.Error(t, err)
	assert.Equal(t, 0, cached.Len())
}
