package calculation

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/rgehrsitz/nestegg/internal/domain"
)

// DefaultCacheSize is the number of projections kept by NewCachedEngine when size <= 0.
const DefaultCacheSize = 128

// CachedEngine memoizes projections by their input parameters. It is safe for
// concurrent use. Cached results are shared and must not be modified by callers.
type CachedEngine struct {
	engine *ProjectionEngine
	cache  *lru.Cache[domain.InputParameters, *domain.ProjectionResult]
}

// NewCachedEngine wraps engine with an LRU cache holding up to size results.
func NewCachedEngine(engine *ProjectionEngine, size int) (*CachedEngine, error) {
	if engine == nil {
		engine = NewProjectionEngine()
	}
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[domain.InputParameters, *domain.ProjectionResult](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create projection cache: %w", err)
	}
	return &CachedEngine{engine: engine, cache: cache}, nil
}

// Project returns the cached projection for params, computing it on a miss.
// Failed projections are not cached.
func (ce *CachedEngine) Project(params domain.InputParameters) (*domain.ProjectionResult, error) {
	if result, ok := ce.cache.Get(params); ok {
		return result, nil
	}
	result, err := ce.engine.Project(params)
	if err != nil {
		return nil, err
	}
	ce.cache.Add(params, result)
	return result, nil
}

// Len returns the number of cached projections.
func (ce *CachedEngine) Len() int {
	return ce.cache.Len()
}

// Purge drops every cached projection.
func (ce *CachedEngine) Purge() {
	ce.cache.Purge()
}
