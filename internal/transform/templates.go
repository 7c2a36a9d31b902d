package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/nestegg/internal/domain"
)

// TemplateRegistry manages built-in what-if templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template represents a named collection of transforms
type Template struct {
	Name        string
	Description string
	Transforms  []PlanTransform
}

// Apply runs the template's transforms against base.
func (t Template) Apply(base domain.InputParameters) (domain.InputParameters, error) {
	params, err := ApplyTransforms(base, t.Transforms)
	if err != nil {
		return base, fmt.Errorf("template %s: %w", t.Name, err)
	}
	return params, nil
}

// NewTemplateRegistry creates an empty template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// List returns all registered template names, sorted
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Templates returns all registered templates ordered by name
func (tr *TemplateRegistry) Templates() []Template {
	names := tr.List()
	out := make([]Template, 0, len(names))
	for _, name := range names {
		out = append(out, tr.templates[name])
	}
	return out
}

// CreateBuiltInTemplates creates a template registry with common what-if plans
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	// Horizon templates
	registry.Register(Template{
		Name:        "work_5yr_longer",
		Description: "Keep contributing for 5 more years before retiring",
		Transforms:  []PlanTransform{&ExtendAccumulation{Years: 5}},
	})

	registry.Register(Template{
		Name:        "retire_5yr_earlier",
		Description: "Stop contributing and retire 5 years earlier",
		Transforms:  []PlanTransform{&ExtendAccumulation{Years: -5}},
	})

	registry.Register(Template{
		Name:        "long_retirement",
		Description: "Fund a retirement 10 years longer",
		Transforms:  []PlanTransform{&ExtendRetirement{Years: 10}},
	})

	// Market templates
	registry.Register(Template{
		Name:        "conservative",
		Description: "Annual return 3 percentage points lower",
		Transforms:  []PlanTransform{&AdjustReturn{DeltaPct: -3}},
	})

	registry.Register(Template{
		Name:        "aggressive",
		Description: "Annual return 2 percentage points higher",
		Transforms:  []PlanTransform{&AdjustReturn{DeltaPct: 2}},
	})

	registry.Register(Template{
		Name:        "high_inflation",
		Description: "Inflation 3 percentage points higher",
		Transforms:  []PlanTransform{&AdjustInflation{DeltaPct: 3}},
	})

	// Contribution templates
	registry.Register(Template{
		Name:        "double_contribution",
		Description: "Contribute twice as much every month",
		Transforms:  []PlanTransform{&ScaleContribution{Factor: 2}},
	})

	registry.Register(Template{
		Name:        "flat_contribution",
		Description: "Never raise contributions with inflation",
		Transforms:  []PlanTransform{&SetInflationAdjustment{Enabled: false}},
	})

	return registry
}
