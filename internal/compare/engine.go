package compare

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/nestegg/internal/calculation"
	"github.com/rgehrsitz/nestegg/internal/domain"
	"github.com/rgehrsitz/nestegg/internal/transform"
)

// CompareEngine orchestrates plan comparison
type CompareEngine struct {
	Projector         calculation.Projector
	MetricsCalculator *MetricsCalculator
	TemplateRegistry  *transform.TemplateRegistry
}

// NewCompareEngine creates a new comparison engine with the built-in templates
func NewCompareEngine(projector calculation.Projector) *CompareEngine {
	if projector == nil {
		projector = calculation.NewProjectionEngine()
	}
	return &CompareEngine{
		Projector:         projector,
		MetricsCalculator: NewMetricsCalculator(),
		TemplateRegistry:  transform.CreateBuiltInTemplates(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	Templates []string // List of template names to apply to the base plan
}

// Compare projects base and one variant of it per template
func (ce *CompareEngine) Compare(ctx context.Context, base domain.Plan, options CompareOptions) (*ComparisonSet, error) {
	baseResult, err := ce.project(ctx, base.Name, base.InputParameters)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base plan: %w", err)
	}
	baseResult.Description = base.Description

	alternatives := []ComparisonResult{}

	for _, templateName := range options.Templates {
		template, ok := ce.TemplateRegistry.Get(templateName)
		if !ok {
			return nil, fmt.Errorf("template %s not found", templateName)
		}

		params, err := template.Apply(base.InputParameters)
		if err != nil {
			return nil, fmt.Errorf("failed to apply template %s: %w", templateName, err)
		}

		altResult, err := ce.project(ctx, base.Name+"_"+template.Name, params)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate plan %s: %w", templateName, err)
		}
		altResult.Description = template.Description
		alternatives = append(alternatives, ce.MetricsCalculator.CalculateComparison(altResult, baseResult))
	}

	return ce.newSet(base.Name, baseResult, alternatives), nil
}

// ComparePlans compares explicit plans; the first is the base
func (ce *CompareEngine) ComparePlans(ctx context.Context, plans []domain.Plan) (*ComparisonSet, error) {
	if len(plans) == 0 {
		return nil, fmt.Errorf("no plans to compare")
	}

	baseResult, err := ce.project(ctx, plans[0].Name, plans[0].InputParameters)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base plan: %w", err)
	}
	baseResult.Description = plans[0].Description

	alternatives := []ComparisonResult{}
	for _, plan := range plans[1:] {
		altResult, err := ce.project(ctx, plan.Name, plan.InputParameters)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate plan %s: %w", plan.Name, err)
		}
		altResult.Description = plan.Description
		alternatives = append(alternatives, ce.MetricsCalculator.CalculateComparison(altResult, baseResult))
	}

	return ce.newSet(plans[0].Name, baseResult, alternatives), nil
}

func (ce *CompareEngine) project(ctx context.Context, name string, params domain.InputParameters) (ComparisonResult, error) {
	if err := ctx.Err(); err != nil {
		return ComparisonResult{}, err
	}
	result, err := ce.Projector.Project(params)
	if err != nil {
		return ComparisonResult{}, err
	}
	return ce.MetricsCalculator.CalculateMetrics(name, result), nil
}

func (ce *CompareEngine) newSet(baseName string, base ComparisonResult, alternatives []ComparisonResult) *ComparisonSet {
	compSet := &ComparisonSet{
		BaseScenarioName:   baseName,
		BaseResult:         &base,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)
	return compSet
}
