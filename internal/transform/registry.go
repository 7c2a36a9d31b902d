package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// TransformRegistry provides a central registry for all available transforms.
// It enables creation of transforms from string parameters, useful for CLI commands.
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory is a function that creates a transform from parameters.
type TransformFactory func(params map[string]string) (PlanTransform, error)

// NewTransformRegistry creates a new registry with all built-in transforms registered.
func NewTransformRegistry() *TransformRegistry {
	registry := &TransformRegistry{
		factories: make(map[string]TransformFactory),
	}

	registry.Register("extend_accumulation", createExtendAccumulation)
	registry.Register("extend_retirement", createExtendRetirement)
	registry.Register("set_return", createSetReturn)
	registry.Register("adjust_return", createAdjustReturn)
	registry.Register("set_inflation", createSetInflation)
	registry.Register("adjust_inflation", createAdjustInflation)
	registry.Register("scale_contribution", createScaleContribution)
	registry.Register("set_contribution", createSetContribution)
	registry.Register("set_inflation_adjustment", createSetInflationAdjustment)
	registry.Register("set_target_income", createSetTargetIncome)

	return registry
}

// Register adds a transform factory to the registry.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters.
func (r *TransformRegistry) Create(name string, params map[string]string) (PlanTransform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}

	return factory(params)
}

// List returns the names of all registered transforms, sorted.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec parses a transform specification string.
// Format: "transform_name:param1=value1,param2=value2"
// Example: "extend_accumulation:years=5"
func (r *TransformRegistry) ParseTransformSpec(spec string) (PlanTransform, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name:params', got: %s", spec)
	}

	name := strings.TrimSpace(parts[0])
	paramsStr := strings.TrimSpace(parts[1])

	params := make(map[string]string)
	if paramsStr != "" {
		for _, paramPair := range strings.Split(paramsStr, ",") {
			kv := strings.SplitN(paramPair, "=", 2)
			if len(kv) != 2 {
				return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", paramPair)
			}
			params[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	return r.Create(name, params)
}

func intParam(transform, key string, params map[string]string) (int, error) {
	s, ok := params[key]
	if !ok {
		return 0, fmt.Errorf("%s requires '%s' parameter", transform, key)
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

func floatParam(transform, key string, params map[string]string) (float64, error) {
	s, ok := params[key]
	if !ok {
		return 0, fmt.Errorf("%s requires '%s' parameter", transform, key)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

// Factory functions for each transform

func createExtendAccumulation(params map[string]string) (PlanTransform, error) {
	years, err := intParam("extend_accumulation", "years", params)
	if err != nil {
		return nil, err
	}
	return &ExtendAccumulation{Years: years}, nil
}

func createExtendRetirement(params map[string]string) (PlanTransform, error) {
	years, err := intParam("extend_retirement", "years", params)
	if err != nil {
		return nil, err
	}
	return &ExtendRetirement{Years: years}, nil
}

func createSetReturn(params map[string]string) (PlanTransform, error) {
	pct, err := floatParam("set_return", "pct", params)
	if err != nil {
		return nil, err
	}
	return &SetReturn{Pct: pct}, nil
}

func createAdjustReturn(params map[string]string) (PlanTransform, error) {
	delta, err := floatParam("adjust_return", "delta", params)
	if err != nil {
		return nil, err
	}
	return &AdjustReturn{DeltaPct: delta}, nil
}

func createSetInflation(params map[string]string) (PlanTransform, error) {
	pct, err := floatParam("set_inflation", "pct", params)
	if err != nil {
		return nil, err
	}
	return &SetInflation{Pct: pct}, nil
}

func createAdjustInflation(params map[string]string) (PlanTransform, error) {
	delta, err := floatParam("adjust_inflation", "delta", params)
	if err != nil {
		return nil, err
	}
	return &AdjustInflation{DeltaPct: delta}, nil
}

func createScaleContribution(params map[string]string) (PlanTransform, error) {
	factor, err := floatParam("scale_contribution", "factor", params)
	if err != nil {
		return nil, err
	}
	return &ScaleContribution{Factor: factor}, nil
}

func createSetContribution(params map[string]string) (PlanTransform, error) {
	amount, err := floatParam("set_contribution", "amount", params)
	if err != nil {
		return nil, err
	}
	return &SetContribution{Amount: amount}, nil
}

func createSetInflationAdjustment(params map[string]string) (PlanTransform, error) {
	s, ok := params["enabled"]
	if !ok {
		return nil, fmt.Errorf("set_inflation_adjustment requires 'enabled' parameter")
	}
	enabled, err := strconv.ParseBool(s)
	if err != nil {
		return nil, fmt.Errorf("invalid enabled value: %w", err)
	}
	return &SetInflationAdjustment{Enabled: enabled}, nil
}

func createSetTargetIncome(params map[string]string) (PlanTransform, error) {
	amount, err := floatParam("set_target_income", "amount", params)
	if err != nil {
		return nil, err
	}
	return &SetTargetIncome{Amount: amount}, nil
}
