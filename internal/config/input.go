package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rgehrsitz/nestegg/internal/domain"
)

// InputParser handles parsing of plan files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// planFile is the multi-plan layout. Plans are kept as nodes so each one can be
// decoded on top of the default parameters.
type planFile struct {
	Plans []yaml.Node `yaml:"plans"`
}

// LoadFromFile loads a plan file and returns its first plan.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Plan, error) {
	plans, err := ip.LoadPlans(filename)
	if err != nil {
		return nil, err
	}
	return &plans[0], nil
}

// LoadPlans loads every plan in a YAML file. The file holds either a single plan
// or a list under "plans".
func (ip *InputParser) LoadPlans(filename string) ([]domain.Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates plan YAML. Fields missing from a plan take the
// default parameter values.
func (ip *InputParser) Parse(data []byte) ([]domain.Plan, error) {
	var file planFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	var plans []domain.Plan
	if len(file.Plans) == 0 {
		plan := ip.defaultPlan()
		if err := yaml.Unmarshal(data, &plan); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		plans = append(plans, plan)
	} else {
		for i := range file.Plans {
			plan := ip.defaultPlan()
			if err := file.Plans[i].Decode(&plan); err != nil {
				return nil, fmt.Errorf("failed to parse plan %d: %w", i, err)
			}
			plans = append(plans, plan)
		}
	}

	if err := ip.ValidatePlans(plans); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return plans, nil
}

// ValidatePlans checks every plan's parameters and that names are unique.
func (ip *InputParser) ValidatePlans(plans []domain.Plan) error {
	if len(plans) == 0 {
		return fmt.Errorf("no plans provided")
	}
	seen := make(map[string]bool, len(plans))
	for i := range plans {
		if plans[i].Name == "" {
			plans[i].Name = fmt.Sprintf("Plan %d", i+1)
		}
		if seen[plans[i].Name] {
			return fmt.Errorf("duplicate plan name %q", plans[i].Name)
		}
		seen[plans[i].Name] = true

		if err := plans[i].Validate(); err != nil {
			return fmt.Errorf("plan %d (%s) validation failed: %w", i, plans[i].Name, err)
		}
	}
	return nil
}

func (ip *InputParser) defaultPlan() domain.Plan {
	return domain.Plan{InputParameters: domain.DefaultInputParameters()}
}
