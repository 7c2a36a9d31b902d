package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rgehrsitz/nestegg/internal/config"
	"github.com/rgehrsitz/nestegg/internal/domain"
	"github.com/rgehrsitz/nestegg/internal/transform"
)

// addParamFlags registers one flag per projection parameter. Flags override the plan file.
func addParamFlags(fs *pflag.FlagSet) {
	d := domain.DefaultInputParameters()
	fs.Int("years", d.Years, "Years of accumulation")
	fs.Float64("return", d.AnnualReturnPct, "Expected annual return in percent")
	fs.Float64("contribution", d.MonthlyContribution, "Monthly contribution in the first year")
	fs.Float64("inflation", d.InflationPct, "Expected annual inflation in percent")
	fs.Int("retirement-years", d.RetirementYears, "Years of retirement")
	fs.Float64("target-income", d.TargetMonthlyIncomeToday, "Target monthly income in today's money")
	fs.Bool("adjust-inflation", d.AdjustContributionForInflation, "Raise the contribution with inflation every year")
	fs.StringArray("apply", nil, "Transform to apply, e.g. set_return:pct=8 (repeatable)")
}

// resolvePlan loads the plan named by args (or the defaults), then applies changed
// parameter flags and --apply transforms.
func resolvePlan(cmd *cobra.Command, args []string) (domain.Plan, error) {
	plan := domain.Plan{Name: "Plan", InputParameters: domain.DefaultInputParameters()}
	if len(args) > 0 {
		loaded, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return plan, err
		}
		plan = *loaded
	}

	fs := cmd.Flags()
	p := &plan.InputParameters
	var err error
	if fs.Changed("years") {
		p.Years, err = fs.GetInt("years")
	}
	if err == nil && fs.Changed("return") {
		p.AnnualReturnPct, err = fs.GetFloat64("return")
	}
	if err == nil && fs.Changed("contribution") {
		p.MonthlyContribution, err = fs.GetFloat64("contribution")
	}
	if err == nil && fs.Changed("inflation") {
		p.InflationPct, err = fs.GetFloat64("inflation")
	}
	if err == nil && fs.Changed("retirement-years") {
		p.RetirementYears, err = fs.GetInt("retirement-years")
	}
	if err == nil && fs.Changed("target-income") {
		p.TargetMonthlyIncomeToday, err = fs.GetFloat64("target-income")
	}
	if err == nil && fs.Changed("adjust-inflation") {
		p.AdjustContributionForInflation, err = fs.GetBool("adjust-inflation")
	}
	if err != nil {
		return plan, err
	}

	specs, err := fs.GetStringArray("apply")
	if err != nil {
		return plan, err
	}
	if len(specs) > 0 {
		registry := transform.NewTransformRegistry()
		transforms := make([]transform.PlanTransform, 0, len(specs))
		for _, spec := range specs {
			t, err := registry.ParseTransformSpec(spec)
			if err != nil {
				return plan, fmt.Errorf("invalid --apply %q: %w", spec, err)
			}
			transforms = append(transforms, t)
		}
		if plan.InputParameters, err = transform.ApplyTransforms(plan.InputParameters, transforms); err != nil {
			return plan, err
		}
	}

	return plan, plan.Validate()
}
