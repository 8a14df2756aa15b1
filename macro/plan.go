package macro

import "fmt"

// WarningKind identifies an implausible-but-computed result.
type WarningKind string

const (
	// TargetNonPositive: the calorie target is zero or negative.
	TargetNonPositive WarningKind = "target_non_positive"
	// CarbsNegative: protein and fat alone exceed the calorie target.
	CarbsNegative WarningKind = "carbs_negative"
)

// Warning is advisory. The plan is still returned with its raw values so
// the caller can decide whether to show, clamp or reject it.
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Value   float64     `json:"value"`
	Message string      `json:"message"`
}

// Plan is the full result for one profile.
type Plan struct {
	Profile  PersonProfile  `json:"profile"`
	Energy   EnergyEstimate `json:"energy"`
	Macros   MacroPlan      `json:"macros"`
	Warnings []Warning      `json:"warnings"`
}

// ComputePlan validates p and runs it through energy estimation, goal
// adjustment and the macro split. On a validation error no partial plan is
// returned. The result depends only on p.
func ComputePlan(p PersonProfile) (Plan, error) {
	if err := Validate(p); err != nil {
		return Plan{}, err
	}

	energy := EstimateEnergy(p)
	macros := SplitMacros(p.WeightKG, energy.TargetKcal, p.Goal.Params())

	return Plan{
		Profile:  p,
		Energy:   energy,
		Macros:   macros,
		Warnings: implausible(energy, macros),
	}, nil
}

func implausible(e EnergyEstimate, m MacroPlan) []Warning {
	warnings := []Warning{}
	if e.TargetKcal <= 0 {
		warnings = append(warnings, Warning{
			Kind:    TargetNonPositive,
			Value:   e.TargetKcal,
			Message: fmt.Sprintf("calorie target is %.0f kcal", e.TargetKcal),
		})
	}
	if m.CarbsG < 0 {
		warnings = append(warnings, Warning{
			Kind:    CarbsNegative,
			Value:   m.CarbsG,
			Message: fmt.Sprintf("protein and fat exceed the calorie target; carbs would be %.1f g", m.CarbsG),
		})
	}
	return warnings
}

// Implausible reports whether any warning was raised.
func (p Plan) Implausible() bool {
	return len(p.Warnings) > 0
}

// Shares returns the macro percentages of the plan's calorie target.
func (p Plan) Shares() (Shares, bool) {
	return p.Macros.Shares(p.Energy.TargetKcal)
}

// Summary renders the plan as short display lines: calories rounded to
// whole kcal, grams to one decimal.
func (p Plan) Summary() []string {
	m := p.Macros
	lines := []string{
		fmt.Sprintf("Goal: %s", p.Profile.Goal),
		fmt.Sprintf("Weight: %g kg", p.Profile.WeightKG),
		fmt.Sprintf("Calories: %.0f kcal", p.Energy.TargetKcal),
		fmt.Sprintf("Protein: %.1f g (%.0f kcal)", m.ProteinG, m.ProteinKcal),
		fmt.Sprintf("Fat: %.1f g (%.0f kcal)", m.FatG, m.FatKcal),
		fmt.Sprintf("Carbs: %.1f g (%.0f kcal)", m.CarbsG, m.CarbsKcal),
	}
	if s, ok := p.Shares(); ok {
		lines = append(lines, fmt.Sprintf("Split: protein %.1f%% | fat %.1f%% | carbs %.1f%%",
			s.Protein, s.Fat, s.Carbs))
	}
	return lines
}
