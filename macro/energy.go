package macro

// EnergyEstimate holds the daily energy figures for one profile, in kcal.
type EnergyEstimate struct {
	BMRKcal    float64 `json:"bmr_kcal"`
	TDEEKcal   float64 `json:"tdee_kcal"`
	TargetKcal float64 `json:"target_kcal"`
}

// Multiplier returns the TDEE multiplier for a, or 0 for an unknown level.
func (a ActivityLevel) Multiplier() float64 {
	m, _ := a.multiplier()
	return m
}

func (a ActivityLevel) multiplier() (float64, bool) {
	switch a {
	case Sedentary:
		return 1.2, true
	case Light:
		return 1.375, true
	case Moderate:
		return 1.55, true
	case Active:
		return 1.725, true
	case VeryActive:
		return 1.9, true
	}
	return 0, false
}

// BMR estimates basal metabolic rate with the Mifflin-St Jeor equation.
// p must already be valid.
func BMR(p PersonProfile) float64 {
	bmr := 10*p.WeightKG + 6.25*p.HeightCM - 5*float64(p.Age)
	if p.Sex == Male {
		return bmr + 5
	}
	return bmr - 161
}

// TDEE scales bmr by the activity multiplier.
func TDEE(bmr float64, a ActivityLevel) float64 {
	return bmr * a.Multiplier()
}

// EstimateEnergy computes BMR, TDEE and the goal-adjusted calorie target.
// p must already be valid.
func EstimateEnergy(p PersonProfile) EnergyEstimate {
	bmr := BMR(p)
	tdee := TDEE(bmr, p.ActivityLevel)
	return EnergyEstimate{
		BMRKcal:    bmr,
		TDEEKcal:   tdee,
		TargetKcal: tdee + p.Goal.Params().CalorieOffset,
	}
}
