package macro

// GoalParams are the fixed adjustments applied for a goal.
type GoalParams struct {
	// CalorieOffset is added to TDEE to get the daily target.
	CalorieOffset float64 `json:"calorie_offset"`
	// ProteinPerKG is grams of protein per kilogram of body weight.
	ProteinPerKG float64 `json:"protein_g_per_kg"`
	// FatRatio is the share of target calories that comes from fat.
	FatRatio float64 `json:"fat_ratio"`
}

// Params returns the adjustments for g; the zero value for an unknown goal.
func (g Goal) Params() GoalParams {
	p, _ := g.params()
	return p
}

func (g Goal) params() (GoalParams, bool) {
	switch g {
	case Bulk:
		return GoalParams{CalorieOffset: 300, ProteinPerKG: 1.6, FatRatio: 0.25}, true
	case Maintain:
		return GoalParams{CalorieOffset: 0, ProteinPerKG: 1.8, FatRatio: 0.30}, true
	case Cut:
		return GoalParams{CalorieOffset: -300, ProteinPerKG: 2.0, FatRatio: 0.25}, true
	}
	return GoalParams{}, false
}
