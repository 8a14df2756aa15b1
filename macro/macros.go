package macro

// Energy density of each macronutrient, kcal per gram.
const (
	KcalPerGramProtein = 4.0
	KcalPerGramFat     = 9.0
	KcalPerGramCarbs   = 4.0
)

// MacroPlan is the daily protein/fat/carb split in grams and kcal.
// CarbsG may be negative when protein and fat already exceed the target;
// it is reported as computed, never floored.
type MacroPlan struct {
	ProteinG    float64 `json:"protein_g"`
	FatG        float64 `json:"fat_g"`
	CarbsG      float64 `json:"carbs_g"`
	ProteinKcal float64 `json:"protein_kcal"`
	FatKcal     float64 `json:"fat_kcal"`
	CarbsKcal   float64 `json:"carbs_kcal"`
}

// Shares is each macro's percentage of the calorie target.
type Shares struct {
	Protein float64 `json:"protein_pct"`
	Fat     float64 `json:"fat_pct"`
	Carbs   float64 `json:"carbs_pct"`
}

// SplitMacros derives grams and kcal for each macro. Protein is fixed per kg
// of body weight, fat is a fixed share of the target and carbs take the rest.
func SplitMacros(weightKG, targetKcal float64, gp GoalParams) MacroPlan {
	proteinG := weightKG * gp.ProteinPerKG
	fatG := targetKcal * gp.FatRatio / KcalPerGramFat
	carbsG := (targetKcal - (proteinG*KcalPerGramProtein + fatG*KcalPerGramFat)) / KcalPerGramCarbs
	return MacroPlan{
		ProteinG:    proteinG,
		FatG:        fatG,
		CarbsG:      carbsG,
		ProteinKcal: proteinG * KcalPerGramProtein,
		FatKcal:     fatG * KcalPerGramFat,
		CarbsKcal:   carbsG * KcalPerGramCarbs,
	}
}

// TotalKcal sums the three macro calorie contributions.
func (m MacroPlan) TotalKcal() float64 {
	return m.ProteinKcal + m.FatKcal + m.CarbsKcal
}

// Shares returns each macro's percentage of targetKcal.
// ok is false when targetKcal is zero and the shares are undefined.
func (m MacroPlan) Shares(targetKcal float64) (s Shares, ok bool) {
	if targetKcal == 0 {
		return Shares{}, false
	}
	return Shares{
		Protein: m.ProteinKcal / targetKcal * 100,
		Fat:     m.FatKcal / targetKcal * 100,
		Carbs:   m.CarbsKcal / targetKcal * 100,
	}, true
}
