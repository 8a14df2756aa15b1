// Package macro computes daily energy expenditure and a protein/fat/carb
// split from a person's metric body profile and fitness goal.
//
// Everything in this package is pure arithmetic: no I/O, no shared state.
// Callers build a PersonProfile (NewProfile parses raw form/JSON values),
// then call ComputePlan.
package macro

import "strings"

// Sex selects the Mifflin-St Jeor constant.
type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

// ActivityLevel is one of five fixed levels, ordered least to most active.
type ActivityLevel string

const (
	Sedentary  ActivityLevel = "sedentary"
	Light      ActivityLevel = "light"
	Moderate   ActivityLevel = "moderate"
	Active     ActivityLevel = "active"
	VeryActive ActivityLevel = "very_active"
)

// Goal is the body-composition direction driving the calorie offset and macro ratios.
type Goal string

const (
	Bulk     Goal = "bulk"
	Maintain Goal = "maintain"
	Cut      Goal = "cut"
)

// Accepted input ranges (closed intervals).
const (
	MinAge      = 10
	MaxAge      = 100
	MinHeightCM = 100.0
	MaxHeightCM = 250.0
	MinWeightKG = 30.0
	MaxWeightKG = 200.0
)

// PersonProfile is the engine input. Build it with NewProfile, or fill it
// directly and let ComputePlan validate it.
type PersonProfile struct {
	Sex           Sex           `json:"sex"`
	Age           int           `json:"age"`
	HeightCM      float64       `json:"height_cm"`
	WeightKG      float64       `json:"weight_kg"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	Goal          Goal          `json:"goal"`
}

// ActivityLevels returns every activity level in ascending order.
func ActivityLevels() []ActivityLevel {
	return []ActivityLevel{Sedentary, Light, Moderate, Active, VeryActive}
}

// Goals returns every goal, bulk first.
func Goals() []Goal {
	return []Goal{Bulk, Maintain, Cut}
}

// Valid reports whether s is one of the enumerated sexes.
func (s Sex) Valid() bool {
	switch s {
	case Male, Female:
		return true
	}
	return false
}

// Valid reports whether a is one of the five activity levels.
func (a ActivityLevel) Valid() bool {
	_, ok := a.multiplier()
	return ok
}

// Valid reports whether g is bulk, maintain or cut.
func (g Goal) Valid() bool {
	_, ok := g.params()
	return ok
}

// ParseSex normalizes s (trimmed, case-insensitive) and rejects anything
// other than "male" or "female".
func ParseSex(s string) (Sex, error) {
	v := Sex(normalize(s))
	if !v.Valid() {
		return "", enumError("sex", s, []Sex{Male, Female})
	}
	return v, nil
}

// ParseActivityLevel normalizes s and rejects unknown levels.
func ParseActivityLevel(s string) (ActivityLevel, error) {
	v := ActivityLevel(normalize(s))
	if !v.Valid() {
		return "", enumError("activity_level", s, ActivityLevels())
	}
	return v, nil
}

// ParseGoal normalizes s and rejects unknown goals.
func ParseGoal(s string) (Goal, error) {
	v := Goal(normalize(s))
	if !v.Valid() {
		return "", enumError("goal", s, Goals())
	}
	return v, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
