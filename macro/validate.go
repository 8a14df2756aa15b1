package macro

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ValidationError reports a profile field outside its declared domain.
// Reason names the valid range or the allowed values.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	if s, ok := e.Value.(string); ok {
		return fmt.Sprintf("invalid %s %q: %s", e.Field, s, e.Reason)
	}
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// ValidationErrors flattens err (possibly an errors.Join of several
// *ValidationError) into its individual field errors. Returns nil when err
// carries no validation errors.
func ValidationErrors(err error) []*ValidationError {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []*ValidationError
		for _, e := range joined.Unwrap() {
			out = append(out, ValidationErrors(e)...)
		}
		return out
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return []*ValidationError{ve}
	}
	return nil
}

func rangeError(field string, value, lo, hi any) error {
	return &ValidationError{
		Field:  field,
		Value:  value,
		Reason: fmt.Sprintf("must be between %v and %v", lo, hi),
	}
}

func enumError[T ~string](field, raw string, allowed []T) error {
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	return &ValidationError{
		Field:  field,
		Value:  raw,
		Reason: "must be one of: " + strings.Join(names, ", "),
	}
}

// ValidateAge checks age against [MinAge, MaxAge].
func ValidateAge(age int) error {
	if age < MinAge || age > MaxAge {
		return rangeError("age", age, MinAge, MaxAge)
	}
	return nil
}

// ValidateHeight checks height in centimetres against [MinHeightCM, MaxHeightCM].
func ValidateHeight(cm float64) error {
	if !inRange(cm, MinHeightCM, MaxHeightCM) {
		return rangeError("height_cm", cm, MinHeightCM, MaxHeightCM)
	}
	return nil
}

// ValidateWeight checks weight in kilograms against [MinWeightKG, MaxWeightKG].
func ValidateWeight(kg float64) error {
	if !inRange(kg, MinWeightKG, MaxWeightKG) {
		return rangeError("weight_kg", kg, MinWeightKG, MaxWeightKG)
	}
	return nil
}

// inRange is false for NaN.
func inRange(v, lo, hi float64) bool {
	return !math.IsNaN(v) && v >= lo && v <= hi
}

// Validate checks every field of p. All failing fields are reported,
// joined in declaration order; errors.As finds the first one.
func Validate(p PersonProfile) error {
	var errs []error
	if !p.Sex.Valid() {
		errs = append(errs, enumError("sex", string(p.Sex), []Sex{Male, Female}))
	}
	if err := ValidateAge(p.Age); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateHeight(p.HeightCM); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateWeight(p.WeightKG); err != nil {
		errs = append(errs, err)
	}
	if !p.ActivityLevel.Valid() {
		errs = append(errs, enumError("activity_level", string(p.ActivityLevel), ActivityLevels()))
	}
	if !p.Goal.Valid() {
		errs = append(errs, enumError("goal", string(p.Goal), Goals()))
	}
	return errors.Join(errs...)
}

// NewProfile parses raw input values into a validated PersonProfile.
func NewProfile(sex string, age int, heightCM, weightKG float64, activity, goal string) (PersonProfile, error) {
	var errs []error
	s, err := ParseSex(sex)
	if err != nil {
		errs = append(errs, err)
	}
	if err := ValidateAge(age); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateHeight(heightCM); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateWeight(weightKG); err != nil {
		errs = append(errs, err)
	}
	a, err := ParseActivityLevel(activity)
	if err != nil {
		errs = append(errs, err)
	}
	g, err := ParseGoal(goal)
	if err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return PersonProfile{}, errors.Join(errs...)
	}
	return PersonProfile{
		Sex:           s,
		Age:           age,
		HeightCM:      heightCM,
		WeightKG:      weightKG,
		ActivityLevel: a,
		Goal:          g,
	}, nil
}
