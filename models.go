package main

import (
	"time"

	"lg/macro-plan-api/macro"
)

/* ─── Domain structs ─────────────────────────────────────────────────── */

// user maps to the users table. AuthToken and Password are hidden from JSON responses.
type user struct {
	ID        int        `json:"id" db:"id"`
	Username  string     `json:"username" db:"username"`
	Email     string     `json:"email" db:"email"`
	AuthToken string     `json:"-" db:"auth_token"`
	Password  string     `json:"-" db:"password"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

// profileRow maps to the profiles table: one row per user with their current
// body profile. Every field is nullable so a freshly created user can fill the
// profile in over several PATCH calls.
type profileRow struct {
	UserID        int        `json:"user_id"        db:"user_id"`
	Sex           *string    `json:"sex"            db:"sex"`
	Age           *int       `json:"age"            db:"age"`
	HeightCM      *float64   `json:"height_cm"      db:"height_cm"`
	WeightKG      *float64   `json:"weight_kg"      db:"weight_kg"`
	ActivityLevel *string    `json:"activity_level" db:"activity_level"`
	Goal          *string    `json:"goal"           db:"goal"`
	UpdatedAt     *time.Time `json:"updated_at"     db:"updated_at"`

	// Computed server-side when every profile field is present; not stored.
	Plan *planResponse `json:"plan,omitempty" db:"-"`
}

// complete reports whether every field needed by the engine is set.
func (r *profileRow) complete() bool {
	return r.Sex != nil && r.Age != nil && r.HeightCM != nil &&
		r.WeightKG != nil && r.ActivityLevel != nil && r.Goal != nil
}

/* ─── Request / Response types ───────────────────────────────────────── */

// planRequest is the request body for POST /api/plan. Values are raw; the
// macro package parses and range-checks them.
type planRequest struct {
	Sex           string  `json:"sex"`
	Age           int     `json:"age"`
	HeightCM      float64 `json:"height_cm"`
	WeightKG      float64 `json:"weight_kg"`
	ActivityLevel string  `json:"activity_level"`
	Goal          string  `json:"goal"`
}

// planResponse is the rendered result of one plan computation.
// Shares is omitted when the calorie target is zero (percentages undefined).
type planResponse struct {
	Profile  macro.PersonProfile  `json:"profile"`
	Energy   macro.EnergyEstimate `json:"energy"`
	Macros   macro.MacroPlan      `json:"macros"`
	Shares   *macro.Shares        `json:"shares,omitempty"`
	Warnings []macro.Warning      `json:"warnings"`
	Summary  []string             `json:"summary"`
}

func newPlanResponse(p macro.Plan) planResponse {
	resp := planResponse{
		Profile:  p.Profile,
		Energy:   p.Energy,
		Macros:   p.Macros,
		Warnings: p.Warnings,
		Summary:  p.Summary(),
	}
	if s, ok := p.Shares(); ok {
		resp.Shares = &s
	}
	return resp
}

// fieldError is one entry of the "fields" list in a 400 validation response.
type fieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// patchProfileRequest is the request body for PATCH /api/profile.
// All fields are pointers; only non-nil fields get written to the database.
type patchProfileRequest struct {
	Sex           *string  `json:"sex"`
	Age           *int     `json:"age"`
	HeightCM      *float64 `json:"height_cm"`
	WeightKG      *float64 `json:"weight_kg"`
	ActivityLevel *string  `json:"activity_level"`
	Goal          *string  `json:"goal"`
}

// activityOption and goalOption describe the fixed choices for form widgets.
type activityOption struct {
	Value      macro.ActivityLevel `json:"value"`
	Multiplier float64             `json:"multiplier"`
}

type goalOption struct {
	Value macro.Goal `json:"value"`
	macro.GoalParams
}

type rangeOption struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// planOptions is the response shape for GET /api/plan/options.
type planOptions struct {
	Sexes          []macro.Sex            `json:"sexes"`
	ActivityLevels []activityOption       `json:"activity_levels"`
	Goals          []goalOption           `json:"goals"`
	Ranges         map[string]rangeOption `json:"ranges"`
}
