package main

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"lg/macro-plan-api/macro"
)

const selectProfile = `SELECT user_id, sex, age, height_cm, weight_kg, activity_level, goal, updated_at
	 FROM profiles WHERE user_id = @userID`

// getProfile returns the saved profile for the authenticated user, with the
// computed plan attached when every field is filled in.
// GET /api/profile.
func (h *Handler) getProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	row, err := queryOne[profileRow](h.db, c, selectProfile, pgx.NamedArgs{"userID": userID})
	if err != nil {
		profileLookupFailed(c, err)
		return
	}

	populatePlan(&row)

	c.JSON(http.StatusOK, row)
}

// getProfilePlan computes the plan for the saved profile.
// GET /api/profile/plan. 409 when the profile is still incomplete.
func (h *Handler) getProfilePlan(c *gin.Context) {
	userID := c.GetInt("user_id")

	row, err := queryOne[profileRow](h.db, c, selectProfile, pgx.NamedArgs{"userID": userID})
	if err != nil {
		profileLookupFailed(c, err)
		return
	}
	if !row.complete() {
		apiError(c, http.StatusConflict, "profile is incomplete")
		return
	}

	plan, err := macro.ComputePlan(row.toProfile())
	if err != nil {
		// Rows written before a range change could fail today's checks.
		validationFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, newPlanResponse(plan))
}

// patchProfile validates and saves only the provided profile fields.
// PATCH /api/profile. Creates the row on first use; later calls overwrite
// fields in place.
func (h *Handler) patchProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body patchProfileRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cols, args, err := profileColumns(body)
	if err != nil {
		validationFailed(c, err)
		return
	}
	if len(cols) == 0 {
		apiError(c, http.StatusBadRequest, "no fields to update")
		return
	}
	args["userID"] = userID

	// Upsert only the columns the client sent.
	placeholders := make([]string, len(cols))
	updates := make([]string, len(cols))
	for i, col := range cols {
		placeholders[i] = "@" + col
		updates[i] = col + " = EXCLUDED." + col
	}
	query := "INSERT INTO profiles (user_id, " + strings.Join(cols, ", ") + ")" +
		" VALUES (@userID, " + strings.Join(placeholders, ", ") + ")" +
		" ON CONFLICT (user_id) DO UPDATE SET " + strings.Join(updates, ", ") + ", updated_at = now()" +
		" RETURNING user_id, sex, age, height_cm, weight_kg, activity_level, goal, updated_at"

	row, err := queryOne[profileRow](h.db, c, query, args)
	if err != nil {
		log.Printf("[patchProfile] upsert failed for user %d: %v", userID, err)
		apiError(c, http.StatusInternalServerError, "failed to update profile")
		return
	}

	populatePlan(&row)

	c.JSON(http.StatusOK, row)
}

// profileColumns validates each provided field with the engine's rules and
// returns the column names (also used as named-arg keys) with their values.
// Enum values are stored in canonical form.
func profileColumns(body patchProfileRequest) ([]string, pgx.NamedArgs, error) {
	var cols []string
	var errs []error
	args := pgx.NamedArgs{}

	set := func(col string, v any) {
		cols = append(cols, col)
		args[col] = v
	}

	if body.Sex != nil {
		if s, err := macro.ParseSex(*body.Sex); err != nil {
			errs = append(errs, err)
		} else {
			set("sex", string(s))
		}
	}
	if body.Age != nil {
		if err := macro.ValidateAge(*body.Age); err != nil {
			errs = append(errs, err)
		} else {
			set("age", *body.Age)
		}
	}
	if body.HeightCM != nil {
		if err := macro.ValidateHeight(*body.HeightCM); err != nil {
			errs = append(errs, err)
		} else {
			set("height_cm", *body.HeightCM)
		}
	}
	if body.WeightKG != nil {
		if err := macro.ValidateWeight(*body.WeightKG); err != nil {
			errs = append(errs, err)
		} else {
			set("weight_kg", *body.WeightKG)
		}
	}
	if body.ActivityLevel != nil {
		if a, err := macro.ParseActivityLevel(*body.ActivityLevel); err != nil {
			errs = append(errs, err)
		} else {
			set("activity_level", string(a))
		}
	}
	if body.Goal != nil {
		if g, err := macro.ParseGoal(*body.Goal); err != nil {
			errs = append(errs, err)
		} else {
			set("goal", string(g))
		}
	}

	if len(errs) > 0 {
		return nil, nil, errors.Join(errs...)
	}
	return cols, args, nil
}

// toProfile converts a complete row into an engine profile.
// Callers must check complete() first.
func (r *profileRow) toProfile() macro.PersonProfile {
	return macro.PersonProfile{
		Sex:           macro.Sex(*r.Sex),
		Age:           *r.Age,
		HeightCM:      *r.HeightCM,
		WeightKG:      *r.WeightKG,
		ActivityLevel: macro.ActivityLevel(*r.ActivityLevel),
		Goal:          macro.Goal(*r.Goal),
	}
}

// populatePlan fills the computed plan on r from its fields.
// No-ops if the profile is incomplete or no longer valid.
func populatePlan(r *profileRow) {
	if !r.complete() {
		return
	}
	plan, err := macro.ComputePlan(r.toProfile())
	if err != nil {
		log.Printf("[populatePlan] stored profile for user %d is invalid: %v", r.UserID, err)
		return
	}
	resp := newPlanResponse(plan)
	r.Plan = &resp
}

// profileLookupFailed maps a profile query error to 404 or 500.
func profileLookupFailed(c *gin.Context, err error) {
	if errors.Is(err, pgx.ErrNoRows) {
		apiError(c, http.StatusNotFound, "profile not found")
		return
	}
	apiError(c, http.StatusInternalServerError, "failed to fetch profile")
}
