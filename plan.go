package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lg/macro-plan-api/macro"
)

// getHealth is a liveness probe. GET /api/health.
func (h *Handler) getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// getPlanOptions lists the fixed choices and ranges the plan form offers.
// GET /api/plan/options (public).
func (h *Handler) getPlanOptions(c *gin.Context) {
	levels := macro.ActivityLevels()
	activity := make([]activityOption, len(levels))
	for i, l := range levels {
		activity[i] = activityOption{Value: l, Multiplier: l.Multiplier()}
	}
	goals := macro.Goals()
	goalOpts := make([]goalOption, len(goals))
	for i, g := range goals {
		goalOpts[i] = goalOption{Value: g, GoalParams: g.Params()}
	}

	c.JSON(http.StatusOK, planOptions{
		Sexes:          []macro.Sex{macro.Male, macro.Female},
		ActivityLevels: activity,
		Goals:          goalOpts,
		Ranges: map[string]rangeOption{
			"age":       {Min: macro.MinAge, Max: macro.MaxAge},
			"height_cm": {Min: macro.MinHeightCM, Max: macro.MaxHeightCM},
			"weight_kg": {Min: macro.MinWeightKG, Max: macro.MaxWeightKG},
		},
	})
}

// postPlan computes energy and macros for the submitted profile.
// POST /api/plan (public). Returns 400 listing every invalid field; an
// implausible result (e.g. negative carbs) is still 200, tagged in warnings.
func (h *Handler) postPlan(c *gin.Context) {
	var body planRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := macro.NewProfile(body.Sex, body.Age, body.HeightCM, body.WeightKG,
		body.ActivityLevel, body.Goal)
	if err != nil {
		validationFailed(c, err)
		return
	}

	plan, err := macro.ComputePlan(profile)
	if err != nil {
		validationFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, newPlanResponse(plan))
}
