package main

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// setupPlanTest creates a router with no database, so only the public
// plan routes are registered.
func setupPlanTest() http.Handler {
	gin.SetMode(gin.TestMode)
	return withCORS(newRouter(&Handler{}), []string{"http://localhost:5173"})
}

// doRequest sends a request to the router and records the response.
func doRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := doRequest(setupPlanTest(), http.MethodGet, "/api/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ok"`) {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

/* ─── POST /api/plan ─────────────────────────────────────────────────── */

func TestPostPlan_Success(t *testing.T) {
	w := doRequest(setupPlanTest(), http.MethodPost, "/api/plan",
		`{"sex":"male","age":25,"height_cm":180,"weight_kg":80,"activity_level":"moderate","goal":"maintain"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp planResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if math.Abs(resp.Energy.BMRKcal-1805) > 1e-9 {
		t.Errorf("expected bmr 1805, got %f", resp.Energy.BMRKcal)
	}
	if math.Abs(resp.Energy.TargetKcal-2797.75) > 1e-6 {
		t.Errorf("expected target 2797.75, got %f", resp.Energy.TargetKcal)
	}
	if resp.Macros.ProteinG != 144 {
		t.Errorf("expected protein 144 g, got %f", resp.Macros.ProteinG)
	}
	if resp.Shares == nil {
		t.Fatal("expected shares in response")
	}
	if len(resp.Warnings) != 0 {
		t.Errorf("expected no warnings, got %+v", resp.Warnings)
	}
	if len(resp.Summary) == 0 || resp.Summary[0] != "Goal: maintain" {
		t.Errorf("unexpected summary %v", resp.Summary)
	}
}

func TestPostPlan_NormalizesEnums(t *testing.T) {
	w := doRequest(setupPlanTest(), http.MethodPost, "/api/plan",
		`{"sex":"Female","age":30,"height_cm":165,"weight_kg":60,"activity_level":" Sedentary ","goal":"CUT"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp planResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Profile.Sex != "female" || resp.Profile.ActivityLevel != "sedentary" || resp.Profile.Goal != "cut" {
		t.Errorf("enums not canonicalised: %+v", resp.Profile)
	}
}

func TestPostPlan_ExtremeActivity(t *testing.T) {
	w := doRequest(setupPlanTest(), http.MethodPost, "/api/plan",
		`{"sex":"male","age":25,"height_cm":180,"weight_kg":80,"activity_level":"extreme","goal":"maintain"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Error  string       `json:"error"`
		Fields []fieldError `json:"fields"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(resp.Fields) != 1 || resp.Fields[0].Field != "activity_level" {
		t.Errorf("expected one activity_level field error, got %+v", resp.Fields)
	}
	if !strings.Contains(resp.Error, "extreme") {
		t.Errorf("error %q should name the rejected value", resp.Error)
	}
}

func TestPostPlan_ReportsEveryInvalidField(t *testing.T) {
	w := doRequest(setupPlanTest(), http.MethodPost, "/api/plan",
		`{"sex":"male","age":9,"height_cm":180,"weight_kg":29.9,"activity_level":"light","goal":"bulk"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Fields []fieldError `json:"fields"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp.Fields) != 2 || resp.Fields[0].Field != "age" || resp.Fields[1].Field != "weight_kg" {
		t.Errorf("expected age and weight_kg errors, got %+v", resp.Fields)
	}
}

func TestPostPlan_MissingFields(t *testing.T) {
	w := doRequest(setupPlanTest(), http.MethodPost, "/api/plan", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestPostPlan_MalformedJSON(t *testing.T) {
	w := doRequest(setupPlanTest(), http.MethodPost, "/api/plan", `not json`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] != "invalid request body" {
		t.Errorf("expected error 'invalid request body', got '%s'", resp["error"])
	}
}

func TestPostPlan_NegativeCarbsStillOK(t *testing.T) {
	w := doRequest(setupPlanTest(), http.MethodPost, "/api/plan",
		`{"sex":"female","age":100,"height_cm":100,"weight_kg":30,"activity_level":"sedentary","goal":"cut"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp planResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Macros.CarbsG >= 0 {
		t.Errorf("expected negative carbs to be returned as-is, got %f", resp.Macros.CarbsG)
	}
	if len(resp.Warnings) != 1 || resp.Warnings[0].Kind != "carbs_negative" {
		t.Errorf("expected carbs_negative warning, got %+v", resp.Warnings)
	}
}

/* ─── GET /api/plan/options ──────────────────────────────────────────── */

func TestGetPlanOptions(t *testing.T) {
	w := doRequest(setupPlanTest(), http.MethodGet, "/api/plan/options", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp planOptions
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(resp.ActivityLevels) != 5 || resp.ActivityLevels[4].Value != "very_active" ||
		resp.ActivityLevels[4].Multiplier != 1.9 {
		t.Errorf("unexpected activity levels %+v", resp.ActivityLevels)
	}
	if len(resp.Goals) != 3 || resp.Goals[2].Value != "cut" || resp.Goals[2].CalorieOffset != -300 {
		t.Errorf("unexpected goals %+v", resp.Goals)
	}
	if r := resp.Ranges["age"]; r.Min != 10 || r.Max != 100 {
		t.Errorf("unexpected age range %+v", r)
	}
}

/* ─── Route registration / CORS ──────────────────────────────────────── */

// TestRoutes_NoDatabase verifies DB-backed routes are absent without a pool.
func TestRoutes_NoDatabase(t *testing.T) {
	router := setupPlanTest()
	for _, path := range []string{"/api/profile", "/api/profile/plan"} {
		if w := doRequest(router, http.MethodGet, path, ""); w.Code != http.StatusNotFound {
			t.Errorf("GET %s: expected 404, got %d", path, w.Code)
		}
	}
	if w := doRequest(router, http.MethodPost, "/api/login", `{}`); w.Code != http.StatusNotFound {
		t.Errorf("POST /api/login: expected 404, got %d", w.Code)
	}
}

func TestCORS_Preflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/plan", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	setupPlanTest().ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}
