package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-planner/api/router"
	"content-planner/dto"
	"content-planner/ideagen"
	"content-planner/planner"
	"content-planner/store"
)

type stubSource struct{ response string }

func (s stubSource) RequestIdea(context.Context, ideagen.IdeaRequest) (string, error) {
	return s.response, nil
}

func newTestRouter(src ideagen.Source) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return router.New(planner.NewService(src), store.NewPlanStore())
}

func generatePlan(t *testing.T, r *gin.Engine, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/plans", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func validBody() map[string]any {
	return map[string]any{
		"topic":          "Go",
		"audience":       "developers",
		"tone":           "Casual",
		"platforms":      []string{"LinkedIn"},
		"frequency":      "Weekly",
		"duration_weeks": 2,
		"start_date":     "2024-01-01",
		"use_ai":         true,
	}
}

func TestGeneratePlan(t *testing.T) {
	r := newTestRouter(stubSource{response: `{"title":"T","description":"D","hashtags":["#a"]}`})

	rec := generatePlan(t, r, validBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	var plan dto.PlanDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plan))
	assert.NotEmpty(t, plan.ID)
	require.Len(t, plan.Rows, 2)
	assert.Equal(t, "2024-01-08", plan.Rows[0].Date)
	assert.Equal(t, "T", plan.Rows[0].Title)
	assert.Equal(t, "#a", plan.Rows[0].Hashtags)

	// A session cookie is set so the plan can be fetched later.
	assert.NotEmpty(t, rec.Result().Cookies())
}

func TestGeneratePlanMissingFields(t *testing.T) {
	r := newTestRouter(nil)

	body := validBody()
	delete(body, "topic")

	rec := generatePlan(t, r, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGeneratePlanBadStartDate(t *testing.T) {
	r := newTestRouter(nil)

	body := validBody()
	body["start_date"] = "01/01/2024"

	rec := generatePlan(t, r, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCurrentPlanWithoutGeneration(t *testing.T) {
	r := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/plans/current", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGenerateThenFetchAndExport(t *testing.T) {
	r := newTestRouter(nil)

	body := validBody()
	body["use_ai"] = false

	rec := generatePlan(t, r, body)
	require.Equal(t, http.StatusCreated, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	// Fetch the retained plan with the session cookie.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/plans/current", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// CSV export.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/plans/current/export?format=csv", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Body.String(), "Date,Week Index,Platform")

	// XLSX export.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/plans/current/export?format=xlsx", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotZero(t, rec.Body.Len())

	// Unknown format.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/plans/current/export?format=pdf", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOptions(t *testing.T) {
	r := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/options", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var opts dto.OptionsDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &opts))
	assert.Equal(t, []string{"Daily", "X times/week", "Weekly"}, opts.Frequencies)
	assert.Len(t, opts.WeekDays, 7)
	assert.NotEmpty(t, opts.Platforms)
	assert.NotEmpty(t, opts.Tones)
}
