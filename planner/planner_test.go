package planner_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-planner/ideagen"
	"content-planner/models"
	"content-planner/planner"
)

// Monday, 2024-01-01
var testStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func testRequest() planner.PlanRequest {
	return planner.PlanRequest{
		Topic:         "Go",
		Audience:      "developers",
		Tone:          "Casual",
		Platforms:     []string{"LinkedIn", "Instagram"},
		Frequency:     models.FrequencyDaily,
		DurationWeeks: 1,
		StartDate:     testStart,
		UseAI:         true,
	}
}

type stubSource struct {
	response string
	err      error
	calls    int
}

func (s *stubSource) RequestIdea(_ context.Context, _ ideagen.IdeaRequest) (string, error) {
	s.calls++
	return s.response, s.err
}

func TestBuildPlanValidation(t *testing.T) {
	svc := planner.NewService(nil)

	testCases := []struct {
		name    string
		mutate  func(*planner.PlanRequest)
		wantErr error
	}{
		{"missing topic", func(r *planner.PlanRequest) { r.Topic = "" }, planner.ErrMissingTopic},
		{"missing audience", func(r *planner.PlanRequest) { r.Audience = "" }, planner.ErrMissingAudience},
		{"no platforms", func(r *planner.PlanRequest) { r.Platforms = nil }, planner.ErrNoPlatforms},
		{"zero duration", func(r *planner.PlanRequest) { r.DurationWeeks = 0 }, planner.ErrInvalidDuration},
		{"bad frequency", func(r *planner.PlanRequest) { r.Frequency = "Hourly" }, planner.ErrBadFrequency},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := testRequest()
			tc.mutate(&req)

			plan, err := svc.BuildPlan(context.Background(), req, nil)
			assert.Nil(t, plan)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestBuildPlanAlwaysFailingSourceDegradesToDefaults(t *testing.T) {
	src := &stubSource{err: errors.New("rate limited")}
	svc := planner.NewService(src)

	plan, err := svc.BuildPlan(context.Background(), testRequest(), nil)
	require.NoError(t, err)

	// 7 daily dates x 2 platforms
	require.Len(t, plan.Rows, 14)
	assert.Equal(t, 14, src.calls)
	for i, row := range plan.Rows {
		position := i%7 + 1
		assert.Equal(t, fmt.Sprintf("Go — Idea #%d", position), row.Title)
		assert.Equal(t, "Post about Go for developers in Casual tone.", row.Description)
		assert.Empty(t, row.Format)
		assert.Empty(t, row.Hashtags)
	}
}

func TestBuildPlanParsesSourceResponses(t *testing.T) {
	src := &stubSource{response: `{"title":"T","description":"D","format":"reel","hashtags":["#a","#b"]}`}
	svc := planner.NewService(src)

	plan, err := svc.BuildPlan(context.Background(), testRequest(), nil)
	require.NoError(t, err)

	for _, row := range plan.Rows {
		assert.Equal(t, "T", row.Title)
		assert.Equal(t, "D", row.Description)
		assert.Equal(t, "reel", row.Format)
		assert.Equal(t, "#a, #b", row.Hashtags)
	}
}

func TestBuildPlanPlainTextResponseUsesHeuristic(t *testing.T) {
	src := &stubSource{response: "Catchy headline\nSome body text\nMore body text"}
	svc := planner.NewService(src)

	plan, err := svc.BuildPlan(context.Background(), testRequest(), nil)
	require.NoError(t, err)

	assert.Equal(t, "Catchy headline", plan.Rows[0].Title)
	assert.Equal(t, "Some body text More body text", plan.Rows[0].Description)
}

func TestBuildPlanUseAIDisabledNeverCallsSource(t *testing.T) {
	src := &stubSource{response: `{"title":"T"}`}
	svc := planner.NewService(src)

	req := testRequest()
	req.UseAI = false

	plan, err := svc.BuildPlan(context.Background(), req, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, src.calls)
	assert.Equal(t, "Go — Idea #1", plan.Rows[0].Title)
}

func TestBuildPlanRowOrderingAndWeekIndex(t *testing.T) {
	svc := planner.NewService(nil)

	req := testRequest()
	req.UseAI = false
	req.Frequency = models.FrequencyDaily
	req.DurationWeeks = 2

	plan, err := svc.BuildPlan(context.Background(), req, nil)
	require.NoError(t, err)
	require.Len(t, plan.Rows, 28)

	// Outer loop platforms, inner loop ascending dates.
	assert.Equal(t, "LinkedIn", plan.Rows[0].Platform)
	assert.Equal(t, "LinkedIn", plan.Rows[13].Platform)
	assert.Equal(t, "Instagram", plan.Rows[14].Platform)

	// Week index restarts per platform.
	assert.Equal(t, 1, plan.Rows[0].WeekIndex)
	assert.Equal(t, 2, plan.Rows[7].WeekIndex)
	assert.Equal(t, 1, plan.Rows[14].WeekIndex)
	assert.Equal(t, 2, plan.Rows[21].WeekIndex)

	// Dates ascend within each platform and are formatted YYYY-MM-DD.
	assert.Equal(t, "2024-01-02", plan.Rows[0].Date)
	assert.Equal(t, "2024-01-15", plan.Rows[13].Date)
	assert.Equal(t, "2024-01-02", plan.Rows[14].Date)
}

func TestBuildPlanProgressReporting(t *testing.T) {
	svc := planner.NewService(nil)

	req := testRequest()
	req.UseAI = false

	var reports [][2]int
	progress := func(done, total int) {
		reports = append(reports, [2]int{done, total})
	}

	_, err := svc.BuildPlan(context.Background(), req, progress)
	require.NoError(t, err)

	require.Len(t, reports, 15) // initial 0/14 plus one per row
	assert.Equal(t, [2]int{0, 14}, reports[0])
	assert.Equal(t, [2]int{14, 14}, reports[14])
	for i := 1; i < len(reports); i++ {
		assert.Equal(t, reports[i-1][0]+1, reports[i][0])
	}
}

func TestBuildPlanPanickingObserverIsContained(t *testing.T) {
	svc := planner.NewService(nil)

	req := testRequest()
	req.UseAI = false

	plan, err := svc.BuildPlan(context.Background(), req, func(int, int) {
		panic("observer bug")
	})
	require.NoError(t, err)
	assert.Len(t, plan.Rows, 14)
}

func TestBuildPlanPopulatesPlanMetadata(t *testing.T) {
	svc := planner.NewService(nil)

	req := testRequest()
	req.UseAI = false

	plan, err := svc.BuildPlan(context.Background(), req, nil)
	require.NoError(t, err)

	assert.NotEmpty(t, plan.ID)
	assert.Equal(t, "Go", plan.Topic)
	assert.Equal(t, models.FrequencyDaily, plan.Frequency)
	assert.Equal(t, 1, plan.WeeksCount)
	assert.WithinDuration(t, time.Now(), plan.GeneratedAt, 5*time.Second)
}
