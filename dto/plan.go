package dto

import (
	"fmt"
	"time"

	"content-planner/models"
	"content-planner/planner"
)

// GeneratePlanRequestDTO is the POST /plans payload.
// start_date is optional "YYYY-MM-DD" and defaults to today.
// custom_weekdays uses 0=Monday .. 6=Sunday and only applies to the
// "X times/week" frequency.
type GeneratePlanRequestDTO struct {
	Topic          string   `json:"topic" binding:"required"`
	Audience       string   `json:"audience" binding:"required"`
	Tone           string   `json:"tone"`
	Platforms      []string `json:"platforms" binding:"required,min=1"`
	Frequency      string   `json:"frequency" binding:"required"`
	DurationWeeks  int      `json:"duration_weeks" binding:"required,min=1"`
	StartDate      string   `json:"start_date"`
	CustomWeekdays []int    `json:"custom_weekdays" binding:"omitempty,dive,min=0,max=6"`
	UseAI          bool     `json:"use_ai"`
	Model          string   `json:"model"`
}

// ToPlanRequest converts the transport payload into a planner request.
func (r GeneratePlanRequestDTO) ToPlanRequest() (planner.PlanRequest, error) {
	var start time.Time
	if r.StartDate != "" {
		var err error
		start, err = time.Parse("2006-01-02", r.StartDate)
		if err != nil {
			return planner.PlanRequest{}, fmt.Errorf("invalid start_date %q: %w", r.StartDate, err)
		}
	}

	return planner.PlanRequest{
		Topic:          r.Topic,
		Audience:       r.Audience,
		Tone:           r.Tone,
		Platforms:      r.Platforms,
		Frequency:      models.Frequency(r.Frequency),
		DurationWeeks:  r.DurationWeeks,
		StartDate:      start,
		CustomWeekdays: r.CustomWeekdays,
		UseAI:          r.UseAI,
		Model:          r.Model,
	}, nil
}

// PlanDTO is the API shape of a generated plan.
type PlanDTO struct {
	ID          string           `json:"id"`
	Topic       string           `json:"topic"`
	Audience    string           `json:"audience"`
	Tone        string           `json:"tone"`
	Platforms   []string         `json:"platforms"`
	Frequency   string           `json:"frequency"`
	WeeksCount  int              `json:"weeks_count"`
	GeneratedAt time.Time        `json:"generated_at"`
	Rows        []models.PlanRow `json:"rows"`
}

// NewPlanDTO constructs PlanDTO from models.Plan.
func NewPlanDTO(p models.Plan) PlanDTO {
	return PlanDTO{
		ID:          p.ID,
		Topic:       p.Topic,
		Audience:    p.Audience,
		Tone:        p.Tone,
		Platforms:   p.Platforms,
		Frequency:   string(p.Frequency),
		WeeksCount:  p.WeeksCount,
		GeneratedAt: p.GeneratedAt,
		Rows:        p.Rows,
	}
}

// OptionsDTO lists the selectable inputs the UI offers.
type OptionsDTO struct {
	Frequencies []string `json:"frequencies"`
	WeekDays    []string `json:"week_days"`
	Platforms   []string `json:"platforms"`
	Tones       []string `json:"tones"`
	Models      []string `json:"models"`
}

type ErrorResponseDTO struct {
	Error string `json:"error"`
}

type MessageResponseDTO struct {
	Message string `json:"message"`
}
