// Package planner assembles finished calendar rows from the schedule, the
// idea source and the normalizer.
package planner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"content-planner/ideagen"
	"content-planner/logger"
	"content-planner/models"
	"content-planner/parser"
	"content-planner/schedule"
)

var (
	ErrMissingTopic    = errors.New("topic is required")
	ErrMissingAudience = errors.New("audience is required")
	ErrNoPlatforms     = errors.New("at least one platform is required")
	ErrInvalidDuration = errors.New("duration must be at least one week")
	ErrBadFrequency    = errors.New("unsupported frequency")
)

// PlanRequest carries the validated user inputs for one generation.
type PlanRequest struct {
	Topic          string
	Audience       string
	Tone           string
	Platforms      []string
	Frequency      models.Frequency
	DurationWeeks  int
	StartDate      time.Time
	CustomWeekdays []int
	UseAI          bool
	Model          string
}

// Validate checks the preconditions that must hold before any row is
// generated. A violation means no rows are produced at all.
func (r PlanRequest) Validate() error {
	if r.Topic == "" {
		return ErrMissingTopic
	}
	if r.Audience == "" {
		return ErrMissingAudience
	}
	if len(r.Platforms) == 0 {
		return ErrNoPlatforms
	}
	if r.DurationWeeks < 1 {
		return ErrInvalidDuration
	}
	if !r.Frequency.IsValid() {
		return ErrBadFrequency
	}
	return nil
}

// Progress is an optional observer invoked after each finished work item.
// It must never affect the run: absent observers are skipped and panicking
// observers are contained.
type Progress func(completed, total int)

// Service generates plans. The idea source may be nil, in which case every
// row uses deterministic defaults.
type Service struct {
	source ideagen.Source
}

func NewService(source ideagen.Source) *Service {
	return &Service{source: source}
}

// BuildPlan validates the request, assembles all rows and wraps them in a
// Plan ready to be stored and exported.
func (s *Service) BuildPlan(ctx context.Context, req PlanRequest, progress Progress) (*models.Plan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rows := s.buildRows(ctx, req, progress)

	return &models.Plan{
		ID:          uuid.NewString(),
		Topic:       req.Topic,
		Audience:    req.Audience,
		Tone:        req.Tone,
		Platforms:   req.Platforms,
		Frequency:   req.Frequency,
		WeeksCount:  req.DurationWeeks,
		GeneratedAt: time.Now(),
		Rows:        rows,
	}, nil
}

// buildRows walks platforms in the given order and dates in ascending order.
// The 1-based position restarts per platform so week grouping stays
// per-platform. A failing idea request degrades only its own row.
func (s *Service) buildRows(ctx context.Context, req PlanRequest, progress Progress) []models.PlanRow {
	dates := schedule.GenerateDates(req.Frequency, req.DurationWeeks, req.StartDate, req.CustomWeekdays)

	total := len(dates) * max(len(req.Platforms), 1)
	done := 0
	notify(progress, done, total)

	rows := make([]models.PlanRow, 0, total)
	for _, platform := range req.Platforms {
		for i, d := range dates {
			position := i + 1
			defaults := parser.Defaults{
				Title:       fmt.Sprintf("%s — Idea #%d", req.Topic, position),
				Description: fmt.Sprintf("Post about %s for %s in %s tone.", req.Topic, req.Audience, req.Tone),
			}

			rec := s.ideaFor(ctx, req, platform, defaults)

			rows = append(rows, models.PlanRow{
				Date:        d.Format("2006-01-02"),
				WeekIndex:   schedule.WeekIndex(position, req.Frequency),
				Platform:    platform,
				Topic:       req.Topic,
				Audience:    req.Audience,
				Tone:        req.Tone,
				Title:       rec.Title,
				Description: rec.Description,
				Format:      rec.Format,
				Hashtags:    strings.Join(rec.Hashtags, ", "),
			})

			done++
			notify(progress, done, total)
		}
	}

	logger.Log.Infof("generated %d plan rows (platforms=%d, dates=%d)", len(rows), len(req.Platforms), len(dates))
	return rows
}

// ideaFor requests one idea and normalizes it. Source failures and
// unparseable responses degrade to the deterministic defaults; they never
// abort the batch.
func (s *Service) ideaFor(ctx context.Context, req PlanRequest, platform string, defaults parser.Defaults) models.IdeaRecord {
	if !req.UseAI || s.source == nil {
		return parser.BuildIdeaRecord(nil, "", defaults)
	}

	raw, err := s.source.RequestIdea(ctx, ideagen.IdeaRequest{
		Topic:    req.Topic,
		Audience: req.Audience,
		Tone:     req.Tone,
		Platform: platform,
		Model:    req.Model,
	})
	if err != nil {
		logger.Log.Warnf("idea request failed (platform=%s): %v", platform, err)
		return parser.BuildIdeaRecord(nil, "", defaults)
	}
	if raw == "" {
		return parser.BuildIdeaRecord(nil, "", defaults)
	}

	return parser.BuildIdeaRecord(parser.ParseIdeaText(raw), raw, defaults)
}

func notify(progress Progress, done, total int) {
	if progress == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	progress(done, total)
}
