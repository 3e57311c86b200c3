package schedule

import (
	"sort"
	"time"

	"content-planner/models"
)

// defaultWeekdays is used for X times/week when no custom weekdays were
// picked: Monday, Wednesday, Friday.
var defaultWeekdays = []int{0, 2, 4}

// mondayIndex converts Go's Sunday-based weekday to the 0=Monday .. 6=Sunday
// indexing used throughout the planner.
func mondayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// GenerateDates computes the ordered posting dates for a plan.
//
// Daily (or a custom selection covering all seven weekdays) emits
// durationWeeks*7 consecutive days starting the day after start. Weekly emits
// the Monday of each subsequent week. X times/week anchors every week's
// occurrences to the next occurrence of each chosen weekday relative to
// start, so the first emitted date is always strictly after start.
// customWeekdays values are expected to be validated by the caller.
func GenerateDates(frequency models.Frequency, durationWeeks int, start time.Time, customWeekdays []int) []time.Time {
	if start.IsZero() {
		start = time.Now()
	}
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)

	var dates []time.Time

	switch {
	case frequency == models.FrequencyDaily || len(customWeekdays) == 7:
		for i := 0; i < durationWeeks*7; i++ {
			dates = append(dates, start.AddDate(0, 0, i+1))
		}

	case frequency == models.FrequencyXTimesPerWeek:
		idx := uniqueSorted(customWeekdays)
		if len(idx) == 0 {
			idx = defaultWeekdays
		}
		startDay := mondayIndex(start)
		for w := 0; w < durationWeeks; w++ {
			base := start.AddDate(0, 0, 7*w)
			for _, d := range idx {
				dates = append(dates, base.AddDate(0, 0, 7-startDay+d))
			}
		}

	default: // Weekly
		startDay := mondayIndex(start)
		for w := 0; w < durationWeeks; w++ {
			dates = append(dates, start.AddDate(0, 0, 7*(w+1)-startDay))
		}
	}

	return dates
}

// WeekIndex maps a row's 1-based position within one platform's sequence to
// its 1-based week group. The X times/week divisor is fixed at 3 regardless
// of how many custom weekdays were chosen.
func WeekIndex(position int, frequency models.Frequency) int {
	denom := 1
	switch frequency {
	case models.FrequencyDaily:
		denom = 7
	case models.FrequencyXTimesPerWeek:
		denom = 3
	}
	return (position-1)/denom + 1
}

func uniqueSorted(values []int) []int {
	seen := make(map[int]struct{}, len(values))
	var out []int
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}
