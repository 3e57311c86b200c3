package models

import "time"

// Frequency is how often content slots are scheduled within a week.
type Frequency string

const (
	FrequencyDaily         Frequency = "Daily"
	FrequencyXTimesPerWeek Frequency = "X times/week"
	FrequencyWeekly        Frequency = "Weekly"
)

// Frequencies lists the supported values in the order offered to clients.
var Frequencies = []Frequency{FrequencyDaily, FrequencyXTimesPerWeek, FrequencyWeekly}

// WeekDays maps custom weekday indices (0=Monday .. 6=Sunday) to names.
var WeekDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// IsValid reports whether f is one of the supported frequencies.
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyXTimesPerWeek, FrequencyWeekly:
		return true
	}
	return false
}

// IdeaRecord is one normalized content idea for a single slot.
type IdeaRecord struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Format      string   `json:"format"`
	Hashtags    []string `json:"hashtags"`
}

// PlanRow is one finished calendar entry. Rows are immutable after assembly.
type PlanRow struct {
	Date        string `json:"date"`
	WeekIndex   int    `json:"week_index"`
	Platform    string `json:"platform"`
	Topic       string `json:"topic"`
	Audience    string `json:"audience"`
	Tone        string `json:"tone"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Format      string `json:"format"`
	Hashtags    string `json:"hashtags"`
}

// Plan is the full generated calendar retained for one session.
// A new generation replaces the previous plan wholesale.
type Plan struct {
	ID          string    `json:"id"`
	Topic       string    `json:"topic"`
	Audience    string    `json:"audience"`
	Tone        string    `json:"tone"`
	Platforms   []string  `json:"platforms"`
	Frequency   Frequency `json:"frequency"`
	WeeksCount  int       `json:"weeks_count"`
	GeneratedAt time.Time `json:"generated_at"`
	Rows        []PlanRow `json:"rows"`
}
