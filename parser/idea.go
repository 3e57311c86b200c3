// Package parser recovers structured content ideas from raw model output.
// Providers are asked for strict JSON, but responses regularly arrive inside
// markdown code fences or with stray prose around the object, so parsing is
// deliberately lenient.
package parser

import (
	"encoding/json"
	"fmt"
	"strings"

	"content-planner/models"
)

const (
	maxTitleLen       = 120
	maxDescriptionLen = 600
	maxFormatLen      = 40
	maxHashtags       = 12
)

// Defaults supplies the deterministic fallback title and description used
// when the model output cannot be recovered.
type Defaults struct {
	Title       string
	Description string
}

// ParseIdeaText parses a raw model response into a JSON object.
// It strips surrounding code fences (and a leading "json" label), then tries
// a direct parse, then the substring between the first "{" and the last "}".
// Returns nil when no object can be recovered; callers treat that as "no
// structured data" and fall back to heuristic extraction.
func ParseIdeaText(raw string) map[string]any {
	if raw == "" {
		return nil
	}
	cleaned := strings.TrimSpace(raw)

	// Strip code fences like ```json ... ```
	if strings.HasPrefix(cleaned, "```") && strings.HasSuffix(cleaned, "```") {
		cleaned = strings.Trim(cleaned, "`\n ")
		if strings.HasPrefix(strings.ToLower(cleaned), "json") {
			cleaned = strings.TrimSpace(cleaned[4:])
		}
	}

	if obj := tryUnmarshalObject(cleaned); obj != nil {
		return obj
	}

	// Fallback: try the outermost {...} span.
	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start != -1 && end > start {
		if obj := tryUnmarshalObject(cleaned[start : end+1]); obj != nil {
			return obj
		}
	}

	return nil
}

func tryUnmarshalObject(s string) map[string]any {
	var obj map[string]any
	if err := json.Unmarshal([]byte(s), &obj); err != nil {
		return nil
	}
	// json "null" unmarshals into a nil map without error.
	if obj == nil {
		return nil
	}
	return obj
}

// BuildIdeaRecord turns a parsed object (or, failing that, the raw response
// text) into a normalized IdeaRecord. Field values are truncated before the
// cosmetic cleanup so the character budget is measured on the original text.
func BuildIdeaRecord(parsed map[string]any, rawText string, defaults Defaults) models.IdeaRecord {
	title := defaults.Title
	description := defaults.Description
	format := ""
	var hashtags []string

	switch {
	case parsed != nil:
		if v := stringField(parsed, "title"); v != "" {
			title = truncate(v, maxTitleLen)
		}
		if v := stringField(parsed, "description"); v != "" {
			description = truncate(v, maxDescriptionLen)
		}
		format = truncate(stringField(parsed, "format"), maxFormatLen)
		hashtags = hashtagList(parsed["hashtags"])

	case rawText != "":
		var lines []string
		for _, p := range strings.Split(rawText, "\n") {
			if p = strings.TrimSpace(p); p != "" {
				lines = append(lines, p)
			}
		}
		if len(lines) > 0 {
			title = truncate(lines[0], maxTitleLen)
			if len(lines) > 1 {
				description = truncate(strings.Join(lines[1:], " "), maxDescriptionLen)
			}
		}
	}

	return models.IdeaRecord{
		Title:       cleanTitle(title),
		Description: cleanDescription(description),
		Format:      format,
		Hashtags:    hashtags,
	}
}

// stringField coerces a JSON field to its string form; nil and missing
// fields become "".
func stringField(obj map[string]any, key string) string {
	v, ok := obj[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// hashtagList accepts either a JSON array of tags or a single
// comma-separated string, keeping at most maxHashtags non-empty entries.
func hashtagList(v any) []string {
	var out []string
	switch tags := v.(type) {
	case []any:
		for _, t := range tags {
			s := strings.TrimSpace(fmt.Sprint(t))
			if s == "" || t == nil {
				continue
			}
			out = append(out, s)
			if len(out) == maxHashtags {
				break
			}
		}
	case string:
		for _, t := range strings.Split(tags, ",") {
			s := strings.TrimSpace(t)
			if s == "" {
				continue
			}
			out = append(out, s)
			if len(out) == maxHashtags {
				break
			}
		}
	}
	return out
}

// truncate limits s to max runes.
func truncate(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max])
}

// cleanTitle and cleanDescription strip common model-output artifacts such
// as markdown bold markers and echoed field labels.
func cleanTitle(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "Title", "")
	s = strings.ReplaceAll(s, ":", "")
	s = strings.ReplaceAll(s, `"`, "")
	return s
}

func cleanDescription(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "Short", "")
	s = strings.ReplaceAll(s, "Description", "")
	s = strings.ReplaceAll(s, ":", "")
	s = strings.ReplaceAll(s, `"`, "")
	return s
}
