package row

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// Sample returns a few rows of made up activity in the days around now,
// enough to try the timeline without real data.
func Sample(now time.Time) []Spec {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	at := func(days, hour, min int) map[string]any {
		return map[string]any{
			"time": day.AddDate(0, 0, days).Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute).Format("2006-01-02T15:04:05"),
		}
	}
	with := func(item map[string]any, key, value string) map[string]any {
		item[key] = value
		return item
	}

	return []Spec{{
		Key:        "deploys",
		Label:      "Deploys",
		Icon:       "rocket",
		SourceType: "ci",
		SubType:    "deploy",
		Items: []any{
			with(at(-2, 10, 0), "service", "api"),
			with(at(-2, 10, 4), "service", "web"),
			with(at(-1, 16, 30), "service", "api"),
			with(at(0, 9, 15), "service", "worker"),
			with(at(0, 9, 16), "service", "api"),
			with(at(0, 9, 18), "service", "web"),
			with(at(2, 11, 0), "service", "api"),
		},
	}, {
		Key:        "incidents",
		Label:      "Incidents",
		Icon:       "alert",
		SourceType: "pager",
		SubType:    "incident",
		Items: []any{
			with(at(-1, 3, 12), "severity", "high"),
			with(at(0, 14, 45), "severity", "low"),
		},
	}, {
		Key:        "meetings",
		Label:      "Meetings",
		Icon:       "calendar",
		SourceType: "calendar",
		SubType:    "event",
		Items: []any{
			with(at(-3, 13, 0), "title", "Planning"),
			with(at(0, 10, 0), "title", "Standup"),
			with(at(1, 10, 0), "title", "Standup"),
			with(at(1, 15, 30), "title", "Retro"),
			with(at(7, 13, 0), "title", "Planning"),
		},
	}}
}

// Encode writes specs in format, the inverse of Decode.
func Encode(w io.Writer, specs []Spec, format Format) error {
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(specs); err != nil {
			return fmt.Errorf("failed to encode rows: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(specs); err != nil {
			return fmt.Errorf("failed to encode rows: %w", err)
		}
		return nil
	}
}
