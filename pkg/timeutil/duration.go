// Package timeutil parses the compact spans accepted by CLI flags, such as
// "1w", "90m" or "1y6mo".
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/majdbaddour/timeline/pkg/coord"
)

const (
	// DefaultSpan is used when no span is provided.
	DefaultSpan = "1d"

	// oneYear and oneMonth are average lengths, good enough for flag input.
	oneYear  = 365.25 * coord.OneDay
	oneMonth = oneYear / 12
)

var (
	spanPattern = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)\s*([a-z]+)`)
	unitMap     = map[string]float64{
		"ms":      coord.OneMillisecond,
		"s":       coord.OneSecond,
		"sec":     coord.OneSecond,
		"secs":    coord.OneSecond,
		"second":  coord.OneSecond,
		"seconds": coord.OneSecond,
		"m":       coord.OneMinute,
		"min":     coord.OneMinute,
		"mins":    coord.OneMinute,
		"minute":  coord.OneMinute,
		"minutes": coord.OneMinute,
		"h":       coord.OneHour,
		"hr":      coord.OneHour,
		"hrs":     coord.OneHour,
		"hour":    coord.OneHour,
		"hours":   coord.OneHour,
		"d":       coord.OneDay,
		"day":     coord.OneDay,
		"days":    coord.OneDay,
		"w":       coord.OneWeek,
		"wk":      coord.OneWeek,
		"wks":     coord.OneWeek,
		"week":    coord.OneWeek,
		"weeks":   coord.OneWeek,
		"mo":      oneMonth,
		"month":   oneMonth,
		"months":  oneMonth,
		"y":       oneYear,
		"yr":      oneYear,
		"yrs":     oneYear,
		"year":    oneYear,
		"years":   oneYear,
	}
)

// ParseSpan parses a human-friendly span (for example "1w", "3d", "1.5h" or
// "1w2d6h") into milliseconds along with a canonical, compact representation.
// When the input is empty, DefaultSpan is used.
func ParseSpan(input string) (float64, string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		trimmed = DefaultSpan
	}

	remaining := strings.ToLower(trimmed)
	total := 0.0
	for len(remaining) > 0 {
		matches := spanPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, "", fmt.Errorf("invalid span segment %q", strings.TrimSpace(remaining))
		}
		valueStr := matches[1]
		unitStr := matches[2]

		value, err := strconv.ParseFloat(valueStr, 64)
		if err != nil {
			return 0, "", fmt.Errorf("invalid span value %q: %w", valueStr, err)
		}
		base, ok := unitMap[unitStr]
		if !ok {
			return 0, "", fmt.Errorf("unsupported span unit %q", unitStr)
		}
		total += value * base

		remaining = remaining[len(matches[0]):]
	}

	if total <= 0 {
		return 0, "", fmt.Errorf("span must be greater than zero")
	}

	return total, FormatSpan(total), nil
}

// FormatSpan renders milliseconds using year/week/day/hour/minute/second
// tokens. Months are not used since they do not divide evenly.
func FormatSpan(ms float64) string {
	if ms <= 0 {
		return "0s"
	}

	type unit struct {
		label string
		value float64
	}
	units := []unit{
		{"y", oneYear},
		{"w", coord.OneWeek},
		{"d", coord.OneDay},
		{"h", coord.OneHour},
		{"m", coord.OneMinute},
		{"s", coord.OneSecond},
		{"ms", coord.OneMillisecond},
	}

	var parts []string
	remaining := ms
	for _, u := range units {
		if remaining < u.value {
			continue
		}
		count := float64(int64(remaining / u.value))
		remaining -= count * u.value
		parts = append(parts, fmt.Sprintf("%d%s", int64(count), u.label))
	}
	if len(parts) == 0 {
		return "0s"
	}
	return strings.Join(parts, "")
}
