package axis

import (
	"testing"
	"time"

	"github.com/majdbaddour/timeline/pkg/calendar"
	"github.com/majdbaddour/timeline/pkg/coord"
)

func at(year int, month time.Month, day, hour, min int) float64 {
	return coord.Millis(time.Date(year, month, day, hour, min, 0, 0, time.UTC))
}

func TestGenerateYear(t *testing.T) {
	table := calendar.New(time.UTC)
	anchor := at(2024, time.January, 1, 0, 0)
	scale := 365 * coord.OneDay

	res := Generate(table, anchor, scale, 730, "")
	if res.Level.Name != calendar.Year {
		t.Fatalf("expected year level, got %q", res.Level.Name)
	}
	if len(res.Labels) != 12 {
		t.Fatalf("expected 12 month labels, got %d: %+v", len(res.Labels), res.Labels)
	}
	if res.Labels[0].Title != "January" || res.Labels[11].Title != "December" {
		t.Errorf("unexpected labels %+v", res.Labels)
	}
	if res.UnitOffset != 0 {
		t.Errorf("expected zero offset, got %v", res.UnitOffset)
	}
	// 366 days in 2024 plus the trailing 31 day step, averaged over 13.
	want := coord.PixelDelta((366+31)*coord.OneDay, scale, 730) / 13
	if d := res.UnitWidth - want; d > 1e-9 || d < -1e-9 {
		t.Errorf("UnitWidth = %v, want %v", res.UnitWidth, want)
	}
}

func TestGenerateDay(t *testing.T) {
	table := calendar.New(time.UTC)
	res := Generate(table, at(2024, time.May, 5, 0, 0), coord.OneDay, 600, "")

	if res.Level.Name != calendar.Day {
		t.Fatalf("expected day level, got %q", res.Level.Name)
	}
	if len(res.Labels) != 24 {
		t.Fatalf("expected 24 hour labels, got %d", len(res.Labels))
	}
	if got := res.Labels[0]; got.Title != "12" || got.Subtitle != "AM" {
		t.Errorf("first label = %+v", got)
	}
	if got := res.Labels[13]; got.Title != "1" || got.Subtitle != "PM" {
		t.Errorf("label 13 = %+v", got)
	}
	if res.UnitWidth != 25 {
		t.Errorf("UnitWidth = %v, want 25", res.UnitWidth)
	}
}

func TestGenerateOffsetIsSigned(t *testing.T) {
	table := calendar.New(time.UTC)
	res := Generate(table, at(2024, time.May, 5, 0, 30), coord.OneDay, 600, "")
	if res.UnitOffset != -12.5 {
		t.Fatalf("UnitOffset = %v, want -12.5", res.UnitOffset)
	}
	if len(res.Labels) != 25 {
		t.Fatalf("expected 25 labels covering the partial first hour, got %d", len(res.Labels))
	}
}

func TestGeneratePinned(t *testing.T) {
	table := calendar.New(time.UTC)
	res := Generate(table, at(2024, time.May, 15, 0, 0), coord.OneDay, 600, calendar.Year)
	if res.Level.Name != calendar.Year {
		t.Fatalf("expected pinned year level, got %q", res.Level.Name)
	}
	if len(res.Labels) != 1 || res.Labels[0].Title != "May" {
		t.Fatalf("unexpected labels %+v", res.Labels)
	}
	if res.UnitOffset >= 0 {
		t.Fatalf("expected the month start left of the anchor, got %v", res.UnitOffset)
	}
}

func TestGenerateEmpty(t *testing.T) {
	ref := calendar.New(time.UTC)
	day, _ := ref.Lookup(calendar.Day)
	gapped := calendar.FromLevels(time.UTC, day)

	tests := []struct {
		name  string
		table *calendar.Table
		scale float64
		width float64
	}{
		{"no level", gapped, coord.MaxScale, 600},
		{"zero width", ref, coord.OneDay, 0},
		{"zero scale", ref, 0, 600},
		{"nil table", nil, coord.OneDay, 600},
	}
	for _, tc := range tests {
		res := Generate(tc.table, 0, tc.scale, tc.width, "")
		if len(res.Labels) != 0 || res.UnitWidth != 0 || res.UnitOffset != 0 {
			t.Errorf("%s: expected empty result, got %+v", tc.name, res)
		}
	}
}

func TestGenerateCapsTicks(t *testing.T) {
	table := calendar.New(time.UTC)
	res := Generate(table, 0, coord.MaxScale, 600, calendar.Millisecond100)
	if len(res.Labels) != MaxTicks {
		t.Fatalf("expected %d labels, got %d", MaxTicks, len(res.Labels))
	}
}

func TestBands(t *testing.T) {
	r := Result{
		Labels:     make([]calendar.Label, 3),
		UnitWidth:  100,
		UnitOffset: -50,
	}
	got := r.Bands(250)
	want := []Band{
		{Left: 0, Width: 50},
		{Left: 50, Width: 100, Dark: true},
		{Left: 150, Width: 100},
	}
	if len(got) != len(want) {
		t.Fatalf("Bands = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("band %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if b := (Result{}).Bands(250); b != nil {
		t.Errorf("expected no bands for an empty result, got %+v", b)
	}
}
