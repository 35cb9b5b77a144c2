package calendar

import (
	"math"
	"testing"
	"time"

	"github.com/majdbaddour/timeline/pkg/coord"
)

func ms(t time.Time) float64 { return coord.Millis(t) }

func utc(year int, month time.Month, day, hour, min, sec, msec int) float64 {
	return ms(time.Date(year, month, day, hour, min, sec, msec*int(time.Millisecond), time.UTC))
}

func TestSelectCoversEveryScale(t *testing.T) {
	table := New(time.UTC)
	levels := table.Levels()

	var samples []float64
	for s := 0.5; s <= coord.MaxScale; s *= 1.37 {
		samples = append(samples, s)
	}
	for _, l := range levels {
		samples = append(samples, l.Zone.Max, math.Nextafter(l.Zone.Max, math.Inf(1)))
		if l.Zone.Min > 0 {
			samples = append(samples, l.Zone.Min, math.Nextafter(l.Zone.Min, math.Inf(1)))
		}
	}
	samples = append(samples, coord.MaxScale, math.SmallestNonzeroFloat64)

	for _, s := range samples {
		if s <= 0 || s > coord.MaxScale {
			continue
		}
		matches := 0
		for _, l := range levels {
			if l.Zone.Contains(s) {
				matches++
			}
		}
		if matches != 1 {
			t.Errorf("scale %v matched %d levels", s, matches)
		}
		if _, ok := table.Select(s); !ok {
			t.Errorf("Select(%v) found no level", s)
		}
	}
}

func TestSelectBoundaryConvention(t *testing.T) {
	table := New(time.UTC)
	tests := []struct {
		scale float64
		want  Name
	}{
		{coord.OneSecond, Second},
		{3 * coord.OneSecond, Second},
		{3*coord.OneSecond + 1, Seconds5},
		{coord.OneDay, Day},
		{2 * coord.OneDay, Day},
		{2*coord.OneDay + 1, Week},
		{30 * coord.OneDay, Month},
		{365 * coord.OneDay, Year},
		{coord.MaxScale, Decade},
		{50, Millisecond100},
	}
	for _, tc := range tests {
		got, ok := table.Select(tc.scale)
		if !ok || got.Name != tc.want {
			t.Errorf("Select(%v) = %q (ok=%v), want %q", tc.scale, got.Name, ok, tc.want)
		}
	}
}

func TestSelectWithGap(t *testing.T) {
	ref := New(time.UTC)
	day, _ := ref.Lookup(Day)
	year, _ := ref.Lookup(Year)
	table := FromLevels(time.UTC, year, day)

	if _, ok := table.Select(30 * coord.OneDay); ok {
		t.Fatalf("expected no level inside the gap")
	}
	if l, ok := table.Select(coord.OneDay); !ok || l.Name != Day {
		t.Fatalf("expected day level, got %q", l.Name)
	}
	if c := table.Child(day); c.Name != Day {
		t.Fatalf("expected missing child to fall back to the level itself, got %q", c.Name)
	}
}

func TestResolvePrefersPinned(t *testing.T) {
	table := New(time.UTC)
	if l, _ := table.Resolve(Year, coord.OneDay); l.Name != Year {
		t.Fatalf("expected pinned year, got %q", l.Name)
	}
	if l, _ := table.Resolve("bogus", coord.OneDay); l.Name != Day {
		t.Fatalf("expected unknown pin to fall back to day, got %q", l.Name)
	}
}

func TestQuickLevels(t *testing.T) {
	var got []Name
	for _, l := range New(time.UTC).Quick() {
		got = append(got, l.Name)
	}
	want := []Name{Year, Month, Week, Day}
	if len(got) != len(want) {
		t.Fatalf("Quick() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Quick() = %v, want %v", got, want)
		}
	}
}

func TestUnitBoundaries(t *testing.T) {
	table := New(time.UTC)
	// Wednesday 14 Feb 2024 13:47:38.456 UTC.
	at := utc(2024, time.February, 14, 13, 47, 38, 456)

	tests := []struct {
		level      Name
		start, end float64
	}{
		{Decade, utc(2020, time.January, 1, 0, 0, 0, 0), utc(2029, time.December, 31, 23, 59, 59, 999)},
		{Year, utc(2024, time.January, 1, 0, 0, 0, 0), utc(2024, time.December, 31, 23, 59, 59, 999)},
		{Month, utc(2024, time.February, 1, 0, 0, 0, 0), utc(2024, time.February, 29, 23, 59, 59, 999)},
		{Week, utc(2024, time.February, 11, 0, 0, 0, 0), utc(2024, time.February, 17, 23, 59, 59, 999)},
		{Day, utc(2024, time.February, 14, 0, 0, 0, 0), utc(2024, time.February, 14, 23, 59, 59, 999)},
		{Hour, utc(2024, time.February, 14, 13, 0, 0, 0), utc(2024, time.February, 14, 13, 59, 59, 999)},
		{Minutes5, utc(2024, time.February, 14, 13, 45, 0, 0), utc(2024, time.February, 14, 13, 49, 59, 999)},
		{Minute, utc(2024, time.February, 14, 13, 47, 0, 0), utc(2024, time.February, 14, 13, 47, 59, 999)},
		{Seconds5, utc(2024, time.February, 14, 13, 47, 35, 0), utc(2024, time.February, 14, 13, 47, 39, 999)},
		{Second, utc(2024, time.February, 14, 13, 47, 38, 0), utc(2024, time.February, 14, 13, 47, 38, 999)},
		{Millisecond100, utc(2024, time.February, 14, 13, 47, 38, 400), utc(2024, time.February, 14, 13, 47, 38, 499)},
	}
	for _, tc := range tests {
		l, ok := table.Lookup(tc.level)
		if !ok {
			t.Fatalf("missing level %q", tc.level)
		}
		start, end := l.Bounds(at)
		if start != tc.start || end != tc.end {
			t.Errorf("%s: got [%s, %s], want [%s, %s]", tc.level,
				table.DateString(start), table.DateString(end),
				table.DateString(tc.start), table.DateString(tc.end))
		}
	}
}

func TestNeighbourUnits(t *testing.T) {
	table := New(time.UTC)
	at := utc(2024, time.January, 31, 12, 0, 0, 0)

	tests := []struct {
		level     Name
		nextStart float64
		nextEnd   float64
		prevStart float64
		prevEnd   float64
	}{
		{
			Month,
			utc(2024, time.February, 1, 0, 0, 0, 0), utc(2024, time.February, 29, 23, 59, 59, 999),
			utc(2023, time.December, 1, 0, 0, 0, 0), utc(2023, time.December, 31, 23, 59, 59, 999),
		},
		{
			Year,
			utc(2025, time.January, 1, 0, 0, 0, 0), utc(2025, time.December, 31, 23, 59, 59, 999),
			utc(2023, time.January, 1, 0, 0, 0, 0), utc(2023, time.December, 31, 23, 59, 59, 999),
		},
		{
			Decade,
			utc(2030, time.January, 1, 0, 0, 0, 0), utc(2039, time.December, 31, 23, 59, 59, 999),
			utc(2010, time.January, 1, 0, 0, 0, 0), utc(2019, time.December, 31, 23, 59, 59, 999),
		},
		{
			Day,
			utc(2024, time.February, 1, 0, 0, 0, 0), utc(2024, time.February, 1, 23, 59, 59, 999),
			utc(2024, time.January, 30, 0, 0, 0, 0), utc(2024, time.January, 30, 23, 59, 59, 999),
		},
		{
			Week,
			utc(2024, time.February, 4, 0, 0, 0, 0), utc(2024, time.February, 10, 23, 59, 59, 999),
			utc(2024, time.January, 21, 0, 0, 0, 0), utc(2024, time.January, 27, 23, 59, 59, 999),
		},
		{
			Hour,
			utc(2024, time.January, 31, 13, 0, 0, 0), utc(2024, time.January, 31, 13, 59, 59, 999),
			utc(2024, time.January, 31, 11, 0, 0, 0), utc(2024, time.January, 31, 11, 59, 59, 999),
		},
	}
	for _, tc := range tests {
		l, _ := table.Lookup(tc.level)
		if got := l.Next.Start(at); got != tc.nextStart {
			t.Errorf("%s next start = %s", tc.level, table.DateString(got))
		}
		if got := l.Next.End(at); got != tc.nextEnd {
			t.Errorf("%s next end = %s", tc.level, table.DateString(got))
		}
		if got := l.Prev.Start(at); got != tc.prevStart {
			t.Errorf("%s prev start = %s", tc.level, table.DateString(got))
		}
		if got := l.Prev.End(at); got != tc.prevEnd {
			t.Errorf("%s prev end = %s", tc.level, table.DateString(got))
		}
	}
}

func TestDayStepSurvivesDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("time zone data unavailable: %v", err)
	}
	table := New(loc)
	day, _ := table.Lookup(Day)

	// 10 March 2024 is 23 hours long in New York.
	at := ms(time.Date(2024, time.March, 10, 12, 0, 0, 0, loc))
	want := ms(time.Date(2024, time.March, 11, 0, 0, 0, 0, loc))
	if got := day.Next.Start(at); got != want {
		t.Fatalf("next day start = %v, want %v", table.Instant(got), table.Instant(want))
	}
	back := ms(time.Date(2024, time.March, 10, 0, 0, 0, 0, loc))
	if got := day.Prev.Start(want); got != back {
		t.Fatalf("prev day start = %v, want %v", table.Instant(got), table.Instant(back))
	}
}

func TestLabelFormatters(t *testing.T) {
	table := New(time.UTC)
	tests := []struct {
		level Name
		at    float64
		want  Label
	}{
		{Decade, utc(2024, time.March, 1, 0, 0, 0, 0), Label{Title: "2024"}},
		{BigYear, utc(2024, time.March, 1, 0, 0, 0, 0), Label{Title: "Mar", Subtitle: "2024"}},
		{Year, utc(2024, time.March, 1, 0, 0, 0, 0), Label{Title: "March", Subtitle: "2024"}},
		{BigMonth, utc(2024, time.March, 3, 0, 0, 0, 0), Label{Title: "Mar", Subtitle: "3"}},
		{Month, utc(2024, time.March, 3, 0, 0, 0, 0), Label{Title: "3", Subtitle: "Sun"}},
		{Week, utc(2024, time.March, 6, 0, 0, 0, 0), Label{Title: "Wednesday", Subtitle: "6"}},
		{Day, utc(2024, time.March, 6, 0, 0, 0, 0), Label{Title: "12", Subtitle: "AM"}},
		{Day, utc(2024, time.March, 6, 12, 0, 0, 0), Label{Title: "12", Subtitle: "PM"}},
		{Day, utc(2024, time.March, 6, 17, 0, 0, 0), Label{Title: "5", Subtitle: "PM"}},
		{Hour, utc(2024, time.March, 6, 17, 30, 0, 0), Label{Title: "5 PM"}},
		{Hour, utc(2024, time.March, 6, 17, 35, 0, 0), Label{Subtitle: "35 m"}},
		{Minutes5, utc(2024, time.March, 6, 9, 20, 0, 0), Label{Title: "9 AM"}},
		{Minutes5, utc(2024, time.March, 6, 9, 23, 0, 0), Label{Subtitle: "23 m"}},
		{Minute, utc(2024, time.March, 6, 9, 23, 45, 0), Label{Title: "9 AM", Subtitle: "23 m"}},
		{Minute, utc(2024, time.March, 6, 9, 23, 50, 0), Label{Subtitle: "50 s"}},
		{Seconds5, utc(2024, time.March, 6, 9, 23, 51, 0), Label{Subtitle: "51 s"}},
		{Seconds5, utc(2024, time.March, 6, 9, 23, 55, 0), Label{Title: "9 AM", Subtitle: "23 m"}},
		{Second, utc(2024, time.March, 6, 9, 23, 55, 340), Label{Title: "300 ms"}},
	}
	for _, tc := range tests {
		l, _ := table.Lookup(tc.level)
		if got := l.Format(tc.at); got != tc.want {
			t.Errorf("%s format %s = %+v, want %+v", tc.level, table.DateString(tc.at), got, tc.want)
		}
	}
}

func TestNavTitle(t *testing.T) {
	table := New(time.UTC)
	at := utc(2024, time.January, 7, 8, 0, 0, 0)
	tests := []struct {
		mode Name
		want string
	}{
		{Year, "2024"},
		{Month, "January 2024"},
		{Week, "Jan 7 2024"},
		{Day, "Sun Jan 7 2024"},
		{"", "1/7/2024"},
		{Hour, "1/7/2024"},
	}
	for _, tc := range tests {
		if got := table.NavTitle(tc.mode, at); got != tc.want {
			t.Errorf("NavTitle(%q) = %q, want %q", tc.mode, got, tc.want)
		}
	}
	if got := table.DateString(at); got != "01/07/2024 08:00:00" {
		t.Errorf("DateString = %q", got)
	}
}
