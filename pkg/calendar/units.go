package calendar

import (
	"time"

	"github.com/majdbaddour/timeline/pkg/coord"
)

// clock does calendar arithmetic in a fixed location. time.Date normalises
// out-of-range fields, so day 0 of a month is the last day of the previous one.
type clock struct {
	loc *time.Location
}

func (c clock) at(ms float64) time.Time {
	return coord.Instant(ms, c.loc)
}

func (c clock) date(year int, month time.Month, day, hour, min, sec, msec int) float64 {
	return coord.Millis(time.Date(year, month, day, hour, min, sec, msec*int(time.Millisecond), c.loc))
}

func (c clock) decadeStart(ms float64) float64 {
	d := c.at(ms)
	return c.date(d.Year()-d.Year()%10, time.January, 1, 0, 0, 0, 0)
}

func (c clock) decadeEnd(ms float64) float64 {
	d := c.at(ms)
	return c.date(9+d.Year()-d.Year()%10, time.December+1, 0, 23, 59, 59, 999)
}

func (c clock) yearStart(ms float64) float64 {
	return c.date(c.at(ms).Year(), time.January, 1, 0, 0, 0, 0)
}

func (c clock) yearEnd(ms float64) float64 {
	return c.date(c.at(ms).Year(), time.December+1, 0, 23, 59, 59, 999)
}

func (c clock) monthStart(ms float64) float64 {
	d := c.at(ms)
	return c.date(d.Year(), d.Month(), 1, 0, 0, 0, 0)
}

func (c clock) monthEnd(ms float64) float64 {
	d := c.at(ms)
	return c.date(d.Year(), d.Month()+1, 0, 23, 59, 59, 999)
}

// Weeks start on Sunday.
func (c clock) weekStart(ms float64) float64 {
	d := c.at(ms)
	return c.date(d.Year(), d.Month(), d.Day()-int(d.Weekday()), 0, 0, 0, 0)
}

func (c clock) weekEnd(ms float64) float64 {
	d := c.at(ms)
	return c.date(d.Year(), d.Month(), d.Day()-int(d.Weekday())+6, 23, 59, 59, 999)
}

func (c clock) dayStart(ms float64) float64 {
	d := c.at(ms)
	return c.date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0)
}

func (c clock) dayEnd(ms float64) float64 {
	d := c.at(ms)
	return c.date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 999)
}

func (c clock) hourStart(ms float64) float64 {
	d := c.at(ms)
	return c.date(d.Year(), d.Month(), d.Day(), d.Hour(), 0, 0, 0)
}

func (c clock) minutes5Start(ms float64) float64 {
	d := c.at(ms)
	return c.date(d.Year(), d.Month(), d.Day(), d.Hour(), d.Minute()-d.Minute()%5, 0, 0)
}

func (c clock) minuteStart(ms float64) float64 {
	d := c.at(ms)
	return c.date(d.Year(), d.Month(), d.Day(), d.Hour(), d.Minute(), 0, 0)
}

func (c clock) seconds5Start(ms float64) float64 {
	d := c.at(ms)
	return c.date(d.Year(), d.Month(), d.Day(), d.Hour(), d.Minute(), d.Second()-d.Second()%5, 0)
}

func (c clock) secondStart(ms float64) float64 {
	d := c.at(ms)
	return c.date(d.Year(), d.Month(), d.Day(), d.Hour(), d.Minute(), d.Second(), 0)
}

func (c clock) subSecondStart(ms float64) float64 {
	d := c.at(ms)
	milli := d.Nanosecond() / int(time.Millisecond)
	return c.date(d.Year(), d.Month(), d.Day(), d.Hour(), d.Minute(), d.Second(), milli-milli%100)
}

// fixedEnd turns a start function for a unit of constant length into its end
// function.
func fixedEnd(start UnitFunc, length float64) UnitFunc {
	return func(ms float64) float64 { return start(ms) + length - 1 }
}

// stepped builds the neighbour spans of a unit of variable length. The
// neighbour is found by stepping past the current unit's boundary; day units
// step two hours so a DST shift cannot land inside the same day.
func stepped(start, end UnitFunc, step float64) (next, prev Span) {
	next = Span{
		Start: func(ms float64) float64 { return start(end(ms) + step) },
		End:   func(ms float64) float64 { return end(end(ms) + step) },
	}
	prev = Span{
		Start: func(ms float64) float64 { return start(start(ms) - step) },
		End:   func(ms float64) float64 { return end(start(ms) - step) },
	}
	return next, prev
}

// fixed builds the neighbour spans of a unit of constant length.
func fixed(start, end UnitFunc, length float64) (next, prev Span) {
	next = Span{
		Start: func(ms float64) float64 { return start(ms) + length },
		End:   func(ms float64) float64 { return end(ms) + length },
	}
	prev = Span{
		Start: func(ms float64) float64 { return start(ms) - length },
		End:   func(ms float64) float64 { return end(ms) - length },
	}
	return next, prev
}

func referenceLevels(c clock) []Level {
	f := formatter{clock: c}
	top := coord.MaxScale

	decadeNext, decadePrev := stepped(c.decadeStart, c.decadeEnd, coord.OneDay)
	yearNext, yearPrev := stepped(c.yearStart, c.yearEnd, coord.OneDay)
	monthNext, monthPrev := stepped(c.monthStart, c.monthEnd, coord.OneDay)
	weekNext, weekPrev := stepped(c.weekStart, c.weekEnd, coord.OneDay)
	dayNext, dayPrev := stepped(c.dayStart, c.dayEnd, 2*coord.OneHour)

	hourEnd := fixedEnd(c.hourStart, coord.OneHour)
	hourNext, hourPrev := fixed(c.hourStart, hourEnd, coord.OneHour)
	min5End := fixedEnd(c.minutes5Start, 5*coord.OneMinute)
	min5Next, min5Prev := fixed(c.minutes5Start, min5End, 5*coord.OneMinute)
	minuteEnd := fixedEnd(c.minuteStart, coord.OneMinute)
	minuteNext, minutePrev := fixed(c.minuteStart, minuteEnd, coord.OneMinute)
	sec5End := fixedEnd(c.seconds5Start, 5*coord.OneSecond)
	sec5Next, sec5Prev := fixed(c.seconds5Start, sec5End, 5*coord.OneSecond)
	secondEnd := fixedEnd(c.secondStart, coord.OneSecond)
	secondNext, secondPrev := fixed(c.secondStart, secondEnd, coord.OneSecond)
	subEnd := fixedEnd(c.subSecondStart, 100)
	subNext, subPrev := fixed(c.subSecondStart, subEnd, 100)

	return []Level{
		{
			Name: Decade, Label: "DECADE", Zone: Zone{top / 3, 2 * top},
			Start: c.decadeStart, End: c.decadeEnd, Next: decadeNext, Prev: decadePrev,
			Format: f.year, Child: Year,
		},
		{
			Name: BigYear, Label: "B-YEAR", Zone: Zone{top / 5, top / 3},
			Start: c.yearStart, End: c.yearEnd, Next: yearNext, Prev: yearPrev,
			Format: f.shortMonth, Child: Month,
		},
		{
			Name: Year, Label: "YEAR", Render: true, Zone: Zone{120 * coord.OneDay, top / 5},
			Start: c.yearStart, End: c.yearEnd, Next: yearNext, Prev: yearPrev,
			Format: f.fullMonth, Child: Month,
		},
		{
			// Spans a few months but steps and labels by week.
			Name: BigMonth, Label: "B-MONTH", Zone: Zone{40 * coord.OneDay, 120 * coord.OneDay},
			Start: c.weekStart, End: c.weekEnd, Next: weekNext, Prev: weekPrev,
			Format: f.week, Child: Week,
		},
		{
			Name: Month, Label: "MONTH", Render: true, Zone: Zone{10 * coord.OneDay, 40 * coord.OneDay},
			Start: c.monthStart, End: c.monthEnd, Next: monthNext, Prev: monthPrev,
			Format: f.day, Child: Day,
		},
		{
			Name: Week, Label: "WEEK", Render: true, Zone: Zone{2 * coord.OneDay, 10 * coord.OneDay},
			Start: c.weekStart, End: c.weekEnd, Next: weekNext, Prev: weekPrev,
			Format: f.fullDay, Child: Day,
		},
		{
			Name: Day, Label: "DAY", Render: true, Zone: Zone{3 * coord.OneHour, 2 * coord.OneDay},
			Start: c.dayStart, End: c.dayEnd, Next: dayNext, Prev: dayPrev,
			Format: f.hour, Child: Hour,
		},
		{
			Name: Hour, Label: "HOUR", Zone: Zone{20 * coord.OneMinute, 3 * coord.OneHour},
			Start: c.hourStart, End: hourEnd, Next: hourNext, Prev: hourPrev,
			Format: f.subHour, Child: Minutes5,
		},
		{
			Name: Minutes5, Label: "5 MINUTE", Zone: Zone{3 * coord.OneMinute, 20 * coord.OneMinute},
			Start: c.minutes5Start, End: min5End, Next: min5Next, Prev: min5Prev,
			Format: f.minute, Child: Minute,
		},
		{
			Name: Minute, Label: "MINUTE", Zone: Zone{20 * coord.OneSecond, 3 * coord.OneMinute},
			Start: c.minuteStart, End: minuteEnd, Next: minuteNext, Prev: minutePrev,
			Format: f.subMinute, Child: Seconds5,
		},
		{
			Name: Seconds5, Label: "5 SECOND", Zone: Zone{3 * coord.OneSecond, 20 * coord.OneSecond},
			Start: c.seconds5Start, End: sec5End, Next: sec5Next, Prev: sec5Prev,
			Format: f.second, Child: Second,
		},
		{
			Name: Second, Label: "SECOND", Zone: Zone{coord.OneSecond / 10, 3 * coord.OneSecond},
			Start: c.secondStart, End: secondEnd, Next: secondNext, Prev: secondPrev,
			Format: f.subSecond, Child: Millisecond100,
		},
		{
			Name: Millisecond100, Label: "100 MS", Zone: Zone{0, coord.OneSecond / 10},
			Start: c.subSecondStart, End: subEnd, Next: subNext, Prev: subPrev,
			Format: f.subSecond,
		},
	}
}
