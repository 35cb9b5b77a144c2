package calendar

import (
	"strconv"
	"time"
)

// formatter renders axis labels for tick times.
type formatter struct {
	clock
}

func (f formatter) year(ms float64) Label {
	return Label{Title: strconv.Itoa(f.at(ms).Year())}
}

func (f formatter) shortMonth(ms float64) Label {
	d := f.at(ms)
	return Label{Title: d.Month().String()[:3], Subtitle: strconv.Itoa(d.Year())}
}

func (f formatter) fullMonth(ms float64) Label {
	d := f.at(ms)
	return Label{Title: d.Month().String(), Subtitle: strconv.Itoa(d.Year())}
}

func (f formatter) week(ms float64) Label {
	d := f.at(ms)
	return Label{Title: d.Month().String()[:3], Subtitle: strconv.Itoa(d.Day())}
}

func (f formatter) day(ms float64) Label {
	d := f.at(ms)
	return Label{Title: strconv.Itoa(d.Day()), Subtitle: d.Weekday().String()[:3]}
}

func (f formatter) fullDay(ms float64) Label {
	d := f.at(ms)
	return Label{Title: d.Weekday().String(), Subtitle: strconv.Itoa(d.Day())}
}

func (f formatter) hour(ms float64) Label {
	h, meridiem := twelveHour(f.at(ms).Hour())
	return Label{Title: strconv.Itoa(h), Subtitle: meridiem}
}

// subHour marks every half hour with the clock hour and the other 5 minute
// ticks with their minute.
func (f formatter) subHour(ms float64) Label {
	d := f.at(ms)
	m := d.Minute()
	if m%30 == 0 {
		return Label{Title: clockHour(d)}
	}
	return Label{Subtitle: strconv.Itoa(m-m%5) + " m"}
}

func (f formatter) minute(ms float64) Label {
	d := f.at(ms)
	m := d.Minute()
	if m%10 == 0 {
		return Label{Title: clockHour(d)}
	}
	return Label{Subtitle: strconv.Itoa(m) + " m"}
}

func (f formatter) subMinute(ms float64) Label {
	d := f.at(ms)
	s := d.Second()
	if s%15 == 0 {
		return Label{Title: clockHour(d), Subtitle: strconv.Itoa(d.Minute()) + " m"}
	}
	return Label{Subtitle: strconv.Itoa(s-s%5) + " s"}
}

func (f formatter) second(ms float64) Label {
	d := f.at(ms)
	s := d.Second()
	if s%5 == 0 {
		return Label{Title: clockHour(d), Subtitle: strconv.Itoa(d.Minute()) + " m"}
	}
	return Label{Subtitle: strconv.Itoa(s) + " s"}
}

func (f formatter) subSecond(ms float64) Label {
	milli := f.at(ms).Nanosecond() / int(time.Millisecond)
	return Label{Title: strconv.Itoa(milli-milli%100) + " ms"}
}

func twelveHour(h int) (int, string) {
	switch {
	case h == 0:
		return 12, "AM"
	case h < 12:
		return h, "AM"
	case h == 12:
		return 12, "PM"
	}
	return h % 12, "PM"
}

func clockHour(d time.Time) string {
	h, meridiem := twelveHour(d.Hour())
	return strconv.Itoa(h) + " " + meridiem
}

// NavTitle renders the date navigation header for a window anchored at ms.
// Pinned year, month, week and day modes get a descriptive title; anything
// else falls back to a plain m/d/yyyy date.
func (t *Table) NavTitle(mode Name, ms float64) string {
	d := t.Instant(ms)
	switch mode {
	case Year:
		return d.Format("2006")
	case Month:
		return d.Format("January 2006")
	case Week:
		return d.Format("Jan 2 2006")
	case Day:
		return d.Format("Mon Jan 2 2006")
	}
	return d.Format("1/2/2006")
}

// DateString renders ms as mm/dd/yyyy hh:mm:ss on a 24 hour clock.
func (t *Table) DateString(ms float64) string {
	return t.Instant(ms).Format("01/02/2006 15:04:05")
}
