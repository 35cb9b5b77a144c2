// Package row adapts externally supplied rows of items to points on the
// timeline and reports activated clusters to a selection handler.
package row

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/majdbaddour/timeline/pkg/calendar"
	"github.com/majdbaddour/timeline/pkg/cluster"
	"github.com/majdbaddour/timeline/pkg/coord"
	"github.com/majdbaddour/timeline/pkg/window"
)

// Row is one horizontal lane of the timeline.
type Row struct {
	Key        string
	Label      string
	IconID     string
	SourceType string
	SubType    string
	Items      []any
	// ExtractTime returns the timestamp string of an item, false when it has
	// none.
	ExtractTime func(item any) (string, bool)
}

// Selection is sent to the handler when a point or cluster is activated.
type Selection struct {
	// ID is unique per activation.
	ID         string `json:"id"`
	Items      []any  `json:"items"`
	SourceType string `json:"sourceType"`
	SubType    string `json:"subType"`
}

// Handler receives selections. Its outcome is not observed.
type Handler func(Selection)

var layouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp parses an ISO 8601 style timestamp. A single trailing Z is
// dropped and the rest read as wall time in loc, so "2024-01-02T10:00:00Z"
// is ten o'clock local, not UTC. Explicit numeric offsets are honoured.
func ParseTimestamp(s string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "Z")
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Points returns the items that carry a parseable timestamp, keeping their
// index in Items. The rest are skipped.
func (r Row) Points(loc *time.Location) []cluster.Point {
	if r.ExtractTime == nil {
		return nil
	}
	out := make([]cluster.Point, 0, len(r.Items))
	for i, item := range r.Items {
		raw, ok := r.ExtractTime(item)
		if !ok {
			continue
		}
		t, ok := ParseTimestamp(raw, loc)
		if !ok {
			continue
		}
		out = append(out, cluster.Point{Time: coord.Millis(t), Index: i})
	}
	return out
}

// Clusters groups the row's points visible in w on a viewport width pixels
// wide.
func (r Row) Clusters(w window.TimeWindow, width float64, loc *time.Location) []cluster.Cluster {
	return cluster.Build(r.Points(loc), w.Anchor, w.Scale, width)
}

// Selection returns the items of c as a selection event.
func (r Row) Selection(c cluster.Cluster) Selection {
	items := make([]any, 0, c.Len())
	for _, i := range c.Indices() {
		if i >= 0 && i < len(r.Items) {
			items = append(items, r.Items[i])
		}
	}
	return Selection{
		ID:         uuid.NewString(),
		Items:      items,
		SourceType: r.SourceType,
		SubType:    r.SubType,
	}
}

// Activate sends the selection for c to h.
func (r Row) Activate(c cluster.Cluster, h Handler) {
	if h == nil || c.Len() == 0 {
		return
	}
	h(r.Selection(c))
}

// Title is the hover text of a cluster: its date, or the range of dates it
// covers.
func Title(c cluster.Cluster, table *calendar.Table) string {
	if c.Len() == 0 {
		return ""
	}
	first := table.DateString(c.First().Time)
	last := table.DateString(c.Last().Time)
	if first == last {
		return first
	}
	return first + " - " + last
}
