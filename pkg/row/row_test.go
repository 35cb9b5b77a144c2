package row

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/majdbaddour/timeline/pkg/calendar"
	"github.com/majdbaddour/timeline/pkg/cluster"
	"github.com/majdbaddour/timeline/pkg/coord"
	"github.com/majdbaddour/timeline/pkg/window"
)

var est = time.FixedZone("EST", -5*60*60)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"2024-01-02T10:00:00Z", time.Date(2024, time.January, 2, 10, 0, 0, 0, est), true},
		{"2024-01-02T10:00:00", time.Date(2024, time.January, 2, 10, 0, 0, 0, est), true},
		{"2024-01-02T10:00:00.250Z", time.Date(2024, time.January, 2, 10, 0, 0, 250e6, est), true},
		{"2024-01-02T10:00:00+02:00", time.Date(2024, time.January, 2, 8, 0, 0, 0, time.UTC), true},
		{"2024-01-02 10:30", time.Date(2024, time.January, 2, 10, 30, 0, 0, est), true},
		{"2024-01-02", time.Date(2024, time.January, 2, 0, 0, 0, 0, est), true},
		{"", time.Time{}, false},
		{"Z", time.Time{}, false},
		{"yesterday", time.Time{}, false},
	}
	for _, tc := range tests {
		got, ok := ParseTimestamp(tc.in, est)
		if ok != tc.ok {
			t.Errorf("ParseTimestamp(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			continue
		}
		if ok && !got.Equal(tc.want) {
			t.Errorf("ParseTimestamp(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func testRow() Row {
	return Spec{
		Key:        "alerts",
		SourceType: "alerts",
		SubType:    "das",
		TimeField:  "event.at",
		Items: []any{
			map[string]any{"event": map[string]any{"at": "2024-01-02T10:00:00Z"}},
			map[string]any{"event": map[string]any{}},
			map[string]any{"event": map[string]any{"at": "not a time"}},
			map[string]any{"event": map[string]any{"at": "2024-01-02T10:00:01Z"}},
			"scalar",
			map[string]any{"event": map[string]any{"at": "2024-01-02T16:00:00Z"}},
		},
	}.Row()
}

func TestPointsSkipsMissingTimes(t *testing.T) {
	r := testRow()
	if r.Label != "alerts" {
		t.Errorf("expected label to default to key, got %q", r.Label)
	}
	points := r.Points(time.UTC)
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %+v", points)
	}
	want := []int{0, 3, 5}
	for i, p := range points {
		if p.Index != want[i] {
			t.Errorf("point %d index = %d, want %d", i, p.Index, want[i])
		}
	}
	if points[0].Time != coord.Millis(time.Date(2024, time.January, 2, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected time %v", points[0].Time)
	}
}

func TestClustersAndActivate(t *testing.T) {
	r := testRow()
	anchor := coord.Millis(time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC))
	w := window.New(anchor, coord.OneDay, "")

	clusters := r.Clusters(w, 600, time.UTC)
	if len(clusters) != 2 {
		t.Fatalf("expected 2 clusters, got %+v", clusters)
	}
	if clusters[0].Len() != 2 {
		t.Fatalf("expected the two close points to merge, got %+v", clusters[0])
	}

	var got []Selection
	r.Activate(clusters[0], func(s Selection) { got = append(got, s) })
	if len(got) != 1 {
		t.Fatalf("handler called %d times", len(got))
	}
	s := got[0]
	if s.ID == "" || s.SourceType != "alerts" || s.SubType != "das" || len(s.Items) != 2 {
		t.Fatalf("unexpected selection %+v", s)
	}
	if s.Items[0].(map[string]any)["event"] == nil {
		t.Fatalf("expected the original item payload")
	}

	r.Activate(clusters[1], nil)
	r.Activate(cluster.Cluster{}, func(Selection) { t.Fatalf("empty cluster activated") })
}

func TestTitle(t *testing.T) {
	table := calendar.New(time.UTC)
	at := coord.Millis(time.Date(2024, time.January, 2, 10, 0, 0, 0, time.UTC))
	single := cluster.Cluster{Points: []cluster.Point{{Time: at}}}
	if got := Title(single, table); got != "01/02/2024 10:00:00" {
		t.Errorf("Title = %q", got)
	}
	many := cluster.Cluster{Points: []cluster.Point{{Time: at}, {Time: at + coord.OneHour}}}
	if got := Title(many, table); got != "01/02/2024 10:00:00 - 01/02/2024 11:00:00" {
		t.Errorf("Title = %q", got)
	}
}

func TestDecodeJSON(t *testing.T) {
	in := `[{"key":"search","icon":"dataPoint","timeField":"when","items":[{"when":"2024-03-01T09:00:00Z"},{"when":"2024-03-01T09:30:00Z"}]}]`
	rows, err := Decode(strings.NewReader(in), JSON)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].IconID != "dataPoint" {
		t.Fatalf("unexpected rows %+v", rows)
	}
	if n := len(rows[0].Points(time.UTC)); n != 2 {
		t.Fatalf("expected 2 points, got %d", n)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rows.yaml")
	body := `
- key: deploys
  label: Deploys
  items:
    - time: "2024-03-01T09:00:00Z"
    - time: 2024-03-01T10:00:00Z
    - name: no time
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	rows, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].Label != "Deploys" {
		t.Fatalf("unexpected rows %+v", rows)
	}
	points := rows[0].Points(time.UTC)
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %+v", points)
	}
	if d := points[1].Time - points[0].Time; d != coord.OneHour {
		t.Fatalf("expected an hour between points, got %v", d)
	}
}

func TestFormatOf(t *testing.T) {
	if FormatOf("rows.YML") != YAML || FormatOf("rows.json") != JSON || FormatOf("rows") != JSON {
		t.Fatalf("unexpected format detection")
	}
}
