package cluster

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/majdbaddour/timeline/pkg/coord"
)

func positioned(ps ...float64) []Point {
	out := make([]Point, len(ps))
	for i, p := range ps {
		out[i] = Point{Index: i, Position: p}
	}
	return out
}

func TestSweepFootprintGrows(t *testing.T) {
	got := Sweep(positioned(0, 8, 30, 60), coord.IconWidth, coord.ClusterWidth)
	if len(got) != 2 {
		t.Fatalf("expected 2 clusters, got %d: %+v", len(got), got)
	}
	if idx := got[0].Indices(); len(idx) != 3 || idx[0] != 0 || idx[2] != 2 {
		t.Errorf("first cluster = %v", idx)
	}
	if got[0].Center() != 15 || got[0].Width() != coord.ClusterWidth || got[0].Left() != 2.5 {
		t.Errorf("first cluster geometry center=%v width=%v left=%v",
			got[0].Center(), got[0].Width(), got[0].Left())
	}
	if got[1].Len() != 1 || got[1].Center() != 60 || got[1].Width() != coord.IconWidth {
		t.Errorf("second cluster = %+v", got[1])
	}
}

func TestSweepSingletonFootprint(t *testing.T) {
	// 11 is past the icon footprint of a lone point.
	got := Sweep(positioned(0, 11), coord.IconWidth, coord.ClusterWidth)
	if len(got) != 2 {
		t.Fatalf("expected 2 clusters, got %+v", got)
	}
	got = Sweep(positioned(0, 10), coord.IconWidth, coord.ClusterWidth)
	if len(got) != 1 {
		t.Fatalf("expected the boundary to merge, got %+v", got)
	}
}

func TestSweepEmpty(t *testing.T) {
	if got := Sweep(nil, coord.IconWidth, coord.ClusterWidth); len(got) != 0 {
		t.Fatalf("expected no clusters, got %+v", got)
	}
	if got := Build(nil, 0, coord.OneDay, 600); len(got) != 0 {
		t.Fatalf("expected no clusters, got %+v", got)
	}
}

func TestSweepProperties(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 200; round++ {
		n := 1 + r.Intn(40)
		ps := make([]float64, n)
		for i := range ps {
			ps[i] = r.Float64() * 600
		}
		sort.Float64s(ps)
		clusters := Sweep(positioned(ps...), coord.IconWidth, coord.ClusterWidth)

		// Every point exactly once, in order.
		next := 0
		for _, c := range clusters {
			if c.Len() == 0 {
				t.Fatalf("round %d: empty cluster", round)
			}
			for _, p := range c.Points {
				if p.Index != next {
					t.Fatalf("round %d: expected index %d, got %d", round, next, p.Index)
				}
				next++
			}
		}
		if next != n {
			t.Fatalf("round %d: %d of %d points clustered", round, next, n)
		}

		// Neighbours within an icon width never straddle a cluster boundary.
		for i := 1; i < len(clusters); i++ {
			gap := clusters[i].First().Position - clusters[i-1].Last().Position
			if gap <= coord.IconWidth {
				t.Fatalf("round %d: points %v apart were split", round, gap)
			}
		}
	}
}

func TestSweepWideGapsAreSingletons(t *testing.T) {
	got := Sweep(positioned(0, 26, 52, 100, 400), coord.IconWidth, coord.ClusterWidth)
	if len(got) != 5 {
		t.Fatalf("expected 5 singletons, got %+v", got)
	}
}

func TestBuild(t *testing.T) {
	const (
		anchor = 1_000_000.0
		scale  = coord.OneHour
		width  = 600.0
	)
	points := []Point{
		{Time: anchor + scale/2, Index: 0},
		{Time: anchor - 1, Index: 1},
		{Time: anchor, Index: 2},
		{Time: anchor + scale, Index: 3},
		{Time: anchor + scale + 1, Index: 4},
		{Time: anchor + scale/2, Index: 5},
	}
	got := Build(points, anchor, scale, width)
	if len(got) != 3 {
		t.Fatalf("expected 3 clusters, got %+v", got)
	}
	if idx := got[0].Indices(); len(idx) != 1 || idx[0] != 2 {
		t.Errorf("first cluster = %v", idx)
	}
	if idx := got[1].Indices(); len(idx) != 2 || idx[0] != 0 || idx[1] != 5 {
		t.Errorf("ties should keep row order, got %v", idx)
	}
	if got[1].Center() != coord.Position(anchor+scale/2, anchor, scale, width) {
		t.Errorf("unexpected center %v", got[1].Center())
	}
	if idx := got[2].Indices(); len(idx) != 1 || idx[0] != 3 {
		t.Errorf("last cluster = %v", idx)
	}
	if points[0].Position != 0 {
		t.Errorf("input was modified")
	}
}
