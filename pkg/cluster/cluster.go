// Package cluster groups the points of a row so their icons do not overlap.
package cluster

import (
	"sort"

	"github.com/majdbaddour/timeline/pkg/coord"
)

// Point is a row item placed on the timeline.
type Point struct {
	// Time in milliseconds since the Unix epoch.
	Time float64 `json:"time"`
	// Index of the item in its row.
	Index int `json:"index"`
	// Position in pixels within the extended frame.
	Position float64 `json:"position"`
}

// Cluster is a non-empty run of points drawn as one icon or badge.
type Cluster struct {
	Points []Point `json:"points"`
}

func (c Cluster) Len() int { return len(c.Points) }

func (c Cluster) First() Point { return c.Points[0] }

func (c Cluster) Last() Point { return c.Points[len(c.Points)-1] }

// Center is the pixel the icon is centred on: the point itself for a
// singleton, otherwise halfway between the first and last member.
func (c Cluster) Center() float64 {
	if len(c.Points) == 1 {
		return c.Points[0].Position
	}
	return (c.First().Position + c.Last().Position) / 2
}

// Width is the footprint of the rendered icon.
func (c Cluster) Width() float64 {
	if len(c.Points) > 1 {
		return coord.ClusterWidth
	}
	return coord.IconWidth
}

// Left is the left edge of the rendered icon.
func (c Cluster) Left() float64 {
	return c.Center() - c.Width()/2
}

// Indices returns the row indices of the members in time order.
func (c Cluster) Indices() []int {
	out := make([]int, len(c.Points))
	for i, p := range c.Points {
		out[i] = p.Index
	}
	return out
}

// Sweep partitions points, which must already be sorted by position, into
// clusters. An item joins the open cluster when it lies within the current
// footprint of the item before it: iconWidth while the cluster holds a single
// point, clusterWidth once it holds more.
func Sweep(points []Point, iconWidth, clusterWidth float64) []Cluster {
	if len(points) == 0 {
		return nil
	}
	var out []Cluster
	open := Cluster{Points: []Point{points[0]}}
	footprint := iconWidth
	prev := points[0].Position

	for _, p := range points[1:] {
		if p.Position <= prev+footprint {
			open.Points = append(open.Points, p)
			footprint = clusterWidth
		} else {
			out = append(out, open)
			open = Cluster{Points: []Point{p}}
			footprint = iconWidth
		}
		prev = p.Position
	}
	return append(out, open)
}

// Build places points on the window [anchor, anchor+scale], drops those
// outside it and sweeps the rest with the reference footprints. Position is
// recomputed for every point; the input slice is not modified.
func Build(points []Point, anchor, scale, width float64) []Cluster {
	end := anchor + scale
	visible := make([]Point, 0, len(points))
	for _, p := range points {
		if p.Time < anchor || p.Time > end {
			continue
		}
		p.Position = coord.Position(p.Time, anchor, scale, width)
		visible = append(visible, p)
	}
	sort.SliceStable(visible, func(i, j int) bool {
		if visible[i].Position != visible[j].Position {
			return visible[i].Position < visible[j].Position
		}
		return visible[i].Index < visible[j].Index
	})
	return Sweep(visible, coord.IconWidth, coord.ClusterWidth)
}
