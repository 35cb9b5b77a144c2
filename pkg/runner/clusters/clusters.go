// Package clusters provides the CLI runner grouping row points in a window.
package clusters

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"github.com/majdbaddour/timeline/pkg/calendar"
	"github.com/majdbaddour/timeline/pkg/printers"
	"github.com/majdbaddour/timeline/pkg/row"
	"github.com/majdbaddour/timeline/pkg/window"
)

// Clusters prints the clusters every row forms in Window.
type Clusters struct {
	Table  *calendar.Table
	Window window.TimeWindow
	Width  float64
	Rows   []row.Row
	JSON   bool
	Out    io.Writer
}

type clusterJSON struct {
	Center  float64 `json:"center"`
	Left    float64 `json:"left"`
	Width   float64 `json:"width"`
	Indices []int   `json:"indices"`
	Title   string  `json:"title"`
}

type rowJSON struct {
	Key      string        `json:"key"`
	Label    string        `json:"label"`
	Clusters []clusterJSON `json:"clusters"`
}

// Do renders the clusters.
func (c *Clusters) Do(_ context.Context) error {
	if len(c.Rows) == 0 {
		return errors.New("clusters: no rows, pass --rows")
	}
	if c.Width <= 0 {
		return errors.New("clusters: width must be positive")
	}
	out := c.Out
	if out == nil {
		out = color.Output
	}

	loc := c.Table.Location()
	all := make([]printers.RowClusters, 0, len(c.Rows))
	for _, r := range c.Rows {
		all = append(all, printers.RowClusters{Row: r, Clusters: r.Clusters(c.Window, c.Width, loc)})
	}
	if !c.JSON {
		printers.Clusters(out, c.Table, all)
		return nil
	}

	rows := make([]rowJSON, 0, len(all))
	for _, rc := range all {
		rj := rowJSON{Key: rc.Row.Key, Label: rc.Row.Label, Clusters: []clusterJSON{}}
		for _, cl := range rc.Clusters {
			rj.Clusters = append(rj.Clusters, clusterJSON{
				Center:  cl.Center(),
				Left:    cl.Left(),
				Width:   cl.Width(),
				Indices: cl.Indices(),
				Title:   row.Title(cl, c.Table),
			})
		}
		rows = append(rows, rj)
	}
	return printers.JSON(out, rows)
}
