// Package printers renders timeline state as tables for the CLI.
package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/majdbaddour/timeline/pkg/axis"
	"github.com/majdbaddour/timeline/pkg/calendar"
	"github.com/majdbaddour/timeline/pkg/cluster"
	"github.com/majdbaddour/timeline/pkg/row"
	"github.com/majdbaddour/timeline/pkg/window"
)

var (
	bold  = color.New(color.Bold)
	faint = color.New(color.Faint)
	hi    = color.New(color.FgHiYellow)
)

func newTable() *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	return tbl
}

// Levels prints the calendar table, marking current.
func Levels(w io.Writer, table *calendar.Table, current calendar.Name) {
	tbl := newTable()
	tbl.AddRow(bold.Sprint("  NAME"), bold.Sprint("LABEL"), bold.Sprint("ZONE"), bold.Sprint("TICKS"), bold.Sprint("QUICK"))
	for _, l := range table.Levels() {
		name := "  " + string(l.Name)
		if l.Name == current {
			name = hi.Sprint("→ " + string(l.Name))
		}
		quick := ""
		if l.Render {
			quick = "yes"
		}
		tbl.AddRow(name, l.Label, l.Zone.String(), string(table.Child(l).Name), quick)
	}
	_, _ = fmt.Fprintln(w, tbl)
}

// Labels prints the ticks of an axis.
func Labels(w io.Writer, res axis.Result) {
	if res.Level.IsZero() {
		_, _ = faint.Fprintln(w, "no calendar level covers this window")
		return
	}
	_, _ = fmt.Fprintf(w, "%s %s  %s %.2fpx  %s %.2fpx\n",
		bold.Sprint("level"), res.Level.Name,
		bold.Sprint("unit width"), res.UnitWidth,
		bold.Sprint("offset"), res.UnitOffset)

	tbl := newTable()
	tbl.AddRow(bold.Sprint("#"), bold.Sprint("TITLE"), bold.Sprint("SUBTITLE"))
	for i, l := range res.Labels {
		tbl.AddRow(strconv.Itoa(i), l.Title, l.Subtitle)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(w, tbl)
}

// RowClusters pairs a row with its clusters for printing.
type RowClusters struct {
	Row      row.Row
	Clusters []cluster.Cluster
}

// Clusters prints the clusters of every row.
func Clusters(w io.Writer, table *calendar.Table, rows []RowClusters) {
	tbl := newTable()
	tbl.AddRow(bold.Sprint("ROW"), bold.Sprint("POINTS"), bold.Sprint("CENTER"), bold.Sprint("WIDTH"), bold.Sprint("INDICES"), bold.Sprint("WHEN"))
	for _, rc := range rows {
		if len(rc.Clusters) == 0 {
			tbl.AddRow(rc.Row.Label, faint.Sprint("0"), "", "", "", faint.Sprint("none in window"))
			continue
		}
		for _, c := range rc.Clusters {
			tbl.AddRow(rc.Row.Label,
				strconv.Itoa(c.Len()),
				strconv.FormatFloat(c.Center(), 'f', 1, 64),
				strconv.FormatFloat(c.Width(), 'f', 0, 64),
				fmt.Sprint(c.Indices()),
				row.Title(c, table))
		}
	}
	tbl.RightAlign(1)
	_, _ = fmt.Fprintln(w, tbl)
}

// Window prints a window and its effective level.
func Window(w io.Writer, table *calendar.Table, win window.TimeWindow) {
	mode := "auto"
	if win.Pinned() {
		mode = string(win.CalendarMode)
	}
	level := faint.Sprint("none")
	if l, ok := table.Resolve(win.CalendarMode, win.Scale); ok {
		level = string(l.Name)
	}

	tbl := newTable()
	tbl.AddRow(bold.Sprint("title"), table.NavTitle(win.CalendarMode, win.Anchor))
	tbl.AddRow(bold.Sprint("from"), table.DateString(win.Anchor))
	tbl.AddRow(bold.Sprint("to"), table.DateString(win.End()))
	tbl.AddRow(bold.Sprint("scale"), strconv.FormatFloat(win.Scale, 'f', -1, 64)+"ms")
	tbl.AddRow(bold.Sprint("slider"), strconv.FormatFloat(win.Slider, 'f', 3, 64))
	tbl.AddRow(bold.Sprint("mode"), mode)
	tbl.AddRow(bold.Sprint("level"), level)
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(w, tbl)
}

// JSON prints v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
