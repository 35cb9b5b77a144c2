package teaui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"

	"github.com/majdbaddour/timeline/pkg/axis"
	"github.com/majdbaddour/timeline/pkg/cluster"
	"github.com/majdbaddour/timeline/pkg/control"
)

type cellKind int

const (
	cellPlain cellKind = iota
	cellTitle
	cellSubtitle
	cellPoint
	cellCluster
	cellSelected
)

type cell struct {
	r    rune
	kind cellKind
	band int8
}

// strip is one line of the timeline area, a column per cell.
type strip []cell

func newStrip(cols int, bands []int8) strip {
	s := make(strip, cols)
	for i := range s {
		s[i] = cell{r: ' ', band: bands[i]}
	}
	return s
}

// write places text starting at column col, clipped to the strip and to limit.
func (s strip) write(col, limit int, text string, kind cellKind) {
	if limit > len(s) {
		limit = len(s)
	}
	for _, r := range text {
		if col >= limit {
			return
		}
		if col >= 0 {
			s[col].r = r
			s[col].kind = kind
		}
		col++
	}
}

// View renders the timeline.
func (m *Model) View() string {
	if m.termWidth == 0 || m.termHeight == 0 {
		return ""
	}
	if m.showHelp {
		return m.help.View()
	}

	res := m.ctrl.Labels()
	cols := min(m.timelineCols(), max(m.termWidth-labelCols, 0))
	bands := m.bandColumns(res, cols)

	var b strings.Builder
	b.WriteString(m.fit(m.renderHeader()))
	b.WriteByte('\n')

	titles, subtitles := m.axisStrips(res, cols, bands)
	gutter := strings.Repeat(" ", labelCols)
	b.WriteString(gutter + m.renderStrip(titles))
	b.WriteByte('\n')
	b.WriteString(gutter + m.renderStrip(subtitles))
	b.WriteByte('\n')

	lines := make([]string, 0, len(m.lanes))
	for i := range m.lanes {
		lines = append(lines, m.renderLane(i, cols, bands))
	}
	m.lanesView.SetContent(strings.Join(lines, "\n"))
	m.lanesView.SetYOffset(m.laneOffset)
	b.WriteString(m.lanesView.View())
	b.WriteByte('\n')

	b.WriteString(m.fit(m.renderStatus()))
	b.WriteByte('\n')
	b.WriteString(m.fit(m.renderLegend()))
	return b.String()
}

func (m *Model) fit(s string) string {
	return ansi.Truncate(s, m.termWidth, "…")
}

func (m *Model) renderHeader() string {
	v := m.ctrl.View()
	th := m.theme.Header
	table := m.ctrl.Table()

	parts := []string{th.Title.Render(table.NavTitle(v.CalendarMode, v.Anchor))}
	if l, ok := m.ctrl.Level(); ok {
		parts = append(parts, th.Level.Render(l.Label))
	}
	mode := "auto"
	if v.Pinned() {
		mode = "pinned"
	}
	parts = append(parts, th.Mode.Render(mode))
	return strings.Join(parts, "  ")
}

// bandColumns shades each column: -1 outside any band, 0 light, 1 dark.
func (m *Model) bandColumns(res axis.Result, cols int) []int8 {
	out := make([]int8, cols)
	for i := range out {
		out[i] = -1
	}
	for _, band := range res.Bands(m.ctrl.Width()) {
		shade := int8(0)
		if band.Dark {
			shade = 1
		}
		from := int(band.Left / CellWidth)
		to := int((band.Left + band.Width) / CellWidth)
		for c := from; c < to && c < cols; c++ {
			if c >= 0 {
				out[c] = shade
			}
		}
	}
	return out
}

// axisStrips places every label one column after the start of its tick and
// clips it at the next tick.
func (m *Model) axisStrips(res axis.Result, cols int, bands []int8) (strip, strip) {
	titles := newStrip(cols, bands)
	subtitles := newStrip(cols, bands)
	if res.UnitWidth <= 0 {
		return titles, subtitles
	}
	for i, l := range res.Labels {
		left := res.UnitOffset + float64(i)*res.UnitWidth
		start := int(left/CellWidth) + 1
		next := int((left+res.UnitWidth)/CellWidth) - 1
		if start < 1 {
			// First tick began before the viewport, keep its label in view.
			start = 1
		}
		avail := next - start + 1
		if avail <= 0 {
			continue
		}
		titles.write(start, next+1, truncate.StringWithTail(l.Title, uint(avail), "…"), cellTitle)
		subtitles.write(start, next+1, truncate.StringWithTail(l.Subtitle, uint(avail), "…"), cellSubtitle)
	}
	return titles, subtitles
}

func (m *Model) renderLane(i, cols int, bands []int8) string {
	l := m.lanes[i]
	label := truncate.StringWithTail(l.row.Label, labelCols-1, "…")
	label = padding.String(label, labelCols)
	if i == m.selRow {
		label = m.theme.Lane.SelectedLabel.Render(label)
	} else {
		label = m.theme.Lane.Label.Render(label)
	}

	s := newStrip(cols, bands)
	for j, c := range l.clusters {
		kind := cellPoint
		if c.Len() > 1 {
			kind = cellCluster
		}
		if i == m.selRow && j == m.selCluster {
			kind = cellSelected
		}
		left, right := m.clusterCells(c)
		s.write(left, right, glyph(c), kind)
	}
	return label + m.renderStrip(s)
}

// glyph is the text drawn for a cluster: a dot for one point, otherwise the
// number of points.
func glyph(c cluster.Cluster) string {
	if c.Len() == 1 {
		return "●"
	}
	return strconv.Itoa(c.Len())
}

// renderStrip styles runs of cells sharing a band and kind.
func (m *Model) renderStrip(s strip) string {
	var b strings.Builder
	start := 0
	for i := 1; i <= len(s); i++ {
		if i < len(s) && s[i].kind == s[start].kind && s[i].band == s[start].band {
			continue
		}
		run := make([]rune, 0, i-start)
		for _, c := range s[start:i] {
			run = append(run, c.r)
		}
		b.WriteString(m.cellStyle(s[start]).Render(string(run)))
		start = i
	}
	return b.String()
}

func (m *Model) cellStyle(c cell) lipgloss.Style {
	var style lipgloss.Style
	switch c.band {
	case 0:
		style = m.theme.Axis.Light
	case 1:
		style = m.theme.Axis.Dark
	default:
		style = lipgloss.NewStyle()
	}
	switch c.kind {
	case cellTitle:
		style = style.Bold(true)
	case cellSubtitle:
		style = style.Foreground(m.theme.Axis.Subtitle.GetForeground())
	case cellPoint:
		style = style.Foreground(m.theme.Lane.Point.GetForeground())
	case cellCluster:
		style = style.Foreground(m.theme.Lane.Cluster.GetForeground()).Bold(true)
	case cellSelected:
		style = style.Reverse(true)
	}
	return style
}

func (m *Model) renderStatus() string {
	th := m.theme.Footer
	switch m.ctrl.State() {
	case control.SliderAdjusting:
		return th.Preview.Render(fmt.Sprintf("zoom %.1f · enter commit · esc cancel", m.ctrl.View().Slider))
	case control.Dragging:
		return th.Preview.Render("dragging · release to commit")
	}
	if _, c, ok := m.selected(); ok {
		sel := m.ctrl.Table().DateString(c.First().Time)
		if m.status == "" {
			return th.Status.Render(sel)
		}
	}
	return th.Status.Render(m.status)
}

func (m *Model) renderLegend() string {
	parts := make([]string, 0, len(m.keys.Legend()))
	for _, b := range m.keys.Legend() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return m.theme.Footer.Help.Render(strings.Join(parts, " · "))
}
