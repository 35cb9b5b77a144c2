// Package teaui hosts the Bubble Tea program drawing the timeline: axis,
// row lanes and the keyboard and mouse controls driving a Controller.
package teaui

import (
	"context"
	"fmt"
	"log"
	"time"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/majdbaddour/timeline/pkg/cluster"
	"github.com/majdbaddour/timeline/pkg/control"
	"github.com/majdbaddour/timeline/pkg/coord"
	"github.com/majdbaddour/timeline/pkg/row"
	"github.com/majdbaddour/timeline/pkg/throttle"
	"github.com/majdbaddour/timeline/pkg/tui/help"
	"github.com/majdbaddour/timeline/pkg/tui/theme"
	"github.com/majdbaddour/timeline/pkg/window"
)

const (
	// CellWidth is the number of timeline pixels drawn per terminal column.
	CellWidth = 8
	// labelCols is the width of the row label column including its gutter.
	labelCols = 14
	// headerLines are the title, axis title and axis subtitle lines.
	headerLines = 3
	// footerLines are the status and legend lines.
	footerLines = 2
	// panFraction of the viewport is moved per pan key press.
	panFraction = 0.1
)

// Watcher streams windows committed elsewhere.
type Watcher interface {
	Watch(ctx context.Context) (<-chan window.TimeWindow, error)
}

// Options configure the timeline model.
type Options struct {
	Rows []row.Row
	// Handler receives activated points and clusters.
	Handler row.Handler
	// Watcher, when set, keeps the view in sync with other processes.
	Watcher Watcher
	// DarkTerminal selects band shades for a dark background.
	DarkTerminal bool
	ResizeDelay  time.Duration
	Now          func() time.Time
	Copy         func(string) error
}

type lane struct {
	row      row.Row
	points   []cluster.Point
	clusters []cluster.Cluster
}

// Model is the Bubble Tea model of the timeline.
type Model struct {
	ctx     context.Context
	ctrl    *control.Controller
	lanes   []lane
	handler row.Handler
	watcher Watcher
	theme   theme.Theme
	keys    Keymap
	now     func() time.Time
	copy    func(string) error

	termWidth  int
	termHeight int
	resize     *throttle.Coalescer
	resized    chan resizedMsg

	lanesView  viewport.Model
	laneOffset int
	selRow     int
	selCluster int

	dragging bool
	dragX    int
	dragLast int

	help     *help.Model
	showHelp bool
	status   string

	watchCh     <-chan window.TimeWindow
	watchCancel context.CancelFunc
}

type resizedMsg struct {
	width  int
	height int
}

type watchStartedMsg struct {
	ch     <-chan window.TimeWindow
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	window window.TimeWindow
}

type watchStoppedMsg struct{}

// New constructs the model around ctrl.
func New(ctx context.Context, ctrl *control.Controller, opts Options) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	cp := opts.Copy
	if cp == nil {
		cp = clipboard.WriteAll
	}

	resize := throttle.New(opts.ResizeDelay)
	resize.Leading = true

	th := theme.Default(opts.DarkTerminal)
	m := &Model{
		ctx:       ctx,
		ctrl:      ctrl,
		handler:   opts.Handler,
		watcher:   opts.Watcher,
		theme:     th,
		keys:      Keys,
		now:       now,
		copy:      cp,
		resize:    resize,
		resized:   make(chan resizedMsg, 1),
		lanesView: viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
		help:      help.New(1, 1, th.Modal.Frame),
	}

	loc := ctrl.Table().Location()
	for _, r := range opts.Rows {
		m.lanes = append(m.lanes, lane{row: r, points: r.Points(loc)})
	}
	m.refreshClusters()
	return m
}

// Init starts listening for resizes and, when a watcher is set, for windows
// committed by other processes.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.waitForResize()}
	if m.watcher != nil {
		cmds = append(cmds, startWatchCmd(m.ctx, m.watcher))
	}
	return tea.Batch(cmds...)
}

func (m *Model) waitForResize() tea.Cmd {
	ch := m.resized
	ctx := m.ctx
	return func() tea.Msg {
		select {
		case msg := <-ch:
			return msg
		case <-ctx.Done():
			return nil
		}
	}
}

// queueResize hands the latest size to the resize listener, replacing one
// not yet picked up.
func (m *Model) queueResize(msg resizedMsg) {
	for {
		select {
		case m.resized <- msg:
			return
		default:
		}
		select {
		case <-m.resized:
		default:
		}
	}
}

func startWatchCmd(parent context.Context, w Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := w.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if w, ok := <-ch; ok {
			return watchEventMsg{window: w}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

// Update handles Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
		size := resizedMsg{width: msg.Width, height: msg.Height}
		m.resize.Do(func() { m.queueResize(size) })
	case resizedMsg:
		m.applyTimelineWidth(msg.width)
		cmds = append(cmds, m.waitForResize())
	case watchStartedMsg:
		if msg.err != nil {
			m.setStatus("ERR: watch " + msg.err.Error())
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		m.refreshClusters()
		m.setStatus("Window changed elsewhere: " + m.ctrl.Table().NavTitle(msg.window.CalendarMode, msg.window.Anchor))
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
	case tea.KeyPressMsg:
		if cmd := m.handleKeyPress(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case tea.MouseMsg:
		if m.showHelp {
			var cmd tea.Cmd
			m.help, cmd = m.help.Update(msg)
			cmds = append(cmds, cmd)
			break
		}
		m.handleMouse(msg)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) {
		m.shutdown()
		return tea.Quit
	}
	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Cancel):
			m.showHelp = false
			return nil
		}
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return cmd
	}

	view := m.ctrl.View()
	width := m.ctrl.Width()
	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.PanLeft):
		m.ctrl.Drag(width*panFraction, true)
	case key.Matches(msg, m.keys.PanRight):
		m.ctrl.Drag(-width*panFraction, true)
	case key.Matches(msg, m.keys.ZoomIn):
		m.ctrl.Wheel(-1, coord.FrameWidth(width)/2)
	case key.Matches(msg, m.keys.ZoomOut):
		m.ctrl.Wheel(1, coord.FrameWidth(width)/2)
	case key.Matches(msg, m.keys.SliderIn):
		m.ctrl.Slider(view.Slider+1, false)
	case key.Matches(msg, m.keys.SliderOut):
		m.ctrl.Slider(view.Slider-1, false)
	case key.Matches(msg, m.keys.Commit):
		if m.ctrl.State() == control.SliderAdjusting {
			m.ctrl.Slider(view.Slider, true)
		} else {
			m.activateSelected()
		}
	case key.Matches(msg, m.keys.Cancel):
		m.ctrl.Cancel()
		m.dragging = false
	case key.Matches(msg, m.keys.StepBack):
		m.report(m.ctrl.Step(false))
	case key.Matches(msg, m.keys.StepForward):
		m.report(m.ctrl.Step(true))
	case key.Matches(msg, m.keys.Today):
		m.report(m.ctrl.Today(m.now()))
	case key.Matches(msg, m.keys.RowDown):
		m.selectRow(m.selRow + 1)
	case key.Matches(msg, m.keys.RowUp):
		m.selectRow(m.selRow - 1)
	case key.Matches(msg, m.keys.NextCluster):
		m.selectCluster(m.selCluster + 1)
	case key.Matches(msg, m.keys.PrevCluster):
		m.selectCluster(m.selCluster - 1)
	case key.Matches(msg, m.keys.Copy):
		m.copySelected()
	default:
		quick := m.ctrl.Table().Quick()
		for i, b := range m.keys.Levels() {
			if i < len(quick) && key.Matches(msg, b) {
				m.report(m.ctrl.SelectLevel(quick[i].Name, view.Anchor))
				break
			}
		}
	}
	m.refreshClusters()
	return nil
}

func (m *Model) report(_ window.TimeWindow, err error) {
	if err != nil {
		m.setStatus("ERR: " + err.Error())
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	mouse := msg.Mouse()
	switch msg.(type) {
	case tea.MouseClickMsg:
		if mouse.Button != tea.MouseLeft || !m.inTimeline(mouse.X) {
			return
		}
		m.dragging = true
		m.dragX = mouse.X
		m.dragLast = mouse.X
	case tea.MouseMotionMsg:
		if !m.dragging {
			return
		}
		dx := mouse.X - m.dragLast
		m.dragLast = mouse.X
		if dx != 0 {
			m.ctrl.Drag(float64(dx*CellWidth), false)
		}
	case tea.MouseReleaseMsg:
		if !m.dragging {
			return
		}
		m.dragging = false
		if mouse.X == m.dragX && m.ctrl.State() == control.Idle {
			m.clickAt(mouse.X, mouse.Y)
			return
		}
		m.ctrl.Drag(float64((mouse.X-m.dragLast)*CellWidth), true)
	case tea.MouseWheelMsg:
		if !m.inTimeline(mouse.X) {
			return
		}
		direction := 0.0
		switch mouse.Button {
		case tea.MouseWheelUp:
			direction = -1
		case tea.MouseWheelDown:
			direction = 1
		default:
			return
		}
		m.ctrl.Wheel(direction, m.frameX(mouse.X))
	}
	m.refreshClusters()
}

func (m *Model) inTimeline(x int) bool {
	return x >= labelCols && x < labelCols+m.timelineCols()
}

// frameX converts a terminal column to a position in the extended frame,
// measured at the middle of the cell.
func (m *Model) frameX(x int) float64 {
	px := (float64(x-labelCols) + 0.5) * CellWidth
	return px - coord.FrameLeft(m.ctrl.Width())
}

// clickAt selects and activates the cluster under the pointer.
func (m *Model) clickAt(x, y int) {
	r := y - headerLines + m.laneOffset
	if y < headerLines || r < 0 || r >= len(m.lanes) {
		return
	}
	col := x - labelCols
	for i, c := range m.lanes[r].clusters {
		left, right := m.clusterCells(c)
		if col >= left && col < right {
			m.selRow = r
			m.selCluster = i
			m.activateSelected()
			return
		}
	}
}

// clusterCells is the column range [left, right) a cluster is drawn in.
func (m *Model) clusterCells(c cluster.Cluster) (left, right int) {
	left = m.column(c.Center())
	return left, left + utf8.RuneCountInString(glyph(c))
}

// column maps a frame position to a timeline column.
func (m *Model) column(position float64) int {
	px := position + coord.FrameLeft(m.ctrl.Width())
	col := int(px / CellWidth)
	if px < 0 {
		col--
	}
	return col
}

func (m *Model) selectRow(r int) {
	if len(m.lanes) == 0 {
		return
	}
	r = clamp(r, 0, len(m.lanes)-1)
	if r != m.selRow {
		m.selRow = r
		m.selCluster = 0
	}
	m.ensureRowVisible()
}

func (m *Model) selectCluster(i int) {
	c := m.selectedLane()
	if c == nil || len(c.clusters) == 0 {
		m.selCluster = 0
		return
	}
	n := len(c.clusters)
	m.selCluster = ((i % n) + n) % n
}

func (m *Model) selectedLane() *lane {
	if m.selRow < 0 || m.selRow >= len(m.lanes) {
		return nil
	}
	return &m.lanes[m.selRow]
}

func (m *Model) selected() (row.Row, cluster.Cluster, bool) {
	l := m.selectedLane()
	if l == nil || m.selCluster >= len(l.clusters) {
		return row.Row{}, cluster.Cluster{}, false
	}
	return l.row, l.clusters[m.selCluster], true
}

func (m *Model) activateSelected() {
	r, c, ok := m.selected()
	if !ok {
		return
	}
	r.Activate(c, m.handler)
	m.setStatus(fmt.Sprintf("Opened %d from %s", c.Len(), r.Label))
}

func (m *Model) copySelected() {
	_, c, ok := m.selected()
	if !ok {
		return
	}
	title := row.Title(c, m.ctrl.Table())
	if err := m.copy(title); err != nil {
		m.setStatus("ERR: copy " + err.Error())
		return
	}
	m.setStatus("Copied " + title)
}

// refreshClusters recomputes the clusters of every lane for the current view.
func (m *Model) refreshClusters() {
	v := m.ctrl.View()
	width := m.ctrl.Width()
	for i := range m.lanes {
		m.lanes[i].clusters = cluster.Build(m.lanes[i].points, v.Anchor, v.Scale, width)
	}
	m.selectCluster(m.selCluster)
}

func (m *Model) setStatus(s string) {
	m.status = s
	if s != "" {
		log.Printf("status: %s", s)
	}
}

// applySizes lays out the lanes viewport and help overlay for the terminal.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	m.lanesView.SetWidth(max(m.termWidth, 1))
	m.lanesView.SetHeight(max(m.laneRows(), 1))
	m.help.SetSize(m.termWidth, m.termHeight)
	m.ensureRowVisible()
}

// applyTimelineWidth resizes the timeline once resizing has settled.
func (m *Model) applyTimelineWidth(termWidth int) {
	cols := termWidth - labelCols
	if cols < 1 {
		return
	}
	m.ctrl.SetWidth(float64(cols * CellWidth))
	m.refreshClusters()
}

func (m *Model) timelineCols() int {
	return int(m.ctrl.Width()) / CellWidth
}

func (m *Model) laneRows() int {
	return m.termHeight - headerLines - footerLines
}

func (m *Model) ensureRowVisible() {
	rows := m.laneRows()
	if rows <= 0 {
		return
	}
	switch {
	case m.selRow < m.laneOffset:
		m.laneOffset = m.selRow
	case m.selRow >= m.laneOffset+rows:
		m.laneOffset = m.selRow - rows + 1
	}
	if maxOffset := len(m.lanes) - rows; m.laneOffset > maxOffset {
		m.laneOffset = max(maxOffset, 0)
	}
}

func (m *Model) shutdown() {
	m.stopWatch()
	m.resize.Stop()
}

// Run starts the terminal UI and blocks until it exits.
func Run(ctx context.Context, ctrl *control.Controller, opts Options) error {
	m := New(ctx, ctrl, opts)
	defer m.shutdown()
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func clamp(value, lower, upper int) int {
	if value < lower {
		return lower
	}
	if value > upper {
		return upper
	}
	return value
}
