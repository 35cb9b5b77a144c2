package teaui

import "github.com/charmbracelet/bubbles/v2/key"

// Keymap lists the bindings of the timeline view.
type Keymap struct {
	PanLeft     key.Binding
	PanRight    key.Binding
	ZoomIn      key.Binding
	ZoomOut     key.Binding
	SliderIn    key.Binding
	SliderOut   key.Binding
	Commit      key.Binding
	Cancel      key.Binding
	StepBack    key.Binding
	StepForward key.Binding
	Today       key.Binding
	Year        key.Binding
	Month       key.Binding
	Week        key.Binding
	Day         key.Binding
	RowDown     key.Binding
	RowUp       key.Binding
	NextCluster key.Binding
	PrevCluster key.Binding
	Copy        key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// Keys is the default keymap.
var Keys = Keymap{
	PanLeft: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "earlier"),
	),
	PanRight: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "later"),
	),
	ZoomIn: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "zoom in"),
	),
	ZoomOut: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "zoom out"),
	),
	SliderIn: key.NewBinding(
		key.WithKeys("."),
		key.WithHelp(".", "slide in"),
	),
	SliderOut: key.NewBinding(
		key.WithKeys(","),
		key.WithHelp(",", "slide out"),
	),
	Commit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "commit/open"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	StepBack: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "prev unit"),
	),
	StepForward: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "next unit"),
	),
	Today: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "today"),
	),
	Year: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "year"),
	),
	Month: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "month"),
	),
	Week: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "week"),
	),
	Day: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "day"),
	),
	RowDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j", "next row"),
	),
	RowUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k", "prev row"),
	),
	NextCluster: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next point"),
	),
	PrevCluster: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev point"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy dates"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Levels returns the quick level bindings in the order of the calendar's
// quick levels.
func (k Keymap) Levels() []key.Binding {
	return []key.Binding{k.Year, k.Month, k.Week, k.Day}
}

// Legend is the short list shown in the footer.
func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.PanLeft,
		k.PanRight,
		k.ZoomIn,
		k.ZoomOut,
		k.StepBack,
		k.StepForward,
		k.Today,
		k.RowDown,
		k.NextCluster,
		k.Help,
		k.Quit,
	}
}
