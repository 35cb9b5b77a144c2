package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme centralizes Lip Gloss styles for the timeline UI.
type Theme struct {
	Header HeaderTheme
	Axis   AxisTheme
	Lane   LaneTheme
	Footer FooterTheme
	Modal  ModalTheme
}

// HeaderTheme styles the navigation title above the axis.
type HeaderTheme struct {
	Title lipgloss.Style
	Level lipgloss.Style
	Mode  lipgloss.Style
}

// AxisTheme styles the tick labels and the alternating background bands.
type AxisTheme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Light    lipgloss.Style
	Dark     lipgloss.Style
}

// LaneTheme styles the rows of points under the axis.
type LaneTheme struct {
	Label         lipgloss.Style
	SelectedLabel lipgloss.Style
	Point         lipgloss.Style
	Cluster       lipgloss.Style
	Selected      lipgloss.Style
}

// FooterTheme groups styles used by the bottom status/help bar.
type FooterTheme struct {
	Help    lipgloss.Style
	Status  lipgloss.Style
	Preview lipgloss.Style
}

// ModalTheme styles centered overlays such as help.
type ModalTheme struct {
	Frame lipgloss.Style
}

// Band shades, as hue, saturation and lightness.
var (
	lightBand = colorful.Hsl(218, 0.45, 0.92)
	darkBand  = colorful.Hsl(220, 0.37, 0.90)
)

// BandColors returns the hex colors of the light and dark bands. On a dark
// terminal the lightness is inverted so labels stay readable.
func BandColors(darkTerminal bool) (light, dark string) {
	if !darkTerminal {
		return lightBand.Hex(), darkBand.Hex()
	}
	return invert(lightBand).Hex(), invert(darkBand).Hex()
}

func invert(c colorful.Color) colorful.Color {
	h, s, l := c.Hsl()
	return colorful.Hsl(h, s, 1-l)
}

// Default returns the built-in theme. darkTerminal selects band shades that
// suit a dark background.
func Default(darkTerminal bool) Theme {
	light, dark := BandColors(darkTerminal)
	fg := lipgloss.Color("236")
	if darkTerminal {
		fg = lipgloss.Color("252")
	}

	return Theme{
		Header: HeaderTheme{
			Title: lipgloss.NewStyle().Bold(true),
			Level: lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
			Mode:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Axis: AxisTheme{
			Title:    lipgloss.NewStyle().Bold(true),
			Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Light:    lipgloss.NewStyle().Background(lipgloss.Color(light)).Foreground(fg),
			Dark:     lipgloss.NewStyle().Background(lipgloss.Color(dark)).Foreground(fg),
		},
		Lane: LaneTheme{
			Label:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			SelectedLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Point:         lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
			Cluster:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
			Selected:      lipgloss.NewStyle().Reverse(true),
		},
		Footer: FooterTheme{
			Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Preview: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Margin(0).
				Padding(0),
		},
	}
}
