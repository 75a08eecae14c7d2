package theme

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Accent lipgloss.Color

	Tabs   TabTheme
	List   ListTheme
	Footer FooterTheme
	Modal  ModalTheme
}

// TabTheme styles the tab buttons above the lists.
type TabTheme struct {
	Active   lipgloss.Style
	Inactive lipgloss.Style
	Gap      lipgloss.Style
}

// ListTheme styles task rows.
type ListTheme struct {
	Row       lipgloss.Style
	Selected  lipgloss.Style
	Completed lipgloss.Style
	Actions   lipgloss.Style
	Empty     lipgloss.Style
}

// FooterTheme groups styles used by the bottom status/help bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
}

// ModalTheme styles the centered editor and help overlays.
type ModalTheme struct {
	Frame         lipgloss.Style
	Title         lipgloss.Style
	Button        lipgloss.Style
	PrimaryButton lipgloss.Style
	// Backdrop renders the list behind an open overlay.
	Backdrop lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return New("")
}

// New builds the theme around accent, a hex color. An empty or invalid
// accent falls back to the default pink.
func New(accent string) Theme {
	base, err := colorful.Hex(accent)
	if err != nil {
		base, _ = colorful.Hex("#FF5FAF")
	}
	accentColor := lipgloss.Color(base.Hex())
	faded := lipgloss.Color(Fade(base.Hex(), 0.6))

	return Theme{
		Accent: accentColor,
		Tabs: TabTheme{
			Active: lipgloss.NewStyle().
				Bold(true).
				Foreground(accentColor).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accentColor).
				Padding(0, 2),
			Inactive: lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 2),
			Gap: lipgloss.NewStyle().Padding(0, 1),
		},
		List: ListTheme{
			Row:       lipgloss.NewStyle(),
			Selected:  lipgloss.NewStyle().Bold(true).Foreground(accentColor),
			Completed: lipgloss.NewStyle().Foreground(faded).Strikethrough(true),
			Actions:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Empty:     lipgloss.NewStyle().Faint(true).Italic(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accentColor).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Button: lipgloss.NewStyle().
				Foreground(lipgloss.Color("250")).
				Background(lipgloss.Color("238")).
				Padding(0, 1),
			PrimaryButton: lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("231")).
				Background(accentColor).
				Padding(0, 1),
			Backdrop: lipgloss.NewStyle().Foreground(lipgloss.Color("239")),
		},
	}
}

// Fade blends hex toward a dark background by amount (0 keeps the color,
// 1 is the background) and returns the result as hex.
func Fade(hex string, amount float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	bg, _ := colorful.Hex("#1C1C1C")
	return c.BlendLab(bg, amount).Clamped().Hex()
}
