package ui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the UI.
type Theme struct {
	Name string

	Background string
	Surface    string
	Border     string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string

	SelectionBg   string
	SelectionText string
}

var themes = []Theme{
	{
		Name:       "Skyline",
		Background: "#0B1120",
		Surface:    "#111A2E",
		Border:     "#1E293B",
		Text:       "#E2E8F0",
		Muted:      "#94A3B8",
		Faint:      "#475569",
		Accent:     "#38BDF8",
		Success:    "#4ADE80",
		Warning:    "#FACC15",
		Danger:     "#F87171",

		SelectionBg:   "#1D4ED8",
		SelectionText: "#F8FAFC",
	},
	{
		Name:       "Dusk",
		Background: "#17111F",
		Surface:    "#221A2E",
		Border:     "#37294A",
		Text:       "#EDE9FE",
		Muted:      "#A78BFA",
		Faint:      "#6D28D9",
		Accent:     "#F472B6",
		Success:    "#6EE7B7",
		Warning:    "#FCD34D",
		Danger:     "#FB7185",

		SelectionBg:   "#7C3AED",
		SelectionText: "#FAF5FF",
	},
	{
		Name:       "Daylight",
		Background: "#F8FAFC",
		Surface:    "#FFFFFF",
		Border:     "#CBD5E1",
		Text:       "#0F172A",
		Muted:      "#475569",
		Faint:      "#94A3B8",
		Accent:     "#0284C7",
		Success:    "#15803D",
		Warning:    "#B45309",
		Danger:     "#B91C1C",

		SelectionBg:   "#0284C7",
		SelectionText: "#F8FAFC",
	},
}

// GetTheme returns the named theme, defaulting to the first.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme returns the theme name after current, wrapping around.
func NextTheme(current string) string {
	for i, t := range themes {
		if t.Name == current {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}

// Styles holds the pre-built lipgloss styles for a theme.
type Styles struct {
	Title    lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Faint    lipgloss.Style
	Accent   lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Danger   lipgloss.Style
	Selected lipgloss.Style

	Header lipgloss.Style
	Panel  lipgloss.Style
	Button lipgloss.Style
	Ghost  lipgloss.Style // disabled button
}

// Styles returns the styles for t.
func (t Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
		Text:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		Faint:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)).Bold(true),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),
		Button: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)).
			Padding(0, 2).
			Bold(true),
		Ghost: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Border)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 2),
	}
}
