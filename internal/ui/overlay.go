package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// updateMenu handles keys while the navigation overlay is open.
func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := menuEntries(m.opts.Session.Authenticated())
	if m.menuIndex >= len(entries) {
		m.menuIndex = len(entries) - 1
	}
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Menu):
		m.opts.UI.SetMenuOpen(false)
	case key.Matches(msg, m.keys.Up):
		if m.menuIndex > 0 {
			m.menuIndex--
		}
	case key.Matches(msg, m.keys.Down):
		if m.menuIndex < len(entries)-1 {
			m.menuIndex++
		}
	case key.Matches(msg, m.keys.Confirm):
		m.navigate(entries[m.menuIndex].view)
	}
	return m, nil
}

// viewMenu renders the navigation overlay.
func (m Model) viewMenu() string {
	entries := menuEntries(m.opts.Session.Authenticated())

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Navigate") + "\n\n")
	for i, e := range entries {
		row := "  " + e.label
		if i == m.menuIndex {
			row = m.styles.Selected.Render("▸ " + e.label)
		}
		b.WriteString(row + "\n")
	}
	b.WriteString("\n" + m.styles.Faint.Render("↑/↓ move · enter go · esc close"))

	return m.centered(m.styles.Panel.Render(b.String()))
}

// viewHelp renders the key reference overlay.
func (m Model) viewHelp() string {
	rows := [][2]string{
		{"F1", "Toggle this help"},
		{"F2", "Navigation menu"},
		{"ctrl+t", "Cycle color theme"},
		{"ctrl+c", "Quit"},
		{"tab / shift+tab", "Move between fields"},
		{"↑ / ↓", "Move within lists"},
		{"← / →", "Adjust the focused control"},
		{"enter", "Confirm / submit"},
		{"esc", "Back or close"},
		{"ctrl+x", "Swap origin and destination"},
		{"ctrl+s", "Cycle result sort order"},
		{"ctrl+f", "Toggle the filter panel"},
		{"ctrl+r", "Reset filters"},
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Keys") + "\n\n")
	for _, r := range rows {
		b.WriteString(m.styles.Accent.Render(padRight(r[0], 16)))
		b.WriteString(m.styles.Text.Render(r[1]) + "\n")
	}

	return m.centered(m.styles.Panel.Render(b.String()))
}

// centered places content in the middle of the body area.
func (m Model) centered(content string) string {
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, content)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
