package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const brand = "✈ AirVista"

// renderHeader draws the top bar: brand, current page, and session state.
// Once the home content scrolls past the top the bar switches to its solid
// variant, mirroring the site's sticky header.
func (m Model) renderHeader() string {
	left := m.styles.Title.Render(brand) + m.styles.Faint.Render("  │  ") +
		m.styles.Text.Render(m.view.Title())

	right := m.styles.Muted.Render("Guest")
	if user := m.opts.Session.User(); user != nil {
		label := user.FullName()
		if label == "" {
			label = user.Email
		}
		if user.IsAdmin() {
			label += " (admin)"
		}
		right = m.styles.Accent.Render(label)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right

	style := m.styles.Header
	if !m.opts.UI.HeaderScrolled() {
		style = style.UnsetBackground()
	}
	return style.Width(max(m.width, lipgloss.Width(bar))).Render(bar)
}

// renderFooter draws the bottom bar: a busy spinner or status line on the
// left and the global key hints on the right.
func (m Model) renderFooter() string {
	var left string
	switch {
	case m.searching:
		left = m.spin.View() + m.styles.Muted.Render(" Searching flights…")
	case m.authBusy:
		left = m.spin.View() + m.styles.Muted.Render(" Signing in…")
	case m.subscribing:
		left = m.spin.View() + m.styles.Muted.Render(" Subscribing…")
	case m.status != "":
		left = m.styles.Warning.Render(m.status)
	}

	hints := m.styles.Faint.Render("F1 help · F2 menu · ctrl+c quit")

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(hints) - 2
	if gap < 1 {
		gap = 1
	}
	return " " + left + strings.Repeat(" ", gap) + hints
}
