package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/airvista/vista/internal/catalog"
)

// listingsState is shared by the hotel, package, and deal pages: a single
// list cursor, reset on entry.
type listingsState struct {
	cursor int
}

func newListingsState() listingsState {
	return listingsState{}
}

func (m Model) listingLength() int {
	switch m.view {
	case ViewHotels:
		return len(catalog.Hotels)
	case ViewPackages:
		return len(catalog.Packages)
	case ViewDeals:
		return len(catalog.Deals)
	}
	return 0
}

func (m Model) updateListings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	l := &m.listings
	switch {
	case key.Matches(msg, m.keys.Back):
		m.navigate(ViewHome)
	case key.Matches(msg, m.keys.Up):
		if l.cursor > 0 {
			l.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if l.cursor < m.listingLength()-1 {
			l.cursor++
		}
	case key.Matches(msg, m.keys.Confirm):
		if m.view == ViewDeals && l.cursor < len(catalog.Deals) {
			m.status = fmt.Sprintf("Use code %s at checkout", catalog.Deals[l.cursor].Code)
		}
	}
	return m, nil
}

func (m Model) listingRow(index int, line string) string {
	if index == m.listings.cursor {
		return m.styles.Selected.Render("▸") + " " + line + "\n"
	}
	return "  " + line + "\n"
}

func (m Model) viewHotels() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Hotels") + "\n\n")
	for i, h := range catalog.Hotels {
		stars := strings.Repeat("★", h.Stars)
		line := fmt.Sprintf("%s %s  %s %.1f (%s)  %s/night",
			padRight(truncate(h.Name, 24), 24),
			padRight(truncate(h.Location, 22), 22),
			m.styles.Warning.Render(stars), h.Rating,
			plural(h.Reviews, "review"),
			m.styles.Accent.Render(formatAmount(h.Price, m.opts.Config.Currency)))
		b.WriteString(m.listingRow(i, line))
		if i == m.listings.cursor {
			b.WriteString("    " + m.styles.Faint.Render(strings.Join(h.Amenities, " · ")) + "\n")
		}
	}
	b.WriteString("\n" + m.styles.Faint.Render("  ↑/↓ browse · esc back"))
	return b.String()
}

func (m Model) viewPackages() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Holiday packages") + "\n\n")
	for i, p := range catalog.Packages {
		line := fmt.Sprintf("%s %s  %s  %s",
			padRight(truncate(p.Title, 22), 22),
			padRight(truncate(p.Destination, 26), 26),
			padRight(p.Duration, 20),
			m.styles.Accent.Render(formatAmount(p.Price, m.opts.Config.Currency)))
		b.WriteString(m.listingRow(i, line))
		if i == m.listings.cursor {
			b.WriteString("    " + m.styles.Faint.Render(strings.Join(p.Inclusions, " · ")) + "\n")
		}
	}
	b.WriteString("\n" + m.styles.Faint.Render("  ↑/↓ browse · esc back"))
	return b.String()
}

func (m Model) viewDeals() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Current deals") + "\n\n")
	for i, d := range catalog.Deals {
		line := fmt.Sprintf("%s %s  code %s  until %s",
			m.styles.Danger.Render(fmt.Sprintf("-%d%%", d.Discount)),
			padRight(truncate(d.Title, 28), 28),
			m.styles.Accent.Render(d.Code),
			d.ValidUntil)
		b.WriteString(m.listingRow(i, line))
		if i == m.listings.cursor {
			b.WriteString("    " + m.styles.Faint.Render(d.Details) + "\n")
		}
	}
	b.WriteString("\n" + m.styles.Faint.Render("  ↑/↓ browse · enter copy code · esc back"))
	return b.String()
}
