package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Mock figures behind the admin dashboard. Static, like the rest of the
// demo data; there is no backend to aggregate from.
var adminStats = struct {
	totalBookings int
	revenue       int
	activeUsers   int
	conversion    float64
}{
	totalBookings: 1847,
	revenue:       48_250_000,
	activeUsers:   3212,
	conversion:    3.4,
}

var adminRoutes = []struct {
	route    string
	bookings int
}{
	{"KHI → DXB", 412},
	{"LHE → JED", 298},
	{"ISB → LHR", 187},
	{"KHI → IST", 154},
	{"LHE → DOH", 121},
}

var adminRecent = []struct {
	ref, customer, route string
	amount               int
	status               string
}{
	{"BK-9f21ac04", "Ayesha Khan", "KHI → DXB", 56000, "confirmed"},
	{"BK-1b77e3d9", "Omar Farooq", "LHE → JED", 96000, "confirmed"},
	{"BK-c04a8812", "Sara Ahmed", "ISB → LHR", 250000, "pending"},
	{"BK-77d0f1ba", "Bilal Hussain", "KHI → IST", 130000, "confirmed"},
	{"BK-3e92cc51", "Hina Raza", "LHE → DOH", 70000, "cancelled"},
}

func (m Model) updateAdminDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		m.navigate(ViewHome)
	}
	return m, nil
}

func (m Model) viewAdminDashboard() string {
	currency := m.opts.Config.Currency

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("  Operations dashboard") + "\n\n")

	stat := func(label, value string) string {
		return m.styles.Panel.Render(
			m.styles.Muted.Render(label) + "\n" + m.styles.Accent.Render(value))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		"  ",
		stat("Bookings", groupDigits(adminStats.totalBookings)), " ",
		stat("Revenue", formatAmount(adminStats.revenue, currency)), " ",
		stat("Active users", groupDigits(adminStats.activeUsers)), " ",
		stat("Conversion", fmt.Sprintf("%.1f%%", adminStats.conversion)),
	) + "\n\n")

	b.WriteString("  " + m.styles.Title.Render("Popular routes") + "\n")
	for _, r := range adminRoutes {
		bar := strings.Repeat("█", r.bookings/25)
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			padRight(r.route, 12),
			m.styles.Accent.Render(padRight(bar, 18)),
			m.styles.Muted.Render(groupDigits(r.bookings))))
	}

	b.WriteString("\n  " + m.styles.Title.Render("Recent bookings") + "\n")
	for _, r := range adminRecent {
		status := m.styles.Muted.Render(r.status)
		switch r.status {
		case "confirmed":
			status = m.styles.Success.Render(r.status)
		case "cancelled":
			status = m.styles.Danger.Render(r.status)
		}
		b.WriteString(fmt.Sprintf("  %s %s %s %s  %s\n",
			m.styles.Faint.Render(padRight(r.ref, 13)),
			padRight(r.customer, 16),
			padRight(r.route, 12),
			padRight(formatAmount(r.amount, currency), 14),
			status))
	}

	b.WriteString("\n" + m.styles.Faint.Render("  esc back"))
	return b.String()
}
