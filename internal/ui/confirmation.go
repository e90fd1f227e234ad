package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateConfirmation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Confirm) || key.Matches(msg, m.keys.Back) {
		// Leaving the confirmation retires the draft and the selection.
		m.opts.Booking.Reset()
		m.opts.Results.ClearSelection()
		m.navigate(ViewHome)
	}
	return m, nil
}

func (m Model) viewConfirmation() string {
	b := m.opts.Booking.Current()
	if b == nil {
		return m.styles.Muted.Render("  Nothing to confirm.")
	}

	var out strings.Builder
	out.WriteString(m.styles.Success.Render("  ✓ Booking confirmed") + "\n\n")
	out.WriteString(fmt.Sprintf("  %s %s\n",
		m.styles.Muted.Render("Reference"), m.styles.Accent.Render(b.ID)))
	out.WriteString(fmt.Sprintf("  %s %s\n",
		m.styles.Muted.Render("Status   "), m.styles.Text.Render(string(b.Status))))

	o := b.Offer
	out.WriteString(fmt.Sprintf("  %s %s %s  %s  %s–%s  (%s, %s)\n",
		m.styles.Muted.Render("Flight   "),
		airlineBadge(o.Airline), m.styles.Text.Render(o.FlightNumber),
		m.styles.Text.Render(o.Route()),
		o.DepartureTime, o.ArrivalTime,
		o.Duration, stopsLabel(o.Stops)))
	if !b.TravelDate.IsZero() {
		out.WriteString(fmt.Sprintf("  %s %s\n",
			m.styles.Muted.Render("Travel   "),
			m.styles.Text.Render(b.TravelDate.Format(dateLayout))))
	}

	email, phone := m.opts.Booking.Contact()
	out.WriteString(fmt.Sprintf("  %s %s · %s\n",
		m.styles.Muted.Render("Contact  "),
		m.styles.Text.Render(email), m.styles.Text.Render(phone)))

	out.WriteString("\n  " + m.styles.Title.Render("Passengers") + "\n")
	for i, p := range b.Passengers {
		out.WriteString(fmt.Sprintf("  %d. %s %s %s",
			i+1, p.Title, p.FirstName, p.LastName))
		if p.PassportNumber != "" {
			out.WriteString(m.styles.Faint.Render("  passport " + p.PassportNumber))
		}
		out.WriteString("\n")
	}

	out.WriteString(fmt.Sprintf("\n  %s %s  %s\n",
		m.styles.Muted.Render("Total    "),
		m.styles.Accent.Render(formatAmount(b.TotalAmount, b.Currency)),
		m.styles.Faint.Render(fmt.Sprintf("(%s × %s)",
			formatAmount(o.Price, o.Currency), plural(len(b.Passengers), "traveler")))))

	out.WriteString("\n" + m.styles.Faint.Render("  enter returns home"))
	return out.String()
}
