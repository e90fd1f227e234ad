package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/airvista/vista/internal/booking"
	"github.com/airvista/vista/internal/flights"
)

// resultsState is the flight results page's local state: the list cursor
// and the filter sidebar. All offer and filter data lives in the store.
type resultsState struct {
	cursor       int
	showFilters  bool
	filterCursor int
}

func newResultsState() resultsState {
	return resultsState{}
}

// Fixed toggle rows at the top of the filter panel; airline rows follow.
const (
	filterDirect = iota
	filterRefundable
	filterBaggage
	filterFixedCount
)

// filterAirlines lists the carriers present in the current raw results,
// sorted for a stable panel.
func (m Model) filterAirlines() []string {
	seen := map[string]bool{}
	var names []string
	for _, o := range m.opts.Results.Offers() {
		if !seen[o.Airline] {
			seen[o.Airline] = true
			names = append(names, o.Airline)
		}
	}
	sort.Strings(names)
	return names
}

func (m Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	r := &m.results

	switch {
	case key.Matches(msg, m.keys.Back):
		if r.showFilters {
			r.showFilters = false
			return m, nil
		}
		m.navigate(ViewHome)
		return m, nil

	case key.Matches(msg, m.keys.Filters):
		r.showFilters = !r.showFilters
		r.filterCursor = 0
		return m, nil

	case key.Matches(msg, m.keys.CycleSort):
		m.opts.Results.SetSortKey(nextSortKey(m.opts.Results.SortKey()))
		r.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.ResetAll):
		m.opts.Results.ResetFilters()
		r.cursor = 0
		return m, nil
	}

	if r.showFilters {
		return m.updateFilterPanel(msg)
	}

	visible := m.opts.Results.Visible()
	switch {
	case key.Matches(msg, m.keys.Up):
		if r.cursor > 0 {
			r.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if r.cursor < len(visible)-1 {
			r.cursor++
		}
	case key.Matches(msg, m.keys.Confirm):
		if r.cursor >= 0 && r.cursor < len(visible) {
			return m.bookOffer(visible[r.cursor]), nil
		}
	}
	return m, nil
}

// bookOffer selects the offer, opens a draft sized to the traveler count,
// and routes into checkout.
func (m Model) bookOffer(offer flights.Offer) Model {
	crit := m.opts.Search.Criteria()
	travelers := crit.Travelers
	if travelers < 1 {
		travelers = 1
	}
	m.opts.Results.Select(offer)
	m.opts.Booking.Start(booking.New(offer, travelers, crit.DepartureDate), travelers)
	m.navigate(ViewBooking)
	return m
}

func (m Model) updateFilterPanel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	r := &m.results
	airlines := m.filterAirlines()
	rowCount := filterFixedCount + len(airlines)

	switch {
	case key.Matches(msg, m.keys.Up):
		if r.filterCursor > 0 {
			r.filterCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if r.filterCursor < rowCount-1 {
			r.filterCursor++
		}
	case key.Matches(msg, m.keys.Confirm):
		filters := m.opts.Results.Filters()
		switch r.filterCursor {
		case filterDirect:
			filters.DirectOnly = !filters.DirectOnly
		case filterRefundable:
			filters.RefundableOnly = !filters.RefundableOnly
		case filterBaggage:
			filters.WithBaggage = !filters.WithBaggage
		default:
			idx := r.filterCursor - filterFixedCount
			if idx >= 0 && idx < len(airlines) {
				filters = filters.ToggleAirline(airlines[idx])
			}
		}
		m.opts.Results.SetFilters(filters)
		r.cursor = 0
	}
	return m, nil
}

func nextSortKey(current flights.SortKey) flights.SortKey {
	for i, k := range flights.SortKeys {
		if k == current {
			return flights.SortKeys[(i+1)%len(flights.SortKeys)]
		}
	}
	return flights.SortKeys[0]
}

func (m Model) viewResults() string {
	r := m.results
	visible := m.opts.Results.Visible()
	total := len(m.opts.Results.Offers())
	filters := m.opts.Results.Filters()
	crit := m.opts.Search.Criteria()

	var b strings.Builder

	route := "Flights"
	if crit.From != "" && crit.To != "" {
		route = fmt.Sprintf("%s → %s", crit.From, crit.To)
	}
	b.WriteString(m.styles.Title.Render(route) + "  " +
		m.styles.Muted.Render(fmt.Sprintf("%d of %d offers", len(visible), total)) + "  " +
		m.styles.Faint.Render("sort: "+m.opts.Results.SortKey().Label()))
	if filters.Active() {
		b.WriteString("  " + m.styles.Warning.Render("filters on"))
	}
	b.WriteString("\n\n")

	if total == 0 {
		b.WriteString(m.styles.Muted.Render("  No results yet. Run a search from the home page.") + "\n")
		return b.String()
	}
	if len(visible) == 0 {
		b.WriteString(m.styles.Muted.Render("  No flights match the active filters.") + "\n")
		b.WriteString(m.styles.Faint.Render("  ctrl+r resets them.") + "\n")
		return b.String()
	}

	cursor := r.cursor
	if cursor >= len(visible) {
		cursor = len(visible) - 1
	}

	list := m.renderOfferList(visible, cursor)
	if r.showFilters {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderFilterPanel(filters), "  ", list))
	} else {
		b.WriteString(list)
	}

	b.WriteString("\n" + m.styles.Faint.Render(
		"  ↑/↓ select · enter book · ctrl+f filters · ctrl+s sort · ctrl+r reset · esc back"))
	return b.String()
}

func (m Model) renderOfferList(visible []flights.Offer, cursor int) string {
	var b strings.Builder
	for i, o := range visible {
		line := fmt.Sprintf("%s %s %s  %s–%s  %s  %s  %s",
			airlineBadge(o.Airline),
			padRight(o.FlightNumber, 6),
			padRight(truncate(o.Airline, 18), 18),
			o.DepartureTime, o.ArrivalTime,
			padRight(o.Duration, 7),
			padRight(stopsLabel(o.Stops), 8),
			formatAmount(o.Price, o.Currency),
		)
		if o.Refundable {
			line += "  " + m.styles.Success.Render("refundable")
		}
		if i == cursor {
			b.WriteString(m.styles.Selected.Render("▸") + " " + line + "\n")
			b.WriteString("    " + m.styles.Faint.Render(fmt.Sprintf(
				"%s · cabin %s · checked %s · %s left",
				o.Route(), o.Baggage.Cabin, o.Baggage.Checked,
				plural(o.SeatsAvailable, "seat"))) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	return b.String()
}

func (m Model) renderFilterPanel(filters flights.FilterState) string {
	r := m.results
	airlines := m.filterAirlines()

	rows := []string{
		checkbox("Direct only", filters.DirectOnly),
		checkbox("Refundable", filters.RefundableOnly),
		checkbox("Baggage 20 kg+", filters.WithBaggage),
	}
	for _, a := range airlines {
		rows = append(rows, checkbox(truncate(a, 16), filters.HasAirline(a)))
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Filters") + "\n")
	for i, row := range rows {
		if i == r.filterCursor {
			b.WriteString(m.styles.Selected.Render(row) + "\n")
		} else {
			b.WriteString(m.styles.Text.Render(row) + "\n")
		}
	}
	return m.styles.Panel.Render(b.String())
}
