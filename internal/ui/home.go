package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/airvista/vista/internal/catalog"
	"github.com/airvista/vista/internal/flights"
	"github.com/airvista/vista/internal/state"
)

const dateLayout = "2006-01-02"

// Focusable controls on the home page, in tab order.
const (
	hfFrom = iota
	hfTo
	hfDepart
	hfReturn
	hfTravelers
	hfClass
	hfTrip
	hfSearch
	hfNewsletter
	hfSubscribe
	homeFocusCount
)

var cabinClasses = []flights.CabinClass{
	flights.CabinEconomy,
	flights.CabinBusiness,
	flights.CabinFirst,
}

// homeState is the home page's local form state. The search criteria are
// written through to the store on every edit; the text inputs only hold
// the raw strings being typed.
type homeState struct {
	inputs     map[int]*textinput.Model
	focus      int
	content    viewport.Model
	subscribed bool
}

func newHomeState(search *state.SearchStore) homeState {
	crit := search.Criteria()

	newInput := func(placeholder, value string, limit int) *textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.Prompt = ""
		in.SetValue(value)
		return &in
	}

	h := homeState{
		inputs: map[int]*textinput.Model{
			hfFrom:       newInput("KHI", crit.From, 3),
			hfTo:         newInput("DXB", crit.To, 3),
			hfDepart:     newInput(dateLayout, formatDate(crit.DepartureDate), 10),
			hfReturn:     newInput(dateLayout, formatDate(crit.ReturnDate), 10),
			hfNewsletter: newInput("you@example.com", "", 64),
		},
		content: viewport.New(80, 12),
	}
	h.content.SetContent("")
	h.inputs[hfFrom].Focus()
	return h
}

func (h *homeState) resize(width, height int) {
	h.content.Width = width - 2
	contentHeight := height - 14 // form block above the marketing sections
	if contentHeight < 3 {
		contentHeight = 3
	}
	h.content.Height = contentHeight
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func (m Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	h := &m.home

	switch {
	case key.Matches(msg, m.keys.Swap):
		m.opts.Search.SwapLocations()
		crit := m.opts.Search.Criteria()
		h.inputs[hfFrom].SetValue(crit.From)
		h.inputs[hfTo].SetValue(crit.To)
		return m, nil

	case key.Matches(msg, m.keys.Next):
		h.setFocus((h.focus + 1) % homeFocusCount)
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		h.setFocus((h.focus + homeFocusCount - 1) % homeFocusCount)
		return m, nil

	case key.Matches(msg, m.keys.PageDown), key.Matches(msg, m.keys.PageUp):
		if key.Matches(msg, m.keys.PageDown) {
			h.content.HalfViewDown()
		} else {
			h.content.HalfViewUp()
		}
		m.opts.UI.SetHeaderScrolled(h.content.YOffset > 0)
		return m, nil

	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Right):
		m.adjustHomeControl(key.Matches(msg, m.keys.Right))
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		switch h.focus {
		case hfSearch:
			return m, m.startSearch()
		case hfSubscribe, hfNewsletter:
			email := strings.TrimSpace(h.inputs[hfNewsletter].Value())
			if email == "" || !strings.Contains(email, "@") {
				m.status = "Enter a valid email address"
				return m, nil
			}
			if h.subscribed || m.subscribing {
				return m, nil
			}
			return m, m.startNewsletter(email)
		default:
			h.setFocus((h.focus + 1) % homeFocusCount)
			return m, nil
		}
	}

	if in, ok := h.inputs[h.focus]; ok {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		m.syncCriteria()
		return m, cmd
	}
	return m, nil
}

func (h *homeState) setFocus(focus int) {
	h.focus = focus
	for i, in := range h.inputs {
		if i == focus {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

// adjustHomeControl handles ←/→ on the stepper-style controls.
func (m *Model) adjustHomeControl(up bool) {
	crit := m.opts.Search.Criteria()
	switch m.home.focus {
	case hfTravelers:
		delta := -1
		if up {
			delta = 1
		}
		m.opts.Search.SetTravelers(crit.Travelers + delta)
	case hfClass:
		m.opts.Search.SetClass(cycleClass(crit.Class, up))
	case hfTrip:
		m.opts.Search.SetTripType(cycleTrip(crit.TripType, up))
	}
}

func cycleClass(current flights.CabinClass, up bool) flights.CabinClass {
	for i, c := range cabinClasses {
		if c == current {
			n := len(cabinClasses)
			if up {
				return cabinClasses[(i+1)%n]
			}
			return cabinClasses[(i+n-1)%n]
		}
	}
	return cabinClasses[0]
}

func cycleTrip(current state.TripType, up bool) state.TripType {
	for i, t := range state.TripTypes {
		if t == current {
			n := len(state.TripTypes)
			if up {
				return state.TripTypes[(i+1)%n]
			}
			return state.TripTypes[(i+n-1)%n]
		}
	}
	return state.TripTypes[0]
}

// syncCriteria writes the text fields through to the search store. Airport
// codes are uppercased as typed; dates only land once they parse.
func (m *Model) syncCriteria() {
	h := &m.home

	from := strings.ToUpper(strings.TrimSpace(h.inputs[hfFrom].Value()))
	if from != h.inputs[hfFrom].Value() {
		h.inputs[hfFrom].SetValue(from)
	}
	to := strings.ToUpper(strings.TrimSpace(h.inputs[hfTo].Value()))
	if to != h.inputs[hfTo].Value() {
		h.inputs[hfTo].SetValue(to)
	}
	m.opts.Search.SetFrom(from)
	m.opts.Search.SetTo(to)

	m.opts.Search.SetDepartureDate(parseDate(h.inputs[hfDepart].Value()))
	m.opts.Search.SetReturnDate(parseDate(h.inputs[hfReturn].Value()))
}

func parseDate(s string) time.Time {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}
	}
	return t
}

func (m Model) viewHome() string {
	h := m.home
	crit := m.opts.Search.Criteria()

	label := func(focus int, text string) string {
		if h.focus == focus {
			return m.styles.Accent.Render("▸ " + text)
		}
		return m.styles.Muted.Render("  " + text)
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Find your next flight") + "\n\n")

	b.WriteString(label(hfFrom, "From   ") + h.inputs[hfFrom].View() +
		"   " + label(hfTo, "To     ") + h.inputs[hfTo].View() +
		"   " + m.styles.Faint.Render("(ctrl+x swaps)") + "\n")
	b.WriteString(label(hfDepart, "Depart ") + h.inputs[hfDepart].View() +
		"   " + label(hfReturn, "Return ") + h.inputs[hfReturn].View() + "\n")
	b.WriteString(label(hfTravelers, fmt.Sprintf("Travelers ‹ %d ›", crit.Travelers)) +
		"   " + label(hfClass, fmt.Sprintf("Class ‹ %s ›", crit.Class)) +
		"   " + label(hfTrip, fmt.Sprintf("Trip ‹ %s ›", crit.TripType)) + "\n\n")

	searchBtn := m.styles.Ghost.Render("Search Flights")
	if h.focus == hfSearch {
		searchBtn = m.styles.Button.Render("Search Flights")
	}
	b.WriteString("  " + searchBtn + "\n\n")

	b.WriteString(m.home.content.View() + "\n")
	b.WriteString(m.styles.Faint.Render("  pgup/pgdn scroll") + "\n")

	b.WriteString("\n" + label(hfNewsletter, "Newsletter ") + h.inputs[hfNewsletter].View() + "  ")
	switch {
	case h.subscribed:
		b.WriteString(m.styles.Success.Render("✓ Subscribed"))
	case h.focus == hfSubscribe:
		b.WriteString(m.styles.Button.Render("Subscribe"))
	default:
		b.WriteString(m.styles.Ghost.Render("Subscribe"))
	}
	b.WriteString("\n")

	return b.String()
}

// marketingBody builds the scrollable sections under the search form:
// destinations, reasons to book, deals, partner carriers, testimonials.
func (m Model) marketingBody() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Popular destinations") + "\n")
	for _, d := range catalog.Destinations {
		b.WriteString(fmt.Sprintf("  %s %s  %s\n",
			m.styles.Text.Render(padRight(d.City+", "+d.Country, 28)),
			m.styles.Faint.Render("from"),
			m.styles.Accent.Render(formatAmount(d.StartingPrice, m.opts.Config.Currency)),
		))
	}

	b.WriteString("\n" + m.styles.Title.Render("Why book with AirVista") + "\n")
	for _, reason := range []string{
		"Best price guarantee on 16 partner airlines",
		"Free cancellation on refundable fares",
		"Support around the clock, in Urdu and English",
	} {
		b.WriteString("  " + m.styles.Success.Render("✓ ") + m.styles.Text.Render(reason) + "\n")
	}

	b.WriteString("\n" + m.styles.Title.Render("Today's deals") + "\n")
	for _, d := range catalog.Deals {
		b.WriteString(fmt.Sprintf("  %s %s  %s\n",
			m.styles.Danger.Render(fmt.Sprintf("-%d%%", d.Discount)),
			m.styles.Text.Render(padRight(truncate(d.Title, 28), 28)),
			m.styles.Accent.Render("code "+d.Code)))
	}

	b.WriteString("\n" + m.styles.Title.Render("Partner airlines") + "\n  ")
	for i, name := range catalog.AirlineNames() {
		b.WriteString(airlineBadge(name) + " ")
		if (i+1)%8 == 0 {
			b.WriteString("\n  ")
		}
	}
	b.WriteString("\n")

	b.WriteString("\n" + m.styles.Title.Render("What travelers say") + "\n")
	for _, t := range catalog.Testimonials {
		stars := strings.Repeat("★", t.Rating) + strings.Repeat("☆", 5-t.Rating)
		b.WriteString("  " + m.styles.Warning.Render(stars) + " " +
			m.styles.Text.Render(t.Name) + m.styles.Faint.Render(" · "+t.Location) + "\n")
		b.WriteString("    " + m.styles.Muted.Render(truncate(t.Review, max(20, m.width-6))) + "\n")
	}

	return b.String()
}

// refreshMarketing rebuilds the viewport content. Runs on resize and theme
// changes; the render path only reads.
func (m *Model) refreshMarketing() {
	m.home.content.SetContent(m.marketingBody())
}
