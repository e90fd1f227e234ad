package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/airvista/vista/internal/booking"
	"github.com/airvista/vista/internal/state"
)

// Contact step fields.
const (
	cfEmail = iota
	cfPhone
	cfContinue
	contactFieldCount
)

// Passenger step fields; pfTitle cycles with ←/→, the rest are inputs.
const (
	pfTitle = iota
	pfFirst
	pfLast
	pfDOB
	pfNationality
	pfPassport
	pfContinue
	passengerFieldCount
)

// Payment step fields. Card data is mock input only, never stored.
const (
	payCard = iota
	payName
	payExpiry
	payCVV
	payConfirm
	paymentFieldCount
)

// checkoutState drives the three-step flow. Every edit writes through to
// the booking store, so leaving a step and coming back loses nothing.
type checkoutState struct {
	step  booking.Step
	focus int

	paxIndex int // passenger currently on the form

	contact   map[int]*textinput.Model
	passenger map[int]*textinput.Model
	payment   map[int]*textinput.Model
}

func newCheckoutState(store *state.BookingStore) checkoutState {
	newInput := func(placeholder string, limit int) *textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.Prompt = ""
		return &in
	}

	c := checkoutState{
		step: booking.StepContact,
		contact: map[int]*textinput.Model{
			cfEmail: newInput("you@example.com", 64),
			cfPhone: newInput("+92 300 0000000", 20),
		},
		passenger: map[int]*textinput.Model{
			pfFirst:       newInput("First name", 40),
			pfLast:        newInput("Last name", 40),
			pfDOB:         newInput(dateLayout, 10),
			pfNationality: newInput("Pakistani", 30),
			pfPassport:    newInput("Optional", 20),
		},
		payment: map[int]*textinput.Model{
			payCard:   newInput("4242 4242 4242 4242", 19),
			payName:   newInput("Name on card", 40),
			payExpiry: newInput("MM/YY", 5),
			payCVV:    newInput("123", 4),
		},
	}

	if store != nil {
		email, phone := store.Contact()
		c.contact[cfEmail].SetValue(email)
		c.contact[cfPhone].SetValue(phone)
		c.loadPassenger(store, 0)
	}
	c.contact[cfEmail].Focus()
	return c
}

// loadPassenger fills the form inputs from the stored passenger at index.
func (c *checkoutState) loadPassenger(store *state.BookingStore, index int) {
	passengers := store.Passengers()
	if index < 0 || index >= len(passengers) {
		return
	}
	c.paxIndex = index
	p := passengers[index]
	c.passenger[pfFirst].SetValue(p.FirstName)
	c.passenger[pfLast].SetValue(p.LastName)
	c.passenger[pfDOB].SetValue(p.DateOfBirth)
	c.passenger[pfNationality].SetValue(p.Nationality)
	c.passenger[pfPassport].SetValue(p.PassportNumber)
}

// savePassenger writes the form back to the store, keeping the stored
// title for fields the form does not own.
func (c *checkoutState) savePassenger(store *state.BookingStore) {
	passengers := store.Passengers()
	if c.paxIndex < 0 || c.paxIndex >= len(passengers) {
		return
	}
	p := passengers[c.paxIndex]
	p.FirstName = strings.TrimSpace(c.passenger[pfFirst].Value())
	p.LastName = strings.TrimSpace(c.passenger[pfLast].Value())
	p.DateOfBirth = strings.TrimSpace(c.passenger[pfDOB].Value())
	p.Nationality = strings.TrimSpace(c.passenger[pfNationality].Value())
	p.PassportNumber = strings.TrimSpace(c.passenger[pfPassport].Value())
	store.SetPassenger(c.paxIndex, p)
}

func (c *checkoutState) fieldCount() int {
	switch c.step {
	case booking.StepContact:
		return contactFieldCount
	case booking.StepPassengers:
		return passengerFieldCount
	case booking.StepPayment:
		return paymentFieldCount
	}
	return 0
}

func (c *checkoutState) inputs() map[int]*textinput.Model {
	switch c.step {
	case booking.StepContact:
		return c.contact
	case booking.StepPassengers:
		return c.passenger
	case booking.StepPayment:
		return c.payment
	}
	return nil
}

func (c *checkoutState) setFocus(focus int) {
	c.focus = focus
	for i, in := range c.inputs() {
		if i == focus {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (m Model) updateCheckout(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := &m.checkout
	store := m.opts.Booking

	switch {
	case key.Matches(msg, m.keys.Back):
		// Backward moves are never guarded; the store keeps the data.
		switch c.step {
		case booking.StepContact:
			m.navigate(ViewResults)
		case booking.StepPassengers:
			c.savePassenger(store)
			c.step = booking.StepContact
			c.setFocus(cfEmail)
		case booking.StepPayment:
			c.step = booking.StepPassengers
			c.loadPassenger(store, c.paxIndex)
			c.setFocus(pfFirst)
		}
		return m, nil

	case key.Matches(msg, m.keys.Next):
		c.setFocus((c.focus + 1) % c.fieldCount())
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		n := c.fieldCount()
		c.setFocus((c.focus + n - 1) % n)
		return m, nil

	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Right):
		if c.step == booking.StepPassengers && c.focus == pfTitle {
			m.cycleTitle(key.Matches(msg, m.keys.Right))
		}
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		return m.confirmCheckoutField()
	}

	if in, ok := c.inputs()[c.focus]; ok {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		switch c.step {
		case booking.StepContact:
			store.SetContact(
				strings.TrimSpace(c.contact[cfEmail].Value()),
				strings.TrimSpace(c.contact[cfPhone].Value()),
			)
		case booking.StepPassengers:
			c.savePassenger(store)
		}
		return m, cmd
	}
	return m, nil
}

func (m *Model) cycleTitle(up bool) {
	store := m.opts.Booking
	passengers := store.Passengers()
	c := &m.checkout
	if c.paxIndex < 0 || c.paxIndex >= len(passengers) {
		return
	}
	p := passengers[c.paxIndex]
	for i, t := range booking.Titles {
		if t == p.Title {
			n := len(booking.Titles)
			if up {
				p.Title = booking.Titles[(i+1)%n]
			} else {
				p.Title = booking.Titles[(i+n-1)%n]
			}
			store.SetPassenger(c.paxIndex, p)
			return
		}
	}
	p.Title = booking.Titles[0]
	store.SetPassenger(c.paxIndex, p)
}

// confirmCheckoutField handles enter: on a button row it tries to advance
// through the step guards; on an input row it just moves focus on.
func (m Model) confirmCheckoutField() (tea.Model, tea.Cmd) {
	c := &m.checkout
	store := m.opts.Booking

	switch c.step {
	case booking.StepContact:
		if c.focus != cfContinue {
			c.setFocus((c.focus + 1) % contactFieldCount)
			return m, nil
		}
		email, phone := store.Contact()
		if !booking.ContactComplete(email, phone) {
			m.status = "Email and phone are both required"
			return m, nil
		}
		c.step = booking.StepPassengers
		c.loadPassenger(store, 0)
		c.setFocus(pfFirst)
		return m, nil

	case booking.StepPassengers:
		if c.focus != pfContinue {
			c.setFocus((c.focus + 1) % passengerFieldCount)
			return m, nil
		}
		c.savePassenger(store)
		passengers := store.Passengers()
		if c.paxIndex < len(passengers)-1 {
			if !passengers[c.paxIndex].Complete() {
				m.status = fmt.Sprintf("Passenger %d is missing required fields", c.paxIndex+1)
				return m, nil
			}
			c.loadPassenger(store, c.paxIndex+1)
			c.setFocus(pfFirst)
			return m, nil
		}
		if !booking.PassengersComplete(passengers) {
			m.status = "Every passenger needs name, date of birth, and nationality"
			return m, nil
		}
		c.step = booking.StepPayment
		c.setFocus(payCard)
		return m, nil

	case booking.StepPayment:
		if c.focus != payConfirm {
			c.setFocus((c.focus + 1) % paymentFieldCount)
			return m, nil
		}
		// Mock payment cannot fail; finalize and show the confirmation.
		if store.Finalize() == nil {
			m.navigate(ViewResults)
			return m, nil
		}
		m.navigate(ViewConfirmation)
		return m, nil
	}
	return m, nil
}

func (m Model) viewCheckout() string {
	c := m.checkout
	offer := m.opts.Results.Selected()
	current := m.opts.Booking.Current()

	var b strings.Builder
	b.WriteString(m.renderStepBar() + "\n\n")

	if offer != nil && current != nil {
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf(
			"  %s %s  %s  %s–%s  ·  total %s for %s",
			offer.Airline, offer.FlightNumber, offer.Route(),
			offer.DepartureTime, offer.ArrivalTime,
			formatAmount(current.TotalAmount, current.Currency),
			plural(len(m.opts.Booking.Passengers()), "traveler"),
		)) + "\n\n")
	}

	switch c.step {
	case booking.StepContact:
		b.WriteString(m.renderContactStep())
	case booking.StepPassengers:
		b.WriteString(m.renderPassengerStep())
	case booking.StepPayment:
		b.WriteString(m.renderPaymentStep())
	}

	b.WriteString("\n" + m.styles.Faint.Render(
		"  tab next field · enter confirm · esc back"))
	return b.String()
}

// renderStepBar draws the Contact → Passengers → Payment progress line.
func (m Model) renderStepBar() string {
	parts := make([]string, 0, len(booking.StepLabels))
	for i, label := range booking.StepLabels {
		step := booking.Step(i)
		switch {
		case step == m.checkout.step:
			parts = append(parts, m.styles.Accent.Render("● "+label))
		case step < m.checkout.step:
			parts = append(parts, m.styles.Success.Render("✓ "+label))
		default:
			parts = append(parts, m.styles.Faint.Render("○ "+label))
		}
	}
	return "  " + strings.Join(parts, m.styles.Faint.Render("  ─  "))
}

func (m Model) fieldRow(focused bool, label, control string) string {
	marker := "  "
	style := m.styles.Muted
	if focused {
		marker = m.styles.Accent.Render("▸ ")
		style = m.styles.Accent
	}
	return marker + style.Render(padRight(label, 14)) + control + "\n"
}

func (m Model) stepButton(focused bool, label string) string {
	if focused {
		return "  " + m.styles.Button.Render(label) + "\n"
	}
	return "  " + m.styles.Ghost.Render(label) + "\n"
}

func (m Model) renderContactStep() string {
	c := m.checkout
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("  Contact details") + "\n\n")
	b.WriteString(m.fieldRow(c.focus == cfEmail, "Email", c.contact[cfEmail].View()))
	b.WriteString(m.fieldRow(c.focus == cfPhone, "Phone", c.contact[cfPhone].View()))
	b.WriteString("\n" + m.stepButton(c.focus == cfContinue, "Continue"))
	return b.String()
}

func (m Model) renderPassengerStep() string {
	c := m.checkout
	passengers := m.opts.Booking.Passengers()

	title := booking.TitleMr
	if c.paxIndex >= 0 && c.paxIndex < len(passengers) {
		title = passengers[c.paxIndex].Title
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(fmt.Sprintf(
		"  Passenger %d of %d", c.paxIndex+1, len(passengers))) + "\n\n")
	b.WriteString(m.fieldRow(c.focus == pfTitle, "Title", fmt.Sprintf("‹ %s ›", title)))
	b.WriteString(m.fieldRow(c.focus == pfFirst, "First name", c.passenger[pfFirst].View()))
	b.WriteString(m.fieldRow(c.focus == pfLast, "Last name", c.passenger[pfLast].View()))
	b.WriteString(m.fieldRow(c.focus == pfDOB, "Date of birth", c.passenger[pfDOB].View()))
	b.WriteString(m.fieldRow(c.focus == pfNationality, "Nationality", c.passenger[pfNationality].View()))
	b.WriteString(m.fieldRow(c.focus == pfPassport, "Passport", c.passenger[pfPassport].View()))

	label := "Continue to payment"
	if c.paxIndex < len(passengers)-1 {
		label = "Next passenger"
	}
	b.WriteString("\n" + m.stepButton(c.focus == pfContinue, label))
	return b.String()
}

func (m Model) renderPaymentStep() string {
	c := m.checkout
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("  Payment") + "\n")
	b.WriteString(m.styles.Faint.Render("  Demo checkout; no card is charged.") + "\n\n")
	b.WriteString(m.fieldRow(c.focus == payCard, "Card number", c.payment[payCard].View()))
	b.WriteString(m.fieldRow(c.focus == payName, "Cardholder", c.payment[payName].View()))
	b.WriteString(m.fieldRow(c.focus == payExpiry, "Expiry", c.payment[payExpiry].View()))
	b.WriteString(m.fieldRow(c.focus == payCVV, "CVV", c.payment[payCVV].View()))
	b.WriteString("\n" + m.stepButton(c.focus == payConfirm, "Pay & confirm"))
	return b.String()
}
