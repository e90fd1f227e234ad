package ui

import (
	"math/rand"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/airvista/vista/internal/booking"
	"github.com/airvista/vista/internal/catalog"
	"github.com/airvista/vista/internal/config"
	"github.com/airvista/vista/internal/flights"
	"github.com/airvista/vista/internal/session"
	"github.com/airvista/vista/internal/state"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	opts := Options{
		Config:    config.Default(),
		ThemeName: "Skyline",
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
		Search:    state.NewSearchStore(),
		Results:   state.NewResultsStore(),
		Booking:   state.NewBookingStore(),
		Session:   state.NewSessionStore(session.Snapshot{}, nil),
		UI:        state.NewUIStore(),
		Generator: flights.NewGenerator(rand.New(rand.NewSource(7)), "PKR"),
	}
	return NewModel(opts)
}

func generateOffers(t *testing.T) []flights.Offer {
	t.Helper()
	gen := flights.NewGenerator(rand.New(rand.NewSource(7)), "PKR")
	from := catalog.AirportByCode("KHI")
	to := catalog.AirportByCode("DXB")
	if from == nil || to == nil {
		t.Fatal("catalog is missing KHI or DXB")
	}
	return gen.Generate(*from, *to, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC))
}

func enterKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func TestSearchResultsDeliveredToStore(t *testing.T) {
	m := newTestModel(t)
	offers := generateOffers(t)

	updated, _ := m.Update(searchDoneMsg{offers: offers})
	m = updated.(Model)

	if m.view != ViewResults {
		t.Fatalf("view after search = %v, want %v", m.view, ViewResults)
	}
	if m.searching {
		t.Fatal("searching flag should clear when results land")
	}
	if got := len(m.opts.Results.Offers()); got != flights.OffersPerSearch {
		t.Fatalf("stored offers = %d, want %d", got, flights.OffersPerSearch)
	}
}

func TestStartSearchRequiresCompleteCriteria(t *testing.T) {
	m := newTestModel(t)
	if cmd := m.startSearch(); cmd != nil {
		t.Fatal("empty criteria should not start a search")
	}
	if m.status == "" {
		t.Fatal("a rejected search should explain itself")
	}

	m.opts.Search.SetFrom("KHI")
	m.opts.Search.SetTo("DXB")
	m.opts.Search.SetDepartureDate(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC))
	if cmd := m.startSearch(); cmd == nil {
		t.Fatal("complete criteria should start a search")
	}
	if !m.searching {
		t.Fatal("searching flag should be set while the search is in flight")
	}
}

func TestStartSearchRejectsUnknownAirport(t *testing.T) {
	m := newTestModel(t)
	m.opts.Search.SetFrom("XXX")
	m.opts.Search.SetTo("DXB")
	m.opts.Search.SetDepartureDate(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC))
	if cmd := m.startSearch(); cmd != nil {
		t.Fatal("unknown origin should not start a search")
	}
	if !strings.Contains(m.status, "XXX") {
		t.Fatalf("status %q should name the bad code", m.status)
	}
}

func TestBookingFlowEndToEnd(t *testing.T) {
	m := newTestModel(t)
	m.opts.Search.SetFrom("KHI")
	m.opts.Search.SetTo("DXB")
	m.opts.Search.SetDepartureDate(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC))
	m.opts.Search.SetTravelers(2)

	updated, _ := m.Update(searchDoneMsg{offers: generateOffers(t)})
	m = updated.(Model)

	// Narrow to direct flights only; the pipeline is conjunctive so the
	// visible list is a subset of the raw one.
	filters := m.opts.Results.Filters()
	filters.DirectOnly = true
	m.opts.Results.SetFilters(filters)

	visible := m.opts.Results.Visible()
	if len(visible) == 0 {
		t.Skip("seed produced no direct flights")
	}
	for _, o := range visible {
		if o.Stops != 0 {
			t.Fatalf("direct-only filter leaked offer %s with %d stops", o.ID, o.Stops)
		}
	}

	cheapest := visible[0]
	m = m.bookOffer(cheapest)
	if m.view != ViewBooking {
		t.Fatalf("view after booking = %v, want %v", m.view, ViewBooking)
	}
	current := m.opts.Booking.Current()
	if current == nil {
		t.Fatal("booking draft missing after book-now")
	}
	if current.TotalAmount != cheapest.Price*2 {
		t.Fatalf("total = %d, want %d", current.TotalAmount, cheapest.Price*2)
	}
	if got := len(m.opts.Booking.Passengers()); got != 2 {
		t.Fatalf("passenger forms = %d, want 2", got)
	}

	// Contact step refuses to advance while either field is empty.
	m.checkout.setFocus(cfContinue)
	updated, _ = m.confirmCheckoutField()
	m = updated.(Model)
	if m.checkout.step != booking.StepContact {
		t.Fatal("contact step advanced without contact data")
	}
	if m.status == "" {
		t.Fatal("blocked advance should set a status")
	}

	m.opts.Booking.SetContact("ayesha@example.com", "+92 300 1111111")
	m.checkout.setFocus(cfContinue)
	updated, _ = m.confirmCheckoutField()
	m = updated.(Model)
	if m.checkout.step != booking.StepPassengers {
		t.Fatalf("step = %v, want %v", m.checkout.step, booking.StepPassengers)
	}

	fillPassengerForm(&m.checkout, "Ayesha", "Khan")
	m.checkout.setFocus(pfContinue)
	updated, _ = m.confirmCheckoutField()
	m = updated.(Model)
	if m.checkout.paxIndex != 1 {
		t.Fatalf("paxIndex = %d, want 1", m.checkout.paxIndex)
	}

	fillPassengerForm(&m.checkout, "Omar", "Khan")
	m.checkout.setFocus(pfContinue)
	updated, _ = m.confirmCheckoutField()
	m = updated.(Model)
	if m.checkout.step != booking.StepPayment {
		t.Fatalf("step = %v, want %v", m.checkout.step, booking.StepPayment)
	}

	m.checkout.setFocus(payConfirm)
	updated, _ = m.confirmCheckoutField()
	m = updated.(Model)
	if m.view != ViewConfirmation {
		t.Fatalf("view after payment = %v, want %v", m.view, ViewConfirmation)
	}
	confirmed := m.opts.Booking.Current()
	if confirmed == nil || confirmed.Status != booking.StatusConfirmed {
		t.Fatalf("booking not confirmed: %+v", confirmed)
	}
	if len(confirmed.Passengers) != 2 || confirmed.Passengers[0].FirstName != "Ayesha" {
		t.Fatalf("confirmed passengers wrong: %+v", confirmed.Passengers)
	}

	// Leaving the confirmation retires the draft and selection.
	updated, _ = m.Update(enterKey())
	m = updated.(Model)
	if m.view != ViewHome {
		t.Fatalf("view after confirmation exit = %v, want %v", m.view, ViewHome)
	}
	if m.opts.Booking.Current() != nil {
		t.Fatal("draft should be reset after leaving the confirmation")
	}
	if m.opts.Results.Selected() != nil {
		t.Fatal("selection should clear after leaving the confirmation")
	}
}

func TestCheckoutBackNavigationPreservesFields(t *testing.T) {
	m := newTestModel(t)
	m.opts.Search.SetFrom("KHI")
	m.opts.Search.SetTo("DXB")
	m.opts.Search.SetDepartureDate(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC))

	updated, _ := m.Update(searchDoneMsg{offers: generateOffers(t)})
	m = updated.(Model)
	m = m.bookOffer(m.opts.Results.Visible()[0])

	const email, phone = "ayesha@example.com", "+92 300 1111111"
	m.checkout.contact[cfEmail].SetValue(email)
	m.checkout.contact[cfPhone].SetValue(phone)
	m.opts.Booking.SetContact(email, phone)
	m.checkout.setFocus(cfContinue)
	updated, _ = m.confirmCheckoutField()
	m = updated.(Model)

	fillPassengerForm(&m.checkout, "Ayesha", "Khan")
	m.checkout.setFocus(pfContinue)
	updated, _ = m.confirmCheckoutField()
	m = updated.(Model)
	if m.checkout.step != booking.StepPayment {
		t.Fatalf("step = %v, want %v", m.checkout.step, booking.StepPayment)
	}

	// Walk backward through both steps; nothing entered may be lost.
	esc := tea.KeyMsg{Type: tea.KeyEsc}
	updated, _ = m.Update(esc)
	m = updated.(Model)
	if m.checkout.step != booking.StepPassengers {
		t.Fatalf("step after back = %v, want %v", m.checkout.step, booking.StepPassengers)
	}
	if got := m.checkout.passenger[pfFirst].Value(); got != "Ayesha" {
		t.Fatalf("passenger form reloaded %q, want %q", got, "Ayesha")
	}
	pax := m.opts.Booking.Passengers()
	if pax[0].FirstName != "Ayesha" || pax[0].Nationality != "Pakistani" {
		t.Fatalf("stored passenger lost fields: %+v", pax[0])
	}

	updated, _ = m.Update(esc)
	m = updated.(Model)
	if m.checkout.step != booking.StepContact {
		t.Fatalf("step after second back = %v, want %v", m.checkout.step, booking.StepContact)
	}
	if gotEmail, gotPhone := m.opts.Booking.Contact(); gotEmail != email || gotPhone != phone {
		t.Fatalf("stored contact lost fields: %q %q", gotEmail, gotPhone)
	}
	if got := m.checkout.contact[cfEmail].Value(); got != email {
		t.Fatalf("contact form shows %q, want %q", got, email)
	}

	// Forward again passes the same guards with the preserved data.
	m.checkout.setFocus(cfContinue)
	updated, _ = m.confirmCheckoutField()
	m = updated.(Model)
	if m.checkout.step != booking.StepPassengers {
		t.Fatal("preserved contact data should re-advance the contact step")
	}
	if got := m.checkout.passenger[pfLast].Value(); got != "Khan" {
		t.Fatalf("passenger form reloaded %q, want %q", got, "Khan")
	}
}

func fillPassengerForm(c *checkoutState, first, last string) {
	c.passenger[pfFirst].SetValue(first)
	c.passenger[pfLast].SetValue(last)
	c.passenger[pfDOB].SetValue("1990-01-01")
	c.passenger[pfNationality].SetValue("Pakistani")
	c.passenger[pfPassport].SetValue("")
}

func TestNavigateGuards(t *testing.T) {
	m := newTestModel(t)

	m.navigate(ViewBooking)
	if m.view != ViewResults {
		t.Fatalf("booking without selection landed on %v, want %v", m.view, ViewResults)
	}

	m.navigate(ViewConfirmation)
	if m.view != ViewHome {
		t.Fatalf("confirmation without selection landed on %v, want %v", m.view, ViewHome)
	}

	m.navigate(ViewProfile)
	if m.view != ViewLogin {
		t.Fatalf("profile while logged out landed on %v, want %v", m.view, ViewLogin)
	}

	m.navigate(ViewAdminDashboard)
	if m.view != ViewAdminLogin {
		t.Fatalf("dashboard while logged out landed on %v, want %v", m.view, ViewAdminLogin)
	}

	user, err := session.Authenticate("someone@example.com", "pw")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	m.opts.Session.Login(user)

	m.navigate(ViewProfile)
	if m.view != ViewProfile {
		t.Fatalf("profile while logged in landed on %v", m.view)
	}
	m.navigate(ViewAdminDashboard)
	if m.view != ViewAdminLogin {
		t.Fatal("a regular user must not reach the dashboard")
	}
}

func TestAuthDoneLogsInAndRoutes(t *testing.T) {
	m := newTestModel(t)
	m.view = ViewAdminLogin

	admin, err := session.AuthenticateAdmin("admin@airvista.pk", "AirVista@2024")
	if err != nil {
		t.Fatalf("AuthenticateAdmin: %v", err)
	}

	updated, _ := m.Update(authDoneMsg{user: admin, target: ViewAdminDashboard})
	m = updated.(Model)
	if !m.opts.Session.Authenticated() {
		t.Fatal("session should be authenticated after a successful login")
	}
	if m.view != ViewAdminDashboard {
		t.Fatalf("view = %v, want %v", m.view, ViewAdminDashboard)
	}
}

func TestAuthDoneFailureStaysPut(t *testing.T) {
	m := newTestModel(t)
	m.view = ViewLogin

	updated, _ := m.Update(authDoneMsg{err: session.ErrInvalidCredentials, target: ViewHome})
	m = updated.(Model)
	if m.opts.Session.Authenticated() {
		t.Fatal("failed login must not authenticate")
	}
	if m.view != ViewLogin {
		t.Fatalf("failed login moved the view to %v", m.view)
	}
	if m.auth.err == "" {
		t.Fatal("failed login should surface an error")
	}
}

func TestNewsletterDoneMarksSubscribed(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(newsletterDoneMsg{email: "you@example.com"})
	m = updated.(Model)
	if !m.home.subscribed {
		t.Fatal("subscribed flag should be set")
	}
	if !strings.Contains(m.status, "you@example.com") {
		t.Fatalf("status %q should mention the address", m.status)
	}
}

func TestViewRendersEveryPage(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(Model)

	pages := []View{
		ViewHome, ViewResults, ViewHotels, ViewPackages, ViewDeals,
		ViewLogin, ViewRegister, ViewAdminLogin,
	}
	for _, v := range pages {
		m.view = v
		if out := m.View(); strings.TrimSpace(out) == "" {
			t.Errorf("view %v rendered empty", v)
		}
	}
}
