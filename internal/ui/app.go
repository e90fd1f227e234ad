package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/airvista/vista/internal/catalog"
	"github.com/airvista/vista/internal/config"
	"github.com/airvista/vista/internal/flights"
	"github.com/airvista/vista/internal/prefs"
	"github.com/airvista/vista/internal/session"
	"github.com/airvista/vista/internal/state"
)

// Options configure the UI. All stores are required; the Model keeps no
// domain data of its own.
type Options struct {
	Context   context.Context
	Config    config.Config
	ThemeName string
	PrefsPath string

	Search    *state.SearchStore
	Results   *state.ResultsStore
	Booking   *state.BookingStore
	Session   *state.SessionStore
	UI        *state.UIStore
	Generator *flights.Generator
}

// Delayed messages. Payloads are computed when the action is triggered;
// only their delivery is delayed, so a seeded generator stays on one
// goroutine.
type (
	searchDoneMsg struct{ offers []flights.Offer }
	authDoneMsg   struct {
		user   session.User
		err    error
		target View
	}
	newsletterDoneMsg struct{ email string }
)

// Model is the root Bubble Tea model.
type Model struct {
	opts   Options
	keys   keyMap
	theme  Theme
	styles Styles

	width  int
	height int
	view   View

	spin        spinner.Model
	searching   bool
	authBusy    bool
	subscribing bool
	status      string

	showHelp  bool
	menuIndex int

	home     homeState
	results  resultsState
	checkout checkoutState
	auth     authState
	profile  profileState
	listings listingsState
}

// NewModel builds the root model around opts.
func NewModel(opts Options) Model {
	theme := GetTheme(opts.ThemeName)
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	m := Model{
		opts:     opts,
		keys:     defaultKeyMap(),
		theme:    theme,
		styles:   theme.Styles(),
		view:     ViewHome,
		spin:     sp,
		home:     newHomeState(opts.Search),
		results:  newResultsState(),
		checkout: newCheckoutState(opts.Booking),
		auth:     newAuthState(),
		profile:  newProfileState(),
		listings: newListingsState(),
	}
	m.refreshMarketing()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.home.resize(msg.Width, m.bodyHeight())
		m.refreshMarketing()
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case searchDoneMsg:
		// The delayed result lands in the store no matter which view is
		// active now.
		m.searching = false
		m.opts.Results.SetOffers(msg.offers)
		m.opts.Results.ResetFilters()
		m.results = newResultsState()
		m.navigate(ViewResults)
		return m, nil

	case authDoneMsg:
		m.authBusy = false
		if msg.err != nil {
			m.auth.err = msg.err.Error()
			return m, nil
		}
		m.opts.Session.Login(msg.user)
		m.navigate(msg.target)
		return m, nil

	case newsletterDoneMsg:
		m.subscribing = false
		m.home.subscribed = true
		m.status = fmt.Sprintf("Subscribed %s to the newsletter", msg.email)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) busy() bool {
	return m.searching || m.authBusy || m.subscribing
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case m.showHelp:
		if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Back) {
			m.showHelp = false
			m.opts.UI.SetActiveModal("")
		}
		return m, nil

	case m.opts.UI.MenuOpen():
		return m.updateMenu(msg)

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		m.opts.UI.SetActiveModal("help")
		return m, nil

	case key.Matches(msg, m.keys.Menu):
		m.menuIndex = 0
		m.opts.UI.SetMenuOpen(true)
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.setTheme(NextTheme(m.theme.Name))
		return m, nil
	}

	switch m.view {
	case ViewHome:
		return m.updateHome(msg)
	case ViewResults:
		return m.updateResults(msg)
	case ViewBooking:
		return m.updateCheckout(msg)
	case ViewConfirmation:
		return m.updateConfirmation(msg)
	case ViewHotels, ViewPackages, ViewDeals:
		return m.updateListings(msg)
	case ViewLogin, ViewRegister, ViewAdminLogin:
		return m.updateAuth(msg)
	case ViewProfile:
		return m.updateProfile(msg)
	case ViewAdminDashboard:
		return m.updateAdminDashboard(msg)
	}
	return m, nil
}

func (m *Model) setTheme(name string) {
	m.theme = GetTheme(name)
	m.styles = m.theme.Styles()
	m.spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
	m.refreshMarketing()
	// Best effort; losing a theme preference is not worth surfacing.
	_ = prefs.Save(m.opts.PrefsPath, prefs.Prefs{Theme: name})
}

// navigate routes to target through the guards and runs the view entry
// hooks. It is the only way the active view changes.
func (m *Model) navigate(target View) {
	user := m.opts.Session.User()
	resolved := resolveView(target, routeGuards{
		hasSelection: m.opts.Results.Selected() != nil,
		authed:       user != nil,
		admin:        user != nil && user.IsAdmin(),
	})

	m.opts.UI.SetMenuOpen(false)
	m.opts.UI.SetActiveModal("")
	m.status = ""

	if resolved != m.view {
		m.enter(resolved)
	}
	m.view = resolved
}

// enter prepares a view's local state on arrival.
func (m *Model) enter(v View) {
	switch v {
	case ViewLogin, ViewRegister, ViewAdminLogin:
		m.auth = newAuthState()
	case ViewProfile:
		m.profile = newProfileState()
		if user := m.opts.Session.User(); user != nil {
			m.profile.load(*user)
		}
	case ViewBooking:
		m.checkout = newCheckoutState(m.opts.Booking)
	case ViewHotels, ViewPackages, ViewDeals:
		m.listings.cursor = 0
	}
}

// startSearch validates the criteria, generates the offers eagerly, and
// schedules their delivery after the configured delay.
func (m *Model) startSearch() tea.Cmd {
	crit := m.opts.Search.Criteria()
	if !crit.Ready() {
		m.status = "Origin, destination, and departure date are required"
		return nil
	}
	from := catalog.AirportByCode(crit.From)
	to := catalog.AirportByCode(crit.To)
	if from == nil {
		m.status = fmt.Sprintf("Unknown airport code %q", crit.From)
		return nil
	}
	if to == nil {
		m.status = fmt.Sprintf("Unknown airport code %q", crit.To)
		return nil
	}

	m.searching = true
	m.status = ""
	offers := m.opts.Generator.Generate(*from, *to, crit.DepartureDate)
	return tea.Batch(
		m.spin.Tick,
		tea.Tick(m.opts.Config.SearchDelay, func(time.Time) tea.Msg {
			return searchDoneMsg{offers: offers}
		}),
	)
}

// startLogin runs the demo credential check and delays its outcome.
// adminOnly selects the admin-portal variant and its shorter delay.
func (m *Model) startLogin(email, password string, adminOnly bool) tea.Cmd {
	authenticate := session.Authenticate
	delay := m.opts.Config.LoginDelay
	target := ViewHome
	if adminOnly {
		authenticate = session.AuthenticateAdmin
		delay = m.opts.Config.AdminDelay
		target = ViewAdminDashboard
	}

	m.authBusy = true
	m.auth.err = ""
	user, err := authenticate(email, password)
	return tea.Batch(m.spin.Tick, tickAuthDone(delay, user, err, target))
}

// tickAuthDone delivers an already-computed auth outcome after delay.
func tickAuthDone(delay time.Duration, user session.User, err error, target View) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return authDoneMsg{user: user, err: err, target: target}
	})
}

// startNewsletter schedules the mock newsletter signup.
func (m *Model) startNewsletter(email string) tea.Cmd {
	m.subscribing = true
	return tea.Batch(
		m.spin.Tick,
		tea.Tick(m.opts.Config.NewsletterDelay, func(time.Time) tea.Msg {
			return newsletterDoneMsg{email: email}
		}),
	)
}

func (m Model) bodyHeight() int {
	// Header and footer take one row each plus a blank line.
	h := m.height - 4
	if h < 1 {
		h = 1
	}
	return h
}

// View implements tea.Model.
func (m Model) View() string {
	var body string
	switch {
	case m.showHelp:
		body = m.viewHelp()
	case m.opts.UI.MenuOpen():
		body = m.viewMenu()
	default:
		switch m.view {
		case ViewHome:
			body = m.viewHome()
		case ViewResults:
			body = m.viewResults()
		case ViewBooking:
			body = m.viewCheckout()
		case ViewConfirmation:
			body = m.viewConfirmation()
		case ViewHotels:
			body = m.viewHotels()
		case ViewPackages:
			body = m.viewPackages()
		case ViewDeals:
			body = m.viewDeals()
		case ViewLogin, ViewRegister, ViewAdminLogin:
			body = m.viewAuth()
		case ViewProfile:
			body = m.viewProfile()
		case ViewAdminDashboard:
			body = m.viewAdminDashboard()
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderFooter(),
	)
}

// Run starts the Bubble Tea program and blocks until it exits or the
// context is cancelled.
func Run(opts Options) error {
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		progOpts = append(progOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(NewModel(opts), progOpts...)
	if _, err := p.Run(); err != nil {
		if opts.Context != nil && opts.Context.Err() != nil {
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
