package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/airvista/vista/internal/session"
)

// Auth form fields. Login and the admin portal use email/password only;
// registration uses the full set.
const (
	afFirst = iota
	afLast
	afEmail
	afPhone
	afPassword
	afSubmit
)

// authState backs the login, registration, and admin portal pages. It is
// rebuilt on every entry so credentials never linger between visits.
type authState struct {
	inputs map[int]*textinput.Model
	focus  int // position within the view's tab order
	err    string
}

func newAuthState() authState {
	newInput := func(placeholder string, limit int) *textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.Prompt = ""
		return &in
	}

	password := newInput("password", 64)
	password.EchoMode = textinput.EchoPassword

	a := authState{
		inputs: map[int]*textinput.Model{
			afFirst:    newInput("First name", 40),
			afLast:     newInput("Last name", 40),
			afEmail:    newInput("you@example.com", 64),
			afPhone:    newInput("+92 300 0000000", 20),
			afPassword: password,
		},
	}
	return a
}

// authOrder is the tab order for the active auth view.
func (m Model) authOrder() []int {
	if m.view == ViewRegister {
		return []int{afFirst, afLast, afEmail, afPhone, afPassword, afSubmit}
	}
	return []int{afEmail, afPassword, afSubmit}
}

func (a *authState) setFocus(order []int, pos int) {
	a.focus = pos
	active := order[pos]
	for i, in := range a.inputs {
		if i == active {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (m Model) updateAuth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := &m.auth
	order := m.authOrder()
	if a.focus >= len(order) {
		a.focus = 0
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		m.navigate(ViewHome)
		return m, nil

	case key.Matches(msg, m.keys.Next):
		a.setFocus(order, (a.focus+1)%len(order))
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		a.setFocus(order, (a.focus+len(order)-1)%len(order))
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		if order[a.focus] != afSubmit {
			a.setFocus(order, (a.focus+1)%len(order))
			return m, nil
		}
		return m.submitAuth()
	}

	if in, ok := a.inputs[order[a.focus]]; ok {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) submitAuth() (tea.Model, tea.Cmd) {
	if m.authBusy {
		return m, nil
	}
	a := &m.auth
	email := strings.TrimSpace(a.inputs[afEmail].Value())
	password := a.inputs[afPassword].Value()

	switch m.view {
	case ViewLogin:
		return m, m.startLogin(email, password, false)
	case ViewAdminLogin:
		return m, m.startLogin(email, password, true)
	case ViewRegister:
		first := strings.TrimSpace(a.inputs[afFirst].Value())
		last := strings.TrimSpace(a.inputs[afLast].Value())
		phone := strings.TrimSpace(a.inputs[afPhone].Value())
		if first == "" || last == "" || email == "" || password == "" {
			a.err = "All fields except phone are required"
			return m, nil
		}
		return m, m.startRegister(email, password, session.Update{
			FirstName: first,
			LastName:  last,
			Phone:     phone,
		})
	}
	return m, nil
}

// startRegister runs the demo sign-up: the mock credential check, with the
// registration form's identity fields layered on top.
func (m *Model) startRegister(email, password string, upd session.Update) tea.Cmd {
	m.authBusy = true
	m.auth.err = ""
	user, err := session.Authenticate(email, password)
	if err == nil {
		user = user.Apply(upd)
	}
	return tea.Batch(
		m.spin.Tick,
		tickAuthDone(m.opts.Config.LoginDelay, user, err, ViewHome),
	)
}

func (m Model) viewAuth() string {
	a := m.auth
	order := m.authOrder()
	focused := func(field int) bool {
		return a.focus < len(order) && order[a.focus] == field
	}

	var b strings.Builder
	switch m.view {
	case ViewLogin:
		b.WriteString(m.styles.Title.Render("  Sign in") + "\n\n")
	case ViewRegister:
		b.WriteString(m.styles.Title.Render("  Create your account") + "\n\n")
		b.WriteString(m.fieldRow(focused(afFirst), "First name", a.inputs[afFirst].View()))
		b.WriteString(m.fieldRow(focused(afLast), "Last name", a.inputs[afLast].View()))
	case ViewAdminLogin:
		b.WriteString(m.styles.Title.Render("  Admin portal") + "\n")
		b.WriteString(m.styles.Faint.Render("  Staff credentials required.") + "\n\n")
	}

	b.WriteString(m.fieldRow(focused(afEmail), "Email", a.inputs[afEmail].View()))
	if m.view == ViewRegister {
		b.WriteString(m.fieldRow(focused(afPhone), "Phone", a.inputs[afPhone].View()))
	}
	b.WriteString(m.fieldRow(focused(afPassword), "Password", a.inputs[afPassword].View()))

	label := "Sign in"
	if m.view == ViewRegister {
		label = "Register"
	}
	b.WriteString("\n" + m.stepButton(focused(afSubmit), label))

	if a.err != "" {
		b.WriteString("\n  " + m.styles.Danger.Render(a.err) + "\n")
	}
	if m.view == ViewLogin {
		b.WriteString("\n" + m.styles.Faint.Render("  New here? Open the menu (F2) to register."))
	}
	return b.String()
}
