package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/airvista/vista/internal/session"
)

// Profile edit fields, then the action row.
const (
	prFirst = iota
	prLast
	prPhone
	prDOB
	prNationality
	prPassport
	prSave
	profileFieldCount
)

// Display-mode actions.
const (
	profileActionEdit = iota
	profileActionLogout
	profileActionCount
)

type profileState struct {
	editing bool
	focus   int
	action  int
	inputs  map[int]*textinput.Model
}

func newProfileState() profileState {
	newInput := func(placeholder string, limit int) *textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.Prompt = ""
		return &in
	}
	return profileState{
		inputs: map[int]*textinput.Model{
			prFirst:       newInput("First name", 40),
			prLast:        newInput("Last name", 40),
			prPhone:       newInput("+92 300 0000000", 20),
			prDOB:         newInput(dateLayout, 10),
			prNationality: newInput("Pakistani", 30),
			prPassport:    newInput("Passport number", 20),
		},
	}
}

// load fills the edit inputs from the session user.
func (p *profileState) load(u session.User) {
	p.inputs[prFirst].SetValue(u.FirstName)
	p.inputs[prLast].SetValue(u.LastName)
	p.inputs[prPhone].SetValue(u.Phone)
	p.inputs[prDOB].SetValue(u.DateOfBirth)
	p.inputs[prNationality].SetValue(u.Nationality)
	p.inputs[prPassport].SetValue(u.Passport)
}

func (p *profileState) setFocus(focus int) {
	p.focus = focus
	for i, in := range p.inputs {
		if i == focus {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (m Model) updateProfile(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := &m.profile

	if !p.editing {
		switch {
		case key.Matches(msg, m.keys.Back):
			m.navigate(ViewHome)
		case key.Matches(msg, m.keys.Next), key.Matches(msg, m.keys.Down):
			p.action = (p.action + 1) % profileActionCount
		case key.Matches(msg, m.keys.Prev), key.Matches(msg, m.keys.Up):
			p.action = (p.action + profileActionCount - 1) % profileActionCount
		case key.Matches(msg, m.keys.Confirm):
			if p.action == profileActionLogout {
				m.opts.Session.Logout()
				m.navigate(ViewHome)
				return m, nil
			}
			if user := m.opts.Session.User(); user != nil {
				p.load(*user)
			}
			p.editing = true
			p.setFocus(prFirst)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		// Discard the edits; the store was never touched.
		p.editing = false
		return m, nil

	case key.Matches(msg, m.keys.Next):
		p.setFocus((p.focus + 1) % profileFieldCount)
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		p.setFocus((p.focus + profileFieldCount - 1) % profileFieldCount)
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		if p.focus != prSave {
			p.setFocus((p.focus + 1) % profileFieldCount)
			return m, nil
		}
		m.opts.Session.UpdateUser(session.Update{
			FirstName:   strings.TrimSpace(p.inputs[prFirst].Value()),
			LastName:    strings.TrimSpace(p.inputs[prLast].Value()),
			Phone:       strings.TrimSpace(p.inputs[prPhone].Value()),
			DateOfBirth: strings.TrimSpace(p.inputs[prDOB].Value()),
			Nationality: strings.TrimSpace(p.inputs[prNationality].Value()),
			Passport:    strings.TrimSpace(p.inputs[prPassport].Value()),
		})
		p.editing = false
		m.status = "Profile saved"
		return m, nil
	}

	if in, ok := p.inputs[p.focus]; ok {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) viewProfile() string {
	user := m.opts.Session.User()
	if user == nil {
		return m.styles.Muted.Render("  Not signed in.")
	}
	p := m.profile

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("  Your profile") + "\n\n")

	if p.editing {
		b.WriteString(m.fieldRow(p.focus == prFirst, "First name", p.inputs[prFirst].View()))
		b.WriteString(m.fieldRow(p.focus == prLast, "Last name", p.inputs[prLast].View()))
		b.WriteString(m.fieldRow(p.focus == prPhone, "Phone", p.inputs[prPhone].View()))
		b.WriteString(m.fieldRow(p.focus == prDOB, "Date of birth", p.inputs[prDOB].View()))
		b.WriteString(m.fieldRow(p.focus == prNationality, "Nationality", p.inputs[prNationality].View()))
		b.WriteString(m.fieldRow(p.focus == prPassport, "Passport", p.inputs[prPassport].View()))
		b.WriteString("\n" + m.stepButton(p.focus == prSave, "Save changes"))
		b.WriteString("\n" + m.styles.Faint.Render("  esc discards the edits"))
		return b.String()
	}

	row := func(label, value string) {
		if value == "" {
			value = "—"
		}
		b.WriteString("  " + m.styles.Muted.Render(padRight(label, 14)) +
			m.styles.Text.Render(value) + "\n")
	}
	row("Name", user.FullName())
	row("Email", user.Email)
	row("Phone", user.Phone)
	row("Date of birth", user.DateOfBirth)
	row("Nationality", user.Nationality)
	row("Passport", user.Passport)
	row("Role", string(user.Role))

	b.WriteString("\n")
	b.WriteString(m.stepButton(p.action == profileActionEdit, "Edit profile"))
	b.WriteString(m.stepButton(p.action == profileActionLogout, "Log out"))
	return b.String()
}
