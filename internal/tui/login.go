package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/prideconnect/prideconnect/internal/api"
	"github.com/prideconnect/prideconnect/internal/route"
)

// loginForm is the two-field credential form on the login screen.
type loginForm struct {
	email    textinput.Model
	password textinput.Model
	focus    int
	busy     bool
}

func newLoginForm() loginForm {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return loginForm{email: email, password: password}
}

func (f *loginForm) focusFirst() {
	f.focus = 0
	f.email.Focus()
	f.password.Blur()
}

func (f *loginForm) next() {
	f.focus = (f.focus + 1) % 2
	if f.focus == 0 {
		f.email.Focus()
		f.password.Blur()
	} else {
		f.email.Blur()
		f.password.Focus()
	}
}

// loginResultMsg carries the outcome of a login attempt.
type loginResultMsg struct {
	user *api.User
	err  error
}

// handleLoginKey drives the login form: tab cycles fields, enter submits
// once both are filled.
func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.login.busy {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		return m.navigate("/")
	case "tab", "shift+tab":
		m.login.next()
		return m, nil
	case "enter":
		if m.login.focus == 0 {
			m.login.next()
			return m, nil
		}
		email := m.login.email.Value()
		password := m.login.password.Value()
		if email == "" || password == "" {
			m.errText = "email and password are required"
			return m, nil
		}
		m.login.busy = true
		m.errText = ""
		store := m.store
		return m, func() tea.Msg {
			user, err := store.Login(context.Background(), email, password)
			return loginResultMsg{user: user, err: err}
		}
	}

	var cmd tea.Cmd
	if m.login.focus == 0 {
		m.login.email, cmd = m.login.email.Update(msg)
	} else {
		m.login.password, cmd = m.login.password.Update(msg)
	}
	return m, cmd
}

// handleLoginResult lands on the dashboard on success and keeps the form
// with an error message on failure.
func (m Model) handleLoginResult(msg loginResultMsg) (tea.Model, tea.Cmd) {
	m.login.busy = false
	if msg.err != nil {
		m.errText = msg.err.Error()
		return m, nil
	}
	return m.navigate(route.DashboardPath)
}
