package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kovawear/kova/internal/auth"
)

func (m Model) updateLogin(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.login.Busy() {
		// A send/verify call is outstanding; it is never aborted, new
		// submissions are blocked until it settles.
		return m, nil
	}

	switch msg.String() {
	case "esc":
		return m.gotoCatalog()
	case "enter":
		switch m.login.State() {
		case auth.StateEmail:
			email := m.emailInput.Value()
			if strings.TrimSpace(email) == "" {
				return m, nil
			}
			m.clearNotes()
			return m, tea.Batch(m.spinner.Tick, m.submitEmail(email))
		case auth.StateCode:
			code := m.codeInput.Value()
			if strings.TrimSpace(code) == "" {
				return m, nil
			}
			m.clearNotes()
			return m, tea.Batch(m.spinner.Tick, m.submitCode(code))
		}
		return m, nil
	}

	// "Wrong email? Go back." Only meaningful at the code step, and
	// only when the ctrl modifier keeps it out of the code input.
	if msg.String() == "ctrl+b" && m.login.State() == auth.StateCode {
		m.login.Back()
		m.codeInput.SetValue("")
		m.codeInput.Blur()
		m.emailInput.Focus()
		m.clearNotes()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.login.State() {
	case auth.StateEmail:
		m.emailInput, cmd = m.emailInput.Update(msg)
	case auth.StateCode:
		if !m.codeInput.Focused() {
			m.emailInput.Blur()
			m.codeInput.Focus()
		}
		m.codeInput, cmd = m.codeInput.Update(msg)
	}
	return m, cmd
}

func (m Model) submitEmail(email string) tea.Cmd {
	flow := m.login
	return func() tea.Msg {
		return loginSentMsg{err: flow.SubmitEmail(context.Background(), email)}
	}
}

func (m Model) submitCode(code string) tea.Cmd {
	flow := m.login
	return func() tea.Msg {
		return loginVerifiedMsg{err: flow.SubmitCode(context.Background(), code)}
	}
}

func (m Model) viewLogin() string {
	var b strings.Builder

	switch m.login.State() {
	case auth.StateEmail:
		b.WriteString("\n" + titleStyle.Render("Welcome") + "\n")
		b.WriteString(infoStyle.Render("  Enter your email to access your account.") + "\n\n")
		b.WriteString("  " + m.emailInput.View() + "\n")
	case auth.StateCode:
		b.WriteString("\n" + titleStyle.Render("Verify") + "\n")
		b.WriteString(infoStyle.Render(fmt.Sprintf("  Code sent to %s", m.login.Email())) + "\n\n")
		b.WriteString("  " + m.codeInput.View() + "\n")
	}

	if m.login.Busy() {
		b.WriteString(fmt.Sprintf("\n  %s Working...\n", m.spinner.View()))
	}

	if errText := m.login.ErrMsg(); errText != "" && m.errMsg == "" {
		b.WriteString(errorStyle.Render("  "+errText) + "\n")
	}
	b.WriteString(m.notesView())

	if m.login.State() == auth.StateCode {
		b.WriteString(helpStyle.Render("  enter: verify │ ctrl+b: wrong email │ esc: cancel"))
	} else {
		b.WriteString(helpStyle.Render("  enter: send code │ esc: cancel"))
	}
	return b.String()
}
