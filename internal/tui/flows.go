package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kovawear/kova/internal/api"
	"github.com/kovawear/kova/internal/checkout"
)

// handleFlowMsg reacts to completions of login, checkout, and admin calls.
// Errors surfaced here were already folded into user-visible messages by
// the owning flow where one exists.
func (m Model) handleFlowMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.loading = false

	switch msg := msg.(type) {
	case loginSentMsg:
		if msg.err != nil {
			if api.IsUnauthorized(msg.err) {
				return m.sessionExpired()
			}
			// The flow retained a user-visible message; stay on the view.
			return m, nil
		}
		m.emailInput.Blur()
		m.codeInput.Focus()
		return m, nil

	case loginVerifiedMsg:
		if msg.err != nil {
			return m, nil
		}
		// Route on the admin flag: admins land on product management,
		// everyone else back on the catalog.
		if m.login.IsAdmin() {
			return m.gotoAdmin()
		}
		m.notice = "Logged in as " + m.deps.Session.Email()
		next, cmd := m.gotoCatalog()
		next.notice = m.notice
		return next, cmd

	case orderPlacedMsg:
		if msg.err != nil {
			switch msg.err {
			case checkout.ErrEmptyCart, checkout.ErrInFlight:
				return m, nil
			}
			if api.IsUnauthorized(msg.err) {
				return m.sessionExpired()
			}
			// Cart is left intact; the user may retry.
			m.errMsg = "Failed to place order. Please try again."
			return m, nil
		}
		// Cart was cleared by the flow; show the server-backed history.
		m.checkout = checkout.NewFlow(m.deps.Cart, m.deps.API)
		m.notice = "Order placed."
		m.loading = true
		return m, m.fetchOrders()

	case adminListMsg:
		m.adminProducts = msg
		if m.adminIdx >= len(m.adminProducts) {
			m.adminIdx = 0
		}
		return m, nil

	case adminCreatedMsg:
		if msg.err != nil {
			if api.IsUnauthorized(msg.err) {
				return m.sessionExpired()
			}
			m.errMsg = "Failed to add product: " + msg.err.Error()
			return m, nil
		}
		m.adminMode = adminList
		m.notice = "Product added."
		m.loading = true
		return m, m.fetchAdminList()

	case adminDeletedMsg:
		if msg.err != nil {
			if api.IsUnauthorized(msg.err) {
				return m.sessionExpired()
			}
			m.errMsg = "Failed to delete product: " + msg.err.Error()
			return m, nil
		}
		m.notice = "Product deleted."
		m.loading = true
		return m, m.fetchAdminList()

	case uploadDoneMsg:
		if msg.err != nil {
			if api.IsUnauthorized(msg.err) {
				return m.sessionExpired()
			}
			m.errMsg = "Image upload failed: " + msg.err.Error()
			return m, nil
		}
		m.adminForm.Image = msg.url
		m.notice = "Image uploaded."
		return m, nil
	}

	return m, nil
}
