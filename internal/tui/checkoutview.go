package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kovawear/kova/internal/checkout"
	"github.com/kovawear/kova/internal/domain"
)

func (m Model) updateCheckout(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.deps.Cart.Len() == 0 {
		switch msg.String() {
		case "b", "esc", "enter":
			return m.gotoCatalog()
		}
		return m, nil
	}

	if m.checkout.State() == checkout.StateSubmitting {
		// Submission in flight; re-entrant submits are refused anyway,
		// just swallow keys until it settles.
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.view = ViewCart
		return m, nil
	case "tab", "shift+tab", "down", "up":
		delta := 1
		if msg.String() == "shift+tab" || msg.String() == "up" {
			delta = len(m.shipInputs) - 1
		}
		m.shipInputs[m.shipFocus].Blur()
		m.shipFocus = (m.shipFocus + delta) % len(m.shipInputs)
		m.shipInputs[m.shipFocus].Focus()
		return m, nil
	case "enter":
		if m.shipFocus < len(m.shipInputs)-1 {
			m.shipInputs[m.shipFocus].Blur()
			m.shipFocus++
			m.shipInputs[m.shipFocus].Focus()
			return m, nil
		}
		shipping := domain.Shipping{
			Address: strings.TrimSpace(m.shipInputs[0].Value()),
			City:    strings.TrimSpace(m.shipInputs[1].Value()),
			Zip:     strings.TrimSpace(m.shipInputs[2].Value()),
		}
		if err := m.checkout.Validate(shipping); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.clearNotes()
		return m, tea.Batch(m.spinner.Tick, m.placeOrder(shipping))
	}

	var cmd tea.Cmd
	m.shipInputs[m.shipFocus], cmd = m.shipInputs[m.shipFocus].Update(msg)
	return m, cmd
}

func (m Model) placeOrder(shipping domain.Shipping) tea.Cmd {
	flow := m.checkout
	return func() tea.Msg {
		return orderPlacedMsg{err: flow.Submit(context.Background(), shipping)}
	}
}

func (m Model) viewCheckout() string {
	var b strings.Builder
	b.WriteString("\n" + titleStyle.Render("Checkout") + "\n\n")

	if m.deps.Cart.Len() == 0 {
		b.WriteString(infoStyle.Render("  Your bag is empty\n"))
		b.WriteString(helpStyle.Render("  b: go shopping"))
		return b.String()
	}

	if m.checkout.State() == checkout.StateSubmitting {
		b.WriteString(fmt.Sprintf("  %s Placing order...\n", m.spinner.View()))
		return b.String()
	}

	b.WriteString(infoStyle.Render("  Shipping details") + "\n")
	for i := range m.shipInputs {
		b.WriteString("  " + m.shipInputs[i].View() + "\n")
	}

	b.WriteString("\n" + infoStyle.Render("  Order summary") + "\n")
	for _, item := range m.deps.Cart.Items() {
		line := fmt.Sprintf("  %s (%s) x%d  %.2f", item.Name, item.Size, item.Quantity, item.Subtotal())
		b.WriteString(infoStyle.Render(line) + "\n")
	}
	b.WriteString(fmt.Sprintf("  Total %s\n", priceStyle.Render(fmt.Sprintf("%.2f", m.deps.Cart.TotalPrice()))))

	b.WriteString(m.notesView())
	b.WriteString(helpStyle.Render("  tab: next field │ enter: place order │ esc: back to bag"))
	return b.String()
}
