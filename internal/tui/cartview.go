package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"
)

func (m Model) updateCart(msg tea.KeyMsg) (Model, tea.Cmd) {
	items := m.deps.Cart.Items()

	clamp := func(i int) int {
		n := m.deps.Cart.Len()
		if n == 0 {
			return 0
		}
		if i >= n {
			return n - 1
		}
		if i < 0 {
			return 0
		}
		return i
	}

	switch msg.String() {
	case "up", "k":
		m.cartIdx = clamp(m.cartIdx - 1)
	case "down", "j":
		m.cartIdx = clamp(m.cartIdx + 1)
	case "+", "=":
		if m.cartIdx < len(items) {
			item := items[m.cartIdx]
			m.deps.Cart.Increase(item.ID, item.Size)
		}
	case "-":
		if m.cartIdx < len(items) {
			item := items[m.cartIdx]
			m.deps.Cart.Decrease(item.ID, item.Size)
		}
	case "x", "delete":
		if m.cartIdx < len(items) {
			item := items[m.cartIdx]
			m.deps.Cart.Remove(item.ID, item.Size)
			m.cartIdx = clamp(m.cartIdx)
		}
	case "C":
		m.deps.Cart.Clear()
		m.cartIdx = 0
	case "enter":
		return m.gotoCheckout()
	case "esc":
		return m.gotoCatalog()
	}
	return m, nil
}

// gotoCheckout enters the checkout view. An empty cart short-circuits to
// the empty-state rendering inside viewCheckout; no request is ever sent.
func (m Model) gotoCheckout() (Model, tea.Cmd) {
	m.view = ViewCheckout
	m.clearNotes()
	if m.deps.Cart.Len() == 0 {
		return m, nil
	}
	if !m.deps.Session.Authenticated() {
		return m.gotoLogin("Please login to check out.")
	}
	for i := range m.shipInputs {
		m.shipInputs[i].SetValue("")
		m.shipInputs[i].Blur()
	}
	m.shipFocus = 0
	m.shipInputs[0].Focus()
	return m, textinput.Blink
}

func (m Model) viewCart() string {
	items := m.deps.Cart.Items()

	var b strings.Builder
	b.WriteString("\n" + titleStyle.Render("Your Bag") + "\n\n")

	if len(items) == 0 {
		b.WriteString(infoStyle.Render("  Your bag is empty\n"))
		b.WriteString(helpStyle.Render("  b: go shopping │ q: quit"))
		return b.String()
	}

	for i, item := range items {
		cursor := "  "
		style := infoStyle
		if i == m.cartIdx {
			cursor = "▶ "
			style = activeStyle
		}
		line := fmt.Sprintf("%s%-30s %-4s x%-3d %9.2f", cursor, item.Name, item.Size, item.Quantity, item.Subtotal())
		b.WriteString(style.Render(line) + "\n")
	}

	b.WriteString("\n")
	total := fmt.Sprintf("  Total %s  (%d items)",
		priceStyle.Render(fmt.Sprintf("%.2f", m.deps.Cart.TotalPrice())), m.deps.Cart.Count())
	b.WriteString(total + "\n")

	b.WriteString(m.notesView())
	b.WriteString(helpStyle.Render("  +/-: quantity │ x: remove │ C: clear │ enter: checkout │ esc: back"))
	return b.String()
}
