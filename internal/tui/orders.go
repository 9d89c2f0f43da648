package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateOrders(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.gotoCatalog()
	case "r":
		m.loading = true
		return m, m.fetchOrders()
	}
	return m, nil
}

func (m Model) viewOrders() string {
	var b strings.Builder
	b.WriteString("\n" + titleStyle.Render("Your Orders") + "\n\n")

	if m.loading {
		b.WriteString(fmt.Sprintf("  %s Loading...\n", m.spinner.View()))
		return b.String()
	}

	if len(m.orders) == 0 {
		b.WriteString(infoStyle.Render("  No orders yet\n"))
	} else {
		for _, o := range m.orders {
			head := fmt.Sprintf("  #%d  %s  %.2f", o.ID, o.Status, o.TotalPrice)
			b.WriteString(activeStyle.Render(head) + "\n")
			for _, item := range o.Items {
				line := fmt.Sprintf("     %s (%s) x%d", item.Name, item.Size, item.Quantity)
				b.WriteString(infoStyle.Render(line) + "\n")
			}
		}
	}

	b.WriteString(m.notesView())
	b.WriteString(helpStyle.Render("  r: refresh │ esc: back │ b: browse"))
	return b.String()
}
