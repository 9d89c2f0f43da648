package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kovawear/kova/internal/text"
)

func (m Model) updateDetail(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.product == nil {
		return m.gotoCatalog()
	}
	p := *m.product

	switch msg.String() {
	case "left", "h":
		if p.HasSizes() {
			if m.sizeIdx <= 0 {
				m.sizeIdx = 0
			} else {
				m.sizeIdx--
			}
			m.clearNotes()
		}
	case "right", "l":
		if p.HasSizes() {
			if m.sizeIdx < len(p.Sizes)-1 {
				m.sizeIdx++
			}
			m.clearNotes()
		}
	case "a", "enter":
		// Local precondition: a size must be chosen before adding when
		// the product has sizes. No request is involved either way.
		if p.HasSizes() && m.sizeIdx < 0 {
			m.errMsg = "Please select a size first."
			return m, nil
		}
		size := ""
		if p.HasSizes() {
			size = p.Sizes[m.sizeIdx]
		}
		m.deps.Cart.Add(p, size)
		m.errMsg = ""
		m.notice = fmt.Sprintf("Added %s to your bag.", p.Name)
	case "esc":
		return m.gotoCatalog()
	}
	return m, nil
}

func (m Model) viewDetail() string {
	if m.product == nil {
		return infoStyle.Render("  No product selected\n")
	}
	p := *m.product

	var b strings.Builder
	b.WriteString("\n" + titleStyle.Render(p.Name) + "\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("  %s", p.Category)))
	if p.Collection != "" {
		b.WriteString(infoStyle.Render(fmt.Sprintf(" · %s", p.Collection)))
	}
	b.WriteString("\n\n")
	b.WriteString("  " + priceStyle.Render(fmt.Sprintf("%.2f", p.Price)) + "\n\n")

	if p.Description != "" {
		b.WriteString(boxStyle.Render(text.Wrap(p.Description, 56)) + "\n\n")
	}

	if p.HasSizes() {
		b.WriteString(infoStyle.Render("  Size: "))
		for i, size := range p.Sizes {
			label := fmt.Sprintf(" %s ", size)
			if i == m.sizeIdx {
				b.WriteString(activeStyle.Render("[" + size + "]"))
			} else {
				b.WriteString(infoStyle.Render(label))
			}
		}
		b.WriteString("\n")
	}

	if p.Stock > 0 {
		b.WriteString(infoStyle.Render(fmt.Sprintf("  %d in stock", p.Stock)) + "\n")
	}

	b.WriteString(m.notesView())
	b.WriteString(helpStyle.Render("  h/l: size │ a: add to bag │ esc: back │ g: bag"))
	return b.String()
}
