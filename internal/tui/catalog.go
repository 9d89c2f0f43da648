package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kovawear/kova/internal/domain"
	"github.com/kovawear/kova/internal/text"
)

// categoryFilters is the filter cycle: all, then each fixed category.
var categoryFilters = append([]string{""}, domain.Categories...)

func (m Model) updateCatalog(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.searching {
		switch msg.String() {
		case "enter":
			m.searching = false
			m.searchInput.Blur()
			m.filter.Search = strings.TrimSpace(m.searchInput.Value())
			m.loading = true
			return m, m.fetchProducts()
		case "esc":
			m.searching = false
			m.searchInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "up", "k":
		if m.selectedIdx > 0 {
			m.selectedIdx--
		}
	case "down", "j":
		if m.selectedIdx < len(m.products)-1 {
			m.selectedIdx++
		}
	case "enter":
		if len(m.products) > 0 {
			m.loading = true
			m.clearNotes()
			return m, m.fetchProduct(m.products[m.selectedIdx].ID)
		}
	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, nil
	case "c":
		// Each filter change re-fetches; no client-side caching.
		m.categoryIdx = (m.categoryIdx + 1) % len(categoryFilters)
		m.filter.Category = categoryFilters[m.categoryIdx]
		m.loading = true
		return m, m.fetchProducts()
	case "r":
		m.loading = true
		m.clearNotes()
		return m, m.fetchProducts()
	}
	return m, nil
}

func (m Model) viewCatalog() string {
	var b strings.Builder

	filterLine := "all"
	if m.filter.Category != "" {
		filterLine = m.filter.Category
	}
	if m.filter.Search != "" {
		filterLine += fmt.Sprintf("  search:%q", m.filter.Search)
	}
	b.WriteString(infoStyle.Render("  "+filterLine) + "\n")

	if m.searching {
		b.WriteString("  " + m.searchInput.View() + "\n")
	}

	b.WriteString(m.notesView())

	if m.loading {
		b.WriteString(fmt.Sprintf("\n  %s Loading...\n", m.spinner.View()))
		return b.String()
	}

	if len(m.products) == 0 {
		b.WriteString(infoStyle.Render("\n  No products found\n"))
	} else {
		b.WriteString("\n")
		for i, p := range m.products {
			cursor := "  "
			style := infoStyle
			if i == m.selectedIdx {
				cursor = "▶ "
				style = activeStyle
			}
			line := fmt.Sprintf("%s%-36s %8.2f  %s", cursor, text.Truncate(p.Name, 36), p.Price, p.Category)
			b.WriteString(style.Render(line) + "\n")
		}
	}

	b.WriteString(helpStyle.Render("  enter: detail │ /: search │ c: category │ g: bag │ ?: help │ q: quit"))
	return b.String()
}
