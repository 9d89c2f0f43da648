package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/kovawear/kova/internal/admin"
	"github.com/kovawear/kova/internal/domain"
)

// Admin input slots.
const (
	adminInName = iota
	adminInPrice
	adminInImage
	adminInCollection
)

func (m Model) updateAdmin(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.adminMode == adminCreate {
		return m.updateAdminCreate(msg)
	}

	if m.confirmDelete {
		switch msg.String() {
		case "y", "Y":
			m.confirmDelete = false
			if m.adminIdx < len(m.adminProducts) {
				m.loading = true
				return m, m.deleteProduct(m.adminProducts[m.adminIdx].ID)
			}
		default:
			m.confirmDelete = false
		}
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		if m.adminIdx > 0 {
			m.adminIdx--
		}
	case "down", "j":
		if m.adminIdx < len(m.adminProducts)-1 {
			m.adminIdx++
		}
	case "d":
		if len(m.adminProducts) > 0 {
			m.confirmDelete = true
		}
	case "n":
		m.adminMode = adminCreate
		m.adminForm = admin.Form{Category: domain.Categories[0]}
		m.adminCatIdx = 0
		m.adminSizeIdx = 0
		for i := range m.adminInputs {
			m.adminInputs[i].SetValue("")
			m.adminInputs[i].Blur()
		}
		m.adminFocus = adminInName
		m.adminInputs[adminInName].Focus()
		m.clearNotes()
		return m, textinput.Blink
	case "r":
		m.loading = true
		return m, m.fetchAdminList()
	case "esc":
		return m.gotoCatalog()
	}
	return m, nil
}

func (m Model) updateAdminCreate(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adminMode = adminList
		m.clearNotes()
		return m, nil
	case "tab", "shift+tab":
		delta := 1
		if msg.String() == "shift+tab" {
			delta = len(m.adminInputs) - 1
		}
		m.adminInputs[m.adminFocus].Blur()
		m.adminFocus = (m.adminFocus + delta) % len(m.adminInputs)
		m.adminInputs[m.adminFocus].Focus()
		return m, nil
	case "ctrl+t":
		// Cycle category.
		m.adminCatIdx = (m.adminCatIdx + 1) % len(domain.Categories)
		m.adminForm.Category = domain.Categories[m.adminCatIdx]
		return m, nil
	case "ctrl+s":
		// Move the size cursor.
		m.adminSizeIdx = (m.adminSizeIdx + 1) % len(domain.SizeOptions)
		return m, nil
	case "ctrl+x":
		// Toggle the size under the cursor.
		m.adminForm.ToggleSize(domain.SizeOptions[m.adminSizeIdx])
		return m, nil
	case "ctrl+u":
		// Two-phase upload: post the file, keep the resolved URL in the
		// pending form.
		path := strings.TrimSpace(m.adminInputs[adminInImage].Value())
		if path == "" {
			m.errMsg = "Enter an image path to upload."
			return m, nil
		}
		m.loading = true
		m.clearNotes()
		return m, tea.Batch(m.spinner.Tick, m.uploadImage(path))
	case "enter":
		m.adminForm.Name = m.adminInputs[adminInName].Value()
		m.adminForm.Price = m.adminInputs[adminInPrice].Value()
		m.adminForm.Collection = m.adminInputs[adminInCollection].Value()
		if m.adminForm.Image == "" {
			// No upload happened; a typed value is taken as the URL itself.
			m.adminForm.Image = strings.TrimSpace(m.adminInputs[adminInImage].Value())
		}
		if _, err := m.adminForm.Build(); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.loading = true
		m.clearNotes()
		return m, tea.Batch(m.spinner.Tick, m.createProduct(m.adminForm))
	}

	var cmd tea.Cmd
	m.adminInputs[m.adminFocus], cmd = m.adminInputs[m.adminFocus].Update(msg)
	return m, cmd
}

func (m Model) fetchAdminList() tea.Cmd {
	mgr := m.admin
	return func() tea.Msg {
		products, err := mgr.List(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return adminListMsg(products)
	}
}

func (m Model) createProduct(form admin.Form) tea.Cmd {
	mgr := m.admin
	return func() tea.Msg {
		_, err := mgr.Create(context.Background(), form)
		return adminCreatedMsg{err: err}
	}
}

func (m Model) deleteProduct(id int) tea.Cmd {
	mgr := m.admin
	return func() tea.Msg {
		return adminDeletedMsg{err: mgr.Delete(context.Background(), id)}
	}
}

func (m Model) uploadImage(path string) tea.Cmd {
	mgr := m.admin
	return func() tea.Msg {
		url, err := mgr.UploadImage(context.Background(), path)
		return uploadDoneMsg{url: url, err: err}
	}
}

func (m Model) viewAdmin() string {
	if m.adminMode == adminCreate {
		return m.viewAdminCreate()
	}

	var b strings.Builder
	b.WriteString("\n" + titleStyle.Render("Admin · Products") + "\n\n")

	if m.loading {
		b.WriteString(fmt.Sprintf("  %s Loading...\n", m.spinner.View()))
		return b.String()
	}

	if m.confirmDelete && m.adminIdx < len(m.adminProducts) {
		p := m.adminProducts[m.adminIdx]
		b.WriteString(noticeStyle.Render(fmt.Sprintf("  Delete %q? (y/N)", p.Name)) + "\n\n")
	}

	if len(m.adminProducts) == 0 {
		b.WriteString(infoStyle.Render("  No products\n"))
	} else {
		for i, p := range m.adminProducts {
			cursor := "  "
			style := infoStyle
			if i == m.adminIdx {
				cursor = "▶ "
				style = activeStyle
			}
			line := fmt.Sprintf("%s%-4d %-32s %8.2f  %s", cursor, p.ID, p.Name, p.Price, p.Category)
			b.WriteString(style.Render(line) + "\n")
		}
	}

	b.WriteString(m.notesView())
	b.WriteString(helpStyle.Render("  n: new drop │ d: delete │ r: refresh │ esc: back"))
	return b.String()
}

func (m Model) viewAdminCreate() string {
	var b strings.Builder
	b.WriteString("\n" + titleStyle.Render("Admin · Add New Drop") + "\n\n")

	if m.loading {
		b.WriteString(fmt.Sprintf("  %s Working...\n", m.spinner.View()))
		return b.String()
	}

	labels := []string{"Name", "Price", "Image", "Collection"}
	for i := range m.adminInputs {
		b.WriteString(infoStyle.Render(fmt.Sprintf("  %-10s", labels[i])) + m.adminInputs[i].View() + "\n")
	}

	b.WriteString(infoStyle.Render("  Category  ") + activeStyle.Render(m.adminForm.Category) + "\n")

	b.WriteString(infoStyle.Render("  Sizes     "))
	for i, size := range domain.SizeOptions {
		chosen := false
		for _, s := range m.adminForm.Sizes {
			if s == size {
				chosen = true
				break
			}
		}
		label := " " + size + " "
		switch {
		case chosen && i == m.adminSizeIdx:
			b.WriteString(activeStyle.Render("[" + size + "]"))
		case chosen:
			b.WriteString(activeStyle.Render(label))
		case i == m.adminSizeIdx:
			b.WriteString(noticeStyle.Render("[" + size + "]"))
		default:
			b.WriteString(infoStyle.Render(label))
		}
	}
	b.WriteString("\n")

	if m.adminForm.Image != "" {
		b.WriteString(infoStyle.Render("  Uploaded  "+m.adminForm.Image) + "\n")
	}

	b.WriteString(m.notesView())
	b.WriteString(helpStyle.Render("  tab: field │ ctrl+t: category │ ctrl+s/ctrl+x: sizes │ ctrl+u: upload │ enter: create │ esc: back"))
	return b.String()
}
