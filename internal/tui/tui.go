// Package tui provides the interactive storefront using Bubble Tea.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kovawear/kova/internal/admin"
	"github.com/kovawear/kova/internal/api"
	"github.com/kovawear/kova/internal/auth"
	"github.com/kovawear/kova/internal/cart"
	"github.com/kovawear/kova/internal/checkout"
	"github.com/kovawear/kova/internal/domain"
	"github.com/kovawear/kova/internal/session"
)

// View represents the current screen.
type View int

const (
	ViewCatalog View = iota
	ViewDetail
	ViewCart
	ViewCheckout
	ViewLogin
	ViewOrders
	ViewAdmin
	ViewHelp
)

// Deps are the stores and client the TUI operates over; they are
// constructed once per process and passed in.
type Deps struct {
	API     *api.Client
	Cart    *cart.Store
	Session *session.Store
}

// Message types
type productsMsg []domain.Product
type productMsg domain.Product
type ordersMsg []domain.Order
type loginSentMsg struct{ err error }
type loginVerifiedMsg struct{ err error }
type orderPlacedMsg struct{ err error }
type adminListMsg []domain.Product
type adminCreatedMsg struct{ err error }
type adminDeletedMsg struct{ err error }
type uploadDoneMsg struct {
	url string
	err error
}
type errMsg struct{ err error }

// Model is the storefront TUI model.
type Model struct {
	deps     Deps
	login    *auth.Flow
	checkout *checkout.Flow
	admin    *admin.Manager

	view     View
	prevView View
	width    int
	height   int
	quitting bool

	spinner spinner.Model
	loading bool

	// Transient user-visible notice/error for the current view.
	notice string
	errMsg string

	// Catalog state
	products    []domain.Product
	selectedIdx int
	filter      domain.Filter
	searchInput textinput.Model
	searching   bool
	categoryIdx int

	// Detail state (size choice is transient per visit)
	product *domain.Product
	sizeIdx int

	// Cart view state
	cartIdx int

	// Login inputs
	emailInput textinput.Model
	codeInput  textinput.Model

	// Checkout inputs
	shipInputs [3]textinput.Model
	shipFocus  int

	// Orders
	orders []domain.Order

	// Admin state
	adminProducts []domain.Product
	adminIdx      int
	adminMode     adminMode
	adminForm     admin.Form
	adminInputs   [4]textinput.Model
	adminFocus    int
	adminCatIdx   int
	adminSizeIdx  int
	confirmDelete bool
}

type adminMode int

const (
	adminList adminMode = iota
	adminCreate
)

// New creates the storefront model.
func New(deps Deps) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	search := textinput.New()
	search.Placeholder = "Search..."
	search.CharLimit = 60
	search.Width = 30

	email := textinput.New()
	email.Placeholder = "Email address"
	email.CharLimit = 120
	email.Width = 40

	code := textinput.New()
	code.Placeholder = "0 0 0 0 0 0"
	code.CharLimit = 6
	code.Width = 12

	var ship [3]textinput.Model
	for i, placeholder := range []string{"Street address", "City", "Zip code"} {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 120
		ti.Width = 40
		ship[i] = ti
	}

	var adminIn [4]textinput.Model
	for i, placeholder := range []string{"Product name", "Price", "Image path", "Collection (optional)"} {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 160
		ti.Width = 40
		adminIn[i] = ti
	}

	m := Model{
		deps:        deps,
		login:       auth.NewFlow(deps.API, deps.Session),
		checkout:    checkout.NewFlow(deps.Cart, deps.API),
		admin:       admin.NewManager(deps.API),
		view:        ViewCatalog,
		spinner:     s,
		searchInput: search,
		emailInput:  email,
		codeInput:   code,
		shipInputs:  ship,
		adminInputs: adminIn,
		adminForm:   admin.Form{Category: domain.Categories[0]},
	}
	return m
}

// Init kicks off the first catalog fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchProducts())
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case errMsg:
		m.loading = false
		if api.IsUnauthorized(msg.err) {
			return m.sessionExpired()
		}
		m.errMsg = msg.err.Error()
		return m, nil

	case productsMsg:
		m.loading = false
		m.products = msg
		if m.selectedIdx >= len(m.products) {
			m.selectedIdx = 0
		}
		return m, nil

	case productMsg:
		m.loading = false
		p := domain.Product(msg)
		m.product = &p
		m.sizeIdx = -1
		m.view = ViewDetail
		return m, nil

	case ordersMsg:
		m.loading = false
		m.orders = msg
		m.view = ViewOrders
		return m, nil

	case loginSentMsg, loginVerifiedMsg, orderPlacedMsg,
		adminListMsg, adminCreatedMsg, adminDeletedMsg, uploadDoneMsg:
		return m.handleFlowMsg(msg)
	}

	return m.updateInputs(msg)
}

// handleKey routes key presses: a few globals, then per-view handling.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Text-entry contexts swallow most keys; only ctrl+c stays global.
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.typing() {
		return m.handleViewKey(msg)
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "?":
		if m.view == ViewHelp {
			m.view = m.prevView
		} else {
			m.prevView = m.view
			m.view = ViewHelp
		}
		return m, nil
	case "b":
		// Back to browsing from anywhere outside text entry.
		return m.gotoCatalog()
	case "g":
		m.view = ViewCart
		m.cartIdx = 0
		m.clearNotes()
		return m, nil
	case "o":
		if !m.deps.Session.Authenticated() {
			return m.gotoLogin("Please login to see your orders.")
		}
		m.loading = true
		m.clearNotes()
		return m, m.fetchOrders()
	case "L":
		if m.deps.Session.Authenticated() {
			return m, nil
		}
		return m.gotoLogin("")
	case "A":
		if m.deps.Session.Authenticated() && m.deps.Session.IsAdmin() {
			return m.gotoAdmin()
		}
		return m, nil
	}

	return m.handleViewKey(msg)
}

func (m Model) handleViewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.view {
	case ViewCatalog:
		return m.updateCatalog(msg)
	case ViewDetail:
		return m.updateDetail(msg)
	case ViewCart:
		return m.updateCart(msg)
	case ViewCheckout:
		return m.updateCheckout(msg)
	case ViewLogin:
		return m.updateLogin(msg)
	case ViewOrders:
		return m.updateOrders(msg)
	case ViewAdmin:
		return m.updateAdmin(msg)
	case ViewHelp:
		m.view = m.prevView
		return m, nil
	}
	return m, nil
}

// typing reports whether a focused text input should own the keyboard.
func (m Model) typing() bool {
	switch m.view {
	case ViewCatalog:
		return m.searching
	case ViewLogin:
		return true
	case ViewCheckout:
		return m.deps.Cart.Len() > 0
	case ViewAdmin:
		return m.adminMode == adminCreate
	}
	return false
}

func (m *Model) clearNotes() {
	m.notice = ""
	m.errMsg = ""
}

// gotoCatalog re-enters the catalog view, re-fetching per the no-caching
// rule.
func (m Model) gotoCatalog() (Model, tea.Cmd) {
	m.view = ViewCatalog
	m.searching = false
	m.searchInput.Blur()
	m.loading = true
	m.clearNotes()
	return m, m.fetchProducts()
}

// gotoLogin enters the login view with an optional notice. Entering while
// already there is a no-op, which keeps 401 handling from looping.
func (m Model) gotoLogin(notice string) (Model, tea.Cmd) {
	if m.view == ViewLogin {
		return m, nil
	}
	m.view = ViewLogin
	m.clearNotes()
	m.notice = notice
	m.login = auth.NewFlow(m.deps.API, m.deps.Session)
	m.emailInput.SetValue("")
	m.codeInput.SetValue("")
	m.emailInput.Focus()
	return m, textinput.Blink
}

// sessionExpired reacts to a 401 observed on any fetch: the API client's
// hook has already cleared the stored credentials, the TUI redirects to
// login exactly once.
func (m Model) sessionExpired() (Model, tea.Cmd) {
	return m.gotoLogin("Session expired. Please login again.")
}

func (m Model) gotoAdmin() (Model, tea.Cmd) {
	m.view = ViewAdmin
	m.adminMode = adminList
	m.adminIdx = 0
	m.confirmDelete = false
	m.loading = true
	m.clearNotes()
	return m, m.fetchAdminList()
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return "Thanks for shopping KOVA.\n"
	}

	var body string
	switch m.view {
	case ViewDetail:
		body = m.viewDetail()
	case ViewCart:
		body = m.viewCart()
	case ViewCheckout:
		body = m.viewCheckout()
	case ViewLogin:
		body = m.viewLogin()
	case ViewOrders:
		body = m.viewOrders()
	case ViewAdmin:
		body = m.viewAdmin()
	case ViewHelp:
		body = m.viewHelp()
	default:
		body = m.viewCatalog()
	}
	return m.header() + "\n" + body
}

func (m Model) header() string {
	title := titleStyle.Render("KOVA")

	who := "guest"
	if m.deps.Session.Authenticated() {
		who = m.deps.Session.Email()
		if m.deps.Session.IsAdmin() {
			who += " (admin)"
		}
	}

	bag := badgeStyle.Render(fmt.Sprintf("bag %d", m.deps.Cart.Count()))
	return fmt.Sprintf("%s  %s  %s", title, infoStyle.Render(who), bag)
}

func (m Model) notesView() string {
	var b strings.Builder
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("  "+m.errMsg) + "\n")
	}
	if m.notice != "" {
		b.WriteString(noticeStyle.Render("  "+m.notice) + "\n")
	}
	return b.String()
}

func (m Model) viewHelp() string {
	help := `
  KOVA Storefront - Help

  GLOBAL
    b         Browse catalog
    g         View bag
    o         Order history
    L         Login
    A         Admin (admins only)
    ?         Toggle help
    q         Quit

  CATALOG
    j/k       Move
    enter     Product detail
    /         Search
    c         Cycle category filter
    r         Refresh

  DETAIL
    h/l       Choose size
    a/enter   Add to bag

  BAG
    +/-       Change quantity
    x         Remove line
    C         Clear bag
    enter     Checkout
`
	return titleStyle.Render("Help") + "\n" + infoStyle.Render(help) +
		helpStyle.Render("\n  press any key to return")
}

// updateInputs forwards non-key messages (blink ticks) to whichever text
// inputs are live.
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch m.view {
	case ViewCatalog:
		m.searchInput, cmd = m.searchInput.Update(msg)
		cmds = append(cmds, cmd)
	case ViewLogin:
		m.emailInput, cmd = m.emailInput.Update(msg)
		cmds = append(cmds, cmd)
		m.codeInput, cmd = m.codeInput.Update(msg)
		cmds = append(cmds, cmd)
	case ViewCheckout:
		for i := range m.shipInputs {
			m.shipInputs[i], cmd = m.shipInputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
	case ViewAdmin:
		for i := range m.adminInputs {
			m.adminInputs[i], cmd = m.adminInputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

// Commands

func (m Model) fetchProducts() tea.Cmd {
	filter := m.filter
	client := m.deps.API
	return func() tea.Msg {
		products, err := client.ListProducts(context.Background(), filter)
		if err != nil {
			return errMsg{err}
		}
		return productsMsg(products)
	}
}

func (m Model) fetchProduct(id int) tea.Cmd {
	client := m.deps.API
	return func() tea.Msg {
		product, err := client.GetProduct(context.Background(), id)
		if err != nil {
			return errMsg{err}
		}
		return productMsg(*product)
	}
}

func (m Model) fetchOrders() tea.Cmd {
	client := m.deps.API
	return func() tea.Msg {
		orders, err := client.MyOrders(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return ordersMsg(orders)
	}
}

// Run starts the storefront TUI.
func Run(deps Deps) error {
	p := tea.NewProgram(New(deps), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
