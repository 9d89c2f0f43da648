package tui

import (
	"net/http"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kovawear/kova/internal/api"
	"github.com/kovawear/kova/internal/cart"
	"github.com/kovawear/kova/internal/domain"
	"github.com/kovawear/kova/internal/session"
)

type memKV map[string]string

func (m memKV) Get(key string) (string, error) { return m[key], nil }
func (m memKV) Set(key, value string) error    { m[key] = value; return nil }
func (m memKV) Delete(key string) error        { delete(m, key); return nil }

func newTestModel(t *testing.T) Model {
	t.Helper()
	kv := memKV{}
	sess := session.New(kv)
	return New(Deps{
		API:     api.New("http://127.0.0.1:0", sess),
		Cart:    cart.New(kv),
		Session: sess,
	})
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, s string) Model {
	t.Helper()
	next, _ := m.Update(key(s))
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func hoodie() domain.Product {
	return domain.Product{ID: 1, Name: "Atlas Hoodie", Price: 500, Category: "Jackets", Sizes: []string{"M", "L"}}
}

func TestStartsOnCatalog(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, ViewCatalog, m.view)
	assert.NotNil(t, m.Init())
}

func TestProductsMsg_PopulatesCatalog(t *testing.T) {
	m := newTestModel(t)
	m.loading = true

	next, _ := m.Update(productsMsg{hoodie()})
	m = next.(Model)

	assert.False(t, m.loading)
	require.Len(t, m.products, 1)
	assert.Contains(t, m.View(), "Atlas Hoodie")
}

func TestProductMsg_EntersDetailWithNoSizeChosen(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(productMsg(hoodie()))
	m = next.(Model)

	assert.Equal(t, ViewDetail, m.view)
	assert.Equal(t, -1, m.sizeIdx, "size choice must reset on every visit")
}

func TestDetail_AddRequiresSizeFirst(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(productMsg(hoodie()))
	m = next.(Model)

	m = press(t, m, "a")
	assert.Equal(t, "Please select a size first.", m.errMsg)
	assert.Zero(t, m.deps.Cart.Len())

	m = press(t, m, "l") // first size
	m = press(t, m, "a")
	assert.Empty(t, m.errMsg)
	require.Equal(t, 1, m.deps.Cart.Len())
	assert.Equal(t, "M", m.deps.Cart.Items()[0].Size)
}

func TestDetail_SizelessProductAddsDirectly(t *testing.T) {
	m := newTestModel(t)
	tote := domain.Product{ID: 8, Name: "Canvas Tote", Price: 45, Category: "T-Shirts"}
	next, _ := m.Update(productMsg(tote))
	m = next.(Model)

	m = press(t, m, "a")
	require.Equal(t, 1, m.deps.Cart.Len())
	assert.Empty(t, m.deps.Cart.Items()[0].Size)
}

func TestUnauthorized_RedirectsToLoginOnce(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(errMsg{&api.APIError{Status: http.StatusUnauthorized, Detail: "Could not validate credentials"}})
	m = next.(Model)

	assert.Equal(t, ViewLogin, m.view)
	assert.Equal(t, "Session expired. Please login again.", m.notice)

	// A second 401 while already on the login view changes nothing.
	m.notice = ""
	next, _ = m.Update(errMsg{&api.APIError{Status: http.StatusUnauthorized}})
	m = next.(Model)
	assert.Equal(t, ViewLogin, m.view)
	assert.Empty(t, m.notice)
}

func TestHeader_ShowsBagCountAndIdentity(t *testing.T) {
	m := newTestModel(t)
	assert.Contains(t, m.View(), "bag 0")
	assert.Contains(t, m.View(), "guest")

	m.deps.Cart.Add(hoodie(), "M")
	m.deps.Cart.Add(hoodie(), "M")
	m.deps.Session.SetCredentials("tok", true, "admin@kova.example")

	out := m.View()
	assert.Contains(t, out, "bag 2")
	assert.Contains(t, out, "admin@kova.example (admin)")
}

func TestGlobalKeys_BagAndHelp(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "g")
	assert.Equal(t, ViewCart, m.view)

	m = press(t, m, "?")
	assert.Equal(t, ViewHelp, m.view)
	m = press(t, m, "?")
	assert.Equal(t, ViewCart, m.view)
}

func TestOrdersKey_RequiresLogin(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "o")

	assert.Equal(t, ViewLogin, m.view)
	assert.Equal(t, "Please login to see your orders.", m.notice)
}

func TestAdminKey_IgnoredForNonAdmins(t *testing.T) {
	m := newTestModel(t)
	m.deps.Session.SetCredentials("tok", false, "me@kova.example")

	m = press(t, m, "A")
	assert.Equal(t, ViewCatalog, m.view)
}
