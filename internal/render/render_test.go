package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kovawear/kova/internal/domain"
)

func sample() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Atlas Hoodie", Price: 500, Category: "Jackets", Sizes: []string{"M", "L"}},
		{ID: 4, Name: "Plain Tee", Price: 120, Category: "T-Shirts"},
	}
}

func TestProducts_Plain(t *testing.T) {
	out := New(false).Products(sample())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "1\tAtlas Hoodie\t500.00\tJackets\tM,L", lines[0])
	assert.Equal(t, "4\tPlain Tee\t120.00\tT-Shirts\t-", lines[1])
}

func TestProducts_Empty(t *testing.T) {
	assert.Equal(t, "No products found", New(false).Products(nil))
	assert.Equal(t, "No products found", New(true).Products(nil))
}

func TestProductDetail_Plain(t *testing.T) {
	p := sample()[0]
	p.Collection = "Winter Drop"
	p.Stock = 12
	p.Description = "Heavyweight fleece."

	out := New(false).ProductDetail(p)
	assert.Contains(t, out, "Atlas Hoodie\n")
	assert.Contains(t, out, "Price:      500.00")
	assert.Contains(t, out, "Collection: Winter Drop")
	assert.Contains(t, out, "Sizes:      M, L")
	assert.Contains(t, out, "Stock:      12")
	assert.Contains(t, out, "Heavyweight fleece.")
}

func TestProductDetail_OmitsEmptyFields(t *testing.T) {
	out := New(false).ProductDetail(sample()[1])
	assert.NotContains(t, out, "Collection:")
	assert.NotContains(t, out, "Sizes:")
}

func TestCart_Plain(t *testing.T) {
	items := []domain.CartItem{
		{Product: sample()[0], Quantity: 2, Size: "M"},
	}

	out := New(false).Cart(items, 1000, 2)
	assert.Contains(t, out, "1\tAtlas Hoodie\tM\t2\t1000.00")
	assert.Contains(t, out, "count=2 total=1000.00")
}

func TestCart_Empty(t *testing.T) {
	assert.Equal(t, "Your bag is empty", New(false).Cart(nil, 0, 0))
}

func TestOrders_Plain(t *testing.T) {
	orders := []domain.Order{
		{
			ID:         3,
			Status:     "Processing",
			TotalPrice: 620,
			Items: []domain.CartItem{
				{Product: sample()[0], Quantity: 1, Size: "L"},
			},
		},
	}

	out := New(false).Orders(orders)
	assert.Contains(t, out, "#3")
	assert.Contains(t, out, "Processing")
	assert.Contains(t, out, "620.00")
	assert.Contains(t, out, "Atlas Hoodie (L) x1")
}

func TestOrders_Empty(t *testing.T) {
	assert.Equal(t, "No orders yet", New(false).Orders(nil))
}
