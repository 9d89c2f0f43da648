package domain

// CartItem is a product snapshot captured at add-time, extended with the
// chosen size and a quantity. Two items are the same line iff both the
// product id and the size match.
type CartItem struct {
	Product
	Quantity int    `json:"quantity"`
	Size     string `json:"size"`
}

// Key returns the line identity of the item.
func (c CartItem) Key() LineKey {
	return LineKey{ID: c.ID, Size: c.Size}
}

// Subtotal is the line total at the snapshotted unit price.
func (c CartItem) Subtotal() float64 {
	return c.Price * float64(c.Quantity)
}

// LineKey identifies a cart line: product id plus chosen size.
type LineKey struct {
	ID   int
	Size string
}
