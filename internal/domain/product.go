// Package domain defines the shared types for the KOVA storefront client.
package domain

// Product is a read-only snapshot of a catalog entry owned by the backend.
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Sizes       []string `json:"sizes"`
	Description string   `json:"description"`
	Stock       int      `json:"stock"`
	Collection  string   `json:"collection,omitempty"`
}

// HasSizes reports whether the product requires a size choice before
// it can be added to the cart.
func (p Product) HasSizes() bool {
	return len(p.Sizes) > 0
}

// Filter holds optional catalog query parameters. Empty fields are
// omitted from the request; the backend combines them conjunctively.
type Filter struct {
	Category   string
	Collection string
	Search     string
}

// Categories is the fixed set offered by the admin product form.
var Categories = []string{"Shirts", "T-Shirts", "Jeans", "Trousers", "Jackets"}

// SizeOptions is the fixed set of size tags offered by the admin product form.
var SizeOptions = []string{"S", "M", "L", "XL", "XXL"}

// ProductCreate is the payload for the admin create-product endpoint.
type ProductCreate struct {
	Name       string   `json:"name" validate:"required"`
	Price      float64  `json:"price" validate:"required,gt=0"`
	Category   string   `json:"category" validate:"required"`
	Image      string   `json:"image"`
	Sizes      []string `json:"sizes" validate:"required,min=1"`
	Collection string   `json:"collection,omitempty"`
}
