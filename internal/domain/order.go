package domain

import "time"

// OrderRequest is the checkout payload: a full snapshot of the cart lines
// as they existed at submit time, not a reference.
type OrderRequest struct {
	Items      []CartItem `json:"items"`
	TotalPrice float64    `json:"total_price"`
}

// Order is a backend-owned order record as returned by /orders/my.
type Order struct {
	ID         int        `json:"id"`
	Items      []CartItem `json:"items"`
	TotalPrice float64    `json:"total_price"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Shipping holds the checkout form fields. All are required, with no
// format validation beyond non-empty.
type Shipping struct {
	Address string `validate:"required"`
	City    string `validate:"required"`
	Zip     string `validate:"required"`
}

// Profile is the authenticated user record from /users/me.
type Profile struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	IsAdmin   bool   `json:"is_admin"`
}
