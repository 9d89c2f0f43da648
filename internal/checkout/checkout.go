// Package checkout converts the current cart snapshot into a remote order.
package checkout

import (
	"context"
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/kovawear/kova/internal/domain"
)

// State is the checkout flow step.
type State int

const (
	// StateIdle accepts a submission.
	StateIdle State = iota
	// StateSubmitting means an order request is outstanding; further
	// submissions are refused until it settles.
	StateSubmitting
	// StatePlaced means the order was accepted and the cart cleared.
	StatePlaced
)

var (
	// ErrEmptyCart is returned without any network call when the cart
	// holds no lines.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInFlight is returned when a submission is already outstanding.
	ErrInFlight = errors.New("an order submission is already in flight")
)

// Cart is the slice of the cart store the flow needs.
type Cart interface {
	Items() []domain.CartItem
	TotalPrice() float64
	Len() int
	Clear()
}

// Orders is the slice of the API client the flow needs.
type Orders interface {
	CreateOrder(ctx context.Context, order domain.OrderRequest) error
}

// Flow owns one checkout attempt over the live cart.
type Flow struct {
	mu    sync.Mutex
	state State

	cart     Cart
	orders   Orders
	validate *validator.Validate
}

// NewFlow builds an idle checkout flow.
func NewFlow(cart Cart, orders Orders) *Flow {
	return &Flow{
		cart:     cart,
		orders:   orders,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// State returns the current step.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Validate checks the shipping form: all fields required, no format
// validation beyond non-empty.
func (f *Flow) Validate(shipping domain.Shipping) error {
	if err := f.validate.Struct(shipping); err != nil {
		var fields validator.ValidationErrors
		if errors.As(err, &fields) && len(fields) > 0 {
			return errors.New(fields[0].Field() + " is required")
		}
		return err
	}
	return nil
}

// Submit snapshots the cart and posts it as an order. The snapshot is taken
// at call time; on success the cart is cleared, on failure it is left
// intact so the user can retry with the same lines.
func (f *Flow) Submit(ctx context.Context, shipping domain.Shipping) error {
	f.mu.Lock()
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return ErrInFlight
	}
	if f.cart.Len() == 0 {
		f.mu.Unlock()
		return ErrEmptyCart
	}
	if err := f.Validate(shipping); err != nil {
		f.mu.Unlock()
		return err
	}
	f.state = StateSubmitting
	order := domain.OrderRequest{
		Items:      f.cart.Items(),
		TotalPrice: f.cart.TotalPrice(),
	}
	f.mu.Unlock()

	err := f.orders.CreateOrder(ctx, order)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = StateIdle
		return err
	}
	f.cart.Clear()
	f.state = StatePlaced
	return nil
}
