// Package admin implements the product-management surface: create and
// delete catalog entries plus the two-phase image upload. There is no edit.
package admin

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kovawear/kova/internal/domain"
)

// Catalog is the slice of the API client the manager needs.
type Catalog interface {
	ListProducts(ctx context.Context, filter domain.Filter) ([]domain.Product, error)
	CreateProduct(ctx context.Context, create domain.ProductCreate) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int) error
	Upload(ctx context.Context, filename string, file io.Reader) (string, error)
}

// Form is the pending product form. Price arrives as text and is parsed
// to a decimal on build.
type Form struct {
	Name       string
	Price      string
	Category   string
	Sizes      []string
	Image      string
	Collection string
}

// ToggleSize adds size to the selection, or removes it when present.
func (f *Form) ToggleSize(size string) {
	if i := slices.Index(f.Sizes, size); i >= 0 {
		f.Sizes = slices.Delete(f.Sizes, i, i+1)
		return
	}
	f.Sizes = append(f.Sizes, size)
}

// Build parses and validates the form into a create payload.
func (f *Form) Build() (domain.ProductCreate, error) {
	var create domain.ProductCreate

	price, err := strconv.ParseFloat(strings.TrimSpace(f.Price), 64)
	if err != nil {
		return create, fmt.Errorf("price %q is not a number", f.Price)
	}
	if !slices.Contains(domain.Categories, f.Category) {
		return create, fmt.Errorf("unknown category %q", f.Category)
	}

	create = domain.ProductCreate{
		Name:       strings.TrimSpace(f.Name),
		Price:      price,
		Category:   f.Category,
		Image:      f.Image,
		Sizes:      f.Sizes,
		Collection: strings.TrimSpace(f.Collection),
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(create); err != nil {
		var fields validator.ValidationErrors
		if errors.As(err, &fields) && len(fields) > 0 {
			field := fields[0]
			if field.Field() == "Sizes" {
				return create, errors.New("select at least one size")
			}
			return create, errors.New(strings.ToLower(field.Field()) + " is invalid")
		}
		return create, err
	}
	return create, nil
}

// Manager drives admin operations against the catalog.
type Manager struct {
	catalog Catalog
}

// NewManager builds a manager over the given catalog client.
func NewManager(catalog Catalog) *Manager {
	return &Manager{catalog: catalog}
}

// List fetches all products, unfiltered.
func (m *Manager) List(ctx context.Context) ([]domain.Product, error) {
	return m.catalog.ListProducts(ctx, domain.Filter{})
}

// Create builds and submits the form.
func (m *Manager) Create(ctx context.Context, form Form) (*domain.Product, error) {
	create, err := form.Build()
	if err != nil {
		return nil, err
	}
	return m.catalog.CreateProduct(ctx, create)
}

// Delete removes a product. Confirmation is the caller's responsibility.
func (m *Manager) Delete(ctx context.Context, id int) error {
	return m.catalog.DeleteProduct(ctx, id)
}

// UploadImage posts the file at path and returns the resolved image URL
// for the pending form.
func (m *Manager) UploadImage(ctx context.Context, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer file.Close()

	return m.catalog.Upload(ctx, filepath.Base(path), file)
}
