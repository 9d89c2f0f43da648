// Package render provides plain-terminal output formatting for the
// non-interactive commands.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/kovawear/kova/internal/domain"
)

// Renderer handles output formatting.
type Renderer struct {
	pretty bool
}

// New creates a renderer. pretty enables color and rules; plain mode is
// machine-friendlier.
func New(pretty bool) *Renderer {
	return &Renderer{pretty: pretty}
}

// Products formats a catalog listing.
func (r *Renderer) Products(products []domain.Product) string {
	if len(products) == 0 {
		return "No products found"
	}

	var sb strings.Builder
	if r.pretty {
		sb.WriteString(color.CyanString("Catalog\n"))
		sb.WriteString(strings.Repeat("─", 60) + "\n")
	}
	for _, p := range products {
		r.formatProduct(&sb, p)
	}
	return sb.String()
}

func (r *Renderer) formatProduct(sb *strings.Builder, p domain.Product) {
	sizes := strings.Join(p.Sizes, ",")
	if sizes == "" {
		sizes = "-"
	}

	if r.pretty {
		name := color.New(color.Bold).Sprint(p.Name)
		fmt.Fprintf(sb, "%4d  %-40s %10.2f  %-12s %s\n",
			p.ID, name, p.Price, p.Category, color.HiBlackString(sizes))
	} else {
		fmt.Fprintf(sb, "%d\t%s\t%.2f\t%s\t%s\n", p.ID, p.Name, p.Price, p.Category, sizes)
	}
}

// ProductDetail formats a single product page.
func (r *Renderer) ProductDetail(p domain.Product) string {
	var sb strings.Builder

	if r.pretty {
		sb.WriteString(color.New(color.Bold).Sprintf("%s\n", p.Name))
		sb.WriteString(strings.Repeat("─", len(p.Name)+2) + "\n")
	} else {
		fmt.Fprintf(&sb, "%s\n", p.Name)
	}

	fmt.Fprintf(&sb, "ID:         %d\n", p.ID)
	fmt.Fprintf(&sb, "Price:      %.2f\n", p.Price)
	fmt.Fprintf(&sb, "Category:   %s\n", p.Category)
	if p.Collection != "" {
		fmt.Fprintf(&sb, "Collection: %s\n", p.Collection)
	}
	if len(p.Sizes) > 0 {
		fmt.Fprintf(&sb, "Sizes:      %s\n", strings.Join(p.Sizes, ", "))
	}
	fmt.Fprintf(&sb, "Stock:      %d\n", p.Stock)
	if p.Description != "" {
		fmt.Fprintf(&sb, "\n%s\n", p.Description)
	}
	return sb.String()
}

// Cart formats the cart lines plus derived totals.
func (r *Renderer) Cart(items []domain.CartItem, total float64, count int) string {
	if len(items) == 0 {
		return "Your bag is empty"
	}

	var sb strings.Builder
	if r.pretty {
		sb.WriteString(color.CyanString("Your Bag\n"))
		sb.WriteString(strings.Repeat("─", 60) + "\n")
	}
	for _, item := range items {
		if r.pretty {
			fmt.Fprintf(&sb, "%4d  %-32s %-4s x%-3d %10.2f\n",
				item.ID, item.Name, item.Size, item.Quantity, item.Subtotal())
		} else {
			fmt.Fprintf(&sb, "%d\t%s\t%s\t%d\t%.2f\n",
				item.ID, item.Name, item.Size, item.Quantity, item.Subtotal())
		}
	}

	if r.pretty {
		sb.WriteString(strings.Repeat("─", 60) + "\n")
		fmt.Fprintf(&sb, "%d item(s)  total %s\n", count, color.New(color.Bold).Sprintf("%.2f", total))
	} else {
		fmt.Fprintf(&sb, "count=%d total=%.2f\n", count, total)
	}
	return sb.String()
}

// Orders formats an order-history listing.
func (r *Renderer) Orders(orders []domain.Order) string {
	if len(orders) == 0 {
		return "No orders yet"
	}

	var sb strings.Builder
	if r.pretty {
		sb.WriteString(color.CyanString("Your Orders\n"))
		sb.WriteString(strings.Repeat("─", 60) + "\n")
	}
	for _, o := range orders {
		status := o.Status
		if r.pretty {
			switch o.Status {
			case "Processing":
				status = color.YellowString(o.Status)
			case "Delivered":
				status = color.GreenString(o.Status)
			}
		}
		fmt.Fprintf(&sb, "#%-5d %-12s %10.2f  %d line(s)\n",
			o.ID, status, o.TotalPrice, len(o.Items))
		for _, item := range o.Items {
			fmt.Fprintf(&sb, "       %s (%s) x%d\n", item.Name, item.Size, item.Quantity)
		}
	}
	return sb.String()
}
