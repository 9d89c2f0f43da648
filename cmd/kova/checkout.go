package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kovawear/kova/internal/api"
	"github.com/kovawear/kova/internal/checkout"
	"github.com/kovawear/kova/internal/domain"
)

func checkoutCmd() *cobra.Command {
	var shipping domain.Shipping

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place an order from the current bag",
		Run: func(cmd *cobra.Command, args []string) {
			if bag.Len() == 0 {
				fmt.Println("Your bag is empty. Run `kova products` to browse.")
				return
			}
			requireAuth()

			if shipping.Address == "" {
				shipping.Address = prompt("Street address: ")
			}
			if shipping.City == "" {
				shipping.City = prompt("City: ")
			}
			if shipping.Zip == "" {
				shipping.Zip = prompt("Zip code: ")
			}

			fmt.Print(out.Cart(bag.Items(), bag.TotalPrice(), bag.Count()))
			if !confirm("Place this order?") {
				fmt.Println("Cancelled. Your bag is untouched.")
				return
			}

			flow := checkout.NewFlow(bag, client)
			if err := flow.Submit(context.Background(), shipping); err != nil {
				if api.IsUnauthorized(err) {
					sessionExpired()
				}
				if errors.Is(err, checkout.ErrEmptyCart) {
					fmt.Println("Your bag is empty.")
					return
				}
				// The bag is left intact; re-running resubmits it.
				fatalError(fmt.Errorf("failed to place order: %w", err))
			}

			fmt.Println("Order placed. See it with `kova orders`.")
		},
	}

	cmd.Flags().StringVar(&shipping.Address, "address", "", "street address")
	cmd.Flags().StringVar(&shipping.City, "city", "", "city")
	cmd.Flags().StringVar(&shipping.Zip, "zip", "", "zip code")
	return cmd
}

func ordersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "Show your order history",
		Run: func(cmd *cobra.Command, args []string) {
			requireAuth()
			orders, err := client.MyOrders(context.Background())
			if err != nil {
				if api.IsUnauthorized(err) {
					sessionExpired()
				}
				fatalError(err)
			}
			fmt.Print(out.Orders(orders))
		},
	}
}
