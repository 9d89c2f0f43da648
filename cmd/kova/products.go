package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kovawear/kova/internal/api"
	"github.com/kovawear/kova/internal/domain"
)

func productsCmd() *cobra.Command {
	var filter domain.Filter

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List the catalog",
		Run: func(cmd *cobra.Command, args []string) {
			products, err := client.ListProducts(context.Background(), filter)
			if err != nil {
				fatalError(err)
			}
			fmt.Print(out.Products(products))
		},
	}
	cmd.Flags().StringVar(&filter.Category, "category", "", "filter by category")
	cmd.Flags().StringVar(&filter.Collection, "collection", "", "filter by collection tag")
	cmd.Flags().StringVar(&filter.Search, "search", "", "free-text name search")

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single product",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			product, err := client.GetProduct(context.Background(), parseID(args[0]))
			if err != nil {
				if api.IsUnauthorized(err) {
					sessionExpired()
				}
				fatalError(err)
			}
			fmt.Print(out.ProductDetail(*product))
		},
	}
	cmd.AddCommand(showCmd)

	return cmd
}
