package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func cartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage your bag",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print(out.Cart(bag.Items(), bag.TotalPrice(), bag.Count()))
		},
	}

	var size string
	addCmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the bag",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			product, err := client.GetProduct(context.Background(), parseID(args[0]))
			if err != nil {
				fatalError(err)
			}
			// A size must be chosen before adding when the product has
			// sizes; this is refused locally, no request involved.
			if product.HasSizes() && size == "" {
				fatalError(fmt.Errorf("product %q needs a size (one of %v); use --size", product.Name, product.Sizes))
			}
			if product.HasSizes() {
				valid := false
				for _, s := range product.Sizes {
					if s == size {
						valid = true
						break
					}
				}
				if !valid {
					fatalError(fmt.Errorf("size %q is not offered for %q (one of %v)", size, product.Name, product.Sizes))
				}
			}
			bag.Add(*product, size)
			fmt.Printf("Added %s (%s) to your bag.\n", product.Name, size)
		},
	}
	addCmd.Flags().StringVarP(&size, "size", "s", "", "size label (required when the product has sizes)")
	cmd.AddCommand(addCmd)

	lineCmd := func(use, short string, apply func(id int, size string)) *cobra.Command {
		var lineSize string
		c := &cobra.Command{
			Use:   use + " <product-id>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				apply(parseID(args[0]), lineSize)
				fmt.Print(out.Cart(bag.Items(), bag.TotalPrice(), bag.Count()))
			},
		}
		c.Flags().StringVarP(&lineSize, "size", "s", "", "size label of the line")
		return c
	}

	cmd.AddCommand(
		lineCmd("increase", "Increase a line's quantity", func(id int, size string) { bag.Increase(id, size) }),
		lineCmd("decrease", "Decrease a line's quantity (never below 1)", func(id int, size string) { bag.Decrease(id, size) }),
		lineCmd("remove", "Remove a line from the bag", func(id int, size string) { bag.Remove(id, size) }),
	)

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the bag",
		Run: func(cmd *cobra.Command, args []string) {
			bag.Clear()
			fmt.Println("Bag cleared.")
		},
	}
	cmd.AddCommand(clearCmd)

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the bag",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print(out.Cart(bag.Items(), bag.TotalPrice(), bag.Count()))
		},
	}
	cmd.AddCommand(showCmd)

	return cmd
}
