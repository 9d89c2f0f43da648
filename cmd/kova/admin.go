package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kovawear/kova/internal/admin"
	"github.com/kovawear/kova/internal/api"
	"github.com/kovawear/kova/internal/domain"
)

func adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Product management (admins only)",
		Run: func(cmd *cobra.Command, args []string) {
			requireAuth()
			mgr := admin.NewManager(client)
			products, err := mgr.List(context.Background())
			if err != nil {
				if api.IsUnauthorized(err) {
					sessionExpired()
				}
				fatalError(err)
			}
			fmt.Print(out.Products(products))
		},
	}

	var form admin.Form
	var imagePath string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Create a product",
		Long: fmt.Sprintf(`Create a catalog entry.

Categories: %s
Sizes:      %s`,
			strings.Join(domain.Categories, ", "), strings.Join(domain.SizeOptions, ", ")),
		Run: func(cmd *cobra.Command, args []string) {
			requireAuth()
			mgr := admin.NewManager(client)
			ctx := context.Background()

			if imagePath != "" {
				url, err := mgr.UploadImage(ctx, imagePath)
				if err != nil {
					if api.IsUnauthorized(err) {
						sessionExpired()
					}
					fatalError(fmt.Errorf("image upload failed: %w", err))
				}
				form.Image = url
				fmt.Printf("Uploaded image: %s\n", url)
			}

			product, err := mgr.Create(ctx, form)
			if err != nil {
				if api.IsUnauthorized(err) {
					sessionExpired()
				}
				fatalError(err)
			}
			fmt.Printf("Product added: #%d %s\n", product.ID, product.Name)
		},
	}
	addCmd.Flags().StringVar(&form.Name, "name", "", "product name")
	addCmd.Flags().StringVar(&form.Price, "price", "", "price (decimal)")
	addCmd.Flags().StringVar(&form.Category, "category", domain.Categories[0], "category")
	addCmd.Flags().StringSliceVar(&form.Sizes, "sizes", nil, "size tags (comma-separated)")
	addCmd.Flags().StringVar(&form.Collection, "collection", "", "collection tag (optional)")
	addCmd.Flags().StringVar(&imagePath, "image", "", "image file to upload")
	cmd.AddCommand(addCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			requireAuth()
			id := parseID(args[0])
			if !confirm(fmt.Sprintf("Delete product %d?", id)) {
				fmt.Println("Cancelled.")
				return
			}
			mgr := admin.NewManager(client)
			if err := mgr.Delete(context.Background(), id); err != nil {
				if api.IsUnauthorized(err) {
					sessionExpired()
				}
				fatalError(err)
			}
			fmt.Println("Product deleted.")
		},
	}
	cmd.AddCommand(deleteCmd)

	uploadCmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a product image and print its URL",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			requireAuth()
			mgr := admin.NewManager(client)
			url, err := mgr.UploadImage(context.Background(), args[0])
			if err != nil {
				if api.IsUnauthorized(err) {
					sessionExpired()
				}
				fatalError(err)
			}
			fmt.Println(url)
		},
	}
	cmd.AddCommand(uploadCmd)

	return cmd
}
