package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kovawear/kova/internal/api"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show your account profile",
		Run: func(cmd *cobra.Command, args []string) {
			requireAuth()
			me, err := client.Me(context.Background())
			if err != nil {
				if api.IsUnauthorized(err) {
					sessionExpired()
				}
				fatalError(err)
			}
			fmt.Printf("Email:  %s\n", me.Email)
			if me.FirstName != "" || me.LastName != "" {
				fmt.Printf("Name:   %s %s\n", me.FirstName, me.LastName)
			}
			if me.Phone != "" {
				fmt.Printf("Phone:  %s\n", me.Phone)
			}
			if me.IsAdmin {
				fmt.Println("Role:   admin")
			}
		},
	}

	var first, last, phone string
	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Update your contact details",
		Run: func(cmd *cobra.Command, args []string) {
			requireAuth()
			ctx := context.Background()

			// Unset flags keep their current values.
			me, err := client.Me(ctx)
			if err != nil {
				if api.IsUnauthorized(err) {
					sessionExpired()
				}
				fatalError(err)
			}
			if !cmd.Flags().Changed("first-name") {
				first = me.FirstName
			}
			if !cmd.Flags().Changed("last-name") {
				last = me.LastName
			}
			if !cmd.Flags().Changed("phone") {
				phone = me.Phone
			}

			if err := client.UpdateProfile(ctx, first, last, phone); err != nil {
				if api.IsUnauthorized(err) {
					sessionExpired()
				}
				fatalError(err)
			}
			fmt.Println("Profile updated.")
		},
	}
	updateCmd.Flags().StringVar(&first, "first-name", "", "first name")
	updateCmd.Flags().StringVar(&last, "last-name", "", "last name")
	updateCmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.AddCommand(updateCmd)

	return cmd
}
