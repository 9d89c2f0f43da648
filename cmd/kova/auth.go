package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kovawear/kova/internal/auth"
)

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Login with an emailed one-time code",
		Run: func(cmd *cobra.Command, args []string) {
			if sess.Authenticated() {
				fmt.Printf("Already logged in as %s. Run `kova logout` first to switch accounts.\n", sess.Email())
				return
			}

			flow := auth.NewFlow(client, sess)
			ctx := context.Background()

			for flow.State() == auth.StateEmail {
				email := prompt("Email address: ")
				if email == "" {
					continue
				}
				if err := flow.SubmitEmail(ctx, email); err != nil {
					fmt.Println(flow.ErrMsg())
				}
			}

			fmt.Printf("Code sent to %s.\n", flow.Email())
			for flow.State() == auth.StateCode {
				code := prompt("Code (or blank to re-enter email): ")
				if code == "" {
					flow.Back()
					break
				}
				if err := flow.SubmitCode(ctx, code); err != nil {
					fmt.Println(flow.ErrMsg())
				}
			}

			if flow.State() != auth.StateDone {
				// Went back to the email step; start over.
				fmt.Println("Login cancelled.")
				return
			}

			if flow.IsAdmin() {
				fmt.Printf("Logged in as %s (admin). Try `kova admin`.\n", sess.Email())
			} else {
				fmt.Printf("Logged in as %s.\n", sess.Email())
			}
		},
	}
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored credential",
		Run: func(cmd *cobra.Command, args []string) {
			sess.Clear()
			fmt.Println("Logged out.")
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current login",
		Run: func(cmd *cobra.Command, args []string) {
			if !sess.Authenticated() {
				fmt.Println("Not logged in.")
				return
			}
			if sess.IsAdmin() {
				fmt.Printf("%s (admin)\n", sess.Email())
			} else {
				fmt.Println(sess.Email())
			}
		},
	}
}
