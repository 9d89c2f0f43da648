// Package main provides the kova CLI entrypoint.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kovawear/kova/internal/api"
	"github.com/kovawear/kova/internal/cart"
	"github.com/kovawear/kova/internal/config"
	"github.com/kovawear/kova/internal/logging"
	"github.com/kovawear/kova/internal/render"
	"github.com/kovawear/kova/internal/session"
	"github.com/kovawear/kova/internal/storage"
	"github.com/kovawear/kova/internal/tui"
)

var (
	version = "0.1.0"

	cfg       *config.Config
	store     *storage.Store
	sess      *session.Store
	bag       *cart.Store
	client    *api.Client
	out       *render.Renderer
	plain     bool
	cfgFile   string
	apiURLArg string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "kova",
		Short: "KOVA storefront - browse, bag, and buy from the terminal",
		Long: `KOVA storefront client.

Usage modes:
  kova             Start the interactive storefront
  kova <command>   Run a specific command (see below)

The bag and your login survive between runs; state lives in ~/.kova.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if apiURLArg != "" {
				cfg.APIBaseURL = apiURLArg
			}

			logging.Setup(cfg.LogLevel, cfg.NoColor || plain)

			store, err = storage.Open(cfg.DataDir)
			if err != nil {
				return fmt.Errorf("open local storage: %w", err)
			}

			sess = session.New(store)
			bag = cart.New(store)
			client = api.New(cfg.APIBaseURL, sess)
			client.OnUnauthorized(func() {
				sess.Clear()
				log.Debug().Msg("session invalidated after 401")
			})
			out = render.New(!plain && !cfg.NoColor)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if store != nil {
				store.Close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return cmd.Help()
			}
			return tui.Run(tui.Deps{API: client, Cart: bag, Session: sess})
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.kova/kova.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiURLArg, "api-url", "", "backend origin override")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "plain output without color")

	rootCmd.AddCommand(
		shopCmd(),
		productsCmd(),
		cartCmd(),
		loginCmd(),
		logoutCmd(),
		whoamiCmd(),
		checkoutCmd(),
		ordersCmd(),
		profileCmd(),
		adminCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func shopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shop",
		Short: "Start the interactive storefront",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(tui.Deps{API: client, Cart: bag, Session: sess})
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the client version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("kova %s\n", version)
		},
	}
}
