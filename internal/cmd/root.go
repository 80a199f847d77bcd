package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"shopctl/internal/api"
	"shopctl/internal/config"
	"shopctl/internal/session"
)

var rootCmd = &cobra.Command{
	Use:   "shopctl",
	Short: "shopctl - storefront client",
	Long: `shopctl is a command-line client for the storefront backend:
browse the catalog, manage your cart, place orders, and inspect your
session, all against the remote HTTP API.

Run "shopctl mock-server" in a second terminal to work fully offline
against a seeded in-memory backend.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newClient wires config, session store, and API client the way every
// command needs them.
func newClient() (*api.Client, *session.Store, *config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := zerolog.Nop()
	if cfg.API.Debug {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	store := session.NewStore(session.NewFileKV(cfg.Session.Path), logger)
	client := api.New(api.Config{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		RateLimit: cfg.API.RateLimit,
		Logger:    logger,
	}, store)

	return client, store, cfg, nil
}
