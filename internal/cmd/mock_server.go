package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"shopctl/internal/config"
	"shopctl/internal/mockapi"
)

var mockServerCmd = &cobra.Command{
	Use:   "mock-server",
	Short: "Run the in-memory mock backend",
	Long: `Run an in-memory implementation of the storefront backend with a
seeded catalog. Point the client at it with:

  SHOPCTL_API_BASE_URL=http://localhost:8089 shopctl products list`,
	RunE: runMockServer,
}

func init() {
	rootCmd.AddCommand(mockServerCmd)
}

func runMockServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	srv := mockapi.NewServer(logger)

	fmt.Printf("🧪 Mock backend listening on %s\n", cfg.Mock.Addr)
	if err := srv.Start(cfg.Mock.Addr); err != nil {
		return fmt.Errorf("mock server failed: %w", err)
	}
	return nil
}
