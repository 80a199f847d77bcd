package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check backend connectivity and session state",
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	client, store, cfg, err := newClient()
	if err != nil {
		return err
	}

	fmt.Printf("🔍 Backend: %s\n", cfg.API.BaseURL)

	env, err := client.Request(cmd.Context(), http.MethodGet, "/health.php", nil, nil)
	if err != nil {
		return fmt.Errorf("backend unreachable: %w", err)
	}

	var health struct {
		Status  string `json:"status"`
		Service string `json:"service"`
		Version string `json:"version"`
	}
	if err := env.DecodeData(&health); err != nil {
		return err
	}
	fmt.Printf("✅ %s %s is %s\n", health.Service, health.Version, health.Status)

	if user := store.GetCurrentUser(); user != nil {
		fmt.Printf("🔐 Session: logged in as %s\n", user.Email)
	} else if store.IsAuthenticated() {
		fmt.Println("🔐 Session: token present, no cached user")
	} else {
		fmt.Println("🔓 Session: not logged in")
	}
	return nil
}
