package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"shopctl/internal/api"
)

var (
	authEmail    string
	authPassword string
	authFullName string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a storefront account",
	RunE:  runRegister,
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with email and password",
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the local session",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the currently logged-in user",
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(registerCmd, loginCmd, logoutCmd, whoamiCmd)

	registerCmd.Flags().StringVar(&authEmail, "email", "", "Account email")
	registerCmd.Flags().StringVar(&authPassword, "password", "", "Account password")
	registerCmd.Flags().StringVar(&authFullName, "full-name", "", "Full name (optional)")

	loginCmd.Flags().StringVar(&authEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&authPassword, "password", "", "Account password")
}

func runRegister(cmd *cobra.Command, args []string) error {
	client, store, _, err := newClient()
	if err != nil {
		return err
	}

	input := api.RegisterInput{Email: authEmail, Password: authPassword}
	if authFullName != "" {
		input.FullName = &authFullName
	}

	payload, err := client.Auth.Register(cmd.Context(), input)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	// The API layer hands the token back without persisting it; storing
	// the session is this command's job.
	if err := store.SetSession(payload.Token, payload.User); err != nil {
		return fmt.Errorf("registered, but failed to save session: %w", err)
	}

	fmt.Printf("🎉 Account created for %s\n", payload.User.Email)
	return nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	client, store, _, err := newClient()
	if err != nil {
		return err
	}

	payload, err := client.Auth.Login(cmd.Context(), api.LoginInput{
		Email:    authEmail,
		Password: authPassword,
	})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if err := store.SetSession(payload.Token, payload.User); err != nil {
		return fmt.Errorf("logged in, but failed to save session: %w", err)
	}

	fmt.Printf("🔐 Logged in as %s\n", payload.User.Email)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	client, _, _, err := newClient()
	if err != nil {
		return err
	}

	if !client.Auth.IsAuthenticated() {
		fmt.Println("Already logged out")
		return nil
	}

	if err := client.Auth.Logout(); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	fmt.Println("👋 Logged out")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	client, _, _, err := newClient()
	if err != nil {
		return err
	}

	user := client.Auth.CurrentUser()
	if user == nil {
		fmt.Println("Not logged in")
		return nil
	}

	fmt.Printf("👤 %s (%s)", user.Email, user.ID)
	if user.FullName != nil {
		fmt.Printf(" - %s", *user.FullName)
	}
	if user.Role != "" {
		fmt.Printf(" [%s]", user.Role)
	}
	fmt.Println()
	return nil
}
