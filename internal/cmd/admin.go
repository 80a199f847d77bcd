package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"shopctl/internal/api"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Dashboard operations (staff, catalog, customers)",
	Long: `Dashboard operations. The backend ships these endpoints as
placeholders, so the commands exist but report that the operation is not
available yet.`,
}

var adminStaffCmd = &cobra.Command{
	Use:   "staff",
	Short: "List staff accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := newClient()
		if err != nil {
			return err
		}
		_, err = client.Admin.ListStaff(cmd.Context())
		return reportAdmin(err)
	},
}

var adminCustomersCmd = &cobra.Command{
	Use:   "customers",
	Short: "List customer accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := newClient()
		if err != nil {
			return err
		}
		_, err = client.Admin.ListCustomers(cmd.Context())
		return reportAdmin(err)
	},
}

var adminDeleteProductCmd = &cobra.Command{
	Use:   "delete-product <product-id>",
	Short: "Remove a product from the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := newClient()
		if err != nil {
			return err
		}
		return reportAdmin(client.Admin.DeleteProduct(cmd.Context(), args[0]))
	},
}

func init() {
	rootCmd.AddCommand(adminCmd)
	adminCmd.AddCommand(adminStaffCmd, adminCustomersCmd, adminDeleteProductCmd)
}

// reportAdmin turns the expected ErrNotImplemented into a friendly notice
// instead of a command failure; anything else propagates.
func reportAdmin(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, api.ErrNotImplemented) {
		fmt.Println("⚠️  This operation is not available on the backend yet")
		return nil
	}
	return err
}
