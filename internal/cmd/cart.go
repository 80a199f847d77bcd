package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cartQuantity int

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manage your cart (requires login)",
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add a product to the cart",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartAdd,
}

var cartListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the cart",
	RunE:  runCartList,
}

var cartUpdateCmd = &cobra.Command{
	Use:   "update <item-id>",
	Short: "Change an item's quantity",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartUpdate,
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <item-id>",
	Short: "Remove an item from the cart",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartRemove,
}

func init() {
	rootCmd.AddCommand(cartCmd)
	cartCmd.AddCommand(cartAddCmd, cartListCmd, cartUpdateCmd, cartRemoveCmd)

	cartAddCmd.Flags().IntVar(&cartQuantity, "quantity", 1, "Units to add")
	cartUpdateCmd.Flags().IntVar(&cartQuantity, "quantity", 1, "New quantity")
}

func runCartAdd(cmd *cobra.Command, args []string) error {
	client, _, _, err := newClient()
	if err != nil {
		return err
	}

	env, err := client.Cart.Add(cmd.Context(), args[0], cartQuantity)
	if err != nil {
		return fmt.Errorf("failed to add to cart: %w", err)
	}

	fmt.Printf("🛒 %s\n", env.Message)
	return nil
}

func runCartList(cmd *cobra.Command, args []string) error {
	client, _, _, err := newClient()
	if err != nil {
		return err
	}

	items, err := client.Cart.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list cart: %w", err)
	}

	if len(items) == 0 {
		fmt.Println("🛒 Cart is empty")
		return nil
	}

	var total float64
	fmt.Printf("🛒 %d item(s):\n", len(items))
	for _, item := range items {
		name := item.ProductID
		var price float64
		if item.Product != nil {
			name = item.Product.Name
			price = item.Product.Price
		}
		line := price * float64(item.Quantity)
		total += line
		fmt.Printf("  %-10s %-28s x%-3d %8.2f\n", item.ID, name, item.Quantity, line)
	}
	fmt.Printf("  %49s %8.2f\n", "subtotal", total)
	return nil
}

func runCartUpdate(cmd *cobra.Command, args []string) error {
	client, _, _, err := newClient()
	if err != nil {
		return err
	}

	env, err := client.Cart.Update(cmd.Context(), args[0], cartQuantity)
	if err != nil {
		return fmt.Errorf("failed to update cart: %w", err)
	}

	fmt.Printf("🛒 %s\n", env.Message)
	return nil
}

func runCartRemove(cmd *cobra.Command, args []string) error {
	client, _, _, err := newClient()
	if err != nil {
		return err
	}

	env, err := client.Cart.Remove(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to remove from cart: %w", err)
	}

	fmt.Printf("🛒 %s\n", env.Message)
	return nil
}
