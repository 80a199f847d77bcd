package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"shopctl/internal/api"
)

var (
	orderShipName    string
	orderShipAddr    string
	orderShipCity    string
	orderShipPostal  string
	orderShipCountry string
	orderPayMethod   string
	orderNotes       string
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Place and inspect orders (requires login)",
}

var ordersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Turn the current cart into an order",
	Long: `Turn the current cart into an order. The backend snapshots the
cart server-side, so do not re-run this command after a timeout without
checking "orders list" first - it can place a duplicate order.`,
	RunE: runOrdersCreate,
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your orders",
	RunE:  runOrdersList,
}

var ordersGetCmd = &cobra.Command{
	Use:   "get <order-id>",
	Short: "Show one order with its items",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrdersGet,
}

func init() {
	rootCmd.AddCommand(ordersCmd)
	ordersCmd.AddCommand(ordersCreateCmd, ordersListCmd, ordersGetCmd)

	ordersCreateCmd.Flags().StringVar(&orderShipName, "name", "", "Recipient name")
	ordersCreateCmd.Flags().StringVar(&orderShipAddr, "address", "", "Street address")
	ordersCreateCmd.Flags().StringVar(&orderShipCity, "city", "", "City")
	ordersCreateCmd.Flags().StringVar(&orderShipPostal, "postal-code", "", "Postal code")
	ordersCreateCmd.Flags().StringVar(&orderShipCountry, "country", "", "Country")
	ordersCreateCmd.Flags().StringVar(&orderPayMethod, "payment-method", "card", "Payment method")
	ordersCreateCmd.Flags().StringVar(&orderNotes, "notes", "", "Delivery notes (optional)")
}

func runOrdersCreate(cmd *cobra.Command, args []string) error {
	client, _, _, err := newClient()
	if err != nil {
		return err
	}

	input := api.CreateOrderInput{
		ShippingName:       orderShipName,
		ShippingAddress:    orderShipAddr,
		ShippingCity:       orderShipCity,
		ShippingPostalCode: orderShipPostal,
		ShippingCountry:    orderShipCountry,
		PaymentMethod:      orderPayMethod,
	}
	if orderNotes != "" {
		input.Notes = &orderNotes
	}

	order, err := client.Orders.Create(cmd.Context(), input)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	fmt.Printf("📦 Order %s placed - total %.2f (%s)\n", order.OrderNumber, order.Total, order.Status)
	return nil
}

func runOrdersList(cmd *cobra.Command, args []string) error {
	client, _, _, err := newClient()
	if err != nil {
		return err
	}

	orders, err := client.Orders.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list orders: %w", err)
	}

	if len(orders) == 0 {
		fmt.Println("📭 No orders yet")
		return nil
	}

	fmt.Printf("📦 %d order(s):\n", len(orders))
	for _, o := range orders {
		fmt.Printf("  %-10s %-18s %-10s %8.2f  %s\n", o.ID, o.OrderNumber, o.Status, o.Total, o.CreatedAt)
	}
	return nil
}

func runOrdersGet(cmd *cobra.Command, args []string) error {
	client, _, _, err := newClient()
	if err != nil {
		return err
	}

	o, err := client.Orders.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to fetch order: %w", err)
	}

	fmt.Printf("📦 %s (%s) - %s\n", o.OrderNumber, o.ID, o.Status)
	fmt.Printf("   Ship to: %s, %s, %s %s, %s\n",
		o.ShippingName, o.ShippingAddress, o.ShippingCity, o.ShippingPostalCode, o.ShippingCountry)
	fmt.Printf("   Payment: %s (%s)\n", o.PaymentMethod, o.PaymentStatus)
	for _, item := range o.Items {
		fmt.Printf("   %-28s x%-3d %8.2f\n", item.ProductName, item.Quantity, item.Subtotal)
	}
	fmt.Printf("   Subtotal %.2f | Tax %.2f | Shipping %.2f | Total %.2f\n",
		o.Subtotal, o.Tax, o.Shipping, o.Total)
	if o.Notes != nil {
		fmt.Printf("   Notes: %s\n", *o.Notes)
	}
	return nil
}
