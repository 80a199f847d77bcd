package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"shopctl/internal/api"
)

var (
	productCategory string
	productFeatured bool
	productSearch   string
	productLimit    int
	productOffset   int
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Browse the catalog",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products with optional filters",
	RunE:  runProductsList,
}

var productsGetCmd = &cobra.Command{
	Use:   "get <slug>",
	Short: "Show a single product by slug",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductsGet,
}

func init() {
	rootCmd.AddCommand(productsCmd)
	productsCmd.AddCommand(productsListCmd, productsGetCmd)

	productsListCmd.Flags().StringVar(&productCategory, "category", "", "Filter by category slug")
	productsListCmd.Flags().BoolVar(&productFeatured, "featured", false, "Only featured products")
	productsListCmd.Flags().StringVar(&productSearch, "search", "", "Search name and description")
	productsListCmd.Flags().IntVar(&productLimit, "limit", 0, "Page size")
	productsListCmd.Flags().IntVar(&productOffset, "offset", 0, "Page offset")
}

func runProductsList(cmd *cobra.Command, args []string) error {
	client, _, _, err := newClient()
	if err != nil {
		return err
	}

	// Only flags the user actually set become query parameters.
	filters := &api.ProductFilters{
		Category: productCategory,
		Search:   productSearch,
	}
	if cmd.Flags().Changed("featured") {
		filters.Featured = &productFeatured
	}
	if cmd.Flags().Changed("limit") {
		filters.Limit = &productLimit
	}
	if cmd.Flags().Changed("offset") {
		filters.Offset = &productOffset
	}

	list, err := client.Products.List(cmd.Context(), filters)
	if err != nil {
		return fmt.Errorf("failed to list products: %w", err)
	}

	if len(list.Products) == 0 {
		fmt.Println("📭 No products found")
		return nil
	}

	fmt.Printf("🛍️  %d of %d products:\n", len(list.Products), list.Pagination.Total)
	for _, p := range list.Products {
		marker := " "
		if p.IsFeatured {
			marker = "★"
		}
		stock := fmt.Sprintf("%d in stock", p.StockQuantity)
		if p.StockQuantity == 0 {
			stock = "out of stock"
		}
		fmt.Printf("  %s %-28s %8.2f  %-10s (%s)\n", marker, p.Name, p.Price, p.CategoryName, stock)
	}
	return nil
}

func runProductsGet(cmd *cobra.Command, args []string) error {
	client, _, _, err := newClient()
	if err != nil {
		return err
	}

	p, err := client.Products.GetBySlug(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to fetch product: %w", err)
	}

	fmt.Printf("🛍️  %s (%s)\n", p.Name, p.ID)
	fmt.Printf("   Price: %.2f", p.Price)
	if p.OriginalPrice != nil {
		fmt.Printf(" (was %.2f)", *p.OriginalPrice)
	}
	fmt.Println()
	if p.Description != nil {
		fmt.Printf("   %s\n", *p.Description)
	}
	fmt.Printf("   Category: %s | Stock: %d\n", p.CategoryName, p.StockQuantity)
	if p.Rating != nil {
		reviews := 0
		if p.ReviewCount != nil {
			reviews = *p.ReviewCount
		}
		fmt.Printf("   Rating: %.1f (%d reviews)\n", *p.Rating, reviews)
	}
	return nil
}
