package api

import (
	"context"
	"fmt"

	"shopctl/internal/models"
)

// AdminService covers the dashboard's staff, catalog, and customer screens.
// The backend ships these endpoints as placeholders only, so every method
// fails with ErrNotImplemented. The methods exist anyway: the dashboard
// relies on a catchable error, not a missing operation.
type AdminService struct {
	client *Client
}

// ListStaff would return all staff accounts.
func (s *AdminService) ListStaff(ctx context.Context) ([]models.UserSummary, error) {
	return nil, fmt.Errorf("staff listing: %w", ErrNotImplemented)
}

// CreateProduct would add a product to the catalog.
func (s *AdminService) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	return nil, fmt.Errorf("product creation: %w", ErrNotImplemented)
}

// UpdateProduct would edit an existing product.
func (s *AdminService) UpdateProduct(ctx context.Context, productID string, product *models.Product) (*models.Product, error) {
	return nil, fmt.Errorf("product update: %w", ErrNotImplemented)
}

// DeleteProduct would remove a product from the catalog.
func (s *AdminService) DeleteProduct(ctx context.Context, productID string) error {
	return fmt.Errorf("product deletion: %w", ErrNotImplemented)
}

// ListCustomers would return all customer accounts.
func (s *AdminService) ListCustomers(ctx context.Context) ([]models.UserSummary, error) {
	return nil, fmt.Errorf("customer listing: %w", ErrNotImplemented)
}
