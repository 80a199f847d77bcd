package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"shopctl/internal/models"
)

// OrderService creates and reads the authenticated user's orders.
type OrderService struct {
	client *Client
}

// CreateOrderInput is the /orders/create.php request body. Cart contents are
// not part of it; the backend derives the order from the user's current cart.
type CreateOrderInput struct {
	ShippingName       string  `json:"shipping_name" validate:"required"`
	ShippingAddress    string  `json:"shipping_address" validate:"required"`
	ShippingCity       string  `json:"shipping_city" validate:"required"`
	ShippingPostalCode string  `json:"shipping_postal_code" validate:"required"`
	ShippingCountry    string  `json:"shipping_country" validate:"required"`
	PaymentMethod      string  `json:"payment_method" validate:"required"`
	Notes              *string `json:"notes,omitempty"`
}

// Create snapshots the current cart into an order. Because the backend reads
// the cart server-side, retrying after a timeout can place a duplicate
// order; there is no client-side guard.
func (s *OrderService) Create(ctx context.Context, input CreateOrderInput) (*models.Order, error) {
	if err := s.client.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid order input: %w", err)
	}

	env, err := s.client.Request(ctx, http.MethodPost, "/orders/create.php", input, nil)
	if err != nil {
		return nil, err
	}

	var order models.Order
	if err := env.DecodeData(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

// List returns all orders for the authenticated user.
func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	env, err := s.client.Request(ctx, http.MethodGet, "/orders/list.php", nil, nil)
	if err != nil {
		return nil, err
	}

	var list models.OrderList
	if err := env.DecodeData(&list); err != nil {
		return nil, err
	}
	return list.Orders, nil
}

// Get returns a single order with its items.
func (s *OrderService) Get(ctx context.Context, orderID string) (*models.Order, error) {
	path := "/orders/get.php?id=" + url.QueryEscape(orderID)

	env, err := s.client.Request(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var order models.Order
	if err := env.DecodeData(&order); err != nil {
		return nil, err
	}
	return &order, nil
}
