package api

import (
	"context"
	"net/http"

	"shopctl/internal/models"
)

// CartService manages the authenticated user's cart. The backend, not this
// layer, rejects unauthenticated calls.
type CartService struct {
	client *Client
}

type cartAddRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type cartUpdateRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

type cartRemoveRequest struct {
	ItemID string `json:"item_id"`
}

// Add puts quantity units of a product in the cart. Adding a product that is
// already there accumulates quantity server-side.
func (s *CartService) Add(ctx context.Context, productID string, quantity int) (*Envelope, error) {
	return s.client.Request(ctx, http.MethodPost, "/cart/add.php", cartAddRequest{
		ProductID: productID,
		Quantity:  quantity,
	}, nil)
}

// List returns the cart with embedded product snapshots.
func (s *CartService) List(ctx context.Context) ([]models.CartItem, error) {
	env, err := s.client.Request(ctx, http.MethodGet, "/cart/list.php", nil, nil)
	if err != nil {
		return nil, err
	}

	var list models.CartList
	if err := env.DecodeData(&list); err != nil {
		return nil, err
	}
	return list.Items, nil
}

// Update replaces an item's quantity. Semantics of quantity <= 0 are the
// backend's call; nothing is validated client-side.
func (s *CartService) Update(ctx context.Context, itemID string, quantity int) (*Envelope, error) {
	return s.client.Request(ctx, http.MethodPost, "/cart/update.php", cartUpdateRequest{
		ItemID:   itemID,
		Quantity: quantity,
	}, nil)
}

// Remove deletes an item from the cart.
func (s *CartService) Remove(ctx context.Context, itemID string) (*Envelope, error) {
	return s.client.Request(ctx, http.MethodPost, "/cart/remove.php", cartRemoveRequest{
		ItemID: itemID,
	}, nil)
}
