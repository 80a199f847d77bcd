package models

// CartItem is one line of the authenticated user's cart. The embedded
// product snapshot is only present on list responses.
type CartItem struct {
	ID        string   `json:"id"`
	UserID    string   `json:"user_id"`
	ProductID string   `json:"product_id"`
	Quantity  int      `json:"quantity"`
	Product   *Product `json:"product,omitempty"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

// CartList is the data field of /cart/list.php responses.
type CartList struct {
	Items []CartItem `json:"items"`
}
