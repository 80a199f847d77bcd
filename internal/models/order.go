package models

// Order is created server-side from a snapshot of the user's cart.
// The client never mutates one after creation; status fields move
// server-side only.
type Order struct {
	ID                 string      `json:"id"`
	UserID             string      `json:"user_id"`
	OrderNumber        string      `json:"order_number"`
	Status             string      `json:"status"`
	Subtotal           float64     `json:"subtotal"`
	Tax                float64     `json:"tax"`
	Shipping           float64     `json:"shipping"`
	Total              float64     `json:"total"`
	ShippingName       string      `json:"shipping_name"`
	ShippingAddress    string      `json:"shipping_address"`
	ShippingCity       string      `json:"shipping_city"`
	ShippingPostalCode string      `json:"shipping_postal_code"`
	ShippingCountry    string      `json:"shipping_country"`
	PaymentMethod      string      `json:"payment_method"`
	PaymentStatus      string      `json:"payment_status"`
	Notes              *string     `json:"notes"`
	CreatedAt          string      `json:"created_at"`
	UpdatedAt          string      `json:"updated_at"`
	Items              []OrderItem `json:"items,omitempty"`
}

// OrderItem carries the product name and price as they were at checkout,
// so later catalog edits don't rewrite order history.
type OrderItem struct {
	ID           string  `json:"id"`
	OrderID      string  `json:"order_id"`
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductPrice float64 `json:"product_price"`
	Quantity     int     `json:"quantity"`
	Subtotal     float64 `json:"subtotal"`
}

// OrderList is the data field of /orders/list.php responses.
type OrderList struct {
	Orders []Order `json:"orders"`
}

const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)
