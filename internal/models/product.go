package models

// Product is the catalog record as the backend serves it. Timestamps stay
// strings because the backend emits MySQL datetime format, not RFC 3339.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	Description   *string  `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"original_price"`
	ImageURL      *string  `json:"image_url"`
	CategoryID    *string  `json:"category_id"`
	CategoryName  string   `json:"category_name,omitempty"`
	CategorySlug  string   `json:"category_slug,omitempty"`
	StockQuantity int      `json:"stock_quantity"`
	IsFeatured    bool     `json:"is_featured"`
	Rating        *float64 `json:"rating"`
	ReviewCount   *int     `json:"review_count"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

// Pagination accompanies every product listing.
type Pagination struct {
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ProductList is the data field of /products/list.php responses.
type ProductList struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}
