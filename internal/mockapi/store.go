package mockapi

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"shopctl/internal/models"
)

// account pairs the public user record with its mock credential.
type account struct {
	user     models.UserSummary
	password string
}

// memStore holds all mock backend state in memory. It exists so the CLI and
// the integration tests can run against a faithful backend without a
// database.
type memStore struct {
	mu       sync.Mutex
	users    map[string]*account // keyed by email
	tokens   map[string]string   // token -> user id
	products []models.Product
	carts    map[string][]*models.CartItem // keyed by user id
	orders   map[string][]*models.Order    // keyed by user id
	seq      int
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[string]*account),
		tokens:   make(map[string]string),
		products: seedProducts(),
		carts:    make(map[string][]*models.CartItem),
		orders:   make(map[string][]*models.Order),
	}
}

// nowStamp matches the MySQL datetime format the real backend emits.
func nowStamp() string {
	return time.Now().UTC().Format("2006-01-02 15:04:05")
}

func (s *memStore) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%d", prefix, s.seq)
}

// register creates a user and issues a fresh token. Returns false when the
// email is taken.
func (s *memStore) register(email, password string, fullName *string) (*models.UserSummary, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[email]; exists {
		return nil, "", false
	}

	user := models.UserSummary{
		ID:       s.nextID("user"),
		Email:    email,
		FullName: fullName,
		Role:     models.RoleCustomer,
	}
	s.users[email] = &account{user: user, password: password}

	token := uuid.NewString()
	s.tokens[token] = user.ID
	return &user, token, true
}

// login checks credentials and issues a fresh token.
func (s *memStore) login(email, password string) (*models.UserSummary, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.users[email]
	if !ok || acct.password != password {
		return nil, "", false
	}

	token := uuid.NewString()
	s.tokens[token] = acct.user.ID
	return &acct.user, token, true
}

// userByToken resolves a bearer token to a user id.
func (s *memStore) userByToken(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.tokens[token]
	return id, ok
}

// listProducts applies catalog filters and returns the page plus the
// pre-slice total.
func (s *memStore) listProducts(category, search string, featured *bool, limit, offset int) ([]models.Product, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []models.Product
	for _, p := range s.products {
		if category != "" && p.CategorySlug != category {
			continue
		}
		if featured != nil && p.IsFeatured != *featured {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		matched = append(matched, p)
	}

	total := len(matched)
	if offset >= total {
		return nil, total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total
}

func matchesSearch(p models.Product, search string) bool {
	search = strings.ToLower(search)
	if strings.Contains(strings.ToLower(p.Name), search) {
		return true
	}
	return p.Description != nil && strings.Contains(strings.ToLower(*p.Description), search)
}

func (s *memStore) productBySlug(slug string) (*models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].Slug == slug {
			p := s.products[i]
			return &p, true
		}
	}
	return nil, false
}

func (s *memStore) productByID(id string) (*models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, true
		}
	}
	return nil, false
}

// addToCart accumulates quantity when the product is already in the cart.
func (s *memStore) addToCart(userID, productID string, quantity int) *models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 1 {
		quantity = 1
	}

	for _, item := range s.carts[userID] {
		if item.ProductID == productID {
			item.Quantity += quantity
			item.UpdatedAt = nowStamp()
			return item
		}
	}

	item := &models.CartItem{
		ID:        s.nextID("cart"),
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: nowStamp(),
		UpdatedAt: nowStamp(),
	}
	s.carts[userID] = append(s.carts[userID], item)
	return item
}

// cartItems returns the user's cart with product snapshots embedded.
func (s *memStore) cartItems(userID string) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.CartItem, 0, len(s.carts[userID]))
	for _, item := range s.carts[userID] {
		copied := *item
		for i := range s.products {
			if s.products[i].ID == item.ProductID {
				p := s.products[i]
				copied.Product = &p
				break
			}
		}
		items = append(items, copied)
	}
	return items
}

// updateCartItem replaces an item's quantity; zero or less removes it.
func (s *memStore) updateCartItem(userID, itemID string, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.carts[userID] {
		if item.ID != itemID {
			continue
		}
		if quantity <= 0 {
			s.carts[userID] = append(s.carts[userID][:i], s.carts[userID][i+1:]...)
			return true
		}
		item.Quantity = quantity
		item.UpdatedAt = nowStamp()
		return true
	}
	return false
}

func (s *memStore) removeCartItem(userID, itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.carts[userID] {
		if item.ID == itemID {
			s.carts[userID] = append(s.carts[userID][:i], s.carts[userID][i+1:]...)
			return true
		}
	}
	return false
}

// createOrder snapshots the user's cart into an order and clears the cart.
// An empty cart yields no order.
func (s *memStore) createOrder(userID string, input orderInput) (*models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[userID]
	if len(cart) == 0 {
		return nil, false
	}

	orderID := s.nextID("order")
	orderNumber := fmt.Sprintf("ORD-%s-%d", time.Now().UTC().Format("20060102"), s.seq)

	var items []models.OrderItem
	var subtotal float64
	for _, line := range cart {
		var price float64
		var name string
		for i := range s.products {
			if s.products[i].ID == line.ProductID {
				price = s.products[i].Price
				name = s.products[i].Name
				break
			}
		}
		lineSubtotal := round2(price * float64(line.Quantity))
		subtotal += lineSubtotal
		items = append(items, models.OrderItem{
			ID:           s.nextID("item"),
			OrderID:      orderID,
			ProductID:    line.ProductID,
			ProductName:  name,
			ProductPrice: price,
			Quantity:     line.Quantity,
			Subtotal:     lineSubtotal,
		})
	}

	subtotal = round2(subtotal)
	tax := round2(subtotal * taxRate)
	shipping := flatShipping
	if subtotal >= freeShippingOver {
		shipping = 0
	}

	order := &models.Order{
		ID:                 orderID,
		UserID:             userID,
		OrderNumber:        orderNumber,
		Status:             models.OrderStatusPending,
		Subtotal:           subtotal,
		Tax:                tax,
		Shipping:           shipping,
		Total:              round2(subtotal + tax + shipping),
		ShippingName:       input.ShippingName,
		ShippingAddress:    input.ShippingAddress,
		ShippingCity:       input.ShippingCity,
		ShippingPostalCode: input.ShippingPostalCode,
		ShippingCountry:    input.ShippingCountry,
		PaymentMethod:      input.PaymentMethod,
		PaymentStatus:      models.PaymentStatusPending,
		Notes:              input.Notes,
		CreatedAt:          nowStamp(),
		UpdatedAt:          nowStamp(),
		Items:              items,
	}
	s.orders[userID] = append(s.orders[userID], order)
	s.carts[userID] = nil
	return order, true
}

func (s *memStore) listOrders(userID string) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]models.Order, 0, len(s.orders[userID]))
	for _, o := range s.orders[userID] {
		orders = append(orders, *o)
	}
	return orders
}

func (s *memStore) orderByID(userID, orderID string) (*models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders[userID] {
		if o.ID == orderID {
			copied := *o
			return &copied, true
		}
	}
	return nil, false
}

const (
	taxRate          = 0.08
	flatShipping     = 5.0
	freeShippingOver = 50.0
)

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}

func strPtr(s string) *string { return &s }

func seedProducts() []models.Product {
	now := nowStamp()
	return []models.Product{
		{
			ID: "prod-1", Name: "Walnut Desk Organizer", Slug: "walnut-desk-organizer",
			Description: strPtr("Five-compartment organizer milled from solid walnut."),
			Price:       34.90, CategoryID: strPtr("cat-1"), CategoryName: "Office", CategorySlug: "office",
			StockQuantity: 42, IsFeatured: true, Rating: floatPtr(4.6), ReviewCount: intPtr(18),
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "prod-2", Name: "Ceramic Pour-Over Set", Slug: "ceramic-pour-over-set",
			Description: strPtr("Dripper, carafe and two cups in matte stoneware."),
			Price:       48.00, OriginalPrice: floatPtr(59.00),
			CategoryID: strPtr("cat-2"), CategoryName: "Kitchen", CategorySlug: "kitchen",
			StockQuantity: 15, IsFeatured: true, Rating: floatPtr(4.8), ReviewCount: intPtr(31),
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "prod-3", Name: "Linen Apron", Slug: "linen-apron",
			Description: strPtr("Stonewashed linen with adjustable neck strap."),
			Price:       29.50, CategoryID: strPtr("cat-2"), CategoryName: "Kitchen", CategorySlug: "kitchen",
			StockQuantity: 60, Rating: floatPtr(4.2), ReviewCount: intPtr(7),
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "prod-4", Name: "Brass Page Holder", Slug: "brass-page-holder",
			Price:     12.00, CategoryID: strPtr("cat-1"), CategoryName: "Office", CategorySlug: "office",
			StockQuantity: 120, CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "prod-5", Name: "Wool Throw Blanket", Slug: "wool-throw-blanket",
			Description: strPtr("Lambswool, 130x180cm, herringbone weave."),
			Price:       79.00, CategoryID: strPtr("cat-3"), CategoryName: "Living", CategorySlug: "living",
			StockQuantity: 0, IsFeatured: false, Rating: floatPtr(4.9), ReviewCount: intPtr(44),
			CreatedAt: now, UpdatedAt: now,
		},
	}
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
