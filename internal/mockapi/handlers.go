package mockapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shopctl/internal/models"
)

type registerInput struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6"`
	FullName *string `json:"full_name"`
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type cartAddInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type cartUpdateInput struct {
	ItemID   string `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity"`
}

type cartRemoveInput struct {
	ItemID string `json:"item_id" binding:"required"`
}

type orderInput struct {
	ShippingName       string  `json:"shipping_name" binding:"required"`
	ShippingAddress    string  `json:"shipping_address" binding:"required"`
	ShippingCity       string  `json:"shipping_city" binding:"required"`
	ShippingPostalCode string  `json:"shipping_postal_code" binding:"required"`
	ShippingCountry    string  `json:"shipping_country" binding:"required"`
	PaymentMethod      string  `json:"payment_method" binding:"required"`
	Notes              *string `json:"notes"`
}

func (s *Server) register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid registration data")
		return
	}

	user, token, created := s.store.register(input.Email, input.Password, input.FullName)
	if !created {
		fail(c, http.StatusConflict, "Email already registered")
		return
	}

	ok(c, "Registered", gin.H{"user": user, "token": token})
}

func (s *Server) login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, token, authed := s.store.login(input.Email, input.Password)
	if !authed {
		fail(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	ok(c, "Logged in", gin.H{"user": user, "token": token})
}

func (s *Server) listProducts(c *gin.Context) {
	category := c.Query("category")
	search := c.Query("search")

	var featured *bool
	if raw := c.Query("featured"); raw != "" {
		f := raw == "1" || raw == "true"
		featured = &f
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	offset := 0
	if raw := c.Query("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			offset = n
		}
	}

	products, total := s.store.listProducts(category, search, featured, limit, offset)
	if products == nil {
		products = []models.Product{}
	}

	ok(c, "", gin.H{
		"products": products,
		"pagination": models.Pagination{
			Total:  total,
			Limit:  limit,
			Offset: offset,
		},
	})
}

func (s *Server) getProduct(c *gin.Context) {
	slug := c.Query("slug")
	product, found := s.store.productBySlug(slug)
	if !found {
		fail(c, http.StatusNotFound, "Product not found")
		return
	}
	ok(c, "", product)
}

func (s *Server) cartAdd(c *gin.Context) {
	var input cartAddInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Product id is required")
		return
	}

	if _, found := s.store.productByID(input.ProductID); !found {
		fail(c, http.StatusNotFound, "Product not found")
		return
	}

	item := s.store.addToCart(c.GetString("userID"), input.ProductID, input.Quantity)
	ok(c, "Added", item)
}

func (s *Server) cartList(c *gin.Context) {
	items := s.store.cartItems(c.GetString("userID"))
	ok(c, "", gin.H{"items": items})
}

func (s *Server) cartUpdate(c *gin.Context) {
	var input cartUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Item id is required")
		return
	}

	if !s.store.updateCartItem(c.GetString("userID"), input.ItemID, input.Quantity) {
		fail(c, http.StatusNotFound, "Cart item not found")
		return
	}
	ok(c, "Updated", nil)
}

func (s *Server) cartRemove(c *gin.Context) {
	var input cartRemoveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Item id is required")
		return
	}

	if !s.store.removeCartItem(c.GetString("userID"), input.ItemID) {
		fail(c, http.StatusNotFound, "Cart item not found")
		return
	}
	ok(c, "Removed", nil)
}

func (s *Server) orderCreate(c *gin.Context) {
	var input orderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Shipping and payment details are required")
		return
	}

	order, created := s.store.createOrder(c.GetString("userID"), input)
	if !created {
		fail(c, http.StatusBadRequest, "Cart is empty")
		return
	}
	ok(c, "Order created", order)
}

func (s *Server) orderList(c *gin.Context) {
	orders := s.store.listOrders(c.GetString("userID"))
	ok(c, "", gin.H{"orders": orders})
}

func (s *Server) orderGet(c *gin.Context) {
	order, found := s.store.orderByID(c.GetString("userID"), c.Query("id"))
	if !found {
		fail(c, http.StatusNotFound, "Order not found")
		return
	}
	ok(c, "", order)
}
