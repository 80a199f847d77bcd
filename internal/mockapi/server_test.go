package mockapi_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopctl/internal/api"
	"shopctl/internal/mockapi"
	"shopctl/internal/session"
)

// newStack runs the mock backend under httptest and points a real client
// with an in-memory session at it.
func newStack(t *testing.T) (*api.Client, *session.Store) {
	t.Helper()

	srv := mockapi.NewServer(zerolog.Nop())
	ts := httptest.NewServer(srv.Engine())
	t.Cleanup(ts.Close)

	store := session.NewStore(session.NewMemoryKV(), zerolog.Nop())
	client := api.New(api.Config{BaseURL: ts.URL}, store)
	return client, store
}

// login registers a fresh account and persists the session the way the CLI
// does after a successful register.
func login(t *testing.T, client *api.Client, store *session.Store, email string) {
	t.Helper()
	payload, err := client.Auth.Register(context.Background(), api.RegisterInput{
		Email:    email,
		Password: "hunter22",
	})
	require.NoError(t, err)
	require.NoError(t, store.SetSession(payload.Token, payload.User))
}

func TestAuthFlow(t *testing.T) {
	client, store := newStack(t)
	ctx := context.Background()

	payload, err := client.Auth.Register(ctx, api.RegisterInput{
		Email:    "ada@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, payload.Token)
	assert.Equal(t, "ada@example.com", payload.User.Email)
	assert.Equal(t, "customer", payload.User.Role)

	// The API layer leaves the session untouched; still logged out.
	assert.False(t, store.IsAuthenticated())

	_, err = client.Auth.Register(ctx, api.RegisterInput{Email: "ada@example.com", Password: "hunter22"})
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Email already registered", apiErr.Message)

	_, err = client.Auth.Login(ctx, api.LoginInput{Email: "ada@example.com", Password: "wrong"})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid email or password", apiErr.Message)

	logged, err := client.Auth.Login(ctx, api.LoginInput{Email: "ada@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.NotEqual(t, payload.Token, logged.Token, "each login issues a fresh token")
}

func TestCartRequiresAuthentication(t *testing.T) {
	client, _ := newStack(t)

	_, err := client.Cart.List(context.Background())
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Authentication required", apiErr.Message)
}

func TestCatalogFilters(t *testing.T) {
	client, _ := newStack(t)
	ctx := context.Background()
	featured := true

	list, err := client.Products.List(ctx, &api.ProductFilters{Featured: &featured})
	require.NoError(t, err)
	require.Len(t, list.Products, 2)
	for _, p := range list.Products {
		assert.True(t, p.IsFeatured)
	}

	list, err = client.Products.List(ctx, &api.ProductFilters{Category: "kitchen"})
	require.NoError(t, err)
	assert.Len(t, list.Products, 2)

	list, err = client.Products.List(ctx, &api.ProductFilters{Search: "walnut"})
	require.NoError(t, err)
	require.Len(t, list.Products, 1)
	assert.Equal(t, "walnut-desk-organizer", list.Products[0].Slug)

	limit, offset := 2, 0
	list, err = client.Products.List(ctx, &api.ProductFilters{Limit: &limit, Offset: &offset})
	require.NoError(t, err)
	assert.Len(t, list.Products, 2)
	assert.Equal(t, 5, list.Pagination.Total)
	assert.Equal(t, 2, list.Pagination.Limit)

	product, err := client.Products.GetBySlug(ctx, "linen-apron")
	require.NoError(t, err)
	assert.Equal(t, "prod-3", product.ID)

	_, err = client.Products.GetBySlug(ctx, "does-not-exist")
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Product not found", apiErr.Message)
}

func TestCartAccumulatesAndUpdates(t *testing.T) {
	client, store := newStack(t)
	ctx := context.Background()
	login(t, client, store, "cart@example.com")

	env, err := client.Cart.Add(ctx, "prod-1", 2)
	require.NoError(t, err)
	assert.Equal(t, "Added", env.Message)

	// Same product again: quantity accumulates server-side.
	_, err = client.Cart.Add(ctx, "prod-1", 1)
	require.NoError(t, err)

	items, err := client.Cart.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	require.NotNil(t, items[0].Product)
	assert.Equal(t, "Walnut Desk Organizer", items[0].Product.Name)

	_, err = client.Cart.Update(ctx, items[0].ID, 2)
	require.NoError(t, err)
	items, err = client.Cart.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, items[0].Quantity)

	_, err = client.Cart.Remove(ctx, items[0].ID)
	require.NoError(t, err)
	items, err = client.Cart.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = client.Cart.Add(ctx, "prod-404", 1)
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Product not found", apiErr.Message)
}

func TestOrderLifecycle(t *testing.T) {
	client, store := newStack(t)
	ctx := context.Background()
	login(t, client, store, "orders@example.com")

	input := api.CreateOrderInput{
		ShippingName:       "Ada L",
		ShippingAddress:    "1 Analytical Way",
		ShippingCity:       "London",
		ShippingPostalCode: "N1 9GU",
		ShippingCountry:    "UK",
		PaymentMethod:      "card",
	}

	// Empty cart: the backend refuses with the exact message the
	// checkout screen matches on.
	_, err := client.Orders.Create(ctx, input)
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Cart is empty", apiErr.Message)

	// One pour-over set at 48.00: under the free-shipping bar.
	_, err = client.Cart.Add(ctx, "prod-2", 1)
	require.NoError(t, err)

	order, err := client.Orders.Create(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "pending", order.Status)
	assert.InDelta(t, 48.00, order.Subtotal, 0.001)
	assert.InDelta(t, 3.84, order.Tax, 0.001)
	assert.InDelta(t, 5.00, order.Shipping, 0.001)
	assert.InDelta(t, 56.84, order.Total, 0.001)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Ceramic Pour-Over Set", order.Items[0].ProductName)

	// The order snapshot consumed the cart.
	items, err := client.Cart.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = client.Orders.Create(ctx, input)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Cart is empty", apiErr.Message)

	orders, err := client.Orders.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	got, err := client.Orders.Get(ctx, orders[0].ID)
	require.NoError(t, err)
	assert.Equal(t, order.OrderNumber, got.OrderNumber)
	require.Len(t, got.Items, 1)

	_, err = client.Orders.Get(ctx, "order-404")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Order not found", apiErr.Message)
}

func TestFreeShippingOverThreshold(t *testing.T) {
	client, store := newStack(t)
	ctx := context.Background()
	login(t, client, store, "shipping@example.com")

	// Three organizers at 34.90 clear the 50.00 free-shipping bar.
	_, err := client.Cart.Add(ctx, "prod-1", 3)
	require.NoError(t, err)

	order, err := client.Orders.Create(ctx, api.CreateOrderInput{
		ShippingName:       "Ada L",
		ShippingAddress:    "1 Analytical Way",
		ShippingCity:       "London",
		ShippingPostalCode: "N1 9GU",
		ShippingCountry:    "UK",
		PaymentMethod:      "card",
	})
	require.NoError(t, err)
	assert.InDelta(t, 104.70, order.Subtotal, 0.001)
	assert.Zero(t, order.Shipping)
	assert.InDelta(t, 8.38, order.Tax, 0.001)
	assert.InDelta(t, 113.08, order.Total, 0.001)
}

func TestHealthEndpoint(t *testing.T) {
	client, _ := newStack(t)

	env, err := client.Request(context.Background(), "GET", "/health.php", nil, nil)
	require.NoError(t, err)

	var health struct {
		Status  string `json:"status"`
		Service string `json:"service"`
	}
	require.NoError(t, env.DecodeData(&health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "shopctl-mock", health.Service)
}
