package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopctl/internal/api"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }

const emptyProductList = `{"success":true,"data":{"products":[],"pagination":{"total":0,"limit":20,"offset":0}}}`

func TestProductFiltersQueryEncoding(t *testing.T) {
	tests := []struct {
		name      string
		filters   *api.ProductFilters
		wantQuery string
	}{
		{
			name:      "nil filters produce no query string",
			filters:   nil,
			wantQuery: "",
		},
		{
			name:      "featured true encodes as literal 1 and omits the rest",
			filters:   &api.ProductFilters{Featured: boolPtr(true)},
			wantQuery: "featured=1",
		},
		{
			name:      "featured false encodes as literal 0",
			filters:   &api.ProductFilters{Featured: boolPtr(false)},
			wantQuery: "featured=0",
		},
		{
			name:      "limit and offset keep insertion order",
			filters:   &api.ProductFilters{Limit: intPtr(10), Offset: intPtr(20)},
			wantQuery: "limit=10&offset=20",
		},
		{
			name: "all filters in fixed order",
			filters: &api.ProductFilters{
				Category: "kitchen",
				Featured: boolPtr(true),
				Search:   "pour over",
				Limit:    intPtr(5),
				Offset:   intPtr(0),
			},
			wantQuery: "category=kitchen&featured=1&search=pour+over&limit=5&offset=0",
		},
		{
			name:      "zero offset still encodes when explicitly set",
			filters:   &api.ProductFilters{Offset: intPtr(0)},
			wantQuery: "offset=0",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var gotPath, gotQuery string
			client := newTestClient(t, &fakeSession{}, func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotQuery = r.URL.RawQuery
				w.Write([]byte(emptyProductList))
			})

			_, err := client.Products.List(context.Background(), test.filters)
			require.NoError(t, err)
			assert.Equal(t, "/products/list.php", gotPath)
			assert.Equal(t, test.wantQuery, gotQuery)
		})
	}
}

func TestProductsListDecodesPayload(t *testing.T) {
	client := newTestClient(t, &fakeSession{}, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{
			"products":[{"id":"prod-1","name":"Walnut Desk Organizer","slug":"walnut-desk-organizer","price":34.9,"stock_quantity":42,"is_featured":true,"created_at":"2025-01-01 10:00:00","updated_at":"2025-01-01 10:00:00"}],
			"pagination":{"total":17,"limit":1,"offset":0}}}`))
	})

	list, err := client.Products.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, list.Products, 1)
	assert.Equal(t, "walnut-desk-organizer", list.Products[0].Slug)
	assert.True(t, list.Products[0].IsFeatured)
	assert.Equal(t, 17, list.Pagination.Total)
}

func TestProductsGetBySlug(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, &fakeSession{}, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"success":true,"data":{"id":"prod-2","name":"Ceramic Pour-Over Set","slug":"ceramic-pour-over-set","price":48,"stock_quantity":15,"created_at":"","updated_at":""}}`))
	})

	p, err := client.Products.GetBySlug(context.Background(), "ceramic pour-over set")
	require.NoError(t, err)
	assert.Equal(t, "slug=ceramic+pour-over+set", gotQuery)
	assert.Equal(t, "prod-2", p.ID)
}

func TestProductsGetBySlugNotFound(t *testing.T) {
	client := newTestClient(t, &fakeSession{}, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"message":"Product not found"}`))
	})

	_, err := client.Products.GetBySlug(context.Background(), "nope")
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Product not found", apiErr.Message)
}
