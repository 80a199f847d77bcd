package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"shopctl/internal/models"
)

// ProductService reads the catalog. Products are read-only from this side;
// the backend is authoritative.
type ProductService struct {
	client *Client
}

// ProductFilters narrows a catalog listing. Zero-valued fields are omitted
// from the query string entirely.
type ProductFilters struct {
	Category string
	Featured *bool
	Search   string
	Limit    *int
	Offset   *int
}

// encode renders the query string by hand in fixed field order;
// url.Values.Encode would reorder keys alphabetically, and the wire contract
// wants insertion order. Featured encodes as the literal "1"/"0".
func (f *ProductFilters) encode() string {
	if f == nil {
		return ""
	}

	var parts []string
	add := func(key, value string) {
		parts = append(parts, key+"="+url.QueryEscape(value))
	}

	if f.Category != "" {
		add("category", f.Category)
	}
	if f.Featured != nil {
		if *f.Featured {
			add("featured", "1")
		} else {
			add("featured", "0")
		}
	}
	if f.Search != "" {
		add("search", f.Search)
	}
	if f.Limit != nil {
		add("limit", strconv.Itoa(*f.Limit))
	}
	if f.Offset != nil {
		add("offset", strconv.Itoa(*f.Offset))
	}

	return strings.Join(parts, "&")
}

// List fetches products matching the filters, with pagination info.
func (s *ProductService) List(ctx context.Context, filters *ProductFilters) (*models.ProductList, error) {
	path := "/products/list.php"
	if q := filters.encode(); q != "" {
		path += "?" + q
	}

	env, err := s.client.Request(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var list models.ProductList
	if err := env.DecodeData(&list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetBySlug fetches a single product. A missing slug surfaces as the
// backend's envelope error.
func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	path := "/products/get.php?slug=" + url.QueryEscape(slug)

	env, err := s.client.Request(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var product models.Product
	if err := env.DecodeData(&product); err != nil {
		return nil, err
	}
	return &product, nil
}
