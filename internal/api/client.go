// Package api is the single access layer to the storefront backend. It
// attaches bearer-token authentication to every request, normalizes the
// {success, message?, data?} envelope into an error-or-data contract, and
// groups the endpoints by backend resource (auth, products, cart, orders,
// admin).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"shopctl/internal/types"
)

const defaultTimeout = 30 * time.Second

// Config configures the API client.
type Config struct {
	// BaseURL is the backend host prefix, e.g. "https://store.example.com/api".
	BaseURL string
	// Timeout bounds each request round-trip. Zero means defaultTimeout.
	Timeout time.Duration
	// RateLimit caps outbound requests per second. Zero disables throttling.
	RateLimit float64
	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient types.Doer
	// Logger receives request-level debug logging.
	Logger zerolog.Logger
}

// Client is the request executor plus its endpoint groups. The session
// store is injected so the executor can be tested with a fake.
type Client struct {
	baseURL    string
	httpClient types.Doer
	session    types.SessionStore
	limiter    *rate.Limiter
	logger     zerolog.Logger
	validate   *validator.Validate

	Auth     *AuthService
	Products *ProductService
	Cart     *CartService
	Orders   *OrderService
	Admin    *AdminService
}

// New creates an API client bound to a session store.
func New(cfg Config, store types.SessionStore) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}

	c := &Client{
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
		session:    store,
		limiter:    limiter,
		logger:     cfg.Logger,
		validate:   validator.New(),
	}

	c.Auth = &AuthService{client: c, session: store}
	c.Products = &ProductService{client: c}
	c.Cart = &CartService{client: c}
	c.Orders = &OrderService{client: c}
	c.Admin = &AdminService{client: c}

	return c
}

// Request is the single choke point for every outbound call. It builds the
// request, injects the bearer token when the session store holds one, issues
// the call, and enforces the envelope contract. Caller-supplied headers merge
// last, so they can override the defaults. There is no retry: every failure
// propagates to the caller as-is.
func (c *Client) Request(ctx context.Context, method, path string, body any, headers map[string]string) (*Envelope, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	// The token is captured once here; a logout mid-flight does not revoke
	// a request already built.
	if token := c.session.GetToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport failures stay transport errors; only envelope-level
		// failures become *Error.
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: failed to read response: %w", method, path, err)
	}

	// The backend signals failure in the envelope, not the status code, so
	// the body is parsed unconditionally.
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Bool("success", env.Success).
		Msg("api request")

	if !env.Success {
		return nil, newError(env.Message)
	}
	return &env, nil
}
