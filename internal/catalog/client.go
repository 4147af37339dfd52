// Package catalog is the HTTP client for the external
// catalog/inventory/order/auth service. It owns request construction,
// response decoding, and the mapping from transport failures to domain
// errors; rendering decisions (e.g. degrading to an empty list) stay with
// the caller.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/stridewear/stride/internal/domain"
)

const defaultTimeout = 15 * time.Second

// Client talks to the catalog service at a configurable base URL.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger attaches a logger for request failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a catalog client. baseURL should include any path prefix the
// service is mounted under, e.g. "http://localhost:4003/api".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListProducts fetches the full catalog snapshot. The service responds with
// either a bare array or an object-wrapped {products: [...]}; both decode to
// a plain slice.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "catalog.list_products"

	body, err := c.do(ctx, op, http.MethodGet, "/products", nil, "")
	if err != nil {
		return nil, err
	}

	products, err := decodeProductList(body)
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to decode product list")
	}
	return products, nil
}

// GetProduct fetches a single product by ID.
func (c *Client) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	const op = "catalog.get_product"

	body, err := c.do(ctx, op, http.MethodGet, "/products/"+id, nil, "")
	if err != nil {
		if domain.IsCode(err, domain.EREJECTED) {
			return nil, domain.NotFound(op, "product", id)
		}
		return nil, err
	}

	var p domain.Product
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to decode product")
	}
	return &p, nil
}

// CreateProduct creates a new catalog product.
func (c *Client) CreateProduct(ctx context.Context, input domain.ProductInput) (*domain.Product, error) {
	const op = "catalog.create_product"

	body, err := c.do(ctx, op, http.MethodPost, "/products", input, "")
	if err != nil {
		return nil, err
	}

	var p domain.Product
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to decode created product")
	}
	return &p, nil
}

// UpdateProduct replaces a product's writable fields.
func (c *Client) UpdateProduct(ctx context.Context, id string, input domain.ProductInput) (*domain.Product, error) {
	const op = "catalog.update_product"

	body, err := c.do(ctx, op, http.MethodPut, "/products/"+id, input, "")
	if err != nil {
		return nil, err
	}

	var p domain.Product
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to decode updated product")
	}
	return &p, nil
}

// DeleteProduct removes a product from the catalog.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	const op = "catalog.delete_product"

	_, err := c.do(ctx, op, http.MethodDelete, "/products/"+id, nil, "")
	return err
}

// ListInventory fetches the variant/stock records for one product.
func (c *Client) ListInventory(ctx context.Context, productID string) ([]domain.InventoryRecord, error) {
	const op = "catalog.list_inventory"

	body, err := c.do(ctx, op, http.MethodGet, "/inventory/"+productID, nil, "")
	if err != nil {
		return nil, err
	}

	var records []domain.InventoryRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to decode inventory")
	}
	return records, nil
}

// CreateInventory creates a variant/stock record. The bearer token is
// optional; the service accepts unauthenticated creates.
func (c *Client) CreateInventory(ctx context.Context, input domain.InventoryInput, token string) (*domain.InventoryRecord, error) {
	const op = "catalog.create_inventory"

	body, err := c.do(ctx, op, http.MethodPost, "/inventory", input, token)
	if err != nil {
		return nil, err
	}

	var rec domain.InventoryRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to decode inventory record")
	}
	return &rec, nil
}

// UpdateInventoryStock sets the stock count of an existing inventory record.
func (c *Client) UpdateInventoryStock(ctx context.Context, id string, stock int, token string) (*domain.InventoryRecord, error) {
	const op = "catalog.update_inventory_stock"

	payload := map[string]int{"stock": stock}
	body, err := c.do(ctx, op, http.MethodPut, "/inventory/"+id, payload, token)
	if err != nil {
		return nil, err
	}

	var rec domain.InventoryRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to decode inventory record")
	}
	return &rec, nil
}

// Login authenticates against the auth endpoint and returns the session
// credential the service issued.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	const op = "auth.login"

	payload := map[string]string{"email": email, "password": password}
	body, err := c.do(ctx, op, http.MethodPost, "/auth/login", payload, "")
	if err != nil {
		// Any refusal from the auth endpoint reads as bad credentials,
		// surfacing the service's message when it provided one.
		var derr *domain.Error
		if errors.As(err, &derr) && derr.Code == domain.EREJECTED {
			msg := derr.Message
			if msg == "" {
				msg = domain.ErrInvalidCredentials.Message
			}
			return nil, domain.Unauthorized(op, msg)
		}
		return nil, err
	}

	var sess domain.Session
	if err := json.Unmarshal(body, &sess); err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to decode login response")
	}
	return &sess, nil
}

// PlaceOrder submits the full line-item sequence as one order-creation
// request carrying the bearer token. A non-success response surfaces the
// service's message, falling back to a generic one.
func (c *Client) PlaceOrder(ctx context.Context, cart domain.Cart, token string) (*domain.OrderConfirmation, error) {
	const op = "orders.place_order"

	payload := domain.OrderRequest{Items: cart}
	body, err := c.do(ctx, op, http.MethodPost, "/orders", payload, token)
	if err != nil {
		var derr *domain.Error
		if errors.As(err, &derr) && derr.Code == domain.EREJECTED && derr.Message == "" {
			return nil, domain.Rejected(op, "Failed to place order")
		}
		return nil, err
	}

	var conf domain.OrderConfirmation
	if err := json.Unmarshal(body, &conf); err != nil {
		// The confirmation body is informational; an undecodable one does
		// not un-place the order.
		return &domain.OrderConfirmation{}, nil
	}
	return &conf, nil
}

// do issues one request and returns the raw response body. Transport
// failures map to EUNAVAILABLE, non-2xx responses to EREJECTED carrying the
// service-provided message when present.
func (c *Client) do(ctx context.Context, op, method, path string, payload interface{}, token string) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, domain.Internal(err, op, "failed to encode request")
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to build request")
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("catalog request failed", "op", op, "error", err)
		return nil, domain.Unavailable(err, op, "catalog service unreachable")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to read response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := serviceMessage(body)
		c.logger.Warn("catalog request rejected", "op", op, "status", resp.StatusCode, "message", msg)
		return nil, &domain.Error{Code: domain.EREJECTED, Op: fmt.Sprintf("%s [%d]", op, resp.StatusCode), Message: msg}
	}

	return body, nil
}

// serviceMessage extracts the {"message": "..."} field the service attaches
// to error responses. Returns empty string when there is none.
func serviceMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	return envelope.Message
}
