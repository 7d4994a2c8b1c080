package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/api"
	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/order"
)

// OrderAPI calls the ordering service over HTTP. It is the concrete
// OrderSource behind the board poller; the board only sees interfaces.
type OrderAPI struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *OrderAPI {
	return &OrderAPI{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Orders fetches the full order list. Failures are wrapped as
// StoreUnavailable so callers treat them as transient.
func (c *OrderAPI) Orders(ctx context.Context) ([]order.Order, error) {
	var envelope struct {
		Status  int           `json:"status"`
		Message string        `json:"message"`
		Data    []order.Order `json:"data"`
	}

	if err := c.do(ctx, http.MethodGet, "/api/orders", nil, &envelope); err != nil {
		return nil, err
	}

	return envelope.Data, nil
}

// CreateOrder submits a cart for the given user, returning the new
// order's id.
func (c *OrderAPI) CreateOrder(ctx context.Context, cart []order.CartItem, user order.User) (uuid.UUID, error) {
	if len(cart) == 0 || user.Username == "" {
		return uuid.Nil, fmt.Errorf("cart and user are required: %w", api.ErrInvalidInput)
	}

	body := map[string]interface{}{"cart": cart, "user": user}

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			ID uuid.UUID `json:"id"`
		} `json:"data"`
	}

	if err := c.do(ctx, http.MethodPost, "/api/orders", body, &envelope); err != nil {
		return uuid.Nil, err
	}
	if !envelope.Success {
		return uuid.Nil, fmt.Errorf("order was not created")
	}

	return envelope.Data.ID, nil
}

// UpdateOrderReadiness sets the order-level readiness flag. The result
// reports success; a transport or store failure returns false, not an
// error, matching the fire-and-forget use from the boards.
func (c *OrderAPI) UpdateOrderReadiness(ctx context.Context, orderID uuid.UUID, isReady bool) bool {
	if orderID == uuid.Nil {
		return false
	}

	body := map[string]interface{}{"docId": orderID.String(), "isReady": isReady}

	var envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}

	if err := c.do(ctx, http.MethodPut, "/api/orders", body, &envelope); err != nil {
		return false
	}
	return envelope.Success
}

// UpdateItemStatus patches one item's status on the server.
func (c *OrderAPI) UpdateItemStatus(ctx context.Context, orderID, itemID uuid.UUID, status string) error {
	if orderID == uuid.Nil || itemID == uuid.Nil {
		return fmt.Errorf("order id and item id are required: %w", api.ErrInvalidInput)
	}

	path := fmt.Sprintf("/api/orders/%s/items/%s", orderID, itemID)
	body := map[string]string{"status": status}

	var envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}

	return c.do(ctx, http.MethodPatch, path, body, &envelope)
}

func (c *OrderAPI) do(ctx context.Context, method, path string, body, target interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("cannot encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("cannot build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %v: %w", err, api.ErrStoreUnavailable)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("cannot read response: %v: %w", err, api.ErrStoreUnavailable)
	}

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("%s: %w", errorMessage(raw), api.ErrInvalidInput)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", errorMessage(raw), api.ErrNotFound)
	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%s: %w", errorMessage(raw), api.ErrConflict)
	case resp.StatusCode >= 500:
		return fmt.Errorf("%s: %w", errorMessage(raw), api.ErrStoreUnavailable)
	}

	if target != nil {
		if err := json.Unmarshal(raw, target); err != nil {
			return fmt.Errorf("cannot decode response: %v: %w", err, api.ErrStoreUnavailable)
		}
	}

	return nil
}

func errorMessage(raw []byte) string {
	var e api.ErrorResponse
	if err := json.Unmarshal(raw, &e); err == nil && e.Message != "" {
		return e.Message
	}
	return "request rejected"
}
