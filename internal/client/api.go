// Package client implements the inventory page against the CylTrack API:
// a resty-based API client plus the view state driving the stock card,
// history table and add-inventory dialog.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// APIError is an error response from the server.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("api request status: %d", e.StatusCode)
}

// Entry is one inventory history record.
type Entry struct {
	Quantity  int64     `json:"quantity"`
	DateAdded time.Time `json:"dateAdded"`
}

// InventorySnapshot is the remote inventory state.
type InventorySnapshot struct {
	CurrentStock int64   `json:"currentStock"`
	History      []Entry `json:"history"`
}

// InventoryAPI is the pair of remote operations the inventory view binds to.
type InventoryAPI interface {
	FetchInventory(ctx context.Context) (*InventorySnapshot, error)
	CreateInventory(ctx context.Context, quantity int64, dateAdded string) (string, error)
}

// Client talks to the CylTrack API with a session token.
type Client struct {
	http *resty.Client
}

// New creates an API client for the given base address and session token.
func New(baseURL, token string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("X-Token", token).
		SetTimeout(15 * time.Second)
	return &Client{http: c}
}

// FetchInventory retrieves the current stock and history.
func (c *Client) FetchInventory(ctx context.Context) (*InventorySnapshot, error) {
	var snapshot InventorySnapshot

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&snapshot).
		Get("/api/v1/inventory")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}

	return &snapshot, nil
}

type createInventoryRequest struct {
	Quantity  int64  `json:"quantity"`
	DateAdded string `json:"dateAdded"`
}

type createInventoryResponse struct {
	Message string `json:"message"`
}

// CreateInventory records a stock addition and returns the server's
// acknowledgement message.
func (c *Client) CreateInventory(ctx context.Context, quantity int64, dateAdded string) (string, error) {
	var ack createInventoryResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(createInventoryRequest{Quantity: quantity, DateAdded: dateAdded}).
		SetResult(&ack).
		Post("/api/v1/inventory")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", apiError(resp)
	}

	return ack.Message, nil
}

// GetDashboard retrieves the caller's role-specific dashboard summary.
func (c *Client) GetDashboard(ctx context.Context) (map[string]*int64, error) {
	var summary map[string]*int64

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&summary).
		Get("/api/v1/dashboard")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}

	return summary, nil
}

// apiError parses an error body into an APIError.
func apiError(resp *resty.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode()}
	if err := json.Unmarshal(resp.Body(), apiErr); err != nil {
		apiErr.Message = http.StatusText(resp.StatusCode())
	}
	return apiErr
}

// Ensure Client implements InventoryAPI
var _ InventoryAPI = (*Client)(nil)
