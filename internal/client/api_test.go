package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *int) {
	t.Helper()

	createCalls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/inventory", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Token") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"code": "UNAUTHORIZED", "message": "Authentication required"})
			return
		}
		json.NewEncoder(w).Encode(InventorySnapshot{
			CurrentStock: 30,
			History:      []Entry{{Quantity: 30}},
		})
	})
	mux.HandleFunc("POST /api/v1/inventory", func(w http.ResponseWriter, r *http.Request) {
		createCalls++
		var req createInventoryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Quantity <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"code": "VALIDATION_ERROR", "message": "quantity must be a positive number"})
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"message": "Inventory has been updated successfully"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &createCalls
}

func TestClient_FetchInventory(t *testing.T) {
	srv, _ := newTestServer(t)
	c := New(srv.URL, "cyl_test")

	snapshot, err := c.FetchInventory(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(30), snapshot.CurrentStock)
	require.Len(t, snapshot.History, 1)
}

func TestClient_CreateInventory(t *testing.T) {
	srv, createCalls := newTestServer(t)
	c := New(srv.URL, "cyl_test")

	message, err := c.CreateInventory(context.Background(), 10, "2024-01-01")
	require.NoError(t, err)

	assert.Equal(t, "Inventory has been updated successfully", message)
	assert.Equal(t, 1, *createCalls)
}

func TestClient_CreateInventoryError(t *testing.T) {
	srv, _ := newTestServer(t)
	c := New(srv.URL, "cyl_test")

	_, err := c.CreateInventory(context.Background(), 0, "2024-01-01")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "quantity must be a positive number", apiErr.Message)
}

func TestClient_FetchInventoryUnauthorized(t *testing.T) {
	srv, _ := newTestServer(t)
	c := New(srv.URL, "")

	_, err := c.FetchInventory(context.Background())
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}
