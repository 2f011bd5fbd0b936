package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"cyltrack-rest-api/internal/service"
	"cyltrack-rest-api/pkg/apierror"
	"cyltrack-rest-api/pkg/response"
)

// dateLayout is the calendar date format used by the inventory form.
const dateLayout = "2006-01-02"

// InventoryHandler handles inventory-related HTTP requests.
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
	}
}

// GetInventory handles GET /api/v1/inventory
func (h *InventoryHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	inv, err := h.inventoryService.GetInventory(r.Context())
	if err != nil {
		response.Error(w, apierror.InternalError(err.Error()))
		return
	}

	response.OK(w, inv)
}

// CreateInventoryRequest represents the request body for a stock addition.
type CreateInventoryRequest struct {
	Quantity  int64  `json:"quantity"`
	DateAdded string `json:"dateAdded"`
}

// CreateInventoryResponse acknowledges a stock addition.
type CreateInventoryResponse struct {
	Message string `json:"message"`
}

// CreateInventory handles POST /api/v1/inventory
func (h *InventoryHandler) CreateInventory(w http.ResponseWriter, r *http.Request) {
	var req CreateInventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apierror.BadRequest("invalid request body"))
		return
	}
	defer r.Body.Close()

	if req.DateAdded == "" {
		response.Error(w, apierror.ValidationError("dateAdded is required"))
		return
	}
	dateAdded, err := time.Parse(dateLayout, req.DateAdded)
	if err != nil {
		response.Error(w, apierror.ValidationError("dateAdded must be a calendar date (YYYY-MM-DD)"))
		return
	}

	err = h.inventoryService.AddStock(r.Context(), req.Quantity, dateAdded)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidQuantity), errors.Is(err, service.ErrInvalidDate):
			response.Error(w, apierror.ValidationError(err.Error()))
		default:
			response.Error(w, apierror.InternalError(err.Error()))
		}
		return
	}

	response.Created(w, CreateInventoryResponse{
		Message: "Inventory has been updated successfully",
	})
}
