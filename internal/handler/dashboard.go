package handler

import (
	"errors"
	"net/http"

	"cyltrack-rest-api/internal/middleware"
	"cyltrack-rest-api/internal/service"
	"cyltrack-rest-api/pkg/apierror"
	"cyltrack-rest-api/pkg/response"
)

// DashboardHandler handles the role-based dashboard endpoint.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetDashboard handles GET /api/v1/dashboard
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		response.Error(w, apierror.Unauthorized(""))
		return
	}

	summary, err := h.dashboardService.GetDashboard(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.Error(w, apierror.BadRequest("User not found"))
		case errors.Is(err, service.ErrOutletNotFound):
			response.Error(w, apierror.BadRequest("Outlet not found"))
		case errors.Is(err, service.ErrInvalidAccess):
			response.Error(w, apierror.BadRequest("Invalid user access"))
		default:
			response.Error(w, apierror.InternalError(err.Error()))
		}
		return
	}

	response.OK(w, summary)
}
