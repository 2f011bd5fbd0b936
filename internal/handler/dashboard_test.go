package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cyltrack-rest-api/internal/middleware"
	"cyltrack-rest-api/internal/model"
	"cyltrack-rest-api/internal/repository"
	"cyltrack-rest-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Slim mock repositories for handler tests.

type stubUserRepo struct {
	users map[string]*model.User
}

func (m *stubUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (m *stubUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return nil, repository.ErrNotFound
}

type stubInventoryRepo struct {
	inv *model.Inventory
	err error
}

func (m *stubInventoryRepo) Get(ctx context.Context) (*model.Inventory, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.inv == nil {
		return nil, repository.ErrNotFound
	}
	return m.inv, nil
}

func (m *stubInventoryRepo) AddEntry(ctx context.Context, entry model.InventoryEntry) error {
	if m.err != nil {
		return m.err
	}
	if m.inv == nil {
		m.inv = &model.Inventory{}
	}
	m.inv.CurrentStock += entry.Quantity
	m.inv.History = append(m.inv.History, entry)
	return nil
}

func (m *stubInventoryRepo) Close() error { return nil }

type stubOutletRepo struct{}

func (stubOutletRepo) GetByID(ctx context.Context, id string) (*model.Outlet, error) {
	return nil, repository.ErrNotFound
}

func (stubOutletRepo) Count(ctx context.Context) (int64, error) { return 2, nil }

type stubRequestRepo struct{}

func (stubRequestRepo) Count(ctx context.Context) (int64, error) { return 5, nil }
func (stubRequestRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	return 1, nil
}
func (stubRequestRepo) CountByOutlet(ctx context.Context, outletID string) (int64, error) {
	return 0, nil
}

type stubDeliveryRepo struct{}

func (stubDeliveryRepo) Count(ctx context.Context) (int64, error) { return 3, nil }
func (stubDeliveryRepo) CountByOutlet(ctx context.Context, outletID string) (int64, error) {
	return 0, nil
}

func newDashboardHandler(users map[string]*model.User, inv *stubInventoryRepo) *DashboardHandler {
	svc := service.NewDashboardService(
		&stubUserRepo{users: users},
		inv,
		stubOutletRepo{},
		stubRequestRepo{},
		stubDeliveryRepo{},
	)
	return NewDashboardHandler(svc)
}

func doDashboardRequest(h *DashboardHandler, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	if userID != "" {
		ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
		req = req.WithContext(ctx)
	}

	rec := httptest.NewRecorder()
	h.GetDashboard(rec, req)
	return rec
}

func TestGetDashboard_DistributorResponse(t *testing.T) {
	h := newDashboardHandler(
		map[string]*model.User{"dist-1": {ID: "dist-1", Role: model.RoleDistributor}},
		&stubInventoryRepo{inv: &model.Inventory{CurrentStock: 77}},
	)

	rec := doDashboardRequest(h, "dist-1")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]*int64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	require.Len(t, body, 4)
	require.NotNil(t, body["inventory"])
	assert.Equal(t, int64(77), *body["inventory"])
	assert.Equal(t, int64(2), *body["outlets"])
	assert.Equal(t, int64(5), *body["requests"])
	assert.Equal(t, int64(3), *body["deliveries"])
}

func TestGetDashboard_MissingUser(t *testing.T) {
	h := newDashboardHandler(map[string]*model.User{}, &stubInventoryRepo{})

	rec := doDashboardRequest(h, "ghost")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "User not found", body["message"])
}

func TestGetDashboard_UnknownRole(t *testing.T) {
	h := newDashboardHandler(
		map[string]*model.User{"odd-1": {ID: "odd-1", Role: model.Role("SUPPLIER")}},
		&stubInventoryRepo{},
	)

	rec := doDashboardRequest(h, "odd-1")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid user access", body["message"])
}

func TestGetDashboard_NoIdentity(t *testing.T) {
	h := newDashboardHandler(map[string]*model.User{}, &stubInventoryRepo{})

	rec := doDashboardRequest(h, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetDashboard_RepositoryFailure(t *testing.T) {
	h := newDashboardHandler(
		map[string]*model.User{"dist-1": {ID: "dist-1", Role: model.RoleDistributor}},
		&stubInventoryRepo{err: errors.New("connection reset")},
	)

	rec := doDashboardRequest(h, "dist-1")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["message"], "connection reset")
}
