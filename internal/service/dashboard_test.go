package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"cyltrack-rest-api/internal/cache"
	"cyltrack-rest-api/internal/model"
	"cyltrack-rest-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock repositories

type mockUserRepo struct {
	users map[string]*model.User
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

type mockInventoryRepo struct {
	inv      *model.Inventory
	getCalls int
	err      error
}

func (m *mockInventoryRepo) Get(ctx context.Context) (*model.Inventory, error) {
	m.getCalls++
	if m.err != nil {
		return nil, m.err
	}
	if m.inv == nil {
		return nil, repository.ErrNotFound
	}
	return m.inv, nil
}

func (m *mockInventoryRepo) AddEntry(ctx context.Context, entry model.InventoryEntry) error {
	if m.inv == nil {
		m.inv = &model.Inventory{}
	}
	m.inv.CurrentStock += entry.Quantity
	m.inv.History = append(m.inv.History, entry)
	return nil
}

func (m *mockInventoryRepo) Close() error { return nil }

type mockOutletRepo struct {
	outlets map[string]*model.Outlet
	total   int64
}

func (m *mockOutletRepo) GetByID(ctx context.Context, id string) (*model.Outlet, error) {
	if o, ok := m.outlets[id]; ok {
		return o, nil
	}
	return nil, repository.ErrNotFound
}

func (m *mockOutletRepo) Count(ctx context.Context) (int64, error) {
	return m.total, nil
}

type mockRequestRepo struct {
	total            int64
	byUser           map[string]int64
	byOutlet         map[string]int64
	countCalls       int
	lastOutletFilter string
}

func (m *mockRequestRepo) Count(ctx context.Context) (int64, error) {
	m.countCalls++
	return m.total, nil
}

func (m *mockRequestRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	m.countCalls++
	return m.byUser[userID], nil
}

func (m *mockRequestRepo) CountByOutlet(ctx context.Context, outletID string) (int64, error) {
	m.countCalls++
	m.lastOutletFilter = outletID
	return m.byOutlet[outletID], nil
}

type mockDeliveryRepo struct {
	total            int64
	byOutlet         map[string]int64
	lastOutletFilter string
}

func (m *mockDeliveryRepo) Count(ctx context.Context) (int64, error) {
	return m.total, nil
}

func (m *mockDeliveryRepo) CountByOutlet(ctx context.Context, outletID string) (int64, error) {
	m.lastOutletFilter = outletID
	return m.byOutlet[outletID], nil
}

type fixture struct {
	users      *mockUserRepo
	inventory  *mockInventoryRepo
	outlets    *mockOutletRepo
	requests   *mockRequestRepo
	deliveries *mockDeliveryRepo
	service    *DashboardService
}

func newFixture() *fixture {
	f := &fixture{
		users: &mockUserRepo{users: map[string]*model.User{
			"dist-1":   {ID: "dist-1", Role: model.RoleDistributor},
			"mgr-1":    {ID: "mgr-1", Role: model.RoleOutletManager, Outlet: "outlet-1"},
			"mgr-lost": {ID: "mgr-lost", Role: model.RoleOutletManager, Outlet: "outlet-gone"},
			"mgr-none": {ID: "mgr-none", Role: model.RoleOutletManager},
			"cust-1":   {ID: "cust-1", Role: model.RoleCustomer},
			"biz-1":    {ID: "biz-1", Role: model.RoleBusiness},
			"odd-1":    {ID: "odd-1", Role: model.Role("SUPPLIER")},
		}},
		inventory: &mockInventoryRepo{inv: &model.Inventory{CurrentStock: 120}},
		outlets: &mockOutletRepo{
			outlets: map[string]*model.Outlet{"outlet-1": {ID: "outlet-1", CurrentStock: 35}},
			total:   4,
		},
		requests: &mockRequestRepo{
			total:    9,
			byUser:   map[string]int64{"cust-1": 3, "biz-1": 5},
			byOutlet: map[string]int64{"mgr-1": 2},
		},
		deliveries: &mockDeliveryRepo{
			total:    7,
			byOutlet: map[string]int64{"mgr-1": 6},
		},
	}
	f.service = NewDashboardService(f.users, f.inventory, f.outlets, f.requests, f.deliveries)
	return f
}

func summaryKeys(s model.DashboardSummary) []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	return keys
}

func TestGetDashboard_Distributor(t *testing.T) {
	f := newFixture()

	summary, err := f.service.GetDashboard(context.Background(), "dist-1")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"inventory", "outlets", "requests", "deliveries"}, summaryKeys(summary))
	require.NotNil(t, summary["inventory"])
	assert.Equal(t, int64(120), *summary["inventory"])
	assert.Equal(t, int64(4), *summary["outlets"])
	assert.Equal(t, int64(9), *summary["requests"])
	assert.Equal(t, int64(7), *summary["deliveries"])
}

func TestGetDashboard_DistributorWithoutInventory(t *testing.T) {
	f := newFixture()
	f.inventory.inv = nil

	summary, err := f.service.GetDashboard(context.Background(), "dist-1")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"inventory", "outlets", "requests", "deliveries"}, summaryKeys(summary))
	assert.Nil(t, summary["inventory"])
	require.NotNil(t, summary["outlets"])
	assert.Equal(t, int64(4), *summary["outlets"])
}

func TestGetDashboard_OutletManager(t *testing.T) {
	f := newFixture()

	summary, err := f.service.GetDashboard(context.Background(), "mgr-1")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"stocks", "requests", "deliveries"}, summaryKeys(summary))
	assert.Equal(t, int64(35), *summary["stocks"])
	assert.Equal(t, int64(2), *summary["requests"])
	assert.Equal(t, int64(6), *summary["deliveries"])

	// Request/delivery counts are filtered by the manager's user id, not the
	// outlet id.
	assert.Equal(t, "mgr-1", f.requests.lastOutletFilter)
	assert.Equal(t, "mgr-1", f.deliveries.lastOutletFilter)
}

func TestGetDashboard_OutletManagerMissingOutlet(t *testing.T) {
	f := newFixture()

	_, err := f.service.GetDashboard(context.Background(), "mgr-lost")
	assert.ErrorIs(t, err, ErrOutletNotFound)

	_, err = f.service.GetDashboard(context.Background(), "mgr-none")
	assert.ErrorIs(t, err, ErrOutletNotFound)
}

func TestGetDashboard_CustomerAndBusiness(t *testing.T) {
	f := newFixture()

	summary, err := f.service.GetDashboard(context.Background(), "cust-1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"requests"}, summaryKeys(summary))
	assert.Equal(t, int64(3), *summary["requests"])

	summary, err = f.service.GetDashboard(context.Background(), "biz-1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"requests"}, summaryKeys(summary))
	assert.Equal(t, int64(5), *summary["requests"])
}

func TestGetDashboard_UnknownUser(t *testing.T) {
	f := newFixture()

	_, err := f.service.GetDashboard(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetDashboard_UnknownRole(t *testing.T) {
	f := newFixture()

	_, err := f.service.GetDashboard(context.Background(), "odd-1")
	assert.ErrorIs(t, err, ErrInvalidAccess)
}

func TestGetDashboard_Idempotent(t *testing.T) {
	f := newFixture()

	first, err := f.service.GetDashboard(context.Background(), "dist-1")
	require.NoError(t, err)
	second, err := f.service.GetDashboard(context.Background(), "dist-1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetDashboard_PropagatesRepositoryFailure(t *testing.T) {
	f := newFixture()
	f.inventory.err = errors.New("connection reset")

	_, err := f.service.GetDashboard(context.Background(), "dist-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestGetDashboard_SummaryCache(t *testing.T) {
	f := newFixture()
	memCache := cache.NewMemoryCache()
	defer memCache.Close()
	f.service.SetSummaryCache(memCache, time.Minute)

	first, err := f.service.GetDashboard(context.Background(), "cust-1")
	require.NoError(t, err)
	callsAfterFirst := f.requests.countCalls

	second, err := f.service.GetDashboard(context.Background(), "cust-1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, callsAfterFirst, f.requests.countCalls, "second call should be served from cache")
}
