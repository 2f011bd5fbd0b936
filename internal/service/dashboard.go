package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"cyltrack-rest-api/internal/cache"
	"cyltrack-rest-api/internal/model"
	"cyltrack-rest-api/internal/repository"

	"golang.org/x/sync/errgroup"
)

// Dashboard service errors. Handlers map these to client error responses.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrOutletNotFound = errors.New("outlet not found")
	ErrInvalidAccess  = errors.New("invalid user access")
)

const summaryCacheKeyPrefix = "dashboard:"

// DashboardService computes role-specific dashboard summaries.
type DashboardService struct {
	users      repository.UserRepository
	inventory  repository.InventoryRepository
	outlets    repository.OutletRepository
	requests   repository.RequestRepository
	deliveries repository.DeliveryRepository

	cache    cache.Cache
	cacheTTL time.Duration
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(
	users repository.UserRepository,
	inventory repository.InventoryRepository,
	outlets repository.OutletRepository,
	requests repository.RequestRepository,
	deliveries repository.DeliveryRepository,
) *DashboardService {
	return &DashboardService{
		users:      users,
		inventory:  inventory,
		outlets:    outlets,
		requests:   requests,
		deliveries: deliveries,
	}
}

// SetSummaryCache enables caching of computed summaries under the given TTL.
// A zero TTL leaves caching disabled.
func (s *DashboardService) SetSummaryCache(c cache.Cache, ttl time.Duration) {
	s.cache = c
	s.cacheTTL = ttl
}

// GetDashboard loads the user behind the resolved identity and computes a
// summary for its role. The identity is passed explicitly; the service knows
// nothing about how the transport layer resolved it.
func (s *DashboardService) GetDashboard(ctx context.Context, userID string) (model.DashboardSummary, error) {
	if cached := s.cachedSummary(ctx, userID); cached != nil {
		return cached, nil
	}

	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	var summary model.DashboardSummary
	switch user.Role {
	case model.RoleDistributor:
		summary, err = s.distributorSummary(ctx)
	case model.RoleOutletManager:
		summary, err = s.outletManagerSummary(ctx, user)
	case model.RoleCustomer, model.RoleBusiness:
		summary, err = s.requesterSummary(ctx, user.ID)
	default:
		return nil, ErrInvalidAccess
	}
	if err != nil {
		return nil, err
	}

	s.storeSummary(ctx, userID, summary)
	return summary, nil
}

// distributorSummary produces fleet-wide totals. The four reads hit
// independent collections and carry no ordering requirement, so they run
// concurrently.
func (s *DashboardService) distributorSummary(ctx context.Context) (model.DashboardSummary, error) {
	var (
		stock      *int64
		outlets    int64
		requests   int64
		deliveries int64
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		inv, err := s.inventory.Get(ctx)
		if errors.Is(err, repository.ErrNotFound) {
			// No inventory document yet; the metric stays null.
			return nil
		}
		if err != nil {
			return err
		}
		stock = &inv.CurrentStock
		return nil
	})
	g.Go(func() (err error) {
		outlets, err = s.outlets.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		requests, err = s.requests.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		deliveries, err = s.deliveries.Count(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return model.DashboardSummary{
		"inventory":  stock,
		"outlets":    model.Count(outlets),
		"requests":   model.Count(requests),
		"deliveries": model.Count(deliveries),
	}, nil
}

// outletManagerSummary produces the outlet's stock plus the manager's
// request/delivery counts.
func (s *DashboardService) outletManagerSummary(ctx context.Context, user *model.User) (model.DashboardSummary, error) {
	if user.Outlet == "" {
		return nil, ErrOutletNotFound
	}

	var (
		outlet     *model.Outlet
		requests   int64
		deliveries int64
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		outlet, err = s.outlets.GetByID(ctx, user.Outlet)
		if errors.Is(err, repository.ErrNotFound) {
			return ErrOutletNotFound
		}
		return err
	})
	// TODO: requests/deliveries are scoped by the manager's user id, not the
	// outlet id. This matches the running system; confirm intended scoping
	// before changing the filter.
	g.Go(func() (err error) {
		requests, err = s.requests.CountByOutlet(ctx, user.ID)
		return err
	})
	g.Go(func() (err error) {
		deliveries, err = s.deliveries.CountByOutlet(ctx, user.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return model.DashboardSummary{
		"stocks":     model.Count(outlet.CurrentStock),
		"requests":   model.Count(requests),
		"deliveries": model.Count(deliveries),
	}, nil
}

// requesterSummary counts the caller's own requests (CUSTOMER and BUSINESS).
func (s *DashboardService) requesterSummary(ctx context.Context, userID string) (model.DashboardSummary, error) {
	requests, err := s.requests.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return model.DashboardSummary{
		"requests": model.Count(requests),
	}, nil
}

// cachedSummary returns a previously computed summary, or nil.
func (s *DashboardService) cachedSummary(ctx context.Context, userID string) model.DashboardSummary {
	if s.cache == nil || s.cacheTTL <= 0 {
		return nil
	}

	data, err := s.cache.Get(ctx, summaryCacheKeyPrefix+userID)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("[DashboardService] Cache read failed: %v", err)
		}
		return nil
	}

	var summary model.DashboardSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		log.Printf("[DashboardService] Dropping bad cache entry: %v", err)
		_ = s.cache.Delete(ctx, summaryCacheKeyPrefix+userID)
		return nil
	}
	return summary
}

// storeSummary caches a computed summary. Failures are logged, not returned;
// the summary itself is already in hand.
func (s *DashboardService) storeSummary(ctx context.Context, userID string, summary model.DashboardSummary) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, summaryCacheKeyPrefix+userID, data, s.cacheTTL); err != nil {
		log.Printf("[DashboardService] Cache write failed: %v", err)
	}
}
