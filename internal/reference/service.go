package reference

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adityaraghav/studyspace-backend/internal/gateway"
	"github.com/adityaraghav/studyspace-backend/pkg/logger"
	"github.com/adityaraghav/studyspace-backend/pkg/redis"
)

type gatewayClient interface {
	GetBranches(ctx context.Context) ([]gateway.Branch, error)
	GetSchedules(ctx context.Context) ([]gateway.Shift, error)
	GetSeats(ctx context.Context, filter gateway.SeatFilter) ([]gateway.Seat, error)
}

type cache interface {
	ReferenceKey(name string) string
	GetJSON(ctx context.Context, key string, dest any) error
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Service serves the read-only reference rosters (branches, shifts, seats).
// Branches and shifts change rarely and are cached with a short TTL; cache
// failures degrade to direct gateway reads. Seats carry live holder state
// and are never cached.
type Service interface {
	Branches(ctx context.Context) ([]gateway.Branch, error)
	Shifts(ctx context.Context) ([]gateway.Shift, error)
	Seats(ctx context.Context, filter gateway.SeatFilter) ([]gateway.Seat, error)
}

type service struct {
	gw    gatewayClient
	cache cache
	ttl   time.Duration
	logg  *logger.Logger
}

// NewService builds the reference service. The cache may be nil.
func NewService(gw gatewayClient, cache cache, ttl time.Duration, logg *logger.Logger) (Service, error) {
	if gw == nil {
		return nil, fmt.Errorf("gateway client required")
	}
	return &service{gw: gw, cache: cache, ttl: ttl, logg: logg}, nil
}

func (s *service) Branches(ctx context.Context) ([]gateway.Branch, error) {
	var branches []gateway.Branch
	if s.cachedList(ctx, "branches", &branches) {
		return branches, nil
	}

	branches, err := s.gw.GetBranches(ctx)
	if err != nil {
		return nil, err
	}
	s.storeList(ctx, "branches", branches)
	return branches, nil
}

func (s *service) Shifts(ctx context.Context) ([]gateway.Shift, error) {
	var shifts []gateway.Shift
	if s.cachedList(ctx, "shifts", &shifts) {
		return shifts, nil
	}

	shifts, err := s.gw.GetSchedules(ctx)
	if err != nil {
		return nil, err
	}
	s.storeList(ctx, "shifts", shifts)
	return shifts, nil
}

func (s *service) Seats(ctx context.Context, filter gateway.SeatFilter) ([]gateway.Seat, error) {
	return s.gw.GetSeats(ctx, filter)
}

func (s *service) cachedList(ctx context.Context, name string, dest any) bool {
	if s.cache == nil {
		return false
	}
	err := s.cache.GetJSON(ctx, s.cache.ReferenceKey(name), dest)
	if err == nil {
		return true
	}
	if !errors.Is(err, redis.ErrCacheMiss) && s.logg != nil {
		s.logg.Warn(s.logg.WithField(ctx, "roster", name), "reference cache read failed")
	}
	return false
}

func (s *service) storeList(ctx context.Context, name string, value any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, s.cache.ReferenceKey(name), value, s.ttl); err != nil && s.logg != nil {
		s.logg.Warn(s.logg.WithField(ctx, "roster", name), "reference cache write failed")
	}
}
