package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/righttool/righttool-backend/pkg/db/models"
	pkgerrors "github.com/righttool/righttool-backend/pkg/errors"
	"github.com/righttool/righttool-backend/pkg/logger"
	pkgredis "github.com/righttool/righttool-backend/pkg/redis"
)

const cacheKeyName = "jobs"

type listingRepository interface {
	ListAll(ctx context.Context) ([]models.Job, error)
}

// Cache is the subset of the Redis client the listing uses. A nil Cache
// disables caching entirely.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	ListingKey(name string) string
}

// Service exposes job listing operations.
type Service interface {
	List(ctx context.Context) ([]JobDTO, error)
}

type service struct {
	repo     listingRepository
	cache    Cache
	cacheTTL time.Duration
	logg     *logger.Logger
}

// NewService builds a job service. The cache is optional.
func NewService(repo listingRepository, cache Cache, cacheTTL time.Duration, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("job repository required")
	}
	return &service{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
		logg:     logg,
	}, nil
}

func (s *service) List(ctx context.Context) ([]JobDTO, error) {
	if cached, ok := s.fromCache(ctx); ok {
		return cached, nil
	}

	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list jobs")
	}

	dtos := FromModels(rows)
	s.storeCache(ctx, dtos)
	return dtos, nil
}

func (s *service) fromCache(ctx context.Context) ([]JobDTO, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, s.cache.ListingKey(cacheKeyName))
	if err != nil {
		if !errors.Is(err, pkgredis.Nil) && s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "cache_error", err.Error()), "job cache read failed")
		}
		return nil, false
	}
	var dtos []JobDTO
	if err := json.Unmarshal([]byte(raw), &dtos); err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "cache_error", err.Error()), "job cache payload corrupt")
		}
		return nil, false
	}
	return dtos, true
}

func (s *service) storeCache(ctx context.Context, dtos []JobDTO) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(dtos)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, s.cache.ListingKey(cacheKeyName), string(payload), s.cacheTTL); err != nil && s.logg != nil {
		s.logg.Warn(s.logg.WithField(ctx, "cache_error", err.Error()), "job cache write failed")
	}
}
