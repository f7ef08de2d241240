package controllers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/madhupandey29/shofy-storefront/models"
	"github.com/madhupandey29/shofy-storefront/search"
)

const (
	FilterOptionsCachePrefix = "filters:options:"
	SearchCachePrefix        = "search:q:"
)

// CacheManager handles all Redis caching operations. Cache misses and Redis
// failures are silent; the caller always falls through to the catalog.
type CacheManager struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCacheManager(rdb *redis.Client, ttl time.Duration) *CacheManager {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CacheManager{redis: rdb, ttl: ttl}
}

// GetFilterOptions retrieves a cached option list for a facet.
func (cm *CacheManager) GetFilterOptions(ctx context.Context, facet string) ([]models.FilterOption, bool) {
	if cm == nil || cm.redis == nil {
		return nil, false
	}
	cached, err := cm.redis.Get(ctx, FilterOptionsCachePrefix+facet).Result()
	if err != nil {
		return nil, false
	}
	var opts []models.FilterOption
	if err := json.Unmarshal([]byte(cached), &opts); err != nil {
		zap.L().Warn("Failed to unmarshal cached filter options", zap.String("facet", facet), zap.Error(err))
		return nil, false
	}
	return opts, true
}

// SetFilterOptionsAsync caches a facet's option list in the background.
func (cm *CacheManager) SetFilterOptionsAsync(facet string, opts []models.FilterOption) {
	if cm == nil || cm.redis == nil {
		return
	}
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		jsonBytes, err := json.Marshal(opts)
		if err != nil {
			zap.L().Warn("Failed to marshal filter options for cache", zap.Error(err))
			return
		}
		if err := cm.redis.Set(bgCtx, FilterOptionsCachePrefix+facet, jsonBytes, cm.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache filter options", zap.String("facet", facet), zap.Error(err))
		}
	}()
}

// GetSearch retrieves a cached search outcome for a settled query.
func (cm *CacheManager) GetSearch(ctx context.Context, query string) (*search.Outcome, bool) {
	if cm == nil || cm.redis == nil {
		return nil, false
	}
	cached, err := cm.redis.Get(ctx, SearchCachePrefix+query).Result()
	if err != nil {
		return nil, false
	}
	var out search.Outcome
	if err := json.Unmarshal([]byte(cached), &out); err != nil {
		zap.L().Warn("Failed to unmarshal cached search outcome", zap.Error(err))
		return nil, false
	}
	return &out, true
}

// SetSearchAsync caches a search outcome in the background. Failed outcomes
// are not cached; a transient upstream outage should not stick.
func (cm *CacheManager) SetSearchAsync(query string, out search.Outcome) {
	if cm == nil || cm.redis == nil || out.Failed {
		return
	}
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		jsonBytes, err := json.Marshal(out)
		if err != nil {
			zap.L().Warn("Failed to marshal search outcome for cache", zap.Error(err))
			return
		}
		if err := cm.redis.Set(bgCtx, SearchCachePrefix+query, jsonBytes, cm.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache search outcome", zap.Error(err))
		}
	}()
}
