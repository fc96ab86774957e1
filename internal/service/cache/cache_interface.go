// Package cache defines the result cache contract used by the shopping list service.
package cache

import "github.com/guttosm/recipe-service/internal/domain/model"

// Cache stores computed shopping lists keyed by a canonical selection key.
type Cache interface {
	Get(key string) (model.ShoppingList, bool)
	Set(key string, value model.ShoppingList)
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
