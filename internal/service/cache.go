// Package service contains the business logic for the recipe service.
package service

import (
	"container/list"
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/recipe-service/internal/domain/model"
	"github.com/guttosm/recipe-service/internal/metrics"
	"github.com/guttosm/recipe-service/internal/service/cache"
)

// ShardedCache spreads shopping list entries over several LRU shards to reduce
// lock contention.
type ShardedCache struct {
	shards []*ttlCache
}

// NewShardedCache creates a sharded cache with the given total capacity and TTL.
func NewShardedCache(capacity int, ttl time.Duration, numShards int) *ShardedCache {
	if numShards <= 0 {
		numShards = 16
	}
	perShard := capacity / numShards
	if perShard < 1 {
		perShard = 1
	}

	shards := make([]*ttlCache, numShards)
	for i := range shards {
		shards[i] = newTTLCache(perShard, ttl)
	}
	return &ShardedCache{shards: shards}
}

func (sc *ShardedCache) shard(key string) *ttlCache {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return sc.shards[h.Sum32()%uint32(len(sc.shards))]
}

// Get retrieves a value from the owning shard.
func (sc *ShardedCache) Get(key string) (model.ShoppingList, bool) {
	return sc.shard(key).Get(key)
}

// Set stores a value in the owning shard.
func (sc *ShardedCache) Set(key string, value model.ShoppingList) {
	sc.shard(key).Set(key, value)
}

// Invalidate removes key from the owning shard.
func (sc *ShardedCache) Invalidate(key string) {
	sc.shard(key).Invalidate(key)
}

// Clear empties every shard.
func (sc *ShardedCache) Clear() {
	for _, s := range sc.shards {
		s.Clear()
	}
}

// Stop stops the cleanup goroutine of every shard.
func (sc *ShardedCache) Stop() {
	for _, s := range sc.shards {
		s.Stop()
	}
}

// Metrics aggregates the metrics of all shards.
func (sc *ShardedCache) Metrics() cache.Metrics {
	var total cache.Metrics
	for _, s := range sc.shards {
		m := s.Metrics()
		total.Hits += m.Hits
		total.Misses += m.Misses
		total.Evictions += m.Evictions
		total.Size += m.Size
		total.Capacity += m.Capacity
	}
	return total
}

// ttlCache is a thread-safe LRU cache whose entries also expire after ttl.
type ttlCache struct {
	mu        sync.Mutex
	capacity  int
	ttl       time.Duration
	items     map[string]*list.Element
	order     *list.List // front = most recently used
	stopCh    chan struct{}
	stopOnce  sync.Once
	hits      int64
	misses    int64
	evictions int64
}

type cacheEntry struct {
	key       string
	value     model.ShoppingList
	expiresAt time.Time
}

func newTTLCache(capacity int, ttl time.Duration) *ttlCache {
	c := &ttlCache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*list.Element, capacity),
		order:    list.New(),
		stopCh:   make(chan struct{}),
	}
	go c.startCleanup()
	return c
}

// Get returns a copy of the cached list so callers cannot mutate the entry.
func (c *ttlCache) Get(key string) (model.ShoppingList, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "miss")
		return model.ShoppingList{}, false
	}

	entry := el.Value.(*cacheEntry)
	if time.Now().After(entry.expiresAt) {
		c.removeElement(el)
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "expired")
		return model.ShoppingList{}, false
	}

	c.order.MoveToFront(el)
	atomic.AddInt64(&c.hits, 1)
	metrics.RecordCacheOperation("get", "hit")
	return copyShoppingList(entry.value), true
}

// Set adds or refreshes key, evicting the least recently used entry when full.
func (c *ttlCache) Set(key string, value model.ShoppingList) {
	c.mu.Lock()
	defer c.mu.Unlock()

	value = copyShoppingList(value)
	expiresAt := time.Now().Add(c.ttl)

	if el, ok := c.items[key]; ok {
		entry := el.Value.(*cacheEntry)
		entry.value = value
		entry.expiresAt = expiresAt
		c.order.MoveToFront(el)
		return
	}

	c.items[key] = c.order.PushFront(&cacheEntry{key: key, value: value, expiresAt: expiresAt})

	if c.order.Len() > c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			c.removeElement(oldest)
			atomic.AddInt64(&c.evictions, 1)
			metrics.RecordCacheOperation("evict", "capacity")
		}
	}
	metrics.RecordCacheOperation("set", "success")
}

// Invalidate removes key from the cache.
func (c *ttlCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.removeElement(el)
		metrics.RecordCacheOperation("invalidate", "success")
	}
}

// Clear removes all entries and resets the counters.
func (c *ttlCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element, c.capacity)
	c.order.Init()
	atomic.StoreInt64(&c.hits, 0)
	atomic.StoreInt64(&c.misses, 0)
	atomic.StoreInt64(&c.evictions, 0)
	metrics.RecordCacheOperation("clear", "success")
}

// Stop ends the background cleanup. Safe to call more than once.
func (c *ttlCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

// Metrics returns current cache metrics.
func (c *ttlCache) Metrics() cache.Metrics {
	c.mu.Lock()
	defer c.mu.Unlock()

	return cache.Metrics{
		Hits:      atomic.LoadInt64(&c.hits),
		Misses:    atomic.LoadInt64(&c.misses),
		Evictions: atomic.LoadInt64(&c.evictions),
		Size:      len(c.items),
		Capacity:  c.capacity,
	}
}

func (c *ttlCache) startCleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopCh:
			return
		}
	}
}

func (c *ttlCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for el := c.order.Back(); el != nil; {
		prev := el.Prev()
		if now.After(el.Value.(*cacheEntry).expiresAt) {
			c.removeElement(el)
		}
		el = prev
	}
}

func (c *ttlCache) removeElement(el *list.Element) {
	delete(c.items, el.Value.(*cacheEntry).key)
	c.order.Remove(el)
}

func copyShoppingList(l model.ShoppingList) model.ShoppingList {
	out := model.ShoppingList{}
	if l.Items != nil {
		out.Items = append(make([]model.ShoppingListItem, 0, len(l.Items)), l.Items...)
	}
	if l.SkippedRecipeIDs != nil {
		out.SkippedRecipeIDs = append(make([]int64, 0, len(l.SkippedRecipeIDs)), l.SkippedRecipeIDs...)
	}
	return out
}
