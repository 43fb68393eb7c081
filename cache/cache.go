// Package cache contains data structures that are useful to build caches.
//
// The types provided by the package are generic building blocks implementing
// caching algorithms. Synchronization in caching strategies is often very
// specific to the application and harder to generalize, so the types provided
// by this package do not make opinionated choices on how synchronization should
// be handled, which makes them unsafe to use concurrently from multiple
// goroutines
package cache

import "go.uber.org/zap"

// Interface is the interface implemented by caches.
type Interface[K comparable, V any] interface {
	// Returns the number of items in the cache.
	Len() int

	// Inserts an item in the cache, returning the previous value associated
	// with the cache key.
	Insert(key K, value V) (previous V, replaced bool)

	// Returns the value associated with the given key in the cache.
	Lookup(key K) (value V, found bool)

	// Deletes an item from the cache.
	Delete(key K) (value V, deleted bool)

	// Evicts an item from the cache.
	Evict() (key K, value V, evicted bool)

	// Calls f for each entry in the cache. The order in which entries are
	// presented depends on the implementation. If f returns false, iteration
	// stops.
	Range(f func(K, V) bool)
}

// Config carries the configuration of a Cache.
type Config[K comparable, V any] struct {
	// Maximum number of entries held in the cache. Inserts exceeding the
	// limit evict entries from the backend. Zero or less means no limit.
	Limit int
	// The caching strategy. When nil, a LRU is used.
	Backend Interface[K, V]
	// Receives debug logs of evictions. When nil, nothing is logged.
	Logger *zap.Logger
}

// DefaultConfig constructs a new Config instance initialized with the default
// configuration.
func DefaultConfig[K comparable, V any]() *Config[K, V] {
	return &Config[K, V]{
		Logger: zap.NewNop(),
	}
}

// Apply applies the list of options passed as arguments to c.
func (c *Config[K, V]) Apply(options ...Option[K, V]) {
	for _, opt := range options {
		opt.Configure(c)
	}
}

// Option is an interface implemented by options allowing configuration of new
// Cache instances.
type Option[K comparable, V any] interface {
	Configure(*Config[K, V])
}

type option[K comparable, V any] func(*Config[K, V])

func (opt option[K, V]) Configure(config *Config[K, V]) { opt(config) }

// Limit is a configuration option setting the maximum number of entries held
// in a Cache.
//
// Default: no limit
func Limit[K comparable, V any](n int) Option[K, V] {
	return option[K, V](func(config *Config[K, V]) { config.Limit = n })
}

// Backend is a configuration option setting the caching strategy of a Cache.
//
// Default: LRU
func Backend[K comparable, V any](backend Interface[K, V]) Option[K, V] {
	return option[K, V](func(config *Config[K, V]) { config.Backend = backend })
}

// Logger is a configuration option setting the logger of a Cache.
func Logger[K comparable, V any](logger *zap.Logger) Option[K, V] {
	return option[K, V](func(config *Config[K, V]) { config.Logger = logger })
}

// Stats contains counters tracking usage of a cache.
type Stats struct {
	Inserts   int64
	Updates   int64
	Deletes   int64
	Lookups   int64
	Hits      int64
	Evictions int64
}

// HitRate returns the ratio of lookups which found their key, as a floating
// point value between 0 and 1 (inclusive). It is zero when there were no
// lookups.
func (s *Stats) HitRate() float64 {
	if s.Lookups == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Lookups)
}

// Cache wraps an underlying caching implementation, adding measures of usage
// and an optional limit on the number of entries.
//
// The zero-value is a valid, unlimited cache using a LRU caching strategy.
type Cache[K comparable, V any] struct {
	stats   Stats
	limit   int
	backend Interface[K, V]
	logger  *zap.Logger
}

// New constructs a new Cache instance, using the list of options passed as
// arguments to configure the cache.
func New[K comparable, V any](options ...Option[K, V]) *Cache[K, V] {
	config := DefaultConfig[K, V]()
	config.Apply(options...)
	return NewWithConfig(config)
}

// NewWithConfig is like New but uses a Config instance to pass the cache
// configuration instead of a list of options.
func NewWithConfig[K comparable, V any](config *Config[K, V]) *Cache[K, V] {
	c := new(Cache[K, V])
	c.Init(config.Backend)
	c.limit = max(config.Limit, 0)
	c.logger = config.Logger
	return c
}

// Init resets the counters of c and installs backend as its caching strategy.
func (c *Cache[K, V]) Init(backend Interface[K, V]) {
	c.stats = Stats{}
	c.backend = backend
}

func (c *Cache[K, V]) Len() int {
	if c.backend != nil {
		return c.backend.Len()
	}
	return 0
}

func (c *Cache[K, V]) Insert(key K, value V) (previous V, replaced bool) {
	if c.backend == nil {
		c.backend = new(LRU[K, V])
	}
	previous, replaced = c.backend.Insert(key, value)
	if replaced {
		c.stats.Updates++
	} else {
		c.stats.Inserts++
	}

	for c.limit > 0 && c.backend.Len() > c.limit {
		k, _, evicted := c.Evict()
		if !evicted {
			break
		}
		c.log().Debug("cache limit reached, entry evicted",
			zap.Any("key", k),
			zap.Int("limit", c.limit),
			zap.Int("len", c.backend.Len()),
		)
	}
	return previous, replaced
}

func (c *Cache[K, V]) Lookup(key K) (value V, found bool) {
	if c.backend != nil {
		value, found = c.backend.Lookup(key)
		c.stats.Lookups++
		if found {
			c.stats.Hits++
		}
	}
	return value, found
}

func (c *Cache[K, V]) Delete(key K) (value V, deleted bool) {
	if c.backend != nil {
		value, deleted = c.backend.Delete(key)
		if deleted {
			c.stats.Deletes++
		}
	}
	return value, deleted
}

func (c *Cache[K, V]) Evict() (key K, value V, evicted bool) {
	if c.backend != nil {
		key, value, evicted = c.backend.Evict()
		if evicted {
			c.stats.Evictions++
		}
	}
	return key, value, evicted
}

func (c *Cache[K, V]) Range(f func(K, V) bool) {
	if c.backend != nil {
		c.backend.Range(f)
	}
}

// Stats returns the current values of the cache counters.
func (c *Cache[K, V]) Stats() Stats { return c.stats }

func (c *Cache[K, V]) log() *zap.Logger {
	if c.logger == nil {
		return zap.NewNop()
	}
	return c.logger
}
