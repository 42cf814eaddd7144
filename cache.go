package jsonschema

import (
	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/atomic"
	"golang.org/x/sync/singleflight"

	"github.com/jacoelho/jsonschema/pkg/jsonvalue"
)

const defaultCacheSize = 128

// CacheStatistics reports the state of the compiled-schema cache used by Validate.
type CacheStatistics struct {
	Hits   uint64
	Misses uint64
	Len    int
}

type cacheEntry struct {
	validator *Validator
	canonical string
}

// validatorCache memoizes compiled validators by the canonical rendering of
// their schema. Entries are keyed by its xxhash digest and confirmed against
// the full rendering, so a digest collision is a miss, never a wrong hit.
type validatorCache struct {
	entries  *lru.Cache
	inflight singleflight.Group
	hits     atomic.Uint64
	misses   atomic.Uint64
}

var defaultCache = mustValidatorCache(defaultCacheSize)

func mustValidatorCache(size int) *validatorCache {
	entries, err := lru.New(size)
	if err != nil {
		panic(err)
	}
	return &validatorCache{entries: entries}
}

func (c *validatorCache) get(schema *jsonvalue.Value) (*Validator, error) {
	canonical := schema.String()
	key := xxhash.Sum64String(canonical)
	if v, ok := c.lookup(key, canonical); ok {
		c.hits.Inc()
		return v, nil
	}
	c.misses.Inc()

	res, err, _ := c.inflight.Do(canonical, func() (any, error) {
		if v, ok := c.lookup(key, canonical); ok {
			return v, nil
		}
		v, err := New(schema)
		if err != nil {
			return nil, err
		}
		c.entries.Add(key, cacheEntry{validator: v, canonical: canonical})
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return res.(*Validator), nil
}

func (c *validatorCache) lookup(key uint64, canonical string) (*Validator, bool) {
	raw, ok := c.entries.Get(key)
	if !ok {
		return nil, false
	}
	entry := raw.(cacheEntry)
	if entry.canonical != canonical {
		return nil, false
	}
	return entry.validator, true
}

func (c *validatorCache) stats() CacheStatistics {
	return CacheStatistics{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Len:    c.entries.Len(),
	}
}

func (c *validatorCache) purge() {
	c.entries.Purge()
	c.hits.Store(0)
	c.misses.Store(0)
}

// Validate compiles schema (memoized across calls) and validates instance
// against it. It panics if schema is invalid; use New to handle schema errors.
func Validate(instance, schema *jsonvalue.Value) error {
	v, err := defaultCache.get(schema)
	if err != nil {
		panic(err)
	}
	return v.Validate(instance)
}

// CacheStats reports hit and miss counts of the cache behind Validate.
func CacheStats() CacheStatistics {
	return defaultCache.stats()
}

// PurgeCache drops every cached validator and resets the statistics.
func PurgeCache() {
	defaultCache.purge()
}
