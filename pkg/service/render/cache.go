package render

import (
	"context"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/singleflight"

	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/model/errs"
)

type cacheEntry struct {
	data  []byte
	empty bool
}

// Cache memoizes one render operation's artifacts, bounded by an LRU over
// normalized request keys. "No matching data" outcomes are memoized too,
// so an empty filtered dataset never triggers the expensive render twice.
// A singleflight group guarantees at most one concurrent compute per key;
// concurrent identical requests wait for and share the first result.
type Cache struct {
	lru      *lru.Cache[string, cacheEntry]
	group    singleflight.Group
	computes atomic.Int64
}

func NewCache(capacity int) *Cache {
	inner, err := lru.New[string, cacheEntry](capacity)
	if err != nil {
		panic(err)
	}
	return &Cache{lru: inner}
}

// GetOrRender returns the cached artifact for key, computing it with
// render on a miss. errs.ErrNoRenderData results are cached as the
// empty-result sentinel; any other render error is returned as-is and
// leaves the cache untouched.
func (c *Cache) GetOrRender(ctx context.Context, key string, render func(ctx context.Context) ([]byte, error)) ([]byte, error) {
	if entry, ok := c.lru.Get(key); ok {
		return entryResult(key, entry)
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// a waiter may arrive after the leader stored the result
		if entry, ok := c.lru.Get(key); ok {
			return entry, nil
		}

		c.computes.Add(1)
		data, err := render(ctx)
		switch {
		case err == nil:
			entry := cacheEntry{data: data}
			c.lru.Add(key, entry)
			return entry, nil
		case goerr.HasTag(err, errs.TagNotFound):
			entry := cacheEntry{empty: true}
			c.lru.Add(key, entry)
			return entry, nil
		default:
			return cacheEntry{}, err
		}
	})
	if err != nil {
		return nil, err
	}

	return entryResult(key, v.(cacheEntry))
}

func entryResult(key string, entry cacheEntry) ([]byte, error) {
	if entry.empty {
		return nil, goerr.Wrap(errs.ErrNoRenderData, "cached empty result", goerr.V("key", key))
	}
	return entry.data, nil
}

// Contains reports whether key currently has a cached entry, without
// updating recency.
func (c *Cache) Contains(key string) bool {
	return c.lru.Contains(key)
}

func (c *Cache) Len() int {
	return c.lru.Len()
}

// Computes reports how many times a render routine has actually run.
func (c *Cache) Computes() int64 {
	return c.computes.Load()
}
