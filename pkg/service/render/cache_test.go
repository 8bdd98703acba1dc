package render_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/model/errs"
	"github.com/PranavU-Coder/bitsatards-bot/pkg/service/render"
)

func TestCacheMemoizes(t *testing.T) {
	ctx := context.Background()
	cache := render.NewCache(8)

	var calls int
	renderFn := func(ctx context.Context) ([]byte, error) {
		calls++
		return []byte("artifact"), nil
	}

	first, err := cache.GetOrRender(ctx, "k", renderFn)
	gt.NoError(t, err)
	second, err := cache.GetOrRender(ctx, "k", renderFn)
	gt.NoError(t, err)

	gt.V(t, string(first)).Equal("artifact")
	gt.V(t, string(second)).Equal(string(first))
	gt.Number(t, calls).Equal(1)
	gt.Number(t, cache.Computes()).Equal(int64(1))
}

func TestCacheMemoizesEmptyResult(t *testing.T) {
	ctx := context.Background()
	cache := render.NewCache(8)

	var calls int
	renderFn := func(ctx context.Context) ([]byte, error) {
		calls++
		return nil, goerr.Wrap(errs.ErrNoRenderData, "nothing matched")
	}

	_, err := cache.GetOrRender(ctx, "k", renderFn)
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, errs.TagNotFound))

	// the empty outcome is memoized: no second render attempt
	_, err = cache.GetOrRender(ctx, "k", renderFn)
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, errs.TagNotFound))
	gt.Number(t, calls).Equal(1)
}

func TestCacheDoesNotCacheFailures(t *testing.T) {
	ctx := context.Background()
	cache := render.NewCache(8)

	var calls int
	renderFn := func(ctx context.Context) ([]byte, error) {
		calls++
		return nil, goerr.New("renderer exploded")
	}

	_, err := cache.GetOrRender(ctx, "k", renderFn)
	gt.Error(t, err)
	_, err = cache.GetOrRender(ctx, "k", renderFn)
	gt.Error(t, err)

	gt.Number(t, calls).Equal(2)
	gt.False(t, cache.Contains("k"))
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	cache := render.NewCache(2)

	put := func(key string) {
		_, err := cache.GetOrRender(ctx, key, func(ctx context.Context) ([]byte, error) {
			return []byte(key), nil
		})
		gt.NoError(t, err)
	}

	put("a")
	put("b")
	put("a") // refresh recency so "b" is now the oldest
	put("c") // over capacity: evicts "b", not "a"

	gt.True(t, cache.Contains("a"))
	gt.False(t, cache.Contains("b"))
	gt.True(t, cache.Contains("c"))
	gt.Number(t, cache.Len()).Equal(2)
}

func TestCacheSingleFlight(t *testing.T) {
	ctx := context.Background()
	cache := render.NewCache(8)

	var calls atomic.Int64
	started := make(chan struct{})
	release := make(chan struct{})

	renderFn := func(ctx context.Context) ([]byte, error) {
		calls.Add(1)
		close(started)
		<-release
		return []byte("shared"), nil
	}

	const workers = 8
	results := make([][]byte, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			data, err := cache.GetOrRender(ctx, "hot-key", renderFn)
			gt.NoError(t, err)
			results[i] = data
		}(i)
	}

	<-started
	close(release)
	wg.Wait()

	// one compute, every caller shares its result
	gt.Number(t, calls.Load()).Equal(int64(1))
	for _, data := range results {
		gt.V(t, string(data)).Equal("shared")
	}
}
