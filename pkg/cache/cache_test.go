package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "content|status=published&type=outreach", Key("content", "status=published&type=outreach"))
	assert.Equal(t, "campaigns|", Key("campaigns", ""))
	assert.NotEqual(t, Key("content", "a"), Key("content", "b"))
}

func TestGetOrFetch_CachesWithinTTL(t *testing.T) {
	c := New(time.Minute)
	calls := 0
	fetch := func(context.Context) (any, error) {
		calls++
		return "page-1", nil
	}

	v, err := c.GetOrFetch(context.Background(), Key("content", ""), fetch)
	require.NoError(t, err)
	assert.Equal(t, "page-1", v)

	v, err = c.GetOrFetch(context.Background(), Key("content", ""), fetch)
	require.NoError(t, err)
	assert.Equal(t, "page-1", v)
	assert.Equal(t, 1, calls, "second read within the TTL must hit the cache")
}

func TestGetOrFetch_DifferentKeysFetchSeparately(t *testing.T) {
	c := New(time.Minute)
	calls := 0
	fetch := func(context.Context) (any, error) {
		calls++
		return calls, nil
	}

	_, err := c.GetOrFetch(context.Background(), Key("content", "type=outreach"), fetch)
	require.NoError(t, err)
	_, err = c.GetOrFetch(context.Background(), Key("content", "type=story"), fetch)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestGetOrFetch_ExpiryRefetches(t *testing.T) {
	c := New(time.Minute)
	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return current }

	calls := 0
	fetch := func(context.Context) (any, error) {
		calls++
		return calls, nil
	}

	v, err := c.GetOrFetch(context.Background(), "content|", fetch)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	// Just inside the TTL
	current = current.Add(59 * time.Second)
	v, _ = c.GetOrFetch(context.Background(), "content|", fetch)
	assert.Equal(t, 1, v)

	// Past the TTL
	current = current.Add(2 * time.Second)
	v, _ = c.GetOrFetch(context.Background(), "content|", fetch)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, calls)
}

func TestGetOrFetch_SingleFlight(t *testing.T) {
	c := New(time.Minute)
	var calls int32
	started := make(chan struct{})
	release := make(chan struct{})

	slowFetch := func(context.Context) (any, error) {
		atomic.AddInt32(&calls, 1)
		close(started)
		<-release
		return "shared", nil
	}

	var wg sync.WaitGroup
	results := make([]any, 5)
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], _ = c.GetOrFetch(context.Background(), "content|", slowFetch)
	}()
	<-started

	// Four more readers pile onto the same in-flight fetch
	for i := 1; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = c.GetOrFetch(context.Background(), "content|", func(context.Context) (any, error) {
				atomic.AddInt32(&calls, 1)
				return "unexpected", nil
			})
		}(i)
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "concurrent readers must share one fetch")
	for i, v := range results {
		assert.Equal(t, "shared", v, "reader %d", i)
	}
}

func TestGetOrFetch_WaiterHonorsContext(t *testing.T) {
	c := New(time.Minute)
	started := make(chan struct{})
	release := make(chan struct{})
	defer close(release)

	go func() {
		_, _ = c.GetOrFetch(context.Background(), "content|", func(context.Context) (any, error) {
			close(started)
			<-release
			return nil, nil
		})
	}()
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.GetOrFetch(ctx, "content|", func(context.Context) (any, error) {
		return nil, nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGetOrFetch_FailedFetchIsNotCached(t *testing.T) {
	c := New(time.Minute)
	calls := 0
	boom := errors.New("api down")
	fetch := func(context.Context) (any, error) {
		calls++
		if calls == 1 {
			return nil, boom
		}
		return "recovered", nil
	}

	_, err := c.GetOrFetch(context.Background(), "content|", fetch)
	assert.ErrorIs(t, err, boom)

	v, err := c.GetOrFetch(context.Background(), "content|", fetch)
	require.NoError(t, err)
	assert.Equal(t, "recovered", v)
	assert.Equal(t, 2, calls)
}

func TestPeek_ReturnsLastGoodAfterFailure(t *testing.T) {
	c := New(time.Nanosecond)
	calls := 0
	fetch := func(context.Context) (any, error) {
		calls++
		if calls == 1 {
			return "good-data", nil
		}
		return nil, errors.New("api down")
	}

	_, err := c.GetOrFetch(context.Background(), "content|", fetch)
	require.NoError(t, err)

	time.Sleep(time.Millisecond)
	_, err = c.GetOrFetch(context.Background(), "content|", fetch)
	require.Error(t, err)

	v, ok := c.Peek("content|")
	assert.True(t, ok)
	assert.Equal(t, "good-data", v, "the stale snapshot survives a failed refetch")
}

func TestPeek_MissingKey(t *testing.T) {
	c := New(time.Minute)
	_, ok := c.Peek("content|")
	assert.False(t, ok)
}

func TestInvalidate_DropsOnlyTheResource(t *testing.T) {
	c := New(time.Minute)
	calls := map[string]int{}
	fetchFor := func(name string) func(context.Context) (any, error) {
		return func(context.Context) (any, error) {
			calls[name]++
			return name, nil
		}
	}

	_, err := c.GetOrFetch(context.Background(), Key("content", "a"), fetchFor("content"))
	require.NoError(t, err)
	_, err = c.GetOrFetch(context.Background(), Key("content", "b"), fetchFor("content"))
	require.NoError(t, err)
	_, err = c.GetOrFetch(context.Background(), Key("campaigns", ""), fetchFor("campaigns"))
	require.NoError(t, err)

	c.Invalidate("content")

	// Both content keys refetch, campaigns stays cached
	_, _ = c.GetOrFetch(context.Background(), Key("content", "a"), fetchFor("content"))
	_, _ = c.GetOrFetch(context.Background(), Key("content", "b"), fetchFor("content"))
	_, _ = c.GetOrFetch(context.Background(), Key("campaigns", ""), fetchFor("campaigns"))

	assert.Equal(t, 4, calls["content"])
	assert.Equal(t, 1, calls["campaigns"])
}

func TestInvalidate_KeepsLastGood(t *testing.T) {
	c := New(time.Minute)
	_, err := c.GetOrFetch(context.Background(), "content|", func(context.Context) (any, error) {
		return "snapshot", nil
	})
	require.NoError(t, err)

	c.Invalidate("content")

	v, ok := c.Peek("content|")
	assert.True(t, ok)
	assert.Equal(t, "snapshot", v)
}
