// file: internals/features/home/bulk/service/cache_test.go
package service

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheStore_GetOrLoad(t *testing.T) {
	s := NewCacheStore()
	calls := 0

	v, cached, err := s.GetOrLoad("k", time.Minute, func() (any, error) {
		calls++
		return "hasil", nil
	})
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, "hasil", v)

	// hit kedua dari cache, loader tidak jalan lagi
	v, cached, err = s.GetOrLoad("k", time.Minute, func() (any, error) {
		calls++
		return "lain", nil
	})
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, "hasil", v)
	assert.Equal(t, 1, calls)
}

func TestCacheStore_TTLExpiry(t *testing.T) {
	s := NewCacheStore()

	_, _, err := s.GetOrLoad("k", 30*time.Millisecond, func() (any, error) {
		return 1, nil
	})
	require.NoError(t, err)

	time.Sleep(60 * time.Millisecond)

	_, cached, err := s.GetOrLoad("k", 30*time.Millisecond, func() (any, error) {
		return 2, nil
	})
	require.NoError(t, err)
	assert.False(t, cached, "setelah TTL lewat harus load ulang")
}

func TestCacheStore_SingleflightDedupe(t *testing.T) {
	s := NewCacheStore()
	var calls int32

	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, _, err := s.GetOrLoad("sama", time.Minute, func() (any, error) {
				atomic.AddInt32(&calls, 1)
				time.Sleep(20 * time.Millisecond) // tahan supaya goroutine lain antre
				return "x", nil
			})
			assert.NoError(t, err)
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "load bersamaan harus deduped")
}

func TestCacheStore_LoadOrReuseReportsHit(t *testing.T) {
	s := NewCacheStore()
	calls := 0
	load := func() (any, error) {
		calls++
		return "hasil", nil
	}

	// fresh path
	res, err := s.loadOrReuse("k", time.Minute, load)
	require.NoError(t, err)
	lr := res.(loadResult)
	assert.False(t, lr.cached)
	assert.Equal(t, "hasil", lr.value)
	assert.Equal(t, 1, calls)

	// key sudah terisi: re-check di dalam flight harus lapor hit,
	// loader tidak boleh jalan lagi
	res, err = s.loadOrReuse("k", time.Minute, load)
	require.NoError(t, err)
	lr = res.(loadResult)
	assert.True(t, lr.cached)
	assert.Equal(t, "hasil", lr.value)
	assert.Equal(t, 1, calls)
}

func TestCacheStore_PrefixInvalidation(t *testing.T) {
	s := NewCacheStore()
	b1, s1 := uuid.New(), uuid.New()
	b2, s2 := uuid.New(), uuid.New()

	load := func(v any) func() (any, error) {
		return func() (any, error) { return v, nil }
	}
	_, _, _ = s.GetOrLoad(AcademicKey(b1, s1), time.Minute, load("a1"))
	_, _, _ = s.GetOrLoad(AcademicKey(b2, s2), time.Minute, load("a2"))
	_, _, _ = s.GetOrLoad(WidgetsKey(b1, s1), time.Minute, load("w1"))
	require.Equal(t, 3, s.ItemCount())

	// satu kombinasi saja
	s.InvalidateAcademicFor(b1, s1)
	assert.Equal(t, 2, s.ItemCount())

	// seluruh prefix academic — widget tidak ikut
	s.InvalidateAcademic()
	assert.Equal(t, 1, s.ItemCount())

	_, cached, _ := s.GetOrLoad(WidgetsKey(b1, s1), time.Minute, load("w1"))
	assert.True(t, cached)

	s.InvalidateWidgets()
	assert.Equal(t, 0, s.ItemCount())

	_, _, _ = s.GetOrLoad(AcademicKey(b1, s1), time.Minute, load("a1"))
	_, _, _ = s.GetOrLoad(WidgetsKey(b1, s1), time.Minute, load("w1"))
	s.InvalidateAll()
	assert.Equal(t, 0, s.ItemCount())
}
