// file: internals/features/home/bulk/service/cache.go
package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// TTL per blok: data akademik berubah jarang, widget sering.
const (
	AcademicTTL = 10 * time.Minute
	WidgetsTTL  = 1 * time.Minute
)

const (
	prefixAcademic = "academic:"
	prefixWidgets  = "widgets:"
)

// CacheStore: cache-aside in-process dengan dedup singleflight —
// request bersamaan untuk key yang sama hanya memicu satu load DB.
type CacheStore struct {
	cache *gocache.Cache
	group singleflight.Group
}

// Store: instance global, dipakai controller untuk invalidasi.
var Store = NewCacheStore()

func NewCacheStore() *CacheStore {
	return &CacheStore{
		// default TTL tidak dipakai — tiap Set membawa TTL eksplisit
		cache: gocache.New(gocache.NoExpiration, 5*time.Minute),
	}
}

func AcademicKey(branchID, semesterID uuid.UUID) string {
	return fmt.Sprintf("%s%s:%s", prefixAcademic, branchID, semesterID)
}

func WidgetsKey(branchID, semesterID uuid.UUID) string {
	return fmt.Sprintf("%s%s:%s", prefixWidgets, branchID, semesterID)
}

// loadResult membawa flag asal nilai keluar dari flight singleflight,
// supaya waiter yang dilayani re-check tetap dilaporkan sebagai hit.
type loadResult struct {
	value  any
	cached bool
}

// GetOrLoad mengembalikan nilai cache kalau ada; kalau tidak, jalankan
// loader (deduped) dan simpan hasilnya dengan TTL yang diminta.
// Return kedua = true bila nilai berasal dari cache.
func (s *CacheStore) GetOrLoad(key string, ttl time.Duration, loader func() (any, error)) (any, bool, error) {
	if v, ok := s.cache.Get(key); ok {
		return v, true, nil
	}

	res, err, _ := s.group.Do(key, func() (any, error) {
		return s.loadOrReuse(key, ttl, loader)
	})
	if err != nil {
		return nil, false, err
	}
	lr := res.(loadResult)
	return lr.value, lr.cached, nil
}

// loadOrReuse jalan di dalam flight: re-check dulu — goroutine lain
// bisa saja sudah mengisi — baru load beneran.
func (s *CacheStore) loadOrReuse(key string, ttl time.Duration, loader func() (any, error)) (any, error) {
	if v, ok := s.cache.Get(key); ok {
		return loadResult{value: v, cached: true}, nil
	}
	v, err := loader()
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, v, ttl)
	return loadResult{value: v, cached: false}, nil
}

func (s *CacheStore) invalidatePrefix(prefix string) {
	for key := range s.cache.Items() {
		if strings.HasPrefix(key, prefix) {
			s.cache.Delete(key)
		}
	}
}

// InvalidateAll membuang seluruh isi cache.
func (s *CacheStore) InvalidateAll() { s.cache.Flush() }

// InvalidateAcademic membuang semua blok subjects+resources.
func (s *CacheStore) InvalidateAcademic() { s.invalidatePrefix(prefixAcademic) }

// InvalidateAcademicFor membuang blok akademik satu kombinasi.
func (s *CacheStore) InvalidateAcademicFor(branchID, semesterID uuid.UUID) {
	s.cache.Delete(AcademicKey(branchID, semesterID))
}

// InvalidateWidgets membuang semua blok widget.
func (s *CacheStore) InvalidateWidgets() { s.invalidatePrefix(prefixWidgets) }

// InvalidateWidgetsFor membuang blok widget satu kombinasi.
func (s *CacheStore) InvalidateWidgetsFor(branchID, semesterID uuid.UUID) {
	s.cache.Delete(WidgetsKey(branchID, semesterID))
}

// ItemCount: jumlah entri (dipakai endpoint invalidate utk pelaporan).
func (s *CacheStore) ItemCount() int { return s.cache.ItemCount() }
