package tables

import (
	ristretto "github.com/dgraph-io/ristretto/v2"
)

type key interface {
	ristretto.Key
	comparable
}

// Ristretto is a bounded pure.Table. Admission is decided by ristretto's
// TinyLFU policy, so a Set may be dropped and a Get may miss a value that was
// stored earlier. A memoizer backed by it recomputes in that case.
type Ristretto[K key, V any] struct {
	cache *ristretto.Cache[K, V]
}

// NewRistretto creates a table holding roughly maxEntries results.
func NewRistretto[K key, V any](maxEntries int64) (*Ristretto[K, V], error) {
	cache, err := ristretto.NewCache(&ristretto.Config[K, V]{
		NumCounters: 10 * maxEntries, // number of keys to track frequency of.
		MaxCost:     maxEntries,      // every entry costs 1.
		BufferItems: 64,              // number of keys per Get buffer.

		// cost counts entries, not bytes
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	return &Ristretto[K, V]{cache: cache}, nil
}

func (r *Ristretto[K, V]) Get(key K) (v V, ok bool, err error) {
	v, ok = r.cache.Get(key)
	return
}

func (r *Ristretto[K, V]) Set(key K, value V) error {
	r.cache.Set(key, value, 1)
	// make the write visible to the next Get
	r.cache.Wait()
	return nil
}

func (r *Ristretto[K, V]) Delete(key K) error {
	r.cache.Del(key)
	r.cache.Wait()
	return nil
}

func (r *Ristretto[K, V]) Close() {
	r.cache.Close()
}
