package tables

import (
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
)

type shard[K comparable, V any] struct {
	mu sync.RWMutex
	m  map[K]V
}

// Sharded is an unbounded pure.Table safe for concurrent use.
// Keys are spread over shards by the xxhash of their string form.
type Sharded[K comparable, V any] struct {
	shards []*shard[K, V]
	keyFn  func(K) string
}

// NewSharded creates a table with numShards shards (at least one).
// A nil keyFn formats keys with fmt.Sprint.
func NewSharded[K comparable, V any](numShards int, keyFn func(K) string) *Sharded[K, V] {
	if numShards < 1 {
		numShards = 1
	}
	if keyFn == nil {
		keyFn = func(k K) string { return fmt.Sprint(k) }
	}
	shards := make([]*shard[K, V], numShards)
	for i := range shards {
		shards[i] = &shard[K, V]{m: make(map[K]V)}
	}
	return &Sharded[K, V]{shards: shards, keyFn: keyFn}
}

func (s *Sharded[K, V]) shardOf(key K) *shard[K, V] {
	idx := xxhash.Sum64String(s.keyFn(key)) % uint64(len(s.shards))
	return s.shards[idx]
}

func (s *Sharded[K, V]) Get(key K) (v V, ok bool, err error) {
	sh := s.shardOf(key)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	v, ok = sh.m[key]
	return
}

func (s *Sharded[K, V]) Set(key K, value V) error {
	sh := s.shardOf(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	sh.m[key] = value
	return nil
}

func (s *Sharded[K, V]) Len() int {
	n := 0
	for _, sh := range s.shards {
		sh.mu.RLock()
		n += len(sh.m)
		sh.mu.RUnlock()
	}
	return n
}
