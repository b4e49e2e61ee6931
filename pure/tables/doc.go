// Package tables provides pure.Table implementations backed by third-party
// stores: a bounded TinyLFU cache (ristretto), a transactional in-memory
// database (go-memdb) and a hash-sharded, lock-protected map.
package tables
