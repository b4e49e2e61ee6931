package tables

import (
	"fmt"
	"iter"

	memdb "github.com/hashicorp/go-memdb"

	"github.com/on-the-ground/pure_ive_go/internal/helper"
)

const (
	memoTable = "memo"
	idIndex   = "id"
)

type memoEntry[K comparable, V any] struct {
	ID     string
	Input  K
	Output V
}

// MemDB is a pure.Table stored in a hashicorp/go-memdb database.
// Entries are indexed by the string form of their key; keyFn must map distinct
// keys to distinct strings.
type MemDB[K comparable, V any] struct {
	db    *memdb.MemDB
	keyFn func(K) string
}

// NewMemDB creates an empty table. A nil keyFn formats keys with fmt.Sprint.
func NewMemDB[K comparable, V any](keyFn func(K) string) (*MemDB[K, V], error) {
	if keyFn == nil {
		keyFn = func(k K) string { return fmt.Sprint(k) }
	}
	schema := &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			memoTable: {
				Name: memoTable,
				Indexes: map[string]*memdb.IndexSchema{
					idIndex: {
						Name:    idIndex,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
				},
			},
		},
	}
	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to create memo database: %w", err)
	}
	return &MemDB[K, V]{db: db, keyFn: keyFn}, nil
}

func (m *MemDB[K, V]) Get(key K) (v V, ok bool, err error) {
	txn := m.db.Txn(false)
	defer txn.Abort()

	entry, err := helper.GetTypedValueOf[*memoEntry[K, V]](func() (any, error) {
		raw, err := txn.First(memoTable, idIndex, m.keyFn(key))
		if raw == nil && err == nil {
			return (*memoEntry[K, V])(nil), nil
		}
		return raw, err
	})
	if err != nil || entry == nil {
		return v, false, err
	}
	return entry.Output, true, nil
}

func (m *MemDB[K, V]) Set(key K, value V) error {
	txn := m.db.Txn(true)
	defer txn.Abort()

	if err := txn.Insert(memoTable, &memoEntry[K, V]{ID: m.keyFn(key), Input: key, Output: value}); err != nil {
		return fmt.Errorf("failed to insert memo entry: %w", err)
	}
	txn.Commit()
	return nil
}

// All iterates over a read snapshot of the table, ordered by key string.
func (m *MemDB[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		txn := m.db.Txn(false)
		defer txn.Abort()

		it, err := txn.Get(memoTable, idIndex)
		if err != nil {
			return
		}
		for {
			entry, ok := helper.GetTypedValueOf2[*memoEntry[K, V]](func() (any, bool) {
				raw := it.Next()
				return raw, raw != nil
			})
			if !ok {
				return
			}
			if !yield(entry.Input, entry.Output) {
				return
			}
		}
	}
}
