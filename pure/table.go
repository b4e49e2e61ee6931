package pure

// Table stores the outputs of a memoized computation keyed by its input.
// Implementations may be bounded and evict entries.
type Table[K comparable, V any] interface {
	Get(key K) (v V, ok bool, err error)
	Set(key K, value V) error
}

type mapTable[K comparable, V any] struct {
	m map[K]V
}

// NewMapTable returns an unbounded table backed by a plain map.
// It is the default table of every Cacher.
func NewMapTable[K comparable, V any]() Table[K, V] {
	return mapTable[K, V]{m: make(map[K]V)}
}

func (t mapTable[K, V]) Get(key K) (v V, ok bool, err error) {
	v, ok = t.m[key]
	return
}

func (t mapTable[K, V]) Set(key K, value V) error {
	t.m[key] = value
	return nil
}
