package pure

// RotatingTable is a bounded table made of two generations.
// Writes go to the head generation; once it holds maxSize entries the
// generations swap and the new head starts empty. Reads consult the head
// first and then the previous generation, so at most 2*maxSize entries are
// retained.
type RotatingTable[K comparable, V any] struct {
	memos   [2]map[K]V
	headIdx uint32
	size    uint32
	maxSize uint32
}

func NewRotatingTable[K comparable, V any](maxSize uint32) *RotatingTable[K, V] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	return &RotatingTable[K, V]{
		memos:   [2]map[K]V{{}, {}},
		maxSize: maxSize,
	}
}

func (t *RotatingTable[K, V]) Get(key K) (v V, ok bool, err error) {
	if v, ok = t.memos[t.headIdx][key]; ok {
		return
	}
	v, ok = t.memos[1-t.headIdx][key]
	return
}

func (t *RotatingTable[K, V]) Set(key K, value V) error {
	head := t.memos[t.headIdx]
	if _, exists := head[key]; exists {
		head[key] = value
		return nil
	}
	if t.size >= t.maxSize {
		t.headIdx = 1 - t.headIdx
		clear(t.memos[t.headIdx])
		t.size = 0
	}
	t.memos[t.headIdx][key] = value
	t.size++
	return nil
}

// Len reports the number of entries currently retained across both generations.
func (t *RotatingTable[K, V]) Len() int {
	n := len(t.memos[t.headIdx])
	for k := range t.memos[1-t.headIdx] {
		if _, shadowed := t.memos[t.headIdx][k]; !shadowed {
			n++
		}
	}
	return n
}
