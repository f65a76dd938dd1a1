package unionfind

// Keyed is a disjoint-set forest over comparable keys. Keys are indexed in
// the order they are first seen.
type Keyed[K comparable] struct {
	uf    *UnionFind
	index map[K]int
	keys  []K
}

// NewKeyed returns a forest with one singleton set per key; duplicate
// keys are added once.
func NewKeyed[K comparable](keys ...K) *Keyed[K] {
	k := &Keyed[K]{
		uf:    New(0),
		index: make(map[K]int, len(keys)),
		keys:  make([]K, 0, len(keys)),
	}
	for _, key := range keys {
		k.Add(key)
	}

	return k
}

// Add inserts key as a singleton set and reports whether it was new.
func (k *Keyed[K]) Add(key K) bool {
	if _, ok := k.index[key]; ok {
		return false
	}
	k.index[key] = k.uf.Add()
	k.keys = append(k.keys, key)

	return true
}

// Has reports whether key has been added.
func (k *Keyed[K]) Has(key K) bool {
	_, ok := k.index[key]
	return ok
}

// Find returns the representative key of key's set.
func (k *Keyed[K]) Find(key K) (K, bool) {
	i, ok := k.index[key]
	if !ok {
		var zero K
		return zero, false
	}

	return k.keys[k.uf.Find(i)], true
}

// Union merges the sets of a and b, adding either key if unseen.
// It returns false if they were already connected.
func (k *Keyed[K]) Union(a, b K) bool {
	k.Add(a)
	k.Add(b)

	return k.uf.Union(k.index[a], k.index[b])
}

// Connected reports whether a and b are known and share a set.
func (k *Keyed[K]) Connected(a, b K) bool {
	ia, okA := k.index[a]
	ib, okB := k.index[b]

	return okA && okB && k.uf.Connected(ia, ib)
}

// Count returns the number of disjoint sets.
func (k *Keyed[K]) Count() int { return k.uf.Count() }

// Len returns the number of keys.
func (k *Keyed[K]) Len() int { return len(k.keys) }

// Groups returns the sets in first-seen order, each group in first-seen
// order too.
func (k *Keyed[K]) Groups() [][]K {
	idx := k.uf.Groups()
	out := make([][]K, len(idx))
	for gi, g := range idx {
		out[gi] = make([]K, len(g))
		for j, i := range g {
			out[gi][j] = k.keys[i]
		}
	}

	return out
}
