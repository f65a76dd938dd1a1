package unionfind

// UnionFind is a disjoint-set forest over the elements 0..n-1.
type UnionFind struct {
	parent []int
	rank   []int // upper bound on tree height, meaningful at roots only
	size   []int // element count, meaningful at roots only
	count  int
}

// New returns a forest of n singleton sets.
func New(n int) *UnionFind {
	if n < 0 {
		n = 0
	}
	uf := &UnionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf
}

// Add appends a new singleton element and returns its index.
func (uf *UnionFind) Add() int {
	i := len(uf.parent)
	uf.parent = append(uf.parent, i)
	uf.rank = append(uf.rank, 0)
	uf.size = append(uf.size, 1)
	uf.count++

	return i
}

// Find returns the representative of x's set, or -1 if x is out of range.
// Every node on the path from x to the root is re-parented to the root.
func (uf *UnionFind) Find(x int) int {
	if x < 0 || x >= len(uf.parent) {
		return -1
	}
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for x != root {
		x, uf.parent[x] = uf.parent[x], root
	}

	return root
}

// Union merges the sets holding x and y. It returns false if they were
// already in the same set or either element is out of range.
func (uf *UnionFind) Union(x, y int) bool {
	rx, ry := uf.Find(x), uf.Find(y)
	if rx < 0 || ry < 0 || rx == ry {
		return false
	}
	if uf.rank[rx] < uf.rank[ry] {
		rx, ry = ry, rx
	}
	uf.parent[ry] = rx
	uf.size[rx] += uf.size[ry]
	if uf.rank[rx] == uf.rank[ry] {
		uf.rank[rx]++
	}
	uf.count--

	return true
}

// Connected reports whether x and y are in the same set.
func (uf *UnionFind) Connected(x, y int) bool {
	rx := uf.Find(x)
	return rx >= 0 && rx == uf.Find(y)
}

// SetSize returns the number of elements in x's set, or 0 if x is out of
// range.
func (uf *UnionFind) SetSize(x int) int {
	r := uf.Find(x)
	if r < 0 {
		return 0
	}

	return uf.size[r]
}

// Count returns the number of disjoint sets.
func (uf *UnionFind) Count() int { return uf.count }

// Len returns the number of elements.
func (uf *UnionFind) Len() int { return len(uf.parent) }

// Groups returns the sets, each listed in ascending element order, with
// groups ordered by their smallest element.
func (uf *UnionFind) Groups() [][]int {
	index := make(map[int]int, uf.count)
	groups := make([][]int, 0, uf.count)
	for x := range uf.parent {
		r := uf.Find(x)
		gi, ok := index[r]
		if !ok {
			gi = len(groups)
			index[r] = gi
			groups = append(groups, nil)
		}
		groups[gi] = append(groups[gi], x)
	}

	return groups
}
