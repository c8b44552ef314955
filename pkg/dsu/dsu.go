// Package dsu provides an array-backed disjoint-set union (union-find) over
// dense integer elements.
//
// Elements are the integers 0..n-1, which lets the maze generators use cell
// indices directly without any mapping. Find applies path compression and
// Union merges by rank, so a full generation pass over H*W cells runs in
// near-linear time.
//
// Rank ties are broken deterministically: the root of the first argument is
// attached under the root of the second, and the second root's rank grows by
// one. The rule is part of the DSU contract, so the forest shape, and with it
// every Find result, is fixed for a given union sequence.
package dsu

// DSU partitions the integers [0, n) into disjoint sets.
//
// The zero value is an empty structure; use [New] to create one with
// elements. A DSU is not safe for concurrent use.
type DSU struct {
	parent []int
	rank   []int
}

// New returns a DSU where each of the n elements is its own singleton set.
func New(n int) *DSU {
	d := &DSU{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range d.parent {
		d.parent[i] = i
		d.rank[i] = 1
	}
	return d
}

// Len returns the number of elements.
func (d *DSU) Len() int { return len(d.parent) }

// Find returns the root of the set containing x. Every node visited on the way
// is re-pointed at the root. Find panics if x is out of range.
func (d *DSU) Find(x int) int {
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[x] != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}
	return root
}

// Union merges the sets containing a and b. It reports whether a merge
// happened, i.e. false means a and b were already connected.
func (d *DSU) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	switch {
	case d.rank[ra] > d.rank[rb]:
		d.parent[rb] = ra
	case d.rank[ra] < d.rank[rb]:
		d.parent[ra] = rb
	default:
		d.parent[ra] = rb
		d.rank[rb]++
	}
	return true
}

// Connected reports whether a and b belong to the same set.
func (d *DSU) Connected(a, b int) bool {
	return d.Find(a) == d.Find(b)
}
