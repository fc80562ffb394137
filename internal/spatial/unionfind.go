package spatial

// DisjointSet is an array-based union-find structure with path compression
// and union by rank. Elements are indices 0..n-1.
type DisjointSet struct {
	parent []int
	rank   []int
}

// NewDisjointSet creates a disjoint set of n singleton elements
func NewDisjointSet(n int) *DisjointSet {
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range d.parent {
		d.parent[i] = i
	}
	return d
}

// Find returns the representative of the set containing i, compressing the
// path along the way.
func (d *DisjointSet) Find(i int) int {
	for d.parent[i] != i {
		d.parent[i] = d.parent[d.parent[i]]
		i = d.parent[i]
	}
	return i
}

// Union merges the sets containing a and b
func (d *DisjointSet) Union(a, b int) {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return
	}

	if d.rank[ra] < d.rank[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	if d.rank[ra] == d.rank[rb] {
		d.rank[ra]++
	}
}

// Groups returns the member indices of every set, keyed by representative.
// Members appear in ascending index order.
func (d *DisjointSet) Groups() map[int][]int {
	groups := make(map[int][]int)
	for i := range d.parent {
		root := d.Find(i)
		groups[root] = append(groups[root], i)
	}
	return groups
}
