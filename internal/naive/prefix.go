// Package naive provides a list of precomputed prefix aggregates.
//
// Compared to a Fenwick tree, a prefix array answers a prefix query in O(1)
// time but pays O(n) for every update, since each prefix at or after the
// updated index has to be recombined. It serves as the baseline the tree is
// measured against and as a reference when checking its results.
package naive

// Prefix holds prefix[k] = combine(v[0], ..., v[k]) for an underlying list v
// of updates.
type Prefix[T any] struct {
	prefix  []T
	combine func(a, b T) T
}

// New creates a list of n prefixes, each set to identity.
func New[T any](n int, identity T, combine func(a, b T) T) *Prefix[T] {
	p := make([]T, n)
	for i := range p {
		p[i] = identity
	}
	return &Prefix[T]{
		prefix:  p,
		combine: combine,
	}
}

// Len returns the number of elements in the list.
func (p *Prefix[T]) Len() int {
	return len(p.prefix)
}

// Update combines v into the element at index i and every prefix after it.
func (p *Prefix[T]) Update(i int, v T) {
	for ; i < len(p.prefix); i++ {
		p.prefix[i] = p.combine(p.prefix[i], v)
	}
}

// Query returns the aggregate of the elements from index 0 to index i.
func (p *Prefix[T]) Query(i int) T {
	return p.prefix[i]
}
