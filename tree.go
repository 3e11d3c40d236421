// Package fenwick provides Fenwick trees over integers for prefix sums,
// prefix maxima and prefix minima.
//
// A Fenwick tree, or binary indexed tree, stores a list of N numbers as an
// implicit tree in a flat slice. Slot i (1-based) holds the aggregate of the
// lowbit(i) elements ending at i, where lowbit(i) = i & -i is the value of
// the lowest set bit. Both point updates and prefix queries touch at most
// one slot per bit of N, so each runs in O(log n) time.
//
// For example, the prefix aggregate of the first 13 elements is assembled
// from slots 1101₂, 1100₂ and 1000₂, which cover the elements [13],
// [9, 12] and [1, 8] respectively.
//
// The aggregation is chosen with an Operator type parameter: Sum, Max or
// Min. Sum trees accumulate deltas and can be inverted, so Range, Get and
// Set are available for them. Max and Min trees record the running extreme
// of every value ever applied; a later update can never undo an earlier,
// more extreme one.
//
// Trees are not safe for concurrent use.
package fenwick

import "fmt"

// Tree is a fixed-capacity Fenwick tree aggregating values of type T with
// the operator O.
type Tree[T Integer, O Operator[T]] struct {
	op O
	n  int

	// tree[0] is unused so that the bit arithmetic works on 1-based
	// positions; tree[i] aggregates the elements (i - lowbit(i), i].
	tree []T
}

// New creates a tree with n elements, each set to the identity of O.
func New[T Integer, O Operator[T]](n int) (*Tree[T, O], error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, n)
	}
	t := &Tree[T, O]{n: n, tree: make([]T, n+1)}
	t.Reset()
	return t, nil
}

// NewFrom creates a tree with len(values) elements and applies Update(i,
// values[i]) for every i in ascending order.
func NewFrom[T Integer, O Operator[T]](values []T) (*Tree[T, O], error) {
	t, err := New[T, O](len(values))
	if err != nil {
		return nil, err
	}
	for i, v := range values {
		t.update(i, v)
	}
	return t, nil
}

// Build creates a tree holding values in O(n) time, by pushing every slot
// into its parent exactly once instead of replaying n updates.
func Build[T Integer, O Operator[T]](values []T) (*Tree[T, O], error) {
	t, err := New[T, O](len(values))
	if err != nil {
		return nil, err
	}
	for i := 1; i <= t.n; i++ {
		t.tree[i] = t.op.Combine(t.tree[i], values[i-1])
		if j := i + lowbit(i); j <= t.n {
			t.tree[j] = t.op.Combine(t.tree[j], t.tree[i])
		}
	}
	return t, nil
}

// NewSum creates a prefix-sum tree with n zero elements.
func NewSum[T Integer](n int) (*Tree[T, Sum[T]], error) {
	return New[T, Sum[T]](n)
}

// NewMax creates a prefix-maximum tree with n elements.
func NewMax[T Integer](n int) (*Tree[T, Max[T]], error) {
	return New[T, Max[T]](n)
}

// NewMin creates a prefix-minimum tree with n elements.
func NewMin[T Integer](n int) (*Tree[T, Min[T]], error) {
	return New[T, Min[T]](n)
}

func lowbit(i int) int {
	return i & -i
}

// Len returns the number of elements in the tree.
func (t *Tree[T, O]) Len() int {
	return t.n
}

func (t *Tree[T, O]) checkIndex(i int) error {
	if i < 0 || i >= t.n {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, t.n)
	}
	return nil
}

// Update combines value into the element at index i. For Sum trees value is
// a delta; for Max and Min trees it is a candidate extreme.
func (t *Tree[T, O]) Update(i int, value T) error {
	if err := t.checkIndex(i); err != nil {
		return err
	}
	t.update(i, value)
	return nil
}

func (t *Tree[T, O]) update(i int, value T) {
	for i++; i <= t.n; i += lowbit(i) {
		t.tree[i] = t.op.Combine(t.tree[i], value)
	}
}

// Query returns the aggregate of the elements from index 0 to index i,
// inclusive.
func (t *Tree[T, O]) Query(i int) (T, error) {
	if err := t.checkIndex(i); err != nil {
		return t.op.Identity(), err
	}
	return t.prefix(i + 1), nil
}

// prefix aggregates the first k elements.
func (t *Tree[T, O]) prefix(k int) T {
	acc := t.op.Identity()
	for ; k > 0; k -= lowbit(k) {
		acc = t.op.Combine(acc, t.tree[k])
	}
	return acc
}

// Total returns the aggregate of every element.
func (t *Tree[T, O]) Total() T {
	return t.prefix(t.n)
}

// Reset sets every element back to the identity of O.
func (t *Tree[T, O]) Reset() {
	id := t.op.Identity()
	for i := range t.tree {
		t.tree[i] = id
	}
}

// Search returns the smallest index i for which f(Query(i)) is true, or
// Len() if there is none. Like sort.Search, it assumes f is false for some
// (possibly empty) run of prefixes and true for the rest, which holds for
// Max and Min trees and for Sum trees without negative elements.
func (t *Tree[T, O]) Search(f func(T) bool) int {
	step := 1
	for step<<1 <= t.n {
		step <<= 1
	}
	pos, acc := 0, t.op.Identity()
	for ; step > 0; step >>= 1 {
		if next := pos + step; next <= t.n {
			if v := t.op.Combine(acc, t.tree[next]); !f(v) {
				pos, acc = next, v
			}
		}
	}
	return pos
}

// Range returns the aggregate of the elements from index i to index j-1.
// The empty range i == j yields the identity.
func Range[T Integer, O Invertible[T]](t *Tree[T, O], i, j int) (T, error) {
	if i < 0 || j > t.n || i > j {
		return t.op.Identity(), fmt.Errorf("%w: [%d, %d) not in [0, %d)", ErrIndexOutOfRange, i, j, t.n)
	}
	return t.op.Uncombine(t.prefix(j), t.prefix(i)), nil
}

// Get returns the element at index i.
func Get[T Integer, O Invertible[T]](t *Tree[T, O], i int) (T, error) {
	if err := t.checkIndex(i); err != nil {
		return t.op.Identity(), err
	}
	return Range(t, i, i+1)
}

// Set sets the element at index i to value.
func Set[T Integer, O Invertible[T]](t *Tree[T, O], i int, value T) error {
	cur, err := Get(t, i)
	if err != nil {
		return err
	}
	t.update(i, t.op.Uncombine(value, cur))
	return nil
}
