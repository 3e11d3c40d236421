package fenwick

import "unsafe"

// Integer is the set of element types a Tree can aggregate.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Operator is a commutative, associative merge together with its identity
// element. Implementations are expected to be usable as zero values, since a
// Tree never constructs them explicitly.
type Operator[T Integer] interface {
	Identity() T
	Combine(a, b T) T
}

// Invertible is an Operator whose combine can be undone, which is what makes
// range and point queries possible on top of prefix queries.
type Invertible[T Integer] interface {
	Operator[T]
	// Uncombine returns x such that Combine(part, x) == total.
	Uncombine(total, part T) T
}

// Sum accumulates deltas. Overflow wraps around like ordinary Go arithmetic.
type Sum[T Integer] struct{}

func (Sum[T]) Identity() T { return 0 }

func (Sum[T]) Combine(a, b T) T { return a + b }

func (Sum[T]) Uncombine(total, part T) T { return total - part }

// Max keeps the largest value ever seen. Its identity is the smallest value
// representable by T.
type Max[T Integer] struct{}

func (Max[T]) Identity() T {
	lo, _ := bounds[T]()
	return lo
}

func (Max[T]) Combine(a, b T) T {
	if b > a {
		return b
	}
	return a
}

// Min keeps the smallest value ever seen. Its identity is the largest value
// representable by T.
type Min[T Integer] struct{}

func (Min[T]) Identity() T {
	_, hi := bounds[T]()
	return hi
}

func (Min[T]) Combine(a, b T) T {
	if b < a {
		return b
	}
	return a
}

// bounds returns the smallest and largest values of T.
func bounds[T Integer]() (lo, hi T) {
	var zero T
	if ^zero > zero {
		// unsigned
		return zero, ^zero
	}
	lo = T(1) << (unsafe.Sizeof(zero)*8 - 1)
	return lo, ^lo
}
