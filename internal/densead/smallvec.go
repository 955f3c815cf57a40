package densead

// smallVecInline is the number of scalar slots a dynamic evaluation stores
// without touching the heap: the value plus up to smallVecInline-1
// derivatives.
const smallVecInline = 8

// smallVec is a fixed-length scalar sequence with a small-buffer
// optimization: lengths up to smallVecInline live in the embedded array,
// longer ones spill to a heap allocation. The length is set once at
// construction and never changes.
//
// A smallVec embedded in a struct gives that struct the usual Go semantics
// of a slice-bearing value: plain assignment of a spilled vector shares the
// heap buffer (a move, in practice), clone() duplicates it.
type smallVec[T Scalar] struct {
	n      int
	inline [smallVecInline]T
	spill  []T
}

// newSmallVec returns a zero-filled vector of length n.
func newSmallVec[T Scalar](n int) smallVec[T] {
	v := smallVec[T]{n: n}
	if n > smallVecInline {
		v.spill = make([]T, n)
	}
	return v
}

func (v *smallVec[T]) len() int {
	return v.n
}

// data returns the live scalar sequence, wherever it is stored.
func (v *smallVec[T]) data() []T {
	if v.spill != nil {
		return v.spill
	}
	return v.inline[:v.n]
}

// clone returns a vector of the same length with independently owned
// storage.
func (v *smallVec[T]) clone() smallVec[T] {
	c := newSmallVec[T](v.n)
	copy(c.data(), v.data())
	return c
}

// spilled reports whether the vector fell back to heap storage.
func (v *smallVec[T]) spilled() bool {
	return v.spill != nil
}
