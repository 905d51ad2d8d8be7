package axvector

import "iter"

// Snapshot is a lightweight, allocation-free iteration cursor capturing the
// buffer and length of a vector at a point in time. It does not track
// subsequent mutation of its source; using a snapshot after a structural
// mutation of the source is the caller's responsibility to avoid.
type Snapshot[T any] struct {
	items []T
}

// Snapshot captures the current buffer and length.
func (v *Vector[T]) Snapshot() Snapshot[T] {
	return Snapshot[T]{items: v.vec}
}

// Len returns the length at capture time.
func (s Snapshot[T]) Len() int {
	return len(s.items)
}

// At returns the item at the given signed index within the captured range.
func (s Snapshot[T]) At(index int) (T, bool) {
	if index < 0 {
		index += len(s.items)
	}
	if index < 0 || index >= len(s.items) {
		var zero T
		return zero, false
	}
	return s.items[index], true
}

// Range iterates over the captured items using a callback function.
func (s Snapshot[T]) Range(fn func(index int, val T) bool) {
	for i := 0; i < len(s.items); i++ {
		if !fn(i, s.items[i]) {
			return
		}
	}
}

// Iter provides an iterator function compatible with range loops.
func (s Snapshot[T]) Iter() iter.Seq2[int, T] {
	return s.Range
}
