package axvector

import "iter"

// Map replaces each item in place with fn(item), front to back. No
// allocation takes place.
func (v *Vector[T]) Map(fn func(T) T) *Vector[T] {
	for i := range v.vec {
		v.vec[i] = fn(v.vec[i])
	}
	return v
}

// Filter keeps only the items satisfying pred, compacting survivors toward
// the front in their original relative order. The destructor runs on every
// rejected item. Single forward pass.
func (v *Vector[T]) Filter(pred func(T) bool) *Vector[T] {
	kept := 0
	for i := 0; i < len(v.vec); i++ {
		if pred(v.vec[i]) {
			v.vec[kept] = v.vec[i]
			kept++
		} else if v.dispose != nil {
			v.dispose(v.vec[i])
		}
	}
	clear(v.vec[kept:])
	v.vec = v.vec[:kept]
	return v
}

// Partition keeps the items satisfying pred and moves all other items into a
// newly allocated vector, preserving relative order on both sides. Nothing is
// destructed; the rejected items change owner. The sibling inherits the
// comparator, context and destructor. If allocating the sibling fails, the
// source is left completely unmodified.
func (v *Vector[T]) Partition(pred func(T) bool) (*Vector[T], error) {
	buf, mem, err := newBuf[T](v.alloc, max(1, len(v.vec)))
	if err != nil {
		return nil, err
	}
	sibling := &Vector[T]{
		vec:     buf,
		mem:     mem,
		alloc:   v.alloc,
		cmp:     v.cmp,
		ctx:     v.ctx,
		dispose: v.dispose,
	}
	kept := 0
	for i := 0; i < len(v.vec); i++ {
		if pred(v.vec[i]) {
			v.vec[kept] = v.vec[i]
			kept++
		} else {
			sibling.vec = append(sibling.vec, v.vec[i])
		}
	}
	clear(v.vec[kept:])
	v.vec = v.vec[:kept]
	return sibling, nil
}

// ForEach calls fn(index, item) for every item front to back until fn
// returns false or the items are exhausted.
func (v *Vector[T]) ForEach(fn func(index int, val T) bool) *Vector[T] {
	for i := 0; i < len(v.vec); i++ {
		if !fn(i, v.vec[i]) {
			return v
		}
	}
	return v
}

// RForEach is ForEach in reverse order.
func (v *Vector[T]) RForEach(fn func(index int, val T) bool) *Vector[T] {
	for i := len(v.vec) - 1; i >= 0; i-- {
		if !fn(i, v.vec[i]) {
			return v
		}
	}
	return v
}

// ForSection is ForEach over the resolved section [first, second). Indices
// passed to fn are absolute.
func (v *Vector[T]) ForSection(fn func(index int, val T) bool, first, second int) *Vector[T] {
	i1, i2 := v.section(first, second)
	for i := i1; i < i2; i++ {
		if !fn(i, v.vec[i]) {
			return v
		}
	}
	return v
}

// Iter provides an iterator function compatible with range loops.
//
// Example:
//
//	for index, val := range v.Iter() {
//		// do something
//	}
func (v *Vector[T]) Iter() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < len(v.vec); i++ {
			if !yield(i, v.vec[i]) {
				return
			}
		}
	}
}

// Any reports whether pred holds for at least one item. False on an empty
// vector. Stops at the first true result.
func (v *Vector[T]) Any(pred func(T) bool) bool {
	for i := 0; i < len(v.vec); i++ {
		if pred(v.vec[i]) {
			return true
		}
	}
	return false
}

// All reports whether pred holds for every item. True on an empty vector.
// Stops at the first false result.
func (v *Vector[T]) All(pred func(T) bool) bool {
	for i := 0; i < len(v.vec); i++ {
		if !pred(v.vec[i]) {
			return false
		}
	}
	return true
}

// Count returns the number of items comparing equal to val under the
// comparator. Full linear scan.
func (v *Vector[T]) Count(val T) int {
	n := 0
	for i := 0; i < len(v.vec); i++ {
		if v.cmp(val, v.vec[i]) == 0 {
			n++
		}
	}
	return n
}

// Compare reports whether both vectors have the same length and every
// corresponding pair of items compares equal under v's comparator.
// Short-circuits on a length mismatch or the first inequality.
func (v *Vector[T]) Compare(other *Vector[T]) bool {
	if len(v.vec) != len(other.vec) {
		return false
	}
	for i := 0; i < len(v.vec); i++ {
		if v.cmp(v.vec[i], other.vec[i]) != 0 {
			return false
		}
	}
	return true
}

// Min returns the minimum item under the comparator through a linear scan,
// or false on an empty vector.
func (v *Vector[T]) Min() (T, bool) {
	if len(v.vec) == 0 {
		var zero T
		return zero, false
	}
	m := v.vec[0]
	for i := 1; i < len(v.vec); i++ {
		if v.cmp(v.vec[i], m) < 0 {
			m = v.vec[i]
		}
	}
	return m, true
}

// Max returns the maximum item under the comparator through a linear scan,
// or false on an empty vector.
func (v *Vector[T]) Max() (T, bool) {
	if len(v.vec) == 0 {
		var zero T
		return zero, false
	}
	m := v.vec[0]
	for i := 1; i < len(v.vec); i++ {
		if v.cmp(v.vec[i], m) > 0 {
			m = v.vec[i]
		}
	}
	return m, true
}
