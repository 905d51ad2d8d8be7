package axvector

import "github.com/cockroachdb/errors"

// reverseRange reverses s in place with a two-pointer swap.
func reverseRange[T any](s []T) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}

// Reverse reverses the order of all items in place.
func (v *Vector[T]) Reverse() *Vector[T] {
	reverseRange(v.vec)
	return v
}

// ReverseSection reverses the items of the half-open section [first, second)
// in place. Unlike the slicing operations, an out-of-range section is an
// error, not clamped.
func (v *Vector[T]) ReverseSection(first, second int) error {
	n := len(v.vec)
	i1 := first
	if i1 < 0 {
		i1 += n
	}
	i2 := second
	if i2 < 0 {
		i2 += n
	}
	if i1 < 0 || i1 >= n || i2 < 0 || i2 > n {
		return errors.Wrapf(ErrOutOfRange, "reverse section [%d, %d)", first, second)
	}
	if i1 < i2 {
		reverseRange(v.vec[i1:i2])
	}
	return nil
}

// Rotate rotates the items right by k mod Len() positions; negative k rotates
// left. Implemented with the three-reversal algorithm.
func (v *Vector[T]) Rotate(k int) *Vector[T] {
	n := len(v.vec)
	if n == 0 {
		return v
	}
	k %= n
	if k < 0 {
		k += n
	}
	if k == 0 {
		return v
	}
	reverseRange(v.vec)
	reverseRange(v.vec[:k])
	reverseRange(v.vec[k:])
	return v
}

// Shift unifies insertion and deletion around an anchor index.
//
// For n > 0 every item at and after anchor moves right by n slots and the
// vacated slots are zero-filled, reserving indexable space; the capacity
// grows as needed and a failed growth leaves the vector unmodified:
//
//	Shift([0 1 2 3 4 5 6], 2, +3) = [0 1 0 0 0 2 3 4 5 6]
//
// For n < 0 the min(-n, Len()-anchor) items starting at anchor are destructed
// and the gap is closed:
//
//	Shift([0 1 2 3 4 5 6], 2, -3) = [0 1 5 6]
func (v *Vector[T]) Shift(anchor, n int) error {
	if n == 0 {
		return nil
	}
	i := anchor
	if i < 0 {
		i += len(v.vec)
	}
	if i < 0 || i > len(v.vec) {
		return errors.Wrapf(ErrOutOfRange, "shift at %d", anchor)
	}
	if n > 0 {
		oldLen := len(v.vec)
		if err := v.reserve(oldLen + n); err != nil {
			return err
		}
		v.vec = v.vec[:oldLen+n]
		copy(v.vec[i+n:], v.vec[i:oldLen])
		clear(v.vec[i : i+n])
		return nil
	}
	m := min(-n, len(v.vec)-i)
	if v.dispose != nil {
		for j := i; j < i+m; j++ {
			v.dispose(v.vec[j])
		}
	}
	copy(v.vec[i:], v.vec[i+m:])
	clear(v.vec[len(v.vec)-m:])
	v.vec = v.vec[:len(v.vec)-m]
	return nil
}

// Copy returns a new vector with the same capacity, items, comparator and
// context. The destructor is intentionally not copied: the copy does not own
// items it did not originally own.
func (v *Vector[T]) Copy() (*Vector[T], error) {
	buf, mem, err := newBuf[T](v.alloc, cap(v.vec))
	if err != nil {
		return nil, err
	}
	buf = buf[:len(v.vec)]
	copy(buf, v.vec)
	return &Vector[T]{
		vec:   buf,
		mem:   mem,
		alloc: v.alloc,
		cmp:   v.cmp,
		ctx:   v.ctx,
	}, nil
}

// Slice returns a new vector holding a shallow copy of the resolved section.
// Both bounds are clamped; an inverted section yields an empty vector. The
// capacity holds exactly the copied range (minimum 1). Comparator and context
// are copied, the destructor is not.
func (v *Vector[T]) Slice(first, second int) (*Vector[T], error) {
	i1, i2 := v.section(first, second)
	n := max(0, i2-i1)
	buf, mem, err := newBuf[T](v.alloc, max(1, n))
	if err != nil {
		return nil, err
	}
	buf = buf[:n]
	copy(buf, v.vec[i1:i2])
	return &Vector[T]{
		vec:   buf,
		mem:   mem,
		alloc: v.alloc,
		cmp:   v.cmp,
		ctx:   v.ctx,
	}, nil
}

// RSlice is Slice with the copied items in reverse order.
func (v *Vector[T]) RSlice(first, second int) (*Vector[T], error) {
	v2, err := v.Slice(first, second)
	if err != nil {
		return nil, err
	}
	reverseRange(v2.vec)
	return v2, nil
}

// Extend moves all items of src onto the end of v and empties src without
// destructing anything; the items change owner. Extending a vector with
// itself is a no-op.
func (v *Vector[T]) Extend(src *Vector[T]) error {
	if v == src {
		return nil
	}
	if err := v.reserve(len(v.vec) + len(src.vec)); err != nil {
		return err
	}
	v.vec = append(v.vec, src.vec...)
	clear(src.vec)
	src.vec = src.vec[:0]
	return nil
}

// Concat copies all items of src onto the end of v; src is unchanged.
// Self-concatenation duplicates the current contents.
func (v *Vector[T]) Concat(src *Vector[T]) error {
	n := len(src.vec)
	if err := v.reserve(len(v.vec) + n); err != nil {
		return err
	}
	// src.vec aliases v.vec on self-concat; the copied region lies entirely
	// before the append position, so this stays correct.
	v.vec = append(v.vec, src.vec[:n]...)
	return nil
}
