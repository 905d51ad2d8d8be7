package axvector

import "slices"

// Sort sorts all items in place using the comparator. The sort is not stable.
// The default equality-only comparator carries no order; install Ordered or a
// custom comparator before sorting.
func (v *Vector[T]) Sort() *Vector[T] {
	slices.SortFunc(v.vec, v.cmp)
	return v
}

// SortSection sorts the resolved section [first, second) in place using the
// comparator. Bounds are clamped.
func (v *Vector[T]) SortSection(first, second int) *Vector[T] {
	i1, i2 := v.section(first, second)
	if i1 < i2 {
		slices.SortFunc(v.vec[i1:i2], v.cmp)
	}
	return v
}

// IsSorted reports whether every adjacent pair of items compares
// non-decreasing under the comparator. Empty and single-item vectors are
// trivially sorted.
func (v *Vector[T]) IsSorted() bool {
	for i := 1; i < len(v.vec); i++ {
		if v.cmp(v.vec[i-1], v.vec[i]) > 0 {
			return false
		}
	}
	return true
}

// LinearSearch returns the index of the first item comparing equal to val
// under the comparator, or -1 if there is none.
func (v *Vector[T]) LinearSearch(val T) int {
	for i := 0; i < len(v.vec); i++ {
		if v.cmp(val, v.vec[i]) == 0 {
			return i
		}
	}
	return -1
}

// LinearSearchSection is LinearSearch within the section [first, second).
// Returns -1 if no item matches or if either resolved bound is out of range.
func (v *Vector[T]) LinearSearchSection(val T, first, second int) int {
	n := len(v.vec)
	i1 := first
	if i1 < 0 {
		i1 += n
	}
	i2 := second
	if i2 < 0 {
		i2 += n
	}
	if i1 < 0 || i1 > n || i2 < 0 || i2 > n {
		return -1
	}
	for i := i1; i < i2; i++ {
		if v.cmp(val, v.vec[i]) == 0 {
			return i
		}
	}
	return -1
}

// BinarySearch returns the index of some item comparing equal to val, or -1.
// The items must already be sorted under the comparator; the vector does not
// verify this and the result is unreliable otherwise.
func (v *Vector[T]) BinarySearch(val T) int {
	lo, hi := 0, len(v.vec)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch c := v.cmp(val, v.vec[mid]); {
		case c == 0:
			return mid
		case c < 0:
			hi = mid
		default:
			lo = mid + 1
		}
	}
	return -1
}

// Contains reports whether some item compares equal to val under the
// comparator. Passing true for sorted uses binary instead of linear search
// and requires the items to be sorted.
func (v *Vector[T]) Contains(val T, sorted bool) bool {
	if sorted {
		return v.BinarySearch(val) != -1
	}
	return v.LinearSearch(val) != -1
}
