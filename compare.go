package axvector

import (
	"reflect"

	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
)

// CompareFunc is a three-way comparison over stored items. It must implement a
// strict weak ordering for Sort and BinarySearch to be meaningful. Count,
// Compare and the linear searches only consult it for equality (result zero).
type CompareFunc[T any] func(a, b T) int

// defaultCompare is the comparator installed when none is supplied. It only
// distinguishes equal from unequal (zero vs. one) and carries no order, so it
// is usable for Count, Compare and the linear searches but not for Sort or
// BinarySearch. Supply Ordered or a custom comparator for those.
func defaultCompare[T any](a, b T) int {
	if reflect.DeepEqual(a, b) {
		return 0
	}
	return 1
}

// Ordered returns a comparator for any ordered type.
func Ordered[T constraints.Ordered]() CompareFunc[T] {
	return func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
}

// FromGods adapts a gods-style comparator (func(a, b interface{}) int) so
// comparators written for github.com/emirpasic/gods containers can drive a
// Vector unchanged.
func FromGods[T any](cmp utils.Comparator) CompareFunc[T] {
	return func(a, b T) int {
		return cmp(a, b)
	}
}
