package axvector

import "iter"

// Overlay is a vector over a caller-owned buffer. It never allocates,
// reallocates or frees that buffer: the capacity is locked for good and every
// operation that would have to grow it reports ErrLocked. Apart from that it
// supports the full algorithm suite of Vector. Destroy honors the destructor
// over the remaining items but leaves the buffer untouched.
//
// Derived vectors (Copy, Slice, RSlice, Partition) are ordinary owned
// vectors, allocated through the overlay's configured Allocator.
type Overlay[T any] struct {
	v Vector[T]
}

// NewOverlay wraps a caller-owned buffer. The logical length is len(buf) and
// the capacity is cap(buf). WithCapacity is meaningless here and ignored;
// WithAllocator only affects derived vectors.
func NewOverlay[T any](buf []T, opts ...Option[T]) *Overlay[T] {
	cfg := config[T]{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.cmp == nil {
		cfg.cmp = defaultCompare[T]
	}
	return &Overlay[T]{v: Vector[T]{
		vec:     buf,
		alloc:   cfg.alloc,
		cmp:     cfg.cmp,
		dispose: cfg.dispose,
		ctx:     cfg.ctx,
		locked:  true,
		overlay: true,
	}}
}

func (o *Overlay[T]) Len() int { return o.v.Len() }

func (o *Overlay[T]) Cap() int { return o.v.Cap() }

func (o *Overlay[T]) Data() []T { return o.v.Data() }

func (o *Overlay[T]) At(index int) (T, bool) { return o.v.At(index) }

func (o *Overlay[T]) Set(index int, val T) error { return o.v.Set(index, val) }

func (o *Overlay[T]) Swap(index1, index2 int) error { return o.v.Swap(index1, index2) }

// Push appends within the borrowed buffer's capacity; a full overlay reports
// ErrLocked instead of growing.
func (o *Overlay[T]) Push(val T) error { return o.v.Push(val) }

func (o *Overlay[T]) Pop() (T, bool) { return o.v.Pop() }

func (o *Overlay[T]) Top() (T, bool) { return o.v.Top() }

func (o *Overlay[T]) Discard(n int) *Overlay[T] {
	o.v.Discard(n)
	return o
}

func (o *Overlay[T]) Clear() *Overlay[T] {
	o.v.Clear()
	return o
}

// Destroy runs the destructor over the remaining items in reverse index
// order and returns the context. The borrowed buffer is never released.
func (o *Overlay[T]) Destroy() any { return o.v.Destroy() }

func (o *Overlay[T]) Reverse() *Overlay[T] {
	o.v.Reverse()
	return o
}

func (o *Overlay[T]) ReverseSection(first, second int) error {
	return o.v.ReverseSection(first, second)
}

func (o *Overlay[T]) Rotate(k int) *Overlay[T] {
	o.v.Rotate(k)
	return o
}

func (o *Overlay[T]) Shift(anchor, n int) error { return o.v.Shift(anchor, n) }

func (o *Overlay[T]) Copy() (*Vector[T], error) { return o.v.Copy() }

func (o *Overlay[T]) Slice(first, second int) (*Vector[T], error) {
	return o.v.Slice(first, second)
}

func (o *Overlay[T]) RSlice(first, second int) (*Vector[T], error) {
	return o.v.RSlice(first, second)
}

// Extend moves all items of src into the overlay if they fit the remaining
// capacity, emptying src.
func (o *Overlay[T]) Extend(src *Vector[T]) error { return o.v.Extend(src) }

// Concat copies all items of src into the overlay if they fit the remaining
// capacity.
func (o *Overlay[T]) Concat(src *Vector[T]) error { return o.v.Concat(src) }

func (o *Overlay[T]) Map(fn func(T) T) *Overlay[T] {
	o.v.Map(fn)
	return o
}

func (o *Overlay[T]) Filter(pred func(T) bool) *Overlay[T] {
	o.v.Filter(pred)
	return o
}

func (o *Overlay[T]) Partition(pred func(T) bool) (*Vector[T], error) {
	return o.v.Partition(pred)
}

func (o *Overlay[T]) ForEach(fn func(index int, val T) bool) *Overlay[T] {
	o.v.ForEach(fn)
	return o
}

func (o *Overlay[T]) RForEach(fn func(index int, val T) bool) *Overlay[T] {
	o.v.RForEach(fn)
	return o
}

func (o *Overlay[T]) ForSection(fn func(index int, val T) bool, first, second int) *Overlay[T] {
	o.v.ForSection(fn, first, second)
	return o
}

func (o *Overlay[T]) Iter() iter.Seq2[int, T] { return o.v.Iter() }

func (o *Overlay[T]) Any(pred func(T) bool) bool { return o.v.Any(pred) }

func (o *Overlay[T]) All(pred func(T) bool) bool { return o.v.All(pred) }

func (o *Overlay[T]) Count(val T) int { return o.v.Count(val) }

func (o *Overlay[T]) Compare(other *Vector[T]) bool { return o.v.Compare(other) }

func (o *Overlay[T]) Sort() *Overlay[T] {
	o.v.Sort()
	return o
}

func (o *Overlay[T]) SortSection(first, second int) *Overlay[T] {
	o.v.SortSection(first, second)
	return o
}

func (o *Overlay[T]) IsSorted() bool { return o.v.IsSorted() }

func (o *Overlay[T]) LinearSearch(val T) int { return o.v.LinearSearch(val) }

func (o *Overlay[T]) LinearSearchSection(val T, first, second int) int {
	return o.v.LinearSearchSection(val, first, second)
}

func (o *Overlay[T]) BinarySearch(val T) int { return o.v.BinarySearch(val) }

func (o *Overlay[T]) Contains(val T, sorted bool) bool { return o.v.Contains(val, sorted) }

func (o *Overlay[T]) Min() (T, bool) { return o.v.Min() }

func (o *Overlay[T]) Max() (T, bool) { return o.v.Max() }

func (o *Overlay[T]) Snapshot() Snapshot[T] { return o.v.Snapshot() }

func (o *Overlay[T]) SetComparator(cmp CompareFunc[T]) *Overlay[T] {
	o.v.SetComparator(cmp)
	return o
}

func (o *Overlay[T]) Comparator() CompareFunc[T] { return o.v.Comparator() }

func (o *Overlay[T]) SetDestructor(fn func(T)) *Overlay[T] {
	o.v.SetDestructor(fn)
	return o
}

func (o *Overlay[T]) Destructor() func(T) { return o.v.Destructor() }

func (o *Overlay[T]) SetContext(ctx any) *Overlay[T] {
	o.v.SetContext(ctx)
	return o
}

func (o *Overlay[T]) Context() any { return o.v.Context() }

// Locked always reports true; an overlay's capacity is locked for good.
func (o *Overlay[T]) Locked() bool { return o.v.Locked() }
