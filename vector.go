// Package axvector provides a generic, resizable, indexable vector with
// comparator-driven algorithms, functional-style operations and explicit,
// destructor-based ownership of removed items.
//
// All index-taking operations accept signed indices: non-negative values
// index from the front, negative values from the back (-1 is the last item).
// Operations taking two indices treat them as a half-open section, the first
// inclusive and the second exclusive.
package axvector

import (
	"unsafe"

	"github.com/cockroachdb/errors"
)

// Allocator supplies raw buffer memory for vectors and arenas. Alloc returns
// a buffer of at least size bytes or nil on failure; Free releases a buffer
// previously returned by Alloc. Reallocation is expressed as Alloc of the new
// size, copy, Free of the old buffer, all through the same strategy.
type Allocator interface {
	Alloc(size uintptr) []byte
	Free(mem []byte)
}

// heapAllocator is the default allocation strategy: plain Go heap buffers.
// It never fails and needs no explicit release.
type heapAllocator struct{}

func (heapAllocator) Alloc(size uintptr) []byte { return make([]byte, size) }

func (heapAllocator) Free(mem []byte) {}

// Vector is a growable sequence of items of type T. It owns its buffer
// exclusively unless it was created as an overlay over a caller-owned buffer,
// in which case the capacity is locked and the buffer is never released.
//
// A Vector is not safe for concurrent use.
type Vector[T any] struct {
	vec     []T    // len is the logical length, cap the capacity
	mem     []byte // backing buffer when obtained from an Allocator
	alloc   Allocator
	cmp     CompareFunc[T]
	dispose func(T)
	ctx     any
	locked  bool
	overlay bool
}

// New creates a Vector. Without options it holds DefaultCapacity slots, uses
// the Go heap and the default equality-only comparator, and has no destructor.
func New[T any](opts ...Option[T]) (*Vector[T], error) {
	cfg := config[T]{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.capacity < 1 {
		cfg.capacity = 1
	}
	buf, mem, err := newBuf[T](cfg.alloc, cfg.capacity)
	if err != nil {
		return nil, err
	}
	if cfg.cmp == nil {
		cfg.cmp = defaultCompare[T]
	}
	return &Vector[T]{
		vec:     buf,
		mem:     mem,
		alloc:   cfg.alloc,
		cmp:     cfg.cmp,
		dispose: cfg.dispose,
		ctx:     cfg.ctx,
	}, nil
}

// newBuf allocates a zero-length buffer with the given capacity through
// alloc, or on the Go heap when alloc is nil.
func newBuf[T any](alloc Allocator, capacity int) ([]T, []byte, error) {
	if alloc == nil {
		return make([]T, 0, capacity), nil, nil
	}
	size := unsafe.Sizeof(*new(T)) * uintptr(capacity)
	if size == 0 {
		size = 1
	}
	mem := alloc.Alloc(size)
	if mem == nil {
		return nil, nil, errors.Wrapf(ErrOutOfMemory, "buffer of %d slots", capacity)
	}
	buf := unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(mem))), capacity)
	return buf[:0], mem, nil
}

// normalize resolves a signed index against the current length.
func (v *Vector[T]) normalize(index int) (int, bool) {
	if index < 0 {
		index += len(v.vec)
	}
	return index, index >= 0 && index < len(v.vec)
}

// section resolves a signed half-open section and clamps both bounds into
// [0, len]. An inverted section denotes an empty one.
func (v *Vector[T]) section(first, second int) (int, int) {
	n := len(v.vec)
	if first < 0 {
		first += n
	}
	if second < 0 {
		second += n
	}
	first = min(max(0, first), n)
	second = min(max(0, second), n)
	if second < first {
		second = first
	}
	return first, second
}

// Len returns the number of items.
func (v *Vector[T]) Len() int {
	return len(v.vec)
}

// Cap returns the number of items that fit without growing.
func (v *Vector[T]) Cap() int {
	return cap(v.vec)
}

// Data returns the live item buffer for direct access. The slice aliases the
// vector's storage and goes stale on the next structural mutation.
func (v *Vector[T]) Data() []T {
	return v.vec
}

// At returns the item at the given signed index, or false if out of range.
func (v *Vector[T]) At(index int) (T, bool) {
	i, ok := v.normalize(index)
	if !ok {
		var zero T
		return zero, false
	}
	return v.vec[i], true
}

// Set overwrites the item at the given signed index. The previous item is not
// destructed; overwriting is not a removal. Out of range fails without side
// effects.
func (v *Vector[T]) Set(index int, val T) error {
	i, ok := v.normalize(index)
	if !ok {
		return errors.Wrapf(ErrOutOfRange, "set %d", index)
	}
	v.vec[i] = val
	return nil
}

// Swap exchanges two items by signed index.
func (v *Vector[T]) Swap(index1, index2 int) error {
	i1, ok1 := v.normalize(index1)
	i2, ok2 := v.normalize(index2)
	if !ok1 || !ok2 {
		return errors.Wrapf(ErrOutOfRange, "swap %d, %d", index1, index2)
	}
	v.vec[i1], v.vec[i2] = v.vec[i2], v.vec[i1]
	return nil
}

// Push appends an item, growing the capacity to 2*cap+1 when full. A failed
// growth leaves the vector unmodified.
func (v *Vector[T]) Push(val T) error {
	if len(v.vec) == cap(v.vec) {
		if err := v.Resize(2*cap(v.vec) + 1); err != nil {
			return err
		}
	}
	v.vec = append(v.vec, val)
	return nil
}

// Pop removes and returns the last item. Ownership transfers to the caller;
// the destructor is never invoked. Returns false on an empty vector.
func (v *Vector[T]) Pop() (T, bool) {
	n := len(v.vec)
	if n == 0 {
		var zero T
		return zero, false
	}
	val := v.vec[n-1]
	var zero T
	v.vec[n-1] = zero
	v.vec = v.vec[:n-1]
	return val, true
}

// Top returns the last item without removing it.
func (v *Vector[T]) Top() (T, bool) {
	if len(v.vec) == 0 {
		var zero T
		return zero, false
	}
	return v.vec[len(v.vec)-1], true
}

// Resize sets the capacity explicitly. Shrinking below the current length
// runs the destructor on every excess item from the top down and truncates
// the length before the new buffer is allocated; truncation and destruction
// happen regardless of whether the allocation afterwards succeeds. A locked
// vector rejects Resize with ErrLocked. Capacities below 1 are raised to 1.
func (v *Vector[T]) Resize(capacity int) error {
	if v.locked {
		return errors.Wrapf(ErrLocked, "resize to %d", capacity)
	}
	if capacity < len(v.vec) {
		if v.dispose != nil {
			for i := len(v.vec) - 1; i >= capacity && i >= 0; i-- {
				v.dispose(v.vec[i])
			}
		}
		v.vec = v.vec[:max(0, capacity)]
	}
	if capacity < 1 {
		capacity = 1
	}
	buf, mem, err := newBuf[T](v.alloc, capacity)
	if err != nil {
		return err
	}
	buf = buf[:len(v.vec)]
	copy(buf, v.vec)
	if v.mem != nil {
		v.alloc.Free(v.mem)
	}
	v.vec, v.mem = buf, mem
	return nil
}

// reserve grows the capacity to at least need slots. No-op if it already fits.
func (v *Vector[T]) reserve(need int) error {
	if need <= cap(v.vec) {
		return nil
	}
	return v.Resize(need)
}

// Discard destructs and removes the last min(n, Len()) items.
func (v *Vector[T]) Discard(n int) *Vector[T] {
	keep := len(v.vec) - min(max(0, n), len(v.vec))
	if v.dispose != nil {
		for i := len(v.vec) - 1; i >= keep; i-- {
			v.dispose(v.vec[i])
		}
	}
	clear(v.vec[keep:])
	v.vec = v.vec[:keep]
	return v
}

// Clear destructs and removes every item, retaining the capacity.
func (v *Vector[T]) Clear() *Vector[T] {
	if v.dispose != nil {
		for i := len(v.vec) - 1; i >= 0; i-- {
			v.dispose(v.vec[i])
		}
	}
	clear(v.vec)
	v.vec = v.vec[:0]
	return v
}

// Destroy invokes the destructor on every remaining item from the last index
// down to the first, releases the owned buffer (overlays keep theirs) and
// returns the stored context. The vector must not be used afterwards.
func (v *Vector[T]) Destroy() any {
	if v.dispose != nil {
		for i := len(v.vec) - 1; i >= 0; i-- {
			v.dispose(v.vec[i])
		}
	}
	ctx := v.ctx
	if !v.overlay && v.mem != nil {
		v.alloc.Free(v.mem)
	}
	v.vec = nil
	v.mem = nil
	v.ctx = nil
	return ctx
}

// DestroyItem invokes the destructor, if set, on an arbitrary item. Useful
// for items taken out of the vector by Pop or an ownership-transferring
// operation once the caller is done with them.
func (v *Vector[T]) DestroyItem(val T) *Vector[T] {
	if v.dispose != nil {
		v.dispose(val)
	}
	return v
}

// SetComparator replaces the comparator. Passing nil restores the default
// equality-only comparator.
func (v *Vector[T]) SetComparator(cmp CompareFunc[T]) *Vector[T] {
	if cmp == nil {
		cmp = defaultCompare[T]
	}
	v.cmp = cmp
	return v
}

// Comparator returns the active comparator.
func (v *Vector[T]) Comparator() CompareFunc[T] {
	return v.cmp
}

// SetDestructor replaces the destructor. Passing nil disables it.
func (v *Vector[T]) SetDestructor(fn func(T)) *Vector[T] {
	v.dispose = fn
	return v
}

// Destructor returns the active destructor, or nil.
func (v *Vector[T]) Destructor() func(T) {
	return v.dispose
}

// SetContext attaches an opaque user context.
func (v *Vector[T]) SetContext(ctx any) *Vector[T] {
	v.ctx = ctx
	return v
}

// Context returns the attached user context.
func (v *Vector[T]) Context() any {
	return v.ctx
}

// Locked reports whether the capacity is locked.
func (v *Vector[T]) Locked() bool {
	return v.locked
}
