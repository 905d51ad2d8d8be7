package axvector

// DefaultCapacity is the capacity of vectors constructed without an explicit
// capacity hint.
const DefaultCapacity = 7

// config holds construction settings for a Vector.
type config[T any] struct {
	capacity int
	cmp      CompareFunc[T]
	dispose  func(T)
	ctx      any
	alloc    Allocator
}

// Option defines a function type for configuring Vector construction.
type Option[T any] func(*config[T])

// WithCapacity sets the initial capacity. Hints below 1 are raised to 1; a
// zero-capacity buffer is never materialized.
func WithCapacity[T any](capacity int) Option[T] {
	return func(c *config[T]) {
		c.capacity = capacity
	}
}

// WithComparator sets the three-way comparator used by the search, sort and
// counting operations. Passing nil keeps the default equality-only comparator.
func WithComparator[T any](cmp CompareFunc[T]) Option[T] {
	return func(c *config[T]) {
		c.cmp = cmp
	}
}

// WithDestructor sets the destructor invoked on items irrevocably removed
// from the vector. There is no default destructor.
func WithDestructor[T any](fn func(T)) Option[T] {
	return func(c *config[T]) {
		c.dispose = fn
	}
}

// WithContext attaches an opaque user context. The vector never inspects it.
func WithContext[T any](ctx any) Option[T] {
	return func(c *config[T]) {
		c.ctx = ctx
	}
}

// WithAllocator sets the buffer allocation strategy, e.g. an Arena.
// Default: Go heap allocations.
//
// Buffers obtained from an Allocator are not scanned by the garbage
// collector. Element types containing Go pointers must keep their referents
// alive elsewhere for the lifetime of the vector.
func WithAllocator[T any](alloc Allocator) Option[T] {
	return func(c *config[T]) {
		c.alloc = alloc
	}
}
