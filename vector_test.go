package axvector

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/emirpasic/gods/utils"
	"github.com/stretchr/testify/assert"
)

func intVec(t *testing.T, vals ...int) *Vector[int] {
	t.Helper()
	v, err := New[int](WithComparator(Ordered[int]()))
	assert.NoError(t, err)
	for _, x := range vals {
		assert.NoError(t, v.Push(x))
	}
	return v
}

// failAfterAllocator serves a fixed number of allocations, then returns nil.
type failAfterAllocator struct {
	remaining int
}

func (a *failAfterAllocator) Alloc(size uintptr) []byte {
	if a.remaining == 0 {
		return nil
	}
	a.remaining--
	return make([]byte, size)
}

func (a *failAfterAllocator) Free(mem []byte) {}

func TestNew(t *testing.T) {
	v, err := New[int]()
	assert.NoError(t, err)
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, DefaultCapacity, v.Cap())
}

func TestNew_DegenerateCapacity(t *testing.T) {
	v, err := New[int](WithCapacity[int](0))
	assert.NoError(t, err)
	assert.Equal(t, 1, v.Cap())

	v, err = New[int](WithCapacity[int](-5))
	assert.NoError(t, err)
	assert.Equal(t, 1, v.Cap())
}

func TestVector_PushPop(t *testing.T) {
	v := intVec(t, 1, 2)
	before := v.Len()
	assert.NoError(t, v.Push(42))

	val, ok := v.Pop()
	assert.True(t, ok)
	assert.Equal(t, 42, val)
	assert.Equal(t, before, v.Len())

	_, ok = intVec(t).Pop()
	assert.False(t, ok)
}

func TestVector_PopNeverDestructs(t *testing.T) {
	var destroyed []int
	v := intVec(t, 1, 2, 3).SetDestructor(func(x int) {
		destroyed = append(destroyed, x)
	})

	val, ok := v.Pop()
	assert.True(t, ok)
	assert.Equal(t, 3, val)
	assert.Empty(t, destroyed)

	// disposal of popped items is the caller's call
	v.DestroyItem(val)
	assert.Equal(t, []int{3}, destroyed)
}

func TestVector_Top(t *testing.T) {
	v := intVec(t, 1, 2, 3)
	val, ok := v.Top()
	assert.True(t, ok)
	assert.Equal(t, 3, val)
	assert.Equal(t, 3, v.Len())

	_, ok = intVec(t).Top()
	assert.False(t, ok)
}

func TestVector_GrowthSequence(t *testing.T) {
	v, err := New[int](WithCapacity[int](1))
	assert.NoError(t, err)

	caps := []int{v.Cap()}
	for i := 0; i < 15; i++ {
		assert.NoError(t, v.Push(i))
		if v.Cap() != caps[len(caps)-1] {
			caps = append(caps, v.Cap())
		}
	}
	assert.Equal(t, []int{1, 3, 7, 15}, caps)
}

func TestVector_NegativeIndexing(t *testing.T) {
	v := intVec(t, 10, 20, 30, 40)
	for k := 1; k <= v.Len(); k++ {
		neg, ok1 := v.At(-k)
		pos, ok2 := v.At(v.Len() - k)
		assert.True(t, ok1)
		assert.True(t, ok2)
		assert.Equal(t, pos, neg)
	}

	_, ok := v.At(4)
	assert.False(t, ok)
	_, ok = v.At(-5)
	assert.False(t, ok)
}

func TestVector_Set(t *testing.T) {
	v := intVec(t, 1, 2, 3)
	assert.NoError(t, v.Set(-1, 9))
	val, _ := v.At(2)
	assert.Equal(t, 9, val)

	err := v.Set(3, 0)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	assert.Equal(t, []int{1, 2, 9}, v.Data())
}

func TestVector_SetNeverDestructs(t *testing.T) {
	var destroyed []int
	v := intVec(t, 1, 2, 3).SetDestructor(func(x int) {
		destroyed = append(destroyed, x)
	})
	assert.NoError(t, v.Set(0, 7))
	assert.Empty(t, destroyed)
}

func TestVector_Swap(t *testing.T) {
	v := intVec(t, 1, 2, 3)
	assert.NoError(t, v.Swap(0, -1))
	assert.Equal(t, []int{3, 2, 1}, v.Data())

	err := v.Swap(0, 3)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	assert.Equal(t, []int{3, 2, 1}, v.Data())
}

func TestVector_PushGrowthFailureLeavesUnmodified(t *testing.T) {
	alloc := &failAfterAllocator{remaining: 1}
	v, err := New[int](WithAllocator[int](alloc), WithCapacity[int](2))
	assert.NoError(t, err)
	assert.NoError(t, v.Push(1))
	assert.NoError(t, v.Push(2))

	err = v.Push(3)
	assert.True(t, errors.Is(err, ErrOutOfMemory))
	assert.Equal(t, []int{1, 2}, v.Data())
	assert.Equal(t, 2, v.Cap())
}

func TestVector_ResizeShrinkDestructs(t *testing.T) {
	var destroyed []int
	v := intVec(t, 1, 2, 3, 4, 5).SetDestructor(func(x int) {
		destroyed = append(destroyed, x)
	})

	assert.NoError(t, v.Resize(3))
	assert.Equal(t, []int{5, 4}, destroyed)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 3, v.Cap())
	assert.Equal(t, []int{1, 2, 3}, v.Data())
}

func TestVector_ResizeShrinkDestructsEvenWhenAllocationFails(t *testing.T) {
	var destroyed []int
	alloc := &failAfterAllocator{remaining: 1}
	v, err := New[int](
		WithAllocator[int](alloc),
		WithCapacity[int](5),
		WithDestructor(func(x int) { destroyed = append(destroyed, x) }),
	)
	assert.NoError(t, err)
	for i := 1; i <= 5; i++ {
		assert.NoError(t, v.Push(i))
	}

	// destruction and truncation happen before the new buffer is allocated
	err = v.Resize(3)
	assert.True(t, errors.Is(err, ErrOutOfMemory))
	assert.Equal(t, []int{5, 4}, destroyed)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, []int{1, 2, 3}, v.Data())
	assert.Equal(t, 5, v.Cap())
}

func TestVector_ResizeGrow(t *testing.T) {
	v := intVec(t, 1, 2, 3)
	assert.NoError(t, v.Resize(32))
	assert.Equal(t, 32, v.Cap())
	assert.Equal(t, []int{1, 2, 3}, v.Data())
}

func TestVector_ResizeToZeroKeepsOneSlot(t *testing.T) {
	v := intVec(t, 1, 2)
	assert.NoError(t, v.Resize(0))
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 1, v.Cap())
}

func TestVector_Discard(t *testing.T) {
	var destroyed []int
	v := intVec(t, 1, 2, 3, 4).SetDestructor(func(x int) {
		destroyed = append(destroyed, x)
	})

	v.Discard(2)
	assert.Equal(t, []int{4, 3}, destroyed)
	assert.Equal(t, []int{1, 2}, v.Data())

	v.Discard(10)
	assert.Equal(t, []int{4, 3, 2, 1}, destroyed)
	assert.Equal(t, 0, v.Len())
}

func TestVector_Clear(t *testing.T) {
	var destroyed []int
	v := intVec(t, 1, 2, 3).SetDestructor(func(x int) {
		destroyed = append(destroyed, x)
	})
	capacity := v.Cap()

	v.Clear()
	assert.Equal(t, []int{3, 2, 1}, destroyed)
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, capacity, v.Cap())
}

func TestVector_DestroyReturnsContext(t *testing.T) {
	type bookkeeping struct{ name string }
	ctx := &bookkeeping{name: "mine"}

	var destroyed []int
	v, err := New[int](WithContext[int](ctx), WithDestructor(func(x int) {
		destroyed = append(destroyed, x)
	}))
	assert.NoError(t, err)
	for i := 1; i <= 3; i++ {
		assert.NoError(t, v.Push(i))
	}

	got := v.Destroy()
	assert.Same(t, ctx, got)
	assert.Equal(t, []int{3, 2, 1}, destroyed)
}

func TestVector_DefaultComparatorIsEquality(t *testing.T) {
	v, err := New[string]()
	assert.NoError(t, err)
	for _, s := range []string{"a", "b", "a"} {
		assert.NoError(t, v.Push(s))
	}
	assert.Equal(t, 2, v.Count("a"))
	assert.Equal(t, 1, v.LinearSearch("b"))
	assert.Equal(t, -1, v.LinearSearch("z"))
}

func TestVector_SetComparatorNilRestoresDefault(t *testing.T) {
	v := intVec(t, 1, 2, 2)
	v.SetComparator(nil)
	assert.Equal(t, 2, v.Count(2))
}

func TestVector_FromGodsComparator(t *testing.T) {
	v, err := New[int](WithComparator(FromGods[int](utils.IntComparator)))
	assert.NoError(t, err)
	for _, x := range []int{3, 1, 2} {
		assert.NoError(t, v.Push(x))
	}
	v.Sort()
	assert.Equal(t, []int{1, 2, 3}, v.Data())
}

func TestVector_ContextAccessors(t *testing.T) {
	v := intVec(t)
	assert.Nil(t, v.Context())
	v.SetContext("tag")
	assert.Equal(t, "tag", v.Context())
}
