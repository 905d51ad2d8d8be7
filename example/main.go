package main

import (
	"fmt"

	axvector "github.com/DerEasy/axvector"
)

func main() {
	// Heap-backed vector with an ordered comparator.
	v, _ := axvector.New[int](axvector.WithComparator(axvector.Ordered[int]()))
	for i := 7; i >= 1; i-- {
		_ = v.Push(i)
	}
	v.Sort()
	fmt.Println("sorted:", v.Data())
	fmt.Println("index of 4:", v.BinarySearch(4))

	v.Filter(func(x int) bool { return x%2 == 0 })
	fmt.Println("evens:", v.Data())

	// Arena-backed vector; watch the 2*cap+1 growth.
	ar := axvector.NewArena()
	defer ar.Reset()

	av, err := axvector.New[int](
		axvector.WithAllocator[int](ar),
		axvector.WithCapacity[int](1),
	)
	if err != nil {
		panic(err)
	}
	for i := 0; i < 10; i++ {
		_ = av.Push(i)
		fmt.Printf("len=%d cap=%d\n", av.Len(), av.Cap())
	}
	av.Destroy()

	// Overlay over a caller-owned buffer: sorted in place, never reallocated.
	buf := []int{3, 1, 2}
	ov := axvector.NewOverlay(buf, axvector.WithComparator(axvector.Ordered[int]()))
	ov.Sort()
	fmt.Println("overlay sorted in place:", buf)
}
