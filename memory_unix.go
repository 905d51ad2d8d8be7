//go:build unix

package axvector

import "golang.org/x/sys/unix"

// MmapMemory is an Allocator backed by anonymous memory mappings, intended as
// an Arena memory source (see WithMemory) to keep large buffers off the Go
// heap entirely. Alloc returns nil when the mapping fails.
type MmapMemory struct{}

func (MmapMemory) Alloc(size uintptr) []byte {
	b, err := unix.Mmap(-1, 0, int(size),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil
	}
	return b
}

func (MmapMemory) Free(mem []byte) {
	_ = unix.Munmap(mem)
}
