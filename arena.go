/*
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package axvector

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/eapache/queue"

	"github.com/DerEasy/axvector/internal"
)

const headerSize = unsafe.Sizeof(uintptr(0))

// chunkBlock represents a contiguous memory block managed by the Arena.
type chunkBlock struct {
	ptr uintptr
	len int
	cap int
	ref int64
	mem []byte
}

// arenaOptions holds configuration settings for the Arena allocator.
type arenaOptions struct {
	chunkSize uintptr
	poolSize  int
	locker    sync.Locker
	memory    Allocator
}

// ArenaOption defines a function type for configuring Arena parameters.
type ArenaOption func(*arenaOptions)

// WithChunkSize sets the base allocation size for memory chunks.
// Larger values reduce allocation frequency but may increase waste.
// Minimum size is automatically aligned to system pointer size.
func WithChunkSize(chunkSize uintptr) ArenaOption {
	return func(o *arenaOptions) {
		o.chunkSize = chunkSize
	}
}

// WithPoolSize configures the maximum number of reusable chunks retained in
// the recycle queue. Higher values improve reuse at the cost of increased
// memory retention.
func WithPoolSize(poolSize int) ArenaOption {
	return func(o *arenaOptions) {
		o.poolSize = poolSize
	}
}

// WithEnableLock enables thread-safe operation using a spinlock. Required
// when the Arena itself is shared between goroutines; the vectors built on
// top of it remain single-threaded.
func WithEnableLock(enableLock bool) ArenaOption {
	return func(o *arenaOptions) {
		if enableLock {
			o.locker = new(internal.SpinLock)
		} else {
			o.locker = nopLocker{}
		}
	}
}

// WithMemory specifies the memory source backing the Arena's chunks, e.g.
// MmapMemory. Default: Go heap allocations.
func WithMemory(memory Allocator) ArenaOption {
	return func(o *arenaOptions) {
		o.memory = memory
	}
}

// Arena is a chunked bump Allocator. It carves vector buffers out of larger
// chunks obtained from its memory source, recycles fully-freed chunks through
// a FIFO queue and releases everything on Reset.
//
// Arena memory is not scanned by the garbage collector; see WithAllocator.
type Arena struct {
	locker      sync.Locker
	memory      Allocator
	chunkSize   uintptr
	minHoleSize uintptr
	poolSize    int
	chunkBlocks map[uintptr]*chunkBlock
	current     *chunkBlock
	recycled    *queue.Queue
}

// NewArena creates a new Arena instance with customizable options.
func NewArena(ops ...ArenaOption) *Arena {
	var opts = arenaOptions{
		chunkSize: 4096,
		poolSize:  64,
		locker:    nopLocker{},
		memory:    heapAllocator{},
	}
	for _, op := range ops {
		op(&opts)
	}

	ar := &Arena{}
	ar.locker = opts.locker
	ar.memory = opts.memory
	ar.chunkSize = fixSize(max(512, opts.chunkSize+headerSize))
	ar.minHoleSize = fixSize(max(256, ar.chunkSize/5))
	ar.poolSize = opts.poolSize
	ar.chunkBlocks = make(map[uintptr]*chunkBlock, 8)
	ar.recycled = queue.New()
	ar.current = ar.newChunk(ar.chunkSize)
	return ar
}

// Reset releases every chunk and returns the Arena to its initial state.
// All buffers handed out so far become invalid.
func (ar *Arena) Reset() {
	ar.locker.Lock()
	defer ar.locker.Unlock()

	for _, block := range ar.chunkBlocks {
		ar.memory.Free(block.mem)
	}
	if ar.current != nil {
		ar.memory.Free(ar.current.mem)
	}
	for ar.recycled.Length() > 0 {
		block := ar.recycled.Remove().(*chunkBlock)
		ar.memory.Free(block.mem)
	}

	ar.chunkBlocks = make(map[uintptr]*chunkBlock)
	ar.current = nil
}

// Alloc returns a buffer of size bytes carved out of the Arena, or nil if the
// memory source is exhausted. The buffer is aligned to the pointer size.
func (ar *Arena) Alloc(size uintptr) []byte {
	if size == 0 {
		panic("axvector: arena alloc size must be positive")
	}

	ar.locker.Lock()
	defer ar.locker.Unlock()

	if ar.current == nil {
		// 重新申请当前块
		if ar.current = ar.newChunk(ar.chunkSize); ar.current == nil {
			return nil
		}
	}

	availableBytes := uintptr(ar.current.cap - ar.current.len)
	requiredBytes := fixSize(size + headerSize)

	// 请求大小超过初始块大小的直接分配
	// 当前块剩余可用大小超过允许浪费的字节并且小于需求大小的也直接分配
	if requiredBytes > ar.chunkSize || (availableBytes < requiredBytes && availableBytes >= ar.minHoleSize) {
		block := ar.newChunk(requiredBytes)
		if block == nil {
			return nil
		}
		block.len = block.cap
		block.ref = 1
		*(*uintptr)(unsafe.Pointer(block.ptr)) = block.ptr
		ar.chunkBlocks[block.ptr] = block
		return unsafe.Slice((*byte)(unsafe.Pointer(block.ptr+headerSize)), size)
	}

	if availableBytes < requiredBytes {
		// 此时current剩余字节将被浪费，浪费的字节数最多不超过 minHoleSize
		ar.chunkBlocks[ar.current.ptr] = ar.current
		if ar.current = ar.newChunk(ar.chunkSize); ar.current == nil {
			return nil
		}
	}

	offset := ar.current.len
	ar.current.len += int(requiredBytes)
	ar.current.ref++

	ptr := ar.current.ptr + uintptr(offset)
	*(*uintptr)(unsafe.Pointer(ptr)) = ar.current.ptr
	return unsafe.Slice((*byte)(unsafe.Pointer(ptr+headerSize)), size)
}

// Free releases a buffer previously returned by Alloc. The chunk it lives in
// is recycled once every buffer carved from it has been freed. Freeing a
// foreign buffer panics.
func (ar *Arena) Free(mem []byte) {
	if mem == nil {
		return
	}

	ar.locker.Lock()
	defer ar.locker.Unlock()

	ptr := uintptr(unsafe.Pointer(unsafe.SliceData(mem))) - headerSize
	chunkPtr := *(*uintptr)(unsafe.Pointer(ptr))
	block := ar.current
	if block == nil || block.ptr != chunkPtr {
		var ok bool
		if block, ok = ar.chunkBlocks[chunkPtr]; !ok {
			panic(fmt.Errorf("axvector: buffer not allocated from this arena: %#x", ptr))
		}
	}

	// 判断是否还有引用
	if block.ref--; block.ref <= 0 {
		block.len = 0
		block.ref = 0
		if ar.current != block {
			delete(ar.chunkBlocks, chunkPtr)
			ar.recycle(block)
		}
	}
}

// recycle retains a fully-freed chunk for reuse, releasing it to the memory
// source once the FIFO queue is full.
func (ar *Arena) recycle(block *chunkBlock) {
	if ar.recycled.Length() < ar.poolSize {
		ar.recycled.Add(block)
		return
	}
	ar.memory.Free(block.mem)
	block.cap = 0
	block.ptr = 0
	block.mem = nil
}

// newChunk returns a chunk of at least sz bytes, preferring recycled chunks
// in FIFO order. Chunks too small for the request rotate to the back of the
// queue. Returns nil if the memory source fails.
func (ar *Arena) newChunk(sz uintptr) *chunkBlock {
	for n := ar.recycled.Length(); n > 0; n-- {
		block := ar.recycled.Remove().(*chunkBlock)
		if block.cap >= int(sz) {
			block.len = 0
			block.ref = 0
			return block
		}
		ar.recycled.Add(block)
	}

	m := ar.memory.Alloc(sz)
	if m == nil || cap(m) == 0 {
		return nil
	}
	ptr := unsafe.Pointer(unsafe.SliceData(m))
	return &chunkBlock{ptr: uintptr(ptr), cap: int(sz), mem: m}
}

func fixSize(sz uintptr) uintptr {
	return (sz + headerSize - 1) &^ (headerSize - 1)
}

type nopLocker struct{}

func (n nopLocker) Lock() {
}

func (n nopLocker) Unlock() {
}
