// Package internal holds support primitives for axvector.
package internal

import (
	"runtime"
	"sync/atomic"
)

// SpinLock is a simple spinlock with exponential backoff. The zero value is
// an unlocked lock.
type SpinLock int32

func (sl *SpinLock) Lock() {
	backoff := 1
	const maxBackoff = 16

	for !atomic.CompareAndSwapInt32((*int32)(sl), 0, 1) {
		// Exponential backoff, see https://en.wikipedia.org/wiki/Exponential_backoff.
		for i := 0; i < backoff; i++ {
			runtime.Gosched()
		}
		if backoff < maxBackoff {
			backoff <<= 1
		}
	}
}

func (sl *SpinLock) Unlock() {
	atomic.StoreInt32((*int32)(sl), 0)
}
