package axvector

import "github.com/cockroachdb/errors"

// Sentinel errors reported by vector and arena operations. Match with errors.Is.
var (
	// ErrOutOfRange reports an index or section that does not resolve to a
	// valid position. Failed operations have no side effects.
	ErrOutOfRange = errors.New("axvector: index out of range")

	// ErrOutOfMemory reports a failed buffer allocation. The vector is left
	// unmodified except where Resize documents otherwise.
	ErrOutOfMemory = errors.New("axvector: allocation failed")

	// ErrLocked reports a capacity change attempted on a capacity-locked
	// vector. Overlays are always locked.
	ErrLocked = errors.New("axvector: capacity is locked")
)
