package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat provides atomic float64 operations using bit conversion
// Zero value is ready to use (represents 0.0)
type AtomicFloat struct {
	bits atomic.Uint64
	set  atomic.Bool
}

// Set stores a float64 value atomically
func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
	f.set.Store(true)
}

// Get loads the float64 value atomically
func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// IsSet reports whether any value was ever stored
func (f *AtomicFloat) IsSet() bool {
	return f.set.Load()
}

// Max stores val if it exceeds the current value or nothing was stored yet
// Returns true when val became the new value
func (f *AtomicFloat) Max(val float64) bool {
	for {
		old := f.bits.Load()
		if f.set.Load() && val <= math.Float64frombits(old) {
			return false
		}
		if f.bits.CompareAndSwap(old, math.Float64bits(val)) {
			f.set.Store(true)
			return true
		}
	}
}
