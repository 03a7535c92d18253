package util

import (
	"sync/atomic"
)

// AtomicBool is a boxed-class that provides synchronized access to the
// underlying boolean value
type AtomicBool struct {
	state int32 // "1" is true, "0" is false
}

func boolToInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// NewAtomicBool returns a new AtomicBool
func NewAtomicBool(initialState bool) *AtomicBool {
	return &AtomicBool{state: boolToInt(initialState)}
}

// Get returns the current boolean value synchronously
func (a *AtomicBool) Get() bool {
	return atomic.LoadInt32(&a.state) != 0
}

// Set updates the boolean value synchronously
func (a *AtomicBool) Set(newState bool) bool {
	atomic.StoreInt32(&a.state, boolToInt(newState))
	return newState
}

// Swap updates the boolean value and returns the previous one
func (a *AtomicBool) Swap(newState bool) bool {
	return atomic.SwapInt32(&a.state, boolToInt(newState)) != 0
}
