package util

import "sync/atomic"

// SafeCounter is an int counter safe for concurrent use.
type SafeCounter struct {
	value atomic.Int64
}

// NewSafeCounter returns a counter starting at zero.
func NewSafeCounter() *SafeCounter {
	return &SafeCounter{}
}

// Increment adds one and returns the new value.
func (c *SafeCounter) Increment() int64 {
	return c.value.Add(1)
}

// Decrement subtracts one and returns the new value.
func (c *SafeCounter) Decrement() int64 {
	return c.value.Add(-1)
}

// Value returns the current value.
func (c *SafeCounter) Value() int64 {
	return c.value.Load()
}

// SafeFlag is a bool safe for concurrent use.
type SafeFlag struct {
	value atomic.Bool
}

// NewSafeFlag returns a flag starting at false.
func NewSafeFlag() *SafeFlag {
	return &SafeFlag{}
}

// Set stores v.
func (f *SafeFlag) Set(v bool) {
	f.value.Store(v)
}

// Value returns the current value.
func (f *SafeFlag) Value() bool {
	return f.value.Load()
}

// TryRaise sets the flag if it is down and reports whether this call raised it.
func (f *SafeFlag) TryRaise() bool {
	return f.value.CompareAndSwap(false, true)
}
