// File: range.go
// Title: Integer Range Sequence
// Description: Implements Range, a lazy and restartable arithmetic sequence
//              of int64 values bounded by an exclusive stop. Traversals
//              never overflow: a sequence ends when the next value would
//              wrap around.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation with forward and backward traversal

package seqx

import (
	"fmt"
	"iter"
	"math"
)

// Range is the arithmetic sequence start, start+step, ... that halts before
// reaching or passing stop. The zero value is an empty range.
type Range struct {
	start int64
	stop  int64
	step  int64
}

// NewRange returns the range 0, 1, ..., stop-1
func NewRange(stop int64) Range {
	return Range{start: 0, stop: stop, step: 1}
}

// NewRangeFrom returns the range start, start+1, ..., stop-1
func NewRangeFrom(start, stop int64) Range {
	return Range{start: start, stop: stop, step: 1}
}

// NewRangeStep returns the range with an explicit step. A negative step
// counts down while the value is greater than stop. A zero step yields an
// empty range for which Valid reports false.
func NewRangeStep(start, stop, step int64) Range {
	return Range{start: start, stop: stop, step: step}
}

// Start returns the first candidate value
func (r Range) Start() int64 { return r.start }

// Stop returns the exclusive bound
func (r Range) Stop() int64 { return r.stop }

// Step returns the increment
func (r Range) Step() int64 { return r.step }

// Valid reports whether the step is non-zero
func (r Range) Valid() bool { return r.step != 0 }

// String formats the range as range(start, stop, step)
func (r Range) String() string {
	return fmt.Sprintf("range(%d, %d, %d)", r.start, r.stop, r.step)
}

// All returns an iterator over the values in ascending order of position
func (r Range) All() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		switch {
		case r.step > 0:
			for v := r.start; v < r.stop; v += r.step {
				if !yield(v) || v > math.MaxInt64-r.step {
					return
				}
			}
		case r.step < 0:
			for v := r.start; v > r.stop; v += r.step {
				if !yield(v) || v < math.MinInt64-r.step {
					return
				}
			}
		}
	}
}

// Backward returns an iterator over the values from last to first
func (r Range) Backward() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		n := r.count()
		for i := n; i > 0; i-- {
			if !yield(r.at(i - 1)) {
				return
			}
		}
	}
}

// Len returns the number of values in the range. Ranges longer than
// math.MaxInt report math.MaxInt.
func (r Range) Len() int {
	n := r.count()
	if n > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}

// Contains reports whether v is produced by the range
func (r Range) Contains(v int64) bool {
	switch {
	case r.step > 0:
		return v >= r.start && v < r.stop && (uint64(v)-uint64(r.start))%uint64(r.step) == 0
	case r.step < 0:
		return v <= r.start && v > r.stop && (uint64(r.start)-uint64(v))%r.magnitude() == 0
	}
	return false
}

// At returns the i-th value of the range
func (r Range) At(i int) (int64, bool) {
	if i < 0 || uint64(i) >= r.count() {
		return 0, false
	}
	return r.at(uint64(i)), true
}

// Slice materializes the range into a new slice
func (r Range) Slice() []int64 {
	result := make([]int64, 0, r.Len())
	for v := range r.All() {
		result = append(result, v)
	}
	return result
}

// count is the exact length; the difference of two int64 values always fits
// in a uint64.
func (r Range) count() uint64 {
	switch {
	case r.step > 0 && r.start < r.stop:
		return (uint64(r.stop)-uint64(r.start)-1)/uint64(r.step) + 1
	case r.step < 0 && r.start > r.stop:
		return (uint64(r.start)-uint64(r.stop)-1)/r.magnitude() + 1
	}
	return 0
}

// at computes start + i*step with wrapping arithmetic, which is exact for
// every in-range position.
func (r Range) at(i uint64) int64 {
	return int64(uint64(r.start) + i*uint64(r.step))
}

func (r Range) magnitude() uint64 {
	if r.step < 0 {
		return uint64(0) - uint64(r.step)
	}
	return uint64(r.step)
}
