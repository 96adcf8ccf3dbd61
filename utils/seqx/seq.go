// File: seq.go
// Title: Lazy Sequence Adapters
// Description: Implements lazy adapters over iter.Seq: construction from and
//              collection into slices, enumeration, pairwise zipping,
//              mapping, filtering, chaining and prefix/suffix selection.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation of the iterator adapters

package seqx

import "iter"

// ===============================
// Construction and Collection
// ===============================

// FromSlice returns an iterator over the elements of s in order
func FromSlice[T any](s []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range s {
			if !yield(item) {
				return
			}
		}
	}
}

// Collect drains seq into a new slice. An empty sequence gives an empty,
// non-nil slice.
func Collect[T any](seq iter.Seq[T]) []T {
	result := []T{}
	if seq == nil {
		return result
	}
	for item := range seq {
		result = append(result, item)
	}
	return result
}

// ===============================
// Transformation
// ===============================

// Enumerate pairs every element with its position, starting at 0
func Enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if seq == nil {
			return
		}
		i := 0
		for item := range seq {
			if !yield(i, item) {
				return
			}
			i++
		}
	}
}

// Zip pairs the elements of a and b positionally and stops with the shorter
func Zip[A, B any](a iter.Seq[A], b iter.Seq[B]) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		if a == nil || b == nil {
			return
		}
		next, stop := iter.Pull(b)
		defer stop()

		for x := range a {
			y, ok := next()
			if !ok || !yield(x, y) {
				return
			}
		}
	}
}

// Map applies fn to every element
func Map[T, R any](seq iter.Seq[T], fn func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		if seq == nil || fn == nil {
			return
		}
		for item := range seq {
			if !yield(fn(item)) {
				return
			}
		}
	}
}

// Filter keeps the elements for which pred returns true
func Filter[T any](seq iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		if seq == nil || pred == nil {
			return
		}
		for item := range seq {
			if pred(item) && !yield(item) {
				return
			}
		}
	}
}

// Chain yields every element of each sequence in turn
func Chain[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			if seq == nil {
				continue
			}
			for item := range seq {
				if !yield(item) {
					return
				}
			}
		}
	}
}

// ===============================
// Selection
// ===============================

// Take yields at most the first n elements
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if seq == nil || n <= 0 {
			return
		}
		taken := 0
		for item := range seq {
			if !yield(item) {
				return
			}
			taken++
			if taken == n {
				return
			}
		}
	}
}

// Drop skips the first n elements and yields the rest
func Drop[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if seq == nil {
			return
		}
		skipped := 0
		for item := range seq {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(item) {
				return
			}
		}
	}
}
