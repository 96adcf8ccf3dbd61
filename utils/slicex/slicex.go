// File: slicex.go
// Title: Eager Sequence Utilities
// Description: Implements the eager sequence utilities over slices:
//              enumeration, pairing, mapping, filtering, concatenation,
//              cartesian product, prefix sums, chunking, search, de-duplication,
//              ordering, reduction and clamping. Every function that returns
//              a container returns a freshly allocated slice and never
//              modifies its input.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation of the sequence utilities

package slicex

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	pyerror "github.com/msto63/pyutils/core/error"
	"github.com/msto63/pyutils/core/errors"
)

// Addable is satisfied by every type that supports the + operator
type Addable interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}

// ErrEmptyContainer matches, via errors.Is, the error returned by Max and Min
// for an empty slice.
var ErrEmptyContainer = pyerror.New("empty container").WithCode(pyerror.CodeEmptyContainer)

// Pair holds two values of possibly different types
type Pair[A, B any] struct {
	First  A
	Second B
}

// NewPair creates a Pair
func NewPair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// String formats the pair as (first, second)
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// ===============================
// Core Transformation Functions
// ===============================

// Enumerate pairs each element with its index, starting at 0
func Enumerate[T any](slice []T) []Pair[int, T] {
	result := make([]Pair[int, T], len(slice))
	for i, item := range slice {
		result[i] = Pair[int, T]{First: i, Second: item}
	}
	return result
}

// Zip pairs elements positionally; the result has the length of the shorter
// input.
func Zip[A, B any](a []A, b []B) []Pair[A, B] {
	n := min(len(a), len(b))
	result := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		result[i] = Pair[A, B]{First: a[i], Second: b[i]}
	}
	return result
}

// Map transforms each element in the slice using the provided function
func Map[T, R any](slice []T, mapper func(T) R) []R {
	if mapper == nil {
		return []R{}
	}

	result := make([]R, len(slice))
	for i, item := range slice {
		result[i] = mapper(item)
	}
	return result
}

// Filter returns a new slice containing only elements that match the predicate
func Filter[T any](slice []T, predicate func(T) bool) []T {
	result := make([]T, 0, len(slice))
	if predicate == nil {
		return result
	}

	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// Chain concatenates the given slices in order
func Chain[T any](parts ...[]T) []T {
	total := 0
	for _, p := range parts {
		total += len(p)
	}

	result := make([]T, 0, total)
	for _, p := range parts {
		result = append(result, p...)
	}
	return result
}

// Product returns every pair (x, y) with x from a and y from b, a varying
// slowest.
func Product[A, B any](a []A, b []B) []Pair[A, B] {
	result := make([]Pair[A, B], 0, len(a)*len(b))
	for _, x := range a {
		for _, y := range b {
			result = append(result, Pair[A, B]{First: x, Second: y})
		}
	}
	return result
}

// AccumulatePrefix returns the running totals of slice, so that element i of
// the result is slice[0] + ... + slice[i]. Strings accumulate by
// concatenation.
func AccumulatePrefix[T Addable](slice []T) []T {
	result := make([]T, len(slice))
	var acc T
	for i, item := range slice {
		acc += item
		result[i] = acc
	}
	return result
}

// ===============================
// Slice Manipulation Functions
// ===============================

// Chunk splits the slice into consecutive groups of at most size elements.
// Each chunk is an independent copy. A size below 1 yields nil.
func Chunk[T any](slice []T, size int) [][]T {
	if size <= 0 {
		return nil
	}

	chunks := make([][]T, 0, (len(slice)+size-1)/size)
	for i := 0; i < len(slice); i += size {
		end := min(i+size, len(slice))
		chunks = append(chunks, slices.Clone(slice[i:end]))
	}
	return chunks
}

// Take returns a copy of the first n elements; n is clamped to [0, len]
func Take[T any](slice []T, n int) []T {
	n = max(0, min(n, len(slice)))
	result := make([]T, n)
	copy(result, slice[:n])
	return result
}

// Drop returns a copy of all but the first n elements; n is clamped to
// [0, len]
func Drop[T any](slice []T, n int) []T {
	n = max(0, min(n, len(slice)))
	result := make([]T, len(slice)-n)
	copy(result, slice[n:])
	return result
}

// Unique returns a new slice with duplicate elements removed (preserves order)
func Unique[T comparable](slice []T) []T {
	seen := make(map[T]struct{}, len(slice))
	result := make([]T, 0, len(slice))

	for _, item := range slice {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			result = append(result, item)
		}
	}
	return result
}

// Reversed returns a reversed copy
func Reversed[T any](slice []T) []T {
	result := make([]T, len(slice))
	for i, item := range slice {
		result[len(slice)-1-i] = item
	}
	return result
}

// ReversedView iterates over slice from the last element to the first
// without copying. Changes to the slice during iteration are visible.
func ReversedView[T any](slice []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(slice) - 1; i >= 0; i-- {
			if !yield(slice[i]) {
				return
			}
		}
	}
}

// ===============================
// Sorting Helpers
// ===============================

// Sorted returns a stably sorted ascending copy
func Sorted[T cmp.Ordered](slice []T) []T {
	result := slices.Clone(slice)
	if result == nil {
		result = []T{}
	}
	slices.SortStableFunc(result, cmp.Compare[T])
	return result
}

// SortedFunc returns a stably sorted copy ordered by compare, which follows
// the cmp.Compare convention.
func SortedFunc[T any](slice []T, compare func(a, b T) int) []T {
	result := make([]T, len(slice))
	copy(result, slice)
	if compare != nil {
		slices.SortStableFunc(result, compare)
	}
	return result
}

// ===============================
// Search and Validation Functions
// ===============================

// Any reports whether at least one element is true; false for an empty slice
func Any(values []bool) bool {
	return slices.Contains(values, true)
}

// All reports whether every element is true; true for an empty slice
func All(values []bool) bool {
	return !slices.Contains(values, false)
}

// AnyFunc reports whether predicate holds for at least one element
func AnyFunc[T any](slice []T, predicate func(T) bool) bool {
	if predicate == nil {
		return false
	}
	return slices.ContainsFunc(slice, predicate)
}

// AllFunc reports whether predicate holds for every element
func AllFunc[T any](slice []T, predicate func(T) bool) bool {
	if predicate == nil {
		return len(slice) == 0
	}
	for _, item := range slice {
		if !predicate(item) {
			return false
		}
	}
	return true
}

// FindIndex returns the index of the first element equal to value
func FindIndex[T comparable](slice []T, value T) (int, bool) {
	i := slices.Index(slice, value)
	return i, i >= 0
}

// Contains reports whether value occurs in slice
func Contains[T comparable](slice []T, value T) bool {
	return slices.Contains(slice, value)
}

// ===============================
// Reduction Functions
// ===============================

// Sum folds the slice with + starting from init, or from the zero value
// when init is omitted.
func Sum[T Addable](slice []T, init ...T) T {
	var total T
	if len(init) > 0 {
		total = init[0]
	}
	for _, item := range slice {
		total += item
	}
	return total
}

// Max returns the largest element. An empty slice yields an error that
// matches ErrEmptyContainer.
func Max[T cmp.Ordered](slice []T) (T, error) {
	if len(slice) == 0 {
		var zero T
		return zero, errors.EmptyContainer(errors.ModuleSlicex, "Max", "max")
	}

	result := slice[0]
	for _, item := range slice[1:] {
		if cmp.Less(result, item) {
			result = item
		}
	}
	return result, nil
}

// Min returns the smallest element. An empty slice yields an error that
// matches ErrEmptyContainer.
func Min[T cmp.Ordered](slice []T) (T, error) {
	if len(slice) == 0 {
		var zero T
		return zero, errors.EmptyContainer(errors.ModuleSlicex, "Min", "min")
	}

	result := slice[0]
	for _, item := range slice[1:] {
		if cmp.Less(item, result) {
			result = item
		}
	}
	return result, nil
}

// Clamp bounds value to [lo, hi]. The result is unspecified when lo > hi.
func Clamp[T cmp.Ordered](value, lo, hi T) T {
	return min(hi, max(lo, value))
}
