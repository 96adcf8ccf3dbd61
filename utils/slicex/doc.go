// Package slicex implements eager sequence utilities over Go slices.
//
// Package: slicex
// Title: Eager Sequence Utilities for Go
// Description: This package provides generic helpers familiar from scripting
//              languages (enumerate, zip, map, filter, chain, product,
//              accumulate, chunk, sorted, reversed, sum, min, max) expressed
//              over slices. All results are new slices; inputs are never
//              modified or aliased.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation
//
// Package Overview:
//
// # Core Transformation Functions
//
//   - Enumerate: pair each element with its index
//   - Zip: pair two slices positionally, truncated to the shorter one
//   - Map, Filter: element-wise transformation and selection
//   - Chain: concatenation of any number of slices
//   - Product: cartesian product, first slice outermost
//   - AccumulatePrefix: running totals (numbers add, strings concatenate)
//
// # Slice Manipulation Functions
//
//   - Chunk: consecutive groups of a fixed size, each an independent copy
//   - Take, Drop: prefix and suffix with n clamped to the slice length
//   - Unique: first occurrence of every value, order preserved
//   - Sorted, SortedFunc: stable sorted copies
//   - Reversed: reversed copy; ReversedView iterates backwards in place
//
// # Search and Reduction Functions
//
//   - Any, All: boolean reductions with any([]) == false and all([]) == true
//   - AnyFunc, AllFunc: the same over a predicate
//   - FindIndex, Contains: linear search
//   - Sum: left fold with +, starting from an optional initial value
//   - Max, Min: extremes; an empty slice yields an EMPTY_CONTAINER error
//   - Clamp: bound a value to a closed interval
//
// Error Handling:
//
// Only Max and Min can fail. Their error is a *core/error.Error with code
// EMPTY_CONTAINER and can be recognized with errors.Is:
//
//	if _, err := slicex.Max(values); errors.Is(err, slicex.ErrEmptyContainer) {
//		// handle empty input
//	}
package slicex
