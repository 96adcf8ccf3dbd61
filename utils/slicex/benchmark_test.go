// File: benchmark_test.go
// Title: Eager Sequence Utilities Benchmarks
// Description: Performance benchmarks for the allocation-heavy slicex
//              functions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial benchmark implementation

package slicex

import (
	"strconv"
	"testing"
)

func benchInput(size int) []int {
	input := make([]int, size)
	for i := range input {
		input[i] = (i * 7919) % size
	}
	return input
}

func BenchmarkSorted(b *testing.B) {
	for _, size := range []int{100, 1000, 10000} {
		input := benchInput(size)
		b.Run("size_"+strconv.Itoa(size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Sorted(input)
			}
		})
	}
}

func BenchmarkUnique(b *testing.B) {
	for _, size := range []int{100, 1000, 10000} {
		input := benchInput(size)
		b.Run("size_"+strconv.Itoa(size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Unique(input)
			}
		})
	}
}

func BenchmarkChunk(b *testing.B) {
	input := benchInput(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Chunk(input, 64)
	}
}

func BenchmarkProduct(b *testing.B) {
	left := benchInput(100)
	right := benchInput(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Product(left, right)
	}
}
