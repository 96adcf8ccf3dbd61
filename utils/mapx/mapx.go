// File: mapx.go
// Title: Map Utility Functions
// Description: Implements lookup with an explicit presence flag, sorted key
//              extraction and key=value rendering of maps in ascending key
//              order.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation of Get, SortedKeys and JoinMap

package mapx

import (
	"cmp"
	"slices"
	"strings"

	"github.com/msto63/pyutils/utils/stringx"
)

// Default separators used by JoinMapDefault
const (
	DefaultPairSeparator = ","
	DefaultKeyValueSep   = "="
)

// Get returns the value stored under key and whether it was present
func Get[K comparable, V any](m map[K]V, key K) (V, bool) {
	v, ok := m[key]
	return v, ok
}

// SortedKeys returns the keys of m in ascending order
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// JoinMap renders every entry as key, eq, value and joins the entries with
// sep in ascending key order. Keys and values are rendered with stringx.Str.
func JoinMap[K cmp.Ordered, V any](m map[K]V, sep, eq string) string {
	var sb strings.Builder
	for i, k := range SortedKeys(m) {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(stringx.Str(k))
		sb.WriteString(eq)
		sb.WriteString(stringx.Str(m[k]))
	}
	return sb.String()
}

// JoinMapDefault is JoinMap with "," between entries and "=" inside them
func JoinMapDefault[K cmp.Ordered, V any](m map[K]V) string {
	return JoinMap(m, DefaultPairSeparator, DefaultKeyValueSep)
}
