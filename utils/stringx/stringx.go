// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements byte-oriented string operations: joining,
//              single-byte splitting, prefix and suffix tests, trimming of
//              byte sets, substring replacement and value stringification.
//              All operations treat strings as sequences of bytes; no
//              Unicode decoding takes place.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation with core utilities

package stringx

import (
	"fmt"
	"strings"
)

// DefaultStripChars is the set removed by Strip, LStrip and RStrip
const DefaultStripChars = " \t\n\r"

// Join concatenates parts with sep between consecutive elements
func Join(parts []string, sep string) string {
	return strings.Join(parts, sep)
}

// Split cuts s at every occurrence of delim. Adjacent delimiters produce
// empty elements, a trailing delimiter produces a trailing empty element,
// and the empty string splits into a single empty element.
func Split(s string, delim byte) []string {
	result := make([]string, 0, strings.Count(s, string([]byte{delim}))+1)
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == delim {
			result = append(result, s[start:i])
			start = i + 1
		}
	}
	return append(result, s[start:])
}

// StartsWith reports whether s begins with prefix
func StartsWith(s, prefix string) bool {
	return strings.HasPrefix(s, prefix)
}

// EndsWith reports whether s ends with suffix
func EndsWith(s, suffix string) bool {
	return strings.HasSuffix(s, suffix)
}

// ===============================
// Trimming
// ===============================

// Strip removes leading and trailing spaces, tabs, newlines and carriage
// returns
func Strip(s string) string {
	return StripChars(s, DefaultStripChars)
}

// LStrip removes leading default whitespace
func LStrip(s string) string {
	return LStripChars(s, DefaultStripChars)
}

// RStrip removes trailing default whitespace
func RStrip(s string) string {
	return RStripChars(s, DefaultStripChars)
}

// StripChars removes leading and trailing bytes contained in chars
func StripChars(s, chars string) string {
	return RStripChars(LStripChars(s, chars), chars)
}

// LStripChars removes leading bytes contained in chars
func LStripChars(s, chars string) string {
	set := makeByteSet(chars)
	i := 0
	for i < len(s) && set.has(s[i]) {
		i++
	}
	return s[i:]
}

// RStripChars removes trailing bytes contained in chars
func RStripChars(s, chars string) string {
	set := makeByteSet(chars)
	j := len(s)
	for j > 0 && set.has(s[j-1]) {
		j--
	}
	return s[:j]
}

// byteSet is a 256-bit membership table
type byteSet [4]uint64

func makeByteSet(chars string) byteSet {
	var set byteSet
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		set[c>>6] |= 1 << (c & 63)
	}
	return set
}

func (b *byteSet) has(c byte) bool {
	return b[c>>6]&(1<<(c&63)) != 0
}

// ===============================
// Replacement
// ===============================

// Replace substitutes from with to, scanning left to right. Only the first
// occurrence is replaced unless all is true. An empty from leaves s
// unchanged.
func Replace(s, from, to string, all bool) string {
	if from == "" {
		return s
	}
	n := 1
	if all {
		n = -1
	}
	return strings.Replace(s, from, to, n)
}

// ReplaceAll substitutes every non-overlapping occurrence of from with to
func ReplaceAll(s, from, to string) string {
	return Replace(s, from, to, true)
}

// ===============================
// Conversion
// ===============================

// Str returns the default textual form of v as produced by %v. Strings are
// returned unchanged and a value implementing error or fmt.Stringer uses
// its own method.
func Str(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
