// File: parsex.go
// Title: Strict String Parsing
// Description: Implements full-consumption conversion of strings into
//              integers, floating point numbers and booleans. A conversion
//              either uses every character of the input or reports absence;
//              partial parses and errors are never surfaced to the caller.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation of ToInt, ToUint, ToDouble and ToBool

package parsex

import (
	"strconv"
	"strings"
)

// DefaultBase is the base used by ToInt and ToUint when none is given
const DefaultBase = 10

// trueWords and falseWords are the accepted boolean spellings (lower case)
var (
	trueWords  = map[string]struct{}{"true": {}, "1": {}, "yes": {}, "y": {}}
	falseWords = map[string]struct{}{"false": {}, "0": {}, "no": {}, "n": {}}
)

// ToInt parses text as a signed 64-bit integer in the given base (default 10).
//
// Leading ASCII whitespace is skipped and an optional sign is accepted.
// Base 16 accepts an optional 0x prefix; base 0 picks the base from the
// prefix (0x for 16, a leading 0 for 8, otherwise 10). The second result is
// false for empty or malformed text, trailing characters, overflow and
// bases outside 0 and 2..36.
func ToInt(text string, base ...int) (int64, bool) {
	b := DefaultBase
	if len(base) > 0 {
		b = base[0]
	}

	negative, digits, b, ok := splitInteger(text, b)
	if !ok {
		return 0, false
	}

	if negative {
		digits = "-" + digits
	}
	v, err := strconv.ParseInt(digits, b, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ToUint parses text as an unsigned 64-bit integer with the same rules as
// ToInt. A minus sign is rejected.
func ToUint(text string, base ...int) (uint64, bool) {
	b := DefaultBase
	if len(base) > 0 {
		b = base[0]
	}

	negative, digits, b, ok := splitInteger(text, b)
	if !ok || negative {
		return 0, false
	}

	v, err := strconv.ParseUint(digits, b, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ToDouble parses text as a float64 literal: decimal, exponent and
// hexadecimal (p exponent) forms as well as inf, infinity and nan in any
// case. Leading ASCII whitespace is skipped; anything left over after the
// literal makes the result absent, as does overflow.
func ToDouble(text string) (float64, bool) {
	s := skipSpace(text)
	if s == "" || strings.ContainsRune(s, '_') {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ToBool maps "true", "1", "yes", "y" to true and "false", "0", "no", "n"
// to false, ignoring ASCII case. Any other text, including text with
// surrounding whitespace, is absent.
func ToBool(text string) (bool, bool) {
	t := asciiLower(text)
	if _, ok := trueWords[t]; ok {
		return true, true
	}
	if _, ok := falseWords[t]; ok {
		return false, true
	}
	return false, false
}

// splitInteger strips whitespace, sign and base prefix from text and
// resolves base 0. The returned digits contain no sign.
func splitInteger(text string, base int) (negative bool, digits string, resolved int, ok bool) {
	if base != 0 && (base < 2 || base > 36) {
		return false, "", 0, false
	}

	s := skipSpace(text)
	if s == "" {
		return false, "", 0, false
	}

	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	if base == 0 {
		switch {
		case hasHexPrefix(s):
			base = 16
		case len(s) > 1 && s[0] == '0':
			base = 8
		default:
			base = 10
		}
	}

	if base == 16 && hasHexPrefix(s) {
		s = s[2:]
	}

	// strconv would accept a second sign or digit separators here
	if s == "" || s[0] == '+' || s[0] == '-' || strings.ContainsRune(s, '_') {
		return false, "", 0, false
	}

	return negative, s, base, true
}

func hasHexPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// skipSpace removes leading bytes in the C locale whitespace class
func skipSpace(s string) string {
	i := 0
	for i < len(s) && isCSpace(s[i]) {
		i++
	}
	return s[i:]
}

func isCSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
