// File: ascii.go
// Title: ASCII Case Mapping and Classification
// Description: Implements byte-wise ASCII case conversion and the all-of
//              character class predicates. Bytes outside the ASCII range
//              are never converted and never belong to a class.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package stringx

// Lower maps A-Z to a-z and leaves every other byte unchanged
func Lower(s string) string {
	return flipCase(s, 'A', 'Z')
}

// Upper maps a-z to A-Z and leaves every other byte unchanged
func Upper(s string) string {
	return flipCase(s, 'a', 'z')
}

// flipCase toggles the case bit of every byte in [lo, hi]
func flipCase(s string, lo, hi byte) string {
	i := 0
	for i < len(s) && (s[i] < lo || s[i] > hi) {
		i++
	}
	if i == len(s) {
		return s
	}

	b := []byte(s)
	for ; i < len(b); i++ {
		if lo <= b[i] && b[i] <= hi {
			b[i] ^= 0x20
		}
	}
	return string(b)
}

// IsDigitAll reports whether s is non-empty and consists of 0-9 only
func IsDigitAll(s string) bool {
	return allBytes(s, isDigit)
}

// IsAlphaAll reports whether s is non-empty and consists of ASCII letters
func IsAlphaAll(s string) bool {
	return allBytes(s, isAlpha)
}

// IsAlnumAll reports whether s is non-empty and consists of ASCII letters
// and digits
func IsAlnumAll(s string) bool {
	return allBytes(s, func(c byte) bool { return isAlpha(c) || isDigit(c) })
}

// IsSpaceAll reports whether s is non-empty and consists of space, \t, \n,
// \v, \f and \r
func IsSpaceAll(s string) bool {
	return allBytes(s, isSpace)
}

func allBytes(s string, class func(byte) bool) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !class(s[i]) {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isAlpha(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
