// Package stringx provides byte-oriented string helpers in the style of a
// scripting language's string methods.
//
// Every function works on raw bytes. Case mapping and the Is*All predicates
// only know the ASCII range: bytes from 0x80 upward are copied unchanged and
// never count as a digit, letter or space. Split takes a single delimiter
// byte and follows str.split(sep) semantics, so Join(Split(s, ','), ",")
// reproduces s for every input.
package stringx
