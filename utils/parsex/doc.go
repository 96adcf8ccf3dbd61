// Package parsex converts strings into numbers and booleans without partial
// results.
//
// Each function returns the parsed value together with an ok flag. The flag
// is false whenever the input is not consumed completely, so "42" parses
// while "42a", "" and "4 2" do not:
//
//	if n, ok := parsex.ToInt("42"); ok {
//		// n == 42
//	}
//
// Leading whitespace is tolerated for the numeric parsers, trailing
// whitespace is not. Boolean parsing is an exact, case-insensitive match
// against a fixed word list.
package parsex
