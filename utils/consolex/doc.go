// Package consolex provides print and input helpers for line-oriented
// console programs.
//
//	consolex.Print("Hello", 42, true) // Hello 42 true
//	name := consolex.Input("Name: ")
//
// The package level functions use a console bound to os.Stdout and
// os.Stdin. Tests and tools construct their own Console over any
// io.Writer and io.Reader.
package consolex
