// Package filex provides whole-file text I/O.
//
// ReadEntireFile, WriteTextFile and FileExists follow the absent-on-failure
// convention of the rest of the module: they never return an error. Callers
// that need to know why an operation failed use ReadString and WriteString,
// which return a *core/error.Error with code NOT_FOUND or IO_FAILURE and the
// path in its details.
//
// Content is treated as opaque bytes. No encoding conversion or newline
// translation takes place.
package filex
