// File: doc.go
// Title: Package Documentation for error
// Description: Package error provides the structured error type used across
//              pyutils. Errors carry a code, a severity, free-form details and
//              a captured stack trace while staying compatible with the
//              standard error interface and errors.Is / errors.As.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation with codes, severities and stack traces
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes (EMPTY_CONTAINER, IO_FAILURE, ...)
// - Stack trace capture for debugging
// - Code based matching through errors.Is
//
// Usage:
//   import pyerror "github.com/msto63/pyutils/core/error"
//
//   err := pyerror.New("max() arg is an empty container").
//     WithCode(pyerror.CodeEmptyContainer).
//     WithOperation("slicex.Max")
//
//   if pyerror.HasCode(err, pyerror.CodeEmptyContainer) {
//     // guard with a length check next time
//   }
package error
