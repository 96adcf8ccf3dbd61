// Package errors provides the standard error constructors shared by all
// pyutils packages.
//
// Every package builds its errors through these helpers instead of
// fmt.Errorf so that module, operation and code are attached consistently:
//
//	err := errors.EmptyContainer(errors.ModuleSlicex, "Max", "max")
//	err := errors.OperationFailed(errors.ModuleFilex, "ReadString", cause)
//
// The returned values are *error.Error from the core/error package and can be
// matched with error.HasCode or the standard errors.Is.
package errors
