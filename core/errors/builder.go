// File: builder.go
// Title: Shared Error Construction Utilities
// Description: Provides the fluent ErrorBuilder and the standard error
//              constructors used across the pyutils packages.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation of shared error utilities

package errors

import (
	"fmt"

	pyerror "github.com/msto63/pyutils/core/error"
)

// Module identifiers for error categorization
const (
	ModuleParsex   = "parsex"
	ModuleSeqx     = "seqx"
	ModuleSlicex   = "slicex"
	ModuleStringx  = "stringx"
	ModuleMapx     = "mapx"
	ModuleFilex    = "filex"
	ModuleConsolex = "consolex"
	ModuleConfig   = "config"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  pyerror.Severity
	code      pyerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: pyerror.SeverityMedium,
		code:     pyerror.CodeUnknown,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity pyerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code pyerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *pyerror.Error {
	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module

	var err *pyerror.Error
	if eb.cause != nil {
		err = pyerror.Wrap(eb.cause, eb.message)
	} else {
		err = pyerror.New(eb.message)
	}

	if eb.operation != "" {
		err = err.WithOperation(eb.module + "." + eb.operation)
	}

	return err.
		WithCode(eb.code).
		WithSeverity(eb.severity).
		WithDetails(eb.details)
}

// =============================================================================
// STANDARD ERROR CREATION FUNCTIONS
// =============================================================================

// EmptyContainer creates the error returned when a reduction that needs at
// least one element receives an empty sequence. The message follows the
// "max() arg is an empty container" form.
func EmptyContainer(module, operation, fn string) *pyerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s() arg is an empty container", fn).
		Code(pyerror.CodeEmptyContainer).
		Severity(pyerror.SeverityLow).
		Build()
}

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *pyerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s", module, operation).
		Code(pyerror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(pyerror.SeverityLow).
		Build()
}

// InvalidFormat creates a standardized format error
func InvalidFormat(module, operation string, cause error, expectedFormat string) *pyerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid format in %s.%s", module, operation).
		Cause(cause).
		Code(pyerror.CodeInvalidFormat).
		Detail("expected_format", expectedFormat).
		Severity(pyerror.SeverityLow).
		Build()
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *pyerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("not found in %s.%s: %v", module, operation, identifier).
		Code(pyerror.CodeNotFound).
		Detail("identifier", identifier).
		Severity(pyerror.SeverityLow).
		Build()
}

// OperationFailed creates a standardized I/O failure error
func OperationFailed(module, operation string, cause error) *pyerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s operation failed", module, operation).
		Cause(cause).
		Code(pyerror.CodeIOFailure).
		Severity(pyerror.SeverityHigh).
		Build()
}

// InvalidConfig creates a standardized configuration validation error
func InvalidConfig(field string, value interface{}, reason string) *pyerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("Validate").
		Messagef("invalid configuration value for %s: %s", field, reason).
		Code(pyerror.CodeInvalidConfig).
		Detail("field", field).
		Detail("value", value).
		Severity(pyerror.SeverityLow).
		Build()
}

// ExtractModule extracts the module name from an error built by this package
func ExtractModule(err error) string {
	if e, ok := err.(*pyerror.Error); ok {
		if module, ok := e.Details()["module"].(string); ok {
			return module
		}
	}
	return ""
}
