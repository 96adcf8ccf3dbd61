// File: filex.go
// Title: Whole-File I/O Utilities
// Description: Implements whole-file reading and writing of text content
//              plus an existence check. The boolean variants report failure
//              as absence; the error variants return structured errors with
//              NOT_FOUND or IO_FAILURE codes. Failures are logged at debug
//              level through the package logger.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation with read, write and exists

package filex

import (
	"errors"
	"io/fs"
	"os"
	"sync/atomic"

	pyerror "github.com/msto63/pyutils/core/error"
	pyerrors "github.com/msto63/pyutils/core/errors"
	"github.com/msto63/pyutils/core/log"
)

// DefaultFileMode is the permission used when WriteTextFile creates a file
const DefaultFileMode fs.FileMode = 0o644

// logger overrides the default logger when set
var logger atomic.Pointer[log.Logger]

// SetLogger replaces the logger used to report failures. Passing nil
// restores the package default logger.
func SetLogger(l *log.Logger) {
	if l == nil {
		logger.Store(nil)
		return
	}
	logger.Store(l.WithName(pyerrors.ModuleFilex))
}

func getLogger() *log.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return log.GetDefault().WithName(pyerrors.ModuleFilex)
}

// ===============================
// File Existence
// ===============================

// FileExists reports whether path names an existing file or directory
func FileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// ===============================
// Reading and Writing
// ===============================

// ReadEntireFile returns the complete content of path. The second result
// is false when the file cannot be opened or read.
func ReadEntireFile(path string) (string, bool) {
	content, err := ReadString(path)
	if err != nil {
		return "", false
	}
	return content, true
}

// WriteTextFile creates or truncates path and writes content to it. It
// returns false if the file could not be written.
func WriteTextFile(path, content string) bool {
	return WriteString(path, content) == nil
}

// ReadString returns the complete content of path. A missing file yields a
// NOT_FOUND error, any other failure an IO_FAILURE error.
func ReadString(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fail("ReadString", path, err)
	}
	return string(data), nil
}

// WriteString creates or truncates path with DefaultFileMode and writes
// content to it.
func WriteString(path, content string) error {
	if err := os.WriteFile(path, []byte(content), DefaultFileMode); err != nil {
		return fail("WriteString", path, err)
	}
	return nil
}

func fail(operation, path string, cause error) *pyerror.Error {
	var err *pyerror.Error
	if errors.Is(cause, fs.ErrNotExist) {
		err = pyerrors.NewErrorBuilder(pyerrors.ModuleFilex).
			Operation(operation).
			Messagef("file not found: %s", path).
			Cause(cause).
			Code(pyerror.CodeNotFound).
			Severity(pyerror.SeverityLow).
			Detail("path", path).
			Build()
	} else {
		err = pyerrors.OperationFailed(pyerrors.ModuleFilex, operation, cause).
			WithDetail("path", path)
	}

	getLogger().DebugWithErr("file operation failed", err, log.Fields{
		"operation": operation,
		"path":      path,
	})
	return err
}
