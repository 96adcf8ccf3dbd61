// File: error_test.go
// Title: Core Error Tests
// Description: Tests for construction, wrapping, code matching and
//              serialization of the Error type.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial test implementation

package error

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestNewf(t *testing.T) {
	err := Newf("%s() arg is an empty container", "max")
	if err.Error() != "max() arg is an empty container" {
		t.Errorf("Newf() = %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap structured error keeps code",
			err:      New("read failed").WithCode(CodeIOFailure),
			message:  "wrapper message",
			wantMsg:  "wrapper message: read failed",
			wantCode: CodeIOFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}

			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}

			if got.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", got.Code(), tt.wantCode)
			}

			if !errors.Is(got, tt.err) {
				t.Error("errors.Is() should find the wrapped cause")
			}

			if got.Unwrap() != tt.err {
				t.Error("Unwrap() should return the original error")
			}
		})
	}
}

func TestIs(t *testing.T) {
	sentinel := New("empty container").WithCode(CodeEmptyContainer)

	t.Run("same code matches", func(t *testing.T) {
		err := New("max() arg is an empty container").WithCode(CodeEmptyContainer)
		if !errors.Is(err, sentinel) {
			t.Error("errors.Is() should match errors with the same code")
		}
	})

	t.Run("different code does not match", func(t *testing.T) {
		err := New("io").WithCode(CodeIOFailure)
		if errors.Is(err, sentinel) {
			t.Error("errors.Is() should not match different codes")
		}
	})

	t.Run("unknown code never matches", func(t *testing.T) {
		if errors.Is(New("a"), New("b")) {
			t.Error("errors.Is() should not match two CodeUnknown errors")
		}
	})

	t.Run("match through wrap chain", func(t *testing.T) {
		inner := New("min() arg is an empty container").WithCode(CodeEmptyContainer)
		outer := Wrap(errors.Join(inner), "demo failed").WithCode(CodeInternal)
		if !errors.Is(outer, sentinel) {
			t.Error("errors.Is() should walk the cause chain")
		}
	})
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeEmptyContainer, SeverityLow},
		{CodeIOFailure, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	t.Run("explicit severity is kept", func(t *testing.T) {
		err := New("x").WithSeverity(SeverityCritical).WithCode(CodeEmptyContainer)
		if err.Severity() != SeverityCritical {
			t.Errorf("Severity() = %v, want critical", err.Severity())
		}
	})
}

func TestDetails(t *testing.T) {
	err := New("x").WithDetail("path", "t.txt").WithDetails(map[string]interface{}{"size": 3})

	details := err.Details()
	if details["path"] != "t.txt" || details["size"] != 3 {
		t.Errorf("Details() = %v", details)
	}

	details["path"] = "changed"
	if err.Details()["path"] != "t.txt" {
		t.Error("Details() should return a copy")
	}
}

func TestRootCause(t *testing.T) {
	base := errors.New("permission denied")
	err := Wrap(Wrap(base, "open"), "read")

	if err.RootCause() != base {
		t.Errorf("RootCause() = %v, want %v", err.RootCause(), base)
	}

	single := New("alone")
	if single.RootCause() != single {
		t.Error("RootCause() of an unwrapped error should be itself")
	}
}

func TestHasCode(t *testing.T) {
	err := Wrap(New("inner").WithCode(CodeNotFound), "outer").WithCode(CodeIOFailure)

	if !HasCode(err, CodeIOFailure) {
		t.Error("HasCode() should match the outer code")
	}
	if !HasCode(err, CodeNotFound) {
		t.Error("HasCode() should match a code deeper in the chain")
	}
	if HasCode(errors.New("plain"), CodeNotFound) {
		t.Error("HasCode() should be false for plain errors")
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() should be CodeUnknown for plain errors")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity() should be SeverityMedium for plain errors")
	}
}

func TestString(t *testing.T) {
	err := New("failed").
		WithCode(CodeIOFailure).
		WithOperation("filex.ReadString").
		WithDetail("path", "a.txt")

	s := err.String()
	for _, want := range []string{"Error: failed", "Code: IO_FAILURE", "Operation: filex.ReadString", "path=a.txt"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in %q", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("disk full"), "write failed").
		WithCode(CodeIOFailure).
		WithOperation("filex.WriteString")

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("json.Marshal() error = %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("json.Unmarshal() error = %v", jerr)
	}

	if decoded["code"] != "IO_FAILURE" {
		t.Errorf("code = %v, want IO_FAILURE", decoded["code"])
	}
	if decoded["cause"] != "disk full" {
		t.Errorf("cause = %v, want disk full", decoded["cause"])
	}
	if decoded["operation"] != "filex.WriteString" {
		t.Errorf("operation = %v", decoded["operation"])
	}
}

func TestCode(t *testing.T) {
	if !CodeEmptyContainer.IsValid() {
		t.Error("CodeEmptyContainer should be valid")
	}
	if Code("NOPE").IsValid() {
		t.Error("unknown code should be invalid")
	}
	if CodeEmptyContainer.Category() != "sequence" {
		t.Errorf("Category() = %q", CodeEmptyContainer.Category())
	}
	if CodeIOFailure.Category() != "io" {
		t.Errorf("Category() = %q", CodeIOFailure.Category())
	}
}
