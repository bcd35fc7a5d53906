package squad

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode identifies the kind of a structured error; callers pattern-match
// on the code rather than the message.
type ErrorCode string

const (
	ErrCodeIO             ErrorCode = "io_error"
	ErrCodeParse          ErrorCode = "parse_error"
	ErrCodeValidation     ErrorCode = "validation_error"
	ErrCodeAssignment     ErrorCode = "assignment_error"
	ErrCodeFilterConflict ErrorCode = "filter_conflict"
	ErrCodeInternal       ErrorCode = "internal_error"
)

// Error is the single structured error type surfaced by the engine. Detail
// fields identify the offending entity; zero values mean not applicable.
type Error struct {
	Code   ErrorCode
	Msg    string
	Roles  []RoleID
	Player string
	Filter string
	Line   int
	cause  error
}

// NewError creates a structured error with the given code and message
func NewError(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// WithRole records an offending role on the error
func (e *Error) WithRole(role RoleID) *Error {
	e.Roles = append(e.Roles, role)
	return e
}

// WithRoles records all offending roles on the error
func (e *Error) WithRoles(roles []RoleID) *Error {
	e.Roles = append(e.Roles, roles...)
	return e
}

// WithPlayer records the offending player on the error
func (e *Error) WithPlayer(name string) *Error {
	e.Player = name
	return e
}

// WithFilter records the offending filter on the error
func (e *Error) WithFilter(filter string) *Error {
	e.Filter = filter
	return e
}

// WithLine records the offending input line on the error
func (e *Error) WithLine(line int) *Error {
	e.Line = line
	return e
}

// WithCause records the underlying error
func (e *Error) WithCause(cause error) *Error {
	e.cause = cause
	return e
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", e.Code, e.Msg)
	if len(e.Roles) > 0 {
		parts := make([]string, len(e.Roles))
		for i, r := range e.Roles {
			parts[i] = string(r)
		}
		fmt.Fprintf(&b, " (role %s)", strings.Join(parts, ", "))
	}
	if e.Player != "" {
		fmt.Fprintf(&b, " (player %q)", e.Player)
	}
	if e.Filter != "" {
		fmt.Fprintf(&b, " (filter %s)", e.Filter)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " (line %d)", e.Line)
	}
	if e.cause != nil {
		fmt.Fprintf(&b, ": %v", e.cause)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.cause
}

// CodeOf extracts the error code from err, or ErrCodeInternal when err is not
// a structured error.
func CodeOf(err error) ErrorCode {
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return ErrCodeInternal
}
