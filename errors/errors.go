package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDispatch Phase = "dispatch" // driver extension calls
	PhaseDevice   Phase = "device"   // device lifecycle
	PhaseRegistry Phase = "registry" // named-object table
	PhaseReport   Phase = "report"   // snapshot encode/decode
)

// Kind categorizes the error
type Kind string

const (
	KindDriverFailure Kind = "driver_failure"
	KindDeviceLost    Kind = "device_lost"
	KindUnsupported   Kind = "unsupported"
	KindInvalidData   Kind = "invalid_data"
	KindNotFound      Kind = "not_found"
	KindInvalidInput  Kind = "invalid_input"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause      error
	Phase      Phase
	Kind       Kind
	Object     uint64 // affected handle, 0 when not applicable
	ObjectType string
	Detail     string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Object != 0 || e.ObjectType != "" {
		b.WriteString(": ")
		if e.ObjectType != "" {
			b.WriteString(e.ObjectType)
			if e.Object != 0 {
				b.WriteByte(' ')
			}
		}
		if e.Object != 0 {
			fmt.Fprintf(&b, "0x%x", e.Object)
		}
	}

	if e.Detail != "" {
		if e.Object != 0 || e.ObjectType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Object sets the affected handle and object type name
func (b *Builder) Object(handle uint64, objectType string) *Builder {
	b.err.Object = handle
	b.err.ObjectType = objectType
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// DriverFailure wraps a non-success VkResult from an extension entry point
func DriverFailure(result error, detail string) *Error {
	return &Error{
		Phase:  PhaseDispatch,
		Kind:   KindDriverFailure,
		Detail: detail,
		Cause:  result,
	}
}

// DeviceLost reports an operation against a destroyed device
func DeviceLost(detail string) *Error {
	return &Error{
		Phase:  PhaseDevice,
		Kind:   KindDeviceLost,
		Detail: detail,
	}
}

// Unsupported reports a missing extension or capability
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Detail: detail,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
