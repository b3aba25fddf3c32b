package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingCapability is the kind reported by InvalidInterfaceError when a
// required interface member is nil.
var ErrMissingCapability = errors.New("missing required capability")

// UnregisteredStateError is returned when the theme or the style interface is
// requested before anything was registered.
type UnregisteredStateError struct {
	What string
}

// NewUnregisteredStateError constructs an UnregisteredStateError for the named value.
func NewUnregisteredStateError(what string) error {
	return &UnregisteredStateError{What: what}
}

func (e *UnregisteredStateError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unregistered state: no %s registered\nHint: register one at startup or provide it through context", e.What)
}

// InvalidInterfaceError reports a style interface lacking a required member.
type InvalidInterfaceError struct {
	Capability string
	Kind       error
}

// NewInvalidInterfaceError constructs an InvalidInterfaceError for a missing capability.
func NewInvalidInterfaceError(capability string) error {
	return &InvalidInterfaceError{Capability: capability, Kind: ErrMissingCapability}
}

func (e *InvalidInterfaceError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid style interface: %s: %v", e.Capability, e.Kind)
}

// Unwrap exposes the error kind.
func (e *InvalidInterfaceError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Kind
}

// StyleExtensionError identifies an extending declaration that touches a path
// the base component did not declare extensible, or whose predicate rejected the value.
type StyleExtensionError struct {
	Path    []string
	Message string
}

// NewStyleExtensionError constructs a StyleExtensionError for the given key path.
func NewStyleExtensionError(path []string, message string) error {
	return &StyleExtensionError{Path: append([]string(nil), path...), Message: message}
}

// PathString joins the offending path with dots, e.g. "container.color".
func (e *StyleExtensionError) PathString() string {
	if e == nil {
		return ""
	}
	return strings.Join(e.Path, ".")
}

func (e *StyleExtensionError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf(
		"extending style is invalid: %s: %s\nHint: if this style is expected, add it to the component's extendable styles",
		e.PathString(),
		e.Message,
	)
}

// ParseError represents a document parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures document or option validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
