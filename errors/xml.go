// Package errors defines the recoverable error kinds surfaced by the tree
// handle layer. Contract violations by callers are not represented here;
// those panic at the call site.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies one recoverable failure kind.
type ErrorCode string

const (
	// ErrInvalidStringEncoding indicates input bytes or text could not be
	// matched to a usable character encoding.
	ErrInvalidStringEncoding ErrorCode = "invalid-string-encoding"
	// ErrNoMemory indicates an XPath evaluation context could not be
	// allocated.
	ErrNoMemory ErrorCode = "xpath-context-alloc"
	// ErrEvaluationFailed indicates XPath evaluation ran but returned no
	// usable node set; it covers malformed expressions and engine-internal
	// faults without distinguishing them further.
	ErrEvaluationFailed ErrorCode = "xpath-eval-failed"
)

// XML is an error with a code and a human-readable message.
type XML struct {
	Code    ErrorCode
	Message string
}

// Error returns "code: message".
func (e *XML) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// New returns an error with the given code and message.
func New(code ErrorCode, message string) *XML {
	return &XML{Code: code, Message: message}
}

// Newf returns an error with the given code and a formatted message.
func Newf(code ErrorCode, format string, args ...any) *XML {
	return &XML{Code: code, Message: fmt.Sprintf(format, args...)}
}

// AsXML unwraps err to an *XML if one is in its chain.
func AsXML(err error) (*XML, bool) {
	var x *XML
	if errors.As(err, &x) {
		return x, true
	}
	return nil, false
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code ErrorCode) bool {
	if x, ok := AsXML(err); ok {
		return x.Code == code
	}
	return false
}
