package swiftdsv

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrConfiguration is returned by New and NewFromConfig when the delimiter or escaper is unusable.
	ErrConfiguration = errors.New("swiftdsv: invalid configuration")
	// ErrMalformedInput is matched by every decode failure.
	ErrMalformedInput = errors.New("swiftdsv: malformed input")
	// ErrRaggedTable is returned when an encoded table is empty or its rows differ in width.
	ErrRaggedTable = errors.New("swiftdsv: ragged table")
	// ErrArityMismatch is returned when a data row does not match the header width.
	ErrArityMismatch = errors.New("swiftdsv: row does not match header arity")
	// ErrTypeMismatch is returned when dynamic record input is not text headers and sequence rows.
	ErrTypeMismatch = errors.New("swiftdsv: unexpected value type")
)

// Causes carried by ParseError.Err.
var (
	// ErrBareEscaper is reported when an escaper appears inside an unescaped field.
	ErrBareEscaper = errors.New("swiftdsv: bare escaper in unescaped field")
	// ErrBareCarriageReturn is reported when '\r' appears outside an escaped field.
	ErrBareCarriageReturn = errors.New("swiftdsv: carriage return outside escaped field")
	// ErrUnexpectedAfterEscaper is reported when a closing escaper is followed by anything but a delimiter or row end.
	ErrUnexpectedAfterEscaper = errors.New("swiftdsv: unexpected character after closing escaper")
	// ErrUnterminatedEscape is reported when the input ends inside an escaped field.
	ErrUnterminatedEscape = errors.New("swiftdsv: unterminated escaped field")
	// ErrNewlineInEscape is reported for '\n' inside an escaped field; embedded newlines are not supported.
	ErrNewlineInEscape = errors.New("swiftdsv: newline inside escaped field")
	// ErrFieldCount is reported when a row's width differs from the first row.
	ErrFieldCount = errors.New("swiftdsv: wrong number of fields")
)

// ConfigError describes a rejected delimiter or escaper.
type ConfigError struct {
	Option string
	Value  rune
	Reason string
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("swiftdsv: invalid %s %q: %s", e.Option, e.Value, e.Reason)
}

// Unwrap returns ErrConfiguration so callers can match with errors.Is.
func (e *ConfigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return ErrConfiguration
}

// ParseError contains location information for decoding errors.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

// Error formats the parse error message with the stored line, column, and Err values.
func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("swiftdsv: parse error on line %d, column %d: %v", e.Line, e.Column, e.Err)
}

// Unwrap returns the underlying Err so ParseError participates in errors.Unwrap.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports true for ErrMalformedInput, which every ParseError represents.
func (e *ParseError) Is(target error) bool {
	return target == ErrMalformedInput
}
