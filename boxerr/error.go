// Package boxerr defines the error taxonomy shared by every boxnote package.
package boxerr

import "fmt"

// Kind identifies the category of failure that occurred while reading a
// .note container.
type Kind int

const (
	// InvalidContainerFormat means the outer archive does not look like a
	// recognizable .note container (e.g. the archive is empty, its first
	// entry has no directory component, or a nested shape-group zip has
	// no entries).
	InvalidContainerFormat Kind = iota

	// Io wraps an underlying I/O failure (open, read, seek).
	Io

	// Json wraps a JSON decode failure, preserving the offending text.
	Json

	// Zip wraps a failure from the zip archive reader.
	Zip

	// ProtobufDecode wraps a failure decoding a protobuf-framed record.
	ProtobufDecode

	// UuidParse wraps a failure parsing a UUID string.
	UuidParse

	// UuidInvalidUtf8 means a UUID field's raw bytes were not valid UTF-8.
	UuidInvalidUtf8

	// InvalidTimestamp means a millisecond-epoch value could not be
	// represented as a valid timestamp.
	InvalidTimestamp

	// InvalidTimestampFormat means a textual timestamp could not be parsed.
	InvalidTimestampFormat

	// StrokeNotFound means a shape referenced a stroke id that is absent
	// from its points file.
	StrokeNotFound
)

func (k Kind) String() string {
	switch k {
	case InvalidContainerFormat:
		return "invalid container format"
	case Io:
		return "io"
	case Json:
		return "json"
	case Zip:
		return "zip"
	case ProtobufDecode:
		return "protobuf decode"
	case UuidParse:
		return "uuid parse"
	case UuidInvalidUtf8:
		return "uuid invalid utf8"
	case InvalidTimestamp:
		return "invalid timestamp"
	case InvalidTimestampFormat:
		return "invalid timestamp format"
	case StrokeNotFound:
		return "stroke not found"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by every boxnote package. It
// carries a Kind for programmatic dispatch (via Is) and an optional
// offending value for diagnostics.
type Error struct {
	Kind Kind

	// Message is a short human-readable description of the failure.
	Message string

	// Offending holds the raw input that triggered the error, when useful
	// for debugging (the malformed JSON string, the unparsable timestamp
	// text, the missing stroke id, etc). May be empty.
	Offending string

	// cause is the wrapped underlying error, if any.
	cause error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if e.cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.cause)
	}
	if e.Offending != "" {
		msg = fmt.Sprintf("%s (offending: %q)", msg, e.Offending)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is allows errors.Is(err, boxerr.New(kind, ...)) or
// errors.Is(err, boxerr.Sentinel(kind)) comparisons: any *Error target with
// the same Kind matches.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// New constructs an Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf constructs an Error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap constructs an Error of the given kind that wraps cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// WithOffending attaches the offending raw text to the error and returns it.
func (e *Error) WithOffending(offending string) *Error {
	e.Offending = offending
	return e
}

// Sentinel returns a zero-valued *Error of the given kind, suitable for use
// with errors.Is(err, boxerr.Sentinel(boxerr.StrokeNotFound)).
func Sentinel(kind Kind) *Error {
	return &Error{Kind: kind}
}
