package srt

import "fmt"

// ErrorKind says why parsing failed. Each kind is also an error so it can be
// matched with errors.Is against a returned *Error.
type ErrorKind int

const (
	// the id line contained something other than ASCII digits
	InvalidID ErrorKind = iota + 1
	// the timestamp line was missing or had trailing bytes
	InvalidTimestampLine
	// the start timestamp is not of the form 01:23:45,678
	InvalidTimestampStart
	// the divider is not " --> "
	InvalidTimestampDivider
	// the end timestamp is not of the form 01:23:45,678
	InvalidTimestampEnd
	// the end timestamp is before the start
	TimestampEndBeforeStart
	// only reported by a Parser with RequireText set
	MissingText
)

// MissingTimestampLine is reported for an absent timestamp line.
const MissingTimestampLine = InvalidTimestampLine

func (k ErrorKind) String() string {
	switch k {
	case InvalidID:
		return "Invalid ID-marker"
	case InvalidTimestampLine:
		return "Invalid timestamp line"
	case InvalidTimestampStart:
		return "Invalid starting timestamp"
	case InvalidTimestampDivider:
		return "Invalid timestamp divider"
	case InvalidTimestampEnd:
		return "Invalid ending timestamp"
	case TimestampEndBeforeStart:
		return "End timestamp is before start"
	case MissingText:
		return "Missing subtitle text"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) Error() string {
	return k.String()
}

// Error locates a parse failure. Line is 1-indexed.
type Error struct {
	Line int
	Kind ErrorKind
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s on line %d", e.Kind, e.Line)
}

// Is matches a bare ErrorKind.
func (e *Error) Is(target error) bool {
	kind, ok := target.(ErrorKind)
	return ok && kind == e.Kind
}

func newError(line int, kind ErrorKind) *Error {
	return &Error{Line: line, Kind: kind}
}
