package ccfeplot

import "errors"

// Error kinds reported by a Session. Callers match them with errors.Is.
var (
	// ErrInvalidArgument covers bad grid dimensions, malformed target
	// specifiers and unrecognized or unparseable option values.
	ErrInvalidArgument = errors.New("ccfeplot: invalid argument")

	// ErrIndexOutOfRange is reported for a surface index outside the
	// grid configured at construction.
	ErrIndexOutOfRange = errors.New("ccfeplot: surface index out of range")

	// ErrUnsupported is reported for inputs whose intent is ambiguous,
	// like a bare integer surface target. The ambiguity is kept as an
	// explicit restriction, not silently resolved.
	ErrUnsupported = errors.New("ccfeplot: unsupported")
)
