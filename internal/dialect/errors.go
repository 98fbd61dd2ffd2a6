package dialect

import "errors"

// ErrNotSupported is returned when a translator is asked for a calendar
// unit, duration form, or lookup kind it does not implement. This is a
// contract violation by the caller, raised synchronously and never
// approximated.
var ErrNotSupported = errors.New("not supported")
