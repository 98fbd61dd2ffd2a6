package adapter

import "errors"

var (
	// ErrCouldNotConnect replaces recognized driver authentication
	// failures at connect time; lower-level detail is discarded. Every
	// other connect-time error propagates unmodified.
	ErrCouldNotConnect = errors.New("could not connect to the database")

	// ErrCursorClosed is returned when a fetch or execute is attempted on
	// a closed cursor. Closing twice is a no-op; using a closed cursor is
	// a contract violation.
	ErrCursorClosed = errors.New("cursor is closed")

	// ErrNoResultSet is returned when fetching before any query executed.
	ErrNoResultSet = errors.New("no result set, execute a query first")

	// ErrLastInsertID is returned unconditionally by LastInsertID:
	// generated keys come back through the insert statement's OUTPUT
	// clause, and session-global identity state must not be consulted.
	ErrLastInsertID = errors.New("last inserted id is returned by the insert statement itself")

	// ErrBadTemplate is returned for malformed query templates: stray
	// percent characters in a bound statement or a marker count that does
	// not match the parameter count.
	ErrBadTemplate = errors.New("malformed query template")
)
