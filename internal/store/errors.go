// ABOUTME: Error taxonomy shared by the file, word and activity stores
// ABOUTME: Callers match with errors.Is; messages carry the detail
package store

import "errors"

var (
	// ErrIO reports a failed directory creation, read or write.
	ErrIO = errors.New("io failure")

	// ErrParse reports a stored JSON document that could not be decoded.
	ErrParse = errors.New("parse failure")

	// ErrNotFound reports a lookup key that is absent where presence is required.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument reports an unrecognized mode or malformed input.
	ErrInvalidArgument = errors.New("invalid argument")
)
