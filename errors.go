package darija

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrDuplicateToken indicates a table was built with the same token twice.
	ErrDuplicateToken = errors.New("darija: duplicate token")

	// ErrInvalidToken indicates a table entry with an empty or
	// non-lowercase-ASCII token, or an empty replacement.
	ErrInvalidToken = errors.New("darija: invalid table entry")

	// ErrModelNotFound indicates the model file does not exist.
	ErrModelNotFound = errors.New("darija: model file not found")

	// ErrInvalidModel indicates the model file exists but is malformed.
	ErrInvalidModel = errors.New("darija: invalid model format")

	// ErrVocabFailed indicates vocabulary initialization failed.
	ErrVocabFailed = errors.New("darija: vocabulary initialization failed")
)
