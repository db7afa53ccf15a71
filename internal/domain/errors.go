package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Character errors
	ErrMsgCharacterNotFound = "character not found"
	ErrMsgInvalidSnapshot   = "invalid character snapshot"

	// Stat table errors
	ErrMsgInvalidStatTable = "invalid stat table"

	// Ledger errors
	ErrMsgEntryNotFound = "ledger entry not found"
	ErrMsgInvalidEntry  = "invalid ledger entry"

	// Validation errors
	ErrMsgInvalidInput = "invalid input"
)

var (
	ErrCharacterNotFound = errors.New(ErrMsgCharacterNotFound)
	ErrInvalidSnapshot   = errors.New(ErrMsgInvalidSnapshot)

	ErrInvalidStatTable = errors.New(ErrMsgInvalidStatTable)

	ErrEntryNotFound = errors.New(ErrMsgEntryNotFound)
	ErrInvalidEntry  = errors.New(ErrMsgInvalidEntry)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
