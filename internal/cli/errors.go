// Package cli implements the command-line interface.
package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by agents.
const (
	// Command errors
	ErrCommandNotFound  = "COMMAND_NOT_FOUND"
	ErrCommandAmbiguous = "AMBIGUOUS_COMMAND"
	ErrCommandBuiltin   = "BUILTIN_COMMAND"

	// Input errors
	ErrInvalidInput    = "INVALID_INPUT"
	ErrInvalidScope    = "INVALID_SCOPE"
	ErrMissingArgument = "MISSING_ARGUMENT"
	ErrProjectRequired = "PROJECT_REQUIRED"

	// File errors
	ErrFileReadError  = "FILE_READ_ERROR"
	ErrFileWriteError = "FILE_WRITE_ERROR"

	// Config errors
	ErrConfigInvalid = "CONFIG_ERROR"

	// Editor errors
	ErrEditorFailed = "EDITOR_FAILED"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)

// Warning codes for non-fatal issues.
const (
	WarnLoadFailed = "COMMAND_LOAD_FAILED"
)
