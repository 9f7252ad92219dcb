package cli

import (
	"errors"

	"github.com/thenoetrevino/remark/internal/config"
	"github.com/thenoetrevino/remark/internal/models"
)

// ErrValidation is returned when submitted fields fail validation
var ErrValidation = errors.New("validation failed")

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures, or any error that
	// doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Invalid flags or configuration values.
	ExitUsage = 2

	// ExitNotFound indicates a requested comment was not found.
	ExitNotFound = 3

	// ExitValidation indicates a validation error.
	// Use for: Empty author or text in line mode.
	ExitValidation = 5
)

// ExitCode maps an error returned by a command to a process exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, config.ErrInvalidConfig):
		return ExitUsage
	case errors.Is(err, models.ErrCommentNotFound):
		return ExitNotFound
	case errors.Is(err, ErrValidation):
		return ExitValidation
	default:
		return ExitError
	}
}
