package board

import "errors"

var (
	ErrMissingField     = errors.New("missing required field")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrNoThemeSelected  = errors.New("no theme selected")
	ErrUnknownTheme     = errors.New("unknown theme")
	ErrInvalidCategory  = errors.New("invalid category")
	ErrInvalidSort      = errors.New("invalid sort option")
	ErrInvalidDirection = errors.New("invalid vote direction")
	ErrIdeaNotFound     = errors.New("idea not found")
	ErrAlreadyVoted     = errors.New("idea already voted")
	ErrNothingToExport  = errors.New("no ideas to export")
)

// ValidationError carries the user-facing message for the first failing rule.
type ValidationError struct {
	Err     error
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
