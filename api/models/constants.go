package models

import (
	"errors"

	"github.com/alex-pricope/idea-board/board"
)

const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeMissingField     = "MISSING_FIELD"
	CodeInvalidEmail     = "INVALID_EMAIL"
	CodeNoThemeSelected  = "NO_THEME_SELECTED"
	CodeUnknownTheme     = "UNKNOWN_THEME"
	CodeInvalidCategory  = "INVALID_CATEGORY"
	CodeInvalidSort      = "INVALID_SORT"
	CodeInvalidDirection = "INVALID_DIRECTION"
	CodeIdeaNotFound     = "IDEA_NOT_FOUND"
	CodeAlreadyVoted     = "ALREADY_VOTED"
	CodeNothingToExport  = "NOTHING_TO_EXPORT"
	CodeInternal         = "INTERNAL_ERROR"
)

var errorCodes = []struct {
	err  error
	code string
}{
	{board.ErrMissingField, CodeMissingField},
	{board.ErrInvalidEmail, CodeInvalidEmail},
	{board.ErrNoThemeSelected, CodeNoThemeSelected},
	{board.ErrUnknownTheme, CodeUnknownTheme},
	{board.ErrInvalidCategory, CodeInvalidCategory},
	{board.ErrInvalidSort, CodeInvalidSort},
	{board.ErrInvalidDirection, CodeInvalidDirection},
	{board.ErrIdeaNotFound, CodeIdeaNotFound},
	{board.ErrAlreadyVoted, CodeAlreadyVoted},
	{board.ErrNothingToExport, CodeNothingToExport},
}

// ErrorCodeFor maps board errors to stable API codes.
func ErrorCodeFor(err error) string {
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	return CodeInternal
}
