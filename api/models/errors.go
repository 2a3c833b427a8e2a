package models

import (
	"errors"

	"github.com/alex-pricope/idea-board/board"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
	Field string `json:"field,omitempty"`
}

func TransformError(err error) ErrorResponse {
	r := ErrorResponse{Error: err.Error(), Code: ErrorCodeFor(err)}
	var ve *board.ValidationError
	if errors.As(err, &ve) {
		r.Field = ve.Field
	}
	return r
}
