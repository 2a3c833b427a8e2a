package models

import "github.com/alex-pricope/idea-board/board"

// ViewUpdateRequest changes only the fields that are present.
type ViewUpdateRequest struct {
	Theme    *string `json:"theme,omitempty"`
	Category *string `json:"category,omitempty"`
	Sort     *string `json:"sort,omitempty"`
}

type ViewResponse struct {
	Theme    string `json:"theme"`
	Category string `json:"category"`
	Sort     string `json:"sort"`
}

func TransformSelection(sel board.Selection) ViewResponse {
	return ViewResponse{
		Theme:    sel.Theme,
		Category: sel.Category,
		Sort:     string(sel.Sort),
	}
}
