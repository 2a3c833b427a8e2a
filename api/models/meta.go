package models

type ThemeResponse struct {
	Name string `json:"name"`
}

type CategoryResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}
