package board

import (
	"fmt"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Submit validates raw form input. Rules run in order and the first failure wins.
func Submit(raw RawIdea) (IdeaData, error) {
	data := IdeaData{
		Title:          strings.TrimSpace(raw.Title),
		Description:    strings.TrimSpace(raw.Description),
		AuthorName:     strings.TrimSpace(raw.AuthorName),
		AuthorEmail:    strings.TrimSpace(raw.AuthorEmail),
		AuthorTeam:     strings.TrimSpace(raw.AuthorTeam),
		AuthorDivision: strings.TrimSpace(raw.AuthorDivision),
	}

	required := []struct {
		field string
		value string
	}{
		{"title", data.Title},
		{"description", data.Description},
		{"authorName", data.AuthorName},
		{"authorEmail", data.AuthorEmail},
		{"authorTeam", data.AuthorTeam},
		{"authorDivision", data.AuthorDivision},
	}
	for _, r := range required {
		if r.value == "" {
			return IdeaData{}, &ValidationError{
				Err:     ErrMissingField,
				Field:   r.field,
				Message: "Please fill out all required fields.",
			}
		}
	}

	if !emailPattern.MatchString(data.AuthorEmail) {
		return IdeaData{}, &ValidationError{
			Err:     ErrInvalidEmail,
			Field:   "authorEmail",
			Message: "Please enter a valid email address.",
		}
	}

	themes := make([]string, 0, len(raw.Themes))
	seen := make(map[string]bool, len(raw.Themes))
	for _, t := range raw.Themes {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		themes = append(themes, t)
	}
	if len(themes) == 0 {
		return IdeaData{}, &ValidationError{
			Err:     ErrNoThemeSelected,
			Field:   "themes",
			Message: "Please select at least one theme.",
		}
	}
	for _, t := range themes {
		if !IsKnownTheme(t) {
			return IdeaData{}, &ValidationError{
				Err:     ErrUnknownTheme,
				Field:   "themes",
				Message: fmt.Sprintf("Unknown theme: %s.", t),
			}
		}
	}
	data.Themes = themes

	data.Category = CategoryAI
	if strings.TrimSpace(raw.Category) != "" {
		c, ok := ParseCategory(raw.Category)
		if !ok {
			return IdeaData{}, &ValidationError{
				Err:     ErrInvalidCategory,
				Field:   "category",
				Message: fmt.Sprintf("Unknown category: %s.", raw.Category),
			}
		}
		data.Category = c
	}

	return data, nil
}
