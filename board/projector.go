package board

import (
	"slices"
	"sort"
)

// Project filters ideas by sel and orders them stably. ideas is not modified.
func Project(ideas []Idea, sel Selection) []Idea {
	out := make([]Idea, 0, len(ideas))
	for _, idea := range ideas {
		if matchesTheme(idea, sel.Theme) && matchesCategory(idea, sel.Category) {
			out = append(out, idea.clone())
		}
	}

	switch sel.Sort {
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Votes > out[j].Votes
		})
	}
	return out
}

func matchesTheme(idea Idea, theme string) bool {
	return theme == "" || isAll(theme) || slices.Contains(idea.Themes, theme)
}

func matchesCategory(idea Idea, category string) bool {
	if category == "" || isAll(category) {
		return true
	}
	c, ok := ParseCategory(category)
	return ok && idea.Category == c
}
