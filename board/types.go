// Package board holds the idea board state: the idea store, the vote ledger,
// the filter/sort projection and the export encoders.
package board

import (
	"slices"
	"strings"
	"time"
)

type Category string

const (
	CategoryAI         Category = "AI"
	CategoryAutomation Category = "Automation"
	CategoryGeneral    Category = "General"
)

// Categories lists the categories in display order.
var Categories = []Category{CategoryAI, CategoryAutomation, CategoryGeneral}

// Themes is the controlled theme vocabulary.
var Themes = []string{
	"Commercial",
	"Credit Control",
	"Management Accounts",
	"Operations",
	"Payroll",
	"Rev Ops",
	"User Experience",
}

// FilterAll disables a theme or category filter.
const FilterAll = "all"

type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

type SortOption string

const (
	SortPopularity SortOption = "POPULARITY"
	SortNewest     SortOption = "NEWEST"
)

type Idea struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Votes          int       `json:"votes"`
	CreatedAt      time.Time `json:"createdAt"`
	Themes         []string  `json:"themes"`
	Category       Category  `json:"category"`
	AuthorName     string    `json:"authorName"`
	AuthorEmail    string    `json:"authorEmail"`
	AuthorTeam     string    `json:"authorTeam"`
	AuthorDivision string    `json:"authorDivision"`
}

func (i Idea) clone() Idea {
	i.Themes = slices.Clone(i.Themes)
	return i
}

// IdeaData is a validated submission. The store assigns id, votes and timestamp.
type IdeaData struct {
	Title          string
	Description    string
	Themes         []string
	Category       Category
	AuthorName     string
	AuthorEmail    string
	AuthorTeam     string
	AuthorDivision string
}

// RawIdea is the unvalidated form input.
type RawIdea struct {
	Title          string
	Description    string
	Category       string
	Themes         []string
	AuthorName     string
	AuthorEmail    string
	AuthorTeam     string
	AuthorDivision string
}

type Selection struct {
	Theme    string     `json:"theme"`
	Category string     `json:"category"`
	Sort     SortOption `json:"sort"`
}

func DefaultSelection() Selection {
	return Selection{Theme: FilterAll, Category: FilterAll, Sort: SortPopularity}
}

// ParseCategory matches case-insensitively, so "AUTOMATION" is Automation.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, true
		}
	}
	return "", false
}

func ParseDirection(s string) (Direction, bool) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case DirectionUp:
		return DirectionUp, true
	case DirectionDown:
		return DirectionDown, true
	}
	return "", false
}

func ParseSortOption(s string) (SortOption, bool) {
	switch SortOption(strings.ToUpper(strings.TrimSpace(s))) {
	case SortPopularity:
		return SortPopularity, true
	case SortNewest:
		return SortNewest, true
	}
	return "", false
}

func IsKnownTheme(theme string) bool {
	return slices.Contains(Themes, theme)
}

func isAll(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), FilterAll)
}
