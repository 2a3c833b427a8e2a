package models

import (
	"time"

	"github.com/alex-pricope/idea-board/board"
)

type IdeaCreateRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	Themes         []string `json:"themes"`
	AuthorName     string   `json:"authorName"`
	AuthorEmail    string   `json:"authorEmail"`
	AuthorTeam     string   `json:"authorTeam"`
	AuthorDivision string   `json:"authorDivision"`
}

func (r IdeaCreateRequest) ToRaw() board.RawIdea {
	return board.RawIdea{
		Title:          r.Title,
		Description:    r.Description,
		Category:       r.Category,
		Themes:         r.Themes,
		AuthorName:     r.AuthorName,
		AuthorEmail:    r.AuthorEmail,
		AuthorTeam:     r.AuthorTeam,
		AuthorDivision: r.AuthorDivision,
	}
}

// EmptyIdeaForm is what a client resets its inputs to after a successful submit.
func EmptyIdeaForm() IdeaCreateRequest {
	return IdeaCreateRequest{
		Category: string(board.CategoryAI),
		Themes:   []string{},
	}
}

type IdeaResponse struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Votes          int       `json:"votes"`
	CreatedAt      time.Time `json:"createdAt"`
	Themes         []string  `json:"themes"`
	Category       string    `json:"category"`
	AuthorName     string    `json:"authorName"`
	AuthorEmail    string    `json:"authorEmail"`
	AuthorTeam     string    `json:"authorTeam"`
	AuthorDivision string    `json:"authorDivision"`
	Voted          string    `json:"voted,omitempty"`
}

type IdeaCreatedResponse struct {
	Idea IdeaResponse      `json:"idea"`
	Form IdeaCreateRequest `json:"form"`
}

type VoteRequest struct {
	Direction string `json:"direction"`
}

type VotesResponse struct {
	Votes map[int64]string `json:"votes"`
}

func TransformIdea(idea board.Idea, votes map[int64]board.Direction) IdeaResponse {
	return IdeaResponse{
		ID:             idea.ID,
		Title:          idea.Title,
		Description:    idea.Description,
		Votes:          idea.Votes,
		CreatedAt:      idea.CreatedAt,
		Themes:         idea.Themes,
		Category:       string(idea.Category),
		AuthorName:     idea.AuthorName,
		AuthorEmail:    idea.AuthorEmail,
		AuthorTeam:     idea.AuthorTeam,
		AuthorDivision: idea.AuthorDivision,
		Voted:          string(votes[idea.ID]),
	}
}

func TransformVotes(votes map[int64]board.Direction) VotesResponse {
	r := VotesResponse{Votes: make(map[int64]string, len(votes))}
	for id, d := range votes {
		r.Votes[id] = string(d)
	}
	return r
}
