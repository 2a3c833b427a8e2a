package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	testutils "github.com/alex-pricope/idea-board/api/controllers/testing"
	"github.com/alex-pricope/idea-board/api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validIdeaRequest() models.IdeaCreateRequest {
	return models.IdeaCreateRequest{
		Title:          "Self-serve payslips",
		Description:    "Let staff download payslips, without raising a ticket.",
		Themes:         []string{"Payroll"},
		AuthorName:     "Jane Doe",
		AuthorEmail:    "jane.doe@example.com",
		AuthorTeam:     "Finance",
		AuthorDivision: "Commercials",
	}
}

func TestListIdeas(t *testing.T) {
	_, router := setupTestBoardRouter(t, nil)

	t.Run("Happy path - seeded ideas by popularity", func(t *testing.T) {
		w := testutils.PerformRequest(router, http.MethodGet, "/api/ideas", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		ideas := testutils.DecodeJSON[[]models.IdeaResponse](t, w)
		require.Len(t, ideas, 4)
		assert.Equal(t, int64(3), ideas[0].ID)
		assert.Equal(t, 42, ideas[0].Votes)
		assert.Empty(t, ideas[0].Voted)
	})
}

func TestSubmitIdea(t *testing.T) {
	_, router := setupTestBoardRouter(t, nil)

	t.Run("Happy path - created with empty form", func(t *testing.T) {
		w := testutils.PerformRequest(router, http.MethodPost, "/api/ideas", validIdeaRequest(), nil)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		created := testutils.DecodeJSON[models.IdeaCreatedResponse](t, w)
		assert.Equal(t, testNow.UnixMilli(), created.Idea.ID)
		assert.Equal(t, 0, created.Idea.Votes)
		assert.Equal(t, "AI", created.Idea.Category)
		assert.Equal(t, models.EmptyIdeaForm(), created.Form)

		get := testutils.PerformRequest(router, http.MethodGet, "/api/ideas/"+jsonNumber(created.Idea.ID), nil, nil)
		assert.Equal(t, http.StatusOK, get.Code)
	})

	t.Run("Unhappy path - invalid email", func(t *testing.T) {
		req := models.IdeaCreateRequest{
			Title: "X", Description: "Y", AuthorName: "A", AuthorEmail: "bad",
			AuthorTeam: "T", AuthorDivision: "D", Themes: []string{"Ops"},
		}
		w := testutils.PerformRequest(router, http.MethodPost, "/api/ideas", req, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		resp := testutils.DecodeJSON[models.ErrorResponse](t, w)
		assert.Equal(t, models.CodeInvalidEmail, resp.Code)
		assert.Equal(t, "authorEmail", resp.Field)
		assert.Equal(t, "Please enter a valid email address.", resp.Error)
	})

	t.Run("Unhappy path - missing field", func(t *testing.T) {
		req := validIdeaRequest()
		req.Description = "  "
		w := testutils.PerformRequest(router, http.MethodPost, "/api/ideas", req, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), models.CodeMissingField)
	})

	t.Run("Unhappy path - no theme", func(t *testing.T) {
		req := validIdeaRequest()
		req.Themes = nil
		w := testutils.PerformRequest(router, http.MethodPost, "/api/ideas", req, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), models.CodeNoThemeSelected)
	})

	t.Run("Unhappy path - malformed body", func(t *testing.T) {
		w := testutils.PerformRequest(router, http.MethodPost, "/api/ideas", "not an object", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), models.CodeInvalidRequest)
	})
}

func TestVoteIdea(t *testing.T) {
	_, router := setupTestBoardRouter(t, nil)

	t.Run("Happy path - upvote then rejected downvote", func(t *testing.T) {
		w := testutils.PerformRequest(router, http.MethodPost, "/api/ideas/2/vote", models.VoteRequest{Direction: "up"}, nil)
		require.Equal(t, http.StatusOK, w.Code)

		idea := testutils.DecodeJSON[models.IdeaResponse](t, w)
		assert.Equal(t, 16, idea.Votes)
		assert.Equal(t, "up", idea.Voted)

		again := testutils.PerformRequest(router, http.MethodPost, "/api/ideas/2/vote", models.VoteRequest{Direction: "down"}, nil)
		assert.Equal(t, http.StatusConflict, again.Code)
		assert.Contains(t, again.Body.String(), models.CodeAlreadyVoted)

		get := testutils.PerformRequest(router, http.MethodGet, "/api/ideas/2", nil, nil)
		idea = testutils.DecodeJSON[models.IdeaResponse](t, get)
		assert.Equal(t, 16, idea.Votes)
	})

	t.Run("Happy path - ledger lists the vote", func(t *testing.T) {
		w := testutils.PerformRequest(router, http.MethodGet, "/api/votes", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"votes":{"2":"up"}}`, w.Body.String())
	})

	t.Run("Unhappy path - unknown idea", func(t *testing.T) {
		w := testutils.PerformRequest(router, http.MethodPost, "/api/ideas/404/vote", models.VoteRequest{Direction: "up"}, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Unhappy path - bad direction", func(t *testing.T) {
		w := testutils.PerformRequest(router, http.MethodPost, "/api/ideas/1/vote", models.VoteRequest{Direction: "sideways"}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), models.CodeInvalidDirection)
	})

	t.Run("Unhappy path - bad id", func(t *testing.T) {
		w := testutils.PerformRequest(router, http.MethodPost, "/api/ideas/abc/vote", models.VoteRequest{Direction: "up"}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func jsonNumber(id int64) string {
	b, _ := json.Marshal(id)
	return string(b)
}
