package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/alex-pricope/idea-board/api/models"
	"github.com/alex-pricope/idea-board/board"
	"github.com/alex-pricope/idea-board/logging"
	"github.com/gin-gonic/gin"
)

type IdeasController struct {
	board *board.Board
}

func NewIdeasController(b *board.Board) *IdeasController {
	return &IdeasController{board: b}
}

func (c *IdeasController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api")

	group.GET("/ideas", c.list)
	group.POST("/ideas", c.submit)
	group.GET("/ideas/:id", c.get)
	group.POST("/ideas/:id/vote", c.vote)
	group.GET("/votes", c.votes)
}

// list godoc
// @Summary List ideas in the current view
// @Description Ideas filtered and sorted by the current view selection, annotated with this client's vote
// @Tags ideas
// @Produce json
// @Success 200 {array} models.IdeaResponse
// @Router /api/ideas [get]
func (c *IdeasController) list(g *gin.Context) {
	view := c.board.View()
	votes := c.board.Votes()

	responses := make([]models.IdeaResponse, 0, len(view))
	for _, idea := range view {
		responses = append(responses, models.TransformIdea(idea, votes))
	}
	g.JSON(http.StatusOK, responses)
}

// submit godoc
// @Summary Submit a new idea
// @Description Validates the submission and prepends it to the board. The response carries an empty form to reset inputs with.
// @Tags ideas
// @Accept json
// @Produce json
// @Param idea body models.IdeaCreateRequest true "Idea submission"
// @Success 201 {object} models.IdeaCreatedResponse
// @Failure 400 {object} models.ErrorResponse "First failing validation rule"
// @Router /api/ideas [post]
func (c *IdeasController) submit(g *gin.Context) {
	var req models.IdeaCreateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		logging.Log.Errorf("IDEAS: invalid submit request: %v", err)
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request format", Code: models.CodeInvalidRequest})
		return
	}

	idea, err := c.board.Submit(g.Request.Context(), req.ToRaw())
	if err != nil {
		var ve *board.ValidationError
		if errors.As(err, &ve) {
			logging.Log.Warnf("IDEAS: rejected submission on '%s': %v", ve.Field, ve.Err)
			g.JSON(http.StatusBadRequest, models.TransformError(err))
			return
		}
		logging.Log.Errorf("IDEAS: failed to submit idea: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not save idea", Code: models.CodeInternal})
		return
	}

	g.JSON(http.StatusCreated, models.IdeaCreatedResponse{
		Idea: models.TransformIdea(idea, nil),
		Form: models.EmptyIdeaForm(),
	})
}

// get godoc
// @Summary Get an idea
// @Tags ideas
// @Produce json
// @Param id path int true "Idea ID"
// @Success 200 {object} models.IdeaResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/ideas/{id} [get]
func (c *IdeasController) get(g *gin.Context) {
	id, ok := ideaID(g)
	if !ok {
		return
	}

	idea, found := c.board.Idea(id)
	if !found {
		g.JSON(http.StatusNotFound, models.TransformError(board.ErrIdeaNotFound))
		return
	}
	g.JSON(http.StatusOK, models.TransformIdea(idea, c.board.Votes()))
}

// vote godoc
// @Summary Vote on an idea
// @Description Each idea accepts one vote from this client. Repeated votes are rejected and change nothing.
// @Tags voting
// @Accept json
// @Produce json
// @Param id path int true "Idea ID"
// @Param vote body models.VoteRequest true "Vote direction, up or down"
// @Success 200 {object} models.IdeaResponse
// @Failure 400 {object} models.ErrorResponse "Invalid direction"
// @Failure 404 {object} models.ErrorResponse "Idea not found"
// @Failure 409 {object} models.ErrorResponse "Already voted"
// @Failure 500 {object} models.ErrorResponse "Vote could not be persisted"
// @Router /api/ideas/{id}/vote [post]
func (c *IdeasController) vote(g *gin.Context) {
	id, ok := ideaID(g)
	if !ok {
		return
	}

	var req models.VoteRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request format", Code: models.CodeInvalidRequest})
		return
	}
	dir, ok := board.ParseDirection(req.Direction)
	if !ok {
		g.JSON(http.StatusBadRequest, models.TransformError(board.ErrInvalidDirection))
		return
	}

	idea, err := c.board.Vote(g.Request.Context(), id, dir)
	switch {
	case err == nil:
		logging.Log.Infof("VOTE: recorded %s on idea %d", dir, id)
		g.JSON(http.StatusOK, models.TransformIdea(idea, c.board.Votes()))
	case errors.Is(err, board.ErrAlreadyVoted):
		logging.Log.Infof("VOTE: idea %d already voted, ignoring", id)
		g.JSON(http.StatusConflict, models.TransformError(err))
	case errors.Is(err, board.ErrIdeaNotFound):
		g.JSON(http.StatusNotFound, models.TransformError(err))
	default:
		logging.Log.Errorf("VOTE: failed to record vote on idea %d: %v", id, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not save vote", Code: models.CodeInternal})
	}
}

// votes godoc
// @Summary Get this client's vote ledger
// @Tags voting
// @Produce json
// @Success 200 {object} models.VotesResponse
// @Router /api/votes [get]
func (c *IdeasController) votes(g *gin.Context) {
	g.JSON(http.StatusOK, models.TransformVotes(c.board.Votes()))
}

func ideaID(g *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(g.Param("id"), 10, 64)
	if err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid idea id", Code: models.CodeInvalidRequest})
		return 0, false
	}
	return id, true
}
