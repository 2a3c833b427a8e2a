package controllers

import (
	"net/http"

	"github.com/alex-pricope/idea-board/api/models"
	"github.com/alex-pricope/idea-board/board"
	"github.com/alex-pricope/idea-board/logging"
	"github.com/gin-gonic/gin"
)

type ViewController struct {
	board *board.Board
}

func NewViewController(b *board.Board) *ViewController {
	return &ViewController{board: b}
}

func (c *ViewController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/view")

	group.GET("", c.get)
	group.PUT("", c.update)
}

// @Summary Get the current filter and sort selection
// @Tags view
// @Produce json
// @Success 200 {object} models.ViewResponse
// @Router /api/view [get]
func (c *ViewController) get(g *gin.Context) {
	g.JSON(http.StatusOK, models.TransformSelection(c.board.Selection()))
}

// @Summary Change the filter and sort selection
// @Description Only the fields present are changed. Nothing changes if any field is invalid.
// @Tags view
// @Accept json
// @Produce json
// @Param view body models.ViewUpdateRequest true "Selection changes"
// @Success 200 {object} models.ViewResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/view [put]
func (c *ViewController) update(g *gin.Context) {
	var req models.ViewUpdateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		logging.Log.Errorf("VIEW: invalid update request: %v", err)
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request format", Code: models.CodeInvalidRequest})
		return
	}

	sel, err := c.board.UpdateSelection(req.Theme, req.Category, req.Sort)
	if err != nil {
		logging.Log.Warnf("VIEW: rejected selection change: %v", err)
		g.JSON(http.StatusBadRequest, models.TransformError(err))
		return
	}
	g.JSON(http.StatusOK, models.TransformSelection(sel))
}
