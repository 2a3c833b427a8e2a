package controllers

import (
	"net/http"
	"strings"

	"github.com/alex-pricope/idea-board/api/models"
	"github.com/alex-pricope/idea-board/board"
	"github.com/gin-gonic/gin"
)

type MetaController struct{}

func NewMetaController() *MetaController {
	return &MetaController{}
}

func (c *MetaController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/meta")

	group.GET("/themes", c.themes)
	group.GET("/categories", c.categories)
}

// @Summary List the theme vocabulary
// @Tags meta
// @Produce json
// @Success 200 {array} models.ThemeResponse
// @Router /api/meta/themes [get]
func (c *MetaController) themes(g *gin.Context) {
	responses := make([]models.ThemeResponse, 0, len(board.Themes))
	for _, t := range board.Themes {
		responses = append(responses, models.ThemeResponse{Name: t})
	}
	g.JSON(http.StatusOK, responses)
}

// @Summary List the idea categories
// @Tags meta
// @Produce json
// @Success 200 {array} models.CategoryResponse
// @Router /api/meta/categories [get]
func (c *MetaController) categories(g *gin.Context) {
	responses := make([]models.CategoryResponse, 0, len(board.Categories))
	for _, cat := range board.Categories {
		responses = append(responses, models.CategoryResponse{Key: strings.ToUpper(string(cat)), Label: string(cat)})
	}
	g.JSON(http.StatusOK, responses)
}
