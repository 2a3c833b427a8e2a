package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/alex-pricope/idea-board/api/models"
	"github.com/alex-pricope/idea-board/board"
	"github.com/alex-pricope/idea-board/logging"
	"github.com/gin-gonic/gin"
)

type ExportController struct {
	board *board.Board
}

func NewExportController(b *board.Board) *ExportController {
	return &ExportController{board: b}
}

func (c *ExportController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/export")

	group.GET("/csv", c.csv)
	group.GET("/xlsx", c.xlsx)
}

// @Summary Export the current view as CSV
// @Tags export
// @Produce text/csv
// @Success 200 {file} file
// @Failure 404 {object} models.ErrorResponse "Current view is empty"
// @Router /api/export/csv [get]
func (c *ExportController) csv(g *gin.Context) {
	data, name, err := c.board.ExportCSV()
	c.write(g, data, name, board.CSVContentType, err)
}

// @Summary Export the current view as an Excel workbook
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 404 {object} models.ErrorResponse "Current view is empty"
// @Router /api/export/xlsx [get]
func (c *ExportController) xlsx(g *gin.Context) {
	data, name, err := c.board.ExportXLSX()
	c.write(g, data, name, board.XLSXContentType, err)
}

func (c *ExportController) write(g *gin.Context, data []byte, name, contentType string, err error) {
	if err != nil {
		if errors.Is(err, board.ErrNothingToExport) {
			g.JSON(http.StatusNotFound, models.TransformError(err))
			return
		}
		logging.Log.Errorf("EXPORT: failed to export %s: %v", name, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not export ideas", Code: models.CodeInternal})
		return
	}

	logging.Log.Infof("EXPORT: serving %s (%d bytes)", name, len(data))
	g.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	g.Data(http.StatusOK, contentType, data)
}
