package controllers

import (
	"context"
	"testing"
	"time"

	"github.com/alex-pricope/idea-board/board"
	"github.com/alex-pricope/idea-board/logging"
	"github.com/alex-pricope/idea-board/storage"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var testNow = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

func setupTestBoardRouter(t *testing.T, kv storage.KeyValueStore, opts ...board.Option) (*board.Board, *gin.Engine) {
	t.Helper()
	logging.Log = logrus.New()

	if kv == nil {
		kv = storage.NewMemoryStore()
	}
	opts = append([]board.Option{board.WithClock(func() time.Time { return testNow })}, opts...)
	b := board.NewBoard(context.Background(), kv, opts...)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewIdeasController(b).RegisterRoutes(r)
	NewViewController(b).RegisterRoutes(r)
	NewExportController(b).RegisterRoutes(r)
	NewMetaController().RegisterRoutes(r)

	return b, r
}
