package controllers

import (
	"net/http"
	"testing"

	testutils "github.com/alex-pricope/idea-board/api/controllers/testing"
	"github.com/alex-pricope/idea-board/api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeta(t *testing.T) {
	_, router := setupTestBoardRouter(t, nil)

	t.Run("Happy path - themes", func(t *testing.T) {
		w := testutils.PerformRequest(router, http.MethodGet, "/api/meta/themes", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		themes := testutils.DecodeJSON[[]models.ThemeResponse](t, w)
		require.Len(t, themes, 7)
		assert.Equal(t, "Commercial", themes[0].Name)
	})

	t.Run("Happy path - categories", func(t *testing.T) {
		w := testutils.PerformRequest(router, http.MethodGet, "/api/meta/categories", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"key":"AI","label":"AI"},{"key":"AUTOMATION","label":"Automation"},{"key":"GENERAL","label":"General"}]`, w.Body.String())
	})
}
