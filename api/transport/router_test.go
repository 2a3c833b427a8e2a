package transport

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func perform(r *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.TestMode)
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, RequestID(c))
	})

	t.Run("Happy path - generates a request id", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/ping", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		id := w.Header().Get(RequestIDHeader)
		assert.Len(t, id, 12)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("Happy path - keeps the caller request id", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/ping", map[string]string{RequestIDHeader: "abc"})
		assert.Equal(t, "abc", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc", w.Body.String())
	})

	t.Run("Happy path - CORS preflight", func(t *testing.T) {
		w := perform(r, http.MethodOptions, "/api/ideas", nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PUT")
	})

	t.Run("Unhappy path - unknown route", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/nope", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"code":"PAGE_NOT_FOUND","message":"Page not found"}`, w.Body.String())
	})
}
