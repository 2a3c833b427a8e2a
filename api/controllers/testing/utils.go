package testing

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	gotesting "testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// PerformRequest serves one request against router. A []byte or string body is
// sent as-is; anything else is sent as JSON.
func PerformRequest(router *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, requestBody(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

func requestBody(body interface{}) io.Reader {
	switch b := body.(type) {
	case nil:
		return &bytes.Buffer{}
	case []byte:
		return bytes.NewReader(b)
	case string:
		return bytes.NewBufferString(b)
	}

	jsonBytes, err := json.Marshal(body)
	if err != nil {
		panic("failed to marshal request body: " + err.Error())
	}
	return bytes.NewReader(jsonBytes)
}

// DecodeJSON fails the test unless the recorded body decodes into T.
func DecodeJSON[T any](t gotesting.TB, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
