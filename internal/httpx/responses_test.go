package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONSuccess(t *testing.T) {
	t.Run("without request id", func(t *testing.T) {
		w := httptest.NewRecorder()
		JSONSuccess(w, httptest.NewRequest(http.MethodGet, "/", nil), map[string]int{"count": 2}, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"success":true,"data":{"count":2}}`, w.Body.String())
	})

	t.Run("with request id and meta", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r = r.WithContext(ContextWithRequestID(r.Context(), "req-1"))
		w := httptest.NewRecorder()
		JSONSuccess(w, r, []string{}, map[string]any{"total": 0})

		assert.JSONEq(t, `{"success":true,"data":[],"meta":{"request_id":"req-1","total":0}}`, w.Body.String())
	})
}

func TestJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	JSONError(w, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusNotFound, "NOT_FOUND", "Book not found",
		[]ErrorDetail{{Field: "id", Message: "unknown"}})

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	assert.Equal(t, "Book not found", resp.Error.Message)
	assert.Equal(t, []ErrorDetail{{Field: "id", Message: "unknown"}}, resp.Error.Details)
	assert.Nil(t, resp.Meta)
}
