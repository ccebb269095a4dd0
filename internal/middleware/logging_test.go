package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	r := gin.New()
	r.Use(RequestLogger(logger), Sessions(staticValidator{"good": 7}))
	r.GET("/missing", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	t.Run("generates an id", func(t *testing.T) {
		logs.Reset()
		req := httptest.NewRequest(http.MethodGet, "/missing", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "good"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		id := w.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
		assert.Equal(t, "WARN", entry["level"])
		assert.Equal(t, "request completed", entry["msg"])
		assert.Equal(t, id, entry["request_id"])
		assert.Equal(t, float64(http.StatusNotFound), entry["status"])
		assert.Equal(t, "/missing", entry["path"])
		assert.Equal(t, float64(7), entry["user_id"])
	})

	t.Run("keeps a client id", func(t *testing.T) {
		logs.Reset()
		req := httptest.NewRequest(http.MethodGet, "/missing", nil)
		req.Header.Set(RequestIDHeader, "trace-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "trace-123", w.Header().Get(RequestIDHeader))
		assert.Contains(t, logs.String(), `"request_id":"trace-123"`)
		assert.NotContains(t, logs.String(), "user_id")
	})
}
