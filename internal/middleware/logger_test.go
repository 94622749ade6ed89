package middleware_test

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"dataquality/internal/middleware"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func TestRequestID_GeneratedAndEchoed(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/test", func(c *gin.Context) {
		id, _ := c.Get("request_id")
		c.String(http.StatusOK, id.(string))
	})

	w := get(r, http.MethodGet, "/test")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, w.Header().Get("X-Request-ID"), w.Body.String())
}

func TestRequestID_KeepsIncoming(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptestRequestWithHeader(r, "X-Request-ID", "req-123")
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		level      string
		status     int
		wantLogged bool
	}{
		{"info", http.StatusOK, true},
		{"warn", http.StatusOK, false},
		{"warn", http.StatusNotFound, true},
		{"error", http.StatusBadRequest, false},
		{"error", http.StatusInternalServerError, true},
	}

	for _, tt := range tests {
		buf := captureLog(t)
		r := gin.New()
		r.Use(middleware.Logger(tt.level))
		status := tt.status
		r.GET("/test", func(c *gin.Context) { c.Status(status) })

		get(r, http.MethodGet, "/test")
		assert.Equal(t, tt.wantLogged, bytes.Contains(buf.Bytes(), []byte("GET /test")), "%s/%d", tt.level, tt.status)
	}
}

func httptestRequestWithHeader(r http.Handler, key, value string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set(key, value)
	r.ServeHTTP(w, req)
	return w
}
