package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dataquality/internal/domain"
	"dataquality/internal/handler"
	"dataquality/mocks"
)

func TestCacheHandler_Clear(t *testing.T) {
	mockCache := new(mocks.MockResponseCache)
	h := handler.NewCacheHandler(mockCache, "api:")
	r := gin.New()
	r.POST("/cache/clear", h.Clear)

	mockCache.On("Clear", mock.Anything, "api:").Return(4, nil)

	w := performRequest(r, http.MethodPost, "/cache/clear", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool                   `json:"success"`
		Data    handler.CacheClearData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Data.Removed)
	mockCache.AssertExpectations(t)
}

func TestCacheHandler_Clear_Unavailable(t *testing.T) {
	mockCache := new(mocks.MockResponseCache)
	h := handler.NewCacheHandler(mockCache, "api:")
	r := gin.New()
	r.POST("/cache/clear", h.Clear)

	mockCache.On("Clear", mock.Anything, "api:").Return(1, fmt.Errorf("%w: dial tcp", domain.ErrCacheUnavailable))

	w := performRequest(r, http.MethodPost, "/cache/clear", "")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestCacheHandler_Stats(t *testing.T) {
	mockCache := new(mocks.MockResponseCache)
	h := handler.NewCacheHandler(mockCache, "api:")
	r := gin.New()
	r.GET("/cache/stats", h.Stats)

	mockCache.On("Stats", mock.Anything).Return(domain.CacheStats{Backend: "redis", Available: true, Keys: 12, TTL: "5m0s"})

	w := performRequest(r, http.MethodGet, "/cache/stats", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"backend":"redis"`)
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		db         stubPinger
		cache      handler.Pinger
		wantStatus int
		wantCache  string
	}{
		{"ready without cache", stubPinger{}, nil, http.StatusOK, "disabled"},
		{"ready with cache", stubPinger{}, stubPinger{}, http.StatusOK, "connected"},
		{"cache degraded", stubPinger{}, stubPinger{err: errors.New("down")}, http.StatusOK, "degraded"},
		{"database down", stubPinger{err: errors.New("down")}, stubPinger{}, http.StatusServiceUnavailable, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewHealthHandler(tt.db, tt.cache)
			r := gin.New()
			r.GET("/healthz", h.Liveness)
			r.GET("/readyz", h.Readiness)

			w := performRequest(r, http.MethodGet, "/healthz", "")
			assert.Equal(t, http.StatusOK, w.Code)

			w = performRequest(r, http.MethodGet, "/readyz", "")
			assert.Equal(t, tt.wantStatus, w.Code)

			var resp handler.HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCache, resp.Cache)
		})
	}
}
