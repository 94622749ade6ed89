package handler

import (
	"github.com/gin-gonic/gin"

	"dataquality/internal/port"
)

// CacheHandler handles the response cache administration endpoints.
type CacheHandler struct {
	cache  port.ResponseCache
	prefix string
}

// NewCacheHandler creates a new CacheHandler clearing keys under prefix.
func NewCacheHandler(cache port.ResponseCache, prefix string) *CacheHandler {
	return &CacheHandler{cache: cache, prefix: prefix}
}

// CacheClearData is the data of POST /cache/clear.
type CacheClearData struct {
	Message string `json:"message"`
	Removed int    `json:"removed"`
}

// Clear handles POST /api/v1/cache/clear
// @Summary Clear the response cache
// @Tags cache
// @Produce json
// @Success 200 {object} Response{data=CacheClearData}
// @Failure 503 {object} ErrorResponseBody "Cache backend unavailable"
// @Security BearerAuth
// @Router /cache/clear [post]
func (h *CacheHandler) Clear(c *gin.Context) {
	removed, err := h.cache.Clear(c.Request.Context(), h.prefix)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, CacheClearData{Message: "cache cleared", Removed: removed})
}

// Stats handles GET /api/v1/cache/stats
// @Summary Get response cache statistics
// @Tags cache
// @Produce json
// @Success 200 {object} Response{data=domain.CacheStats}
// @Router /cache/stats [get]
func (h *CacheHandler) Stats(c *gin.Context) {
	RespondOK(c, h.cache.Stats(c.Request.Context()))
}
