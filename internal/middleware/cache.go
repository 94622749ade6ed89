package middleware

import (
	"bytes"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dataquality/internal/port"
)

const headerCache = "X-Cache"

type cachingWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *cachingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *cachingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// ResponseCache serves GET requests from cache, keyed by prefix plus the request URI.
// Only 200 JSON responses are stored. Cache failures never fail the request.
func ResponseCache(cache port.ResponseCache, prefix string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := prefix + c.Request.URL.RequestURI()
		if cached, ok, err := cache.Get(ctx, key); err != nil {
			log.Printf("middleware.ResponseCache: get %s: %v", key, err)
		} else if ok {
			c.Header(headerCache, "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			c.Abort()
			return
		}

		c.Header(headerCache, "MISS")
		w := &cachingWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()

		if w.Status() != http.StatusOK || w.body.Len() == 0 {
			return
		}
		if err := cache.Set(ctx, key, w.body.Bytes(), ttl); err != nil {
			log.Printf("middleware.ResponseCache: set %s: %v", key, err)
		}
	}
}
