package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
)

// ResponseCache memoizes successful GET responses for rarely changing lists.
// Handlers that mutate the underlying data call Flush.
type ResponseCache struct {
	store *gocache.Cache
	ttl   time.Duration
}

type cachedResponse struct {
	status      int
	contentType string
	body        []byte
}

func NewResponseCache(ttl time.Duration) *ResponseCache {
	return &ResponseCache{
		store: gocache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

type cacheWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *cacheWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Cache serves a stored copy when present, otherwise records the response.
// Only 200s are stored.
func (rc *ResponseCache) Cache() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			key += "?" + q
		}

		if v, ok := rc.store.Get(key); ok {
			cached := v.(cachedResponse)
			c.Data(cached.status, cached.contentType, cached.body)
			c.Abort()
			return
		}

		w := &cacheWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = w

		c.Next()

		if w.Status() == http.StatusOK {
			rc.store.Set(key, cachedResponse{
				status:      w.Status(),
				contentType: w.Header().Get("Content-Type"),
				body:        w.body.Bytes(),
			}, rc.ttl)
		}
	}
}

// Flush drops every stored response.
func (rc *ResponseCache) Flush() {
	rc.store.Flush()
}
