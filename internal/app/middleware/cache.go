package middleware

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// cacheEntry is a stored response body
type cacheEntry struct {
	Content    []byte
	Expiration time.Time
}

// memoryCache is the in-process response cache
type memoryCache struct {
	sync.RWMutex
	items map[string]cacheEntry
}

var cache = &memoryCache{
	items: make(map[string]cacheEntry),
}

// CacheConfig configures the response cache middleware
type CacheConfig struct {
	Expiration time.Duration
}

// cacheKey builds a key from the path and sorted query parameters
func cacheKey(c *gin.Context) string {
	path := c.Request.URL.Path

	queryParams := c.Request.URL.Query()
	var queryKeys []string
	for key := range queryParams {
		queryKeys = append(queryKeys, key)
	}
	sort.Strings(queryKeys)

	var parts []string
	parts = append(parts, path)
	for _, key := range queryKeys {
		values := queryParams[key]
		sort.Strings(values)
		for _, value := range values {
			parts = append(parts, key+"="+value)
		}
	}

	hasher := md5.New()
	hasher.Write([]byte(strings.Join(parts, "&")))
	return hex.EncodeToString(hasher.Sum(nil))
}

// Cache caches successful GET responses for the configured duration
func Cache(cfg CacheConfig) gin.HandlerFunc {
	if cfg.Expiration <= 0 {
		cfg.Expiration = 5 * time.Minute
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := cacheKey(c)

		cache.RLock()
		entry, found := cache.items[key]
		cache.RUnlock()

		if found && entry.Expiration.After(time.Now()) {
			c.Data(http.StatusOK, "application/json; charset=utf-8", entry.Content)
			c.Abort()
			return
		}

		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = writer

		c.Next()

		if c.Writer.Status() == http.StatusOK {
			cache.Lock()
			cache.items[key] = cacheEntry{
				Content:    writer.body.Bytes(),
				Expiration: time.Now().Add(cfg.Expiration),
			}
			cache.Unlock()
		}
	}
}

// PurgeCache clears all cached responses
func PurgeCache() {
	cache.Lock()
	cache.items = make(map[string]cacheEntry)
	cache.Unlock()
}

// responseWriter captures the response body while writing it through
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Periodically drop expired entries
func init() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()
			cache.Lock()
			for key, entry := range cache.items {
				if entry.Expiration.Before(now) {
					delete(cache.items, key)
				}
			}
			cache.Unlock()
		}
	}()
}
