// Package ratelimit throttles contact submissions per client IP.
package ratelimit

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// maxClients caps the number of tracked IPs to prevent memory exhaustion.
const maxClients = 100_000

// Store decides whether a key may proceed. The in-memory implementation
// below suits a single instance; multi-instance deployments can inject an
// implementation backed by a shared store.
type Store interface {
	Allow(key string) bool
}

type window struct {
	count     int
	resetTime time.Time
}

// MemoryStore is a fixed-window counter per key: limit requests per window,
// then reject until the window resets.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]*window
	limit   int
	period  time.Duration
}

// NewMemoryStore creates a MemoryStore allowing limit requests per period.
// A background goroutine evicts expired windows until ctx is cancelled.
func NewMemoryStore(ctx context.Context, limit int, period time.Duration) *MemoryStore {
	s := &MemoryStore{
		windows: make(map[string]*window),
		limit:   limit,
		period:  period,
	}
	go s.startCleanup(ctx)
	return s
}

// Allow reports whether the key is within its window budget.
func (s *MemoryStore) Allow(key string) bool {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.windows[key]
	if !ok || now.After(w.resetTime) {
		if !ok && len(s.windows) >= maxClients {
			return false
		}
		s.windows[key] = &window{count: 1, resetTime: now.Add(s.period)}
		return true
	}

	if w.count >= s.limit {
		return false
	}

	w.count++
	return true
}

// startCleanup periodically evicts expired windows.
func (s *MemoryStore) startCleanup(ctx context.Context) {
	ticker := time.NewTicker(s.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for key, w := range s.windows {
				if now.After(w.resetTime) {
					delete(s.windows, key)
				}
			}
			s.mu.Unlock()
		}
	}
}

// Middleware returns Gin middleware that rejects over-limit clients with 429.
func Middleware(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !store.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests. Please try again later.",
			})
			return
		}
		c.Next()
	}
}
