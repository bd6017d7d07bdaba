package server

import (
	"crypto/subtle"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/LootDrop_Go/internal/logger"
)

// clientWindow counts one client's traffic inside its current window
type clientWindow struct {
	requests   atomic.Int64
	failedAuth atomic.Int64
}

// ClientTracker counts requests and failed logins per client IP. Each client
// gets a fixed window that starts with its first request; the LRU bound keeps
// memory flat when many addresses show up.
type ClientTracker struct {
	mu          sync.Mutex
	clients     *expirable.LRU[string, *clientWindow]
	maxRequests int64
}

// NewClientTracker creates a tracker.
// window: length of a client's counting window
// capacity: maximum number of clients tracked at once
func NewClientTracker(window time.Duration, capacity int, maxRequests int) *ClientTracker {
	return &ClientTracker{
		clients:     expirable.NewLRU[string, *clientWindow](capacity, nil, window),
		maxRequests: int64(maxRequests),
	}
}

func (c *ClientTracker) window(ip string) *clientWindow {
	c.mu.Lock()
	defer c.mu.Unlock()

	if w, ok := c.clients.Get(ip); ok {
		return w
	}
	w := &clientWindow{}
	c.clients.Add(ip, w)
	return w
}

// Allow counts a request from ip and reports whether it is within the limit
func (c *ClientTracker) Allow(ip string) bool {
	n := c.window(ip).requests.Add(1)
	if n <= c.maxRequests {
		return true
	}
	if n%RateLimitLogEvery == 0 {
		logger.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", n)
	}
	return false
}

// RecordFailedAuth counts a rejected API key and returns the running total
func (c *ClientTracker) RecordFailedAuth(ip string) int64 {
	n := c.window(ip).failedAuth.Add(1)
	if n >= FailedAuthAlertThreshold {
		logger.Warn(SecurityAlertFailedAuth, "ip", ip, "count", n)
	}
	return n
}

// Requests returns the requests counted for ip in its current window
func (c *ClientTracker) Requests(ip string) int64 {
	if w, ok := c.clients.Peek(ip); ok {
		return w.requests.Load()
	}
	return 0
}

// FailedAuth returns the failed logins counted for ip in its current window
func (c *ClientTracker) FailedAuth(ip string) int64 {
	if w, ok := c.clients.Peek(ip); ok {
		return w.failedAuth.Load()
	}
	return 0
}

// AuthMiddleware validates the X-API-Key header. An empty configured key
// rejects every request.
func AuthMiddleware(apiKey string, trustedProxies []string, tracker *ClientTracker) func(http.Handler) http.Handler {
	want := []byte(apiKey)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(HeaderAPIKey)

			if len(want) == 0 || subtle.ConstantTimeCompare([]byte(provided), want) != 1 {
				ip := extractIP(r, trustedProxies)
				tracker.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", provided != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitMiddleware rejects clients that exceed their per-window budget
func RateLimitMiddleware(trustedProxies []string, tracker *ClientTracker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r, trustedProxies)

			if !tracker.Allow(ip) {
				logger.FromContext(r.Context()).Debug(LogMsgRateLimited, "ip", ip, "path", r.URL.Path)
				w.Header().Set(HeaderRetryAfter, retryAfterSeconds)
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware caps request bodies at maxBytes
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP returns the client address. X-Forwarded-For is honored only when
// the direct peer is a trusted proxy, and then only its last hop.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if !slices.Contains(trustedProxies, remoteIP) {
		return remoteIP
	}
	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remoteIP
	}
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentType, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueSameOrigin)
			h.Set(HeaderXSSProtection, HeaderValueXSSBlock)
			h.Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)

			next.ServeHTTP(w, r)
		})
	}
}
