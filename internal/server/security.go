package server

import (
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/osse101/CharacterCreator_Go/internal/handler"
	"github.com/osse101/CharacterCreator_Go/internal/logger"
)

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// windowCounter counts events per client in fixed windows of RateWindow
type windowCounter struct {
	mu      sync.Mutex
	counts  map[string]int
	started time.Time
}

func newWindowCounter() *windowCounter {
	return &windowCounter{counts: make(map[string]int), started: time.Now()}
}

func (c *windowCounter) incr(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if time.Since(c.started) > RateWindow {
		clear(c.counts)
		c.started = time.Now()
	}
	c.counts[key]++
	return c.counts[key]
}

func (c *windowCounter) get(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[key]
}

// SuspiciousActivityDetector tracks request volume and failed logins per client
type SuspiciousActivityDetector struct {
	requests   *windowCounter
	failedAuth *windowCounter
}

func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		requests:   newWindowCounter(),
		failedAuth: newWindowCounter(),
	}
}

// RecordFailedAuth records a failed login and returns the count in the
// current window
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) int {
	count := s.failedAuth.incr(ip)
	if count >= FailedAuthAlertAt {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", count)
	}
	return count
}

// RecordRequest reports whether ip is still within MaxRequestsInWindow
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	count := s.requests.incr(ip)
	if count <= MaxRequestsInWindow {
		return true
	}
	// One alert per hundred rejected requests
	if (count-MaxRequestsInWindow)%100 == 1 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", count)
	}
	return false
}

// RateLimitMiddleware rejects clients that exceed the request budget
func RateLimitMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !detector.RecordRequest(extractIP(r, trustedProxies)) {
				handler.WriteError(w, http.StatusTooManyRequests, ErrMsgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// FailedLoginMiddleware feeds 401 answers of the wrapped login handler to
// the detector
func FailedLoginMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r)

			if rw.statusCode == http.StatusUnauthorized {
				ip := extractIP(r, trustedProxies)
				count := detector.RecordFailedAuth(ip)
				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"ip", ip,
					"count", count)
			}
		})
	}
}

// extractIP returns the client address. X-Forwarded-For is honoured only
// when the direct peer is a trusted proxy, and then only its rightmost hop.
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
	if hop := strings.TrimSpace(hops[len(hops)-1]); net.ParseIP(hop) != nil {
		return hop
	}
	return remoteIP
}

var securityHeaders = [][2]string{
	{HeaderContentType, HeaderValueNoSniff},
	{HeaderFrameOptions, HeaderValueSameOrigin},
	{HeaderXSSProtection, HeaderValueXSSBlock},
	{HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin},
}

// SecurityHeadersMiddleware sets the fixed browser hardening headers
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			for _, kv := range securityHeaders {
				h.Set(kv[0], kv[1])
			}
			next.ServeHTTP(w, r)
		})
	}
}
