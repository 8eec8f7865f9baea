package server

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/osse101/CharacterCreator_Go/internal/handler"
	"github.com/osse101/CharacterCreator_Go/internal/logger"
	"github.com/osse101/CharacterCreator_Go/internal/metrics"
	"github.com/osse101/CharacterCreator_Go/internal/session"
)

// CSRF implements the double-submit cookie check. The token cookie is
// readable by scripts, which echo it back in a request header.
type CSRF struct {
	cookieName string
	headerName string
	secure     bool
	exempt     []string
}

// NewCSRF builds the check; empty names take the XSRF-TOKEN defaults
func NewCSRF(cookieName, headerName string, secure bool) *CSRF {
	if cookieName == "" {
		cookieName = DefaultCSRFCookieName
	}
	if headerName == "" {
		headerName = DefaultCSRFHeaderName
	}
	return &CSRF{
		cookieName: cookieName,
		headerName: headerName,
		secure:     secure,
		exempt:     CSRFExemptPaths,
	}
}

// HeaderName is the header clients echo the token in
func (c *CSRF) HeaderName() string {
	return c.headerName
}

// Issue sets a fresh token cookie and returns the token
func (c *CSRF) Issue(w http.ResponseWriter, r *http.Request) (string, error) {
	token, err := session.NewToken()
	if err != nil {
		return "", err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     c.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: false,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return token, nil
}

func (c *CSRF) isExempt(path string) bool {
	for _, p := range c.exempt {
		if path == strings.TrimSuffix(p, "/") || strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func safeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	}
	return false
}

// Middleware hands a token cookie to clients that lack one and rejects
// state-changing requests whose header does not match the cookie
func (c *CSRF) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(c.cookieName)
		hasCookie := err == nil && cookie.Value != ""

		if c.isExempt(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}
		if safeMethod(r.Method) {
			if !hasCookie {
				if _, err := c.Issue(w, r); err != nil {
					handler.WriteServiceError(w, r, "Issue CSRF token", err)
					return
				}
			}
			next.ServeHTTP(w, r)
			return
		}

		header := r.Header.Get(c.headerName)
		if !hasCookie || header == "" || subtle.ConstantTimeCompare([]byte(header), []byte(cookie.Value)) != 1 {
			metrics.CSRFRejected.Inc()
			logger.FromContext(r.Context()).Warn(LogMsgCSRFRejected,
				"method", r.Method,
				"path", r.URL.Path,
				"has_cookie", hasCookie,
				"has_header", header != "")
			handler.WriteError(w, http.StatusForbidden, ErrMsgCSRFMismatch)
			return
		}
		next.ServeHTTP(w, r)
	})
}
