package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cookieNamed(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestCSRF_Issue(t *testing.T) {
	csrf := NewCSRF("", "", true)
	rec := httptest.NewRecorder()

	token, err := csrf.Issue(rec, httptest.NewRequest(http.MethodGet, "/csrf-token", nil))
	require.NoError(t, err)
	assert.Len(t, token, 43)

	c := cookieNamed(rec, DefaultCSRFCookieName)
	require.NotNil(t, c)
	assert.Equal(t, token, c.Value)
	assert.False(t, c.HttpOnly, "scripts must be able to read the token")
	assert.True(t, c.Secure)
}

func TestCSRF_Middleware(t *testing.T) {
	csrf := NewCSRF("", "", false)
	h := csrf.Middleware(okHandler())

	const token = "tok-123"
	tests := []struct {
		name       string
		method     string
		path       string
		cookie     string
		header     string
		wantStatus int
	}{
		{"safe method passes", http.MethodGet, "/characters", "", "", http.StatusOK},
		{"matching header", http.MethodPost, "/characters", token, token, http.StatusOK},
		{"missing header", http.MethodPost, "/characters", token, "", http.StatusForbidden},
		{"missing cookie", http.MethodDelete, "/characters/1", "", token, http.StatusForbidden},
		{"mismatch", http.MethodPut, "/classes/1", token, "other", http.StatusForbidden},
		{"auth paths exempt", http.MethodPost, "/auth/register", "", "", http.StatusOK},
		{"login alias exempt", http.MethodPost, "/login", "", "", http.StatusOK},
		{"logout alias exempt", http.MethodPost, "/logout", "", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set(DefaultCSRFHeaderName, tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCSRF_MiddlewareSeedsCookie(t *testing.T) {
	h := NewCSRF("", "", false).Middleware(okHandler())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/classes", nil))
	assert.NotNil(t, cookieNamed(rec, DefaultCSRFCookieName))

	req := httptest.NewRequest(http.MethodGet, "/classes", nil)
	req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: "existing"})
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Nil(t, cookieNamed(rec, DefaultCSRFCookieName), "an existing token is kept")
}
