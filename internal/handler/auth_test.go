package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
	"github.com/osse101/CharacterCreator_Go/internal/user"
)

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func testUser() *domain.User {
	return &domain.User{ID: 7, Username: "alice", Email: "alice@example.com", Roles: []string{domain.RoleUser}}
}

func TestHandleRegister(t *testing.T) {
	InitValidator()

	valid := user.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "password1"}

	tests := []struct {
		name           string
		body           any
		setupMock      func(*MockUserService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success",
			body: valid,
			setupMock: func(m *MockUserService) {
				m.On("Register", mock.Anything, valid).Return(testUser(), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"username":"alice"`,
		},
		{
			name: "username taken",
			body: valid,
			setupMock: func(m *MockUserService) {
				m.On("Register", mock.Anything, valid).Return(nil, domain.ErrUsernameTaken)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"status":400`,
		},
		{
			name:           "weak password",
			body:           user.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "password"},
			setupMock:      func(*MockUserService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"password"`,
		},
		{
			name:           "malformed json",
			body:           "{",
			setupMock:      func(*MockUserService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name: "repository failure hides detail",
			body: valid,
			setupMock: func(m *MockUserService) {
				m.On("Register", mock.Anything, valid).Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrMsgGenericServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockUserService{}
			tt.setupMock(svc)

			var body *bytes.Buffer
			if s, ok := tt.body.(string); ok {
				body = bytes.NewBufferString(s)
			} else {
				body = jsonBody(t, tt.body)
			}
			w := httptest.NewRecorder()
			HandleRegister(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/register", body))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			assert.NotContains(t, w.Body.String(), "password1")
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleLogin(t *testing.T) {
	InitValidator()

	t.Run("json body by username", func(t *testing.T) {
		svc := &MockUserService{}
		sessions := &MockSessions{}
		u := testUser()
		svc.On("Authenticate", mock.Anything, "alice", "password1").Return(u, nil)
		sessions.On("Destroy", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		sessions.On("Create", mock.Anything, mock.Anything, u).Return(&domain.Session{Token: "tok"}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login", jsonBody(t, LoginRequest{Username: "alice", Password: "password1"}))
		HandleLogin(svc, sessions).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp AuthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, MsgLoggedIn, resp.Message)
		assert.Equal(t, "alice", resp.User.Username)
		assert.Equal(t, []string{domain.RoleUser}, resp.Roles)
		sessions.AssertExpectations(t)
	})

	t.Run("form body by email", func(t *testing.T) {
		svc := &MockUserService{}
		sessions := &MockSessions{}
		u := testUser()
		svc.On("Authenticate", mock.Anything, "alice@example.com", "password1").Return(u, nil)
		sessions.On("Destroy", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		sessions.On("Create", mock.Anything, mock.Anything, u).Return(&domain.Session{Token: "tok"}, nil)

		form := url.Values{"email": {"alice@example.com"}, "password": {"password1"}}
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		HandleLogin(svc, sessions).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("bad credentials", func(t *testing.T) {
		svc := &MockUserService{}
		sessions := &MockSessions{}
		svc.On("Authenticate", mock.Anything, "alice", "wrongpass1").Return(nil, domain.ErrInvalidCredentials)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login", jsonBody(t, LoginRequest{Username: "alice", Password: "wrongpass1"}))
		HandleLogin(svc, sessions).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("neither username nor email", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login", jsonBody(t, LoginRequest{Password: "password1"}))
		HandleLogin(&MockUserService{}, &MockSessions{}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, ErrMsgLoginRequired, decodeError(t, w).Message)
	})

	t.Run("missing password", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login", jsonBody(t, LoginRequest{Username: "alice"}))
		HandleLogin(&MockUserService{}, &MockSessions{}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeError(t, w).Fields, "password")
	})
}

func TestHandleMe(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleMe(&MockUserService{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/me", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("logged in", func(t *testing.T) {
		svc := &MockUserService{}
		svc.On("GetUser", mock.Anything, int64(7)).Return(testUser(), nil)

		w := httptest.NewRecorder()
		req := withPrincipal(httptest.NewRequest(http.MethodGet, "/auth/me", nil), 7, "alice")
		HandleMe(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"email":"alice@example.com"`)
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("account deleted since login", func(t *testing.T) {
		svc := &MockUserService{}
		svc.On("GetUser", mock.Anything, int64(7)).Return(nil, domain.ErrUserNotFound)

		w := httptest.NewRecorder()
		req := withPrincipal(httptest.NewRequest(http.MethodGet, "/auth/me", nil), 7, "alice")
		HandleMe(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandleLogout(t *testing.T) {
	sessions := &MockSessions{}
	sessions.On("Destroy", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	w := httptest.NewRecorder()
	HandleLogout(sessions).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), MsgLoggedOut)
	sessions.AssertExpectations(t)
}

type stubIssuer struct {
	token string
	err   error
}

func (s stubIssuer) Issue(http.ResponseWriter, *http.Request) (string, error) {
	return s.token, s.err
}

func TestHandleCSRFToken(t *testing.T) {
	w := httptest.NewRecorder()
	HandleCSRFToken(stubIssuer{token: "abc"}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/csrf-token", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"token":"abc"}`, w.Body.String())

	w = httptest.NewRecorder()
	HandleCSRFToken(stubIssuer{err: assert.AnError}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/csrf-token", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
