package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
	"github.com/osse101/CharacterCreator_Go/internal/user"
)

func TestHandleListUsers(t *testing.T) {
	svc := &MockUserService{}
	svc.On("ListUsers", mock.Anything).Return([]domain.User{*testUser(), {ID: 8, Username: "bob"}}, nil)

	w := httptest.NewRecorder()
	HandleListUsers(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
	assert.Contains(t, w.Body.String(), `"username":"bob"`)
	assert.NotContains(t, w.Body.String(), "passwordHash")
}

func TestHandleCreateUser(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		body           CreateUserRequest
		setupMock      func(*MockUserService)
		expectedStatus int
	}{
		{
			name: "admin role",
			body: CreateUserRequest{
				RegisterRequest: user.RegisterRequest{Username: "root", Email: "root@example.com", Password: "password1"},
				Roles:           []string{domain.RoleAdmin},
			},
			setupMock: func(m *MockUserService) {
				m.On("CreateUser", mock.Anything, mock.Anything, []string{domain.RoleAdmin}).
					Return(&domain.User{ID: 1, Username: "root", Roles: []string{domain.RoleAdmin}}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "unknown role",
			body: CreateUserRequest{
				RegisterRequest: user.RegisterRequest{Username: "root", Email: "root@example.com", Password: "password1"},
				Roles:           []string{"ROLE_GOD"},
			},
			setupMock:      func(*MockUserService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "email taken",
			body: CreateUserRequest{
				RegisterRequest: user.RegisterRequest{Username: "root", Email: "root@example.com", Password: "password1"},
			},
			setupMock: func(m *MockUserService) {
				m.On("CreateUser", mock.Anything, mock.Anything, []string(nil)).Return(nil, domain.ErrEmailTaken)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockUserService{}
			tt.setupMock(svc)

			w := httptest.NewRecorder()
			HandleCreateUser(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/users", jsonBody(t, tt.body)))

			assert.Equal(t, tt.expectedStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleGetUserByEmail(t *testing.T) {
	svc := &MockUserService{}
	svc.On("GetUserByEmail", mock.Anything, "alice@example.com").Return(testUser(), nil)
	svc.On("GetUserByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.ErrUserNotFound)

	w := httptest.NewRecorder()
	req := withURLParams(httptest.NewRequest(http.MethodGet, "/users/email/alice@example.com", nil), "email", "alice@example.com")
	HandleGetUserByEmail(svc).ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = withURLParams(httptest.NewRequest(http.MethodGet, "/users/email/ghost@example.com", nil), "email", "ghost@example.com")
	HandleGetUserByEmail(svc).ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not Found", decodeError(t, w).Error)
}

func TestHandleUpdateUser(t *testing.T) {
	InitValidator()

	email := "new@example.com"
	svc := &MockUserService{}
	svc.On("UpdateUser", mock.Anything, int64(7), user.UpdateRequest{Email: &email}).
		Return(&domain.User{ID: 7, Username: "alice", Email: email}, nil)

	w := httptest.NewRecorder()
	req := withURLParams(httptest.NewRequest(http.MethodPut, "/users/7", jsonBody(t, map[string]string{"email": email})), "id", "7")
	HandleUpdateUser(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), email)
	svc.AssertExpectations(t)
}

func TestHandleDeleteUser(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		err            error
		expectedStatus int
	}{
		{"deleted", "7", nil, http.StatusNoContent},
		{"missing", "9", domain.ErrUserNotFound, http.StatusNotFound},
		{"bad id", "abc", nil, http.StatusBadRequest},
		{"zero id", "0", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockUserService{}
			svc.On("DeleteUser", mock.Anything, mock.Anything).Return(tt.err)

			w := httptest.NewRecorder()
			req := withURLParams(httptest.NewRequest(http.MethodDelete, "/users/"+tt.id, nil), "id", tt.id)
			HandleDeleteUser(svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestHandleGetCacheStats(t *testing.T) {
	svc := &MockUserService{}
	svc.On("GetCacheStats").Return(user.CacheStats{Hits: 3, Misses: 1, Size: 2})

	w := httptest.NewRecorder()
	HandleGetCacheStats(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/cache/stats", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"hits":3,"misses":1,"size":2}`, w.Body.String())
}
