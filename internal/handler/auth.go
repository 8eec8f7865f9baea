package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
	"github.com/osse101/CharacterCreator_Go/internal/logger"
	"github.com/osse101/CharacterCreator_Go/internal/user"
)

// Sessions issues and destroys login sessions
type Sessions interface {
	Create(ctx context.Context, w http.ResponseWriter, user *domain.User) (*domain.Session, error)
	Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error
}

// LoginRequest accepts either a username or an email
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" validate:"required"`
}

func (l LoginRequest) login() string {
	if s := strings.TrimSpace(l.Username); s != "" {
		return s
	}
	return strings.TrimSpace(l.Email)
}

// AuthResponse is returned by login and me
type AuthResponse struct {
	Message string         `json:"message,omitempty"`
	User    domain.UserDTO `json:"user"`
	Roles   []string       `json:"roles"`
}

// HandleRegister creates a ROLE_USER account
// @Summary Register an account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body user.RegisterRequest true "New account"
// @Success 201 {object} domain.UserDTO
// @Failure 400 {object} ErrorResponse
// @Router /auth/register [post]
func HandleRegister(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req user.RegisterRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register"); err != nil {
			return
		}

		u, err := svc.Register(r.Context(), req)
		if err != nil {
			respondServiceError(w, r, "Register", err)
			return
		}
		respondJSON(w, http.StatusCreated, u.ToDTO())
	}
}

// decodeLogin reads JSON bodies, and form bodies as posted by plain HTML login forms
func decodeLogin(w http.ResponseWriter, r *http.Request) (LoginRequest, bool) {
	var req LoginRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return req, false
		}
		req = LoginRequest{
			Username: r.PostForm.Get("username"),
			Email:    r.PostForm.Get("email"),
			Password: r.PostForm.Get("password"),
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			resp := newErrorResponse(http.StatusBadRequest, ErrMsgInvalidRequestSummary)
			resp.Fields = FormatValidationError(err)
			respondJSON(w, http.StatusBadRequest, resp)
			return req, false
		}
	} else if err := DecodeAndValidateRequest(r, w, &req, "Login"); err != nil {
		return req, false
	}

	if req.login() == "" {
		respondError(w, http.StatusBadRequest, ErrMsgLoginRequired)
		return req, false
	}
	return req, true
}

// HandleLogin authenticates and starts a session
// @Summary Log in
// @Description Accepts username or email. Sets the SESSION cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func HandleLogin(svc user.Service, sessions Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeLogin(w, r)
		if !ok {
			return
		}

		u, err := svc.Authenticate(r.Context(), req.login(), req.Password)
		if err != nil {
			respondServiceError(w, r, "Login", err)
			return
		}

		// Drop any session the client already carries
		_ = sessions.Destroy(r.Context(), w, r)
		if _, err := sessions.Create(r.Context(), w, u); err != nil {
			respondServiceError(w, r, "Login", err)
			return
		}
		respondJSON(w, http.StatusOK, AuthResponse{Message: MsgLoggedIn, User: u.ToDTO(), Roles: u.Roles})
	}
}

// HandleMe returns the logged-in account
// @Summary Current account
// @Tags auth
// @Produce json
// @Success 200 {object} AuthResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/me [get]
func HandleMe(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}
		u, err := svc.GetUser(r.Context(), p.UserID)
		if err != nil {
			if mapServiceError(err) == http.StatusNotFound {
				respondError(w, http.StatusUnauthorized, ErrMsgNotAuthenticated)
				return
			}
			respondServiceError(w, r, "Me", err)
			return
		}
		respondJSON(w, http.StatusOK, AuthResponse{User: u.ToDTO(), Roles: u.Roles})
	}
}

// HandleLogout destroys the session; it succeeds without one too
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /auth/logout [post]
func HandleLogout(sessions Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := sessions.Destroy(r.Context(), w, r); err != nil {
			respondServiceError(w, r, "Logout", err)
			return
		}
		logger.FromContext(r.Context()).Debug(MsgLoggedOut)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgLoggedOut})
	}
}

// CSRFIssuer sets a fresh CSRF cookie and returns its token
type CSRFIssuer interface {
	Issue(w http.ResponseWriter, r *http.Request) (string, error)
}

// CSRFTokenResponse carries the token to echo in the CSRF header
type CSRFTokenResponse struct {
	Token string `json:"token"`
}

// HandleCSRFToken returns the CSRF token for the client to echo back
// @Summary CSRF token
// @Tags auth
// @Produce json
// @Success 200 {object} CSRFTokenResponse
// @Router /csrf-token [get]
func HandleCSRFToken(issuer CSRFIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := issuer.Issue(w, r)
		if err != nil {
			respondServiceError(w, r, "CSRF token", err)
			return
		}
		respondJSON(w, http.StatusOK, CSRFTokenResponse{Token: token})
	}
}
