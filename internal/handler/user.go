package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
	"github.com/osse101/CharacterCreator_Go/internal/user"
)

// CreateUserRequest is the admin account creation body
type CreateUserRequest struct {
	user.RegisterRequest
	Roles []string `json:"roles" validate:"omitempty,dive,oneof=ROLE_USER ROLE_ADMIN"`
}

func toDTOs(users []domain.User) []domain.UserDTO {
	out := make([]domain.UserDTO, 0, len(users))
	for i := range users {
		out = append(out, users[i].ToDTO())
	}
	return out
}

// HandleListUsers returns every account
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} domain.UserDTO
// @Router /users [get]
func HandleListUsers(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			respondServiceError(w, r, "List users", err)
			return
		}
		respondJSON(w, http.StatusOK, toDTOs(users))
	}
}

// HandleCreateUser creates an account with explicit roles
// @Summary Create user (admin)
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "Account"
// @Success 201 {object} domain.UserDTO
// @Router /users [post]
func HandleCreateUser(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create user"); err != nil {
			return
		}
		u, err := svc.CreateUser(r.Context(), req.RegisterRequest, req.Roles...)
		if err != nil {
			respondServiceError(w, r, "Create user", err)
			return
		}
		respondJSON(w, http.StatusCreated, u.ToDTO())
	}
}

// HandleGetUserByEmail looks an account up by email
// @Summary Get user by email
// @Tags users
// @Produce json
// @Param email path string true "Email"
// @Success 200 {object} domain.UserDTO
// @Failure 404 {object} ErrorResponse
// @Router /users/email/{email} [get]
func HandleGetUserByEmail(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := svc.GetUserByEmail(r.Context(), chi.URLParam(r, "email"))
		if err != nil {
			respondServiceError(w, r, "Get user by email", err)
			return
		}
		respondJSON(w, http.StatusOK, u.ToDTO())
	}
}

// HandleUpdateUser applies a partial account update
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User id"
// @Param request body user.UpdateRequest true "Fields to change"
// @Success 200 {object} domain.UserDTO
// @Router /users/{id} [put]
func HandleUpdateUser(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}
		var req user.UpdateRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update user"); err != nil {
			return
		}
		u, err := svc.UpdateUser(r.Context(), id, req)
		if err != nil {
			respondServiceError(w, r, "Update user", err)
			return
		}
		respondJSON(w, http.StatusOK, u.ToDTO())
	}
}

// HandleDeleteUser deletes an account with its characters
// @Summary Delete user
// @Tags users
// @Param id path int true "User id"
// @Success 204
// @Router /users/{id} [delete]
func HandleDeleteUser(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}
		if err := svc.DeleteUser(r.Context(), id); err != nil {
			respondServiceError(w, r, "Delete user", err)
			return
		}
		respondNoContent(w)
	}
}

// HandleGetCacheStats reports the account cache hit rate
// @Summary User cache statistics (admin)
// @Tags admin
// @Produce json
// @Success 200 {object} user.CacheStats
// @Router /admin/cache/stats [get]
func HandleGetCacheStats(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.GetCacheStats())
	}
}
