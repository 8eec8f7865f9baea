package handler

import (
	"net/http"

	"github.com/osse101/CharacterCreator_Go/internal/character"
	"github.com/osse101/CharacterCreator_Go/internal/domain"
)

// HandleCreateCharacter creates a character owned by the caller. Admins may
// name another owner with userId.
// @Summary Create character
// @Tags characters
// @Accept json
// @Produce json
// @Param request body character.CreateRequest true "New character"
// @Success 201 {object} domain.Character
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /characters [post]
func HandleCreateCharacter(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}
		var req character.CreateRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create character"); err != nil {
			return
		}

		ownerID := p.UserID
		if req.UserID != 0 && req.UserID != p.UserID {
			if !p.IsAdmin() {
				respondError(w, http.StatusForbidden, ErrMsgAccessDenied)
				return
			}
			ownerID = req.UserID
		}

		c, err := svc.CreateCharacter(r.Context(), ownerID, req)
		if err != nil {
			respondServiceError(w, r, "Create character", err)
			return
		}
		respondJSON(w, http.StatusCreated, c)
	}
}

// HandleListCharacters lists every character. With page or size the result
// is paged, otherwise it is a plain list.
// @Summary List characters
// @Tags characters
// @Produce json
// @Param page query int false "Zero-based page"
// @Param size query int false "Page size (max 100)"
// @Success 200 {object} domain.Page[domain.CharacterDetail]
// @Router /characters [get]
func HandleListCharacters(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, paged, ok := pageRequest(w, r)
		if !ok {
			return
		}

		if paged {
			result, err := svc.PageCharacters(r.Context(), "", page)
			if err != nil {
				respondServiceError(w, r, "List characters", err)
				return
			}
			respondJSON(w, http.StatusOK, result)
			return
		}

		details, err := svc.ListCharacters(r.Context())
		if err != nil {
			respondServiceError(w, r, "List characters", err)
			return
		}
		respondJSON(w, http.StatusOK, details)
	}
}

// HandleSearchCharacters matches names case-insensitively. With page or size
// the result is paged, otherwise it is a plain list.
// @Summary Search characters by name
// @Tags characters
// @Produce json
// @Param name query string true "Name fragment"
// @Param page query int false "Zero-based page"
// @Param size query int false "Page size"
// @Success 200 {array} domain.CharacterDetail
// @Router /characters/search [get]
func HandleSearchCharacters(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := GetQueryParam(r, w, "name")
		if !ok {
			return
		}
		page, paged, ok := pageRequest(w, r)
		if !ok {
			return
		}

		if paged {
			result, err := svc.PageCharacters(r.Context(), name, page)
			if err != nil {
				respondServiceError(w, r, "Search characters", err)
				return
			}
			respondJSON(w, http.StatusOK, result)
			return
		}

		details, err := svc.SearchCharacters(r.Context(), name)
		if err != nil {
			respondServiceError(w, r, "Search characters", err)
			return
		}
		respondJSON(w, http.StatusOK, details)
	}
}

// HandleGetCharacter returns one character projection
// @Summary Get character
// @Tags characters
// @Produce json
// @Param id path int true "Character id"
// @Success 200 {object} domain.CharacterDetail
// @Failure 404 {object} ErrorResponse
// @Router /characters/{id} [get]
func HandleGetCharacter(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}
		detail, err := svc.GetCharacter(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Get character", err)
			return
		}
		respondJSON(w, http.StatusOK, detail)
	}
}

// HandleListCharactersByUser lists the characters of one user. It serves
// both /characters/user/{userId} and /users/{id}/characters.
func HandleListCharactersByUser(svc character.Service, param string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := pathID(w, r, param)
		if !ok {
			return
		}
		details, err := svc.ListCharactersByUser(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "List user characters", err)
			return
		}
		respondJSON(w, http.StatusOK, details)
	}
}

// HandleUpdateCharacter applies a selective patch; skillIds replaces the
// whole skill list
// @Summary Update character
// @Tags characters
// @Accept json
// @Produce json
// @Param id path int true "Character id"
// @Param request body domain.CharacterPatch true "Fields to change"
// @Success 200 {object} domain.Character
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /characters/{id} [put]
func HandleUpdateCharacter(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}
		var patch domain.CharacterPatch
		if err := DecodeAndValidateRequest(r, w, &patch, "Update character"); err != nil {
			return
		}
		c, err := svc.UpdateCharacter(r.Context(), id, patch)
		if err != nil {
			respondServiceError(w, r, "Update character", err)
			return
		}
		respondJSON(w, http.StatusOK, c)
	}
}

// HandleDeleteCharacter deletes the character and its inventory
// @Summary Delete character
// @Tags characters
// @Param id path int true "Character id"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /characters/{id} [delete]
func HandleDeleteCharacter(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}
		if err := svc.DeleteCharacter(r.Context(), id); err != nil {
			respondServiceError(w, r, "Delete character", err)
			return
		}
		respondNoContent(w)
	}
}
