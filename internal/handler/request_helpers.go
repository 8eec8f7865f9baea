package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
	"github.com/osse101/CharacterCreator_Go/internal/logger"
	"github.com/osse101/CharacterCreator_Go/internal/session"
)

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error the response has already been written and the
// handler should return.
//
// Example usage:
//
//	var req RegisterRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Register"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(LogMsgRequestDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		resp := newErrorResponse(http.StatusBadRequest, ErrMsgInvalidRequestSummary)
		resp.Fields = FormatValidationError(err)
		respondJSON(w, http.StatusBadRequest, resp)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))
	return nil
}

// GetQueryParam retrieves a required query parameter. If ok is false the
// response has already been written.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// GetOptionalQueryParam returns the query parameter or defaultValue
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// PathID parses a positive int64 chi URL parameter
func PathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: "+ErrMsgInvalidPathParam, domain.ErrInvalidArgument, name)
	}
	return id, nil
}

// pathID is PathID that writes the 400 itself
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := PathID(r, name)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidPathParam, name))
		return 0, false
	}
	return id, true
}

// queryInt parses an optional integer query parameter
func queryInt(r *http.Request, name string) (int, bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, true, fmt.Errorf(ErrMsgInvalidQueryParam, name)
	}
	return v, true, nil
}

// pageRequest reads page and size; present reports whether either was given
func pageRequest(w http.ResponseWriter, r *http.Request) (req domain.PageRequest, present, ok bool) {
	page, hasPage, err := queryInt(r, "page")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return req, false, false
	}
	size, hasSize, err := queryInt(r, "size")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return req, false, false
	}
	return domain.PageRequest{Page: page, Size: size}.Normalize(), hasPage || hasSize, true
}

// principal returns the authenticated caller or writes a 401
func principal(w http.ResponseWriter, r *http.Request) (domain.Principal, bool) {
	p, ok := session.PrincipalFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, ErrMsgNotAuthenticated)
	}
	return p, ok
}
