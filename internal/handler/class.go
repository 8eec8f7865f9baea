package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
	"github.com/osse101/CharacterCreator_Go/internal/rpgclass"
)

// StartingItemRequest is the body of a starting-item add
type StartingItemRequest struct {
	Name        string `json:"name" validate:"notblank,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// HandleListClasses returns every class with its skills
// @Summary List classes
// @Tags classes
// @Produce json
// @Success 200 {array} domain.RPGClass
// @Router /classes [get]
func HandleListClasses(svc rpgclass.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		classes, err := svc.ListClasses(r.Context())
		if err != nil {
			respondServiceError(w, r, "List classes", err)
			return
		}
		respondJSON(w, http.StatusOK, classes)
	}
}

// HandleGetClass looks a class up by id
// @Summary Get class
// @Tags classes
// @Produce json
// @Param id path int true "Class id"
// @Success 200 {object} domain.RPGClass
// @Failure 404 {object} ErrorResponse
// @Router /classes/{id} [get]
func HandleGetClass(svc rpgclass.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}
		class, err := svc.GetClass(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Get class", err)
			return
		}
		respondJSON(w, http.StatusOK, class)
	}
}

// HandleGetClassByName looks a class up by name, ignoring case
// @Summary Get class by name
// @Tags classes
// @Produce json
// @Param name path string true "Class name"
// @Success 200 {object} domain.RPGClass
// @Failure 404 {object} ErrorResponse
// @Router /classes/name/{name} [get]
func HandleGetClassByName(svc rpgclass.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		class, err := svc.GetClassByName(r.Context(), chi.URLParam(r, "name"))
		if err != nil {
			respondServiceError(w, r, "Get class by name", err)
			return
		}
		respondJSON(w, http.StatusOK, class)
	}
}

// HandleCreateClass stores a class. Stats above the cap are clamped.
// @Summary Create class
// @Tags classes
// @Accept json
// @Produce json
// @Param request body domain.RPGClass true "Class"
// @Success 201 {object} domain.RPGClass
// @Failure 400 {object} ErrorResponse
// @Router /classes [post]
func HandleCreateClass(svc rpgclass.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var class domain.RPGClass
		if err := DecodeAndValidateRequest(r, w, &class, "Create class"); err != nil {
			return
		}
		created, err := svc.CreateClass(r.Context(), class)
		if err != nil {
			respondServiceError(w, r, "Create class", err)
			return
		}
		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleUpdateClass applies a patch to the class named in the path
// @Summary Update class
// @Tags classes
// @Accept json
// @Produce json
// @Param id path int true "Class id"
// @Param request body domain.ClassPatch true "Fields to change"
// @Success 200 {object} domain.RPGClass
// @Failure 404 {object} ErrorResponse
// @Router /classes/{id} [put]
func HandleUpdateClass(svc rpgclass.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}
		var patch domain.ClassPatch
		if err := DecodeAndValidateRequest(r, w, &patch, "Update class"); err != nil {
			return
		}
		patch.ID = id
		updated, err := svc.UpdateClass(r.Context(), patch)
		if err != nil {
			respondServiceError(w, r, "Update class", err)
			return
		}
		respondJSON(w, http.StatusOK, updated)
	}
}

// HandleBatchUpdateClasses applies a list of patches. Patches for unknown
// ids are left out of the response.
// @Summary Batch update classes
// @Tags classes
// @Accept json
// @Produce json
// @Param request body []domain.ClassPatch true "Patches"
// @Success 200 {array} domain.RPGClass
// @Router /classes [put]
func HandleBatchUpdateClasses(svc rpgclass.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patches []domain.ClassPatch
		if err := DecodeAndValidateRequest(r, w, &patches, "Batch update classes"); err != nil {
			return
		}
		updated, err := svc.BatchUpdate(r.Context(), patches)
		if err != nil {
			respondServiceError(w, r, "Batch update classes", err)
			return
		}
		respondJSON(w, http.StatusOK, updated)
	}
}

// HandleDeleteClass removes a class that no character uses
// @Summary Delete class
// @Tags classes
// @Param id path int true "Class id"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /classes/{id} [delete]
func HandleDeleteClass(svc rpgclass.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}
		if err := svc.DeleteClass(r.Context(), id); err != nil {
			respondServiceError(w, r, "Delete class", err)
			return
		}
		respondNoContent(w)
	}
}

// HandleGetStartingItems lists the starting items for a class name
// @Summary Class starting items
// @Tags classes
// @Produce json
// @Param name path string true "Class name"
// @Success 200 {array} domain.StartingItem
// @Router /classes/name/{name}/starting-items [get]
func HandleGetStartingItems(svc rpgclass.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.GetStartingItems(r.Context(), chi.URLParam(r, "name"))
		if err != nil {
			respondServiceError(w, r, "Get starting items", err)
			return
		}
		respondJSON(w, http.StatusOK, items)
	}
}

// HandleAddStartingItem adds an item template to a class
// @Summary Add class starting item
// @Tags classes
// @Accept json
// @Produce json
// @Param id path int true "Class id"
// @Param request body StartingItemRequest true "Item"
// @Success 201 {object} domain.StartingItem
// @Router /classes/{id}/starting-items [post]
func HandleAddStartingItem(svc rpgclass.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}
		var req StartingItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add starting item"); err != nil {
			return
		}
		item, err := svc.AddStartingItem(r.Context(), id, domain.StartingItem{Name: req.Name, Description: req.Description})
		if err != nil {
			respondServiceError(w, r, "Add starting item", err)
			return
		}
		respondJSON(w, http.StatusCreated, item)
	}
}
