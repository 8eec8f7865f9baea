package handler

import (
	"net/http"

	"github.com/osse101/CharacterCreator_Go/internal/character"
	"github.com/osse101/CharacterCreator_Go/internal/domain"
)

// AddItemRequest is the body of an inventory add
type AddItemRequest struct {
	Name        string `json:"name" validate:"notblank,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// HandleGetInventory lists a character's items
// @Summary Get inventory
// @Tags inventory
// @Produce json
// @Param id path int true "Character id"
// @Success 200 {array} domain.InventoryItem
// @Failure 404 {object} ErrorResponse
// @Router /characters/{id}/inventory [get]
func HandleGetInventory(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}
		items, err := svc.GetInventory(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Get inventory", err)
			return
		}
		respondJSON(w, http.StatusOK, items)
	}
}

// HandleAddInventoryItem adds one item to a character
// @Summary Add inventory item
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path int true "Character id"
// @Param request body AddItemRequest true "Item"
// @Success 201 {object} domain.InventoryItem
// @Failure 400 {object} ErrorResponse
// @Router /characters/{id}/inventory [post]
func HandleAddInventoryItem(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}
		var req AddItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add item"); err != nil {
			return
		}
		item, err := svc.AddInventoryItem(r.Context(), id, domain.InventoryItem{Name: req.Name, Description: req.Description})
		if err != nil {
			respondServiceError(w, r, "Add item", err)
			return
		}
		respondJSON(w, http.StatusCreated, item)
	}
}
