package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
)

func TestHandleGetInventory(t *testing.T) {
	svc := &MockCharacterService{}
	svc.On("GetInventory", mock.Anything, int64(1)).Return([]domain.InventoryItem{
		{ID: 10, Name: "Traveler's Sword", Description: "Basic weapon for your role.", CharacterID: 1},
	}, nil)
	svc.On("GetInventory", mock.Anything, int64(2)).Return(nil, domain.ErrCharacterNotFound)

	w := httptest.NewRecorder()
	HandleGetInventory(svc).ServeHTTP(w, withURLParams(httptest.NewRequest(http.MethodGet, "/characters/1/inventory", nil), "id", "1"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Traveler's Sword"`)

	w = httptest.NewRecorder()
	HandleGetInventory(svc).ServeHTTP(w, withURLParams(httptest.NewRequest(http.MethodGet, "/characters/2/inventory", nil), "id", "2"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleAddInventoryItem(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		id             string
		body           AddItemRequest
		setupMock      func(*MockCharacterService)
		expectedStatus int
	}{
		{
			name: "added",
			id:   "1",
			body: AddItemRequest{Name: "Rope", Description: "Fifty feet"},
			setupMock: func(m *MockCharacterService) {
				m.On("AddInventoryItem", mock.Anything, int64(1), domain.InventoryItem{Name: "Rope", Description: "Fifty feet"}).
					Return(&domain.InventoryItem{ID: 5, Name: "Rope", Description: "Fifty feet", CharacterID: 1}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "blank name",
			id:             "1",
			body:           AddItemRequest{Name: "  "},
			setupMock:      func(*MockCharacterService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown character",
			id:   "3",
			body: AddItemRequest{Name: "Rope"},
			setupMock: func(m *MockCharacterService) {
				m.On("AddInventoryItem", mock.Anything, int64(3), mock.Anything).Return(nil, domain.ErrCharacterNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "bad id",
			id:             "x",
			body:           AddItemRequest{Name: "Rope"},
			setupMock:      func(*MockCharacterService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockCharacterService{}
			tt.setupMock(svc)

			w := httptest.NewRecorder()
			r := withURLParams(httptest.NewRequest(http.MethodPost, "/characters/"+tt.id+"/inventory", jsonBody(t, tt.body)), "id", tt.id)
			HandleAddInventoryItem(svc).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}
