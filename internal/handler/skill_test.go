package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
)

func TestHandleListSkills(t *testing.T) {
	svc := &MockSkillService{}
	svc.On("ListSkills", mock.Anything).Return([]domain.Skill{{ID: 1, Name: "Charge", ClassID: 1}, {ID: 4, Name: "Fireball", ClassID: 2}}, nil)
	svc.On("ListSkillsByClass", mock.Anything, int64(2)).Return([]domain.Skill{{ID: 4, Name: "Fireball", ClassID: 2}}, nil)

	w := httptest.NewRecorder()
	HandleListSkills(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/skills", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Charge")

	w = httptest.NewRecorder()
	HandleListSkills(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/skills?classId=2", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Charge")

	w = httptest.NewRecorder()
	HandleListSkills(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/skills?classId=mage", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertExpectations(t)
}

func TestHandleCreateSkill(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		body           CreateSkillRequest
		setupMock      func(*MockSkillService)
		expectedStatus int
	}{
		{
			name: "created",
			body: CreateSkillRequest{Name: "Taunt", ClassID: 1},
			setupMock: func(m *MockSkillService) {
				m.On("CreateSkill", mock.Anything, domain.Skill{Name: "Taunt", ClassID: 1}).
					Return(&domain.Skill{ID: 9, Name: "Taunt", ClassID: 1}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing class",
			body:           CreateSkillRequest{Name: "Taunt"},
			setupMock:      func(*MockSkillService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown class",
			body: CreateSkillRequest{Name: "Taunt", ClassID: 99},
			setupMock: func(m *MockSkillService) {
				m.On("CreateSkill", mock.Anything, mock.Anything).Return(nil, domain.ErrClassNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockSkillService{}
			tt.setupMock(svc)

			w := httptest.NewRecorder()
			HandleCreateSkill(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/skills", jsonBody(t, tt.body)))
			assert.Equal(t, tt.expectedStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleGetSkill(t *testing.T) {
	svc := &MockSkillService{}
	svc.On("GetSkill", mock.Anything, int64(4)).Return(&domain.Skill{ID: 4, Name: "Fireball", ClassID: 2}, nil)
	svc.On("GetSkill", mock.Anything, int64(9)).Return(nil, domain.ErrSkillNotFound)

	w := httptest.NewRecorder()
	HandleGetSkill(svc).ServeHTTP(w, withURLParams(httptest.NewRequest(http.MethodGet, "/skills/4", nil), "id", "4"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Fireball"`)

	w = httptest.NewRecorder()
	HandleGetSkill(svc).ServeHTTP(w, withURLParams(httptest.NewRequest(http.MethodGet, "/skills/9", nil), "id", "9"))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	HandleGetSkill(svc).ServeHTTP(w, withURLParams(httptest.NewRequest(http.MethodGet, "/skills/x", nil), "id", "x"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleDeleteSkill(t *testing.T) {
	svc := &MockSkillService{}
	svc.On("DeleteSkill", mock.Anything, int64(3)).Return(nil)

	w := httptest.NewRecorder()
	HandleDeleteSkill(svc).ServeHTTP(w, withURLParams(httptest.NewRequest(http.MethodDelete, "/skills/3", nil), "id", "3"))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandleAddSkillToCharacter(t *testing.T) {
	svc := &MockSkillService{}
	svc.On("AddSkillToCharacter", mock.Anything, int64(1), int64(3)).
		Return(&domain.Character{ID: 1, SkillIDs: []int64{1, 2, 3, 3}}, nil)
	svc.On("AddSkillToCharacter", mock.Anything, int64(1), int64(77)).Return(nil, domain.ErrSkillNotFound)

	w := httptest.NewRecorder()
	r := withURLParams(httptest.NewRequest(http.MethodPost, "/skills/1/add/3", nil), "id", "1", "skillId", "3")
	HandleAddSkillToCharacter(svc).ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r = withURLParams(httptest.NewRequest(http.MethodPost, "/skills/1/add/77", nil), "id", "1", "skillId", "77")
	HandleAddSkillToCharacter(svc).ServeHTTP(w, r)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
