package handler

import (
	"net/http"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
	"github.com/osse101/CharacterCreator_Go/internal/skill"
)

// CreateSkillRequest is the body of a skill create
type CreateSkillRequest struct {
	Name        string `json:"name" validate:"notblank,max=100"`
	Description string `json:"description" validate:"max=1000"`
	ClassID     int64  `json:"classId" validate:"required,gt=0"`
}

// HandleListSkills lists skills, optionally only those of one class
// @Summary List skills
// @Tags skills
// @Produce json
// @Param classId query int false "Owning class"
// @Success 200 {array} domain.Skill
// @Router /skills [get]
func HandleListSkills(svc skill.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		classID, present, err := queryInt(r, "classId")
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		var skills []domain.Skill
		if present {
			skills, err = svc.ListSkillsByClass(r.Context(), int64(classID))
		} else {
			skills, err = svc.ListSkills(r.Context())
		}
		if err != nil {
			respondServiceError(w, r, "List skills", err)
			return
		}
		respondJSON(w, http.StatusOK, skills)
	}
}

// HandleCreateSkill adds a skill to a class
// @Summary Create skill
// @Tags skills
// @Accept json
// @Produce json
// @Param request body CreateSkillRequest true "Skill"
// @Success 201 {object} domain.Skill
// @Failure 404 {object} ErrorResponse
// @Router /skills [post]
func HandleCreateSkill(svc skill.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateSkillRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create skill"); err != nil {
			return
		}
		created, err := svc.CreateSkill(r.Context(), domain.Skill{
			Name:        req.Name,
			Description: req.Description,
			ClassID:     req.ClassID,
		})
		if err != nil {
			respondServiceError(w, r, "Create skill", err)
			return
		}
		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleGetSkill returns one skill
// @Summary Get skill
// @Tags skills
// @Produce json
// @Param id path int true "Skill id"
// @Success 200 {object} domain.Skill
// @Failure 404 {object} ErrorResponse
// @Router /skills/{id} [get]
func HandleGetSkill(svc skill.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}
		s, err := svc.GetSkill(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Get skill", err)
			return
		}
		respondJSON(w, http.StatusOK, s)
	}
}

// HandleDeleteSkill removes a skill
// @Summary Delete skill
// @Tags skills
// @Param id path int true "Skill id"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /skills/{id} [delete]
func HandleDeleteSkill(svc skill.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}
		if err := svc.DeleteSkill(r.Context(), id); err != nil {
			respondServiceError(w, r, "Delete skill", err)
			return
		}
		respondNoContent(w)
	}
}

// HandleAddSkillToCharacter appends a skill to a character's list
// @Summary Add skill to character
// @Tags skills
// @Produce json
// @Param id path int true "Character id"
// @Param skillId path int true "Skill id"
// @Success 200 {object} domain.Character
// @Failure 404 {object} ErrorResponse
// @Router /skills/{id}/add/{skillId} [post]
func HandleAddSkillToCharacter(svc skill.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		characterID, ok := pathID(w, r, "id")
		if !ok {
			return
		}
		skillID, ok := pathID(w, r, "skillId")
		if !ok {
			return
		}
		c, err := svc.AddSkillToCharacter(r.Context(), characterID, skillID)
		if err != nil {
			respondServiceError(w, r, "Add skill to character", err)
			return
		}
		respondJSON(w, http.StatusOK, c)
	}
}
