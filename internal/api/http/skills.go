package http

import (
	"errors"
	"net/http"

	"github.com/skillforge/backend/internal/api/service"
	"github.com/skillforge/backend/internal/api/store"
	"github.com/skillforge/backend/pkg/httpx"
)

type SkillsHandler struct {
	Skills *service.SkillService
	Stats  *service.StatsService
}

func (h *SkillsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserID(r.Context())

	q := r.URL.Query()
	filter := store.SkillFilter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Sort:     q.Get("sort"),
		Order:    q.Get("order"),
	}

	skills, err := h.Skills.ListSkills(r.Context(), userID, filter)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	httpx.WriteList(w, http.StatusOK, len(skills), map[string]any{
		"skills": toSkillResponses(skills),
	})
}

func (h *SkillsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserID(r.Context())

	stats, err := h.Stats.SkillStats(r.Context(), userID)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	httpx.WriteData(w, http.StatusOK, stats)
}

func (h *SkillsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserID(r.Context())

	skill, err := h.Skills.GetSkill(r.Context(), userID, r.PathValue("id"))
	switch {
	case errors.Is(err, service.ErrSkillNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Skill not found")
		return
	case err != nil:
		httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	httpx.WriteData(w, http.StatusOK, map[string]any{"skill": toSkillResponse(skill)})
}

type skillRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Category    string  `json:"category" validate:"required,oneof=frontend backend database devops mobile other"`
	Proficiency int     `json:"proficiency" validate:"required,gte=1,lte=5"`
	Experience  float64 `json:"experience" validate:"omitempty,gte=0"`
	LastUsed    string  `json:"lastUsed"`
	Notes       string  `json:"notes" validate:"omitempty,max=500"`
}

func (h *SkillsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserID(r.Context())

	var req skillRequest
	verrs, err := httpx.DecodeJSON(r, &req)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if verrs != nil {
		httpx.WriteValidationError(w, verrs)
		return
	}

	skill, err := h.Skills.CreateSkill(r.Context(), userID, service.SkillParams{
		Name:        req.Name,
		Category:    req.Category,
		Proficiency: req.Proficiency,
		Experience:  req.Experience,
		LastUsed:    req.LastUsed,
		Notes:       req.Notes,
	})
	switch {
	case errors.Is(err, service.ErrSkillExists):
		httpx.WriteError(w, http.StatusBadRequest, "Skill already exists")
		return
	case errors.Is(err, service.ErrInvalidCategory):
		httpx.WriteError(w, http.StatusBadRequest, "Invalid skill category")
		return
	case err != nil:
		httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	httpx.WriteData(w, http.StatusCreated, map[string]any{"skill": toSkillResponse(skill)})
}

type skillUpdateRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Category    *string  `json:"category" validate:"omitempty,oneof=frontend backend database devops mobile other"`
	Proficiency *int     `json:"proficiency" validate:"omitempty,gte=1,lte=5"`
	Experience  *float64 `json:"experience" validate:"omitempty,gte=0"`
	LastUsed    *string  `json:"lastUsed"`
	Notes       *string  `json:"notes" validate:"omitempty,max=500"`
}

func (h *SkillsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserID(r.Context())

	var req skillUpdateRequest
	verrs, err := httpx.DecodeJSON(r, &req)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if verrs != nil {
		httpx.WriteValidationError(w, verrs)
		return
	}

	skill, err := h.Skills.UpdateSkill(r.Context(), userID, r.PathValue("id"), service.UpdateSkillParams{
		Name:        req.Name,
		Category:    req.Category,
		Proficiency: req.Proficiency,
		Experience:  req.Experience,
		LastUsed:    req.LastUsed,
		Notes:       req.Notes,
	})
	switch {
	case errors.Is(err, service.ErrSkillNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Skill not found")
		return
	case errors.Is(err, service.ErrSkillExists):
		httpx.WriteError(w, http.StatusBadRequest, "Skill already exists")
		return
	case errors.Is(err, service.ErrInvalidCategory):
		httpx.WriteError(w, http.StatusBadRequest, "Invalid skill category")
		return
	case err != nil:
		httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	httpx.WriteData(w, http.StatusOK, map[string]any{"skill": toSkillResponse(skill)})
}

func (h *SkillsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserID(r.Context())

	err := h.Skills.DeleteSkill(r.Context(), userID, r.PathValue("id"))
	switch {
	case errors.Is(err, service.ErrSkillNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Skill not found")
		return
	case err != nil:
		httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	httpx.WriteMessage(w, http.StatusOK, "Skill deleted successfully")
}
