package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/skillforge/backend/internal/api/service"
	"github.com/skillforge/backend/internal/api/store"
	"github.com/skillforge/backend/pkg/httpx"
)

type GoalsHandler struct {
	Goals *service.GoalService
	Stats *service.StatsService
}

func (h *GoalsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserID(r.Context())

	q := r.URL.Query()
	filter := store.GoalFilter{
		Status:   q.Get("status"),
		Priority: q.Get("priority"),
		Search:   q.Get("search"),
		Sort:     q.Get("sort"),
		Order:    q.Get("order"),
	}

	goals, err := h.Goals.ListGoals(r.Context(), userID, filter)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	httpx.WriteList(w, http.StatusOK, len(goals), map[string]any{
		"goals": toGoalResponses(goals),
	})
}

type goalStatsResponse struct {
	Overview          service.GoalOverview            `json:"overview"`
	ByPriority        map[string]service.PriorityStat `json:"byPriority"`
	UpcomingDeadlines int                             `json:"upcomingDeadlines"`
	Overdue           int                             `json:"overdue"`
}

func (h *GoalsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserID(r.Context())

	stats, err := h.Stats.GoalStats(r.Context(), userID)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	httpx.WriteData(w, http.StatusOK, goalStatsResponse{
		Overview:          stats.Overview,
		ByPriority:        stats.ByPriority,
		UpcomingDeadlines: len(stats.UpcomingDeadlines),
		Overdue:           len(stats.Overdue),
	})
}

func (h *GoalsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserID(r.Context())

	goal, err := h.Goals.GetGoal(r.Context(), userID, r.PathValue("id"))
	switch {
	case errors.Is(err, service.ErrGoalNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Learning goal not found")
		return
	case err != nil:
		httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	httpx.WriteData(w, http.StatusOK, map[string]any{"goal": toGoalResponse(goal)})
}

type createGoalRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Description string     `json:"description" validate:"omitempty,max=1000"`
	TargetSkill string     `json:"targetSkill" validate:"required,min=1,max=100"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	Status      string     `json:"status" validate:"omitempty,oneof=not-started in-progress completed paused"`
	TargetDate  *time.Time `json:"targetDate"`
	Progress    int        `json:"progress" validate:"omitempty,gte=0,lte=100"`
	Resources   []string   `json:"resources"`
}

func (h *GoalsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserID(r.Context())

	var req createGoalRequest
	verrs, err := httpx.DecodeJSON(r, &req)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if verrs != nil {
		httpx.WriteValidationError(w, verrs)
		return
	}

	goal, err := h.Goals.CreateGoal(r.Context(), userID, service.GoalParams{
		Title:       req.Title,
		Description: req.Description,
		TargetSkill: req.TargetSkill,
		Priority:    req.Priority,
		Status:      req.Status,
		TargetDate:  req.TargetDate,
		Progress:    req.Progress,
		Resources:   req.Resources,
	})
	switch {
	case errors.Is(err, service.ErrTargetDateInPast):
		httpx.WriteError(w, http.StatusBadRequest, "Target date must be in the future")
		return
	case errors.Is(err, service.ErrInvalidProgress):
		httpx.WriteError(w, http.StatusBadRequest, "Progress must be between 0 and 100")
		return
	case errors.Is(err, service.ErrInvalidPriority):
		httpx.WriteError(w, http.StatusBadRequest, "Invalid priority")
		return
	case errors.Is(err, service.ErrInvalidStatus):
		httpx.WriteError(w, http.StatusBadRequest, "Invalid status")
		return
	case err != nil:
		httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	httpx.WriteData(w, http.StatusCreated, map[string]any{"goal": toGoalResponse(goal)})
}

type updateGoalRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=1000"`
	TargetSkill *string    `json:"targetSkill" validate:"omitempty,min=1,max=100"`
	Priority    *string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	Status      *string    `json:"status" validate:"omitempty,oneof=not-started in-progress completed paused"`
	TargetDate  *time.Time `json:"targetDate"`
	Progress    *int       `json:"progress" validate:"omitempty,gte=0,lte=100"`
	Resources   []string   `json:"resources"`
}

func (h *GoalsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserID(r.Context())

	var req updateGoalRequest
	verrs, err := httpx.DecodeJSON(r, &req)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if verrs != nil {
		httpx.WriteValidationError(w, verrs)
		return
	}

	goal, err := h.Goals.UpdateGoal(r.Context(), userID, r.PathValue("id"), service.UpdateGoalParams{
		Title:       req.Title,
		Description: req.Description,
		TargetSkill: req.TargetSkill,
		Priority:    req.Priority,
		Status:      req.Status,
		TargetDate:  req.TargetDate,
		Progress:    req.Progress,
		Resources:   req.Resources,
	})
	switch {
	case errors.Is(err, service.ErrGoalNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Learning goal not found")
		return
	case errors.Is(err, service.ErrInvalidProgress):
		httpx.WriteError(w, http.StatusBadRequest, "Progress must be between 0 and 100")
		return
	case errors.Is(err, service.ErrInvalidPriority):
		httpx.WriteError(w, http.StatusBadRequest, "Invalid priority")
		return
	case errors.Is(err, service.ErrInvalidStatus):
		httpx.WriteError(w, http.StatusBadRequest, "Invalid status")
		return
	case err != nil:
		httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	httpx.WriteData(w, http.StatusOK, map[string]any{"goal": toGoalResponse(goal)})
}

type updateProgressRequest struct {
	Progress *int `json:"progress" validate:"required,gte=0,lte=100"`
}

func (h *GoalsHandler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserID(r.Context())

	var req updateProgressRequest
	verrs, err := httpx.DecodeJSON(r, &req)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if verrs != nil {
		httpx.WriteValidationError(w, verrs)
		return
	}

	goal, err := h.Goals.UpdateProgress(r.Context(), userID, r.PathValue("id"), *req.Progress)
	switch {
	case errors.Is(err, service.ErrGoalNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Learning goal not found")
		return
	case errors.Is(err, service.ErrInvalidProgress):
		httpx.WriteError(w, http.StatusBadRequest, "Progress must be between 0 and 100")
		return
	case err != nil:
		httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	httpx.WriteData(w, http.StatusOK, map[string]any{"goal": toGoalResponse(goal)})
}

func (h *GoalsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserID(r.Context())

	err := h.Goals.DeleteGoal(r.Context(), userID, r.PathValue("id"))
	switch {
	case errors.Is(err, service.ErrGoalNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Learning goal not found")
		return
	case err != nil:
		httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	httpx.WriteMessage(w, http.StatusOK, "Learning goal deleted successfully")
}
