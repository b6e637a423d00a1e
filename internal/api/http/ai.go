package http

import (
	"errors"
	"net/http"

	"github.com/skillforge/backend/internal/api/ai"
	"github.com/skillforge/backend/internal/api/domain"
	"github.com/skillforge/backend/internal/api/service"
	"github.com/skillforge/backend/internal/api/store"
	"github.com/skillforge/backend/pkg/httpx"
)

type AIHandler struct {
	Skills  *service.SkillService
	Goals   *service.GoalService
	Stats   *service.StatsService
	Advisor *ai.Advisor
}

func (h *AIHandler) HandleInsights(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserID(r.Context())

	insights, err := h.Stats.Insights(r.Context(), userID)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	httpx.WriteData(w, http.StatusOK, insights)
}

type learningPathResponse struct {
	Recommendations string    `json:"recommendations"`
	Source          ai.Source `json:"source"`
	BasedOn         struct {
		SkillsCount int `json:"skillsCount"`
		GoalsCount  int `json:"goalsCount"`
	} `json:"basedOn"`
}

func (h *AIHandler) HandleLearningPath(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserID(r.Context())

	skills, err := h.Skills.ListSkills(r.Context(), userID, store.SkillFilter{})
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	goals, err := h.Goals.ListGoals(r.Context(), userID, store.GoalFilter{})
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	// Completed goals carry no weight for what to learn next.
	open := make([]domain.Goal, 0, len(goals))
	for _, g := range goals {
		if g.Status != domain.StatusCompleted {
			open = append(open, g)
		}
	}

	result := h.Advisor.LearningPath(r.Context(), skills, open)

	resp := learningPathResponse{Recommendations: result.Text, Source: result.Source}
	resp.BasedOn.SkillsCount = len(skills)
	resp.BasedOn.GoalsCount = len(open)
	httpx.WriteData(w, http.StatusOK, resp)
}

type skillSuggestionsResponse struct {
	Suggestions   string    `json:"suggestions"`
	BasedOnSkills []string  `json:"basedOnSkills"`
	Source        ai.Source `json:"source"`
}

func (h *AIHandler) HandleSkillSuggestions(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserID(r.Context())

	skills, err := h.Skills.ListSkills(r.Context(), userID, store.SkillFilter{})
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}

	result := h.Advisor.SkillSuggestions(r.Context(), names)

	httpx.WriteData(w, http.StatusOK, skillSuggestionsResponse{
		Suggestions:   result.Text,
		BasedOnSkills: names,
		Source:        result.Source,
	})
}

type skillGapsRequest struct {
	TargetRole string `json:"targetRole" validate:"required,min=1,max=100"`
}

type skillGapsResponse struct {
	Analysis           string    `json:"analysis"`
	TargetRole         string    `json:"targetRole"`
	CurrentSkillsCount int       `json:"currentSkillsCount"`
	Source             ai.Source `json:"source"`
}

func (h *AIHandler) HandleSkillGaps(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserID(r.Context())

	var req skillGapsRequest
	verrs, err := httpx.DecodeJSON(r, &req)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if verrs != nil {
		httpx.WriteValidationError(w, verrs)
		return
	}

	skills, err := h.Skills.ListSkills(r.Context(), userID, store.SkillFilter{})
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	result := h.Advisor.SkillGapAnalysis(r.Context(), skills, req.TargetRole)

	httpx.WriteData(w, http.StatusOK, skillGapsResponse{
		Analysis:           result.Text,
		TargetRole:         req.TargetRole,
		CurrentSkillsCount: len(skills),
		Source:             result.Source,
	})
}

type studyPlanGoal struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	TargetSkill string `json:"targetSkill"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

type studyPlanResponse struct {
	StudyPlan string        `json:"studyPlan"`
	Goal      studyPlanGoal `json:"goal"`
	Source    ai.Source     `json:"source"`
}

func (h *AIHandler) HandleStudyPlan(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserID(r.Context())

	goal, err := h.Goals.GetGoal(r.Context(), userID, r.PathValue("goalId"))
	switch {
	case errors.Is(err, service.ErrGoalNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Learning goal not found")
		return
	case err != nil:
		httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	skills, err := h.Skills.ListSkills(r.Context(), userID, store.SkillFilter{})
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	result := h.Advisor.StudyPlan(r.Context(), goal, skills)

	httpx.WriteData(w, http.StatusOK, studyPlanResponse{
		StudyPlan: result.Text,
		Goal: studyPlanGoal{
			ID:          goal.ID,
			Title:       goal.Title,
			TargetSkill: goal.TargetSkill,
			Priority:    goal.Priority,
			Status:      goal.Status,
		},
		Source: result.Source,
	})
}
