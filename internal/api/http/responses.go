package http

import (
	"time"

	"github.com/skillforge/backend/internal/api/domain"
)

// Response DTOs. The password hash never leaves the service boundary.

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type skillResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Proficiency int       `json:"proficiency"`
	Experience  float64   `json:"experience"`
	LastUsed    string    `json:"lastUsed,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toSkillResponse(s domain.Skill) skillResponse {
	return skillResponse{
		ID:          s.ID,
		Name:        s.Name,
		Category:    s.Category,
		Proficiency: s.Proficiency,
		Experience:  s.Experience,
		LastUsed:    s.LastUsed,
		Notes:       s.Notes,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toSkillResponses(skills []domain.Skill) []skillResponse {
	out := make([]skillResponse, 0, len(skills))
	for _, s := range skills {
		out = append(out, toSkillResponse(s))
	}
	return out
}

type goalResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	TargetSkill string     `json:"targetSkill"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	TargetDate  *time.Time `json:"targetDate,omitempty"`
	Progress    int        `json:"progress"`
	Resources   []string   `json:"resources"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func toGoalResponse(g domain.Goal) goalResponse {
	resources := g.Resources
	if resources == nil {
		resources = []string{}
	}
	return goalResponse{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		TargetSkill: g.TargetSkill,
		Priority:    g.Priority,
		Status:      g.Status,
		TargetDate:  g.TargetDate,
		Progress:    g.Progress,
		Resources:   resources,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

func toGoalResponses(goals []domain.Goal) []goalResponse {
	out := make([]goalResponse, 0, len(goals))
	for _, g := range goals {
		out = append(out, toGoalResponse(g))
	}
	return out
}
