package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/skillforge/backend/internal/api/domain"
	"github.com/skillforge/backend/internal/api/store"
	"github.com/skillforge/backend/pkg/idx"
	"github.com/skillforge/backend/pkg/slogx"
)

var (
	ErrSkillExists     = errors.New("skill already exists")
	ErrSkillNotFound   = errors.New("skill not found")
	ErrInvalidCategory = errors.New("invalid skill category")
)

type SkillService struct {
	Store store.Store
}

// SkillParams carries the writable skill fields.
type SkillParams struct {
	Name        string
	Category    string
	Proficiency int
	Experience  float64
	LastUsed    string
	Notes       string
}

// CreateSkill adds a skill for the user. Names are unique per user.
func (s *SkillService) CreateSkill(ctx context.Context, userID string, p SkillParams) (domain.Skill, error) {
	log := slogx.FromContext(ctx)

	if !domain.ValidCategory(p.Category) {
		return domain.Skill{}, ErrInvalidCategory
	}

	now := time.Now().UTC()
	skill := domain.Skill{
		ID:          idx.New().String(),
		UserID:      userID,
		Name:        p.Name,
		Category:    p.Category,
		Proficiency: p.Proficiency,
		Experience:  p.Experience,
		LastUsed:    p.LastUsed,
		Notes:       p.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Store.Skills().CreateSkill(ctx, skill); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Skill{}, ErrSkillExists
		}
		log.Error("failed to create skill", slog.Any("error", err))
		return domain.Skill{}, err
	}

	log.Info("skill created", slog.String("skill_id", skill.ID), slog.String("user_id", userID))
	return skill, nil
}

// GetSkill fetches one of the user's skills. Skills owned by other users are
// reported as not found.
func (s *SkillService) GetSkill(ctx context.Context, userID, id string) (domain.Skill, error) {
	skill, err := s.Store.Skills().GetSkill(ctx, userID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Skill{}, ErrSkillNotFound
		}
		return domain.Skill{}, err
	}
	return skill, nil
}

// ListSkills returns the user's skills matching the filter.
func (s *SkillService) ListSkills(ctx context.Context, userID string, f store.SkillFilter) ([]domain.Skill, error) {
	return s.Store.Skills().ListSkills(ctx, userID, f)
}

// UpdateSkillParams carries the optional fields for a partial update. Nil
// fields are left unchanged, so notes and experience can be cleared by
// sending their zero values.
type UpdateSkillParams struct {
	Name        *string
	Category    *string
	Proficiency *int
	Experience  *float64
	LastUsed    *string
	Notes       *string
}

// UpdateSkill applies a partial update to a skill.
func (s *SkillService) UpdateSkill(ctx context.Context, userID, id string, p UpdateSkillParams) (domain.Skill, error) {
	log := slogx.FromContext(ctx)

	skill, err := s.GetSkill(ctx, userID, id)
	if err != nil {
		return domain.Skill{}, err
	}

	if p.Name != nil {
		skill.Name = *p.Name
	}
	if p.Category != nil {
		if !domain.ValidCategory(*p.Category) {
			return domain.Skill{}, ErrInvalidCategory
		}
		skill.Category = *p.Category
	}
	if p.Proficiency != nil {
		skill.Proficiency = *p.Proficiency
	}
	if p.Experience != nil {
		skill.Experience = *p.Experience
	}
	if p.LastUsed != nil {
		skill.LastUsed = *p.LastUsed
	}
	if p.Notes != nil {
		skill.Notes = *p.Notes
	}

	if err := s.Store.Skills().UpdateSkill(ctx, skill); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return domain.Skill{}, ErrSkillNotFound
		case errors.Is(err, store.ErrAlreadyExists):
			return domain.Skill{}, ErrSkillExists
		}
		log.Error("failed to update skill", slog.Any("error", err))
		return domain.Skill{}, err
	}

	return s.GetSkill(ctx, userID, id)
}

// DeleteSkill removes one of the user's skills.
func (s *SkillService) DeleteSkill(ctx context.Context, userID, id string) error {
	log := slogx.FromContext(ctx)

	if err := s.Store.Skills().DeleteSkill(ctx, userID, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrSkillNotFound
		}
		log.Error("failed to delete skill", slog.Any("error", err))
		return err
	}

	log.Info("skill deleted", slog.String("skill_id", id), slog.String("user_id", userID))
	return nil
}
