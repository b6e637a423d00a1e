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
	ErrGoalNotFound     = errors.New("learning goal not found")
	ErrInvalidProgress  = errors.New("progress must be between 0 and 100")
	ErrTargetDateInPast = errors.New("target date must be in the future")
	ErrInvalidPriority  = errors.New("invalid goal priority")
	ErrInvalidStatus    = errors.New("invalid goal status")
)

type GoalService struct {
	Store store.Store
}

// GoalParams carries the fields for creating a goal.
type GoalParams struct {
	Title       string
	Description string
	TargetSkill string
	Priority    string
	Status      string
	TargetDate  *time.Time
	Progress    int
	Resources   []string
}

// CreateGoal adds a learning goal for the user. The target date, when set,
// must be in the future.
func (s *GoalService) CreateGoal(ctx context.Context, userID string, p GoalParams) (domain.Goal, error) {
	log := slogx.FromContext(ctx)

	if p.TargetDate != nil && !p.TargetDate.After(time.Now()) {
		return domain.Goal{}, ErrTargetDateInPast
	}
	if p.Progress < 0 || p.Progress > 100 {
		return domain.Goal{}, ErrInvalidProgress
	}

	priority := p.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !domain.ValidPriority(priority) {
		return domain.Goal{}, ErrInvalidPriority
	}
	status := p.Status
	if status == "" {
		status = domain.StatusNotStarted
	}
	if !domain.ValidStatus(status) {
		return domain.Goal{}, ErrInvalidStatus
	}

	progress := p.Progress
	// Creating a goal as completed backfills progress to 100.
	if status == domain.StatusCompleted && progress < 100 {
		progress = 100
	}

	now := time.Now().UTC()
	goal := domain.Goal{
		ID:          idx.New().String(),
		UserID:      userID,
		Title:       p.Title,
		Description: p.Description,
		TargetSkill: p.TargetSkill,
		Priority:    priority,
		Status:      status,
		TargetDate:  p.TargetDate,
		Progress:    progress,
		Resources:   p.Resources,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Store.Goals().CreateGoal(ctx, goal); err != nil {
		log.Error("failed to create goal", slog.Any("error", err))
		return domain.Goal{}, err
	}

	log.Info("goal created", slog.String("goal_id", goal.ID), slog.String("user_id", userID))
	return s.GetGoal(ctx, userID, goal.ID)
}

// GetGoal fetches one of the user's goals. Goals owned by other users are
// reported as not found.
func (s *GoalService) GetGoal(ctx context.Context, userID, id string) (domain.Goal, error) {
	goal, err := s.Store.Goals().GetGoal(ctx, userID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Goal{}, ErrGoalNotFound
		}
		return domain.Goal{}, err
	}
	return goal, nil
}

// ListGoals returns the user's goals matching the filter.
func (s *GoalService) ListGoals(ctx context.Context, userID string, f store.GoalFilter) ([]domain.Goal, error) {
	return s.Store.Goals().ListGoals(ctx, userID, f)
}

// UpdateGoalParams carries the optional fields for a partial update. Nil
// fields are left unchanged.
type UpdateGoalParams struct {
	Title       *string
	Description *string
	TargetSkill *string
	Priority    *string
	Status      *string
	TargetDate  *time.Time
	Progress    *int
	Resources   []string
}

// UpdateGoal applies a partial update to a goal.
func (s *GoalService) UpdateGoal(ctx context.Context, userID, id string, p UpdateGoalParams) (domain.Goal, error) {
	log := slogx.FromContext(ctx)

	goal, err := s.GetGoal(ctx, userID, id)
	if err != nil {
		return domain.Goal{}, err
	}

	if p.Title != nil {
		goal.Title = *p.Title
	}
	if p.Description != nil {
		goal.Description = *p.Description
	}
	if p.TargetSkill != nil {
		goal.TargetSkill = *p.TargetSkill
	}
	if p.Priority != nil {
		if !domain.ValidPriority(*p.Priority) {
			return domain.Goal{}, ErrInvalidPriority
		}
		goal.Priority = *p.Priority
	}
	if p.Status != nil {
		if !domain.ValidStatus(*p.Status) {
			return domain.Goal{}, ErrInvalidStatus
		}
		goal.Status = *p.Status
	}
	if p.TargetDate != nil {
		goal.TargetDate = p.TargetDate
	}
	if p.Progress != nil {
		if *p.Progress < 0 || *p.Progress > 100 {
			return domain.Goal{}, ErrInvalidProgress
		}
		goal.Progress = *p.Progress
	}
	if p.Resources != nil {
		goal.Resources = p.Resources
	}

	// Explicitly marking a goal completed backfills progress to 100. A
	// progress-only update never takes this path, so intermediate progress
	// can still reopen a completed goal.
	if p.Status != nil && goal.Status == domain.StatusCompleted && goal.Progress < 100 {
		goal.Progress = 100
	}

	if err := s.Store.Goals().UpdateGoal(ctx, goal); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Goal{}, ErrGoalNotFound
		}
		log.Error("failed to update goal", slog.Any("error", err))
		return domain.Goal{}, err
	}

	return s.GetGoal(ctx, userID, id)
}

// UpdateProgress sets the goal's progress, letting the reconciliation rules
// move the status along with it.
func (s *GoalService) UpdateProgress(ctx context.Context, userID, id string, progress int) (domain.Goal, error) {
	if progress < 0 || progress > 100 {
		return domain.Goal{}, ErrInvalidProgress
	}
	return s.UpdateGoal(ctx, userID, id, UpdateGoalParams{Progress: &progress})
}

// DeleteGoal removes one of the user's goals.
func (s *GoalService) DeleteGoal(ctx context.Context, userID, id string) error {
	log := slogx.FromContext(ctx)

	if err := s.Store.Goals().DeleteGoal(ctx, userID, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrGoalNotFound
		}
		log.Error("failed to delete goal", slog.Any("error", err))
		return err
	}

	log.Info("goal deleted", slog.String("goal_id", id), slog.String("user_id", userID))
	return nil
}
