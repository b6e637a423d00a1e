package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/skillforge/backend/internal/api/domain"
	"github.com/skillforge/backend/internal/api/store"
)

type goalsRepo struct {
	db DBTX
}

const goalColumns = `id, user_id, title, description, target_skill, priority, status, target_date, progress, resources, created_at, updated_at`

var goalSortColumns = map[string]string{
	"title":      "title",
	"priority":   "priority",
	"status":     "status",
	"progress":   "progress",
	"targetDate": "target_date",
	"createdAt":  "created_at",
}

func scanGoal(row interface{ Scan(...any) error }) (domain.Goal, error) {
	var (
		g          domain.Goal
		targetDate sql.NullTime
		resources  string
	)
	err := row.Scan(&g.ID, &g.UserID, &g.Title, &g.Description, &g.TargetSkill,
		&g.Priority, &g.Status, &targetDate, &g.Progress, &resources,
		&g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return g, err
	}
	g.TargetDate = mapNullTimePtr(targetDate)
	if err := json.Unmarshal([]byte(resources), &g.Resources); err != nil {
		return g, fmt.Errorf("decode resources: %w", err)
	}
	return g, nil
}

func encodeResources(resources []string) (string, error) {
	if resources == nil {
		resources = []string{}
	}
	raw, err := json.Marshal(resources)
	if err != nil {
		return "", fmt.Errorf("encode resources: %w", err)
	}
	return string(raw), nil
}

func (r *goalsRepo) CreateGoal(ctx context.Context, g domain.Goal) error {
	// Status and progress are reconciled on every write so they never drift.
	g.Status, g.Progress = domain.ReconcileProgress(g.Status, g.Progress)

	resources, err := encodeResources(g.Resources)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO learning_goals (id, user_id, title, description, target_skill, priority, status, target_date, progress, resources, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.UserID, g.Title, g.Description, g.TargetSkill, g.Priority,
		g.Status, mapOptionalTime(g.TargetDate), g.Progress, resources,
		g.CreatedAt, g.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *goalsRepo) GetGoal(ctx context.Context, userID, id string) (domain.Goal, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+goalColumns+` FROM learning_goals WHERE id = ? AND user_id = ?`, id, userID)
	g, err := scanGoal(row)
	return g, mapNotFound(err)
}

func (r *goalsRepo) ListGoals(ctx context.Context, userID string, f store.GoalFilter) ([]domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM learning_goals WHERE user_id = ?`
	args := []any{userID}

	if f.Status != "" {
		query += ` AND status = ?`
		args = append(args, f.Status)
	}
	if f.Priority != "" {
		query += ` AND priority = ?`
		args = append(args, f.Priority)
	}
	if f.Search != "" {
		query += ` AND (lower(title) LIKE ? OR lower(description) LIKE ? OR lower(target_skill) LIKE ?)`
		pattern := "%" + strings.ToLower(f.Search) + "%"
		args = append(args, pattern, pattern, pattern)
	}

	column, ok := goalSortColumns[f.Sort]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if f.Order == "asc" {
		direction = "ASC"
	}
	query += fmt.Sprintf(` ORDER BY %s %s`, column, direction)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []domain.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (r *goalsRepo) UpdateGoal(ctx context.Context, g domain.Goal) error {
	g.Status, g.Progress = domain.ReconcileProgress(g.Status, g.Progress)

	resources, err := encodeResources(g.Resources)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE learning_goals
		SET title = ?, description = ?, target_skill = ?, priority = ?, status = ?, target_date = ?, progress = ?, resources = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`,
		g.Title, g.Description, g.TargetSkill, g.Priority, g.Status,
		mapOptionalTime(g.TargetDate), g.Progress, resources,
		time.Now().UTC(), g.ID, g.UserID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *goalsRepo) DeleteGoal(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM learning_goals WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *goalsRepo) DeleteAllGoals(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM learning_goals WHERE user_id = ?`, userID)
	return err
}
