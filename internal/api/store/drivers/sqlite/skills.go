package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/skillforge/backend/internal/api/domain"
	"github.com/skillforge/backend/internal/api/store"
)

type skillsRepo struct {
	db DBTX
}

const skillColumns = `id, user_id, name, category, proficiency, experience, last_used, notes, created_at, updated_at`

// skillSortColumns whitelists API sort keys against real columns.
var skillSortColumns = map[string]string{
	"name":        "name",
	"category":    "category",
	"proficiency": "proficiency",
	"experience":  "experience",
	"lastUsed":    "last_used",
	"createdAt":   "created_at",
}

func scanSkill(row interface{ Scan(...any) error }) (domain.Skill, error) {
	var s domain.Skill
	err := row.Scan(&s.ID, &s.UserID, &s.Name, &s.Category, &s.Proficiency,
		&s.Experience, &s.LastUsed, &s.Notes, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func (r *skillsRepo) CreateSkill(ctx context.Context, s domain.Skill) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO skills (id, user_id, name, category, proficiency, experience, last_used, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.UserID, s.Name, s.Category, s.Proficiency, s.Experience,
		s.LastUsed, s.Notes, s.CreatedAt, s.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *skillsRepo) GetSkill(ctx context.Context, userID, id string) (domain.Skill, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+skillColumns+` FROM skills WHERE id = ? AND user_id = ?`, id, userID)
	s, err := scanSkill(row)
	return s, mapNotFound(err)
}

func (r *skillsRepo) ListSkills(ctx context.Context, userID string, f store.SkillFilter) ([]domain.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE user_id = ?`
	args := []any{userID}

	if f.Category != "" {
		query += ` AND category = ?`
		args = append(args, f.Category)
	}
	if f.Search != "" {
		query += ` AND (lower(name) LIKE ? OR lower(notes) LIKE ?)`
		pattern := "%" + strings.ToLower(f.Search) + "%"
		args = append(args, pattern, pattern)
	}

	column, ok := skillSortColumns[f.Sort]
	if !ok {
		column = "name"
	}
	direction := "ASC"
	if f.Order == "desc" {
		direction = "DESC"
	}
	query += fmt.Sprintf(` ORDER BY %s %s`, column, direction)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []domain.Skill
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *skillsRepo) UpdateSkill(ctx context.Context, s domain.Skill) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE skills
		SET name = ?, category = ?, proficiency = ?, experience = ?, last_used = ?, notes = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`,
		s.Name, s.Category, s.Proficiency, s.Experience, s.LastUsed, s.Notes,
		time.Now().UTC(), s.ID, s.UserID,
	)
	if err != nil {
		return mapConstraint(err)
	}
	return requireRow(res)
}

func (r *skillsRepo) DeleteSkill(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM skills WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *skillsRepo) DeleteAllSkills(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM skills WHERE user_id = ?`, userID)
	return err
}
