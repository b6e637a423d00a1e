package store

import (
	"context"
	"errors"

	"github.com/skillforge/backend/internal/api/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Skills() Skills
	Goals() Goals

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// Use it for multi-step operations that must be atomic (e.g., account
	// deletion). The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// This is the recommended way to handle transactions as it automatically
	// handles commit/rollback logic.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by app via ULID).
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login. Email is matched lowercased.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// UpdateProfile mutates name and email and bumps updated_at.
	UpdateProfile(ctx context.Context, userID, name, email string) error

	// UpdatePasswordHash sets the password_hash (argon2) and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error

	// DeleteUser cascades to skills and learning_goals (per schema).
	DeleteUser(ctx context.Context, userID string) error
}

// SkillFilter narrows and orders skill listings. Search is a case-insensitive
// substring match over name and notes. Sort must be a whitelisted column.
type SkillFilter struct {
	Category string
	Search   string
	Sort     string // name | proficiency | experience | lastUsed | createdAt
	Order    string // asc | desc
}

type Skills interface {
	// CreateSkill inserts a new skill. Duplicate (user, name) returns
	// ErrAlreadyExists.
	CreateSkill(ctx context.Context, s domain.Skill) error

	// GetSkill returns a skill owned by userID. Other users' skills are
	// ErrNotFound.
	GetSkill(ctx context.Context, userID, id string) (domain.Skill, error)

	// ListSkills returns the user's skills matching the filter.
	ListSkills(ctx context.Context, userID string, f SkillFilter) ([]domain.Skill, error)

	// UpdateSkill replaces all mutable fields and bumps updated_at.
	UpdateSkill(ctx context.Context, s domain.Skill) error

	// DeleteSkill removes a skill owned by userID.
	DeleteSkill(ctx context.Context, userID, id string) error

	// DeleteAllSkills removes every skill for the user (progress reset).
	DeleteAllSkills(ctx context.Context, userID string) error
}

// GoalFilter narrows and orders goal listings.
type GoalFilter struct {
	Status   string
	Priority string
	Search   string
	Sort     string // title | priority | progress | targetDate | createdAt
	Order    string // asc | desc
}

type Goals interface {
	// CreateGoal inserts a new learning goal.
	CreateGoal(ctx context.Context, g domain.Goal) error

	// GetGoal returns a goal owned by userID. Other users' goals are
	// ErrNotFound.
	GetGoal(ctx context.Context, userID, id string) (domain.Goal, error)

	// ListGoals returns the user's goals matching the filter.
	ListGoals(ctx context.Context, userID string, f GoalFilter) ([]domain.Goal, error)

	// UpdateGoal replaces all mutable fields and bumps updated_at.
	UpdateGoal(ctx context.Context, g domain.Goal) error

	// DeleteGoal removes a goal owned by userID.
	DeleteGoal(ctx context.Context, userID, id string) error

	// DeleteAllGoals removes every goal for the user (progress reset).
	DeleteAllGoals(ctx context.Context, userID string) error
}
