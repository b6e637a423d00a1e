package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/skillforge/backend/internal/api/domain"
	"github.com/skillforge/backend/internal/api/store"
	"github.com/skillforge/backend/pkg/cryptox"
	"github.com/skillforge/backend/pkg/idx"
	"github.com/skillforge/backend/pkg/jwtx"
	"github.com/skillforge/backend/pkg/slogx"
)

var (
	ErrEmailTaken              = errors.New("user already exists with this email")
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrIncorrectPassword       = errors.New("incorrect password")
	ErrCurrentPasswordRequired = errors.New("current password is required to change password")
	ErrUserNotFound            = errors.New("user not found")
)

type AuthService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Issuer   string
	TokenTTL time.Duration
}

// Register creates a new account and returns the user with a signed session
// token.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (domain.User, string, error) {
	log := slogx.FromContext(ctx)

	// Emails are stored lowercased; normalise here so the returned user
	// matches what later fetches will see.
	email = strings.ToLower(email)

	// 1. Hash the password before anything touches the store.
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, "", err
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// 2. Insert; the unique index on email is the source of truth for
	// duplicates.
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("registration with existing email", slog.String("email", email))
			return domain.User{}, "", ErrEmailTaken
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, "", err
	}

	// 3. Issue a session token.
	token, err := s.issueToken(user.ID)
	if err != nil {
		log.Error("failed to sign session token", slog.Any("error", err))
		return domain.User{}, "", err
	}

	log.Info("user registered", slog.String("user_id", user.ID))
	return user, token, nil
}

// Login verifies credentials and returns the user with a fresh session token.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Debug("login with unknown email")
			return domain.User{}, "", ErrInvalidCredentials
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return domain.User{}, "", err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		log.Debug("login with wrong password", slog.String("user_id", user.ID))
		return domain.User{}, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		log.Error("failed to sign session token", slog.Any("error", err))
		return domain.User{}, "", err
	}

	log.Info("user logged in", slog.String("user_id", user.ID))
	return user, token, nil
}

// Profile fetches the account for the authenticated user.
func (s *AuthService) Profile(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

// UserExists reports whether an account still exists. Used by the auth
// middleware so deleted accounts are rejected even with a valid token.
func (s *AuthService) UserExists(ctx context.Context, userID string) (bool, error) {
	_, err := s.Store.Users().GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// UpdateProfileParams carries the optional profile mutations. Empty fields
// are left unchanged.
type UpdateProfileParams struct {
	Name            string
	Email           string
	CurrentPassword string
	NewPassword     string
}

// UpdateProfile applies name/email changes and, when requested, rotates the
// password after re-verifying the current one.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, p UpdateProfileParams) (domain.User, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Profile(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}

	// 1. Password change requires proof of the current password.
	if p.NewPassword != "" {
		if p.CurrentPassword == "" {
			return domain.User{}, ErrCurrentPasswordRequired
		}
		if err := cryptox.VerifyPassword(p.CurrentPassword, user.PasswordHash); err != nil {
			log.Warn("profile update with wrong current password", slog.String("user_id", userID))
			return domain.User{}, ErrIncorrectPassword
		}

		hash, err := cryptox.HashPassword(p.NewPassword)
		if err != nil {
			log.Error("failed to hash password", slog.Any("error", err))
			return domain.User{}, err
		}
		if err := s.Store.Users().UpdatePasswordHash(ctx, userID, hash); err != nil {
			log.Error("failed to update password", slog.Any("error", err))
			return domain.User{}, err
		}
	}

	// 2. Apply name/email changes, keeping untouched fields as-is.
	name := user.Name
	if p.Name != "" {
		name = p.Name
	}
	email := user.Email
	if p.Email != "" {
		email = strings.ToLower(p.Email)
	}
	if name != user.Name || email != user.Email {
		if err := s.Store.Users().UpdateProfile(ctx, userID, name, email); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return domain.User{}, ErrEmailTaken
			}
			log.Error("failed to update profile", slog.Any("error", err))
			return domain.User{}, err
		}
	}

	log.Info("profile updated", slog.String("user_id", userID))
	return s.Profile(ctx, userID)
}

// ExportData is the full account snapshot returned by the export endpoint.
type ExportData struct {
	User       domain.User
	Skills     []domain.Skill
	Goals      []domain.Goal
	ExportedAt time.Time
}

// Export gathers everything the user owns into a single snapshot.
func (s *AuthService) Export(ctx context.Context, userID string) (ExportData, error) {
	user, err := s.Profile(ctx, userID)
	if err != nil {
		return ExportData{}, err
	}

	skills, err := s.Store.Skills().ListSkills(ctx, userID, store.SkillFilter{})
	if err != nil {
		return ExportData{}, err
	}

	goals, err := s.Store.Goals().ListGoals(ctx, userID, store.GoalFilter{})
	if err != nil {
		return ExportData{}, err
	}

	return ExportData{
		User:       user,
		Skills:     skills,
		Goals:      goals,
		ExportedAt: time.Now().UTC(),
	}, nil
}

// ResetProgress wipes all skills and goals for the user in one transaction.
// The account itself is kept.
func (s *AuthService) ResetProgress(ctx context.Context, userID string) error {
	log := slogx.FromContext(ctx)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Skills().DeleteAllSkills(ctx, userID); err != nil {
			return err
		}
		return tx.Goals().DeleteAllGoals(ctx, userID)
	})
	if err != nil {
		log.Error("failed to reset progress", slog.Any("error", err))
		return err
	}

	log.Info("progress reset", slog.String("user_id", userID))
	return nil
}

// DeleteAccount removes the account and everything it owns after
// re-verifying the password.
func (s *AuthService) DeleteAccount(ctx context.Context, userID, password string) error {
	log := slogx.FromContext(ctx)

	user, err := s.Profile(ctx, userID)
	if err != nil {
		return err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		log.Warn("account deletion with wrong password", slog.String("user_id", userID))
		return ErrIncorrectPassword
	}

	// Skills and goals cascade via the schema; the explicit deletes keep the
	// whole teardown in one transaction regardless.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Skills().DeleteAllSkills(ctx, userID); err != nil {
			return err
		}
		if err := tx.Goals().DeleteAllGoals(ctx, userID); err != nil {
			return err
		}
		return tx.Users().DeleteUser(ctx, userID)
	})
	if err != nil {
		log.Error("failed to delete account", slog.Any("error", err))
		return err
	}

	log.Info("account deleted", slog.String("user_id", userID))
	return nil
}

func (s *AuthService) issueToken(userID string) (string, error) {
	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}
	claims := jwtx.NewSessionClaims(userID, s.Issuer, ttl, time.Now())
	return s.Signer.Sign(claims)
}
