package service

import (
	"context"
	"testing"
	"time"

	"github.com/skillforge/backend/internal/api/store"
	"github.com/skillforge/backend/internal/api/store/drivers/sqlite"
	"github.com/skillforge/backend/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func newAuthService(s store.Store) *AuthService {
	return &AuthService{
		Store:    s,
		Signer:   jwtx.NewHS256([]byte("test-secret"), "skillforge"),
		Issuer:   "skillforge",
		TokenTTL: time.Hour,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	s := newTestStore(t)
	auth := newAuthService(s)
	ctx := context.Background()

	t.Run("register issues a usable token", func(t *testing.T) {
		user, token, err := auth.Register(ctx, "Alice", "alice@example.com", "sekrit1")
		require.NoError(t, err)
		require.NotEmpty(t, user.ID)
		require.NotEmpty(t, token)

		verifier := jwtx.NewHS256([]byte("test-secret"), "skillforge")
		claims, err := verifier.Verify(token)
		require.NoError(t, err)
		require.Equal(t, user.ID, claims.Subject)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		_, _, err := auth.Register(ctx, "Other Alice", "ALICE@example.com", "different1")
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("email is lowercased on register", func(t *testing.T) {
		user, _, err := auth.Register(ctx, "Carol", "Carol@Example.COM", "sekrit1")
		require.NoError(t, err)
		require.Equal(t, "carol@example.com", user.Email)

		fetched, err := auth.Profile(ctx, user.ID)
		require.NoError(t, err)
		require.Equal(t, user.Email, fetched.Email)
	})

	t.Run("login round-trip", func(t *testing.T) {
		user, token, err := auth.Login(ctx, "alice@example.com", "sekrit1")
		require.NoError(t, err)
		require.Equal(t, "Alice", user.Name)
		require.NotEmpty(t, token)
	})

	t.Run("wrong password and unknown email look identical", func(t *testing.T) {
		_, _, err1 := auth.Login(ctx, "alice@example.com", "wrong")
		require.ErrorIs(t, err1, ErrInvalidCredentials)

		_, _, err2 := auth.Login(ctx, "nobody@example.com", "sekrit1")
		require.ErrorIs(t, err2, ErrInvalidCredentials)
	})
}

func TestUpdateProfile(t *testing.T) {
	s := newTestStore(t)
	auth := newAuthService(s)
	ctx := context.Background()

	user, _, err := auth.Register(ctx, "Bob", "bob@example.com", "password1")
	require.NoError(t, err)

	t.Run("rename keeps email", func(t *testing.T) {
		updated, err := auth.UpdateProfile(ctx, user.ID, UpdateProfileParams{Name: "Robert"})
		require.NoError(t, err)
		require.Equal(t, "Robert", updated.Name)
		require.Equal(t, "bob@example.com", updated.Email)
	})

	t.Run("email change to taken address rejected", func(t *testing.T) {
		_, _, err := auth.Register(ctx, "Carol", "carol@example.com", "password1")
		require.NoError(t, err)

		_, err = auth.UpdateProfile(ctx, user.ID, UpdateProfileParams{Email: "carol@example.com"})
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("new password requires current password", func(t *testing.T) {
		_, err := auth.UpdateProfile(ctx, user.ID, UpdateProfileParams{NewPassword: "newpass1"})
		require.ErrorIs(t, err, ErrCurrentPasswordRequired)
	})

	t.Run("wrong current password rejected", func(t *testing.T) {
		_, err := auth.UpdateProfile(ctx, user.ID, UpdateProfileParams{
			CurrentPassword: "nope",
			NewPassword:     "newpass1",
		})
		require.ErrorIs(t, err, ErrIncorrectPassword)
	})

	t.Run("password rotation", func(t *testing.T) {
		_, err := auth.UpdateProfile(ctx, user.ID, UpdateProfileParams{
			CurrentPassword: "password1",
			NewPassword:     "newpass1",
		})
		require.NoError(t, err)

		_, _, err = auth.Login(ctx, "bob@example.com", "newpass1")
		require.NoError(t, err)

		_, _, err = auth.Login(ctx, "bob@example.com", "password1")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestResetAndDeleteAccount(t *testing.T) {
	s := newTestStore(t)
	auth := newAuthService(s)
	skills := &SkillService{Store: s}
	goals := &GoalService{Store: s}
	ctx := context.Background()

	user, _, err := auth.Register(ctx, "Dana", "dana@example.com", "password1")
	require.NoError(t, err)

	seed := func(t *testing.T) {
		t.Helper()
		_, err := skills.CreateSkill(ctx, user.ID, SkillParams{Name: "Go", Category: "backend", Proficiency: 3})
		if err != nil {
			require.ErrorIs(t, err, ErrSkillExists)
		}
		_, err = goals.CreateGoal(ctx, user.ID, GoalParams{Title: "Learn Go", TargetSkill: "Go"})
		require.NoError(t, err)
	}

	t.Run("reset wipes skills and goals but keeps the account", func(t *testing.T) {
		seed(t)
		require.NoError(t, auth.ResetProgress(ctx, user.ID))

		export, err := auth.Export(ctx, user.ID)
		require.NoError(t, err)
		require.Empty(t, export.Skills)
		require.Empty(t, export.Goals)
		require.Equal(t, user.ID, export.User.ID)
	})

	t.Run("delete requires the password", func(t *testing.T) {
		err := auth.DeleteAccount(ctx, user.ID, "wrong")
		require.ErrorIs(t, err, ErrIncorrectPassword)
	})

	t.Run("delete removes the account", func(t *testing.T) {
		seed(t)
		require.NoError(t, auth.DeleteAccount(ctx, user.ID, "password1"))

		exists, err := auth.UserExists(ctx, user.ID)
		require.NoError(t, err)
		require.False(t, exists)
	})
}

func TestExport(t *testing.T) {
	s := newTestStore(t)
	auth := newAuthService(s)
	skills := &SkillService{Store: s}
	ctx := context.Background()

	user, _, err := auth.Register(ctx, "Eve", "eve@example.com", "password1")
	require.NoError(t, err)

	_, err = skills.CreateSkill(ctx, user.ID, SkillParams{Name: "SQL", Category: "database", Proficiency: 4})
	require.NoError(t, err)

	export, err := auth.Export(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, export.Skills, 1)
	require.Equal(t, "SQL", export.Skills[0].Name)
	require.WithinDuration(t, time.Now(), export.ExportedAt, time.Minute)
}
