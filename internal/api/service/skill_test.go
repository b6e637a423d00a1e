package service

import (
	"context"
	"testing"

	"github.com/skillforge/backend/internal/api/domain"
	"github.com/skillforge/backend/internal/api/store"
	"github.com/stretchr/testify/require"
)

func TestSkillService(t *testing.T) {
	s := newTestStore(t)
	auth := newAuthService(s)
	skills := &SkillService{Store: s}
	ctx := context.Background()

	user, _, err := auth.Register(ctx, "Hank", "hank@example.com", "password1")
	require.NoError(t, err)
	other, _, err := auth.Register(ctx, "Ivy", "ivy@example.com", "password1")
	require.NoError(t, err)

	t.Run("duplicate name per user", func(t *testing.T) {
		_, err := skills.CreateSkill(ctx, user.ID, SkillParams{Name: "Go", Category: domain.CategoryBackend, Proficiency: 3})
		require.NoError(t, err)

		_, err = skills.CreateSkill(ctx, user.ID, SkillParams{Name: "Go", Category: domain.CategoryBackend, Proficiency: 5})
		require.ErrorIs(t, err, ErrSkillExists)

		// Same name is fine for a different user.
		_, err = skills.CreateSkill(ctx, other.ID, SkillParams{Name: "Go", Category: domain.CategoryBackend, Proficiency: 2})
		require.NoError(t, err)
	})

	t.Run("update respects ownership", func(t *testing.T) {
		sk, err := skills.CreateSkill(ctx, user.ID, SkillParams{Name: "Terraform", Category: domain.CategoryDevops, Proficiency: 2})
		require.NoError(t, err)

		five := 5
		_, err = skills.UpdateSkill(ctx, other.ID, sk.ID, UpdateSkillParams{Proficiency: &five})
		require.ErrorIs(t, err, ErrSkillNotFound)

		four := 4
		updated, err := skills.UpdateSkill(ctx, user.ID, sk.ID, UpdateSkillParams{Proficiency: &four})
		require.NoError(t, err)
		require.Equal(t, 4, updated.Proficiency)
		require.Equal(t, "Terraform", updated.Name)
	})

	t.Run("rename onto an existing skill rejected", func(t *testing.T) {
		sk, err := skills.CreateSkill(ctx, user.ID, SkillParams{Name: "Ansible", Category: domain.CategoryDevops, Proficiency: 2})
		require.NoError(t, err)

		name := "Go"
		_, err = skills.UpdateSkill(ctx, user.ID, sk.ID, UpdateSkillParams{Name: &name})
		require.ErrorIs(t, err, ErrSkillExists)
	})

	t.Run("notes and experience can be cleared", func(t *testing.T) {
		sk, err := skills.CreateSkill(ctx, user.ID, SkillParams{
			Name: "Postgres", Category: domain.CategoryDatabase, Proficiency: 3,
			Experience: 2.5, Notes: "pretty rusty",
		})
		require.NoError(t, err)

		empty := ""
		zero := 0.0
		updated, err := skills.UpdateSkill(ctx, user.ID, sk.ID, UpdateSkillParams{
			Notes: &empty, Experience: &zero,
		})
		require.NoError(t, err)
		require.Empty(t, updated.Notes)
		require.Zero(t, updated.Experience)
		require.Equal(t, "Postgres", updated.Name)
	})

	t.Run("unknown category rejected", func(t *testing.T) {
		_, err := skills.CreateSkill(ctx, user.ID, SkillParams{Name: "Excel", Category: "office", Proficiency: 2})
		require.ErrorIs(t, err, ErrInvalidCategory)

		sk, err := skills.CreateSkill(ctx, user.ID, SkillParams{Name: "Vim", Category: domain.CategoryOther, Proficiency: 4})
		require.NoError(t, err)

		bad := "office"
		_, err = skills.UpdateSkill(ctx, user.ID, sk.ID, UpdateSkillParams{Category: &bad})
		require.ErrorIs(t, err, ErrInvalidCategory)
	})

	t.Run("list with filter", func(t *testing.T) {
		listed, err := skills.ListSkills(ctx, user.ID, store.SkillFilter{Category: domain.CategoryDevops})
		require.NoError(t, err)
		require.Len(t, listed, 2)
	})

	t.Run("delete is scoped and not repeatable", func(t *testing.T) {
		sk, err := skills.CreateSkill(ctx, user.ID, SkillParams{Name: "Kafka", Category: domain.CategoryBackend, Proficiency: 1})
		require.NoError(t, err)

		require.ErrorIs(t, skills.DeleteSkill(ctx, other.ID, sk.ID), ErrSkillNotFound)
		require.NoError(t, skills.DeleteSkill(ctx, user.ID, sk.ID))
		require.ErrorIs(t, skills.DeleteSkill(ctx, user.ID, sk.ID), ErrSkillNotFound)
	})
}
