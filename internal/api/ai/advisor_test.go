package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/skillforge/backend/internal/api/domain"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	text string
	err  error
}

func (s stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return s.text, s.err
}

func TestAdvisorUsesModelText(t *testing.T) {
	advisor := &Advisor{Generator: stubGenerator{text: "model says hi"}}

	res := advisor.SkillSuggestions(context.Background(), []string{"Go"})
	require.Equal(t, SourceGenerated, res.Source)
	require.Equal(t, "model says hi", res.Text)
}

func TestAdvisorFallsBack(t *testing.T) {
	advisor := &Advisor{Generator: stubGenerator{err: errors.New("boom")}}
	ctx := context.Background()

	skills := []domain.Skill{{Name: "Go", Category: domain.CategoryBackend, Proficiency: 3}}
	goal := domain.Goal{Title: "Learn Go", TargetSkill: "Go", Priority: domain.PriorityHigh, Status: domain.StatusInProgress}

	t.Run("learning path", func(t *testing.T) {
		res := advisor.LearningPath(ctx, skills, []domain.Goal{goal})
		require.Equal(t, SourceFallback, res.Source)
		require.Contains(t, res.Text, "Personalized Learning Path (Generated Offline)")
		require.Contains(t, res.Text, "Go (backend) - Proficiency: 3/5")
		require.Contains(t, res.Text, "Learn Go - in-progress")
	})

	t.Run("skill suggestions", func(t *testing.T) {
		res := advisor.SkillSuggestions(ctx, []string{"Go", "SQL"})
		require.Equal(t, SourceFallback, res.Source)
		require.Contains(t, res.Text, "Based on your current skills: Go, SQL")
	})

	t.Run("skill gaps", func(t *testing.T) {
		res := advisor.SkillGapAnalysis(ctx, skills, "Platform Engineer")
		require.Equal(t, SourceFallback, res.Source)
		require.Contains(t, res.Text, "Skill Gap Analysis for Platform Engineer")
	})

	t.Run("study plan", func(t *testing.T) {
		res := advisor.StudyPlan(ctx, goal, skills)
		require.Equal(t, SourceFallback, res.Source)
		require.Contains(t, res.Text, "Study Plan for: Learn Go")
		require.Contains(t, res.Text, "**Target Date**: Not set")
	})

	t.Run("empty model output falls back", func(t *testing.T) {
		quiet := &Advisor{Generator: stubGenerator{text: ""}}
		res := quiet.SkillSuggestions(ctx, nil)
		require.Equal(t, SourceFallback, res.Source)
		require.NotEmpty(t, res.Text)
	})
}

func TestAdvisorTimeout(t *testing.T) {
	slow := &Advisor{
		Generator: generatorFunc(func(ctx context.Context, prompt string) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		}),
		Timeout: 10 * time.Millisecond,
	}

	res := slow.SkillSuggestions(context.Background(), []string{"Go"})
	require.Equal(t, SourceFallback, res.Source)
	require.NotEmpty(t, res.Text)
}

type generatorFunc func(ctx context.Context, prompt string) (string, error)

func (f generatorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

func TestGeminiClientNoKey(t *testing.T) {
	client := NewGeminiClient("", "")
	_, err := client.Generate(context.Background(), "hello")
	require.ErrorIs(t, err, ErrNoAPIKey)
}
