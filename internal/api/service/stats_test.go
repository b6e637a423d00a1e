package service

import (
	"context"
	"testing"
	"time"

	"github.com/skillforge/backend/internal/api/domain"
	"github.com/stretchr/testify/require"
)

func TestSkillStats(t *testing.T) {
	s := newTestStore(t)
	auth := newAuthService(s)
	skills := &SkillService{Store: s}
	stats := &StatsService{Store: s}
	ctx := context.Background()

	user, _, err := auth.Register(ctx, "Stats", "stats@example.com", "password1")
	require.NoError(t, err)

	t.Run("empty account", func(t *testing.T) {
		got, err := stats.SkillStats(ctx, user.ID)
		require.NoError(t, err)
		require.Equal(t, 0, got.Overview.TotalSkills)
		require.Empty(t, got.CategoryStats)
	})

	seed := []SkillParams{
		{Name: "Go", Category: domain.CategoryBackend, Proficiency: 5},
		{Name: "Postgres", Category: domain.CategoryDatabase, Proficiency: 3},
		{Name: "React", Category: domain.CategoryFrontend, Proficiency: 2},
		{Name: "Redis", Category: domain.CategoryDatabase, Proficiency: 4},
	}
	for _, p := range seed {
		_, err := skills.CreateSkill(ctx, user.ID, p)
		require.NoError(t, err)
	}

	got, err := stats.SkillStats(ctx, user.ID)
	require.NoError(t, err)

	t.Run("overview", func(t *testing.T) {
		require.Equal(t, 4, got.Overview.TotalSkills)
		require.Equal(t, 3.5, got.Overview.AverageProficiency)
	})

	t.Run("category stats sorted by count", func(t *testing.T) {
		require.Equal(t, domain.CategoryDatabase, got.CategoryStats[0].Category)
		require.Equal(t, 2, got.CategoryStats[0].Count)
		require.Equal(t, 3.5, got.CategoryStats[0].AvgProficiency)
		require.Equal(t, 4, got.CategoryStats[0].MaxProficiency)
		require.Equal(t, 3, got.CategoryStats[0].MinProficiency)
	})

	t.Run("proficiency distribution buckets", func(t *testing.T) {
		byLevel := map[string]int{}
		for _, b := range got.ProficiencyDistribution {
			byLevel[b.Level] = b.Count
		}
		require.Equal(t, 1, byLevel["Beginner"])     // React (2)
		require.Equal(t, 1, byLevel["Intermediate"]) // Postgres (3)
		require.Equal(t, 1, byLevel["Advanced"])     // Redis (4)
		require.Equal(t, 1, byLevel["Expert"])       // Go (5)
	})
}

func TestGoalStats(t *testing.T) {
	s := newTestStore(t)
	auth := newAuthService(s)
	goals := &GoalService{Store: s}
	stats := &StatsService{Store: s}
	ctx := context.Background()

	user, _, err := auth.Register(ctx, "Goals", "goals@example.com", "password1")
	require.NoError(t, err)

	soon := time.Now().Add(48 * time.Hour)
	done, err := goals.CreateGoal(ctx, user.ID, GoalParams{Title: "Done", TargetSkill: "Go", Progress: 100, Priority: domain.PriorityHigh})
	require.NoError(t, err)
	_ = done
	_, err = goals.CreateGoal(ctx, user.ID, GoalParams{Title: "Due soon", TargetSkill: "Go", Progress: 50, TargetDate: &soon})
	require.NoError(t, err)
	overdue, err := goals.CreateGoal(ctx, user.ID, GoalParams{Title: "Will be overdue", TargetSkill: "Go", Progress: 10})
	require.NoError(t, err)

	// Push the target date into the past by updating the stored row directly;
	// creation refuses past dates.
	past := time.Now().Add(-24 * time.Hour)
	stored, err := s.Goals().GetGoal(ctx, user.ID, overdue.ID)
	require.NoError(t, err)
	stored.TargetDate = &past
	require.NoError(t, s.Goals().UpdateGoal(ctx, stored))

	got, err := stats.GoalStats(ctx, user.ID)
	require.NoError(t, err)

	t.Run("overview", func(t *testing.T) {
		require.Equal(t, 3, got.Overview.Total)
		require.Equal(t, 1, got.Overview.Completed)
		require.Equal(t, 2, got.Overview.InProgress)
		require.Equal(t, 53.3, got.Overview.AverageProgress)
	})

	t.Run("by priority", func(t *testing.T) {
		require.Equal(t, PriorityStat{Total: 1, Completed: 1}, got.ByPriority[domain.PriorityHigh])
		require.Equal(t, PriorityStat{Total: 2, Completed: 0}, got.ByPriority[domain.PriorityMedium])
	})

	t.Run("deadline windows", func(t *testing.T) {
		require.Len(t, got.UpcomingDeadlines, 1)
		require.Equal(t, "Due soon", got.UpcomingDeadlines[0].Title)
		require.Len(t, got.Overdue, 1)
		require.Equal(t, "Will be overdue", got.Overdue[0].Title)
	})
}

func TestInsights(t *testing.T) {
	s := newTestStore(t)
	auth := newAuthService(s)
	skills := &SkillService{Store: s}
	goals := &GoalService{Store: s}
	stats := &StatsService{Store: s}
	ctx := context.Background()

	user, _, err := auth.Register(ctx, "Insights", "insights@example.com", "password1")
	require.NoError(t, err)

	t.Run("empty account yields zero values", func(t *testing.T) {
		got, err := stats.Insights(ctx, user.ID)
		require.NoError(t, err)
		require.Zero(t, got.Summary.TotalSkills)
		require.Empty(t, got.Recommendations.FocusAreas)
		require.Empty(t, got.Recommendations.UpcomingDeadlines)
	})

	for _, p := range []SkillParams{
		{Name: "Go", Category: domain.CategoryBackend, Proficiency: 5},
		{Name: "Docker", Category: domain.CategoryDevops, Proficiency: 2},
		{Name: "Kubernetes", Category: domain.CategoryDevops, Proficiency: 1},
		{Name: "SQL", Category: domain.CategoryDatabase, Proficiency: 3},
	} {
		_, err := skills.CreateSkill(ctx, user.ID, p)
		require.NoError(t, err)
	}

	soon := time.Now().Add(72 * time.Hour)
	_, err = goals.CreateGoal(ctx, user.ID, GoalParams{Title: "Ship it", TargetSkill: "Go", Progress: 100})
	require.NoError(t, err)
	_, err = goals.CreateGoal(ctx, user.ID, GoalParams{Title: "Learn k8s", TargetSkill: "Kubernetes", Progress: 20, TargetDate: &soon})
	require.NoError(t, err)

	got, err := stats.Insights(ctx, user.ID)
	require.NoError(t, err)

	require.Equal(t, 4, got.Summary.TotalSkills)
	require.Equal(t, 2.8, got.Summary.AverageProficiency)
	require.Equal(t, domain.CategoryDevops, got.Summary.TopSkillCategory)
	require.Equal(t, 1, got.Summary.GoalsCompleted)
	require.Equal(t, 1, got.Summary.GoalsInProgress)
	require.Equal(t, 3, got.Summary.SkillsNeedingImprovement)
	require.Equal(t, 1, got.Summary.ExpertSkills)
	require.Equal(t, 0, got.Summary.OverdueTasks)

	// Weakest three skills, weakest first.
	require.Equal(t, []string{"Kubernetes", "Docker", "SQL"}, got.Recommendations.FocusAreas)

	require.Len(t, got.Recommendations.UpcomingDeadlines, 1)
	require.Equal(t, "Learn k8s", got.Recommendations.UpcomingDeadlines[0].Title)
}
