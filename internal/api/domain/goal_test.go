package domain_test

import (
	"testing"
	"time"

	"github.com/skillforge/backend/internal/api/domain"
	"github.com/stretchr/testify/require"
)

func TestReconcileProgress(t *testing.T) {
	cases := []struct {
		name         string
		status       string
		progress     int
		wantStatus   string
		wantProgress int
	}{
		{"zero progress resets to not-started", domain.StatusInProgress, 0, domain.StatusNotStarted, 0},
		{"full progress completes", domain.StatusInProgress, 100, domain.StatusCompleted, 100},
		{"full progress completes from not-started", domain.StatusNotStarted, 100, domain.StatusCompleted, 100},
		{"intermediate progress reopens completed goal", domain.StatusCompleted, 50, domain.StatusInProgress, 50},
		{"completed stays at 100", domain.StatusCompleted, 100, domain.StatusCompleted, 100},
		{"completed with zero progress resets", domain.StatusCompleted, 0, domain.StatusNotStarted, 0},
		{"intermediate progress starts goal", domain.StatusNotStarted, 30, domain.StatusInProgress, 30},
		{"intermediate progress keeps in-progress", domain.StatusInProgress, 55, domain.StatusInProgress, 55},
		{"paused preserved at intermediate progress", domain.StatusPaused, 60, domain.StatusPaused, 60},
		{"paused with zero progress resets", domain.StatusPaused, 0, domain.StatusNotStarted, 0},
		{"paused with full progress completes", domain.StatusPaused, 100, domain.StatusCompleted, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, progress := domain.ReconcileProgress(tc.status, tc.progress)
			require.Equal(t, tc.wantStatus, status)
			require.Equal(t, tc.wantProgress, progress)
		})
	}
}

func TestGoalOverdue(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 0, 7)

	t.Run("past target date and not completed", func(t *testing.T) {
		g := domain.Goal{TargetDate: &past, Status: domain.StatusInProgress}
		require.True(t, g.Overdue(now))
	})

	t.Run("completed goals are never overdue", func(t *testing.T) {
		g := domain.Goal{TargetDate: &past, Status: domain.StatusCompleted}
		require.False(t, g.Overdue(now))
	})

	t.Run("future target date", func(t *testing.T) {
		g := domain.Goal{TargetDate: &future, Status: domain.StatusInProgress}
		require.False(t, g.Overdue(now))
	})

	t.Run("no target date", func(t *testing.T) {
		g := domain.Goal{Status: domain.StatusInProgress}
		require.False(t, g.Overdue(now))
	})
}

func TestProficiencyLabel(t *testing.T) {
	require.Equal(t, "Beginner", domain.ProficiencyLabel(1))
	require.Equal(t, "Beginner", domain.ProficiencyLabel(2))
	require.Equal(t, "Intermediate", domain.ProficiencyLabel(3))
	require.Equal(t, "Advanced", domain.ProficiencyLabel(4))
	require.Equal(t, "Expert", domain.ProficiencyLabel(5))
}
