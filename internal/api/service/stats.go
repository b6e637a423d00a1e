package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/skillforge/backend/internal/api/domain"
	"github.com/skillforge/backend/internal/api/store"
)

type StatsService struct {
	Store store.Store
}

type SkillOverview struct {
	TotalSkills        int     `json:"totalSkills"`
	AverageProficiency float64 `json:"averageProficiency"`
}

type CategoryStat struct {
	Category       string  `json:"category"`
	Count          int     `json:"count"`
	AvgProficiency float64 `json:"avgProficiency"`
	MaxProficiency int     `json:"maxProficiency"`
	MinProficiency int     `json:"minProficiency"`
}

type ProficiencyBucket struct {
	Level string `json:"level"`
	Count int    `json:"count"`
}

type SkillStats struct {
	Overview                SkillOverview       `json:"overview"`
	CategoryStats           []CategoryStat      `json:"categoryStats"`
	ProficiencyDistribution []ProficiencyBucket `json:"proficiencyDistribution"`
}

// SkillStats aggregates the user's skills into dashboard numbers.
func (s *StatsService) SkillStats(ctx context.Context, userID string) (SkillStats, error) {
	skills, err := s.Store.Skills().ListSkills(ctx, userID, store.SkillFilter{})
	if err != nil {
		return SkillStats{}, err
	}

	stats := SkillStats{
		CategoryStats:           []CategoryStat{},
		ProficiencyDistribution: []ProficiencyBucket{},
	}
	stats.Overview.TotalSkills = len(skills)
	if len(skills) == 0 {
		return stats, nil
	}

	var total int
	byCategory := make(map[string][]int)
	byLevel := make(map[string]int)
	for _, sk := range skills {
		total += sk.Proficiency
		byCategory[sk.Category] = append(byCategory[sk.Category], sk.Proficiency)
		byLevel[domain.ProficiencyLabel(sk.Proficiency)]++
	}
	stats.Overview.AverageProficiency = round1(float64(total) / float64(len(skills)))

	for category, profs := range byCategory {
		stat := CategoryStat{
			Category:       category,
			Count:          len(profs),
			MaxProficiency: profs[0],
			MinProficiency: profs[0],
		}
		var sum int
		for _, p := range profs {
			sum += p
			stat.MaxProficiency = max(stat.MaxProficiency, p)
			stat.MinProficiency = min(stat.MinProficiency, p)
		}
		stat.AvgProficiency = round1(float64(sum) / float64(len(profs)))
		stats.CategoryStats = append(stats.CategoryStats, stat)
	}
	sort.Slice(stats.CategoryStats, func(i, j int) bool {
		if stats.CategoryStats[i].Count != stats.CategoryStats[j].Count {
			return stats.CategoryStats[i].Count > stats.CategoryStats[j].Count
		}
		return stats.CategoryStats[i].Category < stats.CategoryStats[j].Category
	})

	for _, level := range []string{"Beginner", "Intermediate", "Advanced", "Expert"} {
		if count := byLevel[level]; count > 0 {
			stats.ProficiencyDistribution = append(stats.ProficiencyDistribution,
				ProficiencyBucket{Level: level, Count: count})
		}
	}

	return stats, nil
}

type GoalOverview struct {
	Total           int     `json:"total"`
	Completed       int     `json:"completed"`
	InProgress      int     `json:"inProgress"`
	NotStarted      int     `json:"notStarted"`
	Paused          int     `json:"paused"`
	AverageProgress float64 `json:"averageProgress"`
}

type PriorityStat struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

type GoalStats struct {
	Overview          GoalOverview            `json:"overview"`
	ByPriority        map[string]PriorityStat `json:"byPriority"`
	UpcomingDeadlines []domain.Goal           `json:"-"`
	Overdue           []domain.Goal           `json:"-"`
}

// GoalStats aggregates the user's goals. Upcoming deadlines cover incomplete
// goals due within the next seven days; overdue covers incomplete goals past
// their target date.
func (s *StatsService) GoalStats(ctx context.Context, userID string) (GoalStats, error) {
	goals, err := s.Store.Goals().ListGoals(ctx, userID, store.GoalFilter{})
	if err != nil {
		return GoalStats{}, err
	}

	stats := GoalStats{
		ByPriority:        map[string]PriorityStat{},
		UpcomingDeadlines: []domain.Goal{},
		Overdue:           []domain.Goal{},
	}
	now := time.Now()
	weekOut := now.AddDate(0, 0, 7)

	var progressSum int
	for _, g := range goals {
		stats.Overview.Total++
		progressSum += g.Progress

		switch g.Status {
		case domain.StatusCompleted:
			stats.Overview.Completed++
		case domain.StatusInProgress:
			stats.Overview.InProgress++
		case domain.StatusPaused:
			stats.Overview.Paused++
		default:
			stats.Overview.NotStarted++
		}

		p := stats.ByPriority[g.Priority]
		p.Total++
		if g.Status == domain.StatusCompleted {
			p.Completed++
		}
		stats.ByPriority[g.Priority] = p

		if g.Status != domain.StatusCompleted && g.TargetDate != nil {
			switch {
			case g.TargetDate.Before(now):
				stats.Overdue = append(stats.Overdue, g)
			case g.TargetDate.Before(weekOut):
				stats.UpcomingDeadlines = append(stats.UpcomingDeadlines, g)
			}
		}
	}
	if stats.Overview.Total > 0 {
		stats.Overview.AverageProgress = round1(float64(progressSum) / float64(stats.Overview.Total))
	}

	sort.Slice(stats.UpcomingDeadlines, func(i, j int) bool {
		return stats.UpcomingDeadlines[i].TargetDate.Before(*stats.UpcomingDeadlines[j].TargetDate)
	})
	sort.Slice(stats.Overdue, func(i, j int) bool {
		return stats.Overdue[i].TargetDate.Before(*stats.Overdue[j].TargetDate)
	})

	return stats, nil
}

type Deadline struct {
	Title      string    `json:"title"`
	TargetDate time.Time `json:"targetDate"`
}

type InsightSummary struct {
	TotalSkills              int     `json:"totalSkills"`
	AverageProficiency       float64 `json:"averageProficiency"`
	TopSkillCategory         string  `json:"topSkillCategory"`
	GoalsCompleted           int     `json:"goalsCompleted"`
	GoalsInProgress          int     `json:"goalsInProgress"`
	SkillsNeedingImprovement int     `json:"skillsNeedingImprovement"`
	ExpertSkills             int     `json:"expertSkills"`
	OverdueTasks             int     `json:"overdueTasks"`
}

type Recommendations struct {
	FocusAreas        []string   `json:"focusAreas"`
	UpcomingDeadlines []Deadline `json:"upcomingDeadlines"`
}

type Insights struct {
	Summary         InsightSummary  `json:"insights"`
	Recommendations Recommendations `json:"recommendations"`
}

// Insights derives the AI dashboard numbers: no model call, just arithmetic
// over the user's skills and goals.
func (s *StatsService) Insights(ctx context.Context, userID string) (Insights, error) {
	skills, err := s.Store.Skills().ListSkills(ctx, userID, store.SkillFilter{})
	if err != nil {
		return Insights{}, err
	}
	goals, err := s.Store.Goals().ListGoals(ctx, userID, store.GoalFilter{})
	if err != nil {
		return Insights{}, err
	}

	insights := Insights{
		Summary: InsightSummary{TotalSkills: len(skills)},
		Recommendations: Recommendations{
			FocusAreas:        []string{},
			UpcomingDeadlines: []Deadline{},
		},
	}
	summary := &insights.Summary

	var profSum int
	categoryCounts := make(map[string]int)
	weakest := make([]domain.Skill, 0, len(skills))
	for _, sk := range skills {
		profSum += sk.Proficiency
		categoryCounts[sk.Category]++
		if sk.Proficiency < 4 {
			summary.SkillsNeedingImprovement++
			weakest = append(weakest, sk)
		}
		if sk.Proficiency == 5 {
			summary.ExpertSkills++
		}
	}
	if len(skills) > 0 {
		summary.AverageProficiency = round1(float64(profSum) / float64(len(skills)))
	}
	for category, count := range categoryCounts {
		if summary.TopSkillCategory == "" ||
			count > categoryCounts[summary.TopSkillCategory] ||
			(count == categoryCounts[summary.TopSkillCategory] && category < summary.TopSkillCategory) {
			summary.TopSkillCategory = category
		}
	}

	// Up to three weakest skills become focus areas.
	sort.Slice(weakest, func(i, j int) bool {
		if weakest[i].Proficiency != weakest[j].Proficiency {
			return weakest[i].Proficiency < weakest[j].Proficiency
		}
		return weakest[i].Name < weakest[j].Name
	})
	for i := 0; i < len(weakest) && i < 3; i++ {
		insights.Recommendations.FocusAreas = append(insights.Recommendations.FocusAreas, weakest[i].Name)
	}

	now := time.Now()
	var dated []domain.Goal
	for _, g := range goals {
		switch g.Status {
		case domain.StatusCompleted:
			summary.GoalsCompleted++
		case domain.StatusInProgress:
			summary.GoalsInProgress++
			if g.Overdue(now) {
				summary.OverdueTasks++
			}
			if g.TargetDate != nil && g.TargetDate.After(now) {
				dated = append(dated, g)
			}
		}
	}

	// Three nearest deadlines among dated in-progress goals.
	sort.Slice(dated, func(i, j int) bool {
		return dated[i].TargetDate.Before(*dated[j].TargetDate)
	})
	for i := 0; i < len(dated) && i < 3; i++ {
		insights.Recommendations.UpcomingDeadlines = append(insights.Recommendations.UpcomingDeadlines, Deadline{
			Title:      dated[i].Title,
			TargetDate: *dated[i].TargetDate,
		})
	}

	return insights, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
