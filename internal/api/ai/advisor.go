package ai

import (
	"context"
	"log/slog"
	"time"

	"github.com/skillforge/backend/internal/api/domain"
	"github.com/skillforge/backend/pkg/slogx"
)

// Source identifies which path produced the advisor text.
type Source string

const (
	SourceGenerated Source = "generated"
	SourceFallback  Source = "fallback"
)

// Result is the advisor's answer. Text is never empty.
type Result struct {
	Text   string
	Source Source
}

// Advisor wraps a Generator with the prompt builders and the offline
// fallbacks. Every method returns usable text; model failures are logged and
// absorbed, never surfaced to the caller.
type Advisor struct {
	Generator Generator
	Timeout   time.Duration
}

const defaultTimeout = 45 * time.Second

// LearningPath recommends what to learn next given the user's skills and
// open goals.
func (a *Advisor) LearningPath(ctx context.Context, skills []domain.Skill, goals []domain.Goal) Result {
	return a.generate(ctx, learningPathPrompt(skills, goals), func() string {
		return fallbackLearningPath(skills, goals)
	})
}

// SkillSuggestions proposes complementary skills for the given skill names.
func (a *Advisor) SkillSuggestions(ctx context.Context, skillNames []string) Result {
	return a.generate(ctx, skillSuggestionsPrompt(skillNames), func() string {
		return fallbackSkillSuggestions(skillNames)
	})
}

// SkillGapAnalysis compares the user's skills against a target role.
func (a *Advisor) SkillGapAnalysis(ctx context.Context, skills []domain.Skill, targetRole string) Result {
	return a.generate(ctx, skillGapPrompt(skills, targetRole), func() string {
		return fallbackSkillGapAnalysis(skills, targetRole)
	})
}

// StudyPlan lays out a plan for one goal in the context of the user's skills.
func (a *Advisor) StudyPlan(ctx context.Context, goal domain.Goal, skills []domain.Skill) Result {
	return a.generate(ctx, studyPlanPrompt(goal, skills), func() string {
		return fallbackStudyPlan(goal)
	})
}

func (a *Advisor) generate(ctx context.Context, prompt string, fallback func() string) Result {
	log := slogx.FromContext(ctx)

	timeout := a.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	text, err := a.Generator.Generate(ctx, prompt)
	if err != nil || text == "" {
		log.Warn("model generation failed, using fallback", slog.Any("error", err))
		return Result{Text: fallback(), Source: SourceFallback}
	}

	return Result{Text: text, Source: SourceGenerated}
}
