package ai

import (
	"fmt"
	"strings"

	"github.com/skillforge/backend/internal/api/domain"
)

func skillLines(skills []domain.Skill) string {
	if len(skills) == 0 {
		return "No skills tracked yet"
	}
	lines := make([]string, 0, len(skills))
	for _, s := range skills {
		lines = append(lines, fmt.Sprintf("%s (%s) - Proficiency: %d/5", s.Name, s.Category, s.Proficiency))
	}
	return strings.Join(lines, "\n")
}

func goalLines(goals []domain.Goal) string {
	if len(goals) == 0 {
		return "No learning goals set yet"
	}
	lines := make([]string, 0, len(goals))
	for _, g := range goals {
		lines = append(lines, fmt.Sprintf("%s (%s) - Priority: %s, Status: %s", g.Title, g.TargetSkill, g.Priority, g.Status))
	}
	return strings.Join(lines, "\n")
}

func learningPathPrompt(skills []domain.Skill, goals []domain.Goal) string {
	return fmt.Sprintf(`As an AI learning advisor for developers, analyze the following user data and provide personalized learning recommendations:

CURRENT SKILLS:
%s

LEARNING GOALS:
%s

Please provide:
1. A personalized learning path with 3-5 specific recommendations
2. Suggested order of learning based on skill dependencies
3. Estimated time commitments for each recommendation
4. Resources or technologies to focus on
5. Skills that need improvement based on current proficiency levels

Format your response in a clear, actionable manner that helps the developer plan their learning journey effectively.`,
		skillLines(skills), goalLines(goals))
}

func skillSuggestionsPrompt(skillNames []string) string {
	names := strings.Join(skillNames, ", ")
	if names == "" {
		names = "No skills specified"
	}
	return fmt.Sprintf(`Based on the following developer skills: %s

Suggest 5-7 complementary skill categories or specific technologies that would enhance this developer's career prospects. Consider:
1. Market demand and trends
2. Natural skill progressions
3. Full-stack development opportunities
4. Emerging technologies
5. Career advancement potential

Provide brief explanations for each suggestion and why it complements their existing skillset.`, names)
}

func skillGapPrompt(skills []domain.Skill, targetRole string) string {
	return fmt.Sprintf(`Analyze the skill gaps for a developer targeting the role: %q

CURRENT SKILLS:
%s

Please provide:
1. Skills that are well-developed for this role
2. Critical skill gaps that need immediate attention
3. Nice-to-have skills for competitive advantage
4. Recommended proficiency levels for each skill area
5. Learning priorities and timeline suggestions

Focus on practical, actionable insights that help bridge the gap between current abilities and role requirements.`,
		targetRole, skillLines(skills))
}

func studyPlanPrompt(goal domain.Goal, skills []domain.Skill) string {
	description := goal.Description
	if description == "" {
		description = "No description provided"
	}
	targetDate := "Not set"
	if goal.TargetDate != nil {
		targetDate = goal.TargetDate.Format("2006-01-02")
	}

	return fmt.Sprintf(`Create a detailed study plan for the following learning goal:

GOAL: %s
DESCRIPTION: %s
TARGET SKILL: %s
PRIORITY: %s
STATUS: %s
PROGRESS: %d%%
TARGET DATE: %s

CURRENT SKILLS:
%s

Please provide:
1. Week-by-week breakdown of learning activities
2. Specific resources (courses, tutorials, documentation)
3. Practical projects to build
4. Milestones and checkpoints
5. Time estimates for each phase
6. Prerequisites and preparation steps

Make the plan realistic and achievable based on the goal's priority and existing skills.`,
		goal.Title, description, goal.TargetSkill, goal.Priority, goal.Status, goal.Progress, targetDate,
		skillLines(skills))
}
