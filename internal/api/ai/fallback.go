package ai

import (
	"fmt"
	"strings"

	"github.com/skillforge/backend/internal/api/domain"
)

// Deterministic offline templates used whenever the model is unreachable.

func fallbackLearningPath(skills []domain.Skill, goals []domain.Goal) string {
	goalsText := "No learning goals set yet"
	if len(goals) > 0 {
		lines := make([]string, 0, len(goals))
		for _, g := range goals {
			lines = append(lines, fmt.Sprintf("%s - %s", g.Title, g.Status))
		}
		goalsText = strings.Join(lines, "\n")
	}

	return fmt.Sprintf(`# Personalized Learning Path (Generated Offline)

## Current Skills Assessment
%s

## Learning Goals
%s

## Recommendations
Based on your current skills and goals, here are some recommendations:

1. **Focus on Skill Gaps**: Review your skills with lower proficiency and prioritize improvement
2. **Complete Active Goals**: Work on your in-progress learning goals systematically
3. **Build Portfolio Projects**: Apply your skills in real-world projects
4. **Stay Updated**: Keep learning new technologies in your field
5. **Practice Regularly**: Consistent practice is key to skill development

## Next Steps
- Set specific, measurable learning goals
- Create a study schedule
- Find online courses or tutorials for skill gaps
- Build projects to apply new knowledge
- Track your progress regularly

*Note: This is a basic recommendation. For AI-powered personalized suggestions, please check your Gemini API configuration.*`,
		skillLines(skills), goalsText)
}

func fallbackSkillSuggestions(skillNames []string) string {
	names := strings.Join(skillNames, ", ")
	if names == "" {
		names = "None specified"
	}

	return fmt.Sprintf(`# Skill Development Suggestions (Generated Offline)

## Based on your current skills: %s

## Recommended Skills to Consider:

### Core Development Skills
- **Version Control**: Git, GitHub/GitLab
- **Testing**: Unit testing, Integration testing
- **Debugging**: Debugging tools and techniques
- **Documentation**: Technical writing, API documentation

### Popular Technologies
- **Frontend**: React, Vue.js, Angular, TypeScript
- **Backend**: Node.js, Python, Java, C#
- **Databases**: PostgreSQL, MongoDB, Redis
- **Cloud**: AWS, Azure, Google Cloud

### DevOps & Tools
- **Containerization**: Docker, Kubernetes
- **CI/CD**: Jenkins, GitHub Actions, GitLab CI
- **Monitoring**: Application monitoring and logging
- **Security**: Security best practices, OWASP

*Note: This is a basic suggestion. For AI-powered personalized recommendations, please check your Gemini API configuration.*`, names)
}

func fallbackSkillGapAnalysis(skills []domain.Skill, targetRole string) string {
	return fmt.Sprintf(`# Skill Gap Analysis for %s (Generated Offline)

## Your Current Skills
%s

## Common Skills for %s
Based on industry standards, here are typical skills needed:

### Technical Skills
- Programming languages relevant to the role
- Frameworks and libraries
- Database knowledge
- Version control (Git)
- Testing methodologies

### Soft Skills
- Problem-solving
- Communication
- Team collaboration
- Project management
- Continuous learning

## General Recommendations
1. **Assess Current Level**: Compare your skills with job requirements
2. **Identify Gaps**: Focus on missing or weak skills
3. **Create Learning Plan**: Prioritize high-impact skills
4. **Gain Experience**: Work on projects that use target skills
5. **Stay Updated**: Keep up with industry trends

*Note: This is a basic analysis. For AI-powered personalized gap analysis, please check your Gemini API configuration.*`,
		targetRole, skillLines(skills), targetRole)
}

func fallbackStudyPlan(goal domain.Goal) string {
	description := goal.Description
	if description == "" {
		description = "No description provided"
	}
	targetDate := "Not set"
	if goal.TargetDate != nil {
		targetDate = goal.TargetDate.Format("2006-01-02")
	}

	return fmt.Sprintf(`# Study Plan for: %s (Generated Offline)

## Goal Details
- **Title**: %s
- **Description**: %s
- **Target Skill**: %s
- **Priority**: %s
- **Status**: %s
- **Target Date**: %s

## Recommended Study Plan

### Week 1-2: Foundation
- Research and understand the basics
- Gather learning resources (courses, books, tutorials)
- Set up development environment if needed

### Week 3-4: Core Learning
- Follow structured learning materials
- Take notes and create summaries
- Practice with small exercises

### Week 5-6: Hands-on Practice
- Build practice projects
- Apply concepts in real scenarios
- Troubleshoot and debug issues

### Week 7-8: Advanced Topics
- Explore advanced concepts
- Learn best practices
- Study real-world implementations

### Ongoing: Review and Reinforce
- Regular practice sessions
- Code reviews and feedback
- Stay updated with latest developments

## Resources to Consider
- Online courses (Coursera, Udemy, Pluralsight)
- Documentation and official guides
- Community forums and Stack Overflow
- GitHub repositories and open source projects
- YouTube tutorials and tech talks

*Note: This is a basic study plan. For AI-powered personalized recommendations, please check your Gemini API configuration.*`,
		goal.Title, goal.Title, description, goal.TargetSkill, goal.Priority, goal.Status, targetDate)
}
