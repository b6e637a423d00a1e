package domain

import "time"

// Skill categories accepted by the API.
const (
	CategoryFrontend = "frontend"
	CategoryBackend  = "backend"
	CategoryDatabase = "database"
	CategoryDevops   = "devops"
	CategoryMobile   = "mobile"
	CategoryOther    = "other"
)

// SkillCategories lists every valid category, in display order.
var SkillCategories = []string{
	CategoryFrontend,
	CategoryBackend,
	CategoryDatabase,
	CategoryDevops,
	CategoryMobile,
	CategoryOther,
}

// ValidCategory reports whether c is a known skill category.
func ValidCategory(c string) bool {
	for _, v := range SkillCategories {
		if v == c {
			return true
		}
	}
	return false
}

type Skill struct {
	ID          string
	UserID      string
	Name        string // unique per user
	Category    string
	Proficiency int     // 1..5
	Experience  float64 // years, >= 0
	LastUsed    string  // ISO date string, optional
	Notes       string  // optional, <= 500 chars
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProficiencyLabel maps the stored 1-5 scale to a named level.
func ProficiencyLabel(p int) string {
	switch {
	case p <= 2:
		return "Beginner"
	case p == 3:
		return "Intermediate"
	case p == 4:
		return "Advanced"
	default:
		return "Expert"
	}
}
