package portfolio

import (
	"time"

	"github.com/google/uuid"
)

// Proficiency levels a skill can be tagged with.
const (
	ProficiencyBeginner     = "beginner"
	ProficiencyIntermediate = "intermediate"
	ProficiencyAdvanced     = "advanced"
	ProficiencyExpert       = "expert"
)

func ValidProficiency(v string) bool {
	switch v {
	case ProficiencyBeginner, ProficiencyIntermediate, ProficiencyAdvanced, ProficiencyExpert:
		return true
	}
	return false
}

// AboutProfile is one bio record. At most one row is active at a time;
// the repository demotes the others inside the write transaction.
type AboutProfile struct {
	ID           uuid.UUID
	Name         string
	Title        string
	Bio          string
	Email        string
	Phone        string
	Location     string
	ProfileImage string
	ResumeFile   string
	LinkedinURL  string
	GithubURL    string
	TwitterURL   string
	WebsiteURL   string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ContactMessage struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Subject   string
	Message   string
	Phone     string
	IsRead    bool
	IsReplied bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Project stores Technologies as a single comma-joined string; the
// delivery layer exposes it as a list.
type Project struct {
	ID               uuid.UUID
	Title            string
	Description      string
	ShortDescription string
	ImageURL         string
	URL              string
	GithubURL        string
	Technologies     string
	IsFeatured       bool
	Order            int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type SkillCategory struct {
	ID          uuid.UUID
	Name        string
	Description string
	Order       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Skill struct {
	ID              uuid.UUID
	Name            string
	CategoryID      uuid.UUID
	CategoryName    string
	Proficiency     string
	Percentage      int
	Icon            string
	Description     string
	YearsExperience int
	IsFeatured      bool
	Order           int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
