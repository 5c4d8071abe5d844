package dto

import (
	"time"

	"portfolio-api/internal/domain/portfolio"
	"portfolio-api/internal/usecase"

	"github.com/google/uuid"
)

type SkillResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	CategoryID      uuid.UUID `json:"categoryId"`
	CategoryName    string    `json:"categoryName"`
	Proficiency     string    `json:"proficiency"`
	Percentage      int       `json:"percentage"`
	Icon            string    `json:"icon"`
	Description     string    `json:"description"`
	YearsExperience int       `json:"yearsExperience"`
	IsFeatured      bool      `json:"isFeatured"`
	Order           int       `json:"order"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type SkillCategoryResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Order       int             `json:"order"`
	Skills      []SkillResponse `json:"skills"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func NewSkillResponse(s portfolio.Skill) SkillResponse {
	return SkillResponse{
		ID:              s.ID,
		Name:            s.Name,
		CategoryID:      s.CategoryID,
		CategoryName:    s.CategoryName,
		Proficiency:     s.Proficiency,
		Percentage:      s.Percentage,
		Icon:            s.Icon,
		Description:     s.Description,
		YearsExperience: s.YearsExperience,
		IsFeatured:      s.IsFeatured,
		Order:           s.Order,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func NewSkillList(items []portfolio.Skill) []SkillResponse {
	out := make([]SkillResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewSkillResponse(it))
	}
	return out
}

func NewSkillCategoryResponse(c portfolio.SkillCategory) SkillCategoryResponse {
	return SkillCategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Order:       c.Order,
		Skills:      []SkillResponse{},
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func NewSkillCategoryList(items []portfolio.SkillCategory) []SkillCategoryResponse {
	out := make([]SkillCategoryResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewSkillCategoryResponse(it))
	}
	return out
}

// NewGroupedCategoryList is the by_category shape: categories carrying
// their nested skills.
func NewGroupedCategoryList(groups []usecase.CategorySkills) []SkillCategoryResponse {
	out := make([]SkillCategoryResponse, 0, len(groups))
	for _, g := range groups {
		c := NewSkillCategoryResponse(g.Category)
		c.Skills = NewSkillList(g.Skills)
		out = append(out, c)
	}
	return out
}
