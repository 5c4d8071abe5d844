package dto

import (
	"time"

	"portfolio-api/internal/domain/portfolio"

	"github.com/google/uuid"
)

// ProjectResponse exposes technologies as a list; the joined string
// form never leaves the storage layer.
type ProjectResponse struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"shortDescription"`
	ImageURL         string    `json:"imageUrl"`
	URL              string    `json:"url"`
	GithubURL        string    `json:"githubUrl"`
	Technologies     []string  `json:"technologies"`
	IsFeatured       bool      `json:"isFeatured"`
	Order            int       `json:"order"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func NewProjectResponse(p portfolio.Project) ProjectResponse {
	return ProjectResponse{
		ID:               p.ID,
		Title:            p.Title,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		ImageURL:         p.ImageURL,
		URL:              p.URL,
		GithubURL:        p.GithubURL,
		Technologies:     portfolio.SplitTechnologies(p.Technologies),
		IsFeatured:       p.IsFeatured,
		Order:            p.Order,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func NewProjectList(items []portfolio.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewProjectResponse(it))
	}
	return out
}
