package dto

import (
	"time"

	"portfolio-api/internal/domain/portfolio"

	"github.com/google/uuid"
)

type AboutProfileResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Title        string    `json:"title"`
	Bio          string    `json:"bio"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Location     string    `json:"location"`
	ProfileImage string    `json:"profileImage"`
	ResumeFile   string    `json:"resumeFile"`
	LinkedinURL  string    `json:"linkedinUrl"`
	GithubURL    string    `json:"githubUrl"`
	TwitterURL   string    `json:"twitterUrl"`
	WebsiteURL   string    `json:"websiteUrl"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func NewAboutProfileResponse(p portfolio.AboutProfile) AboutProfileResponse {
	return AboutProfileResponse{
		ID:           p.ID,
		Name:         p.Name,
		Title:        p.Title,
		Bio:          p.Bio,
		Email:        p.Email,
		Phone:        p.Phone,
		Location:     p.Location,
		ProfileImage: p.ProfileImage,
		ResumeFile:   p.ResumeFile,
		LinkedinURL:  p.LinkedinURL,
		GithubURL:    p.GithubURL,
		TwitterURL:   p.TwitterURL,
		WebsiteURL:   p.WebsiteURL,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func NewAboutProfileList(items []portfolio.AboutProfile) []AboutProfileResponse {
	out := make([]AboutProfileResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewAboutProfileResponse(it))
	}
	return out
}
