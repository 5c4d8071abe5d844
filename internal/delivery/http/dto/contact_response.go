package dto

import (
	"time"

	"portfolio-api/internal/domain/portfolio"

	"github.com/google/uuid"
)

type ContactMessageResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Phone     string    `json:"phone"`
	IsRead    bool      `json:"isRead"`
	IsReplied bool      `json:"isReplied"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewContactMessageResponse(m portfolio.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		Phone:     m.Phone,
		IsRead:    m.IsRead,
		IsReplied: m.IsReplied,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func NewContactMessageList(items []portfolio.ContactMessage) []ContactMessageResponse {
	out := make([]ContactMessageResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewContactMessageResponse(it))
	}
	return out
}
