package usecase

import (
	"context"
	"errors"
	"time"

	"portfolio-api/internal/domain/portfolio"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/validate"

	"github.com/google/uuid"
)

// ContactCreateInput is the public submission form: status flags are
// never caller-controlled on create.
type ContactCreateInput struct {
	Name    string
	Email   string
	Subject string
	Message string
	Phone   string
}

type ContactInput struct {
	Name      string
	Email     string
	Subject   string
	Message   string
	Phone     string
	IsRead    bool
	IsReplied bool
}

type ContactPatch struct {
	Name      *string
	Email     *string
	Subject   *string
	Message   *string
	Phone     *string
	IsRead    *bool
	IsReplied *bool
}

type ContactUsecase interface {
	List(ctx context.Context) ([]portfolio.ContactMessage, error)
	ListUnread(ctx context.Context) ([]portfolio.ContactMessage, error)
	Get(ctx context.Context, id uuid.UUID) (portfolio.ContactMessage, error)
	Create(ctx context.Context, in ContactCreateInput) (portfolio.ContactMessage, error)
	Update(ctx context.Context, id uuid.UUID, in ContactInput) (portfolio.ContactMessage, error)
	Patch(ctx context.Context, id uuid.UUID, in ContactPatch) (portfolio.ContactMessage, error)
	MarkRead(ctx context.Context, id uuid.UUID) (portfolio.ContactMessage, error)
	MarkReplied(ctx context.Context, id uuid.UUID) (portfolio.ContactMessage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Contact struct {
	repo repository.ContactRepository
	now  func() time.Time
}

func NewContactUsecase(repo repository.ContactRepository) *Contact {
	return &Contact{repo: repo, now: time.Now}
}

func (u *Contact) List(ctx context.Context) ([]portfolio.ContactMessage, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Contact) ListUnread(ctx context.Context) ([]portfolio.ContactMessage, error) {
	items, err := u.repo.ListUnread(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Contact) Get(ctx context.Context, id uuid.UUID) (portfolio.ContactMessage, error) {
	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return portfolio.ContactMessage{}, mapContactErr(err)
	}
	return m, nil
}

func (u *Contact) Create(ctx context.Context, in ContactCreateInput) (portfolio.ContactMessage, error) {
	if err := validateContactFields(in.Name, in.Email, in.Subject, in.Message, in.Phone); err != nil {
		return portfolio.ContactMessage{}, err
	}

	now := u.now().UTC()
	m := portfolio.ContactMessage{
		ID:        uuid.New(),
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.repo.Create(ctx, m); err != nil {
		return portfolio.ContactMessage{}, ErrInternal
	}
	return m, nil
}

func (u *Contact) Update(ctx context.Context, id uuid.UUID, in ContactInput) (portfolio.ContactMessage, error) {
	if err := validateContactFields(in.Name, in.Email, in.Subject, in.Message, in.Phone); err != nil {
		return portfolio.ContactMessage{}, err
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return portfolio.ContactMessage{}, mapContactErr(err)
	}

	m := portfolio.ContactMessage{
		ID:        existing.ID,
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		Phone:     in.Phone,
		IsRead:    in.IsRead,
		IsReplied: in.IsReplied,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: u.now().UTC(),
	}

	if err := u.repo.Update(ctx, m); err != nil {
		return portfolio.ContactMessage{}, mapContactErr(err)
	}
	return m, nil
}

func (u *Contact) Patch(ctx context.Context, id uuid.UUID, in ContactPatch) (portfolio.ContactMessage, error) {
	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return portfolio.ContactMessage{}, mapContactErr(err)
	}

	if in.Name != nil {
		m.Name = *in.Name
	}
	if in.Email != nil {
		m.Email = *in.Email
	}
	if in.Subject != nil {
		m.Subject = *in.Subject
	}
	if in.Message != nil {
		m.Message = *in.Message
	}
	if in.Phone != nil {
		m.Phone = *in.Phone
	}
	if in.IsRead != nil {
		m.IsRead = *in.IsRead
	}
	if in.IsReplied != nil {
		m.IsReplied = *in.IsReplied
	}

	if err := validateContactFields(m.Name, m.Email, m.Subject, m.Message, m.Phone); err != nil {
		return portfolio.ContactMessage{}, err
	}
	m.UpdatedAt = u.now().UTC()

	if err := u.repo.Update(ctx, m); err != nil {
		return portfolio.ContactMessage{}, mapContactErr(err)
	}
	return m, nil
}

func (u *Contact) MarkRead(ctx context.Context, id uuid.UUID) (portfolio.ContactMessage, error) {
	return u.setFlag(ctx, id, func(m *portfolio.ContactMessage) { m.IsRead = true })
}

func (u *Contact) MarkReplied(ctx context.Context, id uuid.UUID) (portfolio.ContactMessage, error) {
	return u.setFlag(ctx, id, func(m *portfolio.ContactMessage) { m.IsReplied = true })
}

func (u *Contact) setFlag(ctx context.Context, id uuid.UUID, set func(*portfolio.ContactMessage)) (portfolio.ContactMessage, error) {
	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return portfolio.ContactMessage{}, mapContactErr(err)
	}

	set(&m)
	m.UpdatedAt = u.now().UTC()

	if err := u.repo.Update(ctx, m); err != nil {
		return portfolio.ContactMessage{}, mapContactErr(err)
	}
	return m, nil
}

func (u *Contact) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		return mapContactErr(err)
	}
	return nil
}

func validateContactFields(name, email, subject, message, phone string) error {
	fe := validate.New()
	fe.Required("name", name)
	fe.MaxLen("name", name, 200)
	fe.Required("email", email)
	fe.Email("email", email)
	fe.MaxLen("email", email, 254)
	fe.Required("subject", subject)
	fe.MaxLen("subject", subject, 300)
	fe.Required("message", message)
	fe.MaxLen("phone", phone, 20)
	return fe.ErrOrNil()
}

func mapContactErr(err error) error {
	if errors.Is(err, repository.ErrContactMessageNotFound) {
		return ErrNotFound
	}
	return ErrInternal
}
