package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"portfolio-api/internal/domain/portfolio"
	"portfolio-api/internal/validate"

	"github.com/google/uuid"
)

func newContactUsecase(repo *fakeContactRepo) *Contact {
	uc := NewContactUsecase(repo)
	uc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return uc
}

func TestContactCreate_StartsUnreadAndUnreplied(t *testing.T) {
	repo := &fakeContactRepo{}
	uc := newContactUsecase(repo)

	m, err := uc.Create(context.Background(), ContactCreateInput{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello",
		Message: "Nice site",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if m.IsRead || m.IsReplied {
		t.Fatalf("expected fresh message to be unread and unreplied")
	}
}

func TestContactCreate_SubjectTooLong(t *testing.T) {
	uc := newContactUsecase(&fakeContactRepo{})

	_, err := uc.Create(context.Background(), ContactCreateInput{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: strings.Repeat("x", 301),
		Message: "hi",
	})
	var fe validate.FieldErrors
	if !errors.As(err, &fe) || len(fe["subject"]) == 0 {
		t.Fatalf("expected subject field error, got %v", err)
	}
}

func TestContactCreate_EmailTooLong(t *testing.T) {
	uc := newContactUsecase(&fakeContactRepo{})

	_, err := uc.Create(context.Background(), ContactCreateInput{
		Name:    "Visitor",
		Email:   strings.Repeat("a", 60) + "@" + strings.Repeat("b", 190) + ".com",
		Subject: "Hello",
		Message: "hi",
	})
	var fe validate.FieldErrors
	if !errors.As(err, &fe) || len(fe["email"]) == 0 {
		t.Fatalf("expected email field error, got %v", err)
	}
}

func TestContactListUnread(t *testing.T) {
	repo := &fakeContactRepo{items: []portfolio.ContactMessage{
		{ID: uuid.New(), IsRead: true},
		{ID: uuid.New()},
		{ID: uuid.New()},
	}}
	uc := newContactUsecase(repo)

	items, err := uc.ListUnread(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 unread messages, got %d", len(items))
	}
}

func TestContactMarkRead(t *testing.T) {
	m := portfolio.ContactMessage{
		ID:      uuid.New(),
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello",
		Message: "hi",
	}
	repo := &fakeContactRepo{items: []portfolio.ContactMessage{m}}
	uc := newContactUsecase(repo)

	got, err := uc.MarkRead(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !got.IsRead {
		t.Fatalf("expected message to be marked read")
	}
	if got.IsReplied {
		t.Fatalf("mark_read must not touch the replied flag")
	}
}

func TestContactMarkReplied(t *testing.T) {
	m := portfolio.ContactMessage{
		ID:      uuid.New(),
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello",
		Message: "hi",
	}
	repo := &fakeContactRepo{items: []portfolio.ContactMessage{m}}
	uc := newContactUsecase(repo)

	got, err := uc.MarkReplied(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !got.IsReplied {
		t.Fatalf("expected message to be marked replied")
	}
	if got.IsRead {
		t.Fatalf("mark_replied must not touch the read flag")
	}
}

func TestContactMarkRead_NotFound(t *testing.T) {
	uc := newContactUsecase(&fakeContactRepo{})

	_, err := uc.MarkRead(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestContactPatch_FlagsOnly(t *testing.T) {
	m := portfolio.ContactMessage{
		ID:      uuid.New(),
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello",
		Message: "hi",
	}
	repo := &fakeContactRepo{items: []portfolio.ContactMessage{m}}
	uc := newContactUsecase(repo)

	read := true
	got, err := uc.Patch(context.Background(), m.ID, ContactPatch{IsRead: &read})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !got.IsRead || got.Name != m.Name {
		t.Fatalf("expected flag set and other fields untouched")
	}
}
