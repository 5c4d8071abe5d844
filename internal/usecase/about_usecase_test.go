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

func newAboutUsecase(repo *fakeAboutRepo, cache Cache) *About {
	uc := NewAboutUsecase(repo, cache, nil)
	uc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return uc
}

func validAboutInput() AboutInput {
	return AboutInput{
		Name:  "Jane Doe",
		Title: "Software Engineer",
		Bio:   "I build things.",
		Email: "jane@example.com",
	}
}

func TestAboutCreate_DefaultsActive(t *testing.T) {
	repo := &fakeAboutRepo{}
	uc := newAboutUsecase(repo, nil)

	p, err := uc.Create(context.Background(), validAboutInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !p.IsActive {
		t.Fatalf("expected new profile to be active by default")
	}
	if p.ID == uuid.Nil {
		t.Fatalf("expected generated id")
	}
}

func TestAboutCreate_DemotesPreviousActive(t *testing.T) {
	first := portfolio.AboutProfile{ID: uuid.New(), Name: "Old", IsActive: true}
	repo := &fakeAboutRepo{items: []portfolio.AboutProfile{first}}
	uc := newAboutUsecase(repo, nil)

	second, err := uc.Create(context.Background(), validAboutInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	active, _ := repo.FindActive(context.Background())
	if active.ID != second.ID {
		t.Fatalf("expected the new profile to be the active one")
	}
	old, _ := repo.GetByID(context.Background(), first.ID)
	if old.IsActive {
		t.Fatalf("expected the previous active profile to be demoted")
	}
}

func TestAboutCreate_ValidationErrors(t *testing.T) {
	uc := newAboutUsecase(&fakeAboutRepo{}, nil)

	in := validAboutInput()
	in.Name = ""
	in.Email = "not-an-email"
	in.LinkedinURL = "nope"

	_, err := uc.Create(context.Background(), in)
	var fe validate.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected field errors, got %v", err)
	}
	for _, field := range []string{"name", "email", "linkedinUrl"} {
		if len(fe[field]) == 0 {
			t.Fatalf("expected message for %q, got %v", field, fe)
		}
	}
}

func TestAboutCreate_RejectsOverlongFields(t *testing.T) {
	uc := newAboutUsecase(&fakeAboutRepo{}, nil)

	in := validAboutInput()
	in.Email = strings.Repeat("a", 60) + "@" + strings.Repeat("b", 190) + ".com"
	in.LinkedinURL = "https://linkedin.com/in/" + strings.Repeat("a", 236)
	in.GithubURL = "https://github.com/" + strings.Repeat("b", 190)
	in.TwitterURL = "https://twitter.com/" + strings.Repeat("c", 190)
	in.WebsiteURL = "https://example.com/" + strings.Repeat("d", 190)

	_, err := uc.Create(context.Background(), in)
	var fe validate.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected field errors, got %v", err)
	}
	for _, field := range []string{"email", "linkedinUrl", "githubUrl", "twitterUrl", "websiteUrl"} {
		if len(fe[field]) == 0 {
			t.Fatalf("expected message for %q, got %v", field, fe)
		}
	}
}

func TestAboutCreate_AcceptsUrlAtMaxLength(t *testing.T) {
	uc := newAboutUsecase(&fakeAboutRepo{}, nil)

	in := validAboutInput()
	in.WebsiteURL = "https://example.com/" + strings.Repeat("a", 180)

	if _, err := uc.Create(context.Background(), in); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestAboutActive_NoneIsNotAnError(t *testing.T) {
	uc := newAboutUsecase(&fakeAboutRepo{}, nil)

	_, found, err := uc.Active(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if found {
		t.Fatalf("expected found=false with no active profile")
	}
}

func TestAboutActive_UsesCache(t *testing.T) {
	p := portfolio.AboutProfile{ID: uuid.New(), Name: "Jane", IsActive: true}
	repo := &fakeAboutRepo{items: []portfolio.AboutProfile{p}}
	cache := newFakeCache()
	uc := newAboutUsecase(repo, cache)

	for i := 0; i < 2; i++ {
		got, found, err := uc.Active(context.Background())
		if err != nil || !found {
			t.Fatalf("unexpected result: found=%v err=%v", found, err)
		}
		if got.ID != p.ID {
			t.Fatalf("unexpected profile: %v", got.ID)
		}
	}
	if cache.sets != 1 {
		t.Fatalf("expected 1 cache set, got %d", cache.sets)
	}
}

func TestAboutWrite_InvalidatesActiveCache(t *testing.T) {
	p := portfolio.AboutProfile{ID: uuid.New(), Name: "Jane", IsActive: true}
	repo := &fakeAboutRepo{items: []portfolio.AboutProfile{p}}
	cache := newFakeCache()
	uc := newAboutUsecase(repo, cache)

	if _, _, err := uc.Active(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := uc.Create(context.Background(), validAboutInput()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(cache.data) != 0 {
		t.Fatalf("expected active cache entry to be dropped")
	}
}

func TestAboutPatch_MergesSuppliedFieldsOnly(t *testing.T) {
	p := portfolio.AboutProfile{
		ID:       uuid.New(),
		Name:     "Jane Doe",
		Title:    "Engineer",
		Bio:      "bio",
		Email:    "jane@example.com",
		Location: "Berlin",
		IsActive: true,
	}
	repo := &fakeAboutRepo{items: []portfolio.AboutProfile{p}}
	uc := newAboutUsecase(repo, nil)

	title := "Staff Engineer"
	got, err := uc.Patch(context.Background(), p.ID, AboutPatch{Title: &title})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Title != title {
		t.Fatalf("expected patched title, got %q", got.Title)
	}
	if got.Name != p.Name || got.Location != p.Location || !got.IsActive {
		t.Fatalf("expected untouched fields to survive the patch")
	}
}

func TestAboutUpdate_NotFound(t *testing.T) {
	uc := newAboutUsecase(&fakeAboutRepo{}, nil)

	_, err := uc.Update(context.Background(), uuid.New(), validAboutInput())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAboutDelete_NotFound(t *testing.T) {
	uc := newAboutUsecase(&fakeAboutRepo{}, nil)

	if err := uc.Delete(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
