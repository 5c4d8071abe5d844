package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"portfolio-api/internal/domain/portfolio"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/validate"

	"github.com/google/uuid"
)

func newProjectUsecase(repo *fakeProjectRepo, cache Cache) *Project {
	uc := NewProjectUsecase(repo, cache, nil)
	uc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return uc
}

func TestProjectList_ResolvesOrdering(t *testing.T) {
	repo := &fakeProjectRepo{}
	uc := newProjectUsecase(repo, nil)

	_, err := uc.List(context.Background(), ProjectListParams{Ordering: "-createdAt,title,bogus"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	want := []repository.OrderClause{
		{Column: "created_at", Desc: true},
		{Column: "title"},
	}
	got := repo.lastFilter.Order
	if len(got) != len(want) {
		t.Fatalf("expected %d order clauses, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("clause %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestProjectList_UnknownOrderingIgnored(t *testing.T) {
	repo := &fakeProjectRepo{}
	uc := newProjectUsecase(repo, nil)

	if _, err := uc.List(context.Background(), ProjectListParams{Ordering: "nope"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(repo.lastFilter.Order) != 0 {
		t.Fatalf("expected default ordering, got %v", repo.lastFilter.Order)
	}
}

func TestProjectList_TrimsSearch(t *testing.T) {
	repo := &fakeProjectRepo{}
	uc := newProjectUsecase(repo, nil)

	if _, err := uc.List(context.Background(), ProjectListParams{Search: "  go  "}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.lastFilter.Search != "go" {
		t.Fatalf("expected trimmed search, got %q", repo.lastFilter.Search)
	}
}

func TestProjectCreate_NormalizesTechnologies(t *testing.T) {
	repo := &fakeProjectRepo{}
	uc := newProjectUsecase(repo, nil)

	p, err := uc.Create(context.Background(), ProjectInput{
		Title:        "Portfolio",
		Description:  "My site",
		Technologies: []string{" Go", "", "PostgreSQL "},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.Technologies != "Go, PostgreSQL" {
		t.Fatalf("unexpected technologies: %q", p.Technologies)
	}
}

func TestProjectCreate_ValidationErrors(t *testing.T) {
	uc := newProjectUsecase(&fakeProjectRepo{}, nil)

	_, err := uc.Create(context.Background(), ProjectInput{URL: "not a url"})
	var fe validate.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected field errors, got %v", err)
	}
	for _, field := range []string{"title", "description", "url"} {
		if len(fe[field]) == 0 {
			t.Fatalf("expected message for %q, got %v", field, fe)
		}
	}
}

func TestProjectCreate_RejectsOverlongURLs(t *testing.T) {
	uc := newProjectUsecase(&fakeProjectRepo{}, nil)

	_, err := uc.Create(context.Background(), ProjectInput{
		Title:       "Portfolio",
		Description: "My site",
		URL:         "https://example.com/" + strings.Repeat("a", 200),
		GithubURL:   "https://github.com/" + strings.Repeat("b", 200),
	})
	var fe validate.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected field errors, got %v", err)
	}
	for _, field := range []string{"url", "githubUrl"} {
		if len(fe[field]) == 0 {
			t.Fatalf("expected message for %q, got %v", field, fe)
		}
	}
}

func TestProjectFeatured_CachedAfterFirstRead(t *testing.T) {
	repo := &fakeProjectRepo{items: []portfolio.Project{
		{ID: uuid.New(), Title: "A", IsFeatured: true},
		{ID: uuid.New(), Title: "B"},
	}}
	cache := newFakeCache()
	uc := newProjectUsecase(repo, cache)

	for i := 0; i < 2; i++ {
		items, err := uc.ListFeatured(context.Background())
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("expected 1 featured project, got %d", len(items))
		}
	}
	if repo.featuredCalls != 1 {
		t.Fatalf("expected 1 repo read, got %d", repo.featuredCalls)
	}
}

func TestProjectCreate_InvalidatesFeaturedCache(t *testing.T) {
	repo := &fakeProjectRepo{}
	cache := newFakeCache()
	uc := newProjectUsecase(repo, cache)

	if _, err := uc.ListFeatured(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := uc.Create(context.Background(), ProjectInput{Title: "P", Description: "d"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(cache.data) != 0 {
		t.Fatalf("expected featured cache entry to be dropped")
	}
}

func TestProjectPatch_ReplacesTechnologies(t *testing.T) {
	p := portfolio.Project{
		ID:           uuid.New(),
		Title:        "Portfolio",
		Description:  "My site",
		Technologies: "Go",
	}
	repo := &fakeProjectRepo{items: []portfolio.Project{p}}
	uc := newProjectUsecase(repo, nil)

	techs := []string{"Rust", "Svelte"}
	got, err := uc.Patch(context.Background(), p.ID, ProjectPatch{Technologies: &techs})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Technologies != "Rust, Svelte" {
		t.Fatalf("unexpected technologies: %q", got.Technologies)
	}
	if got.Title != p.Title {
		t.Fatalf("expected title untouched")
	}
}

func TestProjectGet_NotFound(t *testing.T) {
	uc := newProjectUsecase(&fakeProjectRepo{}, nil)

	_, err := uc.Get(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
