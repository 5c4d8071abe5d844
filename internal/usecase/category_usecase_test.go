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

func newCategoryUsecase(repo *fakeCategoryRepo) *Category {
	uc := NewCategoryUsecase(repo)
	uc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return uc
}

func TestCategoryCreate(t *testing.T) {
	repo := &fakeCategoryRepo{}
	uc := newCategoryUsecase(repo)

	c, err := uc.Create(context.Background(), CategoryInput{Name: "Backend", Order: 1})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.ID == uuid.Nil {
		t.Fatalf("expected generated id")
	}
	if len(repo.items) != 1 {
		t.Fatalf("expected category persisted")
	}
}

func TestCategoryCreate_NameRequiredAndBounded(t *testing.T) {
	uc := newCategoryUsecase(&fakeCategoryRepo{})

	_, err := uc.Create(context.Background(), CategoryInput{})
	var fe validate.FieldErrors
	if !errors.As(err, &fe) || len(fe["name"]) == 0 {
		t.Fatalf("expected name field error, got %v", err)
	}

	_, err = uc.Create(context.Background(), CategoryInput{Name: strings.Repeat("x", 101)})
	if !errors.As(err, &fe) || len(fe["name"]) == 0 {
		t.Fatalf("expected name length error, got %v", err)
	}
}

func TestCategoryPatch_MergesSuppliedFieldsOnly(t *testing.T) {
	c := portfolio.SkillCategory{ID: uuid.New(), Name: "Backend", Description: "server side", Order: 1}
	repo := &fakeCategoryRepo{items: []portfolio.SkillCategory{c}}
	uc := newCategoryUsecase(repo)

	order := 5
	got, err := uc.Patch(context.Background(), c.ID, CategoryPatch{Order: &order})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Order != 5 || got.Name != c.Name || got.Description != c.Description {
		t.Fatalf("unexpected patched category: %+v", got)
	}
}

func TestCategoryDelete(t *testing.T) {
	c := portfolio.SkillCategory{ID: uuid.New(), Name: "Backend"}
	repo := &fakeCategoryRepo{items: []portfolio.SkillCategory{c}}
	uc := newCategoryUsecase(repo)

	if err := uc.Delete(context.Background(), c.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != c.ID {
		t.Fatalf("expected cascade delete to run for %s", c.ID)
	}
}

func TestCategoryDelete_NotFound(t *testing.T) {
	uc := newCategoryUsecase(&fakeCategoryRepo{})

	if err := uc.Delete(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
