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

type CategoryInput struct {
	Name        string
	Description string
	Order       int
}

type CategoryPatch struct {
	Name        *string
	Description *string
	Order       *int
}

type CategoryUsecase interface {
	List(ctx context.Context) ([]portfolio.SkillCategory, error)
	Get(ctx context.Context, id uuid.UUID) (portfolio.SkillCategory, error)
	Create(ctx context.Context, in CategoryInput) (portfolio.SkillCategory, error)
	Update(ctx context.Context, id uuid.UUID, in CategoryInput) (portfolio.SkillCategory, error)
	Patch(ctx context.Context, id uuid.UUID, in CategoryPatch) (portfolio.SkillCategory, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Category struct {
	repo repository.CategoryRepository
	now  func() time.Time
}

func NewCategoryUsecase(repo repository.CategoryRepository) *Category {
	return &Category{repo: repo, now: time.Now}
}

func (u *Category) List(ctx context.Context) ([]portfolio.SkillCategory, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Category) Get(ctx context.Context, id uuid.UUID) (portfolio.SkillCategory, error) {
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return portfolio.SkillCategory{}, mapCategoryErr(err)
	}
	return c, nil
}

func (u *Category) Create(ctx context.Context, in CategoryInput) (portfolio.SkillCategory, error) {
	if err := validateCategoryInput(in); err != nil {
		return portfolio.SkillCategory{}, err
	}

	now := u.now().UTC()
	c := portfolio.SkillCategory{
		ID:          uuid.New(),
		Name:        in.Name,
		Description: in.Description,
		Order:       in.Order,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := u.repo.Create(ctx, c); err != nil {
		return portfolio.SkillCategory{}, ErrInternal
	}
	return c, nil
}

func (u *Category) Update(ctx context.Context, id uuid.UUID, in CategoryInput) (portfolio.SkillCategory, error) {
	if err := validateCategoryInput(in); err != nil {
		return portfolio.SkillCategory{}, err
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return portfolio.SkillCategory{}, mapCategoryErr(err)
	}

	c := portfolio.SkillCategory{
		ID:          existing.ID,
		Name:        in.Name,
		Description: in.Description,
		Order:       in.Order,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   u.now().UTC(),
	}

	if err := u.repo.Update(ctx, c); err != nil {
		return portfolio.SkillCategory{}, mapCategoryErr(err)
	}
	return c, nil
}

func (u *Category) Patch(ctx context.Context, id uuid.UUID, in CategoryPatch) (portfolio.SkillCategory, error) {
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return portfolio.SkillCategory{}, mapCategoryErr(err)
	}

	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.Order != nil {
		c.Order = *in.Order
	}

	if err := validateCategoryInput(CategoryInput{Name: c.Name, Description: c.Description, Order: c.Order}); err != nil {
		return portfolio.SkillCategory{}, err
	}
	c.UpdatedAt = u.now().UTC()

	if err := u.repo.Update(ctx, c); err != nil {
		return portfolio.SkillCategory{}, mapCategoryErr(err)
	}
	return c, nil
}

// Delete removes the category together with its skills.
func (u *Category) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		return mapCategoryErr(err)
	}
	return nil
}

func validateCategoryInput(in CategoryInput) error {
	fe := validate.New()
	fe.Required("name", in.Name)
	fe.MaxLen("name", in.Name, 100)
	return fe.ErrOrNil()
}

func mapCategoryErr(err error) error {
	if errors.Is(err, repository.ErrSkillCategoryNotFound) {
		return ErrNotFound
	}
	return ErrInternal
}
