package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"portfolio-api/internal/domain/portfolio"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/validate"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const featuredSkillsCacheKey = "skills:featured"

var skillOrderColumns = map[string]string{
	"order":      "s.display_order",
	"name":       "s.name",
	"percentage": "s.percentage",
}

type SkillListParams struct {
	Search   string
	Ordering string
}

// SkillInput: Proficiency blank and the nil numerics fall back to the
// model defaults (intermediate / 50 / 0).
type SkillInput struct {
	Name            string
	CategoryID      uuid.UUID
	Proficiency     string
	Percentage      *int
	Icon            string
	Description     string
	YearsExperience *int
	IsFeatured      bool
	Order           int
}

type SkillPatch struct {
	Name            *string
	CategoryID      *uuid.UUID
	Proficiency     *string
	Percentage      *int
	Icon            *string
	Description     *string
	YearsExperience *int
	IsFeatured      *bool
	Order           *int
}

// CategorySkills is one by_category group: the category with its
// skills nested.
type CategorySkills struct {
	Category portfolio.SkillCategory
	Skills   []portfolio.Skill
}

type SkillUsecase interface {
	List(ctx context.Context, params SkillListParams) ([]portfolio.Skill, error)
	ListFeatured(ctx context.Context) ([]portfolio.Skill, error)
	ByCategory(ctx context.Context) ([]CategorySkills, error)
	Get(ctx context.Context, id uuid.UUID) (portfolio.Skill, error)
	Create(ctx context.Context, in SkillInput) (portfolio.Skill, error)
	Update(ctx context.Context, id uuid.UUID, in SkillInput) (portfolio.Skill, error)
	Patch(ctx context.Context, id uuid.UUID, in SkillPatch) (portfolio.Skill, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type SkillService struct {
	skills     repository.SkillRepository
	categories repository.CategoryRepository
	cache      Cache
	logger     *log.Logger
	now        func() time.Time
}

func NewSkillUsecase(skills repository.SkillRepository, categories repository.CategoryRepository, cache Cache, logger *log.Logger) *SkillService {
	return &SkillService{skills: skills, categories: categories, cache: cache, logger: logger, now: time.Now}
}

func (u *SkillService) List(ctx context.Context, params SkillListParams) ([]portfolio.Skill, error) {
	f := repository.SkillListFilter{
		Search: strings.TrimSpace(params.Search),
		Order:  resolveOrdering(params.Ordering, skillOrderColumns),
	}
	items, err := u.skills.List(ctx, f)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *SkillService) ListFeatured(ctx context.Context) ([]portfolio.Skill, error) {
	if u.cache != nil {
		var cached []portfolio.Skill
		hit, err := u.cache.GetJSON(ctx, featuredSkillsCacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Skills] Cache HIT: %s", featuredSkillsCacheKey)
			}
			return cached, nil
		}
	}

	items, err := u.skills.ListFeatured(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, featuredSkillsCacheKey, items, 0)
	}
	return items, nil
}

// ByCategory returns every category with its skills nested, in the
// categories' display order. Categories without skills appear with an
// empty list.
func (u *SkillService) ByCategory(ctx context.Context) ([]CategorySkills, error) {
	cats, err := u.categories.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	skills, err := u.skills.List(ctx, repository.SkillListFilter{})
	if err != nil {
		return nil, ErrInternal
	}

	byCat := make(map[uuid.UUID][]portfolio.Skill, len(cats))
	for _, s := range skills {
		byCat[s.CategoryID] = append(byCat[s.CategoryID], s)
	}

	out := make([]CategorySkills, 0, len(cats))
	for _, c := range cats {
		group := byCat[c.ID]
		if group == nil {
			group = []portfolio.Skill{}
		}
		out = append(out, CategorySkills{Category: c, Skills: group})
	}
	return out, nil
}

func (u *SkillService) Get(ctx context.Context, id uuid.UUID) (portfolio.Skill, error) {
	s, err := u.skills.GetByID(ctx, id)
	if err != nil {
		return portfolio.Skill{}, mapSkillErr(err)
	}
	return s, nil
}

func (u *SkillService) Create(ctx context.Context, in SkillInput) (portfolio.Skill, error) {
	s, err := u.skillFromInput(ctx, in)
	if err != nil {
		return portfolio.Skill{}, err
	}

	now := u.now().UTC()
	s.ID = uuid.New()
	s.CreatedAt = now
	s.UpdatedAt = now

	if err := u.skills.Create(ctx, s); err != nil {
		if isForeignKeyViolation(err) {
			return portfolio.Skill{}, categoryFieldError(in.CategoryID)
		}
		return portfolio.Skill{}, ErrInternal
	}

	u.invalidateFeatured(ctx)
	return s, nil
}

func (u *SkillService) Update(ctx context.Context, id uuid.UUID, in SkillInput) (portfolio.Skill, error) {
	s, err := u.skillFromInput(ctx, in)
	if err != nil {
		return portfolio.Skill{}, err
	}

	existing, err := u.skills.GetByID(ctx, id)
	if err != nil {
		return portfolio.Skill{}, mapSkillErr(err)
	}

	s.ID = existing.ID
	s.CreatedAt = existing.CreatedAt
	s.UpdatedAt = u.now().UTC()

	if err := u.skills.Update(ctx, s); err != nil {
		if isForeignKeyViolation(err) {
			return portfolio.Skill{}, categoryFieldError(in.CategoryID)
		}
		return portfolio.Skill{}, mapSkillErr(err)
	}

	u.invalidateFeatured(ctx)
	return s, nil
}

func (u *SkillService) Patch(ctx context.Context, id uuid.UUID, in SkillPatch) (portfolio.Skill, error) {
	s, err := u.skills.GetByID(ctx, id)
	if err != nil {
		return portfolio.Skill{}, mapSkillErr(err)
	}

	if in.Name != nil {
		s.Name = *in.Name
	}
	if in.CategoryID != nil {
		cat, err := u.categories.GetByID(ctx, *in.CategoryID)
		if err != nil {
			if errors.Is(err, repository.ErrSkillCategoryNotFound) {
				return portfolio.Skill{}, categoryFieldError(*in.CategoryID)
			}
			return portfolio.Skill{}, ErrInternal
		}
		s.CategoryID = cat.ID
		s.CategoryName = cat.Name
	}
	if in.Proficiency != nil {
		s.Proficiency = *in.Proficiency
	}
	if in.Percentage != nil {
		s.Percentage = *in.Percentage
	}
	if in.Icon != nil {
		s.Icon = *in.Icon
	}
	if in.Description != nil {
		s.Description = *in.Description
	}
	if in.YearsExperience != nil {
		s.YearsExperience = *in.YearsExperience
	}
	if in.IsFeatured != nil {
		s.IsFeatured = *in.IsFeatured
	}
	if in.Order != nil {
		s.Order = *in.Order
	}

	if err := validateSkillFields(s); err != nil {
		return portfolio.Skill{}, err
	}
	s.UpdatedAt = u.now().UTC()

	if err := u.skills.Update(ctx, s); err != nil {
		return portfolio.Skill{}, mapSkillErr(err)
	}

	u.invalidateFeatured(ctx)
	return s, nil
}

func (u *SkillService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.skills.Delete(ctx, id); err != nil {
		return mapSkillErr(err)
	}
	u.invalidateFeatured(ctx)
	return nil
}

func (u *SkillService) invalidateFeatured(ctx context.Context) {
	if u.cache != nil {
		_ = u.cache.Delete(ctx, featuredSkillsCacheKey)
	}
}

func (u *SkillService) skillFromInput(ctx context.Context, in SkillInput) (portfolio.Skill, error) {
	s := portfolio.Skill{
		Name:        in.Name,
		CategoryID:  in.CategoryID,
		Proficiency: in.Proficiency,
		Percentage:  50,
		Icon:        in.Icon,
		Description: in.Description,
		IsFeatured:  in.IsFeatured,
		Order:       in.Order,
	}
	if s.Proficiency == "" {
		s.Proficiency = portfolio.ProficiencyIntermediate
	}
	if in.Percentage != nil {
		s.Percentage = *in.Percentage
	}
	if in.YearsExperience != nil {
		s.YearsExperience = *in.YearsExperience
	}

	if err := validateSkillFields(s); err != nil {
		return portfolio.Skill{}, err
	}

	cat, err := u.categories.GetByID(ctx, in.CategoryID)
	if err != nil {
		if errors.Is(err, repository.ErrSkillCategoryNotFound) {
			return portfolio.Skill{}, categoryFieldError(in.CategoryID)
		}
		return portfolio.Skill{}, ErrInternal
	}
	s.CategoryName = cat.Name

	return s, nil
}

func validateSkillFields(s portfolio.Skill) error {
	fe := validate.New()
	fe.Required("name", s.Name)
	fe.MaxLen("name", s.Name, 100)
	if s.CategoryID == uuid.Nil {
		fe.Add("categoryId", "this field is required")
	}
	fe.OneOf("proficiency", s.Proficiency,
		portfolio.ProficiencyBeginner, portfolio.ProficiencyIntermediate,
		portfolio.ProficiencyAdvanced, portfolio.ProficiencyExpert)
	fe.IntRange("percentage", s.Percentage, 0, 100)
	fe.MaxLen("icon", s.Icon, 100)
	fe.IntMin("yearsExperience", s.YearsExperience, 0)
	return fe.ErrOrNil()
}

func categoryFieldError(id uuid.UUID) error {
	fe := validate.New()
	fe.Add("categoryId", "invalid category: "+id.String())
	return fe
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}

func mapSkillErr(err error) error {
	if errors.Is(err, repository.ErrSkillNotFound) {
		return ErrNotFound
	}
	return ErrInternal
}
