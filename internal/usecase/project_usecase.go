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
)

const featuredProjectsCacheKey = "projects:featured"

// projectOrderColumns is the ordering whitelist: external field name
// to SQL column. Anything else in ?ordering= is ignored and the
// default sort applies.
var projectOrderColumns = map[string]string{
	"order":     "display_order",
	"createdAt": "created_at",
	"title":     "title",
}

type ProjectListParams struct {
	Search   string
	Ordering string
}

type ProjectInput struct {
	Title            string
	Description      string
	ShortDescription string
	ImageURL         string
	URL              string
	GithubURL        string
	Technologies     []string
	IsFeatured       bool
	Order            int
}

type ProjectPatch struct {
	Title            *string
	Description      *string
	ShortDescription *string
	ImageURL         *string
	URL              *string
	GithubURL        *string
	Technologies     *[]string
	IsFeatured       *bool
	Order            *int
}

type ProjectUsecase interface {
	List(ctx context.Context, params ProjectListParams) ([]portfolio.Project, error)
	ListFeatured(ctx context.Context) ([]portfolio.Project, error)
	Get(ctx context.Context, id uuid.UUID) (portfolio.Project, error)
	Create(ctx context.Context, in ProjectInput) (portfolio.Project, error)
	Update(ctx context.Context, id uuid.UUID, in ProjectInput) (portfolio.Project, error)
	Patch(ctx context.Context, id uuid.UUID, in ProjectPatch) (portfolio.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Project struct {
	repo   repository.ProjectRepository
	cache  Cache
	logger *log.Logger
	now    func() time.Time
}

func NewProjectUsecase(repo repository.ProjectRepository, cache Cache, logger *log.Logger) *Project {
	return &Project{repo: repo, cache: cache, logger: logger, now: time.Now}
}

func (u *Project) List(ctx context.Context, params ProjectListParams) ([]portfolio.Project, error) {
	f := repository.ProjectListFilter{
		Search: strings.TrimSpace(params.Search),
		Order:  resolveOrdering(params.Ordering, projectOrderColumns),
	}
	items, err := u.repo.List(ctx, f)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Project) ListFeatured(ctx context.Context) ([]portfolio.Project, error) {
	if u.cache != nil {
		var cached []portfolio.Project
		hit, err := u.cache.GetJSON(ctx, featuredProjectsCacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Projects] Cache HIT: %s", featuredProjectsCacheKey)
			}
			return cached, nil
		}
	}

	items, err := u.repo.ListFeatured(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, featuredProjectsCacheKey, items, 0)
	}
	return items, nil
}

func (u *Project) Get(ctx context.Context, id uuid.UUID) (portfolio.Project, error) {
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return portfolio.Project{}, mapProjectErr(err)
	}
	return p, nil
}

func (u *Project) Create(ctx context.Context, in ProjectInput) (portfolio.Project, error) {
	p, err := projectFromInput(in)
	if err != nil {
		return portfolio.Project{}, err
	}

	now := u.now().UTC()
	p.ID = uuid.New()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := u.repo.Create(ctx, p); err != nil {
		return portfolio.Project{}, ErrInternal
	}

	u.invalidateFeatured(ctx)
	return p, nil
}

func (u *Project) Update(ctx context.Context, id uuid.UUID, in ProjectInput) (portfolio.Project, error) {
	p, err := projectFromInput(in)
	if err != nil {
		return portfolio.Project{}, err
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return portfolio.Project{}, mapProjectErr(err)
	}

	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = u.now().UTC()

	if err := u.repo.Update(ctx, p); err != nil {
		return portfolio.Project{}, mapProjectErr(err)
	}

	u.invalidateFeatured(ctx)
	return p, nil
}

func (u *Project) Patch(ctx context.Context, id uuid.UUID, in ProjectPatch) (portfolio.Project, error) {
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return portfolio.Project{}, mapProjectErr(err)
	}

	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.ShortDescription != nil {
		p.ShortDescription = *in.ShortDescription
	}
	if in.ImageURL != nil {
		p.ImageURL = *in.ImageURL
	}
	if in.URL != nil {
		p.URL = *in.URL
	}
	if in.GithubURL != nil {
		p.GithubURL = *in.GithubURL
	}
	if in.Technologies != nil {
		p.Technologies = portfolio.JoinTechnologies(*in.Technologies)
	}
	if in.IsFeatured != nil {
		p.IsFeatured = *in.IsFeatured
	}
	if in.Order != nil {
		p.Order = *in.Order
	}

	if err := validateProjectFields(p); err != nil {
		return portfolio.Project{}, err
	}
	p.UpdatedAt = u.now().UTC()

	if err := u.repo.Update(ctx, p); err != nil {
		return portfolio.Project{}, mapProjectErr(err)
	}

	u.invalidateFeatured(ctx)
	return p, nil
}

func (u *Project) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		return mapProjectErr(err)
	}
	u.invalidateFeatured(ctx)
	return nil
}

func (u *Project) invalidateFeatured(ctx context.Context) {
	if u.cache != nil {
		_ = u.cache.Delete(ctx, featuredProjectsCacheKey)
	}
}

func projectFromInput(in ProjectInput) (portfolio.Project, error) {
	p := portfolio.Project{
		Title:            in.Title,
		Description:      in.Description,
		ShortDescription: in.ShortDescription,
		ImageURL:         in.ImageURL,
		URL:              in.URL,
		GithubURL:        in.GithubURL,
		Technologies:     portfolio.JoinTechnologies(in.Technologies),
		IsFeatured:       in.IsFeatured,
		Order:            in.Order,
	}
	if err := validateProjectFields(p); err != nil {
		return portfolio.Project{}, err
	}
	return p, nil
}

func validateProjectFields(p portfolio.Project) error {
	fe := validate.New()
	fe.Required("title", p.Title)
	fe.MaxLen("title", p.Title, 200)
	fe.Required("description", p.Description)
	fe.MaxLen("shortDescription", p.ShortDescription, 300)
	fe.URL("url", p.URL)
	fe.MaxLen("url", p.URL, 200)
	fe.URL("githubUrl", p.GithubURL)
	fe.MaxLen("githubUrl", p.GithubURL, 200)
	fe.MaxLen("technologies", p.Technologies, 500)
	return fe.ErrOrNil()
}

// resolveOrdering parses a DRF-style ordering value ("title",
// "-createdAt", "order,-title") against a whitelist. Unknown names
// drop out silently.
func resolveOrdering(ordering string, allowed map[string]string) []repository.OrderClause {
	out := []repository.OrderClause{}
	for _, part := range strings.Split(ordering, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		desc := strings.HasPrefix(part, "-")
		name := strings.TrimPrefix(part, "-")
		col, ok := allowed[name]
		if !ok {
			continue
		}
		out = append(out, repository.OrderClause{Column: col, Desc: desc})
	}
	return out
}

func mapProjectErr(err error) error {
	if errors.Is(err, repository.ErrProjectNotFound) {
		return ErrNotFound
	}
	return ErrInternal
}
