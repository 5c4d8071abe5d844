package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"portfolio-api/internal/domain/portfolio"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/validate"

	"github.com/google/uuid"
)

const activeProfileCacheKey = "about:active"

// AboutInput carries every mutable field for create and full update.
// IsActive nil means "not supplied": true on create (the model
// default), false on full update (reset to the zero form value would
// lose the invariant's meaning, so PUT keeps the stored model default
// semantics of the serializer: default true).
type AboutInput struct {
	Name         string
	Title        string
	Bio          string
	Email        string
	Phone        string
	Location     string
	ProfileImage string
	ResumeFile   string
	LinkedinURL  string
	GithubURL    string
	TwitterURL   string
	WebsiteURL   string
	IsActive     *bool
}

// AboutPatch carries only the fields a partial update supplies.
type AboutPatch struct {
	Name         *string
	Title        *string
	Bio          *string
	Email        *string
	Phone        *string
	Location     *string
	ProfileImage *string
	ResumeFile   *string
	LinkedinURL  *string
	GithubURL    *string
	TwitterURL   *string
	WebsiteURL   *string
	IsActive     *bool
}

type AboutUsecase interface {
	List(ctx context.Context) ([]portfolio.AboutProfile, error)
	Get(ctx context.Context, id uuid.UUID) (portfolio.AboutProfile, error)
	Active(ctx context.Context) (portfolio.AboutProfile, bool, error)
	Create(ctx context.Context, in AboutInput) (portfolio.AboutProfile, error)
	Update(ctx context.Context, id uuid.UUID, in AboutInput) (portfolio.AboutProfile, error)
	Patch(ctx context.Context, id uuid.UUID, in AboutPatch) (portfolio.AboutProfile, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type About struct {
	repo   repository.AboutRepository
	cache  Cache
	logger *log.Logger
	now    func() time.Time
}

func NewAboutUsecase(repo repository.AboutRepository, cache Cache, logger *log.Logger) *About {
	return &About{repo: repo, cache: cache, logger: logger, now: time.Now}
}

func (u *About) List(ctx context.Context) ([]portfolio.AboutProfile, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *About) Get(ctx context.Context, id uuid.UUID) (portfolio.AboutProfile, error) {
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return portfolio.AboutProfile{}, mapAboutErr(err)
	}
	return p, nil
}

// Active returns the single active profile, or found=false when no
// profile is active. Never an error for the empty case.
func (u *About) Active(ctx context.Context) (portfolio.AboutProfile, bool, error) {
	if u.cache != nil {
		var cached portfolio.AboutProfile
		hit, err := u.cache.GetJSON(ctx, activeProfileCacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[About] Cache HIT: %s", activeProfileCacheKey)
			}
			return cached, true, nil
		}
	}

	p, err := u.repo.FindActive(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrAboutProfileNotFound) {
			return portfolio.AboutProfile{}, false, nil
		}
		return portfolio.AboutProfile{}, false, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, activeProfileCacheKey, p, 0)
	}
	return p, true, nil
}

func (u *About) Create(ctx context.Context, in AboutInput) (portfolio.AboutProfile, error) {
	if err := validateAboutInput(in); err != nil {
		return portfolio.AboutProfile{}, err
	}

	now := u.now().UTC()
	p := aboutFromInput(in)
	p.ID = uuid.New()
	p.IsActive = in.IsActive == nil || *in.IsActive
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := u.repo.Create(ctx, p); err != nil {
		return portfolio.AboutProfile{}, ErrInternal
	}

	u.invalidateActive(ctx)
	return p, nil
}

func (u *About) Update(ctx context.Context, id uuid.UUID, in AboutInput) (portfolio.AboutProfile, error) {
	if err := validateAboutInput(in); err != nil {
		return portfolio.AboutProfile{}, err
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return portfolio.AboutProfile{}, mapAboutErr(err)
	}

	p := aboutFromInput(in)
	p.ID = existing.ID
	p.IsActive = in.IsActive == nil || *in.IsActive
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = u.now().UTC()

	if err := u.repo.Update(ctx, p); err != nil {
		return portfolio.AboutProfile{}, mapAboutErr(err)
	}

	u.invalidateActive(ctx)
	return p, nil
}

func (u *About) Patch(ctx context.Context, id uuid.UUID, in AboutPatch) (portfolio.AboutProfile, error) {
	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return portfolio.AboutProfile{}, mapAboutErr(err)
	}

	p := applyAboutPatch(existing, in)
	if err := validateAboutInput(inputFromAbout(p)); err != nil {
		return portfolio.AboutProfile{}, err
	}
	p.UpdatedAt = u.now().UTC()

	if err := u.repo.Update(ctx, p); err != nil {
		return portfolio.AboutProfile{}, mapAboutErr(err)
	}

	u.invalidateActive(ctx)
	return p, nil
}

func (u *About) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		return mapAboutErr(err)
	}
	u.invalidateActive(ctx)
	return nil
}

func (u *About) invalidateActive(ctx context.Context) {
	if u.cache != nil {
		_ = u.cache.Delete(ctx, activeProfileCacheKey)
	}
}

func validateAboutInput(in AboutInput) error {
	fe := validate.New()
	fe.Required("name", in.Name)
	fe.MaxLen("name", in.Name, 200)
	fe.Required("title", in.Title)
	fe.MaxLen("title", in.Title, 200)
	fe.Required("bio", in.Bio)
	fe.Required("email", in.Email)
	fe.Email("email", in.Email)
	fe.MaxLen("email", in.Email, 254)
	fe.MaxLen("phone", in.Phone, 20)
	fe.MaxLen("location", in.Location, 200)
	fe.URL("linkedinUrl", in.LinkedinURL)
	fe.MaxLen("linkedinUrl", in.LinkedinURL, 200)
	fe.URL("githubUrl", in.GithubURL)
	fe.MaxLen("githubUrl", in.GithubURL, 200)
	fe.URL("twitterUrl", in.TwitterURL)
	fe.MaxLen("twitterUrl", in.TwitterURL, 200)
	fe.URL("websiteUrl", in.WebsiteURL)
	fe.MaxLen("websiteUrl", in.WebsiteURL, 200)
	return fe.ErrOrNil()
}

func aboutFromInput(in AboutInput) portfolio.AboutProfile {
	return portfolio.AboutProfile{
		Name:         in.Name,
		Title:        in.Title,
		Bio:          in.Bio,
		Email:        in.Email,
		Phone:        in.Phone,
		Location:     in.Location,
		ProfileImage: in.ProfileImage,
		ResumeFile:   in.ResumeFile,
		LinkedinURL:  in.LinkedinURL,
		GithubURL:    in.GithubURL,
		TwitterURL:   in.TwitterURL,
		WebsiteURL:   in.WebsiteURL,
	}
}

func inputFromAbout(p portfolio.AboutProfile) AboutInput {
	isActive := p.IsActive
	return AboutInput{
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
		IsActive:     &isActive,
	}
}

func applyAboutPatch(p portfolio.AboutProfile, in AboutPatch) portfolio.AboutProfile {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Bio != nil {
		p.Bio = *in.Bio
	}
	if in.Email != nil {
		p.Email = *in.Email
	}
	if in.Phone != nil {
		p.Phone = *in.Phone
	}
	if in.Location != nil {
		p.Location = *in.Location
	}
	if in.ProfileImage != nil {
		p.ProfileImage = *in.ProfileImage
	}
	if in.ResumeFile != nil {
		p.ResumeFile = *in.ResumeFile
	}
	if in.LinkedinURL != nil {
		p.LinkedinURL = *in.LinkedinURL
	}
	if in.GithubURL != nil {
		p.GithubURL = *in.GithubURL
	}
	if in.TwitterURL != nil {
		p.TwitterURL = *in.TwitterURL
	}
	if in.WebsiteURL != nil {
		p.WebsiteURL = *in.WebsiteURL
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	return p
}

func mapAboutErr(err error) error {
	if errors.Is(err, repository.ErrAboutProfileNotFound) {
		return ErrNotFound
	}
	return ErrInternal
}
