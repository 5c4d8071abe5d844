package handler

import (
	"portfolio-api/internal/delivery/http/dto"
	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/pkg/response"
	"portfolio-api/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AboutHandler struct {
	uc usecase.AboutUsecase
}

type aboutRequest struct {
	Name         string `json:"name"`
	Title        string `json:"title"`
	Bio          string `json:"bio"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	ProfileImage string `json:"profileImage"`
	ResumeFile   string `json:"resumeFile"`
	LinkedinURL  string `json:"linkedinUrl"`
	GithubURL    string `json:"githubUrl"`
	TwitterURL   string `json:"twitterUrl"`
	WebsiteURL   string `json:"websiteUrl"`
	IsActive     *bool  `json:"isActive"`
}

type aboutPatchRequest struct {
	Name         *string `json:"name"`
	Title        *string `json:"title"`
	Bio          *string `json:"bio"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Location     *string `json:"location"`
	ProfileImage *string `json:"profileImage"`
	ResumeFile   *string `json:"resumeFile"`
	LinkedinURL  *string `json:"linkedinUrl"`
	GithubURL    *string `json:"githubUrl"`
	TwitterURL   *string `json:"twitterUrl"`
	WebsiteURL   *string `json:"websiteUrl"`
	IsActive     *bool   `json:"isActive"`
}

func NewAboutHandler(uc usecase.AboutUsecase) *AboutHandler {
	return &AboutHandler{uc: uc}
}

func (h *AboutHandler) RegisterRoutes(public, admin fiber.Router) {
	pub := public.Group("/about")
	pub.Get("/", h.List)
	pub.Get("/active", h.Active)
	pub.Get("/:id", h.Get)

	adm := admin.Group("/about")
	adm.Post("/", h.Create)
	adm.Put("/:id", h.Update)
	adm.Patch("/:id", h.Patch)
	adm.Delete("/:id", h.Delete)
}

func (h *AboutHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAboutProfileList(items))
}

// Active returns {} rather than a 404 when no profile is active, so
// the public site can always render the endpoint.
func (h *AboutHandler) Active(c fiber.Ctx) error {
	p, found, err := h.uc.Active(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	if !found {
		return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAboutProfileResponse(p))
}

func (h *AboutHandler) Get(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	p, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAboutProfileResponse(p))
}

func (h *AboutHandler) Create(c fiber.Ctx) error {
	var req aboutRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	p, err := h.uc.Create(c.Context(), aboutInputFromRequest(req))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewAboutProfileResponse(p))
}

func (h *AboutHandler) Update(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req aboutRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	p, err := h.uc.Update(c.Context(), id, aboutInputFromRequest(req))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAboutProfileResponse(p))
}

func (h *AboutHandler) Patch(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req aboutPatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	p, err := h.uc.Patch(c.Context(), id, usecase.AboutPatch{
		Name:         req.Name,
		Title:        req.Title,
		Bio:          req.Bio,
		Email:        req.Email,
		Phone:        req.Phone,
		Location:     req.Location,
		ProfileImage: req.ProfileImage,
		ResumeFile:   req.ResumeFile,
		LinkedinURL:  req.LinkedinURL,
		GithubURL:    req.GithubURL,
		TwitterURL:   req.TwitterURL,
		WebsiteURL:   req.WebsiteURL,
		IsActive:     req.IsActive,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAboutProfileResponse(p))
}

func (h *AboutHandler) Delete(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.NoContent(c)
}

func aboutInputFromRequest(req aboutRequest) usecase.AboutInput {
	return usecase.AboutInput{
		Name:         req.Name,
		Title:        req.Title,
		Bio:          req.Bio,
		Email:        req.Email,
		Phone:        req.Phone,
		Location:     req.Location,
		ProfileImage: req.ProfileImage,
		ResumeFile:   req.ResumeFile,
		LinkedinURL:  req.LinkedinURL,
		GithubURL:    req.GithubURL,
		TwitterURL:   req.TwitterURL,
		WebsiteURL:   req.WebsiteURL,
		IsActive:     req.IsActive,
	}
}
