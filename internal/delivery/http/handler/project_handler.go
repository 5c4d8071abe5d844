package handler

import (
	"portfolio-api/internal/delivery/http/dto"
	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/pkg/response"
	"portfolio-api/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProjectHandler struct {
	uc usecase.ProjectUsecase
}

type projectRequest struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"shortDescription"`
	ImageURL         string   `json:"imageUrl"`
	URL              string   `json:"url"`
	GithubURL        string   `json:"githubUrl"`
	Technologies     []string `json:"technologies"`
	IsFeatured       bool     `json:"isFeatured"`
	Order            int      `json:"order"`
}

type projectPatchRequest struct {
	Title            *string   `json:"title"`
	Description      *string   `json:"description"`
	ShortDescription *string   `json:"shortDescription"`
	ImageURL         *string   `json:"imageUrl"`
	URL              *string   `json:"url"`
	GithubURL        *string   `json:"githubUrl"`
	Technologies     *[]string `json:"technologies"`
	IsFeatured       *bool     `json:"isFeatured"`
	Order            *int      `json:"order"`
}

func NewProjectHandler(uc usecase.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

func (h *ProjectHandler) RegisterRoutes(public, admin fiber.Router) {
	pub := public.Group("/projects")
	pub.Get("/", h.List)
	pub.Get("/featured", h.Featured)
	pub.Get("/:id", h.Get)

	adm := admin.Group("/projects")
	adm.Post("/", h.Create)
	adm.Put("/:id", h.Update)
	adm.Patch("/:id", h.Patch)
	adm.Delete("/:id", h.Delete)
}

func (h *ProjectHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context(), usecase.ProjectListParams{
		Search:   c.Query("search"),
		Ordering: c.Query("ordering"),
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProjectList(items))
}

func (h *ProjectHandler) Featured(c fiber.Ctx) error {
	items, err := h.uc.ListFeatured(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProjectList(items))
}

func (h *ProjectHandler) Get(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	p, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProjectResponse(p))
}

func (h *ProjectHandler) Create(c fiber.Ctx) error {
	var req projectRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	p, err := h.uc.Create(c.Context(), projectInputFromRequest(req))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewProjectResponse(p))
}

func (h *ProjectHandler) Update(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req projectRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	p, err := h.uc.Update(c.Context(), id, projectInputFromRequest(req))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProjectResponse(p))
}

func (h *ProjectHandler) Patch(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req projectPatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	p, err := h.uc.Patch(c.Context(), id, usecase.ProjectPatch{
		Title:            req.Title,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		ImageURL:         req.ImageURL,
		URL:              req.URL,
		GithubURL:        req.GithubURL,
		Technologies:     req.Technologies,
		IsFeatured:       req.IsFeatured,
		Order:            req.Order,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProjectResponse(p))
}

func (h *ProjectHandler) Delete(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.NoContent(c)
}

func projectInputFromRequest(req projectRequest) usecase.ProjectInput {
	return usecase.ProjectInput{
		Title:            req.Title,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		ImageURL:         req.ImageURL,
		URL:              req.URL,
		GithubURL:        req.GithubURL,
		Technologies:     req.Technologies,
		IsFeatured:       req.IsFeatured,
		Order:            req.Order,
	}
}
