package handler

import (
	"portfolio-api/internal/delivery/http/dto"
	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/pkg/response"
	"portfolio-api/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillCategoryHandler struct {
	uc usecase.CategoryUsecase
}

type skillCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

type skillCategoryPatchRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
}

func NewSkillCategoryHandler(uc usecase.CategoryUsecase) *SkillCategoryHandler {
	return &SkillCategoryHandler{uc: uc}
}

func (h *SkillCategoryHandler) RegisterRoutes(public, admin fiber.Router) {
	pub := public.Group("/skill-categories")
	pub.Get("/", h.List)
	pub.Get("/:id", h.Get)

	adm := admin.Group("/skill-categories")
	adm.Post("/", h.Create)
	adm.Put("/:id", h.Update)
	adm.Patch("/:id", h.Patch)
	adm.Delete("/:id", h.Delete)
}

func (h *SkillCategoryHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillCategoryList(items))
}

func (h *SkillCategoryHandler) Get(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	cat, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillCategoryResponse(cat))
}

func (h *SkillCategoryHandler) Create(c fiber.Ctx) error {
	var req skillCategoryRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	cat, err := h.uc.Create(c.Context(), usecase.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Order:       req.Order,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewSkillCategoryResponse(cat))
}

func (h *SkillCategoryHandler) Update(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req skillCategoryRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	cat, err := h.uc.Update(c.Context(), id, usecase.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Order:       req.Order,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillCategoryResponse(cat))
}

func (h *SkillCategoryHandler) Patch(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req skillCategoryPatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	cat, err := h.uc.Patch(c.Context(), id, usecase.CategoryPatch{
		Name:        req.Name,
		Description: req.Description,
		Order:       req.Order,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillCategoryResponse(cat))
}

// Delete removes the category together with every skill assigned to it.
func (h *SkillCategoryHandler) Delete(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.NoContent(c)
}
