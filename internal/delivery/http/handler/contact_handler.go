package handler

import (
	"portfolio-api/internal/delivery/http/dto"
	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/pkg/response"
	"portfolio-api/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ContactHandler struct {
	uc usecase.ContactUsecase
}

type contactCreateRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Phone   string `json:"phone"`
}

type contactRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Phone     string `json:"phone"`
	IsRead    bool   `json:"isRead"`
	IsReplied bool   `json:"isReplied"`
}

type contactPatchRequest struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Subject   *string `json:"subject"`
	Message   *string `json:"message"`
	Phone     *string `json:"phone"`
	IsRead    *bool   `json:"isRead"`
	IsReplied *bool   `json:"isReplied"`
}

func NewContactHandler(uc usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// RegisterRoutes keeps Create on the public router: it is the contact
// form the site visitors submit.
func (h *ContactHandler) RegisterRoutes(public, admin fiber.Router) {
	pub := public.Group("/contact")
	pub.Post("/", h.Create)

	adm := admin.Group("/contact")
	adm.Get("/", h.List)
	adm.Get("/unread", h.Unread)
	adm.Get("/:id", h.Get)
	adm.Put("/:id", h.Update)
	adm.Patch("/:id", h.Patch)
	adm.Delete("/:id", h.Delete)
	adm.Post("/:id/mark_read", h.MarkRead)
	adm.Post("/:id/mark_replied", h.MarkReplied)
}

func (h *ContactHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewContactMessageList(items))
}

func (h *ContactHandler) Unread(c fiber.Ctx) error {
	items, err := h.uc.ListUnread(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewContactMessageList(items))
}

func (h *ContactHandler) Get(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	m, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewContactMessageResponse(m))
}

func (h *ContactHandler) Create(c fiber.Ctx) error {
	var req contactCreateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	m, err := h.uc.Create(c.Context(), usecase.ContactCreateInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Phone:   req.Phone,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewContactMessageResponse(m))
}

func (h *ContactHandler) Update(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req contactRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	m, err := h.uc.Update(c.Context(), id, usecase.ContactInput{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		Phone:     req.Phone,
		IsRead:    req.IsRead,
		IsReplied: req.IsReplied,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewContactMessageResponse(m))
}

func (h *ContactHandler) Patch(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req contactPatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	m, err := h.uc.Patch(c.Context(), id, usecase.ContactPatch{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		Phone:     req.Phone,
		IsRead:    req.IsRead,
		IsReplied: req.IsReplied,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewContactMessageResponse(m))
}

func (h *ContactHandler) MarkRead(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	m, err := h.uc.MarkRead(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewContactMessageResponse(m))
}

func (h *ContactHandler) MarkReplied(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	m, err := h.uc.MarkReplied(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewContactMessageResponse(m))
}

func (h *ContactHandler) Delete(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.NoContent(c)
}
