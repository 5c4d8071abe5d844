package handler

import (
	"portfolio-api/internal/delivery/http/dto"
	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/pkg/response"
	"portfolio-api/internal/usecase"
	"portfolio-api/internal/validate"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

type skillRequest struct {
	Name            string `json:"name"`
	CategoryID      string `json:"categoryId"`
	Proficiency     string `json:"proficiency"`
	Percentage      *int   `json:"percentage"`
	Icon            string `json:"icon"`
	Description     string `json:"description"`
	YearsExperience *int   `json:"yearsExperience"`
	IsFeatured      bool   `json:"isFeatured"`
	Order           int    `json:"order"`
}

type skillPatchRequest struct {
	Name            *string `json:"name"`
	CategoryID      *string `json:"categoryId"`
	Proficiency     *string `json:"proficiency"`
	Percentage      *int    `json:"percentage"`
	Icon            *string `json:"icon"`
	Description     *string `json:"description"`
	YearsExperience *int    `json:"yearsExperience"`
	IsFeatured      *bool   `json:"isFeatured"`
	Order           *int    `json:"order"`
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(public, admin fiber.Router) {
	pub := public.Group("/skills")
	pub.Get("/", h.List)
	pub.Get("/featured", h.Featured)
	pub.Get("/by_category", h.ByCategory)
	pub.Get("/:id", h.Get)

	adm := admin.Group("/skills")
	adm.Post("/", h.Create)
	adm.Put("/:id", h.Update)
	adm.Patch("/:id", h.Patch)
	adm.Delete("/:id", h.Delete)
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context(), usecase.SkillListParams{
		Search:   c.Query("search"),
		Ordering: c.Query("ordering"),
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillList(items))
}

func (h *SkillHandler) Featured(c fiber.Ctx) error {
	items, err := h.uc.ListFeatured(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillList(items))
}

func (h *SkillHandler) ByCategory(c fiber.Ctx) error {
	groups, err := h.uc.ByCategory(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewGroupedCategoryList(groups))
}

func (h *SkillHandler) Get(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	s, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillResponse(s))
}

func (h *SkillHandler) Create(c fiber.Ctx) error {
	var req skillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	in, err := skillInputFromRequest(req)
	if err != nil {
		return mapUsecaseError(err)
	}
	s, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewSkillResponse(s))
}

func (h *SkillHandler) Update(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req skillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	in, err := skillInputFromRequest(req)
	if err != nil {
		return mapUsecaseError(err)
	}
	s, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillResponse(s))
}

func (h *SkillHandler) Patch(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req skillPatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	patch := usecase.SkillPatch{
		Name:            req.Name,
		Proficiency:     req.Proficiency,
		Percentage:      req.Percentage,
		Icon:            req.Icon,
		Description:     req.Description,
		YearsExperience: req.YearsExperience,
		IsFeatured:      req.IsFeatured,
		Order:           req.Order,
	}
	if req.CategoryID != nil {
		catID, err := parseCategoryID(*req.CategoryID)
		if err != nil {
			return mapUsecaseError(err)
		}
		patch.CategoryID = &catID
	}

	s, err := h.uc.Patch(c.Context(), id, patch)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillResponse(s))
}

func (h *SkillHandler) Delete(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.NoContent(c)
}

func skillInputFromRequest(req skillRequest) (usecase.SkillInput, error) {
	in := usecase.SkillInput{
		Name:            req.Name,
		Proficiency:     req.Proficiency,
		Percentage:      req.Percentage,
		Icon:            req.Icon,
		Description:     req.Description,
		YearsExperience: req.YearsExperience,
		IsFeatured:      req.IsFeatured,
		Order:           req.Order,
	}
	if req.CategoryID != "" {
		catID, err := parseCategoryID(req.CategoryID)
		if err != nil {
			return usecase.SkillInput{}, err
		}
		in.CategoryID = catID
	}
	return in, nil
}

// parseCategoryID reports a malformed category id as a field error so
// it lands in the 400 payload next to the other validation messages.
func parseCategoryID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		fe := validate.New()
		fe.Add("categoryId", "must be a valid uuid")
		return uuid.Nil, fe
	}
	return id, nil
}
