package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/rjfoods/storefront-api/internal/application/dto"
	"github.com/rjfoods/storefront-api/internal/application/usecase"
	"github.com/rjfoods/storefront-api/internal/domain"
)

// PageHandler handles HTTP requests for content pages.
type PageHandler struct {
	uc *usecase.PageUseCase
}

// NewPageHandler builds the handler.
func NewPageHandler(uc *usecase.PageUseCase) *PageHandler {
	return &PageHandler{uc: uc}
}

// Get godoc
// @Summary      Get a content page by slug
// @Tags         pages
// @Produce      json
// @Param        slug  path  string  true  "Page slug"
// @Success      200   {object}  dto.PageContentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pages/{slug} [get]
func (h *PageHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "page not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List every editable page (back office)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PageContentResponse
// @Router       /api/admin/pages [get]
func (h *PageHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Save godoc
// @Summary      Save a page override
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        slug  path  string  true  "Page slug"
// @Param        body  body  dto.SavePageRequest  true  "Title and content"
// @Success      200   {object}  dto.PageContentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/pages/{slug} [put]
func (h *PageHandler) Save(c *fiber.Ctx) error {
	var in dto.SavePageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.Title == "" || in.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title and content are required"})
	}
	out, err := h.uc.Save(c.Params("slug"), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
