package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/rjfoods/storefront-api/internal/application/dto"
	"github.com/rjfoods/storefront-api/internal/application/usecase"
	"github.com/rjfoods/storefront-api/internal/domain"
)

// PaymentHandler handles HTTP requests for payment methods.
type PaymentHandler struct {
	uc *usecase.PaymentUseCase
}

// NewPaymentHandler builds the handler.
func NewPaymentHandler(uc *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// ListActive godoc
// @Summary      Payment methods offered at checkout
// @Tags         checkout
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PaymentMethodResponse
// @Router       /api/payment-methods [get]
func (h *PaymentHandler) ListActive(c *fiber.Ctx) error {
	out, err := h.uc.ListActive()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List all payment methods (back office)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PaymentMethodResponse
// @Router       /api/admin/payment-methods [get]
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Add a payment method
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePaymentMethodRequest  true  "Method data"
// @Success      201   {object}  dto.PaymentMethodResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/payment-methods [post]
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentMethodRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.Name == "" || in.Number == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name and number are required"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "a method with this name already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateStatus godoc
// @Summary      Activate or deactivate a payment method
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Method ID"
// @Param        body  body  dto.UpdatePaymentStatusRequest  true  "New status"
// @Success      200   {object}  dto.PaymentMethodResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/payment-methods/{id}/status [patch]
func (h *PaymentHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdatePaymentStatusRequest
	if err := c.BodyParser(&in); err != nil || in.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "status is required"})
	}
	out, err := h.uc.SetStatus(c.Params("id"), in.Status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status must be active or inactive"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "payment method not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
