package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rjfoods/storefront-api/internal/application/cart"
	"github.com/rjfoods/storefront-api/internal/application/dto"
	"github.com/rjfoods/storefront-api/internal/application/usecase"
)

// CartHandler handles HTTP requests for the signed-in user's cart.
type CartHandler struct {
	carts    *cart.Store
	products *usecase.ProductUseCase
}

// NewCartHandler builds the handler.
func NewCartHandler(carts *cart.Store, products *usecase.ProductUseCase) *CartHandler {
	return &CartHandler{carts: carts, products: products}
}

// Get godoc
// @Summary      Current cart
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.cartResponse(GetUserID(c)))
}

// Add godoc
// @Summary      Add one unit of a product to the cart
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCartItemRequest  true  "Product to add"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cart/items [post]
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil || in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "product_id is required"})
	}
	// Snapshot the catalog data into the cart line at add time.
	product, err := h.products.GetEntity(in.ProductID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "product not found"})
	}
	userID := GetUserID(c)
	h.carts.Add(userID, product)
	return c.JSON(h.cartResponse(userID))
}

// UpdateItem godoc
// @Summary      Adjust a cart line's quantity by a delta
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        productId  path  string  true  "Product ID"
// @Param        body       body  dto.UpdateCartItemRequest  true  "Quantity delta"
// @Success      200        {object}  dto.CartResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Router       /api/cart/items/{productId} [patch]
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateCartItemRequest
	if err := c.BodyParser(&in); err != nil || in.Delta == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "delta must be non-zero"})
	}
	userID := GetUserID(c)
	if !h.carts.UpdateQuantity(userID, c.Params("productId"), in.Delta) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "product is not in the cart"})
	}
	return c.JSON(h.cartResponse(userID))
}

// RemoveItem godoc
// @Summary      Remove a cart line
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "Product ID"
// @Success      200        {object}  dto.CartResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Router       /api/cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if !h.carts.Remove(userID, c.Params("productId")) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "product is not in the cart"})
	}
	return c.JSON(h.cartResponse(userID))
}

// Clear godoc
// @Summary      Empty the cart
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	userID := GetUserID(c)
	h.carts.Clear(userID)
	return c.JSON(h.cartResponse(userID))
}

func (h *CartHandler) cartResponse(userID string) *dto.CartResponse {
	items := h.carts.Items(userID)
	out := &dto.CartResponse{
		Items: make([]dto.CartItemResponse, 0, len(items)),
		Count: h.carts.Count(userID),
		Total: h.carts.Total(userID),
	}
	for _, it := range items {
		out.Items = append(out.Items, dto.CartItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Category:  it.Category,
			ImageURL:  it.ImageURL,
			Quantity:  it.Quantity,
			Subtotal:  it.Subtotal(),
		})
	}
	return out
}
