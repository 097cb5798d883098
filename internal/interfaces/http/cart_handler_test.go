package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rjfoods/storefront-api/internal/application/cart"
	"github.com/rjfoods/storefront-api/internal/application/dto"
	"github.com/rjfoods/storefront-api/internal/application/usecase"
	"github.com/rjfoods/storefront-api/internal/domain/entity"
	apphttp "github.com/rjfoods/storefront-api/internal/interfaces/http"
)

type stubProductRepo struct {
	products map[string]*entity.Product
}

func (s *stubProductRepo) Create(p *entity.Product) error { return nil }
func (s *stubProductRepo) GetByID(id string) (*entity.Product, error) {
	return s.products[id], nil
}
func (s *stubProductRepo) Update(p *entity.Product) error { return nil }
func (s *stubProductRepo) Delete(id string) error         { return nil }
func (s *stubProductRepo) List(category string, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}

// buildCartApp wires the cart routes the way the router does, over a stub
// catalog with one burger and one biryani.
func buildCartApp() *fiber.App {
	repo := &stubProductRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", Name: "Beef Burger", Price: decimal.NewFromInt(650), Category: "Burgers"},
		"p2": {ID: "p2", Name: "Chicken Biryani", Price: decimal.NewFromInt(450), Category: "Rice"},
	}}
	h := apphttp.NewCartHandler(cart.NewStore(), usecase.NewProductUseCase(repo))

	app := fiber.New()
	g := app.Group("/api", apphttp.AuthMiddleware(testJWTSecret, apphttp.LoginPathUser))
	g.Get("/cart", h.Get)
	g.Delete("/cart", h.Clear)
	g.Post("/cart/items", h.Add)
	g.Patch("/cart/items/:productId", h.UpdateItem)
	g.Delete("/cart/items/:productId", h.RemoveItem)
	return app
}

func cartRequest(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenForRole(t, entity.RoleUser))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeCart(t *testing.T, resp *http.Response) dto.CartResponse {
	t.Helper()
	defer resp.Body.Close()
	var out dto.CartResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestCartAddAndGet(t *testing.T) {
	app := buildCartApp()

	// two burgers, one biryani
	for _, id := range []string{"p1", "p1", "p2"} {
		resp := cartRequest(t, app, http.MethodPost, "/api/cart/items", dto.AddCartItemRequest{ProductID: id})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}

	got := decodeCart(t, cartRequest(t, app, http.MethodGet, "/api/cart", nil))
	require.Len(t, got.Items, 2)
	assert.Equal(t, "Beef Burger", got.Items[0].Name)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.Equal(t, 3, got.Count)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(1750)), "total was %s", got.Total)
}

func TestCartAddUnknownProduct(t *testing.T) {
	app := buildCartApp()

	resp := cartRequest(t, app, http.MethodPost, "/api/cart/items", dto.AddCartItemRequest{ProductID: "nope"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCartDecrementAtOneRemovesLine(t *testing.T) {
	app := buildCartApp()

	resp := cartRequest(t, app, http.MethodPost, "/api/cart/items", dto.AddCartItemRequest{ProductID: "p2"})
	resp.Body.Close()

	got := decodeCart(t, cartRequest(t, app, http.MethodPatch, "/api/cart/items/p2", dto.UpdateCartItemRequest{Delta: -1}))
	assert.Empty(t, got.Items)
	assert.Equal(t, 0, got.Count)
}

func TestCartUpdateMissingLine(t *testing.T) {
	app := buildCartApp()

	resp := cartRequest(t, app, http.MethodPatch, "/api/cart/items/p1", dto.UpdateCartItemRequest{Delta: 1})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCartClear(t *testing.T) {
	app := buildCartApp()

	resp := cartRequest(t, app, http.MethodPost, "/api/cart/items", dto.AddCartItemRequest{ProductID: "p1"})
	resp.Body.Close()

	got := decodeCart(t, cartRequest(t, app, http.MethodDelete, "/api/cart", nil))
	assert.Empty(t, got.Items)
	assert.True(t, got.Total.IsZero())
}

func TestCartRequiresSession(t *testing.T) {
	app := buildCartApp()

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
