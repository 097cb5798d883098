package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rjfoods/storefront-api/internal/application/auth"
	"github.com/rjfoods/storefront-api/internal/application/cart"
	"github.com/rjfoods/storefront-api/internal/application/checkout"
	"github.com/rjfoods/storefront-api/internal/application/receipt"
	"github.com/rjfoods/storefront-api/internal/application/usecase"
	"github.com/rjfoods/storefront-api/internal/domain/repository"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ProductUC  *usecase.ProductUseCase
	OrderUC    *usecase.OrderUseCase
	PaymentUC  *usecase.PaymentUseCase
	PageUC     *usecase.PageUseCase
	UserUC     *usecase.UserUseCase
	ReportUC   *usecase.ReportUseCase
	CheckoutUC *checkout.CheckoutUseCase
	ReceiptUC  *receipt.UseCase
	Carts      *cart.Store
	Profiles   repository.ProfileRepository
	JWTSecret  string
}

// Router registers the API routes: a public group, a customer group behind the
// session guard, and the back office behind the session plus admin guards.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/admin-login", authHandler.AdminLogin)
	authGroup.Post("/verify-email", authHandler.VerifyEmail)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/reset-password", authHandler.ResetPassword)

	// Catalog and content pages (public)
	productHandler := NewProductHandler(deps.ProductUC)
	api.Get("/products", productHandler.List)
	api.Get("/products/:id", productHandler.GetByID)

	pageHandler := NewPageHandler(deps.PageUC)
	api.Get("/pages/:slug", pageHandler.Get)

	// Customer routes (require a session; 401 redirects to /login)
	user := api.Group("/", AuthMiddleware(deps.JWTSecret, LoginPathUser))

	user.Get("/auth/me", authHandler.Me)
	user.Post("/auth/resend-verification", authHandler.ResendVerification)

	userHandler := NewUserHandler(deps.UserUC)
	user.Get("/profile", userHandler.GetProfile)
	user.Put("/profile", userHandler.UpdateProfile)

	cartHandler := NewCartHandler(deps.Carts, deps.ProductUC)
	user.Get("/cart", cartHandler.Get)
	user.Delete("/cart", cartHandler.Clear)
	user.Post("/cart/items", cartHandler.Add)
	user.Patch("/cart/items/:productId", cartHandler.UpdateItem)
	user.Delete("/cart/items/:productId", cartHandler.RemoveItem)

	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	user.Get("/payment-methods", paymentHandler.ListActive)

	checkoutHandler := NewCheckoutHandler(deps.CheckoutUC)
	user.Post("/checkout", checkoutHandler.PlaceOrder)

	orderHandler := NewOrderHandler(deps.OrderUC, deps.ReceiptUC)
	user.Get("/orders", orderHandler.ListMine)
	user.Get("/orders/:id", orderHandler.GetByID)
	user.Get("/orders/:id/receipt", orderHandler.Receipt)

	// Back office (401 redirects to /admin/login; non-admin sessions get 403)
	admin := api.Group("/admin",
		AuthMiddleware(deps.JWTSecret, LoginPathAdmin), RequireAdmin(deps.Profiles))

	admin.Post("/products", productHandler.Create)
	admin.Put("/products/:id", productHandler.Update)
	admin.Delete("/products/:id", productHandler.Delete)

	admin.Get("/orders", orderHandler.ListAdmin)
	admin.Patch("/orders/:id/status", orderHandler.UpdateStatus)

	admin.Get("/payment-methods", paymentHandler.List)
	admin.Post("/payment-methods", paymentHandler.Create)
	admin.Patch("/payment-methods/:id/status", paymentHandler.UpdateStatus)

	admin.Get("/pages", pageHandler.List)
	admin.Put("/pages/:slug", pageHandler.Save)

	admin.Get("/users", userHandler.List)
	admin.Post("/users/:id/toggle-role", userHandler.ToggleRole)

	reportHandler := NewReportHandler(deps.ReportUC)
	admin.Get("/reports/summary", reportHandler.Summary)
}
