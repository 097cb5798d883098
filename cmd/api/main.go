package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/rjfoods/storefront-api/internal/application/auth"
	"github.com/rjfoods/storefront-api/internal/application/cart"
	"github.com/rjfoods/storefront-api/internal/application/checkout"
	"github.com/rjfoods/storefront-api/internal/application/receipt"
	"github.com/rjfoods/storefront-api/internal/application/usecase"
	"github.com/rjfoods/storefront-api/internal/infrastructure/mail"
	infrapdf "github.com/rjfoods/storefront-api/internal/infrastructure/pdf"
	"github.com/rjfoods/storefront-api/internal/infrastructure/postgres"
	httpRouter "github.com/rjfoods/storefront-api/internal/interfaces/http"
	"github.com/rjfoods/storefront-api/pkg/config"
	"github.com/rjfoods/storefront-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(cfg.DB); err != nil {
			log.Fatal().Err(err).Msg("database migrations")
		}
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	profileRepo := postgres.NewProfileRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	paymentRepo := postgres.NewPaymentMethodRepository(pool)
	pageRepo := postgres.NewPageContentRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	mailer := mail.New(cfg.SMTP, log)
	carts := cart.NewStore()

	authUC := auth.NewAuthUseCase(profileRepo, mailer, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, auth.AdminConfig{
		EmailPrefix:    cfg.Admin.EmailPrefix,
		BootstrapEmail: cfg.Admin.BootstrapEmail,
	})

	productUC := usecase.NewProductUseCase(productRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo)
	paymentUC := usecase.NewPaymentUseCase(paymentRepo)
	pageUC := usecase.NewPageUseCase(pageRepo)
	userUC := usecase.NewUserUseCase(profileRepo)
	reportUC := usecase.NewReportUseCase(orderRepo)
	checkoutUC := checkout.NewCheckoutUseCase(carts, paymentRepo, txRunner)
	receiptUC := receipt.NewUseCase(orderRepo, infrapdf.NewReceiptGenerator(cfg.App.Name))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "RJ Foods Storefront API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ProductUC:  productUC,
		OrderUC:    orderUC,
		PaymentUC:  paymentUC,
		PageUC:     pageUC,
		UserUC:     userUC,
		ReportUC:   reportUC,
		CheckoutUC: checkoutUC,
		ReceiptUC:  receiptUC,
		Carts:      carts,
		Profiles:   profileRepo,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
