// Seeds the catalog with the demo menu. Safe to rerun: items that already
// exist (matched by name) are skipped.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rjfoods/storefront-api/internal/domain/entity"
	"github.com/rjfoods/storefront-api/internal/infrastructure/postgres"
	"github.com/rjfoods/storefront-api/pkg/config"
	"github.com/rjfoods/storefront-api/pkg/logger"
)

type seedProduct struct {
	name        string
	description string
	price       int64
	category    string
	imageURL    string
}

var menu = []seedProduct{
	{
		name:        "Mighty Zinger Burger",
		description: "Crispy fried chicken fillet topped with spicy mayo, lettuce and cheese in a sesame bun.",
		price:       650,
		category:    "Fast Food",
		imageURL:    "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
	},
	{
		name:        "Pepperoni Feast Pizza",
		description: "Large 13-inch pizza loaded with double pepperoni and extra mozzarella cheese.",
		price:       1400,
		category:    "Pizza",
		imageURL:    "https://images.unsplash.com/photo-1628840042765-356cda07504e?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
	},
	{
		name:        "Creamy Pasta Alfredo",
		description: "Fettuccine pasta tossed in rich creamy white sauce with grilled chicken chunks.",
		price:       850,
		category:    "Pasta",
		imageURL:    "https://images.unsplash.com/photo-1612874742237-6526221588e3?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
	},
	{
		name:        "Loaded Fries",
		description: "Crispy french fries topped with melted cheese, jalapeños, and special chipotle sauce.",
		price:       450,
		category:    "Appetizers",
		imageURL:    "https://images.unsplash.com/photo-1585109649139-366815a0d713?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
	},
	{
		name:        "Oreo Shake",
		description: "Thick and creamy milkshake blended with real Oreo cookies and vanilla ice cream.",
		price:       350,
		category:    "Beverages",
		imageURL:    "https://images.unsplash.com/photo-1572490122747-3968b75cc699?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
	},
	{
		name:        "Spicy Mexican Wrap",
		description: "Grilled chicken strips wrapped in tortilla with salsa, sour cream and veggies.",
		price:       550,
		category:    "Fast Food",
		imageURL:    "https://images.unsplash.com/photo-1626700051175-6818013e1d4f?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
	},
	{
		name:        "Chicken Tikka (6 Pcs)",
		description: "Traditional charcoal grilled spicy chicken tikka pieces served with mint chutney.",
		price:       700,
		category:    "BBQ",
		imageURL:    "https://images.unsplash.com/photo-1599487488170-d11ec9c172f0?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
	},
	{
		name:        "Club Sandwich",
		description: "Three layered toasted bread with chicken, egg, cheese, lettuce and tomato. Served with fries.",
		price:       550,
		category:    "Fast Food",
		imageURL:    "https://images.unsplash.com/photo-1528735602780-2552fd46c7af?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

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

	repo := postgres.NewProductRepository(pool)
	existing, err := repo.List("", 200, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("list products")
	}
	byName := make(map[string]bool, len(existing))
	for _, p := range existing {
		byName[p.Name] = true
	}

	created := 0
	for _, item := range menu {
		if byName[item.name] {
			continue
		}
		now := time.Now()
		err := repo.Create(&entity.Product{
			ID:          uuid.New().String(),
			Name:        item.name,
			Description: item.description,
			Price:       decimal.NewFromInt(item.price),
			Category:    item.category,
			ImageURL:    item.imageURL,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			log.Fatal().Err(err).Str("product", item.name).Msg("insert product")
		}
		created++
	}

	log.Info().
		Int("created", created).
		Int("skipped", len(menu)-created).
		Msg("catalog seed finished")
}
