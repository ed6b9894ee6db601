package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type articleSeed struct {
	Name             string
	Description      string
	Brand            string
	Gender           string
	Material         string
	BasePrice        string
	CategoryType     string
	CategoryOccasion string
	Variants         []variantSeed
}

type variantSeed struct {
	SKU   string
	Size  string
	Color string
	Price string
	Stock int
}

// Apply inserts basic seed data for manual testing. It is idempotent.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	customerID, err := ensureCustomer(ctx, pool, "Maria", "Gomez", "maria@example.com")
	if err != nil {
		return fmt.Errorf("ensure customer: %w", err)
	}
	if err := ensureAddress(ctx, pool, customerID, "Calle 10 #5-23", "Bogota"); err != nil {
		return fmt.Errorf("ensure address: %w", err)
	}

	for _, m := range []string{"Credit card", "Cash on delivery", "Bank transfer"} {
		if err := ensurePaymentMethod(ctx, pool, m); err != nil {
			return fmt.Errorf("ensure payment method %s: %w", m, err)
		}
	}

	articles := []articleSeed{
		{
			Name:             "Linen Shirt",
			Description:      "Lightweight linen shirt",
			Brand:            "Casa Blanca",
			Gender:           "M",
			Material:         "Linen",
			BasePrice:        "89.90",
			CategoryType:     "Shirts",
			CategoryOccasion: "Casual",
			Variants: []variantSeed{
				{SKU: "LIN-SHIRT-M-WHT", Size: "M", Color: "White", Price: "89.90", Stock: 25},
				{SKU: "LIN-SHIRT-L-WHT", Size: "L", Color: "White", Price: "89.90", Stock: 12},
			},
		},
		{
			Name:             "Evening Dress",
			Description:      "Satin evening dress",
			Brand:            "Noche",
			Gender:           "F",
			Material:         "Satin",
			BasePrice:        "249.00",
			CategoryType:     "Dresses",
			CategoryOccasion: "Formal",
			Variants: []variantSeed{
				{SKU: "EVE-DRESS-S-BLK", Size: "S", Color: "Black", Price: "249.00", Stock: 8},
				{SKU: "EVE-DRESS-M-RED", Size: "M", Color: "Red", Price: "259.00", Stock: 5},
			},
		},
	}

	for _, a := range articles {
		if err := upsertArticle(ctx, pool, a); err != nil {
			return fmt.Errorf("upsert article %s: %w", a.Name, err)
		}
	}

	return nil
}

func ensureCustomer(ctx context.Context, pool *pgxpool.Pool, first, last, email string) (int64, error) {
	const q = `
INSERT INTO customers (first_name, last_name, email)
VALUES ($1, $2, $3)
ON CONFLICT (email) DO UPDATE SET first_name = EXCLUDED.first_name, last_name = EXCLUDED.last_name
RETURNING id
`
	var id int64
	if err := pool.QueryRow(ctx, q, first, last, email).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func ensureAddress(ctx context.Context, pool *pgxpool.Pool, customerID int64, street, city string) error {
	const q = `
INSERT INTO addresses (customer_id, street, city)
SELECT $1, $2, $3
WHERE NOT EXISTS (
    SELECT 1 FROM addresses WHERE customer_id = $1 AND street = $2 AND city = $3
)
`
	_, err := pool.Exec(ctx, q, customerID, street, city)
	return err
}

func ensurePaymentMethod(ctx context.Context, pool *pgxpool.Pool, name string) error {
	const q = `
INSERT INTO payment_methods (name)
SELECT $1
WHERE NOT EXISTS (SELECT 1 FROM payment_methods WHERE name = $1)
`
	_, err := pool.Exec(ctx, q, name)
	return err
}

func upsertArticle(ctx context.Context, pool *pgxpool.Pool, a articleSeed) error {
	const articleQ = `
INSERT INTO articles (name, description, brand, gender, material, base_price, category_type, category_occasion)
SELECT $1, $2, $3, $4, $5, $6::numeric, $7, $8
WHERE NOT EXISTS (SELECT 1 FROM articles WHERE name = $1 AND brand = $3)
`
	if _, err := pool.Exec(ctx, articleQ,
		a.Name, a.Description, a.Brand, a.Gender, a.Material, a.BasePrice, a.CategoryType, a.CategoryOccasion,
	); err != nil {
		return err
	}

	var articleID int64
	if err := pool.QueryRow(ctx, `SELECT id FROM articles WHERE name = $1 AND brand = $2`, a.Name, a.Brand).Scan(&articleID); err != nil {
		return err
	}

	const variantQ = `
INSERT INTO variants (article_id, sku, size, color, price, stock)
VALUES ($1, $2, $3, $4, $5::numeric, $6)
ON CONFLICT (sku) DO UPDATE SET price = EXCLUDED.price, stock = EXCLUDED.stock
`
	for _, v := range a.Variants {
		if _, err := pool.Exec(ctx, variantQ, articleID, v.SKU, v.Size, v.Color, v.Price, v.Stock); err != nil {
			return err
		}
	}
	return nil
}
