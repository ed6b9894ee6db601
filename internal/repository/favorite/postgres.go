package favorite

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"boutique-backend/internal/domain"
)

// Custom SQLSTATE codes raised by the favorite stored functions.
var storeErrors = map[string]string{
	"BQ420": "customer not found or inactive",
	"BQ421": "an inactive article cannot be added to favorites",
	"BQ422": "article not found",
	"BQ423": "this article is not in your favorites",
}

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres stored functions.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

// Toggle flips the favorite row for the (customer, article) pair. The
// check-and-flip happens inside a single stored-function call within one
// transaction, so concurrent toggles for the same pair cannot interleave.
func (r *postgresRepo) Toggle(ctx context.Context, customerID, articleID int64) (bool, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	var added int
	if err := tx.QueryRow(ctx, `SELECT toggle_favorite($1, $2)`, customerID, articleID).Scan(&added); err != nil {
		return false, translate(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return added == 1, nil
}

// Remove deletes the favorite row for the pair. Unlike Toggle, a missing row
// is an error: the store raises BQ423 and the caller reports it as such.
func (r *postgresRepo) Remove(ctx context.Context, customerID, articleID int64) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `SELECT remove_favorite($1, $2)`, customerID, articleID); err != nil {
		return translate(err)
	}
	return tx.Commit(ctx)
}

func (r *postgresRepo) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Favorite, error) {
	rows, err := r.pool.Query(ctx, `SELECT * FROM list_customer_favorites($1)`, customerID)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var favorites []domain.Favorite
	for rows.Next() {
		var f domain.Favorite
		var description, material, primaryImage *string
		if err := rows.Scan(
			&f.ID,
			&f.ArticleID,
			&f.AddedAt,
			&f.Name,
			&description,
			&f.Brand,
			&f.Gender,
			&material,
			&f.BasePrice,
			&f.Status,
			&f.CategoryType,
			&f.CategoryOccasion,
			&primaryImage,
			&f.TotalStock,
			&f.AvailableVariants,
		); err != nil {
			r.logger.Printf("favorite repo: scan customer=%d err=%v", customerID, err)
			return nil, err
		}
		if description != nil {
			f.Description = *description
		}
		if material != nil {
			f.Material = *material
		}
		if primaryImage != nil {
			f.PrimaryImage = *primaryImage
		}
		favorites = append(favorites, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return favorites, nil
}

func translate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if msg, ok := storeErrors[pgErr.Code]; ok {
			return &domain.StoreError{Code: pgErr.Code, Message: msg}
		}
	}
	return err
}
