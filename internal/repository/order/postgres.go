package order

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"boutique-backend/internal/domain"
)

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

// Create persists the order header and all lines in one transaction. The
// create_order function validates stock and active flags and raises a custom
// SQLSTATE on rejection, so a failed call leaves no partial writes behind.
func (r *postgresRepo) Create(ctx context.Context, proposal domain.OrderProposal) (int64, error) {
	linesJSON, err := json.Marshal(proposal.Lines)
	if err != nil {
		return 0, err
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var orderID int64
	if err := tx.QueryRow(ctx,
		`SELECT create_order($1, $2, $3, $4::jsonb)`,
		proposal.CustomerID, proposal.ShippingAddressID, proposal.PaymentMethodID, linesJSON,
	).Scan(&orderID); err != nil {
		return 0, translate(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return orderID, nil
}

func (r *postgresRepo) ListByCustomer(ctx context.Context, customerID int64) ([]domain.OrderSummary, error) {
	rows, err := r.pool.Query(ctx, `SELECT * FROM list_customer_orders($1)`, customerID)
	if err != nil {
		return nil, translate(err)
	}
	return r.scanSummaries(rows)
}

func (r *postgresRepo) ListAll(ctx context.Context) ([]domain.OrderSummary, error) {
	rows, err := r.pool.Query(ctx, `SELECT * FROM list_all_orders()`)
	if err != nil {
		return nil, translate(err)
	}
	return r.scanSummaries(rows)
}

func (r *postgresRepo) GetDetail(ctx context.Context, orderID int64) (*domain.Order, error) {
	var o domain.Order
	err := r.pool.QueryRow(ctx, `SELECT * FROM get_order($1)`, orderID).Scan(
		&o.ID,
		&o.Number,
		&o.CreatedAt,
		&o.Status,
		&o.Total,
		&o.CustomerName,
		&o.CustomerEmail,
		&o.PaymentMethod,
		&o.ShippingAddress,
		&o.ShippingCity,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, translate(err)
	}

	rows, err := r.pool.Query(ctx, `SELECT * FROM get_order_lines($1)`, orderID)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	for rows.Next() {
		var line domain.OrderLine
		var imageURL *string
		if err := rows.Scan(
			&line.DetailID,
			&line.Quantity,
			&line.UnitPrice,
			&line.Subtotal,
			&line.Product,
			&line.Brand,
			&line.Size,
			&line.Color,
			&line.SKU,
			&imageURL,
		); err != nil {
			r.logger.Printf("order repo: scan line order=%d err=%v", orderID, err)
			return nil, err
		}
		if imageURL != nil {
			line.ImageURL = *imageURL
		}
		o.Lines = append(o.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateStatus forwards the transition to the store; the store enforces
// terminal-state rules and raises BQ404/BQ405 on rejection.
func (r *postgresRepo) UpdateStatus(ctx context.Context, orderID int64, status string) error {
	return r.execInTx(ctx, `SELECT update_order_status($1, $2)`, orderID, status)
}

func (r *postgresRepo) Cancel(ctx context.Context, orderID int64) error {
	return r.execInTx(ctx, `SELECT cancel_order($1)`, orderID)
}

func (r *postgresRepo) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	rows, err := r.pool.Query(ctx, `SELECT * FROM list_payment_methods()`)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var methods []domain.PaymentMethod
	for rows.Next() {
		var m domain.PaymentMethod
		var description *string
		if err := rows.Scan(&m.ID, &m.Name, &description, &m.Active); err != nil {
			r.logger.Printf("order repo: scan payment method err=%v", err)
			return nil, err
		}
		if description != nil {
			m.Description = *description
		}
		methods = append(methods, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return methods, nil
}

func (r *postgresRepo) execInTx(ctx context.Context, sql string, args ...any) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return translate(err)
	}
	return tx.Commit(ctx)
}

func (r *postgresRepo) scanSummaries(rows pgx.Rows) ([]domain.OrderSummary, error) {
	defer rows.Close()

	var summaries []domain.OrderSummary
	for rows.Next() {
		var s domain.OrderSummary
		if err := rows.Scan(
			&s.ID,
			&s.Number,
			&s.CreatedAt,
			&s.Status,
			&s.Total,
			&s.CustomerName,
			&s.CustomerEmail,
			&s.PaymentMethod,
			&s.ProductCount,
		); err != nil {
			r.logger.Printf("order repo: scan summary err=%v", err)
			return nil, err
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return summaries, nil
}
