package order

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"boutique-backend/internal/domain"
)

// Custom SQLSTATE codes raised by the order stored functions. The set is
// closed; anything outside it is treated as an infrastructure failure.
var storeErrors = map[string]string{
	"BQ404": "order not found",
	"BQ405": "the order status does not allow this change",
	"BQ406": "insufficient stock for one of the products",
	"BQ407": "one of the products is no longer available",
	"BQ408": "customer not found or inactive",
	"BQ409": "shipping address not found",
	"BQ410": "payment method not available",
}

// translate maps a vendor error into the domain vocabulary. Unmapped codes and
// non-postgres errors pass through untouched for the service to wrap generically.
func translate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if msg, ok := storeErrors[pgErr.Code]; ok {
			return &domain.StoreError{Code: pgErr.Code, Message: msg}
		}
	}
	return err
}
