package favorite

import (
	"context"

	"boutique-backend/internal/domain"
)

type Repository interface {
	Toggle(ctx context.Context, customerID, articleID int64) (added bool, err error)
	Remove(ctx context.Context, customerID, articleID int64) error
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Favorite, error)
}
