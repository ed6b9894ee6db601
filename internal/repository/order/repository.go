package order

import (
	"context"

	"boutique-backend/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, proposal domain.OrderProposal) (int64, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.OrderSummary, error)
	ListAll(ctx context.Context) ([]domain.OrderSummary, error)
	GetDetail(ctx context.Context, orderID int64) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status string) error
	Cancel(ctx context.Context, orderID int64) error
	ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
}
