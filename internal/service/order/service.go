package order

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"boutique-backend/internal/domain"
	orderrepo "boutique-backend/internal/repository/order"
)

const unexpectedMsg = "unexpected error while processing the order"

type Service struct {
	repo   orderRepo
	logger *log.Logger
}

type orderRepo interface {
	Create(ctx context.Context, proposal domain.OrderProposal) (int64, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.OrderSummary, error)
	ListAll(ctx context.Context) ([]domain.OrderSummary, error)
	GetDetail(ctx context.Context, orderID int64) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status string) error
	Cancel(ctx context.Context, orderID int64) error
	ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
}

func New(repo orderrepo.Repository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, logger: logger}
}

// Create validates the proposal against the business rules and, only when
// every rule passes, delegates it verbatim to the store gateway. Validation is
// pure: it touches no I/O and the first failing rule wins.
func (s *Service) Create(ctx context.Context, proposal domain.OrderProposal) domain.Response[int64] {
	if msg := validateProposal(proposal); msg != "" {
		return domain.Fail[int64](msg)
	}

	orderID, err := s.repo.Create(ctx, proposal)
	if err != nil {
		return fail[int64](s.logger, "create order", err)
	}
	return domain.DoneData("order created successfully", orderID)
}

func (s *Service) OrdersByCustomer(ctx context.Context, customerID int64) domain.Response[domain.OrderSummary] {
	if customerID <= 0 {
		return domain.Fail[domain.OrderSummary]("invalid customer id")
	}
	summaries, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return fail[domain.OrderSummary](s.logger, "list customer orders", err)
	}
	return domain.DoneList("orders retrieved successfully", summaries)
}

func (s *Service) AllOrders(ctx context.Context) domain.Response[domain.OrderSummary] {
	summaries, err := s.repo.ListAll(ctx)
	if err != nil {
		return fail[domain.OrderSummary](s.logger, "list all orders", err)
	}
	return domain.DoneList("orders retrieved successfully", summaries)
}

func (s *Service) OrderDetail(ctx context.Context, orderID int64) domain.Response[domain.Order] {
	if orderID <= 0 {
		return domain.Fail[domain.Order]("invalid order id")
	}
	detail, err := s.repo.GetDetail(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Fail[domain.Order]("order not found")
		}
		return fail[domain.Order](s.logger, "get order detail", err)
	}
	return domain.DoneData("order retrieved successfully", *detail)
}

// UpdateStatus accepts only the closed, case-sensitive status set; anything
// else is rejected before reaching the store.
func (s *Service) UpdateStatus(ctx context.Context, orderID int64, status string) domain.Response[bool] {
	if orderID <= 0 {
		return domain.Fail[bool]("invalid order id")
	}
	if strings.TrimSpace(status) == "" {
		return domain.Fail[bool]("status is required")
	}
	if !domain.ValidOrderStatus(status) {
		return domain.Fail[bool](fmt.Sprintf("invalid status, allowed values: %s", strings.Join(domain.OrderStatuses, ", ")))
	}

	if err := s.repo.UpdateStatus(ctx, orderID, status); err != nil {
		return fail[bool](s.logger, "update order status", err)
	}
	return domain.Done[bool]("order status updated successfully")
}

// Cancel transitions the order to Cancelled. Terminal-state restrictions live
// in the store; the service just relays the outcome.
func (s *Service) Cancel(ctx context.Context, orderID int64) domain.Response[bool] {
	if orderID <= 0 {
		return domain.Fail[bool]("invalid order id")
	}
	if err := s.repo.Cancel(ctx, orderID); err != nil {
		return fail[bool](s.logger, "cancel order", err)
	}
	return domain.Done[bool]("order cancelled successfully")
}

func (s *Service) PaymentMethods(ctx context.Context) domain.Response[domain.PaymentMethod] {
	methods, err := s.repo.ListPaymentMethods(ctx)
	if err != nil {
		return fail[domain.PaymentMethod](s.logger, "list payment methods", err)
	}
	return domain.DoneList("payment methods retrieved successfully", methods)
}

// validateProposal applies the business rules in a fixed order and returns the
// message of the first rule that fails, or "" when the proposal passes.
func validateProposal(p domain.OrderProposal) string {
	if p.CustomerID <= 0 {
		return "invalid customer id"
	}
	if p.ShippingAddressID <= 0 {
		return "a shipping address must be selected"
	}
	if p.PaymentMethodID <= 0 {
		return "a payment method must be selected"
	}
	if len(p.Lines) == 0 {
		return "order must contain at least one product"
	}
	for _, line := range p.Lines {
		if line.VariantID <= 0 {
			return "invalid variant id"
		}
		if line.Quantity <= 0 {
			return "quantity must be greater than zero"
		}
		if line.Quantity > 99 {
			return "maximum quantity per product is 99"
		}
	}
	seen := make(map[int64]bool, len(p.Lines))
	for _, line := range p.Lines {
		if seen[line.VariantID] {
			return "order contains duplicate products"
		}
		seen[line.VariantID] = true
	}
	return ""
}

// fail shapes a store failure into an envelope. Domain rejections keep their
// mapped message; anything else is reported generically and logged.
func fail[T any](logger *log.Logger, op string, err error) domain.Response[T] {
	var storeErr *domain.StoreError
	if errors.As(err, &storeErr) {
		return domain.Fail[T](storeErr.Message)
	}
	if logger != nil {
		logger.Printf("order service: %s: %v", op, err)
	}
	return domain.Fail[T](unexpectedMsg)
}
