package order

import (
	"context"
	"errors"
	"strings"
	"testing"

	"boutique-backend/internal/domain"
)

type stubRepo struct {
	createID          int64
	createErr         error
	createCalls       int
	lastProposal      domain.OrderProposal
	summaries         []domain.OrderSummary
	listErr           error
	detail            *domain.Order
	detailErr         error
	updateStatusErr   error
	lastStatusOrderID int64
	lastStatus        string
	cancelErr         error
	lastCancelOrderID int64
	methods           []domain.PaymentMethod
	methodsErr        error
}

func (s *stubRepo) Create(_ context.Context, proposal domain.OrderProposal) (int64, error) {
	s.createCalls++
	s.lastProposal = proposal
	return s.createID, s.createErr
}

func (s *stubRepo) ListByCustomer(_ context.Context, _ int64) ([]domain.OrderSummary, error) {
	return s.summaries, s.listErr
}

func (s *stubRepo) ListAll(_ context.Context) ([]domain.OrderSummary, error) {
	return s.summaries, s.listErr
}

func (s *stubRepo) GetDetail(_ context.Context, _ int64) (*domain.Order, error) {
	return s.detail, s.detailErr
}

func (s *stubRepo) UpdateStatus(_ context.Context, orderID int64, status string) error {
	s.lastStatusOrderID = orderID
	s.lastStatus = status
	return s.updateStatusErr
}

func (s *stubRepo) Cancel(_ context.Context, orderID int64) error {
	s.lastCancelOrderID = orderID
	return s.cancelErr
}

func (s *stubRepo) ListPaymentMethods(_ context.Context) ([]domain.PaymentMethod, error) {
	return s.methods, s.methodsErr
}

func validProposal() domain.OrderProposal {
	return domain.OrderProposal{
		CustomerID:        5,
		ShippingAddressID: 3,
		PaymentMethodID:   1,
		Lines: []domain.ProposalLine{
			{VariantID: 10, Quantity: 2},
			{VariantID: 11, Quantity: 1},
		},
	}
}

func TestCreateValidationOrder(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*domain.OrderProposal)
		wantMsg string
	}{
		{"invalid customer", func(p *domain.OrderProposal) { p.CustomerID = 0 }, "invalid customer id"},
		{"missing address", func(p *domain.OrderProposal) { p.ShippingAddressID = -1 }, "a shipping address must be selected"},
		{"missing payment", func(p *domain.OrderProposal) { p.PaymentMethodID = 0 }, "a payment method must be selected"},
		{"no lines", func(p *domain.OrderProposal) { p.Lines = nil }, "order must contain at least one product"},
		{"invalid variant", func(p *domain.OrderProposal) { p.Lines[0].VariantID = 0 }, "invalid variant id"},
		{"zero quantity", func(p *domain.OrderProposal) { p.Lines[1].Quantity = 0 }, "quantity must be greater than zero"},
		{"over max quantity", func(p *domain.OrderProposal) { p.Lines[0].Quantity = 100 }, "maximum quantity per product is 99"},
		{"duplicate variants", func(p *domain.OrderProposal) { p.Lines[1].VariantID = 10 }, "order contains duplicate products"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &stubRepo{}
			svc := &Service{repo: repo}
			p := validProposal()
			tc.mutate(&p)

			resp := svc.Create(context.Background(), p)
			if resp.Success {
				t.Fatalf("expected rejection")
			}
			if resp.Message != tc.wantMsg {
				t.Fatalf("message = %q, want %q", resp.Message, tc.wantMsg)
			}
			if repo.createCalls != 0 {
				t.Fatalf("store must not be reached on validation failure")
			}
		})
	}
}

func TestCreateFirstFailingRuleWins(t *testing.T) {
	repo := &stubRepo{}
	svc := &Service{repo: repo}

	// Everything is wrong; rule 1 must win.
	resp := svc.Create(context.Background(), domain.OrderProposal{})
	if resp.Success || resp.Message != "invalid customer id" {
		t.Fatalf("expected first rule message, got %q", resp.Message)
	}
}

func TestCreateDuplicateRejectedRegardlessOfOtherFields(t *testing.T) {
	repo := &stubRepo{}
	svc := &Service{repo: repo}
	p := domain.OrderProposal{
		CustomerID:        5,
		ShippingAddressID: 3,
		PaymentMethodID:   1,
		Lines: []domain.ProposalLine{
			{VariantID: 10, Quantity: 2},
			{VariantID: 10, Quantity: 1},
		},
	}

	resp := svc.Create(context.Background(), p)
	if resp.Success || resp.Message != "order contains duplicate products" {
		t.Fatalf("expected duplicate rejection, got %+v", resp)
	}
}

func TestCreateDelegatesVerbatimOnPass(t *testing.T) {
	repo := &stubRepo{createID: 42}
	svc := &Service{repo: repo}
	p := validProposal()

	resp := svc.Create(context.Background(), p)
	if !resp.Success {
		t.Fatalf("unexpected failure: %q", resp.Message)
	}
	if resp.Data == nil || *resp.Data != 42 {
		t.Fatalf("expected order id 42, got %+v", resp.Data)
	}
	if repo.lastProposal.CustomerID != p.CustomerID || len(repo.lastProposal.Lines) != 2 {
		t.Fatalf("proposal not delegated verbatim: %+v", repo.lastProposal)
	}
}

func TestCreateStoreErrorKeepsMappedMessage(t *testing.T) {
	repo := &stubRepo{createErr: &domain.StoreError{Code: "BQ406", Message: "insufficient stock for one of the products"}}
	svc := &Service{repo: repo}

	resp := svc.Create(context.Background(), validProposal())
	if resp.Success || resp.Message != "insufficient stock for one of the products" {
		t.Fatalf("expected mapped store message, got %+v", resp)
	}
	if resp.Data != nil {
		t.Fatalf("payload must be empty on failure")
	}
}

func TestCreateUnexpectedErrorIsGeneric(t *testing.T) {
	repo := &stubRepo{createErr: errors.New("connection reset")}
	svc := &Service{repo: repo}

	resp := svc.Create(context.Background(), validProposal())
	if resp.Success {
		t.Fatalf("expected failure")
	}
	if resp.Message != unexpectedMsg {
		t.Fatalf("message = %q, want generic", resp.Message)
	}
	if strings.Contains(resp.Message, "connection reset") {
		t.Fatalf("internal detail leaked: %q", resp.Message)
	}
}

func TestOrdersByCustomerValidatesID(t *testing.T) {
	svc := &Service{repo: &stubRepo{}}
	resp := svc.OrdersByCustomer(context.Background(), 0)
	if resp.Success || resp.Message != "invalid customer id" {
		t.Fatalf("expected id validation, got %+v", resp)
	}
}

func TestOrdersByCustomerHappyPath(t *testing.T) {
	repo := &stubRepo{summaries: []domain.OrderSummary{{ID: 1, Number: "ORD-00000001"}}}
	svc := &Service{repo: repo}

	resp := svc.OrdersByCustomer(context.Background(), 5)
	if !resp.Success || len(resp.List) != 1 || resp.List[0].Number != "ORD-00000001" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestOrderDetailNotFound(t *testing.T) {
	repo := &stubRepo{detailErr: domain.ErrNotFound}
	svc := &Service{repo: repo}

	resp := svc.OrderDetail(context.Background(), 7)
	if resp.Success || resp.Message != "order not found" {
		t.Fatalf("expected not-found message, got %+v", resp)
	}
}

func TestUpdateStatusRejectsOutsideClosedSet(t *testing.T) {
	for _, status := range []string{"shipped", "SHIPPED", "Returned", "Pending ", ""} {
		repo := &stubRepo{}
		svc := &Service{repo: repo}
		resp := svc.UpdateStatus(context.Background(), 1, status)
		if resp.Success {
			t.Fatalf("status %q must be rejected", status)
		}
		if repo.lastStatus != "" {
			t.Fatalf("store must not be reached for status %q", status)
		}
	}
}

func TestUpdateStatusAcceptsClosedSet(t *testing.T) {
	for _, status := range domain.OrderStatuses {
		repo := &stubRepo{}
		svc := &Service{repo: repo}
		resp := svc.UpdateStatus(context.Background(), 1, status)
		if !resp.Success {
			t.Fatalf("status %q rejected: %q", status, resp.Message)
		}
		if repo.lastStatusOrderID != 1 || repo.lastStatus != status {
			t.Fatalf("store not called with %q", status)
		}
	}
}

func TestUpdateStatusRelaysStoreRejection(t *testing.T) {
	repo := &stubRepo{updateStatusErr: &domain.StoreError{Code: "BQ404", Message: "order not found"}}
	svc := &Service{repo: repo}

	resp := svc.UpdateStatus(context.Background(), 999, domain.StatusDelivered)
	if resp.Success || resp.Message != "order not found" {
		t.Fatalf("expected relayed store message, got %+v", resp)
	}
}

func TestCancelForwardsToStore(t *testing.T) {
	repo := &stubRepo{}
	svc := &Service{repo: repo}

	resp := svc.Cancel(context.Background(), 8)
	if !resp.Success {
		t.Fatalf("unexpected failure: %q", resp.Message)
	}
	if repo.lastCancelOrderID != 8 {
		t.Fatalf("cancel not forwarded, got order %d", repo.lastCancelOrderID)
	}

	resp = svc.Cancel(context.Background(), 0)
	if resp.Success || resp.Message != "invalid order id" {
		t.Fatalf("expected id validation, got %+v", resp)
	}
}

func TestPaymentMethods(t *testing.T) {
	repo := &stubRepo{methods: []domain.PaymentMethod{{ID: 1, Name: "Credit card", Active: true}}}
	svc := &Service{repo: repo}

	resp := svc.PaymentMethods(context.Background())
	if !resp.Success || len(resp.List) != 1 || resp.List[0].Name != "Credit card" {
		t.Fatalf("unexpected response %+v", resp)
	}
}
