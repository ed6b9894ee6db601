package favorite

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"boutique-backend/internal/domain"
	favoriterepo "boutique-backend/internal/repository/favorite"
)

type Service struct {
	repo   favoriteRepo
	logger *log.Logger
}

type favoriteRepo interface {
	Toggle(ctx context.Context, customerID, articleID int64) (bool, error)
	Remove(ctx context.Context, customerID, articleID int64) error
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Favorite, error)
}

func New(repo favoriterepo.Repository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, logger: logger}
}

// Toggle adds the article to the customer's favorites if absent, removes it if
// present. It never reports not-found; the outcome says which way it flipped.
func (s *Service) Toggle(ctx context.Context, customerID, articleID int64) domain.Response[domain.ToggleResult] {
	if customerID <= 0 {
		return domain.Fail[domain.ToggleResult]("invalid customer id")
	}
	if articleID <= 0 {
		return domain.Fail[domain.ToggleResult]("invalid article id")
	}

	added, err := s.repo.Toggle(ctx, customerID, articleID)
	if err != nil {
		return fail[domain.ToggleResult](s.logger, "toggle", err)
	}
	msg := "article removed from favorites"
	if added {
		msg = "article added to favorites"
	}
	return domain.DoneData(msg, domain.ToggleResult{Added: added})
}

// Remove deletes the favorite explicitly. Unlike Toggle, a pair with no
// favorite row fails with its own message rather than the generic one.
func (s *Service) Remove(ctx context.Context, customerID, articleID int64) domain.Response[bool] {
	if customerID <= 0 {
		return domain.Fail[bool]("invalid customer id")
	}
	if articleID <= 0 {
		return domain.Fail[bool]("invalid article id")
	}

	if err := s.repo.Remove(ctx, customerID, articleID); err != nil {
		return fail[bool](s.logger, "remove", err)
	}
	return domain.Done[bool]("article removed from favorites")
}

func (s *Service) ListByCustomer(ctx context.Context, customerID int64) domain.Response[domain.Favorite] {
	if customerID <= 0 {
		return domain.Fail[domain.Favorite]("invalid customer id")
	}
	favorites, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return fail[domain.Favorite](s.logger, "list", err)
	}
	return domain.DoneList("favorites retrieved successfully", favorites)
}

// fail shapes a store failure into an envelope. Mapped domain rejections keep
// their message; unmapped failures carry the underlying text.
func fail[T any](logger *log.Logger, op string, err error) domain.Response[T] {
	var storeErr *domain.StoreError
	if errors.As(err, &storeErr) {
		return domain.Fail[T](storeErr.Message)
	}
	if logger != nil {
		logger.Printf("favorite service: %s: %v", op, err)
	}
	return domain.Fail[T](fmt.Sprintf("favorites operation failed: %v", err))
}
