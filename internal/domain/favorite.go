package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Favorite is one favorited article with the denormalized snapshot the store
// returns for list display. The snapshot is flattened by the store; the gateway
// never joins at read time.
type Favorite struct {
	ID                int64           `json:"id"`
	ArticleID         int64           `json:"articleId"`
	AddedAt           time.Time       `json:"addedAt"`
	Name              string          `json:"name"`
	Description       string          `json:"description,omitempty"`
	Brand             string          `json:"brand"`
	Gender            string          `json:"gender"`
	Material          string          `json:"material,omitempty"`
	BasePrice         decimal.Decimal `json:"basePrice"`
	Status            string          `json:"status"`
	CategoryType      string          `json:"categoryType"`
	CategoryOccasion  string          `json:"categoryOccasion"`
	PrimaryImage      string          `json:"primaryImage,omitempty"`
	TotalStock        int             `json:"totalStock"`
	AvailableVariants int             `json:"availableVariants"`
}

// ToggleResult reports the outcome of an idempotent favorite toggle.
type ToggleResult struct {
	Added bool `json:"added"`
}
