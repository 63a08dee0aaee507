package domain

import "time"

// Cost statuses recognized by budget analytics; other values are stored and
// counted but not categorized.
const (
	CostPlanned = "planned"
	CostPaid    = "paid"
	CostPending = "pending"
)

// CostCategoryDefault is applied when a new cost omits a category.
const CostCategoryDefault = "other"

// Cost is a budget line item owned by exactly one organizer.
type Cost struct {
	ID          int64   `json:"id"`
	OwnerID     int64   `json:"user_id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	Vendor      string  `json:"vendor,omitempty"`
	Notes       string  `json:"notes,omitempty"`

	PaymentDate *Date `json:"payment_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
