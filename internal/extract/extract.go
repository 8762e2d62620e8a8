// Package extract turns raw OCR text from a purchase receipt into a
// structured transaction: amount, merchant, date, line items, spending
// category and a confidence score. It performs no I/O and holds no state
// across calls; text recognition and persistence live elsewhere.
package extract

import (
	"errors"
	"time"
)

// Category is one of a closed set of spending categories.
type Category string

const (
	CategoryFoodAndDining  Category = "Food & Dining"
	CategoryTransportation Category = "Transportation"
	CategoryShopping       Category = "Shopping"
	CategoryHealthcare     Category = "Healthcare"
	CategoryUtilities      Category = "Utilities"
	CategoryEntertainment  Category = "Entertainment"
	CategoryOthers         Category = "Others"
)

var (
	// ErrEmptyInput is returned when the raw text is empty or whitespace only.
	ErrEmptyInput = errors.New("empty input")

	// ErrAmountNotFound is returned when no plausible total could be recovered.
	ErrAmountNotFound = errors.New("amount not found")
)

// Result is the outcome of a successful parse. Amount is always present and
// positive; Merchant and Items may be empty; Date falls back to the current
// time when no date could be recovered.
type Result struct {
	Amount      float64   `json:"amount"`
	Category    Category  `json:"category"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Merchant    string    `json:"merchant,omitempty"`
	Items       []string  `json:"items,omitempty"`
	Confidence  int       `json:"confidence"`
}

// TimeSource provides the current time.
type TimeSource interface {
	Now() time.Time
}

// defaultTimeSource provides the current time
type defaultTimeSource struct{}

func (t *defaultTimeSource) Now() time.Time {
	return time.Now()
}
