package transaction

import (
	"time"

	"github.com/spendlens/spendlens/internal/extract"
)

// Transaction is a financial record built from one parsed receipt
type Transaction struct {
	ID          string           `json:"id"`
	Merchant    string           `json:"merchant,omitempty"`
	Description string           `json:"description"`
	Category    extract.Category `json:"category"`
	Date        time.Time        `json:"date"`
	Amount      int              `json:"amount"` // Amount in paise
	Items       []string         `json:"items,omitempty"`
	Confidence  int              `json:"confidence"`
	Filename    string           `json:"filename"`
	ContentType string           `json:"content_type"`
	RawText     string           `json:"raw_text,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
