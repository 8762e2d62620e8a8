package extract

import (
	"strings"
)

const defaultMaxAmount = 100000

// Options configures a Parser.
type Options struct {
	// MaxAmount is the exclusive upper sanity bound for an accepted total,
	// in native currency units. Defaults to 100000.
	MaxAmount float64

	// MonthFirst interprets purely numeric dates (e.g. "03/04/2024") as
	// MM/DD instead of the default DD/MM. The receipt format itself does
	// not disambiguate the two.
	MonthFirst bool

	// TimeSource supplies the fallback date when none is found in the text.
	TimeSource TimeSource
}

// Parser extracts a structured transaction from raw receipt text.
type Parser struct {
	maxAmount  float64
	monthFirst bool
	timeSource TimeSource
}

// NewParser creates a Parser with default options.
func NewParser() *Parser {
	return NewParserWithOptions(Options{})
}

// NewParserWithOptions creates a Parser with the given options.
func NewParserWithOptions(opts Options) *Parser {
	maxAmount := opts.MaxAmount
	if maxAmount <= 0 {
		maxAmount = defaultMaxAmount
	}
	timeSource := opts.TimeSource
	if timeSource == nil {
		timeSource = &defaultTimeSource{}
	}
	return &Parser{
		maxAmount:  maxAmount,
		monthFirst: opts.MonthFirst,
		timeSource: timeSource,
	}
}

// Parse runs the full pipeline over one receipt's raw text. It returns
// ErrEmptyInput for blank text and ErrAmountNotFound when no usable total
// could be recovered; every other missing field only lowers the confidence
// score.
func (p *Parser) Parse(rawText string) (*Result, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, ErrEmptyInput
	}

	amount, hasAmount := p.extractAmount(rawText)
	merchant, hasMerchant := extractMerchant(rawText)
	date, hasDate := p.extractDate(rawText)
	items := extractItems(rawText)

	category := Categorize(merchant, items)
	confidence := scoreConfidence(hasAmount, hasMerchant, hasDate, len(items) > 0)

	if !hasAmount {
		return nil, ErrAmountNotFound
	}

	if !hasDate {
		date = p.timeSource.Now()
	}

	return &Result{
		Amount:      amount,
		Category:    category,
		Description: buildDescription(merchant, hasMerchant, items),
		Date:        date,
		Merchant:    merchant,
		Items:       items,
		Confidence:  confidence,
	}, nil
}

// buildDescription synthesizes a display description from the merchant and
// up to the first three item descriptions.
func buildDescription(merchant string, hasMerchant bool, items []string) string {
	if !hasMerchant {
		return "Receipt purchase"
	}
	description := "Purchase at " + merchant
	if len(items) > 0 {
		head := items
		if len(head) > 3 {
			head = head[:3]
		}
		description += " - " + strings.Join(head, ", ")
	}
	return description
}
