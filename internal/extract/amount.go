package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// amountPatterns are tried in order, most specific first; each captures one
// numeric token. The first pattern whose first match survives the sanity
// checks wins, so a labeled total always beats a bare currency match no
// matter where either appears or which number is larger.
var amountPatterns = []*regexp.Regexp{
	// Labeled total: "Grand Total: Rs. 450.00", "Amount Rs 120", "Payable: 99"
	regexp.MustCompile(`(?i)\b(?:grand\s+total|net\s+amount|total|amount|payable)\b\s*:?\s*(?:rs\.?|inr|₹)?\s*([0-9][0-9,]*(?:\.[0-9]{1,2})?)`),
	// Currency marker leading the number: "Rs.450", "INR 1,200.50"
	regexp.MustCompile(`(?i)(?:rs\.?|inr|₹)\s*([0-9][0-9,]*(?:\.[0-9]{1,2})?)`),
	// Currency marker trailing the number: "450.00 Rs", "120₹"
	regexp.MustCompile(`(?i)([0-9][0-9,]*(?:\.[0-9]{1,2})?)\s*(?:rs\.?|inr|₹)`),
	// Bare "total" with no currency marker at all: "Total 450"
	regexp.MustCompile(`(?i)\btotal\b\s*:?\s*([0-9][0-9,]*(?:\.[0-9]{1,2})?)`),
}

// extractAmount returns the most likely total in the text, or false when no
// pattern tier yields an acceptable value.
func (p *Parser) extractAmount(text string) (float64, bool) {
	for _, pattern := range amountPatterns {
		matches := pattern.FindStringSubmatch(text)
		if matches == nil {
			continue
		}
		if amount, ok := p.acceptAmount(matches[1]); ok {
			return amount, true
		}
	}
	return 0, false
}

// acceptAmount parses a captured numeric token and applies the sanity
// checks: finite, strictly positive, below the configured upper bound.
func (p *Parser) acceptAmount(token string) (float64, bool) {
	token = strings.ReplaceAll(token, ",", "")
	amount, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, false
	}
	if amount <= 0 || amount >= p.maxAmount {
		return 0, false
	}
	return amount, true
}
