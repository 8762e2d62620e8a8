package extract

// Point allocation per recovered field. The allocation sums to exactly 100;
// the cap is a safety invariant only.
const (
	amountPoints   = 40
	merchantPoints = 30
	datePoints     = 20
	itemsPoints    = 10
)

// scoreConfidence produces a 0-100 quality score from which fields were
// recovered. There is no partial credit within a field.
func scoreConfidence(hasAmount, hasMerchant, hasDate, hasItems bool) int {
	score := 0
	if hasAmount {
		score += amountPoints
	}
	if hasMerchant {
		score += merchantPoints
	}
	if hasDate {
		score += datePoints
	}
	if hasItems {
		score += itemsPoints
	}
	if score > 100 {
		score = 100
	}
	return score
}
