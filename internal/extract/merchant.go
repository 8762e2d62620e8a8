package extract

import "strings"

// Merchant names are a heading convention: only the first few non-empty
// lines are considered, and the window is never widened.
const merchantLineWindow = 5

// extractMerchant returns the first plausible merchant heading, or false
// when none of the first lines qualify.
func extractMerchant(text string) (string, bool) {
	seen := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		seen++
		if seen > merchantLineWindow {
			break
		}
		if isMerchantLine(line) {
			return line, true
		}
	}
	return "", false
}

func isMerchantLine(line string) bool {
	if len(line) <= 3 || len(line) >= 50 {
		return false
	}
	if strings.ContainsAny(line, "0123456789") {
		return false
	}
	lower := strings.ToLower(line)
	return !strings.Contains(lower, "receipt") && !strings.Contains(lower, "bill")
}
