package extract

import (
	"regexp"
	"strings"
)

var (
	// A line is an item candidate when a number sits next to a currency
	// marker, in either order.
	itemLinePattern = regexp.MustCompile(`(?i)(?:rs\.?|inr|₹)\s*[0-9]|[0-9]\s*(?:rs\.?|inr|₹)`)

	// Total/label lines carry a price too but are not purchases.
	itemExcludePattern = regexp.MustCompile(`(?i)total|amount|payable`)

	// Tokens stripped from a candidate line to leave the description:
	// currency markers, digits, hyphens and periods.
	itemStripPattern = regexp.MustCompile(`(?i)(?:rs\.?|inr|₹)|[0-9.\-]`)

	itemSpacePattern = regexp.MustCompile(`\s+`)
)

// extractItems returns cleaned descriptions for every line that looks like a
// purchased item, in document order. No deduplication, no cap.
func extractItems(text string) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !itemLinePattern.MatchString(line) {
			continue
		}
		if itemExcludePattern.MatchString(line) {
			continue
		}
		if item := cleanItemLine(line); len(item) > 2 {
			items = append(items, item)
		}
	}
	return items
}

func cleanItemLine(line string) string {
	cleaned := itemStripPattern.ReplaceAllString(line, "")
	cleaned = itemSpacePattern.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}
