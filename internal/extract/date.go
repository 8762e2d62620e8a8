package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date pattern tiers, tried in order. A tier whose first match is not a
// valid calendar date (day 32, month 13) falls through to the next tier
// rather than failing the extraction.
var (
	// "15/01/2024", "5-1-24"
	numericDatePattern = regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})`)
	// "15 Jan 2024", "5-Mar-24", "15 January, 2024"
	monthNameDatePattern = regexp.MustCompile(`(?i)(\d{1,2})[ \t-]*(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*[ \t,-]*(\d{2,4})`)
	// "Date: 15/01/2024", "DT 15-01-24"
	labeledDatePattern = regexp.MustCompile(`(?i)\b(?:date|dt)\b\s*[:.]?\s*(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})`)
)

var monthsByAbbrev = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// extractDate returns the most likely transaction date, or false when no
// tier yields a valid calendar date.
func (p *Parser) extractDate(text string) (time.Time, bool) {
	if matches := numericDatePattern.FindStringSubmatch(text); matches != nil {
		if date, ok := p.parseNumericDate(matches[1], matches[2], matches[3]); ok {
			return date, true
		}
	}
	if matches := monthNameDatePattern.FindStringSubmatch(text); matches != nil {
		if date, ok := parseMonthNameDate(matches[1], matches[2], matches[3]); ok {
			return date, true
		}
	}
	if matches := labeledDatePattern.FindStringSubmatch(text); matches != nil {
		if date, ok := p.parseNumericDate(matches[1], matches[2], matches[3]); ok {
			return date, true
		}
	}
	return time.Time{}, false
}

// parseNumericDate interprets the first two components per the configured
// day/month order.
func (p *Parser) parseNumericDate(first, second, year string) (time.Time, bool) {
	day, _ := strconv.Atoi(first)
	month, _ := strconv.Atoi(second)
	if p.monthFirst {
		day, month = month, day
	}
	return calendarDate(normalizeYear(year), month, day)
}

func parseMonthNameDate(dayStr, monthStr, year string) (time.Time, bool) {
	day, _ := strconv.Atoi(dayStr)
	month, ok := monthsByAbbrev[strings.ToLower(monthStr)]
	if !ok {
		return time.Time{}, false
	}
	return calendarDate(normalizeYear(year), int(month), day)
}

func normalizeYear(year string) int {
	y, _ := strconv.Atoi(year)
	if y < 100 {
		y += 2000
	}
	return y
}

// calendarDate builds a date and rejects components that time.Date would
// silently normalize (e.g. Feb 30 becoming Mar 1).
func calendarDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return time.Time{}, false
	}
	return date, true
}
