package review

import (
	"regexp"
	"strings"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slug derives the anchor form of an entity name: lowercase with
// non-alphanumeric runs collapsed to hyphens. Anchors are used for
// cross-document linking and are not checked for collisions.
func Slug(name string) string {
	return strings.Trim(slugPattern.ReplaceAllString(strings.ToLower(name), "-"), "-")
}

// knownForms pairs detection patterns with the canonical labels the review
// convention links them under. The links are placeholders ("#") resolved by
// the downstream dashboard.
var knownForms = []struct {
	pattern *regexp.Regexp
	label   string
}{
	{regexp.MustCompile(`(?i)\b3ceb\b`), "Form 3CEB"},
	{regexp.MustCompile(`(?i)\b17-?4\b`), "Schedule 17-4"},
	{regexp.MustCompile(`(?i)\bt106\b`), "Form T106"},
	{regexp.MustCompile(`(?i)\b232\b`), "Form 232"},
	{regexp.MustCompile(`(?i)\b275\.?\s*mf\b`), "Form 275.MF"},
	{regexp.MustCompile(`(?i)\btransaction matrix\b`), "Transaction Matrix"},
	{regexp.MustCompile(`(?i)\bcit return\b|\bincome tax return\b`), "CIT Return"},
}

// LinkifyForms wraps known TP form references in placeholder markdown links.
func LinkifyForms(text string) string {
	out := text
	for _, form := range knownForms {
		out = form.pattern.ReplaceAllString(out, "["+form.label+"](#)")
	}
	return out
}

var deadlineSeparators = regexp.MustCompile(`[|;]+`)

// SplitDeadlines converts a separator-packed deadline cell ("31 March
// (documentation) | 30 June (submission)") into ordered bullet items,
// stripping dash and whitespace decoration around each part.
func SplitDeadlines(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var out []string
	for _, part := range deadlineSeparators.Split(text, -1) {
		part = strings.Trim(part, " -–—\t")
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// UnscheduledQuarter tags deadlines that name no month.
const UnscheduledQuarter = "Unscheduled"

// monthOrder scans calendar order so a deadline naming several months is
// bucketed by the earliest one.
var monthOrder = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// Quarter roughly assigns a deadline to a calendar quarter by the first
// month name it mentions.
func Quarter(deadline string) string {
	t := strings.ToLower(deadline)
	for i, month := range monthOrder {
		if !strings.Contains(t, month) {
			continue
		}
		switch {
		case i < 3:
			return "Q1"
		case i < 6:
			return "Q2"
		case i < 9:
			return "Q3"
		default:
			return "Q4"
		}
	}
	return UnscheduledQuarter
}
