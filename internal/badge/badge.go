// Package badge resolves the short status badges the dashboard summary
// view shows next to each jurisdiction. The taxonomy is fixed and updated
// independently of the column mapping, which is why it lives in its own
// table.
package badge

import (
	"errors"
	"fmt"
	"strings"

	"github.com/JoshuaPost/TP-Dashboard/internal/review"
)

// ErrUnknownCode is returned when a badge code is not in the taxonomy.
var ErrUnknownCode = errors.New("unknown badge code")

// codeOrder preserves the documented legend order. Codes stay at four
// characters or fewer by convention; the table does not enforce it.
var codeOrder = []string{"MF", "MF*", "LF", "LF*", "Fm", "Nt"}

var meanings = map[string]string{
	"MF":  "Master File",
	"MF*": "Master File Form",
	"LF":  "Local File",
	"LF*": "Local File Form",
	"Fm":  "Forms / Disclosures",
	"Nt":  "CbCR Notification",
}

// Resolve returns the meaning of a badge code.
func Resolve(code string) (string, error) {
	meaning, ok := meanings[code]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCode, code)
	}
	return meaning, nil
}

// Codes returns the badge codes in legend order.
func Codes() []string {
	out := make([]string, len(codeOrder))
	copy(out, codeOrder)
	return out
}

// For derives the badge codes that apply to a record: MF and LF when the
// matching threshold bullet carries content, Fm when any forms bullet does,
// Nt when any CbCR notification does. The em-dash placeholder the importer
// writes for empty cells does not count as content.
func For(rec review.Record) []string {
	var out []string
	if hasThreshold(rec, "MF") {
		out = append(out, "MF")
	}
	if hasThreshold(rec, "LF") {
		out = append(out, "LF")
	}
	if hasContent(rec.Forms) {
		out = append(out, "Fm")
	}
	if hasContent(rec.CbCR) {
		out = append(out, "Nt")
	}
	return out
}

func hasThreshold(rec review.Record, code string) bool {
	prefix := "**" + code + "**:"
	for _, item := range rec.Thresholds {
		rest, ok := strings.CutPrefix(item, prefix)
		if ok && isContent(rest) {
			return true
		}
	}
	return false
}

func hasContent(items []string) bool {
	for _, item := range items {
		if isContent(item) {
			return true
		}
	}
	return false
}

func isContent(text string) bool {
	text = strings.TrimSpace(text)
	return text != "" && text != "—"
}
