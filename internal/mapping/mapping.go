// Package mapping defines the fixed column mapping for the TP compliance
// review dataset: the short keys used in content and tooling, and the long
// display names the dashboard shows for them.
//
// The table is hardcoded configuration, not user-editable data. Downstream
// renderers only ever show the display name.
package mapping

import (
	"errors"
	"fmt"
)

// ErrUnknownKey is returned when a short key is not in the column table.
// A miss is a programmer error, not a recoverable condition.
var ErrUnknownKey = errors.New("unknown column key")

// keyOrder preserves the documented table order for listings.
var keyOrder = []string{
	"Country",
	"Region",
	"MF",
	"LF",
	"Forms",
	"CbCR",
	"Deadlines",
	"Notes",
}

var columns = map[string]string{
	"Country":   "Country / Entity",
	"Region":    "Region / Group",
	"MF":        "MF Requirements / Thresholds",
	"LF":        "LF Requirements / Thresholds",
	"Forms":     "Forms / Disclosures",
	"CbCR":      "CbCR Notifications",
	"Deadlines": "Deadlines",
	"Notes":     "Notes / Rule Notes",
}

// Lookup resolves a short key to its display column name.
func Lookup(short string) (string, error) {
	display, ok := columns[short]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, short)
	}
	return display, nil
}

// Keys returns the short keys in documented table order.
func Keys() []string {
	out := make([]string, len(keyOrder))
	copy(out, keyOrder)
	return out
}
