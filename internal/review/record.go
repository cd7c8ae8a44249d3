// Package review parses and writes the TP compliance review markdown
// convention: one `###` section per jurisdiction, grouped under `##`
// headings, with bold content-group labels and bullet lists underneath.
//
// The parser is deliberately line-oriented rather than a markdown AST walk:
// the convention is a verbatim-preserving line protocol, and the round-trip
// guarantee (parse, write, parse again, equal records) requires keeping
// bullet text exactly as authored, inline links included.
package review

// DefaultGroup is the organizational bucket for entities that appear
// before any `##` heading.
const DefaultGroup = "Unassigned"

// The five known content-group labels, in the canonical order the
// review document lists them.
const (
	labelThresholds = "Thresholds & Requirements"
	labelForms      = "Forms & Disclosures"
	labelCbCR       = "CbCR Notifications"
	labelDeadlines  = "Deadlines"
	labelNotes      = "Notes"
)

// Record is one jurisdiction's compliance profile as authored in the
// review document. It is created once by the parser or the importer and
// never mutated afterwards.
//
// Every content group holds ordered items: each bullet is one item,
// verbatim after the "- " marker; consecutive paragraph lines fold into a
// single item. Labels outside the known five land in Other, keyed by the
// label as written - the source is human-edited and expected to drift, so
// unknown sections are kept rather than rejected.
type Record struct {
	Name   string `json:"name"`
	Anchor string `json:"anchor"`
	Group  string `json:"group"`

	Thresholds []string `json:"thresholds,omitempty"`
	Forms      []string `json:"forms,omitempty"`
	CbCR       []string `json:"cbcr_notifications,omitempty"`
	Deadlines  []string `json:"deadlines,omitempty"`
	Notes      []string `json:"notes,omitempty"`

	Other map[string][]string `json:"other,omitempty"`
}
