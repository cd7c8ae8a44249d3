// Package csvimport converts the compliance workbook's CSV export into
// review records. This is the upstream half of the pipeline: the records it
// produces are written out as the review document the parser later consumes.
package csvimport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/jszwec/csvutil"

	"github.com/JoshuaPost/TP-Dashboard/internal/mapping"
	"github.com/JoshuaPost/TP-Dashboard/internal/review"
)

// row mirrors one workbook line under the canonical display headers.
type row struct {
	Country   string `csv:"Country / Entity"`
	Region    string `csv:"Region / Group"`
	MF        string `csv:"MF Requirements / Thresholds"`
	LF        string `csv:"LF Requirements / Thresholds"`
	Forms     string `csv:"Forms / Disclosures"`
	CbCR      string `csv:"CbCR Notifications"`
	Deadlines string `csv:"Deadlines"`
	Notes     string `csv:"Notes / Rule Notes"`
}

// Options configures an import run.
type Options struct {
	// Columns maps column short keys to the headers this workbook export
	// actually uses, for exports that drifted from the canonical names.
	Columns map[string]string
	// Countries selects the jurisdictions to keep; empty keeps all rows.
	Countries []string
}

// Importer decodes workbook CSV exports into review records.
type Importer struct {
	opts      Options
	selection map[string]bool
}

// New returns an importer with the given options.
func New(opts Options) *Importer {
	im := &Importer{opts: opts}
	if len(opts.Countries) > 0 {
		im.selection = make(map[string]bool, len(opts.Countries))
		for _, c := range opts.Countries {
			if c = norm(c); c != "" {
				im.selection[c] = true
			}
		}
	}
	return im
}

// Import reads a CSV export and returns one record per selected row, in
// row order. Rows with an empty country cell are skipped. Free-text cells
// are normalized the way the upstream generator normalizes them: known form
// references become placeholder links and packed deadline cells are split
// into ordered items.
func (im *Importer) Import(r io.Reader) ([]review.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	canonical, err := im.canonicalHeader(header)
	if err != nil {
		return nil, err
	}

	dec, err := csvutil.NewDecoder(cr, canonical...)
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV decoder: %w", err)
	}

	var rows []row
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode CSV: %w", err)
	}

	var records []review.Record
	for _, rw := range rows {
		name := strings.TrimSpace(rw.Country)
		if name == "" {
			continue
		}
		if im.selection != nil && !im.selection[norm(name)] {
			continue
		}
		records = append(records, buildRecord(name, rw))
	}
	return records, nil
}

// canonicalHeader rewrites the export's header row to the canonical display
// names so the decoder can bind it to row fields. Unmapped columns pass
// through untouched and are ignored by the decoder.
func (im *Importer) canonicalHeader(header []string) ([]string, error) {
	rename := make(map[string]string, len(im.opts.Columns))
	for short, actual := range im.opts.Columns {
		display, err := mapping.Lookup(short)
		if err != nil {
			return nil, err
		}
		rename[norm(actual)] = display
	}

	out := make([]string, len(header))
	for i, h := range header {
		if display, ok := rename[norm(h)]; ok {
			out[i] = display
		} else {
			out[i] = strings.TrimSpace(h)
		}
	}
	return out, nil
}

func buildRecord(name string, r row) review.Record {
	rec := review.Record{
		Name:   name,
		Anchor: review.Slug(name),
		Group:  strings.TrimSpace(r.Region),
	}
	if rec.Group == "" {
		rec.Group = review.DefaultGroup
	}

	rec.Thresholds = []string{
		"**MF**: " + orDash(r.MF),
		"**LF**: " + orDash(r.LF),
	}
	rec.Forms = []string{orDash(review.LinkifyForms(strings.TrimSpace(r.Forms)))}
	rec.CbCR = []string{orDash(review.LinkifyForms(strings.TrimSpace(r.CbCR)))}

	rec.Deadlines = review.SplitDeadlines(r.Deadlines)
	if len(rec.Deadlines) == 0 {
		rec.Deadlines = []string{"—"}
	}

	if notes := strings.TrimSpace(r.Notes); notes != "" {
		rec.Notes = []string{notes}
	}
	return rec
}

// orDash substitutes the em-dash placeholder for empty cells, matching the
// review convention for "no requirement recorded".
func orDash(text string) string {
	if text = strings.TrimSpace(text); text == "" {
		return "—"
	}
	return text
}

var spaceRuns = regexp.MustCompile(`\s+`)

// norm collapses whitespace and lowercases, for header and selection
// matching against hand-maintained spreadsheets.
func norm(s string) string {
	return spaceRuns.ReplaceAllString(strings.TrimSpace(strings.ToLower(s)), " ")
}
