package review

import (
	"bufio"
	"fmt"
	"io"
	"sort"
)

// DefaultTitle is the document title the upstream generator emits.
const DefaultTitle = "TP Compliance Requirements – Review Source (Editable)"

// WriteOptions controls the document preamble.
type WriteOptions struct {
	// Title overrides DefaultTitle when set.
	Title string
	// Source names where the records came from; when set it is recorded in
	// a provenance blockquote under the title.
	Source string
	// RunID identifies the generation run that produced the document.
	// Ignored unless Source is set.
	RunID string
}

// Write emits records in the review markdown convention. Group headings are
// written on group change only, sections in canonical order with drifted
// labels last (sorted, for a deterministic document), empty sections
// omitted. Writing and re-parsing yields structurally equal records.
func Write(w io.Writer, records []Record, opts WriteOptions) error {
	bw := bufio.NewWriter(w)

	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}
	fmt.Fprintf(bw, "# %s\n\n", title)

	if opts.Source != "" {
		if opts.RunID != "" {
			fmt.Fprintf(bw, "> Automatically generated from %s (run %s)\n\n", opts.Source, opts.RunID)
		} else {
			fmt.Fprintf(bw, "> Automatically generated from %s\n\n", opts.Source)
		}
	}

	group := ""
	for _, rec := range records {
		g := rec.Group
		if g == "" {
			g = DefaultGroup
		}
		if g != group {
			fmt.Fprintf(bw, "## %s\n\n", g)
			group = g
		}
		writeRecord(bw, rec)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write review document: %w", err)
	}
	return nil
}

// WriteRecord emits a single entity section, without the document preamble.
func WriteRecord(w io.Writer, rec Record) error {
	bw := bufio.NewWriter(w)
	writeRecord(bw, rec)
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write record %q: %w", rec.Name, err)
	}
	return nil
}

func writeRecord(bw *bufio.Writer, rec Record) {
	anchor := rec.Anchor
	if anchor == "" {
		anchor = Slug(rec.Name)
	}
	fmt.Fprintf(bw, "### %s {#%s}\n", rec.Name, anchor)

	writeSection(bw, labelThresholds, rec.Thresholds)
	writeSection(bw, labelForms, rec.Forms)
	writeSection(bw, labelCbCR, rec.CbCR)
	writeSection(bw, labelDeadlines, rec.Deadlines)
	writeSection(bw, labelNotes, rec.Notes)

	labels := make([]string, 0, len(rec.Other))
	for label := range rec.Other {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		writeSection(bw, label, rec.Other[label])
	}
}

func writeSection(bw *bufio.Writer, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(bw, "**%s**\n", label)
	for _, item := range items {
		fmt.Fprintf(bw, "- %s\n", item)
	}
	fmt.Fprintln(bw)
}
