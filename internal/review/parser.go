package review

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// MalformedDocumentError reports the one structural violation the parser
// rejects: a content-group label with no entity heading above it to own it.
// Everything else in the human-edited source is tolerated.
type MalformedDocumentError struct {
	Line  int
	Label string
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("line %d: content group %q appears before any entity heading", e.Line, e.Label)
}

var (
	// ### Exampleland {#exampleland}
	entityAnchor = regexp.MustCompile(`^(.*?)\s*\{#([^}]*)\}$`)
	// **Thresholds & Requirements**
	boldLabel = regexp.MustCompile(`^\*\*(.+?)\*\*$`)
)

// ParseDocument parses an in-memory review document.
func ParseDocument(doc string) ([]Record, error) {
	return Parse(strings.NewReader(doc))
}

// Parse reads a review document and returns its records in document order.
// The pass is single-shot and deterministic; on error no partial record set
// is returned, because silently truncating compliance data is a worse
// failure mode than an explicit one.
func Parse(r io.Reader) ([]Record, error) {
	p := &parser{group: DefaultGroup}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++
		if err := p.consume(line, sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	p.closeRecord()
	return p.records, nil
}

// parser carries the single-pass state: the group set by the nearest `##`
// heading, the open record, and the items of the open content section
// (flushed into the record when the section or record closes).
type parser struct {
	records []Record

	group    string
	cur      *Record
	section  string
	items    []string
	paraOpen bool
}

func (p *parser) consume(line int, raw string) error {
	text := strings.TrimSpace(raw)

	switch {
	case text == "":
		p.paraOpen = false

	case strings.HasPrefix(text, "####"):
		return p.openSection(line, strings.TrimSpace(strings.TrimPrefix(text, "####")))

	case strings.HasPrefix(text, "###"):
		p.openRecord(strings.TrimSpace(strings.TrimPrefix(text, "###")))

	case strings.HasPrefix(text, "##"):
		p.closeRecord()
		p.group = strings.TrimSpace(strings.TrimPrefix(text, "##"))
		if p.group == "" {
			p.group = DefaultGroup
		}

	case strings.HasPrefix(text, "#"):
		// Document title. Equal-or-higher level than an entity heading,
		// so it also closes any open record.
		p.closeRecord()

	case strings.HasPrefix(text, ">"):
		// Preamble blockquote (provenance line), not record content.

	default:
		if m := boldLabel.FindStringSubmatch(text); m != nil {
			return p.openSection(line, m[1])
		}
		if item, ok := strings.CutPrefix(text, "- "); ok {
			p.appendItem(strings.TrimSpace(item), true)
			return nil
		}
		p.appendItem(text, false)
	}
	return nil
}

func (p *parser) openRecord(heading string) {
	p.closeRecord()

	name, anchor := heading, ""
	if m := entityAnchor.FindStringSubmatch(heading); m != nil {
		name, anchor = strings.TrimSpace(m[1]), m[2]
	}
	if anchor == "" {
		anchor = Slug(name)
	}

	p.cur = &Record{Name: name, Anchor: anchor, Group: p.group}
}

func (p *parser) openSection(line int, label string) error {
	if p.cur == nil {
		return &MalformedDocumentError{Line: line, Label: label}
	}
	p.flushSection()
	p.section = label
	return nil
}

// appendItem adds content to the open section. Bullets are one item each;
// paragraph lines fold into the previous item until a blank line, bullet or
// heading breaks the paragraph. Content before the first entity heading is
// document preamble and is skipped; content inside a record but before any
// group label lands in the catch-all "Other" bucket.
func (p *parser) appendItem(text string, bullet bool) {
	if p.cur == nil {
		return
	}
	if p.section == "" {
		p.section = "Other"
	}

	if !bullet && p.paraOpen && len(p.items) > 0 {
		p.items[len(p.items)-1] += " " + text
		return
	}
	p.items = append(p.items, text)
	p.paraOpen = !bullet
}

func (p *parser) flushSection() {
	defer func() {
		p.section = ""
		p.items = nil
		p.paraOpen = false
	}()

	if p.cur == nil || p.section == "" || len(p.items) == 0 {
		return
	}

	switch p.section {
	case labelThresholds:
		p.cur.Thresholds = append(p.cur.Thresholds, p.items...)
	case labelForms:
		p.cur.Forms = append(p.cur.Forms, p.items...)
	case labelCbCR:
		p.cur.CbCR = append(p.cur.CbCR, p.items...)
	case labelDeadlines:
		p.cur.Deadlines = append(p.cur.Deadlines, p.items...)
	case labelNotes:
		p.cur.Notes = append(p.cur.Notes, p.items...)
	default:
		if p.cur.Other == nil {
			p.cur.Other = make(map[string][]string)
		}
		p.cur.Other[p.section] = append(p.cur.Other[p.section], p.items...)
	}
}

func (p *parser) closeRecord() {
	p.flushSection()
	if p.cur != nil {
		p.records = append(p.records, *p.cur)
		p.cur = nil
	}
}
