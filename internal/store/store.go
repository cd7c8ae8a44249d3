// Package store keeps parsed review records in document order for the
// lifetime of the process. Document order carries no semantic weight but is
// the only deterministic order the source offers.
package store

import (
	"errors"
	"fmt"

	"github.com/JoshuaPost/TP-Dashboard/internal/review"
)

// ErrNotFound is returned by ByName when no record matches.
var ErrNotFound = errors.New("record not found")

// Store is an insertion-ordered collection of review records. Duplicate
// names are all kept: the source convention offers no uniqueness guarantee,
// and silently dropping a duplicate would lose compliance data.
type Store struct {
	records []review.Record
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Load returns a store holding the given records in order.
func Load(records []review.Record) *Store {
	s := New()
	for _, rec := range records {
		s.Add(rec)
	}
	return s
}

// Add appends a record, preserving insertion order.
func (s *Store) Add(rec review.Record) {
	s.records = append(s.records, rec)
}

// Len reports the number of stored records, duplicates included.
func (s *Store) Len() int {
	return len(s.records)
}

// All returns the records in insertion order.
func (s *Store) All() []review.Record {
	out := make([]review.Record, len(s.records))
	copy(out, s.records)
	return out
}

// ByName returns the first record with the given name in document order.
func (s *Store) ByName(name string) (review.Record, error) {
	for _, rec := range s.records {
		if rec.Name == name {
			return rec, nil
		}
	}
	return review.Record{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}
