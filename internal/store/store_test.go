package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoshuaPost/TP-Dashboard/internal/review"
)

func TestStore_InsertionOrder(t *testing.T) {
	s := New()
	s.Add(review.Record{Name: "Germany", Group: "EMEA"})
	s.Add(review.Record{Name: "Japan", Group: "APAC"})
	s.Add(review.Record{Name: "France", Group: "EMEA"})

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, "Germany", all[0].Name)
	assert.Equal(t, "Japan", all[1].Name)
	assert.Equal(t, "France", all[2].Name)
	assert.Equal(t, 3, s.Len())
}

func TestStore_ByName(t *testing.T) {
	s := Load([]review.Record{
		{Name: "Germany", Notes: []string{"a"}},
		{Name: "France", Notes: []string{"b"}},
	})

	rec, err := s.ByName("France")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, rec.Notes)
}

func TestStore_ByName_NotFound(t *testing.T) {
	s := New()
	_, err := s.ByName("Atlantis")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_DuplicatesKept(t *testing.T) {
	s := Load([]review.Record{
		{Name: "Ruritania", Notes: []string{"first"}},
		{Name: "Ruritania", Notes: []string{"second"}},
	})

	require.Equal(t, 2, s.Len())

	// ByName resolves to the first record in document order.
	rec, err := s.ByName("Ruritania")
	require.NoError(t, err)
	assert.Equal(t, []string{"first"}, rec.Notes)
}

func TestStore_AllReturnsCopy(t *testing.T) {
	s := Load([]review.Record{{Name: "Germany"}})

	all := s.All()
	all[0].Name = "mutated"

	rec, err := s.ByName("Germany")
	require.NoError(t, err)
	assert.Equal(t, "Germany", rec.Name)
}
