package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBook_Canonical(t *testing.T) {
	tests := []struct {
		name string
		in   Book
		want string
	}{
		{"only _id", Book{LegacyID: "665f1c"}, "665f1c"},
		{"only id", Book{ID: "b-1"}, "b-1"},
		{"both prefer _id", Book{ID: "b-1", LegacyID: "665f1c"}, "665f1c"},
		{"neither", Book{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := tt.in.Canonical()
			assert.Equal(t, tt.want, once.ID)
			assert.Empty(t, once.LegacyID)

			assert.Equal(t, once, once.Canonical(), "canonicalization must be idempotent")
		})
	}
}

func TestBook_DecodeHeterogeneousIdentifiers(t *testing.T) {
	payload := `[
		{"_id":"665f1c","title":"Dune","author":"Frank Herbert","location":"Pune","contact":"a@b.com","ownerId":"u1","ownerName":"Ana","isRented":false,"createdAt":"2024-05-01T10:00:00.000Z"},
		{"id":"b-2","title":"Emma","author":"Jane Austen","location":"Goa","contact":"c@d.com","ownerId":"u1","ownerName":"Ana","isRented":true}
	]`

	var raw []Book
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))

	books := CanonicalBooks(raw)
	require.Len(t, books, 2)
	assert.Equal(t, "665f1c", books[0].ID)
	assert.Equal(t, 2024, books[0].CreatedAt.Year())
	assert.Equal(t, "b-2", books[1].ID)
	assert.True(t, books[1].IsRented)
}

func TestCanonicalBooks_NilIsEmpty(t *testing.T) {
	got := CanonicalBooks(nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBook_String(t *testing.T) {
	b := Book{ID: "x1", Title: "Dune", Author: "Frank Herbert", Location: "Pune", Genre: "Science Fiction", IsRented: true}
	assert.Equal(t, `[x1] "Dune" by Frank Herbert (Pune, rented) #Science Fiction`, b.String())

	b.IsRented = false
	b.Genre = ""
	assert.Equal(t, `[x1] "Dune" by Frank Herbert (Pune, available)`, b.String())
}
