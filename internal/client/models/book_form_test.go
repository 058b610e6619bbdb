package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() BookForm {
	return BookForm{
		Title:    "The Hitchhiker's Guide to the Galaxy",
		Author:   "Douglas Adams",
		Location: "Bengaluru",
		Contact:  "a@b.com",
	}
}

func TestBookForm_Validate_OK(t *testing.T) {
	require.NoError(t, validForm().Validate())

	f := validForm()
	f.Genre = "Science Fiction"
	f.CoverURL = "https://images.example.com/cover.jpg"
	require.NoError(t, f.Validate())
}

func TestBookForm_Validate_EmptyTitle(t *testing.T) {
	f := BookForm{Title: "", Author: "Douglas Adams", Location: "Bengaluru", Contact: "a@b.com"}

	err := f.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 1)

	msg, ok := verr.Message("title")
	require.True(t, ok)
	assert.Equal(t, "Title is required", msg)
}

func TestBookForm_Validate_AllRequiredMissing(t *testing.T) {
	err := BookForm{}.Validate()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	want := map[string]string{
		"title":    "Title is required",
		"author":   "Author is required",
		"location": "Location is required",
		"contact":  "Contact information is required",
	}
	require.Len(t, verr.Fields, len(want))
	for field, msg := range want {
		got, ok := verr.Message(field)
		assert.True(t, ok, field)
		assert.Equal(t, msg, got)
	}
	_, ok := verr.Message("genre")
	assert.False(t, ok, "genre is optional")
	assert.Contains(t, err.Error(), "title: Title is required")
}

func TestBookForm_Validate_BadCoverURL(t *testing.T) {
	f := validForm()
	f.CoverURL = "not a url"

	var verr *ValidationError
	require.ErrorAs(t, f.Validate(), &verr)
	msg, ok := verr.Message("coverUrl")
	require.True(t, ok)
	assert.Equal(t, "Cover URL must be a valid URL", msg)
}

func TestNewBookFor_Payload(t *testing.T) {
	owner := User{ID: "665f00", Name: "Ana Silva", Role: RoleOwner}
	nb := NewBookFor(validForm(), owner)

	b, err := json.Marshal(nb)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "665f00", m["ownerId"])
	assert.Equal(t, "Ana Silva", m["ownerName"])
	assert.Equal(t, false, m["isRented"])
	assert.Equal(t, "Douglas Adams", m["author"])
	assert.NotContains(t, m, "genre")
	assert.NotContains(t, m, "coverUrl")
}
