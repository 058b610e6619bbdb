package models

import (
	"fmt"
	"time"
)

// Book is a listing. Records arriving from the API identify themselves with
// either "_id" or "id"; Canonical folds both into ID.
type Book struct {
	ID        string    `json:"id,omitempty"`
	LegacyID  string    `json:"_id,omitempty"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Genre     string    `json:"genre,omitempty"`
	Location  string    `json:"location"`
	Contact   string    `json:"contact"`
	OwnerID   string    `json:"ownerId"`
	OwnerName string    `json:"ownerName"`
	IsRented  bool      `json:"isRented"`
	CoverURL  string    `json:"coverUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Canonical returns b with ID set to "_id" when present, else "id".
// Applying it twice yields the same record.
func (b Book) Canonical() Book {
	if b.LegacyID != "" {
		b.ID = b.LegacyID
	}
	b.LegacyID = ""
	return b
}

// CanonicalBooks canonicalizes every record. A nil input yields an empty,
// non-nil slice.
func CanonicalBooks(books []Book) []Book {
	out := make([]Book, 0, len(books))
	for _, b := range books {
		out = append(out, b.Canonical())
	}
	return out
}

// Status is the rental state shown on book cards.
func (b Book) Status() string {
	if b.IsRented {
		return "rented"
	}
	return "available"
}

func (b Book) String() string {
	s := fmt.Sprintf("[%s] %q by %s (%s, %s)", b.ID, b.Title, b.Author, b.Location, b.Status())
	if b.Genre != "" {
		s += " #" + b.Genre
	}
	return s
}
