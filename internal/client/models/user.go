package models

import (
	"strings"
	"unicode/utf8"
)

// Role is the account kind chosen at registration.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleSeeker Role = "seeker"
)

// User is the identity confirmed by the API. ID is always the server's
// canonical identifier.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IsOwner reports whether the user may list books. Unknown roles are
// treated like seekers.
func (u User) IsOwner() bool {
	return u.Role == RoleOwner
}

// Initials returns the upper-cased first letters of the first and last
// name parts, one letter for a single-word name, or "?" without a name.
func (u User) Initials() string {
	parts := strings.Fields(u.Name)
	switch len(parts) {
	case 0:
		return "?"
	case 1:
		return strings.ToUpper(firstRune(parts[0]))
	default:
		return strings.ToUpper(firstRune(parts[0]) + firstRune(parts[len(parts)-1]))
	}
}

func firstRune(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	return string(r)
}
