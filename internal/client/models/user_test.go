package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_IsOwner(t *testing.T) {
	assert.True(t, User{Role: RoleOwner}.IsOwner())
	assert.False(t, User{Role: RoleSeeker}.IsOwner())
	assert.False(t, User{Role: "admin"}.IsOwner())
	assert.False(t, User{}.IsOwner())
}

func TestUser_Initials(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", "?"},
		{"blank", "   ", "?"},
		{"single word", "douglas", "D"},
		{"two words", "Douglas Adams", "DA"},
		{"middle name skipped", "Ursula K. Le Guin", "UG"},
		{"extra spaces", "  ada   lovelace ", "AL"},
		{"non-ascii", "élodie ångström", "ÉÅ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, User{Name: tt.in}.Initials())
		})
	}
}
