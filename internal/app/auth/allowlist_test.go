package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowListIsAdmin(t *testing.T) {
	list := NewAllowList([]string{"chair@club.org", " Treasurer@Club.org "})

	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"exact match", "chair@club.org", true},
		{"uppercase caller", "CHAIR@CLUB.ORG", true},
		{"padded caller", "  chair@club.org  ", true},
		{"entry normalized at build time", "treasurer@club.org", true},
		{"padded and mixed case both sides", " Treasurer@CLUB.org ", true},
		{"unknown email", "member@club.org", false},
		{"empty email", "", false},
		{"whitespace only", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, list.IsAdmin(tt.email))
		})
	}
}

func TestAllowListEmpty(t *testing.T) {
	assert.False(t, NewAllowList(nil).IsAdmin("anyone@club.org"))

	var nilList *AllowList
	assert.False(t, nilList.IsAdmin("anyone@club.org"))
}
