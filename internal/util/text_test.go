package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLooksLikeCode(t *testing.T) {
	cases := []struct {
		input  string
		minLen int
		want   bool
	}{
		{"99SQ3030QD16", 6, true},
		{"99SQ3030", 6, true},
		{"SQ30", 6, false},
		{"A1", 1, true},
		{"A1", 6, false},
		{"7", 1, true},
		{"TOTAL", 1, false},
		{"Notes only", 1, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, LooksLikeCode(tc.input, tc.minLen), "%q min %d", tc.input, tc.minLen)
	}
}

func TestInitials(t *testing.T) {
	cases := map[string]string{
		"Jane Q Public":     "JQP",
		"  ada   lovelace ": "AL",
		"jane  van doe":     "JVD",
		"élodie durand":     "ÉD",
		"":                  "",
	}
	for name, want := range cases {
		assert.Equal(t, want, Initials(name), name)
	}
}

func TestPrefixAndFold(t *testing.T) {
	assert.True(t, HasAnyPrefix("10% off", "5%", "10%"))
	assert.False(t, HasAnyPrefix("price", "5%"))
	assert.True(t, ContainsFold("New PRICE list", "price"))
	assert.False(t, ContainsFold("List", "price"))
	assert.True(t, HasDigit("a1"))
	assert.False(t, HasDigit("abc"))
}
