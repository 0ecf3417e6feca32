package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"test1@EXAMPLE.com", "test1@example.com"},
		{"Test2@Example.com", "Test2@example.com"},
		{"TEST3@EXAMPLE.COM", "TEST3@example.com"},
		{"test4@example.COM", "test4@example.com"},
		{"  padded@example.com  ", "padded@example.com"},
		{"no-at-sign", "no-at-sign"},
	}
	for _, tc := range cases {
		got, err := NormalizeEmail(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestNormalizeEmailRequiresValue(t *testing.T) {
	_, err := NormalizeEmail("")
	assert.ErrorIs(t, err, ErrEmailRequired)

	_, err = NormalizeEmail("   ")
	assert.ErrorIs(t, err, ErrEmailRequired)
}

func TestStringRepresentations(t *testing.T) {
	assert.Equal(t, "Steak and mushroom sauce", Recipe{Title: "Steak and mushroom sauce"}.String())
	assert.Equal(t, "Vegan", Tag{Name: "Vegan"}.String())
	assert.Equal(t, "Cucumber", Ingredient{Name: "Cucumber"}.String())
}
