package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePartySize(t *testing.T) {
	cases := []struct {
		text string
		want int
		ok   bool
	}{
		{"4", 4, true},
		{" 12 \n", 12, true},
		{"13", 13, true},
		{"0", 0, true},
		{"four", 0, false},
		{"4 guests", 0, false},
		{"", 0, false},
	}

	for _, tc := range cases {
		got, ok := ParsePartySize(tc.text)
		assert.Equal(t, tc.ok, ok, "text %q", tc.text)
		assert.Equal(t, tc.want, got, "text %q", tc.text)
	}
}
