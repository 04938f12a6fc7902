package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"100%", `100\%`},
		{"a_b", `a\_b`},
		{`c:\temp`, `c:\\temp`},
		{`%_\`, `\%\_\\`},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, escapeLike(tc.in), "in=%q", tc.in)
	}
}
