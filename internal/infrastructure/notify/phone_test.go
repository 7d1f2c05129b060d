package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalNumber(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"9876543210", "9876543210"},
		{"+91 98765 43210", "9876543210"},
		{"919876543210", "9876543210"},
		{"98765-43210", "9876543210"},
		{"12345", ""}, // demasiado corto
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, localNumber(tc.in), "input %q", tc.in)
	}
}

func TestWANumber(t *testing.T) {
	assert.Equal(t, "919876543210", waNumber("9876543210"))
	assert.Equal(t, "919876543210", waNumber("+91 98765 43210"))
	assert.Equal(t, "", waNumber("123"))
}
