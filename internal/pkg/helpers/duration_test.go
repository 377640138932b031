package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"1h", time.Hour},
		{" 720h ", 720 * time.Hour},
		{"0s", 0},
		{"", 5 * time.Minute},
		{"soon", 5 * time.Minute},
		{"-1h", 5 * time.Minute},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseDuration(tc.in, 5*time.Minute), "input %q", tc.in)
	}
}
