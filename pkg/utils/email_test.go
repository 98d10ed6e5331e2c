package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "founder@acme.io", NormalizeEmail("  Founder@ACME.io "))
}

func TestSplitEmail(t *testing.T) {
	local, domain, ok := SplitEmail("Jane.Doe@Startup.IO")
	assert.True(t, ok)
	assert.Equal(t, "jane.doe", local)
	assert.Equal(t, "startup.io", domain)

	for _, bad := range []string{"", "nobody", "@acme.io", "jane@", "a@b@c.io"} {
		_, _, ok := SplitEmail(bad)
		assert.False(t, ok, bad)
	}
}
