package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXSSSanitizeStripsScripts(t *testing.T) {
	assert.Equal(t, "hello ", XSSSanitize("hello <script>alert(1)</script>"))
}

func TestXSSSanitizeKeepsPlainText(t *testing.T) {
	assert.Equal(t, "how do I bake bread?", XSSSanitize("how do I bake bread?"))
	// Angle brackets in prose survive the unescape step.
	assert.Equal(t, "x < y", XSSSanitize("x < y"))
}
