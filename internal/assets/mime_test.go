package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMimeType(t *testing.T) {
	cases := map[string]string{
		"index.html":   "text/html",
		"style.css":    "text/css",
		"app.js":       "application/javascript",
		"data.json":    "application/json",
		"logo.svg":     "image/svg+xml",
		"README.md":    "text/plain",
		"Dockerfile":   "text/plain",
		"untitled":     "text/plain",
		"UPPER.HTML":   "text/html",
		"js/nested.js": "application/javascript",
	}
	for name, want := range cases {
		assert.Equal(t, want, MimeType(name), "name %q", name)
	}
}
