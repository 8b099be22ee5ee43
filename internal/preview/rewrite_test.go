package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testHandles() map[string]string {
	return map[string]string{
		"app.js":    "/project/s1/assets/app.js?v=tok",
		"style.css": "/project/s1/assets/style.css?v=tok",
	}
}

func TestRewriteReferencesResolvesKnownPaths(t *testing.T) {
	entry := `<link href="style.css"><script src="./app.js"></script>`

	got := RewriteReferences(entry, testHandles())
	assert.Equal(t, `<link href="/project/s1/assets/style.css?v=tok"><script src="/project/s1/assets/app.js?v=tok"></script>`, got)
}

func TestRewriteReferencesLeavesMissesUntouched(t *testing.T) {
	entry := `<script src="missing.js"></script><a href="https://example.com/page">out</a>`
	assert.Equal(t, entry, RewriteReferences(entry, testHandles()))
}

func TestRewriteReferencesStripsLeadingSlash(t *testing.T) {
	got := RewriteReferences(`<script src="/app.js"></script>`, testHandles())
	assert.Equal(t, `<script src="/project/s1/assets/app.js?v=tok"></script>`, got)
}

func TestRewriteReferencesIdempotent(t *testing.T) {
	entry := `<link href="style.css"><script src="./app.js"></script><img src="missing.png">`
	once := RewriteReferences(entry, testHandles())
	twice := RewriteReferences(once, testHandles())
	assert.Equal(t, once, twice, "resolved handles must never re-match")
}

func TestRewriteReferencesEmptyHandleTable(t *testing.T) {
	entry := `<script src="app.js"></script>`
	assert.Equal(t, entry, RewriteReferences(entry, nil))
}
