package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"siteforge_server/internal/types"
)

func TestBuildPreviewRewritesEntryFile(t *testing.T) {
	doc := &types.StructuredDocument{Files: []types.CodeFile{
		{Name: "index.html", Content: `<script src="app.js"></script>`},
		{Name: "app.js", Content: "console.log(1)"},
	}}
	handles := map[string]string{"app.js": "/project/s1/assets/app.js?v=tok"}

	got := BuildPreview(doc, handles)
	assert.Equal(t, `<script src="/project/s1/assets/app.js?v=tok"></script>`, got)
}

func TestBuildPreviewPlaceholderWithoutEntryFile(t *testing.T) {
	doc := &types.StructuredDocument{Files: []types.CodeFile{
		{Name: "main.py", Content: "print(1)"},
	}}

	got := BuildPreview(doc, nil)
	assert.Contains(t, got, "No preview available")
	assert.Contains(t, got, "index.html")
}
