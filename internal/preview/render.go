package preview

import (
	"siteforge_server/internal/types"
)

// SandboxPolicy is the Content-Security-Policy served with every preview
// document: scripts may run, but the document is treated as opaque-origin
// with no access to the host page's origin, storage or cookies.
const SandboxPolicy = "sandbox allow-scripts"

// placeholderPage is served when the project has no index.html. The preview
// simply is not possible then; that is a condition to explain, not an error.
const placeholderPage = `<!DOCTYPE html>
<html>
<head><title>SiteForge Preview</title></head>
<body style="font-family: sans-serif; color: #555; text-align: center; padding-top: 4rem;">
<h2>No preview available</h2>
<p>This project has no <code>index.html</code> entry file. Generate again with a web entry page to see a live preview.</p>
</body>
</html>`

// BuildPreview returns the document body served for a session's preview:
// the entry file's markup rewritten against the asset handle table, or the
// placeholder page when no entry file exists.
func BuildPreview(doc *types.StructuredDocument, handles map[string]string) string {
	entry, ok := doc.EntryFile()
	if !ok {
		return placeholderPage
	}
	return RewriteReferences(entry.Content, handles)
}
