package assets

import (
	"path/filepath"
	"strings"
)

// MimeType infers the content type an asset is served with from its file
// name's extension. Only the browser-renderable subset gets a real type;
// anything unrecognized (or extensionless) is served as plain text.
func MimeType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html":
		return "text/html"
	case ".css":
		return "text/css"
	case ".js":
		return "application/javascript"
	case ".json":
		return "application/json"
	case ".svg":
		return "image/svg+xml"
	default:
		return "text/plain"
	}
}
