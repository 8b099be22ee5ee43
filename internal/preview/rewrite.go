package preview

import (
	"fmt"
	"regexp"
	"strings"
)

// refAttr matches href="..." and src="..." attribute values in the entry
// markup. This is deliberately a single-pass text substitution, not an HTML
// parse: nested documents (an iframe's own srcdoc, say) are not descended
// into, and import graphs are not followed.
var refAttr = regexp.MustCompile(`(href|src)="([^"]*)"`)

// RewriteReferences substitutes materialized asset handles for relative
// href/src values in the entry document. An optional leading ./ or / is
// stripped before matching the remainder against the handle table by exact
// file name. Misses stay untouched so the preview degrades in the browser
// instead of failing here. Handles carry a path and query string that can
// never re-match a file name, so rewriting already rewritten markup changes
// nothing.
func RewriteReferences(entry string, handles map[string]string) string {
	if len(handles) == 0 {
		return entry
	}
	return refAttr.ReplaceAllStringFunc(entry, func(match string) string {
		parts := refAttr.FindStringSubmatch(match)
		ref := strings.TrimPrefix(parts[2], "./")
		ref = strings.TrimPrefix(ref, "/")
		handle, ok := handles[ref]
		if !ok {
			return match
		}
		return fmt.Sprintf(`%s="%s"`, parts[1], handle)
	})
}
