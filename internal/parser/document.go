package parser

import (
	"errors"
	"log"

	"siteforge_server/internal/types"
)

// ErrNoFiles marks a response that decomposed to zero code files. Callers
// treat it exactly like a failed generation call: surface the error state,
// render nothing.
var ErrNoFiles = errors.New("model response contained no code files")

// ParseResponse decomposes a raw model response into a StructuredDocument.
// Missing sections degrade to empty strings; a files section without tagged
// blocks falls back to the first fence found anywhere in the response. Only
// a response with no fences at all is rejected.
func ParseResponse(raw string) (*types.StructuredDocument, error) {
	sections := SplitSections(raw)

	files := ExtractBlocks(sections.Files)
	if len(files) == 0 {
		if fallback, ok := FallbackBlock(raw); ok {
			log.Printf("No tagged blocks in the files section, recovered a single fallback file (%d bytes)", len(fallback.Content))
			files = []types.CodeFile{fallback}
		}
	}
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	return &types.StructuredDocument{
		Header:    sections.Header,
		Structure: sections.Structure,
		Notes:     sections.Notes,
		Files:     files,
	}, nil
}
