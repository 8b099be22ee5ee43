package parser

import (
	"regexp"
	"strings"

	"siteforge_server/internal/types"
)

const (
	// DefaultLang tags a block whose fence carried no language token.
	DefaultLang = "text"
	// DefaultName names a block whose fence carried no :name token.
	DefaultName = "untitled"

	// Fallback identity for the single-file recovery path. Whatever the
	// stray fence was tagged as, the recovered file is always code.js.
	FallbackName = "code.js"
	FallbackLang = "javascript"
)

// fenceOpen matches an opening fence: ``` plus an optional language token
// and an optional :name token, nothing else on the line.
var fenceOpen = regexp.MustCompile("^```([A-Za-z0-9_.+-]*)(?::(\\S+))?\\s*$")

// ExtractBlocks scans a region line by line for fenced code blocks of the
// form ```lang:name ... ``` and returns one CodeFile per block, in source
// order. Order matters downstream: the first file is the default selection.
// A fence left unclosed at end of input produces nothing.
func ExtractBlocks(region string) []types.CodeFile {
	var (
		files   []types.CodeFile
		current *types.CodeFile
		body    []string
	)

	for _, line := range strings.Split(region, "\n") {
		if current != nil {
			if strings.TrimSpace(line) == "```" {
				current.Content = strings.TrimSpace(strings.Join(body, "\n"))
				files = append(files, *current)
				current, body = nil, nil
				continue
			}
			body = append(body, line)
			continue
		}

		m := fenceOpen.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		file := types.CodeFile{Lang: m[1], Name: m[2]}
		if file.Lang == "" {
			file.Lang = DefaultLang
		}
		if file.Name == "" {
			file.Name = DefaultName
		}
		current = &file
	}

	return files
}

// FallbackBlock scans the entire raw response for the first fenced block of
// any form. This is the last-resort recovery path for responses whose files
// section held no blocks: the result is always named code.js and tagged
// javascript regardless of the fence's own tag.
func FallbackBlock(raw string) (types.CodeFile, bool) {
	blocks := ExtractBlocks(raw)
	if len(blocks) == 0 {
		return types.CodeFile{}, false
	}
	return types.CodeFile{
		Name:    FallbackName,
		Lang:    FallbackLang,
		Content: blocks[0].Content,
	}, true
}
