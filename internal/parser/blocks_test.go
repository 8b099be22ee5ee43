package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siteforge_server/internal/types"
)

func TestExtractBlocksTaggedBlocksInSourceOrder(t *testing.T) {
	region := "```html:index.html\n<h1>Hi</h1>\n```\nsome prose\n```css:style.css\nbody { margin: 0; }\n```\n```js:app.js\nconsole.log(1)\n```"

	files := ExtractBlocks(region)
	require.Len(t, files, 3)
	assert.Equal(t, types.CodeFile{Name: "index.html", Lang: "html", Content: "<h1>Hi</h1>"}, files[0])
	assert.Equal(t, types.CodeFile{Name: "style.css", Lang: "css", Content: "body { margin: 0; }"}, files[1])
	assert.Equal(t, types.CodeFile{Name: "app.js", Lang: "js", Content: "console.log(1)"}, files[2])
}

func TestExtractBlocksDefaultsWhenTokensAbsent(t *testing.T) {
	files := ExtractBlocks("```\nplain body\n```")
	require.Len(t, files, 1)
	assert.Equal(t, "untitled", files[0].Name)
	assert.Equal(t, "text", files[0].Lang)
	assert.Equal(t, "plain body", files[0].Content)
}

func TestExtractBlocksLangWithoutName(t *testing.T) {
	files := ExtractBlocks("```python\nprint(1)\n```")
	require.Len(t, files, 1)
	assert.Equal(t, "untitled", files[0].Name)
	assert.Equal(t, "python", files[0].Lang)
}

func TestExtractBlocksTrimsOuterWhitespaceOnly(t *testing.T) {
	files := ExtractBlocks("```js:a.js\n\n  indented line\n\n```")
	require.Len(t, files, 1)
	assert.Equal(t, "indented line", files[0].Content)

	files = ExtractBlocks("```js:b.js\nline one\n  line two\n```")
	require.Len(t, files, 1)
	assert.Equal(t, "line one\n  line two", files[0].Content)
}

func TestExtractBlocksUnclosedFenceProducesNothing(t *testing.T) {
	assert.Empty(t, ExtractBlocks("```js:a.js\nnever closed"))
}

func TestExtractBlocksEmptyRegion(t *testing.T) {
	assert.Empty(t, ExtractBlocks(""))
	assert.Empty(t, ExtractBlocks("prose without any fences"))
}

func TestFallbackBlockRecoversFirstFenceAnywhere(t *testing.T) {
	raw := "the model ignored the layout entirely\n```ts\nconsole.log(1)\n```\nand added commentary after"

	file, ok := FallbackBlock(raw)
	require.True(t, ok)
	assert.Equal(t, "code.js", file.Name)
	assert.Equal(t, "javascript", file.Lang)
	assert.Equal(t, "console.log(1)", file.Content)
}

func TestFallbackBlockNoFences(t *testing.T) {
	_, ok := FallbackBlock("nothing fenced in here")
	assert.False(t, ok)
}
