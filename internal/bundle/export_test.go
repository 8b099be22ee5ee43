package bundle

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siteforge_server/internal/types"
)

func readArchive(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	contents := make(map[string]string)
	for _, entry := range zr.File {
		rc, err := entry.Open()
		require.NoError(t, err)
		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		contents[entry.Name] = string(body) // later entries overwrite, matching extraction
	}
	return contents
}

func TestExportRoundTrip(t *testing.T) {
	files := []types.CodeFile{
		{Name: "index.html", Content: "<h1>Hi</h1>"},
		{Name: "css/style.css", Content: "body { margin: 0; }\n"},
		{Name: "app.js", Content: "console.log(\"hi\")"},
	}

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, files))

	contents := readArchive(t, buf.Bytes())
	require.Len(t, contents, 3)
	for _, f := range files {
		assert.Equal(t, f.Content, contents[f.Name], "content of %s must survive byte for byte", f.Name)
	}
}

func TestExportDuplicateNamesLastWins(t *testing.T) {
	files := []types.CodeFile{
		{Name: "app.js", Content: "first"},
		{Name: "app.js", Content: "second"},
	}

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, files))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Len(t, zr.File, 2, "duplicates collide silently, both entries kept")
	assert.Equal(t, "second", readArchive(t, buf.Bytes())["app.js"])
}

func TestExportEmptyFileList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, nil))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Empty(t, zr.File)
}
