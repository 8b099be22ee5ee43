package bundle

import (
	"archive/zip"
	"fmt"
	"io"

	"siteforge_server/internal/types"
)

// ArchiveName is the fixed download name for every export.
const ArchiveName = "siteforge-project.zip"

// Export writes every file verbatim into a zip archive at its declared
// name. Names are not normalized and duplicates are not rejected: a
// repeated name yields two entries and the later one wins on extraction,
// standard zip semantics.
func Export(w io.Writer, files []types.CodeFile) error {
	zw := zip.NewWriter(w)
	for _, f := range files {
		entry, err := zw.Create(f.Name)
		if err != nil {
			return fmt.Errorf("failed to add %s to archive: %w", f.Name, err)
		}
		if _, err := entry.Write([]byte(f.Content)); err != nil {
			return fmt.Errorf("failed to write %s into archive: %w", f.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive: %w", err)
	}
	return nil
}
