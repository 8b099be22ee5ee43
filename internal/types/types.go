package types

// EntryFileName is the file that bootstraps the preview; projects without
// one can still be browsed and exported, just not previewed.
const EntryFileName = "index.html"

// CodeFile represents one generated artifact parsed out of the model response.
type CodeFile struct {
	Name    string `json:"name"`    // relative path, "untitled" when the fence carried no name token
	Lang    string `json:"lang"`    // language tag for highlighting, "text" when the fence carried none
	Content string `json:"content"` // fenced body with outer whitespace trimmed
}

// StructuredDocument is the decomposed form of a raw model response.
// Files keeps source order; a document with zero files is never rendered.
type StructuredDocument struct {
	Header    string     `json:"header"`
	Structure string     `json:"structure"`
	Notes     string     `json:"notes"`
	Files     []CodeFile `json:"files"`
}

// EntryFile returns the first file named exactly "index.html". The first
// match by name is canonical; duplicate names are a caller error and are
// not deduplicated here.
func (d *StructuredDocument) EntryFile() (CodeFile, bool) {
	return d.FileNamed(EntryFileName)
}

// FileNamed returns the first file with the given name, in source order.
func (d *StructuredDocument) FileNamed(name string) (CodeFile, bool) {
	for _, f := range d.Files {
		if f.Name == name {
			return f, true
		}
	}
	return CodeFile{}, false
}

// DefaultFile is the file shown when nothing more specific was asked for:
// the first one the model produced.
func (d *StructuredDocument) DefaultFile() (CodeFile, bool) {
	if len(d.Files) == 0 {
		return CodeFile{}, false
	}
	return d.Files[0], true
}
