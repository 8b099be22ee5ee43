package parser

import "strings"

// Section markers the generation prompt instructs the model to emit, in this
// fixed order. The splitter cuts each region at the first literal occurrence
// of the next marker, with no nesting awareness: marker-looking text inside
// an earlier region truncates that region early. That is how the format
// behaves, and the prompt tells the model not to repeat marker text.
const (
	MarkerHeader    = "### 4.1. Header Block"
	MarkerStructure = "### 4.2. Project Structure"
	MarkerFiles     = "### 4.3. Code Files"
	MarkerNotes     = "### 4.4. Notes"
)

// Sections holds the four raw regions of a model response. A missing marker
// leaves its region as the empty string; that is degradation, not an error.
type Sections struct {
	Header    string
	Structure string
	Files     string
	Notes     string
}

// SplitSections locates the ordered markers in raw and returns the text
// between each marker and the next one found (end of text for the last).
func SplitSections(raw string) Sections {
	markers := []string{MarkerHeader, MarkerStructure, MarkerFiles, MarkerNotes}

	// starts[i] is the offset just past marker i, or -1 when absent.
	// Searching resumes after each found marker so the fixed order holds.
	starts := make([]int, len(markers))
	pos := 0
	for i, marker := range markers {
		idx := strings.Index(raw[pos:], marker)
		if idx < 0 {
			starts[i] = -1
			continue
		}
		starts[i] = pos + idx + len(marker)
		pos = starts[i]
	}

	regions := make([]string, len(markers))
	for i := range markers {
		if starts[i] < 0 {
			continue
		}
		end := len(raw)
		for j := i + 1; j < len(markers); j++ {
			if starts[j] >= 0 {
				end = starts[j] - len(markers[j])
				break
			}
		}
		regions[i] = strings.TrimSpace(raw[starts[i]:end])
	}

	return Sections{
		Header:    regions[0],
		Structure: regions[1],
		Files:     regions[2],
		Notes:     regions[3],
	}
}
