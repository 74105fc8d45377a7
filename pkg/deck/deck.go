package deck

import "strings"

// Descriptor identifies a deck in listings, distinct from its content.
type Descriptor struct {
	// Path is the unique key for the deck (e.g. /anki/Spanish.csv).
	Path string `json:"path" yaml:"path"`
	// Title is the display name derived from the filename.
	Title string `json:"title" yaml:"title"`
}

// TitleFromPath derives a deck title from its path: the final path segment
// with a trailing ".csv" suffix stripped.
func TitleFromPath(path string) string {
	title := path
	if i := strings.LastIndex(title, "/"); i >= 0 {
		title = title[i+1:]
	}
	return strings.TrimSuffix(title, ".csv")
}
