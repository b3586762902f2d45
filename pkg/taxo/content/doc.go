package content

import (
	"errors"
	"strings"
)

// Doc represents one content entry after frontmatter extraction.
type Doc struct {
	Path     string   // file path, unique per run
	Title    string
	Category string // empty when the document declares none
	Tags     []string
	Date     string

	// Raw frontmatter block (without the --- delimiters) and the body as
	// read from disk. The rewriter needs both to reproduce the file.
	Frontmatter []byte
	Body        []byte
}

// HasCategory reports whether the document declares a category.
func (d *Doc) HasCategory() bool {
	return strings.TrimSpace(d.Category) != ""
}

// Validate checks if the document has required fields.
func (d *Doc) Validate() error {
	if strings.TrimSpace(d.Path) == "" {
		return errors.New("doc path is required")
	}
	return nil
}
