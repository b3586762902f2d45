// Package content walks a static-site content root, parses the frontmatter
// of each recognized document, and yields typed Docs for analysis.
package content

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"go.uber.org/zap"
)

// meta holds the parsed frontmatter fields the taxonomy core cares about.
// Unknown keys survive in Doc.Frontmatter and are preserved on rewrite.
type meta struct {
	Title    string   `yaml:"title"`
	Category string   `yaml:"category"`
	Tags     []string `yaml:"tags"`
	Date     string   `yaml:"date"`
}

// Scanner iterates documents under a content root, one per recognized file.
// A recognized file is an index.md/index.mdx inside a subdirectory of the
// root (the one-directory-per-post convention) or a .md/.mdx file directly
// under the root.
type Scanner struct {
	paths   []string
	idx     int
	skipped int
	logger  *zap.Logger
}

// NewScanner lists the recognized content files under root. A missing or
// unreadable root is a fatal error; per-file problems surface later, during
// iteration, as warnings.
func NewScanner(root string, logger *zap.Logger) (*Scanner, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read content root: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			for _, name := range []string{"index.md", "index.mdx"} {
				candidate := filepath.Join(root, entry.Name(), name)
				if _, err := os.Stat(candidate); err == nil {
					paths = append(paths, candidate)
					break
				}
			}
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext == ".md" || ext == ".mdx" {
			paths = append(paths, filepath.Join(root, entry.Name()))
		}
	}

	// os.ReadDir returns entries sorted by name, so iteration order is
	// already deterministic.
	return &Scanner{paths: paths, logger: logger}, nil
}

// Next returns the next parseable document. Files with missing or malformed
// frontmatter are logged, counted, and skipped rather than aborting the scan.
func (s *Scanner) Next(ctx context.Context) (Doc, bool, error) {
	for s.idx < len(s.paths) {
		if err := ctx.Err(); err != nil {
			return Doc{}, false, err
		}

		path := s.paths[s.idx]
		s.idx++

		data, err := os.ReadFile(path)
		if err != nil {
			s.logger.Warn("unreadable content file, skipping",
				zap.String("path", path), zap.Error(err))
			s.skipped++
			continue
		}

		doc, err := Parse(path, data)
		if err != nil {
			s.logger.Warn("invalid frontmatter, skipping",
				zap.String("path", path), zap.Error(err))
			s.skipped++
			continue
		}
		return doc, true, nil
	}
	return Doc{}, false, nil
}

// Skipped returns how many files were excluded for read or parse errors.
func (s *Scanner) Skipped() int { return s.skipped }

// Total returns how many recognized files the scanner will visit.
func (s *Scanner) Total() int { return len(s.paths) }

// Parse extracts typed frontmatter and the body from one file's bytes.
func Parse(path string, data []byte) (Doc, error) {
	var m meta
	body, err := frontmatter.MustParse(bytes.NewReader(data), &m)
	if err != nil {
		return Doc{}, fmt.Errorf("parse frontmatter: %w", err)
	}

	// The frontmatter block is everything before the body, minus the two
	// delimiter lines.
	block := data[:len(data)-len(body)]
	block = bytes.TrimPrefix(block, []byte("---\n"))
	if i := bytes.LastIndex(block, []byte("---")); i >= 0 {
		block = block[:i]
	}

	tags := m.Tags
	if tags == nil {
		tags = []string{}
	}

	return Doc{
		Path:        path,
		Title:       m.Title,
		Category:    m.Category,
		Tags:        tags,
		Date:        m.Date,
		Frontmatter: block,
		Body:        body,
	}, nil
}

// ScanAll drains a scanner into a slice. Returns the docs and the count of
// skipped files.
func ScanAll(ctx context.Context, root string, logger *zap.Logger) ([]Doc, int, error) {
	s, err := NewScanner(root, logger)
	if err != nil {
		return nil, 0, err
	}
	var docs []Doc
	for {
		doc, ok, err := s.Next(ctx)
		if err != nil {
			return docs, s.Skipped(), err
		}
		if !ok {
			break
		}
		docs = append(docs, doc)
	}
	return docs, s.Skipped(), nil
}
