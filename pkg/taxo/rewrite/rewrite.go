// Package rewrite applies the standardization tables back onto source
// documents' frontmatter.
package rewrite

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/contentops/taxo/pkg/taxo/canon"
	"github.com/contentops/taxo/pkg/taxo/content"
	"github.com/contentops/taxo/pkg/taxo/internalerr"
)

// Rewriter standardizes category and tags in place. With Apply unset it is
// a dry run: it counts the documents that would change without touching disk.
type Rewriter struct {
	Categories *canon.Table
	Tags       *canon.Table
	Apply      bool
	Logger     *zap.Logger
}

// Result summarizes the rewrite run.
type Result struct {
	Processed int
	Updated   int
	Errors    int
}

// Run recomputes each document's taxonomy fields and rewrites the files
// whose outcome differs. Each file is written whole in one call; a failure
// on one file is counted and logged but does not stop the rest.
func (r *Rewriter) Run(ctx context.Context, docs []content.Doc) (Result, error) {
	var res Result
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		res.Processed++

		newCat := doc.Category
		if doc.HasCategory() {
			newCat = r.Categories.Canonicalize(doc.Category)
		}
		newTags := standardizeTags(doc.Tags, r.Tags)

		if newCat == doc.Category && slicesEqual(newTags, doc.Tags) {
			continue
		}
		res.Updated++

		if !r.Apply {
			logger.Info("would update",
				zap.String("path", doc.Path),
				zap.String("category", newCat),
				zap.Strings("tags", newTags))
			continue
		}

		if err := rewriteFile(doc, newCat, newTags); err != nil {
			logger.Error("rewrite failed", zap.String("path", doc.Path), zap.Error(err))
			res.Errors++
			res.Updated--
			continue
		}
		logger.Info("updated", zap.String("path", doc.Path))
	}
	return res, nil
}

// standardizeTags canonicalizes element-wise, deduplicates, and sorts.
func standardizeTags(tags []string, table *canon.Table) []string {
	set := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		set[table.Canonicalize(tag)] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for tag := range set {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// rewriteFile re-serializes the frontmatter with the new taxonomy fields and
// writes the whole file back, body untouched.
func rewriteFile(doc content.Doc, category string, tags []string) error {
	var node yaml.Node
	if err := yaml.Unmarshal(doc.Frontmatter, &node); err != nil {
		return fmt.Errorf("reparse frontmatter: %w", err)
	}
	if len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
		return fmt.Errorf("%w: frontmatter is not a mapping", internalerr.ErrInvalidInput)
	}
	mapping := node.Content[0]

	if category != "" {
		setScalar(mapping, "category", category)
	}
	if len(tags) > 0 || hasKey(mapping, "tags") {
		setSequence(mapping, "tags", tags)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return fmt.Errorf("serialize frontmatter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("serialize frontmatter: %w", err)
	}

	var file bytes.Buffer
	file.WriteString("---\n")
	file.Write(buf.Bytes())
	file.WriteString("---\n")
	file.Write(doc.Body)

	return os.WriteFile(doc.Path, file.Bytes(), 0644)
}

// findKey returns the value node for key, or nil.
func findKey(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

func hasKey(mapping *yaml.Node, key string) bool {
	return findKey(mapping, key) != nil
}

// setScalar replaces or appends a string value, keeping key order intact.
func setScalar(mapping *yaml.Node, key, value string) {
	if existing := findKey(mapping, key); existing != nil {
		existing.Kind = yaml.ScalarNode
		existing.Tag = "!!str"
		existing.Value = value
		existing.Content = nil
		return
	}
	mapping.Content = append(mapping.Content,
		scalarNode(key), scalarNode(value))
}

// setSequence replaces or appends a string list, preserving the existing
// node's style (block vs flow) when there is one.
func setSequence(mapping *yaml.Node, key string, values []string) {
	items := make([]*yaml.Node, len(values))
	for i, v := range values {
		items[i] = scalarNode(v)
	}

	if existing := findKey(mapping, key); existing != nil {
		existing.Kind = yaml.SequenceNode
		existing.Tag = "!!seq"
		existing.Value = ""
		existing.Content = items
		return
	}
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: items}
	mapping.Content = append(mapping.Content, scalarNode(key), seq)
}

func scalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func slicesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
