// Package lint runs small validity checks over scanned documents, catching
// leftovers from the HTML-to-MDX migration.
package lint

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/contentops/taxo/pkg/taxo/content"
)

// Rule identifiers.
const (
	RuleRawHTML      = "raw_html"
	RuleMissingTitle = "missing_title"
)

// Finding is one lint hit on one document.
type Finding struct {
	Path    string `json:"path"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// htmlLeftovers are elements that indicate unconverted HTML in a body.
// JSX components are capitalized and markdown links/images never tokenize
// as these, so lowercase structural tags are a reliable signal.
var htmlLeftovers = map[string]struct{}{
	"div": {}, "span": {}, "font": {}, "center": {}, "table": {},
	"tbody": {}, "td": {}, "tr": {}, "iframe": {}, "b": {}, "i": {},
	"u": {}, "br": {}, "img": {},
}

// Check runs all rules against one document.
func Check(doc content.Doc) []Finding {
	var findings []Finding

	if strings.TrimSpace(doc.Title) == "" {
		findings = append(findings, Finding{
			Path:    doc.Path,
			Rule:    RuleMissingTitle,
			Message: "frontmatter has no title",
		})
	}

	if tags := rawHTMLTags(doc.Body); len(tags) > 0 {
		findings = append(findings, Finding{
			Path:    doc.Path,
			Rule:    RuleRawHTML,
			Message: fmt.Sprintf("body contains raw HTML: <%s>", strings.Join(tags, ">, <")),
		})
	}

	return findings
}

// CheckAll lints every document and returns the combined findings.
func CheckAll(docs []content.Doc) []Finding {
	var all []Finding
	for _, doc := range docs {
		all = append(all, Check(doc)...)
	}
	return all
}

// rawHTMLTags tokenizes the body and collects leftover HTML element names,
// deduplicated in first-seen order.
func rawHTMLTags(body []byte) []string {
	tok := html.NewTokenizer(bytes.NewReader(body))
	seen := make(map[string]struct{})
	var tags []string

	for {
		switch tok.Next() {
		case html.ErrorToken:
			return tags
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := tok.TagName()
			tag := string(name)
			if _, leftover := htmlLeftovers[tag]; !leftover {
				continue
			}
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
}
