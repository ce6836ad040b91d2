// Package content provides the parsed document model shared by the dimension
// analyzers, the optimization target calculator, and the frontmatter schema
// validator.
package content

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
	"gopkg.in/yaml.v3"
)

// Heading is one markdown heading with its level (1 = H1).
type Heading struct {
	Level int
	Text  string
}

// Document is a parsed content document: YAML frontmatter plus markdown body,
// with the structural facts the analyzers need precomputed. A Document is
// immutable after Parse.
type Document struct {
	Path string

	// Frontmatter fields.
	Frontmatter    map[string]any
	HasFrontmatter bool
	Title          string
	Description    string
	Keyword        string
	Tags           []string

	// Body and derived structure.
	Body          string
	PlainText     string
	Headings      []Heading
	Paragraphs    []string
	Sentences     []string
	WordCount     int
	Links         int
	ExternalLinks int
	Images        int
	ImagesWithAlt int
	CodeBlocks    int
}

// ParseFrontmatter splits raw content into YAML frontmatter data and the
// markdown body. Content without a leading --- block is returned unchanged
// with an empty data map.
func ParseFrontmatter(raw string) (map[string]any, string, bool, error) {
	trimmed := strings.TrimLeft(raw, " \t\n")
	if !strings.HasPrefix(trimmed, "---") {
		return map[string]any{}, raw, false, nil
	}

	parts := strings.SplitN(raw, "---", 3)
	if len(parts) < 3 {
		return nil, "", false, fmt.Errorf("unclosed frontmatter (missing closing ---)")
	}

	var data map[string]any
	if err := yaml.Unmarshal([]byte(parts[1]), &data); err != nil {
		return nil, "", false, fmt.Errorf("error parsing frontmatter: %w", err)
	}
	if data == nil {
		data = map[string]any{}
	}

	return data, parts[2], true, nil
}

// Parse builds a Document from raw content. Path is used only for reporting
// and may be empty for in-memory content.
func Parse(path, raw string) (*Document, error) {
	data, body, hasFM, err := ParseFrontmatter(raw)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Path:           path,
		Frontmatter:    data,
		HasFrontmatter: hasFM,
		Body:           body,
	}
	doc.Title, _ = data["title"].(string)
	doc.Description, _ = data["description"].(string)
	doc.Keyword, _ = data["keyword"].(string)
	if rawTags, ok := data["tags"].([]any); ok {
		for _, tag := range rawTags {
			if s, ok := tag.(string); ok {
				doc.Tags = append(doc.Tags, s)
			}
		}
	}

	doc.extractStructure()
	return doc, nil
}

// extractStructure walks the markdown AST and fills in the derived fields.
func (d *Document) extractStructure() {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	root := p.Parse([]byte(d.Body))

	var textParts []string
	ast.WalkFunc(root, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		switch n := node.(type) {
		case *ast.Heading:
			d.Headings = append(d.Headings, Heading{Level: n.Level, Text: nodeText(n)})
			return ast.SkipChildren
		case *ast.Paragraph:
			// Only top-level prose paragraphs; list items carry their own.
			if _, top := n.GetParent().(*ast.Document); top {
				if text := nodeText(n); text != "" {
					d.Paragraphs = append(d.Paragraphs, text)
				}
			}
		case *ast.Link:
			d.Links++
			dest := string(n.Destination)
			if strings.HasPrefix(dest, "http://") || strings.HasPrefix(dest, "https://") {
				d.ExternalLinks++
			}
		case *ast.Image:
			d.Images++
			if nodeText(n) != "" {
				d.ImagesWithAlt++
			}
			return ast.SkipChildren
		case *ast.CodeBlock:
			d.CodeBlocks++
		}
		return ast.GoToNext
	})

	ast.WalkFunc(root, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		if t, ok := node.(*ast.Text); ok {
			if s := strings.TrimSpace(string(t.Literal)); s != "" {
				textParts = append(textParts, s)
			}
		}
		return ast.GoToNext
	})

	d.PlainText = strings.Join(textParts, " ")
	d.WordCount = len(strings.Fields(d.PlainText))
	d.Sentences = splitSentences(d.PlainText)
}

// nodeText collects the literal text beneath a node.
func nodeText(node ast.Node) string {
	var parts []string
	ast.WalkFunc(node, func(n ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		switch t := n.(type) {
		case *ast.Text:
			parts = append(parts, string(t.Literal))
		case *ast.Code:
			parts = append(parts, string(t.Literal))
		}
		return ast.GoToNext
	})
	return strings.TrimSpace(strings.Join(parts, ""))
}

// splitSentences splits plain text on terminal punctuation. Good enough for
// rhythm and readability metrics; not a linguistic segmenter.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder
	runes := []rune(text)
	for i, r := range runes {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			atEnd := i == len(runes)-1
			if atEnd || runes[i+1] == ' ' || runes[i+1] == '\n' {
				if s := strings.TrimSpace(current.String()); len(strings.Fields(s)) > 0 {
					sentences = append(sentences, s)
				}
				current.Reset()
			}
		}
	}
	if s := strings.TrimSpace(current.String()); len(strings.Fields(s)) > 0 {
		sentences = append(sentences, s)
	}
	return sentences
}

// KeywordOccurrences counts case-insensitive occurrences of keyword in the
// document's plain text.
func (d *Document) KeywordOccurrences(keyword string) int {
	if keyword == "" || d.PlainText == "" {
		return 0
	}
	return strings.Count(strings.ToLower(d.PlainText), strings.ToLower(keyword))
}

// KeywordDensity returns keyword occurrences as a percentage of total words.
func (d *Document) KeywordDensity(keyword string) float64 {
	if keyword == "" || d.WordCount == 0 {
		return 0
	}
	return float64(d.KeywordOccurrences(keyword)) * 100 / float64(d.WordCount)
}

// HeadingKeywordCoverage returns the percentage of headings that mention the
// keyword. Returns 0 when the document has no headings.
func (d *Document) HeadingKeywordCoverage(keyword string) float64 {
	if keyword == "" || len(d.Headings) == 0 {
		return 0
	}
	lower := strings.ToLower(keyword)
	matched := 0
	for _, h := range d.Headings {
		if strings.Contains(strings.ToLower(h.Text), lower) {
			matched++
		}
	}
	return float64(matched) * 100 / float64(len(d.Headings))
}
