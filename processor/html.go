package processor

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/TanglawLabs/salin"
)

// skippedTags contains HTML tags whose content is never translated.
var skippedTags = map[string]bool{
	"script":   true,
	"style":    true,
	"code":     true,
	"pre":      true,
	"textarea": true,
	"noscript": true,
}

// HTMLProcessor extracts and applies translations to announcement HTML.
type HTMLProcessor struct {
	skippedTags map[string]bool
}

// NewHTMLProcessor creates a new HTML processor with default skipped tags.
func NewHTMLProcessor() *HTMLProcessor {
	return &HTMLProcessor{
		skippedTags: skippedTags,
	}
}

// NewHTMLProcessorWithSkippedTags creates a new HTML processor with custom skipped tags.
func NewHTMLProcessorWithSkippedTags(tags []string) *HTMLProcessor {
	skipped := make(map[string]bool)
	for _, tag := range tags {
		skipped[strings.ToLower(tag)] = true
	}
	return &HTMLProcessor{
		skippedTags: skipped,
	}
}

// parsedHTML holds the parsed document between Extract and Apply.
type parsedHTML struct {
	doc *goquery.Document
}

// skip reports whether a subtree must be left untouched.
func (p *HTMLProcessor) skip(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if p.skippedTags[strings.ToLower(n.Data)] {
		return true
	}
	for _, attr := range n.Attr {
		if attr.Key == "data-no-translate" {
			return true
		}
	}
	return false
}

// Extract parses HTML and extracts translatable text nodes, deduplicated by
// content hash.
func (p *HTMLProcessor) Extract(content string) (interface{}, []salin.TextNode, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, nil, &salin.ProcessorError{
			Message:     "failed to parse HTML",
			Cause:       err,
			ContentType: "html",
		}
	}

	var nodes []salin.TextNode
	seenHashes := make(map[string]bool)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if p.skip(n) {
			return
		}

		if n.Type == html.TextNode {
			trimmed := strings.TrimSpace(n.Data)
			if trimmed != "" {
				hash := salin.HashText(trimmed)
				if !seenHashes[hash] {
					seenHashes[hash] = true

					node := salin.TextNode{
						ID:       fmt.Sprintf("node-%d", len(nodes)),
						Text:     trimmed,
						Hash:     hash,
						Metadata: map[string]string{},
					}
					if n.Parent != nil {
						node.Metadata["parent_tag"] = n.Parent.Data
					}
					nodes = append(nodes, node)
				}
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	doc.Each(func(i int, s *goquery.Selection) {
		for _, n := range s.Nodes {
			walk(n)
		}
	})

	return &parsedHTML{doc: doc}, nodes, nil
}

// Apply applies translations back to the HTML document. Nodes whose hash has
// no translation keep their original text.
func (p *HTMLProcessor) Apply(parsed interface{}, nodes []salin.TextNode, translations map[string]string) (string, error) {
	ph, ok := parsed.(*parsedHTML)
	if !ok {
		return "", &salin.ProcessorError{
			Message:     "invalid parsed content type",
			ContentType: "html",
		}
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if p.skip(n) {
			return
		}

		if n.Type == html.TextNode {
			trimmed := strings.TrimSpace(n.Data)
			if trimmed != "" {
				if translated, ok := translations[salin.HashText(trimmed)]; ok {
					n.Data = preserveWhitespace(n.Data, translated)
				}
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	ph.doc.Each(func(i int, s *goquery.Selection) {
		for _, n := range s.Nodes {
			walk(n)
		}
	})

	out, err := ph.doc.Html()
	if err != nil {
		return "", &salin.ProcessorError{
			Message:     "failed to serialize HTML",
			Cause:       err,
			ContentType: "html",
		}
	}

	return out, nil
}

// ContentType returns "html".
func (p *HTMLProcessor) ContentType() string {
	return "html"
}

// preserveWhitespace preserves the original leading/trailing whitespace.
func preserveWhitespace(original, translated string) string {
	leadingLen := len(original) - len(strings.TrimLeft(original, " \t\n\r"))
	leading := original[:leadingLen]

	trailingLen := len(original) - len(strings.TrimRight(original, " \t\n\r"))
	trailing := ""
	if trailingLen > 0 {
		trailing = original[len(original)-trailingLen:]
	}

	return leading + translated + trailing
}

// Verify HTMLProcessor implements ContentProcessor
var _ ContentProcessor = (*HTMLProcessor)(nil)
