package browser

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// noiseElements are removed entirely before any extraction: they never carry
// readable page content.
var noiseElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"iframe":   true,
	"svg":      true,
	"canvas":   true,
	"object":   true,
	"embed":    true,
	"template": true,
	"head":     true,
}

// blockElements get a newline appended during text extraction so paragraphs
// and list items stay separated.
var blockElements = map[string]bool{
	"p": true, "div": true, "li": true, "tr": true, "br": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"article": true, "section": true, "header": true, "footer": true,
	"aside": true, "main": true, "blockquote": true, "pre": true,
	"ul": true, "ol": true, "table": true,
}

var (
	spaceRuns   = regexp.MustCompile(`[ \t\r\f\v]+`)
	newlineRuns = regexp.MustCompile(`\n+`)
	spacedNL    = regexp.MustCompile(` ?\n ?`)
	allSpace    = regexp.MustCompile(`\s+`)
)

// ExtractText parses raw HTML and returns its readable text. With trim set,
// every whitespace run collapses to a single space; otherwise block structure
// is preserved as single newlines.
func ExtractText(rawHTML string, trim bool) (string, error) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	var b strings.Builder
	collectText(doc, &b)
	text := b.String()

	if trim {
		return strings.TrimSpace(allSpace.ReplaceAllString(text, " ")), nil
	}
	text = spaceRuns.ReplaceAllString(text, " ")
	text = spacedNL.ReplaceAllString(text, "\n")
	text = newlineRuns.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text), nil
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.ElementNode && noiseElements[strings.ToLower(n.Data)] {
		return
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
	if n.Type == html.ElementNode && blockElements[strings.ToLower(n.Data)] {
		b.WriteString("\n")
	}
}

// ExtractTitle returns the document's <title> text, or "".
func ExtractTitle(rawHTML string) string {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return ""
	}
	return findTitle(doc)
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
			return strings.TrimSpace(n.FirstChild.Data)
		}
		return ""
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if title := findTitle(c); title != "" {
			return title
		}
	}
	return ""
}

// CleanHTML re-serializes the document with noise elements dropped and only
// structurally useful attributes kept, producing a compact source suitable
// for model analysis.
func CleanHTML(rawHTML string) (string, error) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	var b strings.Builder
	writeClean(doc, &b)
	return strings.TrimSpace(b.String()), nil
}

func writeClean(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.CommentNode:
		return
	case html.TextNode:
		text := strings.TrimSpace(n.Data)
		if text != "" {
			b.WriteString(text)
		}
		return
	case html.ElementNode:
		tag := strings.ToLower(n.Data)
		if noiseElements[tag] {
			return
		}
		b.WriteString("<")
		b.WriteString(tag)
		for _, attr := range n.Attr {
			if keepAttribute(tag, strings.ToLower(attr.Key)) {
				fmt.Fprintf(b, ` %s="%s"`, attr.Key, html.EscapeString(attr.Val))
			}
		}
		b.WriteString(">")
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeClean(c, b)
		}
		if !voidElements[tag] {
			b.WriteString("</" + tag + ">")
		}
		if blockElements[tag] {
			b.WriteString("\n")
		}
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeClean(c, b)
		}
	}
}

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "hr": true,
	"img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// keepAttribute keeps ids, classes, and the handful of attributes a model
// needs to target elements with selectors.
func keepAttribute(tag, attr string) bool {
	switch attr {
	case "id", "class", "role", "aria-label", "href", "src", "alt",
		"name", "type", "placeholder", "value", "action", "method":
		return true
	}
	return strings.HasPrefix(attr, "data-")
}
