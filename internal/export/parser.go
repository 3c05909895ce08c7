package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
)

// Schema markers used by the launcher's HTML export format.
// A mod is encoded as a table row tagged data-type="ModContainer";
// the cell holding its display name is tagged data-type="DisplayName".
const (
	attrDataType     = "data-type"
	typeModContainer = "ModContainer"
	typeDisplayName  = "DisplayName"
)

// ErrMalformedExport is returned when an export file cannot be parsed
// as an HTML document.
var ErrMalformedExport = errors.New("malformed modpack export")

// Document is an immutable parsed representation of one export file.
//
// Design decision: We parse with golang.org/x/net/html rather than regex
// because:
//  1. It correctly handles malformed HTML the launcher occasionally emits
//  2. Provides a proper DOM-like structure for the parent-tag inspection
//  3. More maintainable than complex regex patterns
type Document struct {
	root *html.Node
}

// ParseDocument parses an export document from r.
func ParseDocument(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedExport, err)
	}
	return &Document{root: root}, nil
}

// ParseFile parses the export document at path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided export path is intentional
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := ParseDocument(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// ModNames returns the display name of every mod in the document, in
// document order (left-to-right, top-to-bottom).
//
// A cell is collected when its immediate parent carries
// data-type="ModContainer" and the cell itself carries
// data-type="DisplayName". A parent or cell lacking the data-type
// attribute entirely is treated as absent, not as an error: the export
// format interleaves layout rows with mod rows, and absence of the marker
// simply means the row is not a mod entry.
func (d *Document) ModNames() []string {
	names := make([]string, 0)
	if d == nil || d.root == nil {
		return names
	}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "td" {
			if name, ok := displayName(n); ok {
				names = append(names, name)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)

	return names
}

// displayName reports whether n is a DisplayName cell inside a
// ModContainer and returns its text content if so.
func displayName(n *html.Node) (string, bool) {
	parent := n.Parent
	if parent == nil || parent.Type != html.ElementNode {
		return "", false
	}

	parentType, ok := attrLookup(parent, attrDataType)
	if !ok || parentType != typeModContainer {
		return "", false
	}

	cellType, ok := attrLookup(n, attrDataType)
	if !ok || cellType != typeDisplayName {
		return "", false
	}

	return textContent(n), true
}

// attrLookup retrieves an attribute value from an HTML node.
// The second return value distinguishes an absent attribute from an
// empty one.
func attrLookup(n *html.Node, key string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// textContent concatenates all text nodes beneath n.
func textContent(n *html.Node) string {
	var sb strings.Builder

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return sb.String()
}
