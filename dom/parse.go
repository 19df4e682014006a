package dom

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a parsed document. Its body is the root for build-script
// generation.
type Document struct {
	root *Element // html element, nil for hand-built documents
	body *Element
}

// NewDocument wraps a hand-built body element into a Document.
// A nil body is replaced by an empty body element.
func NewDocument(body *Element) *Document {
	if body == nil {
		body = E("body", nil)
	}
	return &Document{body: body}
}

// Body returns the body element of the document. It is never nil.
func (doc *Document) Body() *Element {
	return doc.body
}

// Root returns the html element of a parsed document, or the body
// for hand-built documents.
func (doc *Document) Root() *Element {
	if doc.root == nil {
		return doc.body
	}
	return doc.root
}

// ParseString parses an HTML string into a Document.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads HTML from r and converts the parse tree into a Document.
// Parsing follows the HTML5 algorithm: malformed input is repaired,
// not rejected. Errors are reported for failing readers only.
func Parse(r io.Reader) (*Document, error) {
	h, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	doc := &Document{}
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Html {
			if e, ok := FromHTML(c).(*Element); ok {
				doc.root = e
			}
			break
		}
	}
	if doc.root != nil {
		for _, ch := range doc.root.Children {
			if e, ok := ch.(*Element); ok && e.Tag == "body" {
				doc.body = e
				break
			}
		}
	}
	if doc.body == nil {
		tracer().Debugf("document has no body element, using an empty one")
		doc.body = E("body", nil)
	}
	return doc, nil
}

// FromHTML converts an html.Node and its descendants. Document and doctype
// nodes are not representable and yield nil; for a document node, use
// Parse instead.
func FromHTML(n *html.Node) Node {
	if n == nil {
		return nil
	}
	switch n.Type {
	case html.ElementNode:
		e := &Element{Tag: n.Data}
		if len(n.Attr) > 0 {
			e.Attrs = make([]Attr, len(n.Attr))
			for i, a := range n.Attr {
				key := a.Key
				if a.Namespace != "" {
					key = a.Namespace + ":" + a.Key
				}
				e.Attrs[i] = Attr{Key: key, Val: a.Val}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if ch := FromHTML(c); ch != nil {
				e.Children = append(e.Children, ch)
			}
		}
		return e
	case html.TextNode:
		if isDataParent(n.Parent) {
			return D(n.Data)
		}
		return T(n.Data)
	case html.RawNode:
		return D(n.Data)
	case html.CommentNode:
		return C(n.Data)
	}
	return nil
}

// isDataParent is true for elements whose text content is a raw payload
// rather than displayable text.
func isDataParent(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	return n.DataAtom == atom.Script || n.DataAtom == atom.Style
}
