package dom

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Kind discriminates the variants of Node.
type Kind uint8

// Node kinds.
const (
	ElementKind Kind = iota + 1
	TextKind
	DataKind
	CommentKind
)

func (k Kind) String() string {
	switch k {
	case ElementKind:
		return "element"
	case TextKind:
		return "#text"
	case DataKind:
		return "#data"
	case CommentKind:
		return "#comment"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Node is a node of a document tree. The set of implementations is closed:
// *Element, *Text, *Data and *Comment.
type Node interface {
	Kind() Kind
	String() string
	isNode()
}

// Attr is an attribute of an element. NoValue marks attributes written
// without any value, which is different from an empty value.
type Attr struct {
	Key     string
	Val     string
	NoValue bool
}

func (a Attr) String() string {
	if a.NoValue {
		return a.Key
	}
	return fmt.Sprintf("%s=%q", a.Key, a.Val)
}

// Element is an element node with ordered attributes and children.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []Node
}

// Text is a text node. Content is unescaped.
type Text struct {
	Content string
}

// Data is the raw payload of a script or style element.
type Data struct {
	Content string
}

// Comment is a comment node.
type Comment struct {
	Content string
}

func (*Element) Kind() Kind { return ElementKind }
func (*Text) Kind() Kind    { return TextKind }
func (*Data) Kind() Kind    { return DataKind }
func (*Comment) Kind() Kind { return CommentKind }

func (*Element) isNode() {}
func (*Text) isNode()    {}
func (*Data) isNode()    {}
func (*Comment) isNode() {}

func (e *Element) String() string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(e.Tag)
	for _, a := range e.Attrs {
		b.WriteString(" ")
		b.WriteString(a.String())
	}
	b.WriteString(">")
	return b.String()
}

func (t *Text) String() string    { return fmt.Sprintf("#text %q", t.Content) }
func (d *Data) String() string    { return fmt.Sprintf("#data %q", d.Content) }
func (c *Comment) String() string { return fmt.Sprintf("#comment %q", c.Content) }

// Attr returns the value of the first attribute with the given key.
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasAttr checks for the existence of an attribute.
func (e *Element) HasAttr(key string) bool {
	_, ok := e.Attr(key)
	return ok
}

// WithAttrs returns a shallow copy of e carrying attrs. Children are
// shared with e.
func (e *Element) WithAttrs(attrs []Attr) *Element {
	return &Element{Tag: e.Tag, Attrs: attrs, Children: e.Children}
}

// HTMLNode returns a detached html.Node carrying tag and attributes of e,
// without parent or children. It is intended for matching simple
// selectors against e.
func (e *Element) HTMLNode() *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     e.Tag,
		DataAtom: atom.Lookup([]byte(e.Tag)),
	}
	if len(e.Attrs) > 0 {
		n.Attr = make([]html.Attribute, len(e.Attrs))
		for i, a := range e.Attrs {
			n.Attr[i] = html.Attribute{Key: a.Key, Val: a.Val}
		}
	}
	return n
}

// --- Constructors ----------------------------------------------------------

// E creates an element.
func E(tag string, attrs []Attr, children ...Node) *Element {
	return &Element{Tag: tag, Attrs: attrs, Children: children}
}

// A creates a list of attributes from key/value pairs. A trailing key
// without value yields an attribute with NoValue set.
func A(kv ...string) []Attr {
	attrs := make([]Attr, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		if i+1 < len(kv) {
			attrs = append(attrs, Attr{Key: kv[i], Val: kv[i+1]})
		} else {
			attrs = append(attrs, Attr{Key: kv[i], NoValue: true})
		}
	}
	return attrs
}

// T creates a text node.
func T(s string) *Text { return &Text{Content: s} }

// D creates a raw data node.
func D(s string) *Data { return &Data{Content: s} }

// C creates a comment node.
func C(s string) *Comment { return &Comment{Content: s} }
