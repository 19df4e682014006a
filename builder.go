package incdom

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/incdom/dom"
)

// Builder generates IncrementalDOM build scripts for the body of a
// document. The document is never modified, so generation may be
// repeated and always yields the same script. A Builder must not be
// used concurrently; distinct Builders are independent.
type Builder struct {
	doc          *dom.Document
	basePath     string
	processor    ResourceProcessor
	containerTag string
	renderer     string
	skipAttr     string
	imageSel     cascadia.Matcher
}

// New parses htmlText and creates a Builder for it.
func New(htmlText string, opts ...Option) (*Builder, error) {
	doc, err := dom.ParseString(htmlText)
	if err != nil {
		return nil, err
	}
	return NewForDocument(doc, opts...), nil
}

// NewForDocument creates a Builder for an already parsed document.
// A nil document is treated as a document with an empty body.
func NewForDocument(doc *dom.Document, opts ...Option) *Builder {
	if doc == nil {
		doc = dom.NewDocument(nil)
	}
	b := &Builder{
		doc:          doc,
		containerTag: DefaultContainerTag,
		renderer:     DefaultRenderer,
		skipAttr:     DefaultSkipAttribute,
		imageSel:     defaultImageSelector,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Document returns the document the builder works on.
func (b *Builder) Document() *dom.Document {
	return b.doc
}

// Script is a sequence of build instructions, one fragment per
// instruction.
type Script []string

func (s Script) String() string {
	return strings.Join(s, "")
}

// BuildCalls returns the instructions rebuilding the document body,
// in document order.
func (b *Builder) BuildCalls() Script {
	var script Script
	b.traverse(b.doc.Body(), &script)
	tracer().Debugf("generated %d build instructions", len(script))
	return script
}

// RenderClosure returns a JavaScript arrow function which, when called
// inside an IncrementalDOM patch, rebuilds the document body.
func (b *Builder) RenderClosure() string {
	var sb strings.Builder
	sb.WriteString("() => {\n")
	sb.WriteString("  const o = (tag, ...attrs) => ")
	sb.WriteString(b.renderer)
	sb.WriteString(".elementOpen(decodeURIComponent(tag), null, null, ...attrs.map(decodeURIComponent));\n")
	sb.WriteString("  const t = content => ")
	sb.WriteString(b.renderer)
	sb.WriteString(".text(decodeURIComponent(content));\n")
	sb.WriteString("  const c = tag => ")
	sb.WriteString(b.renderer)
	sb.WriteString(".elementClose(decodeURIComponent(tag));\n")
	sb.WriteString("  ")
	sb.WriteString(b.BuildCalls().String())
	sb.WriteString("\n}")
	return sb.String()
}

// traverse appends the instructions for n and its descendants.
func (b *Builder) traverse(n dom.Node, script *Script) {
	switch node := n.(type) {
	case *dom.Element:
		el := b.preprocess(node)
		*script = append(*script, b.openTag(el))
		for _, ch := range el.Children {
			b.traverse(ch, script)
		}
		*script = append(*script, b.closeTag(el))
	case *dom.Text:
		*script = append(*script, textCall(node.Content))
	case *dom.Data:
		*script = append(*script, textCall(node.Content))
	case *dom.Comment:
	}
}

func (b *Builder) normalizeTag(name string) string {
	if name == "body" {
		return b.containerTag
	}
	return name
}

func (b *Builder) openTag(e *dom.Element) string {
	var sb strings.Builder
	sb.WriteString("o('")
	sb.WriteString(Encode(b.normalizeTag(e.Tag)))
	sb.WriteString("'")
	for _, a := range e.Attrs {
		sb.WriteString(",'")
		sb.WriteString(Encode(a.Key))
		sb.WriteString("'")
		if !a.NoValue {
			sb.WriteString(",'")
			sb.WriteString(Encode(a.Val))
			sb.WriteString("'")
		}
	}
	sb.WriteString(");")
	return sb.String()
}

func (b *Builder) closeTag(e *dom.Element) string {
	return "c('" + Encode(b.normalizeTag(e.Tag)) + "');"
}

func textCall(content string) string {
	return "t(`" + Encode(content) + "`);"
}
