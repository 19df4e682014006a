package incdom

import (
	"net/url"

	"github.com/npillmayer/incdom/dom"
	"github.com/npillmayer/incdom/maybe"
	"github.com/npillmayer/incdom/result"
)

// ResourceProcessor rewrites the URI of a local resource, given the base
// path of the document. Returning Nothing keeps the original URI.
type ResourceProcessor interface {
	ProcessFileSchemeResource(basePath string, uri *url.URL) maybe.Maybe[string]
}

// ResourceProcessorFunc is an adapter to use ordinary functions as
// ResourceProcessor.
type ResourceProcessorFunc func(basePath string, uri *url.URL) maybe.Maybe[string]

// ProcessFileSchemeResource calls f(basePath, uri).
func (f ResourceProcessorFunc) ProcessFileSchemeResource(basePath string, uri *url.URL) maybe.Maybe[string] {
	return f(basePath, uri)
}

func parseSource(src string) result.Result[*url.URL] {
	return result.From(url.Parse(src))
}

// preprocess returns e with its image source rewritten, if the resource
// processor provides a replacement. e itself is never modified.
func (b *Builder) preprocess(e *dom.Element) *dom.Element {
	if b.processor == nil || !b.imageSel.Match(e.HTMLNode()) || e.HasAttr(b.skipAttr) {
		return e
	}
	original, ok := e.Attr("src")
	if !ok {
		return e
	}
	var uri *url.URL
	var err error
	switch m := parseSource(original).Match(); m {
	case m.Ok(&uri):
	case m.Err(&err):
		tracer().P("src", original).Debugf("image source is not an URI: %v", err)
		return e
	}
	if uri.Scheme != "" && uri.Scheme != "file" {
		return e
	}
	if b.basePath == "" {
		return e
	}
	var processed string
	answer := b.processor.ProcessFileSchemeResource(b.basePath, uri)
	if answer == nil {
		return e
	}
	switch m := answer.Match(); m {
	case m.Just(&processed):
		tracer().P("src", original).Debugf("image source rewritten to %s", processed)
	case m.Nothing():
		return e
	}
	return e.WithAttrs(rewrittenAttrs(e.Attrs, original, processed))
}

// rewrittenAttrs copies attrs, replacing the source and recording the
// original one. An existing original-source attribute is overwritten in
// place, otherwise it is appended.
func rewrittenAttrs(attrs []dom.Attr, original, processed string) []dom.Attr {
	out := make([]dom.Attr, len(attrs), len(attrs)+1)
	copy(out, attrs)
	hasOriginal := false
	for i := range out {
		if out[i].Key == OriginalSrcAttribute {
			out[i] = dom.Attr{Key: OriginalSrcAttribute, Val: original}
			hasOriginal = true
			break
		}
	}
	if !hasOriginal {
		out = append(out, dom.Attr{Key: OriginalSrcAttribute, Val: original})
	}
	for i := range out {
		if out[i].Key == "src" {
			out[i] = dom.Attr{Key: "src", Val: processed}
			break
		}
	}
	return out
}
