package preview

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/npillmayer/incdom"
)

// Renderer converts markdown to build scripts.
type Renderer struct {
	md   goldmark.Markdown
	opts []incdom.Option
}

// Config holds the markdown options of a Renderer.
type Config struct {
	// AllowRawHTML passes HTML embedded in markdown through. Otherwise
	// it is replaced by a comment.
	AllowRawHTML bool
	// HardWraps renders newlines inside paragraphs as line breaks.
	HardWraps bool
}

// New creates a Renderer. opts are passed on to every incdom.Builder
// created.
func New(conf Config, opts ...incdom.Option) *Renderer {
	var ro []renderer.Option
	if conf.AllowRawHTML {
		ro = append(ro, gmhtml.WithUnsafe())
	}
	if conf.HardWraps {
		ro = append(ro, gmhtml.WithHardWraps())
	}
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(ro...),
	)
	return &Renderer{
		md:   md,
		opts: opts,
	}
}

// HTML converts markdown source to HTML.
func (r *Renderer) HTML(source []byte) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(source, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Builder converts markdown source to HTML and creates a Builder for it.
func (r *Renderer) Builder(source []byte) (*incdom.Builder, error) {
	h, err := r.HTML(source)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("markdown rendered to %d bytes of HTML", len(h))
	return incdom.New(h, r.opts...)
}

// Closure converts markdown source to a build-script closure.
func (r *Renderer) Closure(source []byte) (string, error) {
	b, err := r.Builder(source)
	if err != nil {
		return "", err
	}
	return b.RenderClosure(), nil
}
