package incdom

import (
	"github.com/andybalholm/cascadia"
)

const (
	// DefaultContainerTag replaces the body element, as a patch target
	// cannot hold a body.
	DefaultContainerTag = "div"
	// DefaultRenderer is the name of the global IncrementalDOM object.
	DefaultRenderer = "IncrementalDOM"
	// DefaultSkipAttribute marks images whose source must not be
	// processed.
	DefaultSkipAttribute = "data-ignore-path-processing"
	// OriginalSrcAttribute keeps the source of an image after rewriting.
	OriginalSrcAttribute = "data-original-src"
	// DefaultImageSelector selects the elements subject to source rewriting.
	DefaultImageSelector = "img"
)

// Option configures a Builder.
type Option func(*Builder)

// WithBasePath sets the directory relative resources are resolved against.
// Without a base path, no resources are rewritten.
func WithBasePath(path string) Option {
	return func(b *Builder) {
		b.basePath = path
	}
}

// WithResourceProcessor installs a hook to rewrite image sources.
// A nil processor disables rewriting.
func WithResourceProcessor(p ResourceProcessor) Option {
	return func(b *Builder) {
		b.processor = p
	}
}

// WithContainerTag sets the tag the body element is emitted as.
func WithContainerTag(tag string) Option {
	return func(b *Builder) {
		if tag != "" {
			b.containerTag = tag
		}
	}
}

// WithRenderer sets the name of the global object providing elementOpen,
// text and elementClose.
func WithRenderer(name string) Option {
	return func(b *Builder) {
		if name != "" {
			b.renderer = name
		}
	}
}

// WithSkipAttribute sets the name of the attribute which excludes an
// image from source rewriting.
func WithSkipAttribute(name string) Option {
	return func(b *Builder) {
		if name != "" {
			b.skipAttr = name
		}
	}
}

// WithImageSelector sets the matcher for elements subject to source
// rewriting. Matching is done on the element alone, without its
// ancestors, so only simple selectors (type, attribute, :not) are
// meaningful.
func WithImageSelector(m cascadia.Matcher) Option {
	return func(b *Builder) {
		if m != nil {
			b.imageSel = m
		}
	}
}

var defaultImageSelector = cascadia.MustCompile(DefaultImageSelector)
