package resource

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/incdom"
	"github.com/npillmayer/incdom/maybe"
)

// resolve returns the absolute, cleaned file path uri refers to.
func resolve(basePath string, uri *url.URL) (string, bool) {
	if uri == nil || uri.Path == "" {
		return "", false
	}
	p := filepath.FromSlash(uri.Path)
	if !filepath.IsAbs(p) {
		p = filepath.Join(basePath, p)
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		tracer().P("path", p).Debugf("cannot make path absolute: %v", err)
		return "", false
	}
	return abs, true
}

func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// --- FileURL ---------------------------------------------------------------

// FileURL rewrites sources to absolute file-scheme URLs. If
// RequireExisting is set, sources referring to missing files are left
// alone.
type FileURL struct {
	RequireExisting bool
}

// ProcessFileSchemeResource is part of interface incdom.ResourceProcessor.
func (f FileURL) ProcessFileSchemeResource(basePath string, uri *url.URL) maybe.Maybe[string] {
	abs, ok := resolve(basePath, uri)
	if !ok {
		return maybe.Nothing[string]()
	}
	if f.RequireExisting && !exists(abs) {
		tracer().P("path", abs).Debugf("image file does not exist")
		return maybe.Nothing[string]()
	}
	u := &url.URL{
		Scheme:   "file",
		Path:     filepath.ToSlash(abs),
		RawQuery: uri.RawQuery,
		Fragment: uri.Fragment,
	}
	if !strings.HasPrefix(u.Path, "/") { // Windows drive letters
		u.Path = "/" + u.Path
	}
	return maybe.Just(u.String())
}

var _ incdom.ResourceProcessor = FileURL{}

// --- Served ----------------------------------------------------------------

// Served rewrites sources to URLs below Prefix, for hosts which serve the
// files of a document folder with a local resource server. Only files
// inside the base path are served.
type Served struct {
	Prefix string
}

// ProcessFileSchemeResource is part of interface incdom.ResourceProcessor.
func (s Served) ProcessFileSchemeResource(basePath string, uri *url.URL) maybe.Maybe[string] {
	abs, ok := resolve(basePath, uri)
	if !ok || s.Prefix == "" {
		return maybe.Nothing[string]()
	}
	base, err := filepath.Abs(basePath)
	if err != nil {
		return maybe.Nothing[string]()
	}
	rel, err := filepath.Rel(base, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		tracer().P("path", abs).Debugf("image is outside of %s, not served", base)
		return maybe.Nothing[string]()
	}
	u := &url.URL{Path: filepath.ToSlash(rel), RawQuery: uri.RawQuery, Fragment: uri.Fragment}
	return maybe.Just(strings.TrimSuffix(s.Prefix, "/") + "/" + u.String())
}

var _ incdom.ResourceProcessor = Served{}

// --- Chain -----------------------------------------------------------------

// Chain returns a processor which asks each of ps in turn and answers
// with the first rewrite offered.
func Chain(ps ...incdom.ResourceProcessor) incdom.ResourceProcessor {
	return incdom.ResourceProcessorFunc(func(basePath string, uri *url.URL) maybe.Maybe[string] {
		for _, p := range ps {
			if p == nil {
				continue
			}
			if m := p.ProcessFileSchemeResource(basePath, uri); m != nil && m.IsJust() {
				return m
			}
		}
		return maybe.Nothing[string]()
	})
}
