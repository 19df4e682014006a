/*
Package dom provides the document tree a build script is generated from.

Overview

A document tree consists of four kinds of nodes: elements, text, raw data
(the payload of script and style elements) and comments. Nodes form a
closed sum type; clients dispatch with a type switch

	switch n := node.(type) {
	case *dom.Element:
	case *dom.Text:
	case *dom.Data:
	case *dom.Comment:
	}

Trees are usually created by parsing HTML, which is delegated to
golang.org/x/net/html. The parser always synthesizes html, head and body
elements, so every parsed Document has a body. Trees may as well be built
by hand with the short constructors E, A, T, D and C, which is what most of
the tests do.

Trees are treated as immutable once built. Operations which need a
modified element, like rewriting an image source, create a shallow copy
with WithAttrs.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'incdom.dom'.
func tracer() tracing.Trace {
	return tracing.Select("incdom.dom")
}
