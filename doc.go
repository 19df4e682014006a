/*
Package incdom generates scripts which rebuild an HTML document with
IncrementalDOM.

Overview

A live preview of a document (e.g. rendered markdown) is updated most
smoothly by patching the DOM in place rather than replacing it. The
IncrementalDOM library does this from a sequence of elementOpen, text
and elementClose calls. A Builder walks the body of a parsed document
and produces exactly this sequence, wrapped into a closure which a host
hands over to the browser:

	b, err := incdom.New(htmlText, incdom.WithBasePath(dir))
	...
	js := b.RenderClosure()
	// in the browser: IncrementalDOM.patch(root, eval(js))

All arguments in the generated script are percent-encoded and decoded
again inside the closure. Some browser embeddings do not transport
arbitrary Unicode (emojis, in particular) in script code, and encoded
arguments never need any quoting.

Local resources

Images referring to local files usually cannot be loaded by the browser
as they are. Clients may install a ResourceProcessor which is asked to
replace the source of each image with a relative or file-scheme URI.
Package resource has ready-made processors.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package incdom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'incdom'.
func tracer() tracing.Trace {
	return tracing.Select("incdom")
}
