/*
Package preview renders markdown documents into IncrementalDOM build
scripts.

Markdown is converted to HTML with goldmark (GitHub flavoured), the HTML
is handed to an incdom.Builder. This is the typical setup for a live
preview: on every edit the host re-renders the document and patches the
browser DOM with the resulting closure.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package preview

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'incdom.preview'.
func tracer() tracing.Trace {
	return tracing.Select("incdom.preview")
}
