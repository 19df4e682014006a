/*
Package replay executes build scripts in a JavaScript VM.

A build-script closure is evaluated with goja against a stand-in for the
IncrementalDOM library, which records every call it receives. The recorded
calls carry decoded arguments, exactly as a browser would see them. This
is used to verify generated scripts without a browser, both in tests and
from the command line.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package replay

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'incdom.replay'.
func tracer() tracing.Trace {
	return tracing.Select("incdom.replay")
}
