package domdbg_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/incdom/dom"
	"github.com/npillmayer/incdom/dom/domdbg"
)

func sample() *dom.Element {
	return dom.E("body", nil,
		dom.E("p", dom.A("class", "lead"), dom.T("Hello World, this is long")),
		dom.C(" note "),
	)
}

func TestDump(t *testing.T) {
	out := domdbg.Dump(sample())
	t.Logf("\n%s", out)
	if !strings.HasPrefix(out, "<body>") {
		t.Errorf("expected dump to start with the root element, is %q", out)
	}
	for _, part := range []string{`<p class="lead">`, `#text "Hello World`, `#comment`} {
		if !strings.Contains(out, part) {
			t.Errorf("expected dump to contain %q, doesn't", part)
		}
	}
}

func TestDumpNil(t *testing.T) {
	if out := domdbg.Dump(nil); out != "<nil>\n" {
		t.Errorf("expected <nil> for empty tree, is %q", out)
	}
}

func TestGraphViz(t *testing.T) {
	var buf bytes.Buffer
	if err := domdbg.ToGraphViz(sample(), &buf); err != nil {
		t.Fatal(err)
	}
	dot := buf.String()
	if !strings.HasPrefix(dot, "digraph g {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("expected a complete digraph, got\n%s", dot)
	}
	if n := strings.Count(dot, "->"); n != 3 {
		t.Logf("\n%s", dot)
		t.Errorf("expected 3 edges, have %d", n)
	}
	if !strings.Contains(dot, `label="p"`) {
		t.Errorf("expected element node labelled p, got\n%s", dot)
	}
}
