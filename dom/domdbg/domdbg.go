/*
Package domdbg implements helpers to debug a document tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/incdom/dom"
	tp "github.com/xlab/treeprint"
)

// Dump renders a document tree as an indented text tree. Comments are
// included, even though they never make it into a build script.
func Dump(n dom.Node) string {
	if n == nil {
		return "<nil>\n"
	}
	printer := tp.NewWithRoot(n.String())
	if e, ok := n.(*dom.Element); ok {
		for _, ch := range e.Children {
			dumpNode(printer, ch)
		}
	}
	return printer.String()
}

func dumpNode(printer tp.Tree, n dom.Node) {
	switch x := n.(type) {
	case *dom.Element:
		branch := printer.AddBranch(x.String())
		for _, ch := range x.Children {
			dumpNode(branch, ch)
		}
	default:
		printer.AddNode(shorten(n.String(), 40))
	}
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

// ToGraphViz outputs a diagram for a document tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root node and
// a Writer.
func ToGraphViz(root dom.Node, w io.Writer) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[dom.Node]string, 256)
	if err = nodes(root, w, dict, &gparams); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a document node and a testing.T, it will
// create a Graphiviz image of the tree under `root` and write it to
// a file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(root dom.Node, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "dom.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing DOM digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(root, tmpfile); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing DOM tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	N    dom.Node
	Name string
	Kind string
	Tag  string
}

func nodes(n dom.Node, w io.Writer, dict map[dom.Node]string, gparams *graphParamsType) error {
	if err := domNode(n, w, dict, gparams); err != nil {
		return err
	}
	if e, ok := n.(*dom.Element); ok {
		for _, ch := range e.Children {
			if err := nodes(ch, w, dict, gparams); err != nil {
				return err
			}
			if err := domEdge(n, ch, w, dict, gparams); err != nil {
				return err
			}
		}
	}
	return nil
}

func domNode(n dom.Node, w io.Writer, dict map[dom.Node]string, gparams *graphParamsType) error {
	name := nameOf(n, dict)
	nd := &node{N: n, Name: name, Kind: n.Kind().String()}
	if e, ok := n.(*dom.Element); ok {
		nd.Tag = e.Tag
	}
	return gparams.NodeTmpl.Execute(w, nd)
}

func nameOf(n dom.Node, dict map[dom.Node]string) string {
	name := dict[n]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[n] = name
	}
	return name
}

type edge struct {
	N1, N2 string
}

func domEdge(n1, n2 dom.Node, w io.Writer, dict map[dom.Node]string,
	gparams *graphParamsType) error {
	//
	return gparams.EdgeTmpl.Execute(w, edge{nameOf(n1, dict), nameOf(n2, dict)})
}

func shortText(n dom.Node) string {
	var content string
	switch x := n.(type) {
	case *dom.Text:
		content = x.Content
	case *dom.Data:
		content = x.Content
	case *dom.Comment:
		content = x.Content
	}
	s := "\"\\\"" + shorten(content, 10) + "\\\"\""
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

func shorten(s string, max int) string {
	r := []rune(s)
	if len(r) > max {
		return string(r[:max]) + "..."
	}
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if eq .Kind "element" }}
{{ .Name }}	[ label={{ printf "%q" .Tag }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ else }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ end }}
`

const domEdgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`
