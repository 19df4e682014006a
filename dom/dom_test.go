package dom_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/npillmayer/incdom/dom"
)

func TestParseFindsBody(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "incdom.dom")
	defer teardown()
	//
	doc, err := dom.ParseString(`<p class="x">Hello</p>`)
	require.NoError(t, err)
	body := doc.Body()
	require.NotNil(t, body)
	assert.Equal(t, "body", body.Tag)
	require.Len(t, body.Children, 1)
	p, ok := body.Children[0].(*dom.Element)
	require.True(t, ok, "expected first child to be an element")
	assert.Equal(t, "p", p.Tag)
	assert.Equal(t, []dom.Attr{{Key: "class", Val: "x"}}, p.Attrs)
	assert.Equal(t, "Hello", dom.TextContent(p))
	assert.Equal(t, "html", doc.Root().Tag)
}

func TestParseScriptAndStyleAreData(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "incdom.dom")
	defer teardown()
	//
	doc, err := dom.ParseString(`<body><script>if (a < b) {}</script><style>p{}</style><!-- c --><b>x</b></body>`)
	require.NoError(t, err)
	kinds := []dom.Kind{}
	dom.Walk(doc.Body(), func(n dom.Node) bool {
		kinds = append(kinds, n.Kind())
		return true
	})
	expected := []dom.Kind{
		dom.ElementKind,               // body
		dom.ElementKind, dom.DataKind, // script
		dom.ElementKind, dom.DataKind, // style
		dom.CommentKind,               // comment
		dom.ElementKind, dom.TextKind, // b
	}
	assert.Equal(t, expected, kinds)
	scripts := dom.FindAll(doc.Body(), dom.IsElement("script"))
	require.Len(t, scripts, 1)
	assert.Equal(t, "if (a < b) {}", dom.TextContent(scripts[0]))
}

func TestParseFramesetHasEmptyBody(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "incdom.dom")
	defer teardown()
	//
	doc, err := dom.ParseString(`<html><frameset><frame src="a.html"></frameset></html>`)
	require.NoError(t, err)
	assert.Equal(t, "body", doc.Body().Tag)
	assert.Empty(t, doc.Body().Children)
}

func TestAttrHelpers(t *testing.T) {
	img := dom.E("img", dom.A("src", "a.png", "alt", "", "hidden"))
	src, ok := img.Attr("src")
	assert.True(t, ok)
	assert.Equal(t, "a.png", src)
	assert.True(t, img.HasAttr("alt"))
	assert.False(t, img.HasAttr("title"))
	assert.Equal(t, dom.Attr{Key: "alt", Val: ""}, img.Attrs[1])
	assert.Equal(t, dom.Attr{Key: "hidden", NoValue: true}, img.Attrs[2])
	assert.Equal(t, `<img src="a.png" alt="" hidden>`, img.String())
}

func TestWithAttrsDoesNotTouchOriginal(t *testing.T) {
	img := dom.E("img", dom.A("src", "a.png"), dom.T("x"))
	cp := img.WithAttrs(dom.A("src", "b.png"))
	src, _ := img.Attr("src")
	assert.Equal(t, "a.png", src)
	src, _ = cp.Attr("src")
	assert.Equal(t, "b.png", src)
	assert.Equal(t, img.Children, cp.Children)
}

func TestHTMLNodeShell(t *testing.T) {
	n := dom.E("img", dom.A("src", "a.png")).HTMLNode()
	assert.Equal(t, html.ElementNode, n.Type)
	assert.Equal(t, "img", n.Data)
	assert.Nil(t, n.Parent)
	assert.Equal(t, []html.Attribute{{Key: "src", Val: "a.png"}}, n.Attr)
}

func TestWalkSkipsChildren(t *testing.T) {
	tree := dom.E("div", nil,
		dom.E("p", nil, dom.T("a")),
		dom.E("pre", nil, dom.T("b")),
	)
	var texts []string
	dom.Walk(tree, func(n dom.Node) bool {
		if e, ok := n.(*dom.Element); ok && e.Tag == "pre" {
			return false
		}
		if tx, ok := n.(*dom.Text); ok {
			texts = append(texts, tx.Content)
		}
		return true
	})
	assert.Equal(t, []string{"a"}, texts)
	assert.Len(t, dom.FindAll(tree, dom.IsText), 2)
}

func TestNamespacedAttributes(t *testing.T) {
	doc, err := dom.ParseString(`<svg><use xlink:href="#i"></use></svg>`)
	require.NoError(t, err)
	uses := dom.FindAll(doc.Body(), dom.IsElement("use"))
	require.Len(t, uses, 1)
	v, ok := uses[0].(*dom.Element).Attr("xlink:href")
	assert.True(t, ok)
	assert.Equal(t, "#i", v)
}
