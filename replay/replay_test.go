package replay_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/incdom/replay"
)

const closure = "() => {\n" +
	"  const o = (tag, ...attrs) => IncrementalDOM.elementOpen(decodeURIComponent(tag), null, null, ...attrs.map(decodeURIComponent));\n" +
	"  const t = content => IncrementalDOM.text(decodeURIComponent(content));\n" +
	"  const c = tag => IncrementalDOM.elementClose(decodeURIComponent(tag));\n" +
	"  o('div');o('p','class','a%20b');t(`Hello%20%F0%9F%98%80`);c('p');c('div');\n" +
	"}"

func TestRunRecordsDecodedCalls(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "incdom.replay")
	defer teardown()
	//
	calls, err := replay.Run(closure, "IncrementalDOM")
	require.NoError(t, err)
	expected := []replay.Call{
		{Op: replay.Open, Tag: "div"},
		{Op: replay.Open, Tag: "p", Attrs: []string{"class", "a b"}},
		{Op: replay.Text, Text: "Hello 😀"},
		{Op: replay.Close, Tag: "p"},
		{Op: replay.Close, Tag: "div"},
	}
	assert.Equal(t, expected, calls)
	assert.NoError(t, replay.Balanced(calls))
}

func TestRunCustomRenderer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "incdom.replay")
	defer teardown()
	//
	calls, err := replay.Run("() => { R.elementOpen('x'); R.elementClose('x'); }", "R")
	require.NoError(t, err)
	assert.Len(t, calls, 2)
}

func TestRunRejectsNonFunction(t *testing.T) {
	_, err := replay.Run("42", "IncrementalDOM")
	assert.True(t, errors.Is(err, replay.ErrNotAFunction), "expected ErrNotAFunction, got %v", err)
}

func TestRunReportsSyntaxErrors(t *testing.T) {
	_, err := replay.Run("() => { o('div' }", "IncrementalDOM")
	assert.Error(t, err)
}

func TestBalanced(t *testing.T) {
	open := func(tag string) replay.Call { return replay.Call{Op: replay.Open, Tag: tag} }
	closeTag := func(tag string) replay.Call { return replay.Call{Op: replay.Close, Tag: tag} }
	text := replay.Call{Op: replay.Text, Text: "x"}

	assert.NoError(t, replay.Balanced(nil))
	assert.NoError(t, replay.Balanced([]replay.Call{open("a"), text, open("b"), closeTag("b"), closeTag("a")}))
	for _, calls := range [][]replay.Call{
		{open("a")},
		{closeTag("a")},
		{open("a"), open("b"), closeTag("a"), closeTag("b")},
	} {
		err := replay.Balanced(calls)
		assert.True(t, errors.Is(err, replay.ErrUnbalanced), "expected %v to be unbalanced, got %v", calls, err)
	}
}

func TestCallString(t *testing.T) {
	assert.Equal(t, `open("p", ["class" "a"])`, replay.Call{Op: replay.Open, Tag: "p", Attrs: []string{"class", "a"}}.String())
	assert.Equal(t, `text("x")`, replay.Call{Op: replay.Text, Text: "x"}.String())
	assert.Equal(t, `close("p")`, replay.Call{Op: replay.Close, Tag: "p"}.String())
}
