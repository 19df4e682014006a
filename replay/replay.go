package replay

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dop251/goja"
)

// ErrNotAFunction is returned if a script does not evaluate to a function.
var ErrNotAFunction = errors.New("script does not evaluate to a function")

// ErrUnbalanced is returned by Balanced for calls which do not nest.
var ErrUnbalanced = errors.New("open and close calls do not nest")

// Op is the kind of a recorded call.
type Op uint8

// Recorded operations.
const (
	Open Op = iota + 1
	Text
	Close
)

func (op Op) String() string {
	switch op {
	case Open:
		return "open"
	case Text:
		return "text"
	case Close:
		return "close"
	}
	return "?"
}

// Call is a recorded IncrementalDOM call. Attrs holds the flat key/value
// list passed to elementOpen; Text is set for text calls only.
type Call struct {
	Op    Op
	Tag   string
	Attrs []string
	Text  string
}

func (c Call) String() string {
	switch c.Op {
	case Open:
		if len(c.Attrs) == 0 {
			return fmt.Sprintf("open(%q)", c.Tag)
		}
		return fmt.Sprintf("open(%q, %q)", c.Tag, c.Attrs)
	case Text:
		return fmt.Sprintf("text(%q)", c.Text)
	case Close:
		return fmt.Sprintf("close(%q)", c.Tag)
	}
	return "?"
}

// Run evaluates a build-script closure and calls it, with a recording
// stand-in installed as global object renderer. It returns the calls in
// the order they were made.
func Run(closure string, renderer string) ([]Call, error) {
	vm := goja.New()
	var calls []Call
	idom := vm.NewObject()
	set := func(name string, f func(goja.FunctionCall) goja.Value) error {
		return idom.Set(name, f)
	}
	err := set("elementOpen", func(call goja.FunctionCall) goja.Value {
		c := Call{Op: Open, Tag: call.Argument(0).String()}
		if len(call.Arguments) > 3 {
			c.Attrs = make([]string, 0, len(call.Arguments)-3)
			for _, a := range call.Arguments[3:] {
				c.Attrs = append(c.Attrs, a.String())
			}
		}
		calls = append(calls, c)
		return goja.Undefined()
	})
	if err == nil {
		err = set("text", func(call goja.FunctionCall) goja.Value {
			calls = append(calls, Call{Op: Text, Text: call.Argument(0).String()})
			return goja.Undefined()
		})
	}
	if err == nil {
		err = set("elementClose", func(call goja.FunctionCall) goja.Value {
			calls = append(calls, Call{Op: Close, Tag: call.Argument(0).String()})
			return goja.Undefined()
		})
	}
	if err == nil {
		err = vm.Set(renderer, idom)
	}
	if err != nil {
		return nil, err
	}
	v, err := vm.RunString("(" + closure + ")")
	if err != nil {
		return nil, fmt.Errorf("evaluating closure: %w", err)
	}
	fn, ok := goja.AssertFunction(v)
	if !ok {
		return nil, ErrNotAFunction
	}
	if _, err = fn(goja.Undefined()); err != nil {
		return calls, fmt.Errorf("calling closure: %w", err)
	}
	tracer().Debugf("replayed %d calls", len(calls))
	return calls, nil
}

// Balanced checks that every open call is matched by a close call for
// the same tag, properly nested.
func Balanced(calls []Call) error {
	var stack []string
	for i, c := range calls {
		switch c.Op {
		case Open:
			stack = append(stack, c.Tag)
		case Close:
			if len(stack) == 0 {
				return fmt.Errorf("%w: call #%d closes %q, nothing is open", ErrUnbalanced, i, c.Tag)
			}
			top := stack[len(stack)-1]
			if top != c.Tag {
				return fmt.Errorf("%w: call #%d closes %q, open is %q", ErrUnbalanced, i, c.Tag, top)
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		return fmt.Errorf("%w: %s left open", ErrUnbalanced, strings.Join(stack, ", "))
	}
	return nil
}
