package dom

// Predicate is a function type to match against nodes of a tree.
type Predicate func(n Node) bool

// IsText is a predicate to match text-nodes of a document. Raw data
// nodes do not match.
var IsText Predicate = func(n Node) bool {
	_, ok := n.(*Text)
	return ok
}

// IsElement returns a predicate matching elements with a given tag.
// An empty tag matches every element.
func IsElement(tag string) Predicate {
	return func(n Node) bool {
		e, ok := n.(*Element)
		return ok && (tag == "" || e.Tag == tag)
	}
}

// Walk visits n and its descendants in pre-order. If fn returns false,
// the children of the visited node are skipped.
func Walk(n Node, fn func(Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	if e, ok := n.(*Element); ok {
		for _, ch := range e.Children {
			Walk(ch, fn)
		}
	}
}

// FindAll collects all nodes below and including n which match p,
// in document order.
func FindAll(n Node, p Predicate) []Node {
	var found []Node
	Walk(n, func(x Node) bool {
		if p(x) {
			found = append(found, x)
		}
		return true
	})
	return found
}

// TextContent concatenates the content of all text and data nodes
// below n.
func TextContent(n Node) string {
	var s []byte
	Walk(n, func(x Node) bool {
		switch t := x.(type) {
		case *Text:
			s = append(s, t.Content...)
		case *Data:
			s = append(s, t.Content...)
		}
		return true
	})
	return string(s)
}
