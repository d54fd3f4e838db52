package tree

import (
	"github.com/antchfx/xpath"
)

// XPathContext is a transient evaluation context rooted at a document (or
// any subtree root) with a current node for relative expressions.
type XPathContext struct {
	root     *Node
	cur      *Node
	released bool
}

// XPathResult is the raw node set produced by one evaluation.
type XPathResult struct {
	nodes    []*Node
	released bool
}

// Nodes returns the matched records in evaluation order.
func (r *XPathResult) Nodes() []*Node {
	if r == nil {
		return nil
	}
	return r.nodes
}

// NewXPathContext creates an evaluation context rooted at doc. Returns nil
// when no root is given.
func (e *Engine) NewXPathContext(doc *Node) *XPathContext {
	if doc == nil {
		return nil
	}
	e.liveContexts++
	return &XPathContext{root: doc, cur: doc}
}

// SetContextNode binds the context's current node for relative expressions.
func (e *Engine) SetContextNode(ctx *XPathContext, n *Node) {
	if ctx == nil || n == nil {
		return
	}
	ctx.cur = n
}

// FreeContext releases an evaluation context. Safe to call once per context.
func (e *Engine) FreeContext(ctx *XPathContext) {
	if ctx == nil || ctx.released {
		return
	}
	ctx.released = true
	e.liveContexts--
}

// FreeResultSet releases a result set. Safe to call once per result set.
func (e *Engine) FreeResultSet(r *XPathResult) {
	if r == nil || r.released {
		return
	}
	r.released = true
	e.liveResultSets--
}

// Evaluate runs an expression against the context and returns the matched
// node set, or nil when compilation or evaluation does not produce a usable
// node set. An empty match is a non-nil, empty result.
func (e *Engine) Evaluate(ctx *XPathContext, expr string) (result *XPathResult) {
	if ctx == nil {
		return nil
	}
	compiled, err := xpath.Compile(expr)
	if err != nil {
		return nil
	}

	// The evaluator panics on expressions that compile but cannot produce
	// a node set; treat that as evaluation failure, not a crash.
	defer func() {
		if recover() != nil {
			result = nil
		}
	}()

	nav := &recordNav{root: ctx.root, cur: ctx.cur}
	iter := compiled.Select(nav)
	res := &XPathResult{nodes: []*Node{}}
	for iter.MoveNext() {
		cur, ok := iter.Current().(*recordNav)
		if !ok {
			return nil
		}
		res.nodes = append(res.nodes, cur.record())
	}
	e.liveResultSets++
	return res
}

// recordNav adapts raw records to the evaluator's navigator contract. When
// attr is set the navigator is positioned on an attribute of cur.
type recordNav struct {
	root *Node
	cur  *Node
	attr *Node
}

func (n *recordNav) record() *Node {
	if n.attr != nil {
		return n.attr
	}
	return n.cur
}

func (n *recordNav) NodeType() xpath.NodeType {
	if n.attr != nil {
		return xpath.AttributeNode
	}
	switch n.cur.Type {
	case ElementNode:
		return xpath.ElementNode
	case AttributeNode:
		return xpath.AttributeNode
	case TextNode:
		return xpath.TextNode
	case CommentNode:
		return xpath.CommentNode
	default:
		return xpath.RootNode
	}
}

func (n *recordNav) LocalName() string {
	if n.attr != nil {
		return n.attr.Name
	}
	return n.cur.Name
}

func (n *recordNav) Prefix() string {
	rec := n.record()
	if rec.NS != nil {
		return rec.NS.Prefix
	}
	return ""
}

func (n *recordNav) Value() string {
	return getContent(n.record())
}

func (n *recordNav) Copy() xpath.NodeNavigator {
	cp := *n
	return &cp
}

func (n *recordNav) MoveToRoot() {
	n.cur = n.root
	n.attr = nil
}

func (n *recordNav) MoveToParent() bool {
	if n.attr != nil {
		n.attr = nil
		return true
	}
	if n.cur.Parent == nil {
		return false
	}
	n.cur = n.cur.Parent
	return true
}

func (n *recordNav) MoveToChild() bool {
	if n.attr != nil || n.cur.FirstChild == nil {
		return false
	}
	n.cur = n.cur.FirstChild
	return true
}

func (n *recordNav) MoveToFirst() bool {
	if n.attr != nil {
		return false
	}
	for n.cur.Prev != nil {
		n.cur = n.cur.Prev
	}
	return true
}

func (n *recordNav) MoveToNext() bool {
	if n.attr != nil || n.cur.Next == nil {
		return false
	}
	n.cur = n.cur.Next
	return true
}

func (n *recordNav) MoveToPrevious() bool {
	if n.attr != nil || n.cur.Prev == nil {
		return false
	}
	n.cur = n.cur.Prev
	return true
}

func (n *recordNav) MoveToAttribute(_, name string) bool {
	if n.attr != nil || n.cur.Type != ElementNode {
		return false
	}
	for a := n.cur.Properties; a != nil; a = a.Next {
		if a.Name == name {
			n.attr = a
			return true
		}
	}
	return false
}

// MoveToNextAttribute positions on the first attribute when called on an
// element, matching the evaluator's attribute-axis iteration protocol.
func (n *recordNav) MoveToNextAttribute() bool {
	if n.cur.Type != ElementNode {
		return false
	}
	if n.attr == nil {
		if n.cur.Properties == nil {
			return false
		}
		n.attr = n.cur.Properties
		return true
	}
	if n.attr.Next == nil {
		return false
	}
	n.attr = n.attr.Next
	return true
}

func (n *recordNav) MoveToNamespace(string) bool { return false }

func (n *recordNav) MoveToNextNamespace() bool { return false }

func (n *recordNav) MoveTo(other xpath.NodeNavigator) bool {
	o, ok := other.(*recordNav)
	if !ok {
		return false
	}
	n.root = o.root
	n.cur = o.cur
	n.attr = o.attr
	return true
}
