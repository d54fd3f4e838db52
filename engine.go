package xmldom

import (
	"github.com/jacoelho/xmldom/internal/tree"
)

// engine is the capability surface this layer requires from the tree
// engine: allocation and deterministic deallocation of raw records,
// parsing, content access with escaping, serialization, structural append,
// and XPath evaluation. Detach and attribute-removal pointer surgery is
// deliberately not part of it; the handle layer performs that itself.
type engine interface {
	Parse(text, charset string, options int) *tree.Node

	FreeDocument(doc *tree.Node)
	FreeNode(n *tree.Node)
	FreeAttribute(a *tree.Node)

	NewNode(name string) *tree.Node
	NewAttribute(name, value string) *tree.Node
	NewText(value string) *tree.Node

	GetContent(n *tree.Node) string
	SetContent(n *tree.Node, escaped string)
	Escape(doc *tree.Node, s string) string

	Dump(n, doc *tree.Node) string
	AppendChild(parent, child *tree.Node)

	NewXPathContext(doc *tree.Node) *tree.XPathContext
	SetContextNode(ctx *tree.XPathContext, n *tree.Node)
	Evaluate(ctx *tree.XPathContext, expr string) *tree.XPathResult
	FreeContext(ctx *tree.XPathContext)
	FreeResultSet(r *tree.XPathResult)
}

var _ engine = (*tree.Engine)(nil)

// defaultEngine backs the package-level constructors. Handles created
// against different engines must not be mixed in one tree.
var defaultEngine engine = tree.NewEngine()
