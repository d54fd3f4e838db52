package xmldom

import (
	xmlerrors "github.com/jacoelho/xmldom/errors"
	"github.com/jacoelho/xmldom/internal/tree"
)

// NodesForXPath evaluates a path expression with this node as the context
// node and returns the matches, each wrapped as a non-owning alias owned by
// n. Elements keep their specialized view reachable through AsElement; all
// other record kinds come back as plain node handles. An empty node set is
// a valid result, not an error.
//
// Errors: ErrNoMemory when an evaluation context cannot be created,
// ErrEvaluationFailed when evaluation does not yield a usable node set.
// The evaluation context and result set are released before returning on
// every path.
func (n *Node) NodesForXPath(expr string) ([]*Node, error) {
	root := n.queryRoot()
	ctx := n.eng.NewXPathContext(root)
	if ctx == nil {
		return nil, xmlerrors.New(xmlerrors.ErrNoMemory, "create xpath context")
	}
	defer n.eng.FreeContext(ctx)

	n.eng.SetContextNode(ctx, n.raw)

	result := n.eng.Evaluate(ctx, expr)
	if result == nil {
		return nil, xmlerrors.Newf(xmlerrors.ErrEvaluationFailed, "evaluate %q", expr)
	}
	defer n.eng.FreeResultSet(result)

	raws := result.Nodes()
	nodes := make([]*Node, 0, len(raws))
	for _, raw := range raws {
		nodes = append(nodes, wrap(n.eng, raw, n))
	}
	return nodes, nil
}

// queryRoot returns the record evaluation is rooted at: the owning
// document when the record is part of one, otherwise the top of the
// detached structure the record belongs to. Nil when the handle wraps no
// record.
func (n *Node) queryRoot() *tree.Node {
	if n.raw == nil {
		return nil
	}
	if n.raw.Doc != nil {
		return n.raw.Doc
	}
	return n.raw.Root()
}
