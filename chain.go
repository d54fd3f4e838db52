package xmldom

import (
	"github.com/jacoelho/xmldom/internal/tree"
)

// unlink removes n from the doubly-linked chain headed and tailed by the
// given slots, then clears n's parent and sibling links. The same routine
// serves both the sibling chain (FirstChild/LastChild) and the attribute
// chain (Properties/LastProp); only the slots differ.
func unlink(head, tail **tree.Node, n *tree.Node) {
	switch {
	case n.Prev == nil:
		*head = n.Next
		if n.Next == nil {
			*tail = nil
		} else {
			n.Next.Prev = nil
		}
	case n.Next == nil:
		*tail = n.Prev
		n.Prev.Next = nil
	default:
		n.Prev.Next = n.Next
		n.Next.Prev = n.Prev
	}
	n.Parent = nil
	n.Prev = nil
	n.Next = nil
}
