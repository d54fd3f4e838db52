package xmldom

import (
	"iter"

	"github.com/jacoelho/xmldom/internal/tree"
)

// Node is a handle to one raw tree record. A Node either owns its record
// (owner is nil: Close frees the record) or aliases a record whose lifetime
// belongs to another handle. A Node never changes which record it wraps.
type Node struct {
	eng engine
	raw *tree.Node

	// owner is nil exactly when this handle is the freeing owner of raw.
	// At most one live handle owns a given record.
	owner *Node
}

// Kind returns the record kind behind this handle.
func (n *Node) Kind() Kind {
	return kindOf(n.raw)
}

// AsElement returns the element view of this handle, or nil when the record
// is not an element.
func (n *Node) AsElement() *Element {
	if n.Kind() != KindElement {
		return nil
	}
	return &Element{n}
}

// AsAttribute returns the attribute view of this handle, or nil when the
// record is not an attribute.
func (n *Node) AsAttribute() *Attribute {
	if n.Kind() != KindAttribute {
		return nil
	}
	return &Attribute{n}
}

// Name returns the record's tag or attribute name. Record kinds without a
// name, such as text records, return the empty string.
func (n *Node) Name() string {
	if n.raw == nil {
		return ""
	}
	return n.raw.Name
}

// StringValue returns the record's text content, recursively concatenated
// for elements. Returns the empty string for a handle with no record.
func (n *Node) StringValue() string {
	if n.raw == nil {
		return ""
	}
	return n.eng.GetContent(n.raw)
}

// SetStringValue replaces the record's content with the XML-escaped
// encoding of s, so serializing and re-parsing recovers s byte for byte.
// Panics when the handle wraps no record; that is a caller contract
// violation, not a recoverable condition.
func (n *Node) SetStringValue(s string) {
	if n.raw == nil {
		panic("xmldom: SetStringValue on a handle with no record")
	}
	escaped := n.eng.Escape(n.raw.Doc, s)
	n.eng.SetContent(n.raw, escaped)
}

// Children returns an ordered, restartable sequence over the record's child
// chain. Every yielded handle is a non-owning alias owned by n and must not
// outlive it.
func (n *Node) Children() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if n.raw == nil {
			return
		}
		for child := n.raw.FirstChild; child != nil; child = child.Next {
			if !yield(wrap(n.eng, child, n)) {
				return
			}
		}
	}
}

// Parent returns a non-owning alias to the parent record's handle, or nil
// at the tree root.
func (n *Node) Parent() *Node {
	if n.raw == nil || n.raw.Parent == nil {
		return nil
	}
	return wrap(n.eng, n.raw.Parent, n)
}

// XMLString serializes the record and its subtree to an XML fragment.
// Returns the empty string on serialization failure.
func (n *Node) XMLString() string {
	if n.raw == nil {
		return ""
	}
	return n.eng.Dump(n.raw, n.raw.Doc)
}

// Detach removes the record from its parent's chain and clears its parent
// and sibling links. Content and attributes are untouched. No-op when the
// handle wraps no record or the record has no parent. Detaching does not
// change which handle owns the record.
func (n *Node) Detach() {
	if n.raw == nil || n.raw.Parent == nil {
		return
	}
	parent := n.raw.Parent
	if n.raw.Type == tree.AttributeNode {
		unlink(&parent.Properties, &parent.LastProp, n.raw)
		n.raw.NS = nil
		return
	}
	unlink(&parent.FirstChild, &parent.LastChild, n.raw)
}

// Close releases the handle. An owning handle frees its record and the
// whole subtree below it, exactly once; a non-owning alias only drops its
// reference. Aliases into the subtree must not be used afterwards.
func (n *Node) Close() {
	if n.raw == nil {
		return
	}
	if n.owner == nil {
		switch n.raw.Type {
		case tree.DocumentNode:
			n.eng.FreeDocument(n.raw)
		case tree.AttributeNode:
			n.eng.FreeAttribute(n.raw)
		default:
			n.eng.FreeNode(n.raw)
		}
	}
	n.raw = nil
}

// NewTextNode returns a new, unattached, owning text-node handle.
func NewTextNode(value string) *Node {
	return newTextNode(defaultEngine, value)
}

func newTextNode(eng engine, value string) *Node {
	return &Node{eng: eng, raw: eng.NewText(value)}
}
