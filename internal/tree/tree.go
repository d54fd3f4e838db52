// Package tree implements the raw XML tree engine: record storage, parsing,
// serialization, content access, and XPath evaluation. Records are mutable
// and externally owned; the handle layer above performs its own pointer
// surgery on the exported chain fields.
package tree

// NodeType classifies raw tree records.
type NodeType int

const (
	// ElementNode identifies an element record.
	ElementNode NodeType = iota + 1
	// AttributeNode identifies an attribute record. Attribute records chain
	// through the same Next/Prev slots as siblings but hang off an element's
	// Properties/LastProp heads, never off FirstChild.
	AttributeNode
	// TextNode identifies a text record; Content holds the unescaped text.
	TextNode
	// CommentNode identifies a comment record.
	CommentNode
	// DocumentNode identifies the document root record.
	DocumentNode
)

// Namespace binds a prefix to a namespace URI.
type Namespace struct {
	Prefix string
	URI    string
}

// Node is a raw tree record. One struct serves every record kind; the Type
// tag decides which fields are meaningful. Chain fields are exported because
// the handle layer splices them directly.
type Node struct {
	Type    NodeType
	Name    string
	Content string
	NS      *Namespace

	// NSDefs lists the namespace declarations made on this element, in
	// document order. Used only for serialization.
	NSDefs []*Namespace

	// Options carries the parse options on document records; zero elsewhere.
	Options int

	Doc    *Node
	Parent *Node
	Prev   *Node
	Next   *Node

	FirstChild *Node
	LastChild  *Node

	// Properties/LastProp head and tail the attribute chain on elements.
	Properties *Node
	LastProp   *Node

	freed bool
}

// Root walks Parent links to the top of the structure this record is part of.
func (n *Node) Root() *Node {
	r := n
	for r.Parent != nil {
		r = r.Parent
	}
	return r
}

// QualifiedName returns prefix:name when the record has a prefixed
// namespace, the plain name otherwise.
func (n *Node) QualifiedName() string {
	if n.NS != nil && n.NS.Prefix != "" {
		return n.NS.Prefix + ":" + n.Name
	}
	return n.Name
}
