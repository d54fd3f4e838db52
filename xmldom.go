// Package xmldom provides an object view over a mutable XML tree owned by a
// lower-level tree engine. Handles navigate, query, build, and mutate the
// tree; the engine owns record storage, parsing, serialization, and XPath
// evaluation.
//
// Every handle either owns its record or aliases a record owned by another
// handle. Owning handles free their record on Close; aliases never do.
// Handles produced while walking an existing tree (Children, Parent,
// Attribute, query results) are always aliases owned by the handle they were
// obtained from, so they must not outlive it.
//
// The tree has no internal locking. Do not mutate a tree from multiple
// goroutines.
package xmldom

import (
	"github.com/jacoelho/xmldom/internal/tree"
)

// Kind classifies the record behind a handle.
type Kind int

const (
	// KindInvalid marks a handle with no underlying record.
	KindInvalid Kind = iota
	// KindDocument marks the document root record.
	KindDocument
	// KindElement marks an element record.
	KindElement
	// KindAttribute marks an attribute record.
	KindAttribute
	// KindText marks a text record.
	KindText
	// KindOther marks record kinds with no dedicated handle surface.
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindDocument:
		return "document"
	case KindElement:
		return "element"
	case KindAttribute:
		return "attribute"
	case KindText:
		return "text"
	case KindOther:
		return "other"
	default:
		return "invalid"
	}
}

func kindOf(raw *tree.Node) Kind {
	if raw == nil {
		return KindInvalid
	}
	switch raw.Type {
	case tree.DocumentNode:
		return KindDocument
	case tree.ElementNode:
		return KindElement
	case tree.AttributeNode:
		return KindAttribute
	case tree.TextNode:
		return KindText
	default:
		return KindOther
	}
}

// wrap materializes a non-owning alias for a raw record. The owner must be
// the handle responsible for the record's lifetime; wrap never produces an
// owning handle. Specialized views stay reachable through AsElement and
// AsAttribute, dispatched on the record's type tag.
func wrap(eng engine, raw *tree.Node, owner *Node) *Node {
	return &Node{eng: eng, raw: raw, owner: owner}
}
