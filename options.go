package xmldom

import (
	"github.com/jacoelho/xmldom/internal/tree"
)

// Options configures parsing and serialization. The zero value drops
// whitespace-only text nodes and serializes without indentation.
type Options int

const (
	// PreserveWhitespace keeps whitespace-only text nodes when parsing.
	PreserveWhitespace Options = tree.OptPreserveWhitespace
	// PrettyPrint indents serialized output.
	PrettyPrint Options = tree.OptPrettyPrint
)
