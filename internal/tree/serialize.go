package tree

import (
	"bytes"
	"sync"

	xw "github.com/shabbyrobe/xmlwriter"
)

var bufferPool = sync.Pool{
	New: func() any {
		return &bytes.Buffer{}
	},
}

// Dump serializes a record and its subtree to an XML fragment. Document
// records include the XML declaration. The doc argument supplies the
// serialization options; it may be nil for detached records. Returns the
// empty string when serialization fails.
func (e *Engine) Dump(n, doc *Node) string {
	if n == nil {
		return ""
	}
	if n.Type == AttributeNode {
		return n.QualifiedName() + `="` + EscapeText(n.Content) + `"`
	}

	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()
	buf.Reset()

	var opts []xw.Option
	if doc != nil && doc.Options&OptPrettyPrint != 0 {
		opts = append(opts, xw.WithIndent())
	}
	w := xw.Open(buf, opts...)

	if err := writeRecord(w, n); err != nil {
		return ""
	}
	if err := w.EndAllFlush(); err != nil {
		return ""
	}
	return buf.String()
}

func writeRecord(w *xw.Writer, n *Node) error {
	switch n.Type {
	case DocumentNode:
		if err := w.Start(xw.Doc{}); err != nil {
			return err
		}
		for child := n.FirstChild; child != nil; child = child.Next {
			if err := writeRecord(w, child); err != nil {
				return err
			}
		}
		return nil
	case ElementNode:
		return writeElement(w, n)
	case TextNode:
		return w.Write(xw.Text(n.Content))
	case CommentNode:
		return w.Write(xw.Comment{Content: n.Content})
	default:
		return nil
	}
}

func writeElement(w *xw.Writer, n *Node) error {
	elem := xw.Elem{Name: n.Name}
	if n.NS != nil {
		elem.Prefix = n.NS.Prefix
	}
	if err := w.Start(elem); err != nil {
		return err
	}
	for _, def := range n.NSDefs {
		attr := xw.Attr{Name: "xmlns", Value: def.URI}
		if def.Prefix != "" {
			attr = xw.Attr{Prefix: "xmlns", Name: def.Prefix, Value: def.URI}
		}
		if err := w.WriteAttr(attr); err != nil {
			return err
		}
	}
	for a := n.Properties; a != nil; a = a.Next {
		attr := xw.Attr{Name: a.Name, Value: a.Content}
		if a.NS != nil {
			attr.Prefix = a.NS.Prefix
		}
		if err := w.WriteAttr(attr); err != nil {
			return err
		}
	}
	for child := n.FirstChild; child != nil; child = child.Next {
		if err := writeRecord(w, child); err != nil {
			return err
		}
	}
	return w.EndElem()
}
