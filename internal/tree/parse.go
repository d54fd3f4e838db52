package tree

import (
	"encoding/xml"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/encoding/ianaindex"
)

// Parse options. Document records remember them in Node.Options.
const (
	// OptPreserveWhitespace keeps whitespace-only text records.
	OptPreserveWhitespace = 1 << iota
	// OptPrettyPrint indents serialized output.
	OptPrettyPrint
)

// Common XML namespaces.
const (
	XMLNamespace   = "http://www.w3.org/XML/1998/namespace"
	XMLNSNamespace = "http://www.w3.org/2000/xmlns/"
)

// Parse builds a raw tree from already-decoded text. The charset names the
// encoding the text was decoded from; an unresolvable charset is a parse
// failure. A nil return signals failure with no further diagnostic.
func (e *Engine) Parse(text, charset string, options int) *Node {
	if !charsetResolves(charset) {
		return nil
	}

	decoder := xml.NewDecoder(strings.NewReader(text))
	// Input text is already decoded; declarations naming a resolvable
	// charset are accepted as-is, anything else fails the parse.
	decoder.CharsetReader = func(label string, r io.Reader) (io.Reader, error) {
		if !charsetResolves(label) {
			return nil, &unknownCharsetError{label: label}
		}
		return r, nil
	}

	doc := e.alloc(DocumentNode)
	doc.Doc = doc
	doc.Options = options

	var stack []*Node
	var bindings nsStack
	rootClosed := false
	failed := false

loop:
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			failed = true
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if rootClosed {
				failed = true
				break loop
			}
			scope := scopeFromAttrs(t.Attr)
			bindings.push(scope)

			elem := e.alloc(ElementNode)
			elem.Name = t.Name.Local
			elem.NS = bindings.namespaceFor(t.Name.Space)
			elem.NSDefs = scope.decls

			for _, a := range t.Attr {
				if isNamespaceDecl(a.Name) {
					continue
				}
				attr := e.NewAttribute(a.Name.Local, a.Value)
				attr.NS = bindings.attrNamespaceFor(a.Name.Space)
				e.AppendChild(elem, attr)
			}

			parent := doc
			if len(stack) > 0 {
				parent = stack[len(stack)-1]
			}
			e.AppendChild(parent, elem)
			stack = append(stack, elem)

		case xml.EndElement:
			if len(stack) == 0 {
				failed = true
				break loop
			}
			bindings.pop()
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				rootClosed = true
			}

		case xml.CharData:
			data := string(t)
			if len(stack) == 0 {
				if !isIgnorableOutsideRoot(data) {
					failed = true
					break loop
				}
				continue
			}
			if options&OptPreserveWhitespace == 0 && strings.TrimSpace(data) == "" {
				continue
			}
			parent := stack[len(stack)-1]
			if last := parent.LastChild; last != nil && last.Type == TextNode {
				last.Content += data
				continue
			}
			e.AppendChild(parent, e.NewText(data))

		case xml.Comment:
			if len(stack) == 0 {
				continue
			}
			comment := e.alloc(CommentNode)
			comment.Content = string(t)
			e.AppendChild(stack[len(stack)-1], comment)
		}
	}

	if failed || len(stack) != 0 || !rootClosed {
		e.FreeDocument(doc)
		return nil
	}
	return doc
}

// charsetResolves reports whether the IANA index knows the charset label.
// A nil encoding with a nil error means the name is registered but needs no
// decoder in x/text; UTF-8 and ASCII land there.
func charsetResolves(label string) bool {
	_, err := ianaindex.IANA.Encoding(label)
	return err == nil
}

type unknownCharsetError struct {
	label string
}

func (e *unknownCharsetError) Error() string {
	return "unknown charset " + e.label
}

func isNamespaceDecl(name xml.Name) bool {
	return name.Space == "xmlns" || name.Space == XMLNSNamespace ||
		(name.Space == "" && name.Local == "xmlns")
}

func isIgnorableOutsideRoot(data string) bool {
	for _, r := range data {
		if r == '\uFEFF' {
			continue
		}
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// nsScope holds the namespace declarations made by one element.
type nsScope struct {
	decls     []*Namespace // prefixed declarations, in attribute order
	defaultNS *Namespace   // xmlns="..." declaration, if any
}

func scopeFromAttrs(attrs []xml.Attr) nsScope {
	var scope nsScope
	for _, a := range attrs {
		switch {
		case a.Name.Space == "xmlns" || a.Name.Space == XMLNSNamespace:
			scope.decls = append(scope.decls, &Namespace{Prefix: a.Name.Local, URI: a.Value})
		case a.Name.Space == "" && a.Name.Local == "xmlns":
			scope.defaultNS = &Namespace{URI: a.Value}
		}
	}
	return scope
}

// nsStack tracks in-scope namespace bindings so record namespaces keep the
// prefixes the document was written with; encoding/xml only surfaces URIs.
type nsStack struct {
	scopes []nsScope
}

func (s *nsStack) push(scope nsScope) {
	s.scopes = append(s.scopes, scope)
}

func (s *nsStack) pop() {
	if len(s.scopes) > 0 {
		s.scopes = s.scopes[:len(s.scopes)-1]
	}
}

var xmlBuiltinNS = &Namespace{Prefix: "xml", URI: XMLNamespace}

// namespaceFor maps a resolved element namespace URI back to its in-scope
// binding. The default namespace wins when it matches, mirroring how an
// unprefixed element name resolved in the first place.
func (s *nsStack) namespaceFor(uri string) *Namespace {
	if uri == "" {
		return nil
	}
	if uri == XMLNamespace {
		return xmlBuiltinNS
	}
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if def := s.scopes[i].defaultNS; def != nil {
			if def.URI == uri {
				return def
			}
			break
		}
	}
	return s.prefixedBinding(uri)
}

// attrNamespaceFor maps a resolved attribute namespace URI back to its
// binding. Attributes never use the default namespace.
func (s *nsStack) attrNamespaceFor(uri string) *Namespace {
	if uri == "" {
		return nil
	}
	if uri == XMLNamespace {
		return xmlBuiltinNS
	}
	return s.prefixedBinding(uri)
}

func (s *nsStack) prefixedBinding(uri string) *Namespace {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		for _, decl := range s.scopes[i].decls {
			if decl.URI == uri {
				return decl
			}
		}
	}
	// The decoder resolved a URI this stack never saw declared (or left an
	// unbound prefix verbatim); keep the value rather than dropping it.
	return &Namespace{URI: uri}
}
