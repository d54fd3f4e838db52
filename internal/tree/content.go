package tree

import (
	"strconv"
	"strings"
)

// GetContent returns the textual content of a record: the value for text and
// attribute records, the recursively concatenated text for elements and
// documents.
func (e *Engine) GetContent(n *Node) string {
	return getContent(n)
}

func getContent(n *Node) string {
	if n == nil {
		return ""
	}
	switch n.Type {
	case TextNode, AttributeNode, CommentNode:
		return n.Content
	default:
		var sb strings.Builder
		collectText(n, &sb)
		return sb.String()
	}
}

func collectText(n *Node, sb *strings.Builder) {
	for child := n.FirstChild; child != nil; child = child.Next {
		switch child.Type {
		case TextNode:
			sb.WriteString(child.Content)
		case ElementNode:
			collectText(child, sb)
		}
	}
}

// SetContent replaces a record's content with the given escaped text,
// resolving predefined entities and character references back to plain
// text for storage. Existing children of element records are freed.
func (e *Engine) SetContent(n *Node, escaped string) {
	if n == nil {
		return
	}
	value := resolveReferences(escaped)
	switch n.Type {
	case TextNode, AttributeNode, CommentNode:
		n.Content = value
	default:
		for child := n.FirstChild; child != nil; {
			next := child.Next
			e.FreeNode(child)
			child = next
		}
		n.FirstChild, n.LastChild = nil, nil
		text := e.NewText(value)
		e.AppendChild(n, text)
	}
}

// Escape encodes text so it can be embedded in XML content: the five
// predefined entities plus carriage returns. The document argument is
// accepted for interface symmetry and unused.
func (e *Engine) Escape(_ *Node, s string) string {
	return EscapeText(s)
}

var contentEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
	"\r", "&#13;",
)

// EscapeText escapes text for use as XML content.
func EscapeText(s string) string {
	return contentEscaper.Replace(s)
}

// resolveReferences expands the predefined entities and numeric character
// references. Unknown or malformed references are kept verbatim, matching a
// lenient engine rather than failing content assignment.
func resolveReferences(s string) string {
	amp := strings.IndexByte(s, '&')
	if amp < 0 {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for {
		sb.WriteString(s[:amp])
		s = s[amp:]
		end := strings.IndexByte(s, ';')
		if end < 0 {
			sb.WriteString(s)
			return sb.String()
		}
		ref := s[1:end]
		if out, ok := expandReference(ref); ok {
			sb.WriteString(out)
			s = s[end+1:]
		} else {
			sb.WriteByte('&')
			s = s[1:]
		}
		amp = strings.IndexByte(s, '&')
		if amp < 0 {
			sb.WriteString(s)
			return sb.String()
		}
	}
}

func expandReference(ref string) (string, bool) {
	switch ref {
	case "lt":
		return "<", true
	case "gt":
		return ">", true
	case "amp":
		return "&", true
	case "quot":
		return `"`, true
	case "apos":
		return "'", true
	}
	if len(ref) > 1 && ref[0] == '#' {
		digits := ref[1:]
		base := 10
		if digits[0] == 'x' || digits[0] == 'X' {
			digits = digits[1:]
			base = 16
		}
		if code, err := strconv.ParseUint(digits, base, 32); err == nil {
			return string(rune(code)), true
		}
	}
	return "", false
}
