package xmldom

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/ianaindex"

	xmlerrors "github.com/jacoelho/xmldom/errors"
	"github.com/jacoelho/xmldom/internal/tree"
)

const utf8Charset = "UTF-8"

// Document owns the root of a raw tree. Closing the document frees every
// record in it, so handles into the tree must not outlive it.
type Document struct {
	*Node
}

// ParseData decodes data as UTF-8 and parses it into a document. The
// returned document is the sole owner of the parsed tree. A parse failure
// is not an error here; it leaves the document empty, observable through
// RootElement returning nil. The only error is ErrInvalidStringEncoding,
// for input that is not valid UTF-8 or when the UTF-8 charset name cannot
// be resolved.
func ParseData(data []byte, opts Options) (*Document, error) {
	return parseData(defaultEngine, data, opts)
}

func parseData(eng engine, data []byte, opts Options) (*Document, error) {
	if _, err := ianaindex.IANA.Encoding(utf8Charset); err != nil {
		return nil, xmlerrors.Newf(xmlerrors.ErrInvalidStringEncoding, "resolve charset %s: %v", utf8Charset, err)
	}
	if !utf8.Valid(data) {
		return nil, xmlerrors.New(xmlerrors.ErrInvalidStringEncoding, "input is not valid UTF-8")
	}
	raw := eng.Parse(string(data), utf8Charset, int(opts))
	return &Document{&Node{eng: eng, raw: raw}}, nil
}

// ParseString re-encodes s as UTF-8 bytes and delegates to ParseData.
func ParseString(s string, opts Options) (*Document, error) {
	return ParseData([]byte(s), opts)
}

// RootElement returns a non-owning alias to the document's root element, or
// nil when the document has no parsed tree.
func (d *Document) RootElement() *Element {
	if d.raw == nil {
		return nil
	}
	for child := d.raw.FirstChild; child != nil; child = child.Next {
		if child.Type == tree.ElementNode {
			return &Element{wrap(d.eng, child, d.Node)}
		}
	}
	return nil
}

// XMLData serializes the whole document to UTF-8 bytes. Returns empty data
// when serialization fails.
func (d *Document) XMLData() []byte {
	return []byte(d.XMLString())
}
