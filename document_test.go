package xmldom

import (
	"strings"
	"testing"

	xmlerrors "github.com/jacoelho/xmldom/errors"
	"github.com/jacoelho/xmldom/internal/tree"
)

func TestParseData(t *testing.T) {
	doc, err := ParseData([]byte(`<root><child>text</child></root>`), 0)
	if err != nil {
		t.Fatalf("ParseData() error = %v", err)
	}
	defer doc.Close()

	root := doc.RootElement()
	if root == nil {
		t.Fatal("RootElement() = nil, want the root element")
	}
	if got := root.Name(); got != "root" {
		t.Errorf("root Name() = %q, want %q", got, "root")
	}
	if root.owner != doc.Node {
		t.Error("root element must be an alias owned by the document")
	}
	if doc.owner != nil {
		t.Error("document must own its tree")
	}
	if got := doc.Kind(); got != KindDocument {
		t.Errorf("document Kind() = %v, want KindDocument", got)
	}
}

func TestParseData_InvalidUTF8(t *testing.T) {
	_, err := ParseData([]byte{'<', 'a', 0xff, 0xfe, '>'}, 0)
	if err == nil {
		t.Fatal("ParseData() with invalid UTF-8 succeeded, want error")
	}
	if !xmlerrors.HasCode(err, xmlerrors.ErrInvalidStringEncoding) {
		t.Errorf("error = %v, want %s", err, xmlerrors.ErrInvalidStringEncoding)
	}
}

func TestParseData_ParseFailureLeavesEmptyDocument(t *testing.T) {
	doc, err := ParseData([]byte("<root><broken></root>"), 0)
	if err != nil {
		t.Fatalf("ParseData() error = %v, parse failures are not constructor errors", err)
	}
	defer doc.Close()
	if got := doc.RootElement(); got != nil {
		t.Errorf("RootElement() = %v, want nil after parse failure", got)
	}
	if got := doc.XMLString(); got != "" {
		t.Errorf("XMLString() = %q, want empty for empty document", got)
	}
}

func TestParseString(t *testing.T) {
	doc, err := ParseString(`<a attr="v"/>`, 0)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	defer doc.Close()
	if doc.RootElement() == nil {
		t.Fatal("RootElement() = nil")
	}
}

func TestDocument_XMLData(t *testing.T) {
	doc, err := ParseString("<root><a/></root>", 0)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	defer doc.Close()

	data := string(doc.XMLData())
	if !strings.HasPrefix(data, "<?xml") {
		t.Errorf("XMLData() = %q, want XML declaration first", data)
	}
	if !strings.Contains(data, "<root><a/></root>") {
		t.Errorf("XMLData() = %q, want serialized root", data)
	}
}

func TestDocument_CloseFreesEverythingOnce(t *testing.T) {
	eng := tree.NewEngine()
	doc, err := parseData(eng, []byte(`<root a="1"><b>t</b></root>`), 0)
	if err != nil {
		t.Fatalf("parseData() error = %v", err)
	}
	root := doc.RootElement()

	doc.Close()
	if got := eng.Live(); got != 0 {
		t.Errorf("Live() after document Close = %d, want 0", got)
	}
	if got := eng.DoubleFrees(); got != 0 {
		t.Errorf("DoubleFrees() = %d, want 0", got)
	}

	// Closing the alias and the document again must free nothing further.
	root.Close()
	doc.Close()
	if got := eng.DoubleFrees(); got != 0 {
		t.Errorf("DoubleFrees() after alias Close = %d, want 0", got)
	}
}

func TestDocument_AliasDoesNotFree(t *testing.T) {
	eng := tree.NewEngine()
	doc, err := parseData(eng, []byte("<root><b/></root>"), 0)
	if err != nil {
		t.Fatalf("parseData() error = %v", err)
	}
	root := doc.RootElement()
	root.Close()
	if got := eng.Freed(); got != 0 {
		t.Errorf("Freed() after closing an alias = %d, want 0", got)
	}
	doc.Close()
	if got := eng.Live(); got != 0 {
		t.Errorf("Live() = %d, want 0", got)
	}
}
