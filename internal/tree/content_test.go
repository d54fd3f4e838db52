package tree

import (
	"testing"
)

func TestGetContent_Recursive(t *testing.T) {
	e := NewEngine()
	doc := e.Parse("<a>one<b>two</b>three</a>", "UTF-8", 0)
	if doc == nil {
		t.Fatal("Parse() returned nil")
	}
	if got := e.GetContent(doc.FirstChild); got != "onetwothree" {
		t.Errorf("GetContent() = %q, want %q", got, "onetwothree")
	}
	if got := e.GetContent(doc); got != "onetwothree" {
		t.Errorf("GetContent(document) = %q, want %q", got, "onetwothree")
	}
}

func TestSetContent_ReplacesChildren(t *testing.T) {
	e := NewEngine()
	doc := e.Parse("<a><b>old</b></a>", "UTF-8", 0)
	if doc == nil {
		t.Fatal("Parse() returned nil")
	}
	root := doc.FirstChild
	before := e.Live()

	e.SetContent(root, "new")
	if got := e.GetContent(root); got != "new" {
		t.Errorf("content after SetContent = %q, want %q", got, "new")
	}
	if root.FirstChild == nil || root.FirstChild.Type != TextNode || root.FirstChild != root.LastChild {
		t.Error("SetContent should leave exactly one text child")
	}
	// b and old freed, one text record allocated
	if got := e.Live(); got != before-1 {
		t.Errorf("Live() = %d, want %d", got, before-1)
	}
}

func TestSetContent_ResolvesReferences(t *testing.T) {
	e := NewEngine()
	n := e.NewText("")
	e.SetContent(n, "a &lt;b&gt; &amp; &quot;c&quot; &#65;&#x42;")
	want := `a <b> & "c" AB`
	if n.Content != want {
		t.Errorf("content = %q, want %q", n.Content, want)
	}
}

func TestSetContent_KeepsMalformedReferences(t *testing.T) {
	e := NewEngine()
	n := e.NewText("")
	e.SetContent(n, "a & b &unknown; &#zz; trailing&")
	want := "a & b &unknown; &#zz; trailing&"
	if n.Content != want {
		t.Errorf("content = %q, want %q", n.Content, want)
	}
}

func TestEscapeText(t *testing.T) {
	got := EscapeText(`<a href="x">&'</a>`)
	want := "&lt;a href=&quot;x&quot;&gt;&amp;&apos;&lt;/a&gt;"
	if got != want {
		t.Errorf("EscapeText() = %q, want %q", got, want)
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	inputs := []string{
		"plain",
		`<tag attr="v">&amp;</tag>`,
		"quotes ' and \"",
		"unicode ✓ text",
	}
	for _, input := range inputs {
		if got := resolveReferences(EscapeText(input)); got != input {
			t.Errorf("resolve(escape(%q)) = %q", input, got)
		}
	}
}
