package xmldom_test

import (
	"fmt"

	"github.com/jacoelho/xmldom"
)

func ExampleParseString() {
	doc, err := xmldom.ParseString(`<catalog><book id="1"><title>Go</title></book></catalog>`, 0)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer doc.Close()

	root := doc.RootElement()
	fmt.Println(root.Name())
	for child := range root.Children() {
		fmt.Println(child.Name())
	}
	// Output:
	// catalog
	// book
}

func ExampleNode_NodesForXPath() {
	doc, err := xmldom.ParseString(`<library><book genre="novel">Ulysses</book><book genre="essay">Walden</book></library>`, 0)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer doc.Close()

	nodes, err := doc.NodesForXPath(`//book[@genre="novel"]`)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	for _, n := range nodes {
		fmt.Println(n.StringValue())
	}
	// Output: Ulysses
}

func ExampleElement_AddChild() {
	root := xmldom.NewElement("note")
	defer root.Close()

	body := xmldom.NewElementWithValue("body", "remember the milk")
	root.AddChild(body.Node)
	root.AddAttributeWithValue("priority", "high")

	fmt.Println(root.XMLString())
	// Output: <note priority="high"><body>remember the milk</body></note>
}
