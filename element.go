package xmldom

// Element is the element view of a Node handle.
type Element struct {
	*Node
}

// NewElement returns a new, unattached, owning element handle with no
// document association.
func NewElement(name string) *Element {
	return newElement(defaultEngine, name)
}

// NewElementWithValue returns a new owning element handle with its content
// set to value.
func NewElementWithValue(name, value string) *Element {
	el := newElement(defaultEngine, name)
	el.SetStringValue(value)
	return el
}

func newElement(eng engine, name string) *Element {
	return &Element{&Node{eng: eng, raw: eng.NewNode(name)}}
}

// Attribute walks the attribute chain and returns the first attribute
// matching name as a non-owning alias, or nil when none matches. An
// attribute carrying a prefixed namespace matches against its qualified
// prefix:name form; all others match the plain name.
func (el *Element) Attribute(name string) *Attribute {
	if el.raw == nil {
		return nil
	}
	for a := el.raw.Properties; a != nil; a = a.Next {
		if a.QualifiedName() == name {
			return &Attribute{wrap(el.eng, a, el.Node)}
		}
	}
	return nil
}

// AddChild appends child's record to this element's child chain and
// transfers ownership of the record to this element: the child handle
// becomes a non-owning alias and no longer frees it. Panics when either
// handle wraps no record.
func (el *Element) AddChild(child *Node) {
	if el.raw == nil || child == nil || child.raw == nil {
		panic("xmldom: AddChild requires records on both sides")
	}
	el.eng.AppendChild(el.raw, child.raw)
	child.owner = el.Node
}

// AddAttribute appends the attribute's record to this element's attribute
// chain and transfers ownership, like AddChild. Panics when either handle
// wraps no record.
func (el *Element) AddAttribute(a *Attribute) {
	if el.raw == nil || a == nil || a.raw == nil {
		panic("xmldom: AddAttribute requires records on both sides")
	}
	el.eng.AppendChild(el.raw, a.raw)
	a.owner = el.Node
}

// AddAttributeWithValue allocates an attribute record and appends it,
// returning a non-owning alias to it.
func (el *Element) AddAttributeWithValue(name, value string) *Attribute {
	if el.raw == nil {
		panic("xmldom: AddAttributeWithValue on a handle with no record")
	}
	raw := el.eng.NewAttribute(name, value)
	el.eng.AppendChild(el.raw, raw)
	return &Attribute{wrap(el.eng, raw, el.Node)}
}

// RemoveAttribute detaches the first attribute whose plain name equals
// name, clearing its namespace reference. Unlike Attribute, the comparison
// never uses the qualified prefix:name form, so a namespaced attribute
// found by Attribute may not be matched here by the same argument. No-op
// when no attribute matches.
func (el *Element) RemoveAttribute(name string) {
	if el.raw == nil {
		return
	}
	for a := el.raw.Properties; a != nil; a = a.Next {
		if a.Name == name {
			unlink(&el.raw.Properties, &el.raw.LastProp, a)
			a.NS = nil
			return
		}
	}
}
