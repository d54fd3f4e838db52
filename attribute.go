package xmldom

// Attribute is the attribute view of a Node handle. Attribute records live
// on an element's attribute chain, separate from the sibling chain, and
// participate in the same ownership protocol as every other handle.
type Attribute struct {
	*Node
}

// NewAttribute returns a new, unattached, owning attribute handle.
func NewAttribute(name, value string) *Attribute {
	return newAttribute(defaultEngine, name, value)
}

func newAttribute(eng engine, name, value string) *Attribute {
	return &Attribute{&Node{eng: eng, raw: eng.NewAttribute(name, value)}}
}

// Value returns the attribute's value.
func (a *Attribute) Value() string {
	return a.StringValue()
}
