package tree

// Engine owns raw record allocation and deallocation and counts both, so
// callers can verify that every record is freed exactly once. The zero value
// is not usable; construct with NewEngine.
type Engine struct {
	allocated   int
	freed       int
	doubleFrees int

	liveContexts   int
	liveResultSets int
}

// NewEngine returns an empty engine.
func NewEngine() *Engine {
	return &Engine{}
}

func (e *Engine) alloc(t NodeType) *Node {
	e.allocated++
	return &Node{Type: t}
}

// NewNode allocates a detached element record.
func (e *Engine) NewNode(name string) *Node {
	n := e.alloc(ElementNode)
	n.Name = name
	return n
}

// NewAttribute allocates a detached attribute record.
func (e *Engine) NewAttribute(name, value string) *Node {
	n := e.alloc(AttributeNode)
	n.Name = name
	n.Content = value
	return n
}

// NewText allocates a detached text record.
func (e *Engine) NewText(value string) *Node {
	n := e.alloc(TextNode)
	n.Content = value
	return n
}

// FreeNode frees a record and everything below it: the child subtrees and,
// for elements, the attribute chain. Freeing an already-freed record is
// counted as a double free and otherwise ignored.
func (e *Engine) FreeNode(n *Node) {
	if n == nil {
		return
	}
	if n.freed {
		e.doubleFrees++
		return
	}
	for child := n.FirstChild; child != nil; {
		next := child.Next
		e.FreeNode(child)
		child = next
	}
	for attr := n.Properties; attr != nil; {
		next := attr.Next
		e.FreeAttribute(attr)
		attr = next
	}
	n.freed = true
	n.FirstChild, n.LastChild = nil, nil
	n.Properties, n.LastProp = nil, nil
	e.freed++
}

// FreeAttribute frees a single attribute record.
func (e *Engine) FreeAttribute(a *Node) {
	if a == nil {
		return
	}
	if a.freed {
		e.doubleFrees++
		return
	}
	a.freed = true
	e.freed++
}

// FreeDocument frees the document record and every record in the tree.
func (e *Engine) FreeDocument(doc *Node) {
	e.FreeNode(doc)
}

// AppendChild appends child to parent's child chain, or to the attribute
// chain when child is an attribute record. The child must already be
// detached; append does not unlink from a previous parent.
func (e *Engine) AppendChild(parent, child *Node) {
	if parent == nil || child == nil {
		return
	}
	if child.Type == AttributeNode {
		appendLink(&parent.Properties, &parent.LastProp, parent, child)
	} else {
		appendLink(&parent.FirstChild, &parent.LastChild, parent, child)
	}
	doc := parent.Doc
	if parent.Type == DocumentNode {
		doc = parent
	}
	setDoc(child, doc)
}

func appendLink(head, tail **Node, parent, n *Node) {
	n.Parent = parent
	n.Prev = *tail
	n.Next = nil
	if *tail == nil {
		*head = n
	} else {
		(*tail).Next = n
	}
	*tail = n
}

func setDoc(n *Node, doc *Node) {
	n.Doc = doc
	for attr := n.Properties; attr != nil; attr = attr.Next {
		attr.Doc = doc
	}
	for child := n.FirstChild; child != nil; child = child.Next {
		setDoc(child, doc)
	}
}

// Allocated returns how many records this engine has allocated.
func (e *Engine) Allocated() int { return e.allocated }

// Freed returns how many records this engine has freed.
func (e *Engine) Freed() int { return e.freed }

// Live returns the number of allocated records not yet freed.
func (e *Engine) Live() int { return e.allocated - e.freed }

// DoubleFrees returns how many times a record was freed more than once.
func (e *Engine) DoubleFrees() int { return e.doubleFrees }

// LiveContexts returns the number of XPath contexts not yet released.
func (e *Engine) LiveContexts() int { return e.liveContexts }

// LiveResultSets returns the number of XPath result sets not yet released.
func (e *Engine) LiveResultSets() int { return e.liveResultSets }
