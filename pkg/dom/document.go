package dom

import "sync"

// Document is the host document capability consumed by components.
type Document interface {
	// CreateElement creates a new detached element with the given tag.
	CreateElement(tag string) *Element

	// GetElementByID returns the first attached element with the given id, or nil.
	GetElementByID(id string) *Element

	// Head returns the document head, the insertion point for document-level styles.
	Head() *Element
}

// HTMLDocument is an in-memory Document rooted at an <html> element with a
// <head> and a <body>.
type HTMLDocument struct {
	root *Element
	head *Element
	body *Element
}

// NewDocument creates an empty document.
func NewDocument() *HTMLDocument {
	root := NewElement("html")
	head := NewElement("head")
	body := NewElement("body")
	root.AppendChild(head)
	root.AppendChild(body)
	return &HTMLDocument{root: root, head: head, body: body}
}

// CreateElement implements Document.
func (d *HTMLDocument) CreateElement(tag string) *Element {
	return NewElement(tag)
}

// CreateTextNode creates a detached text node.
func (d *HTMLDocument) CreateTextNode(data string) *Text {
	return NewText(data)
}

// GetElementByID implements Document. Only elements attached to the document
// tree are found.
func (d *HTMLDocument) GetElementByID(id string) *Element {
	if id == "" {
		return nil
	}
	var found *Element
	d.root.Walk(func(e *Element) bool {
		if e.ID() == id {
			found = e
			return false
		}
		return true
	})
	return found
}

// Head implements Document.
func (d *HTMLDocument) Head() *Element { return d.head }

// Body returns the document body.
func (d *HTMLDocument) Body() *Element { return d.body }

// DocumentElement returns the root <html> element.
func (d *HTMLDocument) DocumentElement() *Element { return d.root }

var (
	defaultDoc   Document
	defaultDocMu sync.Mutex
)

// Default returns the process-wide document, creating it on first use.
func Default() Document {
	defaultDocMu.Lock()
	defer defaultDocMu.Unlock()
	if defaultDoc == nil {
		defaultDoc = NewDocument()
	}
	return defaultDoc
}

// SetDefault replaces the process-wide document. Passing nil resets it so the
// next call to Default creates a fresh one.
func SetDefault(doc Document) {
	defaultDocMu.Lock()
	defaultDoc = doc
	defaultDocMu.Unlock()
}
