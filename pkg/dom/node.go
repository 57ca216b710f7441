package dom

import (
	"errors"
	"sort"
	"strings"
)

// NodeType is the node type discriminator.
type NodeType uint8

const (
	ElementNode NodeType = iota // <div>, <style>, etc.
	TextNode                    // Plain text node
)

// String returns the string representation of the NodeType.
func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	default:
		return "Unknown"
	}
}

// Node is a node in the host tree.
type Node interface {
	NodeType() NodeType
	ParentElement() *Element
	setParent(*Element)
}

// Element is an element node. Tag names are stored lower-case.
type Element struct {
	Tag      string
	attrs    map[string]string
	children []Node
	parent   *Element
}

// NewElement creates a detached element.
func NewElement(tag string) *Element {
	return &Element{
		Tag:   strings.ToLower(tag),
		attrs: make(map[string]string),
	}
}

// NodeType implements Node.
func (e *Element) NodeType() NodeType { return ElementNode }

// ParentElement returns the parent, or nil for a detached element.
func (e *Element) ParentElement() *Element { return e.parent }

func (e *Element) setParent(p *Element) { e.parent = p }

// ID returns the id attribute.
func (e *Element) ID() string { return e.attrs["id"] }

// SetID sets the id attribute.
func (e *Element) SetID(id string) { e.SetAttribute("id", id) }

// GetAttribute returns the named attribute and whether it is set.
func (e *Element) GetAttribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// SetAttribute sets an attribute value.
func (e *Element) SetAttribute(name, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
}

// RemoveAttribute removes an attribute.
func (e *Element) RemoveAttribute(name string) {
	delete(e.attrs, name)
}

// AttributeNames returns the attribute names in sorted order.
func (e *Element) AttributeNames() []string {
	names := make([]string, 0, len(e.attrs))
	for k := range e.attrs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Children returns a copy of the child list.
func (e *Element) Children() []Node {
	out := make([]Node, len(e.children))
	copy(out, e.children)
	return out
}

// FirstChild returns the first child or nil.
func (e *Element) FirstChild() Node {
	if len(e.children) == 0 {
		return nil
	}
	return e.children[0]
}

// ErrHierarchy is the panic value of AppendChild when the child is the new
// parent or one of its ancestors.
var ErrHierarchy = errors.New("dom: cannot append a node to itself or to one of its descendants")

// Contains reports whether n is e or a descendant of e.
func (e *Element) Contains(n Node) bool {
	if n == nil {
		return false
	}
	if el, ok := n.(*Element); ok && el == e {
		return true
	}
	for p := n.ParentElement(); p != nil; p = p.ParentElement() {
		if p == e {
			return true
		}
	}
	return false
}

// AppendChild appends child, detaching it from any previous parent first.
// It returns the appended child. Like the browser DOM, it refuses to create a
// cycle: appending e itself or an ancestor of e panics with ErrHierarchy.
func (e *Element) AppendChild(child Node) Node {
	if child == nil {
		return nil
	}
	if el, ok := child.(*Element); ok && el.Contains(e) {
		panic(ErrHierarchy)
	}
	if p := child.ParentElement(); p != nil {
		p.RemoveChild(child)
	}
	child.setParent(e)
	e.children = append(e.children, child)
	return child
}

// RemoveChild removes child if it is a direct child of e.
func (e *Element) RemoveChild(child Node) bool {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.setParent(nil)
			return true
		}
	}
	return false
}

// ReplaceChildren removes all children and appends the given nodes.
func (e *Element) ReplaceChildren(nodes ...Node) {
	for _, c := range e.children {
		c.setParent(nil)
	}
	e.children = nil
	for _, n := range nodes {
		e.AppendChild(n)
	}
}

// TextContent returns the concatenated text of all descendant text nodes.
func (e *Element) TextContent() string {
	var b strings.Builder
	e.collectText(&b)
	return b.String()
}

func (e *Element) collectText(b *strings.Builder) {
	for _, c := range e.children {
		switch n := c.(type) {
		case *Text:
			b.WriteString(n.Data)
		case *Element:
			n.collectText(b)
		}
	}
}

// SetTextContent replaces all children with a single text node.
// An empty string leaves the element without children.
func (e *Element) SetTextContent(s string) {
	if s == "" {
		e.ReplaceChildren()
		return
	}
	e.ReplaceChildren(NewText(s))
}

// Walk visits e and its element descendants depth-first in document order.
// Returning false from fn stops the walk.
func (e *Element) Walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, c := range e.children {
		if el, ok := c.(*Element); ok {
			if !el.Walk(fn) {
				return false
			}
		}
	}
	return true
}

// Text is a text node.
type Text struct {
	Data   string
	parent *Element
}

// NewText creates a detached text node.
func NewText(data string) *Text {
	return &Text{Data: data}
}

// NodeType implements Node.
func (t *Text) NodeType() NodeType { return TextNode }

// ParentElement returns the parent, or nil for a detached node.
func (t *Text) ParentElement() *Element { return t.parent }

func (t *Text) setParent(p *Element) { t.parent = p }
