package dom

import (
	"fmt"
	"strings"
)

// Attr is a single attribute passed to the element builders.
type Attr struct {
	Key   string
	Value string
}

// IsEmpty returns true if this is an empty attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

func attr(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute.
func StyleAttr(style string) Attr { return attr("style", style) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Href sets the href attribute.
func Href(href string) Attr { return attr("href", href) }

// Attribute creates an arbitrary attribute.
func Attribute(key, value string) Attr { return attr(key, value) }

// El creates an element with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, Node, []Node, string or fmt.Stringer.
// Strings become text children.
func El(tag string, args ...any) *Element {
	e := NewElement(tag)
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional children)
			continue
		case Attr:
			if !v.IsEmpty() {
				e.SetAttribute(v.Key, v.Value)
			}
		case []Attr:
			for _, a := range v {
				if !a.IsEmpty() {
					e.SetAttribute(a.Key, a.Value)
				}
			}
		case *Element:
			if v != nil {
				e.AppendChild(v)
			}
		case *Text:
			if v != nil {
				e.AppendChild(v)
			}
		case []Node:
			for _, n := range v {
				e.AppendChild(n)
			}
		case []*Element:
			for _, n := range v {
				e.AppendChild(n)
			}
		case string:
			e.AppendChild(NewText(v))
		case fmt.Stringer:
			e.AppendChild(NewText(v.String()))
		}
	}
	return e
}

// Txt creates a text node.
func Txt(s string) *Text { return NewText(s) }

// Element helpers

func Div(args ...any) *Element      { return El("div", args...) }
func Span(args ...any) *Element     { return El("span", args...) }
func P(args ...any) *Element        { return El("p", args...) }
func H1(args ...any) *Element       { return El("h1", args...) }
func H2(args ...any) *Element       { return El("h2", args...) }
func Header(args ...any) *Element   { return El("header", args...) }
func Footer(args ...any) *Element   { return El("footer", args...) }
func Main(args ...any) *Element     { return El("main", args...) }
func Section(args ...any) *Element  { return El("section", args...) }
func Button(args ...any) *Element   { return El("button", args...) }
func Ul(args ...any) *Element       { return El("ul", args...) }
func Li(args ...any) *Element       { return El("li", args...) }
func Strong(args ...any) *Element   { return El("strong", args...) }
func Fragment(args ...any) *Element { return El("fragment", args...) }
