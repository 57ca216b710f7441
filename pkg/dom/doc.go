// Package dom provides the host document surface that flux components render into.
//
// The tree is deliberately small: elements, text nodes, and a document that can
// create elements, look them up by id, and expose a head and body insertion point.
// Components never reach for a hidden global document; they are handed a Document,
// or fall back to the process-wide one returned by Default.
//
// # Core Types
//
// Node is implemented by *Element and *Text. Document is the capability consumed by
// components; HTMLDocument is the in-memory implementation.
//
// # Builder API
//
// Elements can be built with variadic helpers, similar to a template:
//
//	Div(Class("card"), ID("main"),
//	    H1("Title"),
//	    P("Content"),
//	)
//
// Strings become text children, Attr values become attributes and Node values
// become children.
package dom
