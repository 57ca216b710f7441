// Package component provides the base UI unit of flux and the routine that
// mounts component trees into a host document.
//
// A component is anything with a Mount/Render lifecycle:
//
//	type Component interface {
//	    Mount() Component
//	    Render() dom.Node
//	}
//
// Concrete components embed *Base, which supplies props, local state, an owned
// element, store subscription and style injection, and override Render:
//
//	type Counter struct {
//	    *component.Base
//	}
//
//	func NewCounter(doc dom.Document) *Counter {
//	    c := &Counter{}
//	    c.Base = component.Extend(c, nil, component.WithDocument(doc))
//	    return c
//	}
//
//	func (c *Counter) Render() dom.Node {
//	    el := c.Element()
//	    el.ReplaceChildren(dom.Span(fmt.Sprint(c.Props()["count"])))
//	    return el
//	}
//
// Passing the outer value to Extend lets Base trigger the outer Render when
// local state changes or a store pushes new state.
//
// # Mounting
//
// RenderDOM instantiates (for a Factory), mounts, renders and appends each
// source to a host element. Sources are processed in reverse order, so the
// host ends up holding their nodes in reverse input order. A source that breaks
// the mount or render contract, or panics, is logged and skipped; its siblings
// are unaffected.
package component
