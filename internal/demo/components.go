package demo

import (
	"fmt"

	"github.com/vango-dev/flux/pkg/component"
	"github.com/vango-dev/flux/pkg/dom"
	"github.com/vango-dev/flux/pkg/flux"
)

const headerCSS = `.flux-header{font-family:sans-serif;border-bottom:1px solid #ddd}`

const counterCSS = `.flux-counter{font-size:2rem}.flux-counter strong{color:#0a7}`

// Header renders the app title.
type Header struct {
	*component.Base
}

// NewHeader creates a header with the given props.
func NewHeader(doc dom.Document, props flux.State) *Header {
	h := &Header{}
	h.Base = component.Extend(h, props, component.WithDocument(doc))
	return h
}

// Mount injects the header styles.
func (h *Header) Mount() component.Component {
	h.InjectStaticCSS(headerCSS)
	return h
}

// Render implements component.Component.
func (h *Header) Render() dom.Node {
	el := h.Element()
	title, _ := h.Props()["title"].(string)
	el.ReplaceChildren(dom.Header(dom.Class("flux-header"), dom.H1(title)))
	return el
}

// Counter renders the current count.
type Counter struct {
	*component.Base
}

// NewCounter creates a counter with the given props.
func NewCounter(doc dom.Document, props flux.State) *Counter {
	c := &Counter{}
	c.Base = component.Extend(c, props, component.WithDocument(doc))
	return c
}

// Mount injects the counter styles.
func (c *Counter) Mount() component.Component {
	c.InjectStaticCSS(counterCSS)
	return c
}

// Render implements component.Component.
func (c *Counter) Render() dom.Node {
	el := c.Element()
	el.ReplaceChildren(dom.Section(dom.Class("flux-counter"), dom.ID("counter"),
		"Count: ",
		dom.Strong(fmt.Sprint(intOf(c.Props()["count"]))),
		dom.Button(dom.Data("action", "decrement"), "-"),
		dom.Button(dom.Data("action", "increment"), "+"),
		dom.Button(dom.Data("action", "reset"), "reset"),
	))
	return el
}

// Footer keeps a local render counter and is not subscribed to the store.
type Footer struct {
	*component.Base
}

// NewFooter creates a footer.
func NewFooter(doc dom.Document) *Footer {
	f := &Footer{}
	f.Base = component.Extend(f, nil, component.WithDocument(doc))
	return f
}

// Touch bumps the local touch count and re-renders.
func (f *Footer) Touch() {
	f.SetState(func(old flux.State) flux.State {
		return flux.State{"touches": intOf(old["touches"]) + 1}
	})
}

// Render implements component.Component.
func (f *Footer) Render() dom.Node {
	el := f.Element()
	el.ReplaceChildren(dom.Footer(fmt.Sprintf("touched %d times", intOf(f.State()["touches"]))))
	return el
}
