package component

import (
	"reflect"
	"sync"

	"github.com/vango-dev/flux/pkg/dom"
	"github.com/vango-dev/flux/pkg/flux"
)

// Component is a renderable unit with a mount/render lifecycle.
type Component interface {
	// Mount prepares the component and returns the component to render,
	// which may differ from the receiver.
	Mount() Component

	// Render returns the component's node. RenderDOM requires a *dom.Element.
	Render() dom.Node
}

// Source yields a component instance for RenderDOM.
type Source interface {
	Instance() Component
}

// Factory constructs a fresh component each time it is instantiated. It plays
// the role of passing a component type rather than an instance.
type Factory func() Component

// Instance implements Source.
func (f Factory) Instance() Component { return f() }

// Option configures a Base.
type Option func(*Base)

// WithDocument sets the document the component creates elements in and
// injects styles into. Defaults to dom.Default().
func WithDocument(doc dom.Document) Option {
	return func(b *Base) {
		b.doc = doc
	}
}

// WithName overrides the component name used in errors and metrics.
func WithName(name string) Option {
	return func(b *Base) {
		b.name = name
	}
}

// Base is the embeddable base component.
type Base struct {
	mu      sync.RWMutex
	self    Component
	name    string
	doc     dom.Document
	state   flux.State
	props   flux.State
	element *dom.Element
}

// New creates a standalone base component. props is copied; nil yields empty props.
func New(props flux.State, opts ...Option) *Base {
	return Extend(nil, props, opts...)
}

// Extend creates a Base for the component self, which embeds it. Renders
// triggered by SetState or a store push call self.Render.
func Extend(self Component, props flux.State, opts ...Option) *Base {
	b := &Base{
		state: flux.State{},
		props: flux.Merge(nil, props),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.doc == nil {
		b.doc = dom.Default()
	}
	b.element = b.doc.CreateElement("fragment")

	if isNil(self) {
		b.self = b
	} else {
		b.self = self
	}
	if b.name == "" {
		b.name = typeName(b.self)
	}
	return b
}

// Name returns the component name.
func (b *Base) Name() string { return b.name }

// Document returns the component's document.
func (b *Base) Document() dom.Document { return b.doc }

// Element returns the element owned by the component.
func (b *Base) Element() *dom.Element { return b.element }

// Instance implements Source, returning the outer component.
func (b *Base) Instance() Component { return b.self }

// Props returns the current props. Treat the result as read-only.
func (b *Base) Props() flux.State {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.props
}

// State returns the local state. Treat the result as read-only.
func (b *Base) State() flux.State {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state
}

// MergeProps shallow-merges s into props; keys in s win.
func (b *Base) MergeProps(s flux.State) {
	b.mu.Lock()
	b.props = flux.Merge(b.props, s)
	b.mu.Unlock()
}

// SetState replaces the local state with setter(current) and re-renders.
func (b *Base) SetState(setter func(flux.State) flux.State) {
	next := setter(b.State())
	if next == nil {
		next = flux.State{}
	}
	b.mu.Lock()
	b.state = next
	b.mu.Unlock()
	b.self.Render()
}

// Subscribe registers the component with store. Each push merges the new
// state into props and re-renders the component.
func (b *Base) Subscribe(store *flux.Store) {
	store.Subscribe(subscription{b})
}

// Mount returns the component unchanged.
func (b *Base) Mount() Component { return b.self }

// Render returns the owned element unchanged.
func (b *Base) Render() dom.Node { return b.element }

// subscription adapts a Base to flux.Subscriber so pushes reach the outer
// component's Render.
type subscription struct {
	b *Base
}

func (s subscription) MergeProps(state flux.State) { s.b.MergeProps(state) }
func (s subscription) Render() dom.Node            { return s.b.self.Render() }

// isNil reports whether v is nil or a typed nil.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func typeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "anonymous"
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Name() == "" {
		return "anonymous"
	}
	return t.Name()
}

// nameOf returns v's Name() when it has one, or its type name.
func nameOf(v any) string {
	if n, ok := v.(interface{ Name() string }); ok && !isNil(v) {
		if name := n.Name(); name != "" {
			return name
		}
	}
	return typeName(v)
}
