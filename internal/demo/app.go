// Package demo is a small counter application built on flux. The CLI and the
// live server use it as their default app.
package demo

import (
	"fmt"

	"github.com/vango-dev/flux/pkg/component"
	"github.com/vango-dev/flux/pkg/dom"
	"github.com/vango-dev/flux/pkg/flux"
)

// View is the typed shape of the demo state.
type View struct {
	Count int    `json:"count"`
	Title string `json:"title"`
}

// InitialState is the state a fresh app starts from.
func InitialState() flux.State {
	return flux.State{"count": 0, "title": "flux"}
}

// App wires the demo store, dispatcher and components together.
type App struct {
	Doc        *dom.HTMLDocument
	Store      *flux.Store
	Dispatcher *flux.Dispatcher

	Header  *Header
	Counter *Counter
	Footer  *Footer
}

// NewApp creates the demo app in doc. initial overlays InitialState.
func NewApp(doc *dom.HTMLDocument, initial flux.State, mw ...flux.Middleware) *App {
	store := flux.NewStore(flux.Merge(InitialState(), initial))
	app := &App{
		Doc:        doc,
		Store:      store,
		Dispatcher: flux.NewDispatcher(mw...).Register(store),
	}

	state := store.GetState()
	app.Header = NewHeader(doc, state)
	app.Counter = NewCounter(doc, state)
	app.Footer = NewFooter(doc)

	app.Header.Subscribe(store)
	app.Counter.Subscribe(store)
	return app
}

// Sources returns the components in the order they should appear on the page.
// RenderDOM reverses its input, so the slice is built back to front.
func (a *App) Sources() []component.Source {
	return []component.Source{a.Footer, a.Counter, a.Header}
}

// Mount renders the app into the document body using m.
func (a *App) Mount(m *component.Mounter) []error {
	return m.Mount(a.Doc.Body(), a.Sources()...)
}

// Dispatch dispatches the named action with payload.
func (a *App) Dispatch(name string, payload flux.State) error {
	fn, ok := Actions[name]
	if !ok {
		return fmt.Errorf("unknown action %q", name)
	}
	a.Dispatcher.Dispatch(flux.NewNamedAction(name, fn, payload))
	return nil
}

// View decodes the current store state.
func (a *App) View() (View, error) {
	var v View
	err := flux.Decode(a.Store.GetState(), &v)
	return v, err
}
