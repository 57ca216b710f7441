// Package flux provides the unidirectional data flow core: a Store that owns
// application state, Actions that transform it, and a Dispatcher that applies
// Actions to a Store.
//
// State flows one way:
//
//	Dispatcher.Dispatch(action)
//	    → store.GetState()          (deep copy)
//	    → action.Execute(old)       (pure transform)
//	    → store.SetState(next)      (full replacement)
//	    → every subscriber: MergeProps(next), Render()
//
// Usage:
//
//	store := flux.NewStore(flux.State{"count": 0})
//	d := flux.NewDispatcher().Register(store)
//
//	increment := func(s, p flux.State) flux.State {
//	    return flux.Merge(s, flux.State{"count": s["count"].(int) + p["amount"].(int)})
//	}
//	d.Dispatch(flux.NewAction(increment, flux.State{"amount": 5}))
//
// Everything runs synchronously on the caller's goroutine. SetState calls on a
// Store are serialised so subscriber fan-out always observes a fully replaced
// state; a subscriber must not call SetState or Dispatch on the same Store from
// inside its Render.
package flux
