package flux

import (
	"context"
	"sync"
)

// Middleware wraps the execute-and-write step of a dispatch. It must call next
// exactly once to let the dispatch proceed. A panicking transform unwinds
// through next; middleware that observes it with recover must re-panic.
type Middleware func(ctx context.Context, a *Action, next func(context.Context))

// Dispatcher applies actions to the store it is registered with.
type Dispatcher struct {
	mu         sync.RWMutex
	store      *Store
	middleware []Middleware
}

// NewDispatcher creates an unbound dispatcher.
func NewDispatcher(mw ...Middleware) *Dispatcher {
	return &Dispatcher{middleware: mw}
}

// Register binds the dispatcher to store, replacing any previous binding.
func (d *Dispatcher) Register(store *Store) *Dispatcher {
	d.mu.Lock()
	d.store = store
	d.mu.Unlock()
	return d
}

// Store returns the bound store, or nil.
func (d *Dispatcher) Store() *Store {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.store
}

// Use appends middleware. Middleware runs in the order it was added.
func (d *Dispatcher) Use(mw ...Middleware) *Dispatcher {
	d.mu.Lock()
	d.middleware = append(d.middleware, mw...)
	d.mu.Unlock()
	return d
}

// Dispatch executes action against the bound store's state and writes the
// result back. It is a no-op when no store is registered.
func (d *Dispatcher) Dispatch(action *Action) *Dispatcher {
	return d.DispatchContext(context.Background(), action)
}

// DispatchContext is Dispatch with a context handed to middleware.
func (d *Dispatcher) DispatchContext(ctx context.Context, action *Action) *Dispatcher {
	d.mu.RLock()
	store := d.store
	chain := d.middleware
	d.mu.RUnlock()

	if store == nil {
		return d
	}

	run := func(context.Context) {
		store.update(action.Execute)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		mw, next := chain[i], run
		run = func(ctx context.Context) {
			mw(ctx, action, next)
		}
	}
	run(ctx)
	return d
}
