package flux

// Transform produces a new state from an old one and a payload. It must not
// mutate old.
type Transform func(old, payload State) State

// Action pairs a Transform with its payload.
type Action struct {
	// Name identifies the action in logs, metrics and traces. Optional.
	Name string

	Transform Transform
	Payload   State
}

// NewAction creates an unnamed action.
func NewAction(fn Transform, payload State) *Action {
	return &Action{Transform: fn, Payload: payload}
}

// NewNamedAction creates an action with a name.
func NewNamedAction(name string, fn Transform, payload State) *Action {
	return &Action{Name: name, Transform: fn, Payload: payload}
}

// Execute returns the transform's result for old verbatim. Panics raised by
// the transform propagate to the caller.
func (a *Action) Execute(old State) State {
	return a.Transform(old, a.Payload)
}

// String returns the action name, or "anonymous".
func (a *Action) String() string {
	if a == nil || a.Name == "" {
		return "anonymous"
	}
	return a.Name
}
