package flux

import (
	"fmt"

	"github.com/mitchellh/copystructure"
	"github.com/mitchellh/mapstructure"
)

// State is an opaque key/value record. The framework enforces no schema.
type State map[string]any

// Clone returns a deep, independent copy of s. A nil State clones to an empty one.
// Clone panics if s holds a value copystructure cannot copy.
func (s State) Clone() State {
	if s == nil {
		return State{}
	}
	v, err := copystructure.Copy(map[string]any(s))
	if err != nil {
		panic(fmt.Errorf("flux: state is not copyable: %w", err))
	}
	return State(v.(map[string]any))
}

// Merge returns a new State holding the keys of base overlaid with the keys of
// overlay. Keys in overlay win. Neither argument is modified.
func Merge(base, overlay State) State {
	out := make(State, len(base)+len(overlay))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overlay {
		out[k] = v
	}
	return out
}

// Decode copies s into the struct pointed to by out. Field names follow json
// tags, and numeric values are converted weakly so states built from JSON
// (float64 numbers) decode into integer fields.
func Decode(s State, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(map[string]any(s))
}

// Encode converts a struct into a State keyed by json tags.
func Encode(v any) (State, error) {
	out := map[string]any{}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &out,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(v); err != nil {
		return nil, err
	}
	return State(out), nil
}
