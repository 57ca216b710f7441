// Package errors provides coded, actionable errors for flux.
//
// Every error has a unique code (e.g., "E101") that maps to:
//   - A category (component, config, snapshot, live)
//   - A short message describing the error
//   - A detailed explanation
//   - A documentation URL
//
// # Usage
//
//	err := errors.New("E101").
//	    WithComponent("Counter").
//	    WithSuggestion("Return the component itself from Mount()")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E101: Counter component Mount() method must return instance of component
//	//
//	//   Hint: Return the component itself from Mount()
//	//
//	//   Learn more: https://flux.vango.dev/docs/errors/E101
//
// Two errors match under errors.Is when their codes are equal, so callers can
// compare against sentinels built with New.
package errors
