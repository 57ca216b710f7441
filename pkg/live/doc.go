// Package live serves a store-backed document over HTTP.
//
// The server renders the document on GET /, dispatches named actions posted to
// /actions/{name}, reports the current state on GET /state and pushes the
// re-rendered body to WebSocket clients on /_live after every store change.
//
//	srv := live.New(live.Config{Document: doc, Dispatcher: d})
//	srv.Handle("increment", increment)
//	http.ListenAndServe(":3000", srv)
package live
