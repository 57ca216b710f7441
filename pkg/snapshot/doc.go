// Package snapshot persists a rendered page together with the store state
// that produced it.
//
// A snapshot under key k is written as two objects: k.html holding the page and
// k.json holding the state. Sinks decide where the objects go:
//
//	sink := snapshot.NewDirSink("snapshots")
//	// or
//	sink := snapshot.NewS3Sink(s3.NewFromConfig(cfg), "my-bucket", "flux/")
//
//	err := snapshot.Write(ctx, sink, "home", html, store.GetState())
package snapshot
