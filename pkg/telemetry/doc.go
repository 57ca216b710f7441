// Package telemetry instruments flux dispatches and mounts with Prometheus
// metrics and OpenTelemetry traces.
//
// Metrics:
//
//	m := telemetry.NewMetrics(telemetry.WithNamespace("myapp"))
//	d := flux.NewDispatcher(m.Middleware())
//	mounter := &component.Mounter{Observer: m}
//
//	http.Handle("/metrics", promhttp.Handler())
//
// Tracing uses the global OpenTelemetry tracer provider:
//
//	tr := telemetry.NewTracer()
//	d := flux.NewDispatcher(tr.Middleware())
//
// Both can be combined with Observers.
package telemetry
