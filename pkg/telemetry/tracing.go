package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/vango-dev/flux/internal/errors"
	"github.com/vango-dev/flux/pkg/flux"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for flux.
const defaultTracerName = "flux"

// TracerOption configures a Tracer.
type TracerOption func(*Tracer)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TracerOption {
	return func(t *Tracer) {
		t.name = name
	}
}

// WithTracerProvider uses provider instead of the global tracer provider.
func WithTracerProvider(provider trace.TracerProvider) TracerOption {
	return func(t *Tracer) {
		t.provider = provider
	}
}

// Tracer records OpenTelemetry spans for dispatches and mounts.
type Tracer struct {
	name     string
	provider trace.TracerProvider
	tracer   trace.Tracer
}

// NewTracer creates a Tracer. The tracer is resolved from the global provider
// unless WithTracerProvider is given.
func NewTracer(opts ...TracerOption) *Tracer {
	t := &Tracer{name: defaultTracerName}
	for _, opt := range opts {
		opt(t)
	}
	if t.provider == nil {
		t.provider = otel.GetTracerProvider()
	}
	t.tracer = t.provider.Tracer(t.name)
	return t
}

// Middleware returns dispatch middleware that wraps each dispatch in a span
// named "flux.dispatch <action>". Transform panics are recorded and re-panicked.
func (t *Tracer) Middleware() flux.Middleware {
	return func(ctx context.Context, a *flux.Action, next func(context.Context)) {
		ctx, span := t.tracer.Start(ctx, "flux.dispatch "+a.String(),
			trace.WithAttributes(attribute.String("flux.action", a.String())),
		)
		defer func() {
			if r := recover(); r != nil {
				err := fmt.Errorf("transform panicked: %v", r)
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				span.End()
				panic(r)
			}
			span.SetStatus(codes.Ok, "")
			span.End()
		}()
		next(ctx)
	}
}

// ObserveMount implements component.MountObserver with a span covering the
// mount that just finished.
func (t *Tracer) ObserveMount(component string, elapsed time.Duration, err error) {
	end := time.Now()
	_, span := t.tracer.Start(context.Background(), "flux.mount "+component,
		trace.WithTimestamp(end.Add(-elapsed)),
		trace.WithAttributes(attribute.String("flux.component", component)),
	)
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String("flux.error_code", errors.Code(err)))
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End(trace.WithTimestamp(end))
}
