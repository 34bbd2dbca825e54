package observe

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// TestInitProvider_RegistersGlobalProviders covers the bootstrap an
// embedding application's main() performs before constructing any
// [mqtt.Client] or facade: InitProvider must install a working meter and
// tracer provider globally, and the returned shutdown function must not
// error.
func TestInitProvider_RegistersGlobalProviders(t *testing.T) {
	origTP := otel.GetTracerProvider()
	origMP := otel.GetMeterProvider()
	t.Cleanup(func() {
		otel.SetTracerProvider(origTP)
		otel.SetMeterProvider(origMP)
	})

	shutdown, err := InitProvider(context.Background(), ProviderConfig{
		ServiceName:    "hermesvox-test",
		ServiceVersion: "test",
	})
	if err != nil {
		t.Fatalf("InitProvider: %v", err)
	}
	t.Cleanup(func() {
		if err := shutdown(context.Background()); err != nil {
			t.Errorf("shutdown: %v", err)
		}
	})

	if _, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider); !ok {
		t.Errorf("tracer provider = %T, want *sdktrace.TracerProvider", otel.GetTracerProvider())
	}

	ctx, span := StartSpan(context.Background(), "provider-test-span")
	if CorrelationID(ctx) == "" {
		t.Error("StartSpan after InitProvider produced no trace ID")
	}
	span.End()
}

// TestInitProvider_WithTraceExporter covers the configurable exporter path:
// spans recorded after InitProvider reach the exporter supplied in
// ProviderConfig.
func TestInitProvider_WithTraceExporter(t *testing.T) {
	origTP := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(origTP) })

	exp := tracetest.NewInMemoryExporter()
	shutdown, err := InitProvider(context.Background(), ProviderConfig{TraceExporter: exp})
	if err != nil {
		t.Fatalf("InitProvider: %v", err)
	}

	_, span := StartSpan(context.Background(), "exported-span")
	span.End()

	// The batch span processor flushes asynchronously; Shutdown forces a
	// final flush before the exporter is inspected.
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown: %v", err)
	}
	if len(exp.GetSpans()) == 0 {
		t.Error("no spans reached the configured exporter")
	}
}
