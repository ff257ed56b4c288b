package tracing

import (
	"fmt"

	"github.com/honeycombio/otel-config-go/otelconfig"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var GlobalTracer = otel.Tracer("fitprogress-backend")

// EndSpanWithErrCheck records the error on the span (if any) and ends it.
func EndSpanWithErrCheck(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// HoneycombSetup uses the honeycomb distro to set up the OpenTelemetry SDK.
// Returns a shutdown function to be called on server teardown.
func HoneycombSetup(tracingEnabled bool, serviceName string) (func(), error) {
	if !tracingEnabled {
		log.Debugln("honeycomb tracing disabled")
		return func() {}, nil
	}

	otelShutdown, err := otelconfig.ConfigureOpenTelemetry(
		otelconfig.WithServiceName(serviceName),
	)
	if err != nil {
		return nil, fmt.Errorf("configure opentelemetry: %w", err)
	}

	log.Debugln("honeycomb tracing set up")
	return otelShutdown, nil
}
