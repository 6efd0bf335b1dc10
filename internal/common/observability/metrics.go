package observability

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

type Observability struct {
	meterProvider    *metric.MeterProvider
	meter            otelmetric.Meter
	adviseCounter    otelmetric.Int64Counter
	adviseDuration   otelmetric.Float64Histogram
	fallbackCounter  otelmetric.Int64Counter
}

func New(serviceName string) *Observability {
	exporter, err := prometheus.New()
	if err != nil {
		log.Printf("Failed to create Prometheus exporter: %v", err)
		return &Observability{}
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	adviseCounter, _ := meter.Int64Counter(
		"advisories.processed",
		otelmetric.WithDescription("Number of advisory requests processed"),
	)

	adviseDuration, _ := meter.Float64Histogram(
		"advisories.duration",
		otelmetric.WithDescription("Advisory pipeline duration"),
		otelmetric.WithUnit("ms"),
	)

	fallbackCounter, _ := meter.Int64Counter(
		"advisories.fallbacks",
		otelmetric.WithDescription("Number of advisories served from the deterministic fallback"),
	)

	return &Observability{
		meterProvider:   provider,
		meter:           meter,
		adviseCounter:   adviseCounter,
		adviseDuration:  adviseDuration,
		fallbackCounter: fallbackCounter,
	}
}

func (o *Observability) RecordAdvisory(ctx context.Context, outcome string) {
	if o.adviseCounter != nil {
		o.adviseCounter.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("outcome", outcome),
		))
	}
}

func (o *Observability) RecordAdvisoryDuration(ctx context.Context, duration time.Duration, outcome string) {
	if o.adviseDuration != nil {
		o.adviseDuration.Record(ctx, float64(duration.Milliseconds()), otelmetric.WithAttributes(
			attribute.String("outcome", outcome),
		))
	}
}

func (o *Observability) RecordFallback(ctx context.Context, reason string) {
	if o.fallbackCounter != nil {
		o.fallbackCounter.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("reason", reason),
		))
	}
}

func (o *Observability) Shutdown() {
	if o.meterProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = o.meterProvider.Shutdown(ctx)
	}
}
