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
	meterProvider     *metric.MeterProvider
	meter             otelmetric.Meter
	designCounter     otelmetric.Int64Counter
	synthesisDuration otelmetric.Float64Histogram
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

	designCounter, _ := meter.Int64Counter(
		"designs.synthesized",
		otelmetric.WithDescription("Number of design documents synthesized"),
	)

	synthesisDuration, _ := meter.Float64Histogram(
		"designs.synthesis.duration",
		otelmetric.WithDescription("Design synthesis duration"),
		otelmetric.WithUnit("ms"),
	)

	return &Observability{
		meterProvider:     provider,
		meter:             meter,
		designCounter:     designCounter,
		synthesisDuration: synthesisDuration,
	}
}

func (o *Observability) RecordDesignSynthesized(ctx context.Context, category, status string) {
	if o.designCounter != nil {
		o.designCounter.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("category", category),
			attribute.String("status", status),
		))
	}
}

func (o *Observability) RecordSynthesisDuration(ctx context.Context, duration time.Duration, category string) {
	if o.synthesisDuration != nil {
		o.synthesisDuration.Record(ctx, float64(duration.Milliseconds()), otelmetric.WithAttributes(
			attribute.String("category", category),
		))
	}
}

func (o *Observability) Shutdown() {
	if o.meterProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		o.meterProvider.Shutdown(ctx)
	}
}
