package telemetry

import (
	"context"
	"perfume-designer/internal/config"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

type Metrics struct {
	OrdersCreated      metric.Int64Counter
	PaymentsConfirmed  metric.Int64Counter
	GenerationFailures metric.Int64Counter
	GenerationDuration metric.Float64Histogram
}

// SetupMeter installs an OTLP gRPC meter provider when an endpoint is
// configured. Without one the global no-op provider stays in place.
func SetupMeter(ctx context.Context, cfg config.Telemetry, serviceName string) (metric.Meter, func(context.Context) error, error) {
	if cfg.Endpoint == "" {
		return otel.Meter(serviceName), func(context.Context) error { return nil }, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(serviceName)),
	)
	if err != nil {
		return nil, nil, err
	}

	exporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return nil, nil, err
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
	)
	otel.SetMeterProvider(mp)

	return mp.Meter(serviceName), mp.Shutdown, nil
}

func NewMetrics(meter metric.Meter) (*Metrics, error) {
	ordersCreated, err := meter.Int64Counter("orders_created_total",
		metric.WithDescription("Total perfume orders created"),
		metric.WithUnit("{order}"),
	)
	if err != nil {
		return nil, err
	}

	paymentsConfirmed, err := meter.Int64Counter("payments_confirmed_total",
		metric.WithDescription("Total orders marked as paid"),
		metric.WithUnit("{payment}"),
	)
	if err != nil {
		return nil, err
	}

	generationFailures, err := meter.Int64Counter("generation_failures_total",
		metric.WithDescription("Generation calls that fell back to placeholder text"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	generationDuration, err := meter.Float64Histogram("generation_duration_seconds",
		metric.WithDescription("Duration of the text generation call including retries"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.5, 1, 2, 5, 10, 30, 60),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		OrdersCreated:      ordersCreated,
		PaymentsConfirmed:  paymentsConfirmed,
		GenerationFailures: generationFailures,
		GenerationDuration: generationDuration,
	}, nil
}
