package telemetry

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/mpapenbr/tyresim/log"
	"github.com/mpapenbr/tyresim/version"
)

type (
	Telemetry struct {
		mp *sdkmetric.MeterProvider
		tp *sdktrace.TracerProvider
	}
	Config struct {
		Endpoint string        // otlp grpc endpoint, stdout is used if empty
		Writer   io.Writer     // destination for stdout exporters
		Interval time.Duration // metric export interval
	}
)

// Setup installs global meter and tracer providers.
// Callers must call Shutdown to flush pending data.
func Setup(ctx context.Context, cfg Config) (*Telemetry, error) {
	res := resource.NewSchemaless(
		attribute.String("service.name", "tyresim"),
		attribute.String("service.version", version.Version),
	)
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Interval == 0 {
		cfg.Interval = 10 * time.Second
	}
	metricExp, traceExp, err := createExporters(ctx, cfg)
	if err != nil {
		return nil, err
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExp,
			sdkmetric.WithInterval(cfg.Interval))),
	)
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(traceExp),
	)
	otel.SetMeterProvider(mp)
	otel.SetTracerProvider(tp)

	if err := runtime.Start(runtime.WithMeterProvider(mp)); err != nil {
		log.Warn("could not start runtime metrics", log.ErrorField(err))
	}
	log.Debug("telemetry enabled", log.String("endpoint", cfg.Endpoint))
	return &Telemetry{mp: mp, tp: tp}, nil
}

//nolint:whitespace // readability
func createExporters(ctx context.Context, cfg Config) (
	sdkmetric.Exporter, sdktrace.SpanExporter, error,
) {
	if cfg.Endpoint != "" {
		me, err := otlpmetricgrpc.New(ctx,
			otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
			otlpmetricgrpc.WithInsecure())
		if err != nil {
			return nil, nil, err
		}
		te, err := otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(cfg.Endpoint),
			otlptracegrpc.WithInsecure())
		if err != nil {
			return nil, nil, err
		}
		return me, te, nil
	}
	me, err := stdoutmetric.New(stdoutmetric.WithWriter(cfg.Writer))
	if err != nil {
		return nil, nil, err
	}
	te, err := stdouttrace.New(stdouttrace.WithWriter(cfg.Writer))
	if err != nil {
		return nil, nil, err
	}
	return me, te, nil
}

func (t *Telemetry) Shutdown(ctx context.Context) error {
	return errors.Join(t.tp.Shutdown(ctx), t.mp.Shutdown(ctx))
}
