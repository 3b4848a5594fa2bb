package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/mpapenbr/tyresim/log"
)

const meterName = "tyresim"

// Metrics holds the instruments recorded by the simulation components
type Metrics struct {
	predictions metric.Int64Counter
	laps        metric.Int64Counter
	grip        metric.Float64Histogram
}

func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(meterName)
	predictions, err := meter.Int64Counter("tyresim.predictions",
		metric.WithDescription("Number of tyre life predictions"),
		metric.WithUnit("{count}"))
	if err != nil {
		return nil, err
	}
	laps, err := meter.Int64Counter("tyresim.laps",
		metric.WithDescription("Number of simulated laps"),
		metric.WithUnit("{lap}"))
	if err != nil {
		return nil, err
	}
	grip, err := meter.Float64Histogram("tyresim.grip",
		metric.WithDescription("Grip level per simulated lap"))
	if err != nil {
		return nil, err
	}
	return &Metrics{predictions: predictions, laps: laps, grip: grip}, nil
}

// Global returns metrics bound to the global meter provider.
// Until Setup is called the instruments are no-ops.
func Global() *Metrics {
	m, err := NewMetrics(otel.GetMeterProvider())
	if err != nil {
		log.Error("could not create metrics", log.ErrorField(err))
		return nil
	}
	return m
}

// methods are safe to call on a nil receiver

func (m *Metrics) RecordPrediction(ctx context.Context, compound string) {
	if m == nil {
		return
	}
	m.predictions.Add(ctx, 1, metric.WithAttributes(attribute.String("compound", compound)))
}

func (m *Metrics) RecordLap(ctx context.Context, compound string, grip float64) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("compound", compound))
	m.laps.Add(ctx, 1, attrs)
	m.grip.Record(ctx, grip, attrs)
}
