package race

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/mpapenbr/tyresim/log"
	"github.com/mpapenbr/tyresim/pkg/compound"
	"github.com/mpapenbr/tyresim/pkg/telemetry"
	"github.com/mpapenbr/tyresim/pkg/wear"
)

type (
	// Source provides uniform random values in [0,1)
	Source interface {
		Float64() float64
	}

	Config struct {
		Laps     int
		Compound compound.Name
		Model    wear.Model
	}

	// Runner drives a single car through a race, lap by lap
	Runner struct {
		cfg     Config
		src     Source
		metrics *telemetry.Metrics
		tracer  trace.Tracer
	}
	Option func(*Runner)
)

// ranges of the per lap inputs
var (
	speedFactorRange   = [2]float64{0.8, 1.0}
	brakingFactorRange = [2]float64{0.1, 0.5}
	corneringLoadRange = [2]float64{0.5, 1.0}
	lapSpeedRange      = [2]float64{150, 220} // average lap speed in km/h
)

func WithSource(src Source) Option {
	return func(r *Runner) {
		r.src = src
	}
}

func WithMetrics(m *telemetry.Metrics) Option {
	return func(r *Runner) {
		r.metrics = m
	}
}

// NewSource returns a deterministic source for seed
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed))
}

func NewRunner(cfg Config, opts ...Option) *Runner {
	ret := &Runner{
		cfg:    cfg,
		tracer: otel.Tracer("tyresim/race"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.src == nil {
		ret.src = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return ret
}

// Run simulates cfg.Laps laps with a fresh tyre. The recorded temperature
// is the tyre temperature after the lap.
// On error the records of the laps completed so far are returned along
// with the error.
//
//nolint:funlen // readability
func (r *Runner) Run(ctx context.Context) ([]wear.LapRecord, error) {
	if r.cfg.Laps < 0 {
		return nil, fmt.Errorf("laps must not be negative, got %d", r.cfg.Laps)
	}
	runID := uuid.New()
	l := log.GetFromContext(ctx).Named("race").With(log.String("run", runID.String()))
	ctx, span := r.tracer.Start(ctx, "race.Run", trace.WithAttributes(
		attribute.String("run", runID.String()),
		attribute.String("compound", string(r.cfg.Compound)),
		attribute.Int("laps", r.cfg.Laps),
	))
	defer span.End()

	l.Debug("starting race",
		log.String("compound", string(r.cfg.Compound)),
		log.Int("laps", r.cfg.Laps))
	sim := wear.NewSimulator(r.cfg.Model)
	ret := make([]wear.LapRecord, 0, r.cfg.Laps)
	for lap := 1; lap <= r.cfg.Laps; lap++ {
		if err := ctx.Err(); err != nil {
			l.Info("race canceled", log.Int("lap", lap))
			return ret, err
		}
		speedFactor := r.uniform(speedFactorRange)
		brakingFactor := r.uniform(brakingFactorRange)
		corneringLoad := r.uniform(corneringLoadRange)
		lapSpeed := r.uniform(lapSpeedRange)

		grip, err := sim.CalculateGrip(lap, speedFactor, brakingFactor, r.cfg.Compound)
		if err != nil {
			span.RecordError(err)
			return ret, err
		}
		rec := wear.LapRecord{
			Lap:         lap,
			Grip:        grip,
			Temperature: sim.Temperature(),
			EnergyLoss:  sim.CalculateEnergyLoss(lapSpeed, corneringLoad),
		}
		r.metrics.RecordLap(ctx, string(r.cfg.Compound), grip)
		l.Debug("lap",
			log.Int("lap", lap),
			log.Float64("speedFactor", speedFactor),
			log.Float64("grip", rec.Grip),
			log.Float64("temp", rec.Temperature))
		ret = append(ret, rec)
	}
	l.Info("race finished", log.Int("laps", len(ret)))
	return ret, nil
}

func (r *Runner) uniform(rng [2]float64) float64 {
	return rng[0] + (rng[1]-rng[0])*r.src.Float64()
}
