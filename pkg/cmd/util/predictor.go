package util

import (
	"context"

	"github.com/mpapenbr/tyresim/log"
	"github.com/mpapenbr/tyresim/pkg/predict"
	"github.com/mpapenbr/tyresim/pkg/scenario"
)

// NewPredictor creates a predictor for the scenario.
// Jitter is seeded by the scenario seed unless disabled.
func NewPredictor(ctx context.Context, s *scenario.Scenario, noJitter bool) *predict.Predictor {
	opts := []predict.Option{
		predict.WithMinGrip(s.Predictor.MinGrip),
		predict.WithLogger(log.GetFromContext(ctx).Named("predict")),
	}
	switch {
	case noJitter:
		opts = append(opts, predict.WithJitter(predict.NoJitter))
	case s.Seed != 0:
		opts = append(opts, predict.WithSeed(s.Seed))
	}
	return predict.NewPredictor(opts...)
}
