package util

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/tyresim/pkg/compound"
	"github.com/mpapenbr/tyresim/pkg/scenario"
)

// ScenarioFlags holds command line overrides for scenario values
type ScenarioFlags struct {
	Compound           string
	Laps               int
	Seed               uint64
	BaseGrip           float64
	WearRate           float64
	TrackRoughness     float64
	DrivingStyleFactor float64
	Temperature        float64
	MinGrip            float64
	TemperatureEffect  float64
	RaceLaps           int
	PitTime            time.Duration
	AvgLap             time.Duration
}

func NewScenarioFlags() *ScenarioFlags {
	d := scenario.Default()
	return &ScenarioFlags{
		Compound:           string(d.Compound),
		Laps:               d.Laps,
		BaseGrip:           d.Predictor.BaseGrip,
		WearRate:           d.Predictor.WearRate,
		TrackRoughness:     d.Predictor.TrackRoughness,
		DrivingStyleFactor: d.Predictor.DrivingStyleFactor,
		Temperature:        d.Predictor.Temperature,
		MinGrip:            d.Predictor.MinGrip,
		TemperatureEffect:  d.Wear.TemperatureEffect,
		RaceLaps:           d.Stints.RaceLaps,
		PitTime:            d.Stints.PitTime,
		AvgLap:             d.Stints.AvgLap,
	}
}

func (f *ScenarioFlags) AddCommon(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Compound, "compound", f.Compound, "tyre compound (soft, medium, hard)")
	cmd.Flags().Float64Var(&f.BaseGrip, "base-grip", f.BaseGrip, "grip of a new tyre")
	cmd.Flags().Float64Var(&f.WearRate, "wear-rate", f.WearRate, "grip loss per lap")
	cmd.Flags().Float64Var(&f.TrackRoughness, "track-roughness", f.TrackRoughness,
		"track roughness factor")
	cmd.Flags().Uint64Var(&f.Seed, "seed", 0, "seed for random values (0 = random)")
}

func (f *ScenarioFlags) AddPredictor(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.DrivingStyleFactor, "driving-style", f.DrivingStyleFactor,
		"driving style factor (>1 is aggressive)")
	cmd.Flags().Float64Var(&f.Temperature, "temperature", f.Temperature,
		"tyre temperature in celsius")
	cmd.Flags().Float64Var(&f.MinGrip, "min-grip", f.MinGrip, "minimum usable grip")
}

func (f *ScenarioFlags) AddWear(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.Laps, "laps", f.Laps, "number of laps")
	cmd.Flags().Float64Var(&f.TemperatureEffect, "temperature-effect", f.TemperatureEffect,
		"grip loss per degree away from optimal temperature")
}

func (f *ScenarioFlags) AddStints(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.RaceLaps, "race-laps", f.RaceLaps, "laps of the race")
	cmd.Flags().DurationVar(&f.PitTime, "pit-time", f.PitTime, "time lost per pit stop")
	cmd.Flags().DurationVar(&f.AvgLap, "avg-lap", f.AvgLap, "average lap time")
}

// Apply copies all flags set on cmd into s
//
//nolint:cyclop // simple mapping
func (f *ScenarioFlags) Apply(cmd *cobra.Command, s *scenario.Scenario) {
	changed := func(name string) bool {
		fl := cmd.Flags().Lookup(name)
		return fl != nil && fl.Changed
	}
	if changed("compound") {
		s.Compound = compound.Name(f.Compound)
	}
	if changed("laps") {
		s.Laps = f.Laps
	}
	if changed("seed") {
		s.Seed = f.Seed
	}
	if changed("base-grip") {
		s.Predictor.BaseGrip = f.BaseGrip
		s.Wear.BaseGrip = f.BaseGrip
	}
	if changed("wear-rate") {
		s.Predictor.WearRate = f.WearRate
		s.Wear.WearRate = f.WearRate
	}
	if changed("track-roughness") {
		s.Predictor.TrackRoughness = f.TrackRoughness
		s.Wear.TrackRoughness = f.TrackRoughness
	}
	if changed("driving-style") {
		s.Predictor.DrivingStyleFactor = f.DrivingStyleFactor
	}
	if changed("temperature") {
		s.Predictor.Temperature = f.Temperature
	}
	if changed("min-grip") {
		s.Predictor.MinGrip = f.MinGrip
	}
	if changed("temperature-effect") {
		s.Wear.TemperatureEffect = f.TemperatureEffect
	}
	if changed("race-laps") {
		s.Stints.RaceLaps = f.RaceLaps
	}
	if changed("pit-time") {
		s.Stints.PitTime = f.PitTime
	}
	if changed("avg-lap") {
		s.Stints.AvgLap = f.AvgLap
	}
}
