package scenario

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/mpapenbr/tyresim/pkg/compound"
	"github.com/mpapenbr/tyresim/pkg/predict"
	"github.com/mpapenbr/tyresim/pkg/race"
	"github.com/mpapenbr/tyresim/pkg/stint"
	"github.com/mpapenbr/tyresim/pkg/wear"
)

const (
	RequiredVersion string = "v0.1.0"
	CurrentVersion  string = "v0.1.0"
)

var ErrInvalidScenario = errors.New("invalid scenario")

type (
	// Scenario describes a simulation run as read from a yaml file.
	// Fields missing in the file keep their defaults.
	Scenario struct {
		Version   string        `yaml:"version"`
		Compound  compound.Name `yaml:"compound"`
		Laps      int           `yaml:"laps"`
		Seed      uint64        `yaml:"seed"` // 0 means random
		Predictor Predictor     `yaml:"predictor"`
		Wear      Wear          `yaml:"wear"`
		Stints    Stints        `yaml:"stints"`
	}
	Predictor struct {
		MinGrip            float64 `yaml:"minGrip"`
		BaseGrip           float64 `yaml:"baseGrip"`
		WearRate           float64 `yaml:"wearRate"`
		TrackRoughness     float64 `yaml:"trackRoughness"`
		DrivingStyleFactor float64 `yaml:"drivingStyleFactor"`
		Temperature        float64 `yaml:"temperature"`
	}
	Wear struct {
		BaseGrip          float64 `yaml:"baseGrip"`
		WearRate          float64 `yaml:"wearRate"`
		TrackRoughness    float64 `yaml:"trackRoughness"`
		TemperatureEffect float64 `yaml:"temperatureEffect"`
	}
	Stints struct {
		RaceLaps int           `yaml:"raceLaps"`
		PitTime  time.Duration `yaml:"pitTime"`
		AvgLap   time.Duration `yaml:"avgLap"`
	}
)

func Default() *Scenario {
	pp := predict.DefaultParams()
	wm := wear.DefaultModel()
	return &Scenario{
		Version:  CurrentVersion,
		Compound: compound.Medium,
		Laps:     50,
		Predictor: Predictor{
			MinGrip:            predict.DefaultMinGrip,
			BaseGrip:           pp.BaseGrip,
			WearRate:           wm.WearRate,
			TrackRoughness:     pp.TrackRoughness,
			DrivingStyleFactor: pp.DrivingStyleFactor,
			Temperature:        pp.Temperature,
		},
		Wear: Wear{
			BaseGrip:          wm.BaseGrip,
			WearRate:          wm.WearRate,
			TrackRoughness:    wm.TrackRoughness,
			TemperatureEffect: wm.TemperatureEffect,
		},
		Stints: Stints{
			RaceLaps: 50,
			PitTime:  25 * time.Second,
			AvgLap:   90 * time.Second,
		},
	}
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Scenario, error) {
	ret := Default()
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

func (s *Scenario) Validate() error {
	if !CheckVersion(s.Version) {
		return fmt.Errorf("%w: version %q, need at least %s",
			ErrInvalidScenario, s.Version, RequiredVersion)
	}
	if !compound.IsKnown(s.Compound) {
		return fmt.Errorf("%w: compound %q", ErrInvalidScenario, string(s.Compound))
	}
	if s.Laps < 0 {
		return fmt.Errorf("%w: laps %d", ErrInvalidScenario, s.Laps)
	}
	return nil
}

// CheckVersion reports whether v is a valid version not older than RequiredVersion.
// The leading "v" is optional.
func CheckVersion(v string) bool {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return false
	}
	return semver.Compare(v, RequiredVersion) >= 0
}

func (s *Scenario) PredictParams() predict.Params {
	return predict.Params{
		BaseGrip:           s.Predictor.BaseGrip,
		WearRate:           s.Predictor.WearRate,
		TrackRoughness:     s.Predictor.TrackRoughness,
		DrivingStyleFactor: s.Predictor.DrivingStyleFactor,
		Compound:           s.Compound,
		Temperature:        s.Predictor.Temperature,
	}
}

func (s *Scenario) WearModel() wear.Model {
	return wear.Model{
		BaseGrip:          s.Wear.BaseGrip,
		WearRate:          s.Wear.WearRate,
		TrackRoughness:    s.Wear.TrackRoughness,
		TemperatureEffect: s.Wear.TemperatureEffect,
	}
}

func (s *Scenario) RaceConfig() race.Config {
	return race.Config{Laps: s.Laps, Compound: s.Compound, Model: s.WearModel()}
}

// StintParams returns the stint parameters using lapsPerStint as tyre life
func (s *Scenario) StintParams(lapsPerStint int) *stint.Params {
	return &stint.Params{
		RaceLaps:     s.Stints.RaceLaps,
		LapsPerStint: lapsPerStint,
		PitTime:      s.Stints.PitTime,
		AvgLap:       s.Stints.AvgLap,
	}
}

func (s *Scenario) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}
