package wear

import (
	"errors"
	"fmt"
	"math"

	"github.com/mpapenbr/tyresim/pkg/compound"
)

const (
	AmbientTemperature = 25.0
	// laps slower than this fraction of race pace cool the tyres down
	coolingSpeedFactor = 0.7
	coolingStep        = 5.0
	heatingStep        = 2.0
	// wear grows with lap^degradationExponent
	degradationExponent = 0.8
	brakingWearFactor   = 0.1

	rollingResistanceCoeff = 0.015
	lateralLossCoeff       = 0.05
)

var (
	ErrUnknownKey = errors.New("key not found")
	ErrInvalidLap = errors.New("invalid lap")
)

type (
	// Model holds the static parameters of the wear simulation
	Model struct {
		BaseGrip          float64
		WearRate          float64
		TrackRoughness    float64
		TemperatureEffect float64 // grip loss per degree away from optimal
	}

	// State is the part of the simulation that changes from lap to lap.
	// Each simulation run needs its own State.
	State struct {
		TyreTemperature float64
	}

	LapRecord struct {
		Lap         int     `json:"lap"`
		Grip        float64 `json:"grip"`
		Temperature float64 `json:"temperature"`
		EnergyLoss  float64 `json:"energyLoss"`
	}
)

func DefaultModel() Model {
	return Model{
		BaseGrip:          1.0,
		WearRate:          0.02,
		TrackRoughness:    1.0,
		TemperatureEffect: 0.005,
	}
}

func InitialState() State {
	return State{TyreTemperature: AmbientTemperature}
}

// Next returns the state after a lap driven at speedFactor
func (s State) Next(speedFactor float64) State {
	if speedFactor < coolingSpeedFactor {
		return State{TyreTemperature: math.Max(s.TyreTemperature-coolingStep, AmbientTemperature)}
	}
	return State{TyreTemperature: s.TyreTemperature + heatingStep}
}

// Grip computes the grip at the given lap using the tyre temperature of st.
// The returned state has the temperature change of this lap applied. This
// happens even if an error is returned, so callers keep the returned state.
func (m Model) Grip(
	st State,
	lap int,
	speedFactor, brakingFactor float64,
	name compound.Name,
) (float64, State, error) {
	next := st.Next(speedFactor)
	prof, err := compound.Lookup(name)
	if err != nil {
		return 0, next, fmt.Errorf("%w: compound %q", ErrUnknownKey, string(name))
	}
	if lap < 0 {
		return 0, next, fmt.Errorf("%w: %d", ErrInvalidLap, lap)
	}
	wearRate := m.WearRate * m.TrackRoughness *
		(1 + brakingWearFactor*brakingFactor) / prof.Durability
	tempPenalty := m.TemperatureEffect * math.Abs(st.TyreTemperature-prof.OptimalTemp)
	loss := wearRate*math.Pow(float64(lap), degradationExponent) + tempPenalty
	return math.Max(m.BaseGrip*prof.GripMultiplier-loss, 0), next, nil
}

// EnergyLoss returns rolling resistance plus lateral loss for a lap.
// Inputs are not validated.
func EnergyLoss(lapSpeed, corneringLoad float64) float64 {
	return rollingResistanceCoeff*lapSpeed + lateralLossCoeff*corneringLoad*lapSpeed
}
