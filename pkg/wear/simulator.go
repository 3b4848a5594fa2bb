package wear

import (
	"github.com/mpapenbr/tyresim/pkg/compound"
)

// Simulator combines a Model with its own State.
// A Simulator must not be shared between concurrent runs.
type Simulator struct {
	Model Model
	State State
}

func NewSimulator(m Model) *Simulator {
	return &Simulator{Model: m, State: InitialState()}
}

// CalculateGrip evaluates one lap and updates the simulator's temperature
func (s *Simulator) CalculateGrip(
	lap int,
	speedFactor, brakingFactor float64,
	name compound.Name,
) (float64, error) {
	grip, next, err := s.Model.Grip(s.State, lap, speedFactor, brakingFactor, name)
	s.State = next
	return grip, err
}

func (s *Simulator) CalculateEnergyLoss(lapSpeed, corneringLoad float64) float64 {
	return EnergyLoss(lapSpeed, corneringLoad)
}

func (s *Simulator) Temperature() float64 {
	return s.State.TyreTemperature
}
