package wear

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/tyresim/pkg/compound"
)

func TestSimulatorInitialState(t *testing.T) {
	s := NewSimulator(DefaultModel())
	assert.Equal(t, AmbientTemperature, s.Temperature())
}

func TestSimulatorCooling(t *testing.T) {
	s := NewSimulator(DefaultModel())
	s.State.TyreTemperature = 90
	prev := s.Temperature()
	for i := 0; i < 20; i++ {
		_, err := s.CalculateGrip(5, 0.5, 0.2, compound.Medium)
		require.NoError(t, err)
		assert.LessOrEqual(t, s.Temperature(), prev)
		assert.GreaterOrEqual(t, s.Temperature(), AmbientTemperature)
		prev = s.Temperature()
	}
	assert.Equal(t, AmbientTemperature, s.Temperature())
}

func TestSimulatorHeating(t *testing.T) {
	s := NewSimulator(DefaultModel())
	for i := 1; i <= 50; i++ {
		_, err := s.CalculateGrip(i, 1.0, 0.2, compound.Medium)
		require.NoError(t, err)
		assert.Equal(t, AmbientTemperature+2*float64(i), s.Temperature())
	}
}

func TestSimulatorUnknownCompoundStillHeats(t *testing.T) {
	s := NewSimulator(DefaultModel())
	_, err := s.CalculateGrip(5, 1.0, 0.2, "invalid")
	require.ErrorIs(t, err, ErrUnknownKey)
	assert.Equal(t, 27.0, s.Temperature())
}

func TestSimulatorIndependentState(t *testing.T) {
	a := NewSimulator(DefaultModel())
	b := NewSimulator(DefaultModel())
	_, _ = a.CalculateGrip(1, 1.0, 0.2, compound.Soft)
	assert.Equal(t, 27.0, a.Temperature())
	assert.Equal(t, AmbientTemperature, b.Temperature())
}

func TestSimulatorEnergyLoss(t *testing.T) {
	s := NewSimulator(DefaultModel())
	assert.InDelta(t, 8.0, s.CalculateEnergyLoss(200, 0.5), 1e-9)
}
