//nolint:funlen // ok for tests
package wear

import (
	"math"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/mpapenbr/tyresim/pkg/compound"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestGripNoWear(t *testing.T) {
	for _, name := range compound.Names() {
		t.Run(string(name), func(t *testing.T) {
			prof, err := compound.Lookup(name)
			assert.NilError(t, err)
			st := State{TyreTemperature: prof.OptimalTemp}
			grip, _, err := DefaultModel().Grip(st, 0, 1.0, 0.0, name)
			assert.NilError(t, err)
			assert.Assert(t, approx(grip, prof.GripMultiplier), "got %v", grip)
		})
	}
}

func TestGrip(t *testing.T) {
	m := DefaultModel()
	tests := []struct {
		name    string
		st      State
		lap     int
		braking float64
		c       compound.Name
		want    float64
	}{
		{
			name: "ambient penalty only",
			st:   InitialState(), lap: 0, braking: 0, c: compound.Medium,
			// 0.005 * |25-90|
			want: 1.0 - 0.325,
		},
		{
			name: "one lap at optimal",
			st:   State{TyreTemperature: 90}, lap: 1, braking: 0, c: compound.Medium,
			want: 0.98,
		},
		{
			name: "braking increases wear",
			st:   State{TyreTemperature: 90}, lap: 1, braking: 0.5, c: compound.Medium,
			want: 1.0 - 0.02*1.05,
		},
		{
			name: "hard compound",
			st:   State{TyreTemperature: 95}, lap: 1, braking: 0, c: compound.Hard,
			want: 0.8 - 0.02/1.5,
		},
		{
			name: "worn out",
			st:   InitialState(), lap: 100, braking: 0.5, c: compound.Medium,
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := m.Grip(tt.st, tt.lap, 1.0, tt.braking, tt.c)
			assert.NilError(t, err)
			assert.Assert(t, approx(got, tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestGripDecreasesWithLaps(t *testing.T) {
	m := DefaultModel()
	st := State{TyreTemperature: 90}
	prev := math.Inf(1)
	for lap := 0; lap <= 60; lap++ {
		grip, _, err := m.Grip(st, lap, 1.0, 0.2, compound.Medium)
		assert.NilError(t, err)
		assert.Assert(t, grip <= prev)
		assert.Assert(t, grip >= 0)
		assert.Assert(t, grip <= m.BaseGrip)
		prev = grip
	}
}

func TestGripTemperaturePenalty(t *testing.T) {
	m := DefaultModel()
	optimal, _, _ := m.Grip(State{TyreTemperature: 90}, 5, 1.0, 0.2, compound.Medium)
	hot, _, _ := m.Grip(State{TyreTemperature: 110}, 5, 1.0, 0.2, compound.Medium)
	assert.Assert(t, hot < optimal)
	assert.Assert(t, hot < 1.0)
}

func TestGripCompounds(t *testing.T) {
	m := DefaultModel()
	st := InitialState()
	soft, _, err := m.Grip(st, 5, 1.0, 0.2, compound.Soft)
	assert.NilError(t, err)
	hard, _, err := m.Grip(st, 5, 1.0, 0.2, compound.Hard)
	assert.NilError(t, err)
	assert.Assert(t, soft > hard)
}

func TestGripUnknownCompound(t *testing.T) {
	st := State{TyreTemperature: 40}
	_, next, err := DefaultModel().Grip(st, 5, 1.0, 0.2, "invalid")
	assert.ErrorIs(t, err, ErrUnknownKey)
	// temperature moves on regardless
	assert.Equal(t, next.TyreTemperature, 42.0)
}

func TestGripInvalidLap(t *testing.T) {
	_, _, err := DefaultModel().Grip(InitialState(), -1, 1.0, 0.2, compound.Medium)
	assert.ErrorIs(t, err, ErrInvalidLap)
}

func TestStateNext(t *testing.T) {
	tests := []struct {
		name  string
		temp  float64
		speed float64
		want  float64
	}{
		{name: "heat up", temp: 25, speed: 1.0, want: 27},
		{name: "heat up at threshold", temp: 90, speed: 0.7, want: 92},
		{name: "cool down", temp: 90, speed: 0.5, want: 85},
		{name: "cool down to ambient", temp: 28, speed: 0.5, want: 25},
		{name: "stay at ambient", temp: 25, speed: 0.1, want: 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := State{TyreTemperature: tt.temp}.Next(tt.speed)
			assert.Equal(t, got.TyreTemperature, tt.want)
		})
	}
}

func TestEnergyLoss(t *testing.T) {
	assert.Assert(t, approx(EnergyLoss(200, 0.5), 8.0))
	assert.Assert(t, approx(EnergyLoss(0, 1), 0))
	assert.Assert(t, approx(EnergyLoss(100, 0), 1.5))
	// not validated
	assert.Assert(t, EnergyLoss(-100, 0.5) < 0)
}
