package compound

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"
)

type (
	Name string

	TempRange struct {
		Low  float64
		High float64
	}

	// Profile holds the fixed characteristics of a tyre compound
	Profile struct {
		Durability     float64   // divisor applied to the wear rate
		OptimalTemp    float64   // degrees celsius
		TempRange      TempRange // acceptable operating window, bounds inclusive
		GripMultiplier float64
	}
)

const (
	Soft   Name = "soft"
	Medium Name = "medium"
	Hard   Name = "hard"
)

var ErrUnknownCompound = errors.New("unknown compound")

var profiles = map[Name]Profile{
	Soft: {
		Durability:     0.8,
		OptimalTemp:    85,
		TempRange:      TempRange{Low: 75, High: 95},
		GripMultiplier: 1.2,
	},
	Medium: {
		Durability:     1.0,
		OptimalTemp:    90,
		TempRange:      TempRange{Low: 80, High: 100},
		GripMultiplier: 1.0,
	},
	Hard: {
		Durability:     1.5,
		OptimalTemp:    95,
		TempRange:      TempRange{Low: 85, High: 105},
		GripMultiplier: 0.8,
	},
}

// Lookup returns the profile for name.
// The error wraps ErrUnknownCompound if name is not one of soft, medium, hard.
func Lookup(name Name) (Profile, error) {
	p, ok := profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownCompound, string(name))
	}
	return p, nil
}

func IsKnown(name Name) bool {
	_, ok := profiles[name]
	return ok
}

// Names returns the known compounds in sorted order
func Names() []Name {
	names := lo.Keys(profiles)
	slices.Sort(names)
	return names
}

// Contains reports whether temp lies within the range (bounds inclusive)
func (r TempRange) Contains(temp float64) bool {
	return temp >= r.Low && temp <= r.High
}

func (p Profile) String() string {
	return fmt.Sprintf("grip=%.2f durability=%.2f optimal=%.0f range=[%.0f,%.0f]",
		p.GripMultiplier, p.Durability, p.OptimalTemp, p.TempRange.Low, p.TempRange.High)
}
