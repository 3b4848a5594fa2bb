package predict

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/mpapenbr/tyresim/log"
	"github.com/mpapenbr/tyresim/pkg/compound"
)

const (
	DefaultMinGrip = 0.2
	// linear penalty per degree when running outside the compound's window
	tempPenaltyFactor = 0.1
	jitterLow         = 0.95
	jitterHigh        = 1.05
)

var ErrInvalidArgument = errors.New("invalid argument")

type (
	// JitterFunc returns a multiplicative factor applied to a life estimate.
	// Implementations are expected to return values in [0.95, 1.05].
	JitterFunc func() float64

	Params struct {
		BaseGrip           float64
		WearRate           float64 // grip loss per lap before adjustments
		TrackRoughness     float64
		DrivingStyleFactor float64
		Compound           compound.Name
		Temperature        float64 // tyre temperature in degrees celsius
	}

	Predictor struct {
		minGrip float64
		jitter  JitterFunc
		l       *log.Logger
	}
	Option func(*Predictor)
)

// DefaultParams returns params with the default track, driving style,
// compound and temperature. BaseGrip and WearRate still have to be set.
func DefaultParams() Params {
	return Params{
		BaseGrip:           1.0,
		TrackRoughness:     1.0,
		DrivingStyleFactor: 1.0,
		Compound:           compound.Medium,
		Temperature:        85,
	}
}

func WithMinGrip(minGrip float64) Option {
	return func(p *Predictor) {
		p.minGrip = minGrip
	}
}

func WithJitter(jitter JitterFunc) Option {
	return func(p *Predictor) {
		p.jitter = jitter
	}
}

// WithSeed uses a seeded random source for the jitter
func WithSeed(seed uint64) Option {
	return func(p *Predictor) {
		p.jitter = UniformJitter(rand.New(rand.NewPCG(seed, seed)))
	}
}

func WithLogger(l *log.Logger) Option {
	return func(p *Predictor) {
		p.l = l
	}
}

// NoJitter disables the random variation of life estimates
func NoJitter() float64 {
	return 1.0
}

// UniformJitter returns a JitterFunc drawing from the half-open interval
// [0.95, 1.05) using r
func UniformJitter(r *rand.Rand) JitterFunc {
	return func() float64 {
		return jitterLow + (jitterHigh-jitterLow)*r.Float64()
	}
}

func NewPredictor(opts ...Option) *Predictor {
	ret := &Predictor{
		minGrip: DefaultMinGrip,
		l:       log.Default().Named("predict"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.jitter == nil {
		seed := uint64(time.Now().UnixNano())
		ret.jitter = UniformJitter(rand.New(rand.NewPCG(seed, seed>>1)))
	}
	return ret
}

func (p *Predictor) MinGrip() float64 {
	return p.minGrip
}

// PredictLife estimates the number of laps until grip drops to the minimum
// grip. The result is truncated toward zero after applying the jitter.
func (p *Predictor) PredictLife(param Params) (int, error) {
	prof, err := validate(param)
	if err != nil {
		return 0, err
	}
	if param.BaseGrip <= p.minGrip {
		return 0, fmt.Errorf("%w: base_grip %v must be greater than min_grip %v",
			ErrInvalidArgument, param.BaseGrip, p.minGrip)
	}
	rate := effectiveWearRate(param, prof)
	baseLife := (param.BaseGrip - p.minGrip) / rate
	jitter := p.jitter()
	est := baseLife * jitter
	// also rejects NaN
	if !(est < math.MaxInt) {
		return 0, fmt.Errorf("%w: estimated life %v laps exceeds the int range",
			ErrInvalidArgument, est)
	}
	life := int(est)
	p.l.Debug("predicted life",
		log.String("compound", string(param.Compound)),
		log.Float64("wearRate", rate),
		log.Float64("baseLife", baseLife),
		log.Float64("jitter", jitter),
		log.Int("life", life))
	return life, nil
}

// LapByLap returns the remaining grip after each lap, starting with lap 1.
// The trace ends after the first lap whose grip is at or below the minimum
// grip, so it may be shorter than laps.
func (p *Predictor) LapByLap(laps int, param Params) ([]float64, error) {
	if laps < 0 {
		return nil, fmt.Errorf("%w: laps %d must not be negative", ErrInvalidArgument, laps)
	}
	prof, err := validate(param)
	if err != nil {
		return nil, err
	}
	lapWear := effectiveWearRate(param, prof)
	remaining := param.BaseGrip
	ret := make([]float64, 0, laps)
	for lap := 1; lap <= laps; lap++ {
		remaining = math.Max(remaining-lapWear, 0)
		ret = append(ret, remaining)
		if remaining <= p.minGrip {
			p.l.Debug("grip below minimum",
				log.Int("lap", lap), log.Float64("grip", remaining))
			break
		}
	}
	return ret, nil
}

// effectiveWearRate is the per lap grip loss for the given conditions.
// Outside the compound's temperature window a linear penalty is added.
func effectiveWearRate(param Params, prof compound.Profile) float64 {
	rate := param.WearRate * param.TrackRoughness * param.DrivingStyleFactor / prof.Durability
	if !prof.TempRange.Contains(param.Temperature) {
		rate += tempPenaltyFactor * math.Abs(param.Temperature-prof.OptimalTemp)
	}
	return rate
}

func validate(param Params) (compound.Profile, error) {
	finite := []struct {
		name string
		val  float64
	}{
		{"base_grip", param.BaseGrip},
		{"wear_rate", param.WearRate},
		{"track_roughness", param.TrackRoughness},
		{"driving_style_factor", param.DrivingStyleFactor},
		{"temperature", param.Temperature},
	}
	for _, c := range finite {
		if math.IsNaN(c.val) || math.IsInf(c.val, 0) {
			return compound.Profile{}, fmt.Errorf("%w: %s must be a finite number, got %v",
				ErrInvalidArgument, c.name, c.val)
		}
	}
	checks := []struct {
		name string
		val  float64
	}{
		{"wear_rate", param.WearRate},
		{"track_roughness", param.TrackRoughness},
		{"driving_style_factor", param.DrivingStyleFactor},
	}
	for _, c := range checks {
		if !(c.val > 0) {
			return compound.Profile{}, fmt.Errorf("%w: %s must be greater than zero, got %v",
				ErrInvalidArgument, c.name, c.val)
		}
	}
	prof, err := compound.Lookup(param.Compound)
	if err != nil {
		return compound.Profile{}, fmt.Errorf("%w: compound %q, expected one of %v",
			ErrInvalidArgument, string(param.Compound), compound.Names())
	}
	return prof, nil
}
