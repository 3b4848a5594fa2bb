package stint

import (
	"errors"
	"fmt"
	"time"
)

type (
	PartType int
	Planner  interface {
		Calc() (*Result, error)
	}
	Part interface {
		Type() PartType
		Output() string
	}
	StintPart interface {
		Part
		Laps() int
		LapStart() int
		LapEnd() int
		StintTime() time.Duration
	}
	PitPart interface {
		Part
		PitTime() time.Duration
	}
	Result struct {
		Parts []Part
	}
)

const (
	PartTypeStint PartType = iota
	PartTypePit
)

var ErrInvalidParam = errors.New("invalid stint parameter")

type (
	Params struct {
		RaceLaps     int           // laps to drive
		LapsPerStint int           // usually the predicted tyre life
		PitTime      time.Duration // time lost per pit stop
		AvgLap       time.Duration // average lap time
	}

	lapStintCalc struct {
		param *Params
	}
	stintPart struct {
		laps      int
		lapStart  int
		lapEnd    int
		stintTime time.Duration
	}
	pitPart struct {
		pitTime time.Duration
	}
)

func NewLapStintCalc(param *Params) Planner {
	return &lapStintCalc{param: param}
}

// Calc splits the race into stints of at most LapsPerStint laps with a pit
// stop between two stints. The last stint takes the remaining laps.
func (c *lapStintCalc) Calc() (*Result, error) {
	if c.param.RaceLaps < 1 {
		return nil, fmt.Errorf("%w: race laps %d", ErrInvalidParam, c.param.RaceLaps)
	}
	if c.param.LapsPerStint < 1 {
		return nil, fmt.Errorf("%w: laps per stint %d", ErrInvalidParam, c.param.LapsPerStint)
	}
	parts := make([]Part, 0)
	for curLap := 1; curLap <= c.param.RaceLaps; {
		laps := min(c.param.LapsPerStint, c.param.RaceLaps-curLap+1)
		parts = append(parts, &stintPart{
			laps:      laps,
			lapStart:  curLap,
			lapEnd:    curLap + laps - 1,
			stintTime: time.Duration(laps) * c.param.AvgLap,
		})
		curLap += laps
		if curLap <= c.param.RaceLaps {
			parts = append(parts, &pitPart{pitTime: c.param.PitTime})
		}
	}
	return &Result{Parts: parts}, nil
}

func (r *Result) Stints() []StintPart {
	ret := make([]StintPart, 0)
	for _, p := range r.Parts {
		if s, ok := p.(StintPart); ok {
			ret = append(ret, s)
		}
	}
	return ret
}

func (r *Result) PitStops() int {
	return len(r.Parts) - len(r.Stints())
}

// TotalTime sums up stint and pit times
func (r *Result) TotalTime() time.Duration {
	var ret time.Duration
	for _, p := range r.Parts {
		switch v := p.(type) {
		case StintPart:
			ret += v.StintTime()
		case PitPart:
			ret += v.PitTime()
		}
	}
	return ret
}

func (s stintPart) Type() PartType {
	return PartTypeStint
}

func (s stintPart) Laps() int {
	return s.laps
}

func (s stintPart) LapStart() int {
	return s.lapStart
}

func (s stintPart) LapEnd() int {
	return s.lapEnd
}

func (s stintPart) StintTime() time.Duration {
	return s.stintTime
}

func (s stintPart) Output() string {
	return fmt.Sprintf("%d-%d (%d): %s", s.lapStart, s.lapEnd, s.laps, s.stintTime)
}

func (p pitPart) Type() PartType {
	return PartTypePit
}

func (p pitPart) PitTime() time.Duration {
	return p.pitTime
}

func (p pitPart) Output() string {
	return fmt.Sprintf("Pit %s", p.pitTime)
}
