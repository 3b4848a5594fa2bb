//nolint:whitespace,lll,funlen // readability
package stint

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func Test_lapStintCalc_Calc(t *testing.T) {
	// converts sec to time.Duration
	toDur := func(secs int) time.Duration { return time.Duration(secs) * time.Second }
	tests := []struct {
		name  string
		param *Params
		want  *Result
	}{
		{
			name:  "single lap",
			param: &Params{RaceLaps: 1, LapsPerStint: 10, PitTime: toDur(20), AvgLap: toDur(90)},
			want: &Result{
				Parts: []Part{&stintPart{laps: 1, lapStart: 1, lapEnd: 1, stintTime: toDur(90)}},
			},
		},
		{
			name:  "tyre lasts the race",
			param: &Params{RaceLaps: 10, LapsPerStint: 10, PitTime: toDur(20), AvgLap: toDur(90)},
			want: &Result{
				Parts: []Part{&stintPart{laps: 10, lapStart: 1, lapEnd: 10, stintTime: toDur(900)}},
			},
		},
		{
			name:  "two stints",
			param: &Params{RaceLaps: 15, LapsPerStint: 10, PitTime: toDur(20), AvgLap: toDur(90)},
			want: &Result{
				Parts: []Part{
					&stintPart{laps: 10, lapStart: 1, lapEnd: 10, stintTime: toDur(900)},
					&pitPart{pitTime: toDur(20)},
					&stintPart{laps: 5, lapStart: 11, lapEnd: 15, stintTime: toDur(450)},
				},
			},
		},
		{
			name:  "even split",
			param: &Params{RaceLaps: 6, LapsPerStint: 2, PitTime: toDur(20), AvgLap: toDur(90)},
			want: &Result{
				Parts: []Part{
					&stintPart{laps: 2, lapStart: 1, lapEnd: 2, stintTime: toDur(180)},
					&pitPart{pitTime: toDur(20)},
					&stintPart{laps: 2, lapStart: 3, lapEnd: 4, stintTime: toDur(180)},
					&pitPart{pitTime: toDur(20)},
					&stintPart{laps: 2, lapStart: 5, lapEnd: 6, stintTime: toDur(180)},
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewLapStintCalc(tt.param).Calc()
			if err != nil {
				t.Errorf("lapStintCalc.Calc() error = %v", err)
				return
			}
			if len(got.Parts) != len(tt.want.Parts) {
				t.Errorf("got %d parts, want %d parts", len(got.Parts), len(tt.want.Parts))
				return
			}
			for i := range got.Parts {
				if !reflect.DeepEqual(got.Parts[i], tt.want.Parts[i]) {
					t.Errorf("part %d: got %v, want %v", i, got.Parts[i], tt.want.Parts[i])
				}
			}
		})
	}
}

func TestResultSummary(t *testing.T) {
	res, err := NewLapStintCalc(&Params{
		RaceLaps: 25, LapsPerStint: 10, PitTime: 20 * time.Second, AvgLap: 90 * time.Second,
	}).Calc()
	if err != nil {
		t.Fatal(err)
	}
	if got := len(res.Stints()); got != 3 {
		t.Errorf("Stints() = %d, want 3", got)
	}
	if got := res.PitStops(); got != 2 {
		t.Errorf("PitStops() = %d, want 2", got)
	}
	if got, want := res.TotalTime(), 25*90*time.Second+40*time.Second; got != want {
		t.Errorf("TotalTime() = %v, want %v", got, want)
	}
	laps := 0
	for _, s := range res.Stints() {
		laps += s.Laps()
	}
	if laps != 25 {
		t.Errorf("stints cover %d laps, want 25", laps)
	}
}

func TestCalcInvalid(t *testing.T) {
	for _, p := range []*Params{
		{RaceLaps: 0, LapsPerStint: 10},
		{RaceLaps: 10, LapsPerStint: 0},
	} {
		_, err := NewLapStintCalc(p).Calc()
		if !errors.Is(err, ErrInvalidParam) {
			t.Errorf("expected ErrInvalidParam for %+v, got %v", p, err)
		}
	}
}
