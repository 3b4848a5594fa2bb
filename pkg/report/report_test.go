//nolint:funlen // ok for tests
package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/tyresim/pkg/stint"
	"github.com/mpapenbr/tyresim/pkg/wear"
)

var sampleRecords = []wear.LapRecord{
	{Lap: 1, Grip: 0.87654321, Temperature: 27, EnergyLoss: 8.0},
	{Lap: 2, Grip: 0.8512, Temperature: 29, EnergyLoss: 10.123456},
}

func TestNewWriterFormat(t *testing.T) {
	_, err := NewWriter(&bytes.Buffer{}, "xml", 3)
	assert.Error(t, err)
}

func TestLapRecordsText(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, FormatText, 3)
	require.NoError(t, err)
	require.NoError(t, w.LapRecords(sampleRecords))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Energy Loss (kJ)")
	assert.Contains(t, lines[1], "0.877")
	assert.Contains(t, lines[1], "27.000")
	assert.Contains(t, lines[1], "8.000")
	assert.Contains(t, lines[2], "10.123")
}

func TestLapRecordsJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, FormatJSON, 2)
	require.NoError(t, err)
	require.NoError(t, w.LapRecords(sampleRecords))

	obj, err := oj.ParseString(buf.String())
	require.NoError(t, err)
	grips := jp.MustParseString("$[*].grip").Get(obj)
	assert.Equal(t, []any{0.88, 0.85}, grips)
	laps := jp.MustParseString("$[*].lap").Get(obj)
	assert.Equal(t, []any{int64(1), int64(2)}, laps)
}

func TestGripTrace(t *testing.T) {
	buf := &bytes.Buffer{}
	w, _ := NewWriter(buf, FormatText, 2)
	require.NoError(t, w.GripTrace([]float64{0.9, 0.8}))
	out := buf.String()
	assert.Contains(t, out, "0.90")
	assert.Contains(t, out, "0.80")
}

func TestLife(t *testing.T) {
	buf := &bytes.Buffer{}
	w, _ := NewWriter(buf, FormatText, 2)
	require.NoError(t, w.Life("soft", 32))
	assert.Equal(t, "Predicted tyre life (soft): 32 laps\n", buf.String())
}

func TestStintsJSON(t *testing.T) {
	res, err := stint.NewLapStintCalc(&stint.Params{
		RaceLaps: 15, LapsPerStint: 10, PitTime: 20 * time.Second, AvgLap: 90 * time.Second,
	}).Calc()
	require.NoError(t, err)
	buf := &bytes.Buffer{}
	w, _ := NewWriter(buf, FormatJSON, 2)
	require.NoError(t, w.Stints(res))

	obj, err := oj.ParseString(buf.String())
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1)}, jp.MustParseString("$.pitStops").Get(obj))
	assert.Equal(t, []any{"stint", "pit", "stint"}, jp.MustParseString("$.parts[*].type").Get(obj))
}

// flagPart is neither a stint nor a pit part
type flagPart struct{}

func (flagPart) Type() stint.PartType { return stint.PartType(99) }
func (flagPart) Output() string       { return "red flag" }

func TestStintsJSONUnknownPart(t *testing.T) {
	res := &stint.Result{Parts: []stint.Part{flagPart{}}}
	buf := &bytes.Buffer{}
	w, _ := NewWriter(buf, FormatJSON, 2)
	err := w.Stints(res)
	assert.ErrorContains(t, err, "unsupported stint part")
	assert.Empty(t, buf.String())
}
