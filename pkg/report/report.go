package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ohler55/ojg/oj"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/mpapenbr/tyresim/pkg/stint"
	"github.com/mpapenbr/tyresim/pkg/wear"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Writer renders simulation results with a fixed number of decimals
type Writer struct {
	out       io.Writer
	format    string
	precision int32
}

func NewWriter(out io.Writer, format string, precision int32) (*Writer, error) {
	if format != FormatText && format != FormatJSON {
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	return &Writer{out: out, format: format, precision: precision}, nil
}

func (w *Writer) fixed(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(w.precision)
}

func (w *Writer) round(v float64) float64 {
	return decimal.NewFromFloat(v).Round(w.precision).InexactFloat64()
}

func (w *Writer) LapRecords(recs []wear.LapRecord) error {
	if w.format == FormatJSON {
		data := lo.Map(recs, func(r wear.LapRecord, _ int) any {
			return map[string]any{
				"lap":         r.Lap,
				"grip":        w.round(r.Grip),
				"temperature": w.round(r.Temperature),
				"energyLoss":  w.round(r.EnergyLoss),
			}
		})
		return w.writeJSON(data)
	}
	tw := tabwriter.NewWriter(w.out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Lap\tGrip\tTemperature\tEnergy Loss (kJ)\t")
	for _, r := range recs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t\n",
			r.Lap, w.fixed(r.Grip), w.fixed(r.Temperature), w.fixed(r.EnergyLoss))
	}
	return tw.Flush()
}

// GripTrace renders grip values of consecutive laps starting with lap 1
func (w *Writer) GripTrace(grips []float64) error {
	if w.format == FormatJSON {
		data := lo.Map(grips, func(g float64, i int) any {
			return map[string]any{"lap": i + 1, "grip": w.round(g)}
		})
		return w.writeJSON(data)
	}
	tw := tabwriter.NewWriter(w.out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Lap\tGrip\t")
	for i, g := range grips {
		fmt.Fprintf(tw, "%d\t%s\t\n", i+1, w.fixed(g))
	}
	return tw.Flush()
}

func (w *Writer) Life(compound string, laps int) error {
	if w.format == FormatJSON {
		return w.writeJSON(map[string]any{"compound": compound, "laps": laps})
	}
	_, err := fmt.Fprintf(w.out, "Predicted tyre life (%s): %d laps\n", compound, laps)
	return err
}

func (w *Writer) Stints(res *stint.Result) error {
	if w.format == FormatJSON {
		parts := make([]any, 0, len(res.Parts))
		for _, p := range res.Parts {
			v, err := partJSON(p)
			if err != nil {
				return err
			}
			parts = append(parts, v)
		}
		return w.writeJSON(map[string]any{
			"parts":     parts,
			"pitStops":  res.PitStops(),
			"totalTime": res.TotalTime().String(),
		})
	}
	for i, p := range res.Parts {
		if _, err := fmt.Fprintf(w.out, "%2d %s\n", i, p.Output()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w.out, "pit stops: %d, total: %s\n", res.PitStops(), res.TotalTime())
	return err
}

func partJSON(p stint.Part) (map[string]any, error) {
	switch v := p.(type) {
	case stint.StintPart:
		return map[string]any{
			"type": "stint", "laps": v.Laps(), "lapStart": v.LapStart(),
			"lapEnd": v.LapEnd(), "time": v.StintTime().String(),
		}, nil
	case stint.PitPart:
		return map[string]any{"type": "pit", "time": v.PitTime().String()}, nil
	default:
		return nil, fmt.Errorf("unsupported stint part %T", p)
	}
}

func (w *Writer) writeJSON(data any) error {
	_, err := fmt.Fprintln(w.out, oj.JSON(data, &oj.Options{Indent: 2, Sort: true}))
	return err
}
