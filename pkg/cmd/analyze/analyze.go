package analyze

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/tyresim/pkg/cmd/util"
	"github.com/mpapenbr/tyresim/pkg/report"
	"github.com/mpapenbr/tyresim/pkg/scenario"
)

func NewAnalyzeCmd() *cobra.Command {
	flags := util.NewScenarioFlags()
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "show the grip lap by lap until it falls below the minimum",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return util.Run(cmd, "analyze", flags, analyze)
		},
	}
	flags.AddCommon(cmd)
	flags.AddPredictor(cmd)
	cmd.Flags().IntVar(&flags.Laps, "laps", flags.Laps, "max number of laps")
	return cmd
}

func analyze(ctx context.Context, s *scenario.Scenario, w *report.Writer) error {
	// the trace does not use the jitter
	p := util.NewPredictor(ctx, s, true)
	grips, err := p.LapByLap(s.Laps, s.PredictParams())
	if err != nil {
		return err
	}
	return w.GripTrace(grips)
}
