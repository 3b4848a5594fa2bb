package stints

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/tyresim/log"
	"github.com/mpapenbr/tyresim/pkg/cmd/util"
	"github.com/mpapenbr/tyresim/pkg/report"
	"github.com/mpapenbr/tyresim/pkg/scenario"
	"github.com/mpapenbr/tyresim/pkg/stint"
	"github.com/mpapenbr/tyresim/pkg/telemetry"
)

var noJitter bool

func NewStintsCmd() *cobra.Command {
	flags := util.NewScenarioFlags()
	cmd := &cobra.Command{
		Use:   "stints",
		Short: "plan stints using the predicted tyre life",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return util.Run(cmd, "stints", flags, planStints)
		},
	}
	flags.AddCommon(cmd)
	flags.AddPredictor(cmd)
	flags.AddStints(cmd)
	cmd.Flags().BoolVar(&noJitter, "no-jitter", false, "disable random variation")
	return cmd
}

func planStints(ctx context.Context, s *scenario.Scenario, w *report.Writer) error {
	life, err := util.NewPredictor(ctx, s, noJitter).PredictLife(s.PredictParams())
	if err != nil {
		return err
	}
	telemetry.Global().RecordPrediction(ctx, string(s.Compound))
	log.GetFromContext(ctx).Named("stints").Info("planning stints",
		log.Int("lapsPerStint", life), log.Int("raceLaps", s.Stints.RaceLaps))
	res, err := stint.NewLapStintCalc(s.StintParams(life)).Calc()
	if err != nil {
		return err
	}
	return w.Stints(res)
}
