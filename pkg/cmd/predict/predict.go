package predict

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/tyresim/log"
	"github.com/mpapenbr/tyresim/pkg/cmd/util"
	"github.com/mpapenbr/tyresim/pkg/report"
	"github.com/mpapenbr/tyresim/pkg/scenario"
	"github.com/mpapenbr/tyresim/pkg/telemetry"
)

var noJitter bool

func NewPredictCmd() *cobra.Command {
	flags := util.NewScenarioFlags()
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "estimate the number of laps until grip falls below the minimum",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return util.Run(cmd, "predict", flags, predictLife)
		},
	}
	flags.AddCommon(cmd)
	flags.AddPredictor(cmd)
	cmd.Flags().BoolVar(&noJitter, "no-jitter", false, "disable random variation")
	return cmd
}

func predictLife(ctx context.Context, s *scenario.Scenario, w *report.Writer) error {
	p := util.NewPredictor(ctx, s, noJitter)
	life, err := p.PredictLife(s.PredictParams())
	if err != nil {
		return err
	}
	telemetry.Global().RecordPrediction(ctx, string(s.Compound))
	log.GetFromContext(ctx).Named("predict").Debug("prediction done",
		log.String("compound", string(s.Compound)), log.Int("laps", life))
	return w.Life(string(s.Compound), life)
}
