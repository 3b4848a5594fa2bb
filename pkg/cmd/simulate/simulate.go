package simulate

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/tyresim/pkg/cmd/util"
	"github.com/mpapenbr/tyresim/pkg/race"
	"github.com/mpapenbr/tyresim/pkg/report"
	"github.com/mpapenbr/tyresim/pkg/scenario"
	"github.com/mpapenbr/tyresim/pkg/telemetry"
)

func NewSimulateCmd() *cobra.Command {
	flags := util.NewScenarioFlags()
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "simulate grip, temperature and energy loss lap by lap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return util.Run(cmd, "simulate", flags, simulate)
		},
	}
	flags.AddCommon(cmd)
	flags.AddWear(cmd)
	return cmd
}

func simulate(ctx context.Context, s *scenario.Scenario, w *report.Writer) error {
	opts := []race.Option{race.WithMetrics(telemetry.Global())}
	if s.Seed != 0 {
		opts = append(opts, race.WithSource(race.NewSource(s.Seed)))
	}
	recs, err := race.NewRunner(s.RaceConfig(), opts...).Run(ctx)
	if err != nil {
		return err
	}
	return w.LapRecords(recs)
}
