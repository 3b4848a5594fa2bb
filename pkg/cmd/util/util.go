package util

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/tyresim/log"
	"github.com/mpapenbr/tyresim/pkg/config"
	"github.com/mpapenbr/tyresim/pkg/report"
	"github.com/mpapenbr/tyresim/pkg/scenario"
	"github.com/mpapenbr/tyresim/pkg/telemetry"
)

type CmdFunc func(ctx context.Context, s *scenario.Scenario, w *report.Writer) error

func parseLogLevel(l string, defaultVal log.Level) log.Level {
	level, err := log.ParseLevel(l)
	if err != nil {
		return defaultVal
	}
	return level
}

// SetupLogger creates the logger configured by the global flags
// and installs it as default logger.
func SetupLogger() (*log.Logger, error) {
	var logger *log.Logger
	if config.LogConfig != "" {
		cfg, err := log.LoadConfig(config.LogConfig)
		if err != nil {
			return nil, err
		}
		if logger, err = log.NewWithConfig(os.Stderr, config.LogFormat, cfg); err != nil {
			return nil, err
		}
	} else {
		switch config.LogFormat {
		case "json":
			logger = log.New(
				os.Stderr,
				parseLogLevel(config.LogLevel, log.InfoLevel),
				log.WithCaller(true))
		default:
			logger = log.DevLogger(
				os.Stderr,
				parseLogLevel(config.LogLevel, log.InfoLevel),
				log.WithCaller(true))
		}
	}
	log.ResetDefault(logger)
	return logger, nil
}

// LoadScenario reads the scenario file if given, otherwise defaults are used.
// Flags set on cmd override the scenario values.
func LoadScenario(cmd *cobra.Command, flags *ScenarioFlags) (*scenario.Scenario, error) {
	s := scenario.Default()
	if config.ScenarioFile != "" {
		var err error
		if s, err = scenario.Load(config.ScenarioFile); err != nil {
			return nil, err
		}
	}
	if flags != nil {
		flags.Apply(cmd, s)
	}
	return s, s.Validate()
}

// Run prepares logging, telemetry, the scenario and the output writer
// before calling fn.
//
//nolint:whitespace // readability
func Run(
	cmd *cobra.Command,
	name string,
	flags *ScenarioFlags,
	fn CmdFunc,
) error {
	logger, err := SetupLogger()
	if err != nil {
		return err
	}
	l := logger.Named(name)
	ctx := log.AddToContext(cmd.Context(), logger)

	if config.EnableTelemetry {
		tel, err := telemetry.Setup(ctx, telemetry.Config{
			Endpoint: config.TelemetryEndpoint,
			Writer:   os.Stderr,
		})
		if err != nil {
			l.Error("could not setup telemetry", log.ErrorField(err))
			return err
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tel.Shutdown(sctx); err != nil {
				l.Warn("telemetry shutdown", log.ErrorField(err))
			}
		}()
	}

	s, err := LoadScenario(cmd, flags)
	if err != nil {
		l.Error("invalid scenario", log.ErrorField(err))
		return err
	}
	l.Debug("scenario", log.Any("data", s))

	w, err := report.NewWriter(cmd.OutOrStdout(), config.OutputFormat, int32(config.Precision))
	if err != nil {
		return err
	}
	if err := fn(ctx, s, w); err != nil {
		l.Error("command failed", log.ErrorField(err))
		return err
	}
	return nil
}
