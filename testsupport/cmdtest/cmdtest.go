package cmdtest

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/tyresim/pkg/config"
)

// Execute runs cmd with args and the default global flags,
// returning what was written to stdout.
func Execute(cmd *cobra.Command, format string, args ...string) (string, error) {
	return ExecuteWithScenario(cmd, format, "", args...)
}

//nolint:whitespace // readability
func ExecuteWithScenario(
	cmd *cobra.Command,
	format, scenarioFile string,
	args ...string,
) (string, error) {
	config.LogLevel = "error"
	config.LogFormat = "json"
	config.LogConfig = ""
	config.EnableTelemetry = false
	config.ScenarioFile = scenarioFile
	config.OutputFormat = format
	config.Precision = 3

	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}
