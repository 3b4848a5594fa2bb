package config

// this holds the resolved configuration values from CLI
//
//nolint:lll // readablity
var (
	LogLevel          string // sets the log level (zap log level values)
	LogFormat         string // text vs json
	LogConfig         string // path to log config file
	EnableTelemetry   bool   // enable telemetry
	TelemetryEndpoint string // otlp endpoint for telemetry, stdout if empty
	ScenarioFile      string // path to scenario file
	OutputFormat      string // text vs json
	Precision         int    // number of decimals in output
)
