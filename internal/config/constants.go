package config

// Application constants for the ccxstat tool
const (
	AppName    = "ccxstat"
	AppVersion = "1.0.0"

	// ConfigFileName is the default YAML config file looked up in the
	// working directory when CCXSTAT_CONFIG is not set.
	ConfigFileName = "ccxstat.yaml"

	// InputExtension is the expected extension of solver output files.
	InputExtension = ".dat"

	// OutputSuffix replaces the input extension to form the default
	// report path, matching the established report naming convention.
	OutputSuffix = "_IntPtOutput.txt"

	defaultLogLevel    = "info"
	defaultLogOutput   = "console"
	defaultLogFilePath = "logs/ccxstat.log"
	defaultFormat      = "txt"
	defaultPrecision   = 4
)
