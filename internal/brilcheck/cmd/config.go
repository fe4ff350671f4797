package cmd

import (
	"os"

	"brilcheck/internal/logging"
)

// Config is the environment-driven configuration of brilcheck
type Config struct {
	Debug     bool   `json:"debug" jsonschema:"title=Debug,description=Enable debug logging (BRILCHECK_LOG_LEVEL=debug or --debug)"`
	LogLevel  string `json:"logLevel" jsonschema:"title=Log Level,description=BRILCHECK_LOG_LEVEL,enum=debug,enum=info,enum=warn,enum=error,default=info"`
	LogPrefix string `json:"logPrefix" jsonschema:"title=Log Prefix,description=BRILCHECK_LOG_PREFIX,default=brilcheck "`
	LogToFile bool   `json:"logToFile" jsonschema:"title=Log To File,description=BRILCHECK_LOG_TO_FILE=1 writes logs to a timestamped file"`
	NoColor   bool   `json:"noColor" jsonschema:"title=No Color,description=BRILCHECK_NO_COLOR disables highlighting and rendered markdown"`
	Profile   bool   `json:"profile" jsonschema:"title=Profile,description=BRILCHECK_PROFILE serves pprof on localhost:6060"`
}

// LoadConfig reads the BRILCHECK_* environment variables.
func LoadConfig() Config {
	level := os.Getenv("BRILCHECK_LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	return Config{
		Debug:     logging.IsDebug(),
		LogLevel:  level,
		LogPrefix: os.Getenv("BRILCHECK_LOG_PREFIX"),
		LogToFile: os.Getenv("BRILCHECK_LOG_TO_FILE") == "1",
		NoColor:   os.Getenv("BRILCHECK_NO_COLOR") != "",
		Profile:   os.Getenv("BRILCHECK_PROFILE") != "",
	}
}
