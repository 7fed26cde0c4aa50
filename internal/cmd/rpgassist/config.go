package rpgassist

import (
	"fmt"

	"github.com/louisbranch/rpgassist/internal/platform/config"
	"github.com/louisbranch/rpgassist/internal/platform/logging"
)

// Config holds environment-backed defaults for the CLI. Flags override them.
type Config struct {
	DBPath    string `env:"RPGASSIST_DB_PATH"`
	Seed      int64  `env:"RPGASSIST_SEED" envDefault:"0"`
	LogLevel  string `env:"RPGASSIST_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"RPGASSIST_LOG_FORMAT" envDefault:"console"`
	// LogOutput is stdout, stderr or a file path. Empty writes logs to the
	// command's error stream.
	LogOutput string `env:"RPGASSIST_LOG_OUTPUT"`
}

// LoadConfig reads Config from RPGASSIST_* variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loggingConfig maps the CLI settings onto the logger configuration.
func (c Config) loggingConfig(verbose bool) logging.Config {
	lc := logging.DefaultConfig()
	if c.LogLevel != "" {
		lc.Level = c.LogLevel
	}
	if c.LogFormat != "" {
		lc.Format = c.LogFormat
	}
	lc.Output = c.LogOutput
	if verbose {
		lc.Level = "debug"
	}
	return lc
}

func (c Config) String() string {
	out := c.LogOutput
	if out == "" {
		out = "stderr"
	}
	return fmt.Sprintf("db=%q seed=%d log=%s/%s>%s", c.DBPath, c.Seed, c.LogLevel, c.LogFormat, out)
}
