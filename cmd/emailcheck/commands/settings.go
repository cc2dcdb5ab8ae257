package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/emailaddr/pkg/config"
	"github.com/dmitrymomot/emailaddr/pkg/environment"
	"github.com/dmitrymomot/emailaddr/pkg/logger"
)

// EnvPrefix is prepended to every variable of Settings.
const EnvPrefix = "EMAILCHECK_"

// Settings are the environment defaults of the CLI.
type Settings struct {
	Env       string `env:"ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"LOG_FORMAT"`

	Strict     bool   `env:"STRICT" envDefault:"true"`
	AllowBlank bool   `env:"ALLOW_BLANK"`
	Lang       string `env:"LANG"`
	Messages   string `env:"MESSAGES"`
	Output     string `env:"OUTPUT" envDefault:"text"`
}

// loadSettings reads Settings, loading envFile first when given.
func loadSettings(envFile string) (Settings, error) {
	var s Settings
	if envFile != "" {
		if err := config.LoadEnv(envFile); err != nil {
			return s, err
		}
		err := config.ForceReloadConfig(&s, config.WithPrefix(EnvPrefix))
		return s, err
	}
	err := config.Load(&s, config.WithPrefix(EnvPrefix))
	return s, err
}

func (s Settings) newLogger(out io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(environment.Parse(s.Env), "emailcheck"),
		logger.WithOutput(out),
		logger.WithContextExtractors(environment.LoggerExtractor()),
		logger.WithContextValue("source", sourceKey{}),
	}
	if s.LogLevel != "" {
		level, err := logger.ParseLevel(s.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if s.LogFormat != "" {
		format, err := logger.ParseFormat(s.LogFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithFormat(format))
	}
	return logger.New(opts...), nil
}

// localePreferences lists the language preferences in priority order.
func localePreferences(flag string, s Settings) []string {
	var prefs []string
	for _, v := range []string{flag, s.Lang, os.Getenv("LC_ALL"), os.Getenv("LC_MESSAGES"), os.Getenv("LANG")} {
		if v != "" {
			prefs = append(prefs, v)
		}
	}
	return prefs
}

// outputFormat validates the --output value.
func outputFormat(s string) (string, error) {
	switch s {
	case outputText, outputJSON:
		return s, nil
	}
	return "", fmt.Errorf("invalid output %q: must be %q or %q", s, outputText, outputJSON)
}
