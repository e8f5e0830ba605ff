package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/a-peyrard/jscollections/option"
	"github.com/rs/zerolog"
)

// EnvPrefix is the prefix of every env var read by LoadSettings.
const EnvPrefix = "JSC"

type (
	// Settings is the environment driven configuration of the containers.
	Settings struct {
		Compat *CompatSettings `mapstructure:"compat"`
		Log    *LogSettings    `mapstructure:"log"`
	}

	// CompatSettings toggles the legacy behaviours, JSC_COMPAT_TRUTHY_LOOKUP.
	CompatSettings struct {
		TruthyLookup bool `mapstructure:"truthy_lookup"`
	}

	// LogSettings configures the container logger, JSC_LOG_LEVEL.
	LogSettings struct {
		Level string `mapstructure:"level"`
	}
)

func (l *LogSettings) ApplyDefault() {
	if l.Level == "" {
		l.Level = "disabled"
	}
}

// LoadSettings reads the Settings from the JSC_ prefixed environment variables.
func LoadSettings() (*Settings, error) {
	return Load[Settings](WithEnvPrefix(EnvPrefix))
}

// Logger builds a console logger writing on stderr at the configured level.
func (s *Settings) Logger() (*zerolog.Logger, error) {
	return s.LoggerTo(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

// LoggerTo builds a logger writing on the given writer at the configured level.
func (s *Settings) LoggerTo(writer io.Writer) (*zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(s.Log.Level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %s: %w", s.Log.Level, err)
	}

	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &logger, nil
}

// Options converts the settings into container options.
func (s *Settings) Options() ([]option.Option[option.Container], error) {
	logger, err := s.Logger()
	if err != nil {
		return nil, err
	}

	opts := []option.Option[option.Container]{option.WithLogger(logger)}
	if s.Compat.TruthyLookup {
		opts = append(opts, option.WithTruthyLookup())
	}
	return opts, nil
}
