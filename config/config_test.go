package config

import (
	"bytes"
	"testing"

	"github.com/a-peyrard/jscollections/option"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type (
	TestConfig struct {
		Foo *FooTestConfig
		Bar *BarTestConfig
	}
	FooTestConfig struct {
		Hello string
		World int
	}
	BarTestConfig struct {
		First  int
		Second int
	}
	MultipleWordsConfig struct {
		FooBar     int
		CustomerId int
	}
)

func (c *BarTestConfig) ApplyDefault() {
	if c.First == 0 {
		c.First = 42
	}
}

func TestLoad(t *testing.T) {
	t.Run("it should load basic struct", func(t *testing.T) {
		// GIVEN
		t.Setenv("FOO_HELLO", "waldo")
		t.Setenv("FOO_WORLD", "23")

		// WHEN
		conf, err := Load[FooTestConfig](WithEnvPrefix("FOO"))

		// THEN
		require.NoError(t, err)
		assert.Equal(t, "waldo", conf.Hello)
		assert.Equal(t, 23, conf.World)
	})

	t.Run("it should load nested structs from env vars", func(t *testing.T) {
		// GIVEN
		t.Setenv("TEST_FOO_HELLO", "waldo")
		t.Setenv("TEST_FOO_WORLD", "23")
		t.Setenv("TEST_BAR_FIRST", "12")
		t.Setenv("TEST_BAR_SECOND", "66")

		// WHEN
		conf, err := Load[TestConfig](WithEnvPrefix("TEST"))

		// THEN
		require.NoError(t, err)
		assert.Equal(t, "waldo", conf.Foo.Hello)
		assert.Equal(t, 23, conf.Foo.World)
		assert.Equal(t, 12, conf.Bar.First)
		assert.Equal(t, 66, conf.Bar.Second)
	})

	t.Run("it should apply default if the struct implements WithDefault", func(t *testing.T) {
		// WHEN
		conf, err := Load[TestConfig](WithEnvPrefix("TEST"))

		// THEN
		require.NoError(t, err)
		require.NotNil(t, conf.Foo)
		assert.Equal(t, "", conf.Foo.Hello)
		assert.Equal(t, 42, conf.Bar.First)
		assert.Equal(t, 0, conf.Bar.Second)
	})

	t.Run("it should bind correctly multiple words variables", func(t *testing.T) {
		// GIVEN
		t.Setenv("TEST_FOO_BAR", "12")
		t.Setenv("TEST_CUSTOMER_ID", "66")

		// WHEN
		conf, err := Load[MultipleWordsConfig](WithEnvPrefix("TEST"))

		// THEN
		require.NoError(t, err)
		assert.Equal(t, 12, conf.FooBar)
		assert.Equal(t, 66, conf.CustomerId)
	})
}

func TestLoadSettings(t *testing.T) {
	t.Run("it should default to a silent presence based setup", func(t *testing.T) {
		// WHEN
		settings, err := LoadSettings()

		// THEN
		require.NoError(t, err)
		assert.False(t, settings.Compat.TruthyLookup)
		assert.Equal(t, "disabled", settings.Log.Level)
	})

	t.Run("it should read compat and log settings", func(t *testing.T) {
		// GIVEN
		t.Setenv("JSC_COMPAT_TRUTHY_LOOKUP", "true")
		t.Setenv("JSC_LOG_LEVEL", "DEBUG")

		// WHEN
		settings, err := LoadSettings()

		// THEN
		require.NoError(t, err)
		assert.True(t, settings.Compat.TruthyLookup)
		assert.Equal(t, "DEBUG", settings.Log.Level)
	})
}

func TestSettings(t *testing.T) {
	t.Run("it should build a logger at the configured level", func(t *testing.T) {
		// GIVEN
		var buf bytes.Buffer
		settings := &Settings{Compat: &CompatSettings{}, Log: &LogSettings{Level: "Warn"}}

		// WHEN
		logger, err := settings.LoggerTo(&buf)
		require.NoError(t, err)
		logger.Info().Msg("skipped")
		logger.Warn().Msg("kept")

		// THEN
		assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
		assert.NotContains(t, buf.String(), "skipped")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("it should fail on unknown level", func(t *testing.T) {
		// GIVEN
		settings := &Settings{Compat: &CompatSettings{}, Log: &LogSettings{Level: "loud"}}

		// WHEN
		_, err := settings.Options()

		// THEN
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level loud")
	})

	t.Run("it should convert to container options", func(t *testing.T) {
		// GIVEN
		settings := &Settings{
			Compat: &CompatSettings{TruthyLookup: true},
			Log:    &LogSettings{Level: "disabled"},
		}

		// WHEN
		opts, err := settings.Options()
		require.NoError(t, err)
		built := option.BuildContainer(opts...)

		// THEN
		assert.True(t, built.TruthyLookup)
		require.NotNil(t, built.Logger)
		assert.Equal(t, zerolog.Disabled, built.Logger.GetLevel())
	})
}
