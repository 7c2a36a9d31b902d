package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	s, err := LoadSettings("", nil)
	require.NoError(t, err)

	assert.Equal(t, "pt-BR", s.Locale)
	assert.Equal(t, "BRL", s.Currency)
	assert.Equal(t, "127.0.0.1:8080", s.Addr())
	assert.Equal(t, 128, s.Cache.Size)

	level, err := s.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, level)
}

func TestLoadSettings_File(t *testing.T) {
	path := writeFile(t, "nestegg.yaml", `
locale: en-US
currency: USD
server:
  port: 9000
log:
  level: debug
`)

	s, err := LoadSettings(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "en-US", s.Locale)
	assert.Equal(t, "USD", s.Currency)
	assert.Equal(t, "127.0.0.1", s.Server.Host, "unset keys keep their defaults")
	assert.Equal(t, 9000, s.Server.Port)
	assert.Equal(t, "debug", s.Log.Level)
}

func TestLoadSettings_MissingFile(t *testing.T) {
	_, err := LoadSettings("/does/not/exist.yaml", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read settings file")
}

func TestLoadSettings_Precedence(t *testing.T) {
	path := writeFile(t, "nestegg.yaml", "server:\n  port: 9000\n  host: 0.0.0.0\ncurrency: USD\n")
	t.Setenv("NESTEGG_SERVER_PORT", "9100")
	t.Setenv("NESTEGG_CACHE_SIZE", "16")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("port", 8080, "")
	flags.String("currency", "BRL", "")
	require.NoError(t, flags.Parse([]string{"--port=9200"}))

	s, err := LoadSettings(path, flags)
	require.NoError(t, err)

	assert.Equal(t, 9200, s.Server.Port, "changed flag wins over env and file")
	assert.Equal(t, "0.0.0.0", s.Server.Host, "file wins over defaults")
	assert.Equal(t, 16, s.Cache.Size, "env wins over defaults")
	assert.Equal(t, "USD", s.Currency, "unchanged flag does not override the file")
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *Settings)
		errText string
	}{
		{"bad currency", func(s *Settings) { s.Currency = "REAL" }, "currency"},
		{"empty locale", func(s *Settings) { s.Locale = "" }, "locale is required"},
		{"port out of range", func(s *Settings) { s.Server.Port = 70000 }, "server port"},
		{"negative cache", func(s *Settings) { s.Cache.Size = -1 }, "cache size"},
		{"unknown level", func(s *Settings) { s.Log.Level = "loud" }, "log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(s)
			err := s.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}
