package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read into Settings.
const EnvPrefix = "NESTEGG"

// Settings is the application configuration shared by the CLI, the TUI and the
// HTTP service.
type Settings struct {
	Locale   string         `mapstructure:"locale"`
	Currency string         `mapstructure:"currency"`
	Server   ServerSettings `mapstructure:"server"`
	Log      LogSettings    `mapstructure:"log"`
	Cache    CacheSettings  `mapstructure:"cache"`
}

type ServerSettings struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type LogSettings struct {
	Level string `mapstructure:"level"`
}

type CacheSettings struct {
	Size int `mapstructure:"size"`
}

// flagKeys maps command-line flag names onto settings keys.
var flagKeys = map[string]string{
	"locale":     "locale",
	"currency":   "currency",
	"host":       "server.host",
	"port":       "server.port",
	"log-level":  "log.level",
	"cache-size": "cache.size",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("locale", "pt-BR")
	v.SetDefault("currency", "BRL")
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("cache.size", 128)
}

// LoadSettings resolves settings from, in order of precedence, changed flags,
// NESTEGG_* environment variables, the optional settings file and the defaults.
// An empty path skips the settings file. flags may be nil.
func LoadSettings(path string, flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return &s, nil
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() *Settings {
	s, err := LoadSettings("", nil)
	if err != nil {
		// Defaults are static; failing here means the environment is broken.
		return &Settings{Locale: "pt-BR", Currency: "BRL", Server: ServerSettings{Host: "127.0.0.1", Port: 8080}, Log: LogSettings{Level: "info"}, Cache: CacheSettings{Size: 128}}
	}
	return s
}

// Validate checks ranges and enumerations.
func (s *Settings) Validate() error {
	var errs []error
	if s.Locale == "" {
		errs = append(errs, errors.New("locale is required"))
	}
	if len(s.Currency) != 3 {
		errs = append(errs, fmt.Errorf("currency %q must be a 3-letter ISO 4217 code", s.Currency))
	}
	if s.Server.Port < 0 || s.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server port %d out of range", s.Server.Port))
	}
	if s.Cache.Size < 0 {
		errs = append(errs, fmt.Errorf("cache size %d cannot be negative", s.Cache.Size))
	}
	if _, err := s.LogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// LogLevel parses the configured log level.
func (s *Settings) LogLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(s.Log.Level))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level %q: %w", s.Log.Level, err)
	}
	return level, nil
}

// Addr returns the host:port the HTTP service listens on.
func (s *Settings) Addr() string {
	return net.JoinHostPort(s.Server.Host, strconv.Itoa(s.Server.Port))
}
