package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"sort_attack_list/internal/config"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Home             Position
	FilterByPosition bool
	Mode             string

	ConfigPath string
	InputPath  string
	OutputPath string
}

// SetupEnvironment loads .env file and configures zerolog output and log level.
func SetupEnvironment() {
	err := godotenv.Load()

	production := os.Getenv("ENV") == "production"
	if production {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(os.Stderr)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	levelStr := strings.ToLower(os.Getenv("LOGLEVEL"))
	level, known := parseLogLevel(levelStr, production)
	zerolog.SetGlobalLevel(level)
	if !known {
		log.Warn().Msgf("Unknown LOGLEVEL '%s', defaulting to info.", levelStr)
	}

	// wait until now to report on the .env file so we have the chance to set up logging first
	if err == nil {
		log.Debug().Msg("Loaded environment variables from .env file.")
	} else {
		log.Debug().Msg("No .env file found or error loading .env file; proceeding with existing environment variables.")
	}
}

// parseLogLevel maps a LOGLEVEL value to a zerolog level. An empty value
// picks warn in production and info elsewhere.
func parseLogLevel(levelStr string, production bool) (zerolog.Level, bool) {
	switch levelStr {
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "fatal":
		return zerolog.FatalLevel, true
	case "panic":
		return zerolog.PanicLevel, true
	case "disabled":
		return zerolog.Disabled, true
	case "":
		if production {
			return zerolog.WarnLevel, true
		}
		return zerolog.InfoLevel, true
	default:
		return zerolog.InfoLevel, false
	}
}

// LoadConfig reads the INI configuration at path into a Config.
//
// Values can be overridden with SORT_ATTACK_LIST_<SECTION>_<KEY> environment
// variables. A missing file is not an error by itself; the required keys then
// have to come from the environment or a MissingConfigError is returned.
func LoadConfig(v *viper.Viper, path string) (*Config, error) {
	v.SetConfigFile(path)
	v.SetConfigType("ini")
	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault(config.KeyPipelineMode, config.DefaultMode)

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
		log.Debug().Str("path", path).Msg("Config file not found; relying on environment")
	}

	for _, key := range config.RequiredKeys {
		if !v.IsSet(key) {
			return nil, &MissingConfigError{Key: key}
		}
	}

	x, err := parseConfigInt(v, config.KeyPositionX)
	if err != nil {
		return nil, err
	}
	y, err := parseConfigInt(v, config.KeyPositionY)
	if err != nil {
		return nil, err
	}

	filterValue := v.GetString(config.KeyFilterByPosition)
	filterByPosition, recognised := ParseFlag(filterValue)
	if !recognised {
		log.Warn().
			Str("key", config.KeyFilterByPosition).
			Str("value", filterValue).
			Msg("Unrecognised boolean value; treating non-empty text as enabled")
	}

	mode := strings.ToLower(strings.TrimSpace(v.GetString(config.KeyPipelineMode)))
	if !config.IsValidMode(mode) {
		return nil, fmt.Errorf("invalid %s %q: expected %q or %q",
			config.KeyPipelineMode, mode, config.ModeLegacy, config.ModeSorted)
	}

	return &Config{
		Home:             Position{X: x, Y: y},
		FilterByPosition: filterByPosition,
		Mode:             mode,
		ConfigPath:       path,
	}, nil
}

func parseConfigInt(v *viper.Viper, key string) (int, error) {
	raw := strings.TrimSpace(v.GetString(key))
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return n, nil
}

// ParseFlag interprets a boolean-ish configuration value.
//
// true/false, 1/0, t/f, yes/no and on/off (any case) parse as expected and an
// empty value is false. Any other non-empty text counts as true, and
// recognised is false so the caller can warn about it.
func ParseFlag(value string) (enabled bool, recognised bool) {
	s := strings.ToLower(strings.TrimSpace(value))
	if s == "" {
		return false, true
	}
	if b, err := cast.ToBoolE(s); err == nil {
		return b, true
	}
	switch s {
	case "yes", "on":
		return true, true
	case "no", "off":
		return false, true
	}
	return true, false
}
