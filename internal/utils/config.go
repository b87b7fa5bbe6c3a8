package utils

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultMinLength = 8
	DefaultMaxLength = 20
	DefaultLogLevel  = "info"
)

var ErrInvalidConfigValue = errors.New("invalid configuration value")

type PolicyConfig struct {
	MinLength       int
	MaxLength       int
	RequireDigits   bool
	RequireCapitals bool
}

type LogConfig struct {
	Level string
}

type Config struct {
	Policy *PolicyConfig
	Log    *LogConfig
}

// LoadConfig reads the password policy from a dotenv file. Keys missing from the file
// fall back to the process environment, then to the defaults. Bounds are not checked here.
func LoadConfig(dotenvPath string) (*Config, error) {
	values, err := godotenv.Read(dotenvPath)
	if err != nil {
		return nil, err
	}
	lookup := func(key string) (string, bool) {
		if v, ok := values[key]; ok {
			return v, true
		}
		return os.LookupEnv(key)
	}

	minLength, err := intValue(lookup, "PASSWORD_MIN_LENGTH", DefaultMinLength)
	if err != nil {
		return nil, err
	}
	maxLength, err := intValue(lookup, "PASSWORD_MAX_LENGTH", DefaultMaxLength)
	if err != nil {
		return nil, err
	}
	requireDigits, err := boolValue(lookup, "PASSWORD_REQUIRE_DIGITS", true)
	if err != nil {
		return nil, err
	}
	requireCapitals, err := boolValue(lookup, "PASSWORD_REQUIRE_CAPITALS", true)
	if err != nil {
		return nil, err
	}

	policyCfg := &PolicyConfig{
		MinLength:       minLength,
		MaxLength:       maxLength,
		RequireDigits:   requireDigits,
		RequireCapitals: requireCapitals,
	}
	logCfg := &LogConfig{
		Level: DefaultLogLevel,
	}
	if level, ok := lookup("LOG_LEVEL"); ok && level != "" {
		logCfg.Level = level
	}

	cfg := &Config{policyCfg, logCfg}
	return cfg, nil
}

func intValue(lookup func(string) (string, bool), key string, fallback int) (int, error) {
	raw, ok := lookup(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfigValue, key, raw)
	}
	return n, nil
}

func boolValue(lookup func(string) (string, bool), key string, fallback bool) (bool, error) {
	raw, ok := lookup(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidConfigValue, key, raw)
	}
	return b, nil
}
