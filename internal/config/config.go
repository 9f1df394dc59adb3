// Package config resolves guestlist settings from a configuration file,
// GUESTLIST_* environment variables and command line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/guestlist/guest"
)

const (
	// ConfigFileName is looked up in the working directory when no explicit
	// configuration path is given.
	ConfigFileName = "guestlist.yaml"
	// EnvPrefix prefixes environment overrides, e.g. GUESTLIST_MAX_LEVEL.
	EnvPrefix = "GUESTLIST"

	KeyGraph    = "graph"
	KeyFilter   = "filter"
	KeyMaxLevel = "max_level"
	KeyLimit    = "limit"
	KeyFormat   = "format"
	KeyVerbose  = "verbose"

	OutputText = "text"
	OutputJSON = "json"
)

// ErrInvalidConfiguration reports a setting with an unusable value.
var ErrInvalidConfiguration = errors.New("config: invalid configuration")

// LoadOptions controls how the configuration file is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
}

// Configuration holds the resolved settings of one command invocation.
type Configuration struct {
	Graph   string `mapstructure:"graph"`
	Filter  string `mapstructure:"filter"`
	Limit   int    `mapstructure:"limit"`
	Format  string `mapstructure:"format"`
	Verbose bool   `mapstructure:"verbose"`

	// MaxLevel is nil when no bound was configured anywhere.
	MaxLevel *int `mapstructure:"-"`
}

// New prepares a viper instance with defaults, environment binding and, when
// present, the configuration file. An explicit path that does not exist is an
// error; a missing default file is not.
func New(options LoadOptions) (*viper.Viper, error) {
	reader := viper.New()
	reader.SetDefault(KeyFilter, guest.FilterAll)
	reader.SetDefault(KeyFormat, OutputText)
	reader.SetDefault(KeyLimit, 0)
	reader.SetDefault(KeyVerbose, false)
	reader.SetEnvPrefix(EnvPrefix)
	reader.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	reader.AutomaticEnv()
	// AutomaticEnv only sees keys viper already knows about
	for _, key := range []string{KeyGraph, KeyMaxLevel} {
		if err := reader.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind environment for %s: %w", key, err)
		}
	}

	path, explicit, err := resolveConfigPath(options)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return reader, nil
	}
	info, statErr := os.Stat(path)
	switch {
	case statErr != nil && os.IsNotExist(statErr) && !explicit:
		return reader, nil
	case statErr != nil:
		return nil, fmt.Errorf("stat configuration %s: %w", path, statErr)
	case info.IsDir():
		return nil, fmt.Errorf("configuration path %s is a directory", path)
	}
	reader.SetConfigFile(path)
	if readErr := reader.ReadInConfig(); readErr != nil {
		return nil, fmt.Errorf("read configuration from %s: %w", path, readErr)
	}
	return reader, nil
}

func resolveConfigPath(options LoadOptions) (string, bool, error) {
	if options.ExplicitFilePath != "" {
		if filepath.IsAbs(options.ExplicitFilePath) || options.WorkingDirectory == "" {
			return options.ExplicitFilePath, true, nil
		}
		return filepath.Join(options.WorkingDirectory, options.ExplicitFilePath), true, nil
	}
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		current, err := os.Getwd()
		if err != nil {
			return "", false, fmt.Errorf("determine working directory: %w", err)
		}
		workingDirectory = current
	}
	return filepath.Join(workingDirectory, ConfigFileName), false, nil
}

// BindFlags lets command line flags override file and environment values.
// Flags are matched by name with dashes standing for underscores.
func BindFlags(reader *viper.Viper, flags *pflag.FlagSet) error {
	var bindErr error
	flags.VisitAll(func(flag *pflag.Flag) {
		key := strings.ReplaceAll(flag.Name, "-", "_")
		switch key {
		case KeyGraph, KeyFilter, KeyMaxLevel, KeyLimit, KeyFormat, KeyVerbose:
		default:
			return
		}
		if err := reader.BindPFlag(key, flag); err != nil && bindErr == nil {
			bindErr = fmt.Errorf("bind flag %s: %w", flag.Name, err)
		}
	})
	return bindErr
}

// Decode resolves reader into a validated Configuration.
func Decode(reader *viper.Viper) (Configuration, error) {
	var config Configuration
	if err := reader.Unmarshal(&config); err != nil {
		return Configuration{}, fmt.Errorf("decode configuration: %w", err)
	}
	if reader.IsSet(KeyMaxLevel) {
		maxLevel := reader.GetInt(KeyMaxLevel)
		config.MaxLevel = &maxLevel
	}

	config.Format = strings.ToLower(config.Format)
	if config.Format != OutputText && config.Format != OutputJSON {
		return Configuration{}, fmt.Errorf("%w: format %q (want %s or %s)", ErrInvalidConfiguration, config.Format, OutputText, OutputJSON)
	}
	if config.Limit < 0 {
		return Configuration{}, fmt.Errorf("%w: limit %d is negative", ErrInvalidConfiguration, config.Limit)
	}
	if _, err := guest.ParseFilter(config.Filter); err != nil {
		return Configuration{}, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	return config, nil
}
