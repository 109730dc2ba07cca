// Package config defines the data structures related to configuration and
// includes functions for loading and defaulting the config.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/agencyforge/roi-proposal/pkg/constants"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Configuration holds all configuration for roi-proposal.
type Configuration struct {
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Server  ServerConfig  `yaml:"server,omitempty"`
	Store   StoreConfig   `yaml:"store,omitempty"`
	Logo    LogoConfig    `yaml:"logo,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// ServerConfig holds the web editor listen parameters
type ServerConfig struct {
	Address string `yaml:"address,omitempty"`
}

// StoreConfig holds durable snapshot storage options
type StoreConfig struct {
	Path string `yaml:"path,omitempty"`
}

// LogoConfig holds the logo lookup service parameters. APIKey may also come
// from the LOGO_API_KEY environment variable.
type LogoConfig struct {
	Host          string `yaml:"host,omitempty"`
	APIKey        string `yaml:"apiKey,omitempty"`
	Size          int    `yaml:"size,omitempty"`
	QuietPeriodMs int    `yaml:"quietPeriodMs,omitempty"`
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // text, summary, script, pdf
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A missing file yields the defaults without error so a
// fresh checkout runs with no setup.
func LoadConfiguration(configPath string) (*Configuration, error) {
	var configuration Configuration

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	v.AutomaticEnv()
	if err := v.BindEnv("logo.apikey", "LOGO_API_KEY"); err != nil {
		return nil, fmt.Errorf("error binding environment, %s", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if !isNotExist(err) {
			return nil, fmt.Errorf("error reading config file, %s", err)
		}
	}

	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	// Unmarshal only sees keys present in the file; an env-only API key has
	// to be read back explicitly.
	if configuration.Logo.APIKey == "" {
		configuration.Logo.APIKey = v.GetString("logo.apikey")
	}

	configuration.applyDefaults()
	return &configuration, nil
}

// YAML serializes the effective configuration, defaults included, for
// writing an editable config file.
func (conf *Configuration) YAML() ([]byte, error) {
	return yaml.Marshal(conf)
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return true
	}
	var pathErr *os.PathError
	return errors.As(err, &pathErr) && errors.Is(err, fs.ErrNotExist)
}

func (conf *Configuration) applyDefaults() {
	if conf.Server.Address == "" {
		conf.Server.Address = constants.DefaultServerAddress
	}
	if conf.Store.Path == "" {
		conf.Store.Path = constants.DefaultStoreFile
	}
	if conf.Logo.Host == "" {
		conf.Logo.Host = constants.DefaultLogoHost
	}
	if conf.Logo.Size <= 0 {
		conf.Logo.Size = constants.DefaultLogoSize
	}
	if conf.Logo.QuietPeriodMs <= 0 {
		conf.Logo.QuietPeriodMs = constants.DefaultQuietPeriodMs
	}
	if conf.Output.Format == "" {
		conf.Output.Format = constants.OutputFormatText
	}
}

// QuietPeriod returns the logo debounce quiet period as a duration.
func (conf *Configuration) QuietPeriod() time.Duration {
	return time.Duration(conf.Logo.QuietPeriodMs) * time.Millisecond
}
