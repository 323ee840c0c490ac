// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config file.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/shaunpsauer/Actuals/pkg/constants"
)

// Configuration holds all configuration for the actuals converter.
type Configuration struct {
	Logging   LoggingConfig   `yaml:"logging,omitempty"`
	Output    OutputConfig    `yaml:"output,omitempty"`
	Reference ReferenceConfig `yaml:"reference,omitempty"`
}

// LoggingConfig holds logging configuration options.
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output location options.
type OutputConfig struct {
	Directory string `yaml:"directory,omitempty"`
}

// ReferenceConfig points at optional YAML overrides for the built-in
// reference tables.
type ReferenceConfig struct {
	OperationsFile   string `yaml:"operationsFile,omitempty"`
	CostElementsFile string `yaml:"costElementsFile,omitempty"`
}

// LoadConfiguration loads the YAML-formatted configuration at configPath.
// A missing config file is not an error; the defaults apply.
func LoadConfiguration(configPath string) (*Configuration, error) {
	var configuration Configuration

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configuration.applyDefaults()
		return &configuration, nil
	}

	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()
	return &configuration, nil
}

func (conf *Configuration) applyDefaults() {
	if conf.Output.Directory == "" {
		conf.Output.Directory = constants.DefaultOutputDirectory
	}
}
