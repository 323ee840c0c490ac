// Package constants provides shared constants for the actuals transformation.
package constants

// Epsilon is the tolerance below which a summed monetary total is treated as
// zero when deciding whether to synthesize derived rows.
const Epsilon = 1e-10

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name.
	DefaultConfigFile = "config.yaml"

	// DefaultOutputDirectory is where the transformed workbook is written
	// when neither the config file nor the CLI specify a directory.
	DefaultOutputDirectory = "."
)
