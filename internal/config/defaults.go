// Package config provides configuration loading and defaults for termgrid.
package config

// DefaultConfigDir is the default location for termgrid configuration.
const DefaultConfigDir = "~/.config/termgrid"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}

// DefaultTable holds the default table rendering preferences. The color
// fields are hue/saturation/lightness triples; empty leaves that part
// of the table uncolored.
var DefaultTable = Table{
	Padding:     2,
	HeaderColor: []float64{210, 80, 60},
	BorderColor: []float64{0, 0, 40},
}

// DefaultBar holds the default progress bar preferences.
var DefaultBar = Bar{
	Width: 20,
}
