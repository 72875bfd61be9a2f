package io

import (
	"fmt"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/swarm"
	"github.com/phil-mansfield/swarm/catalog"
)

const (
	ExampleSwarmFile = `[Swarm]

#####################################
# Parameters With Default Values    #
#####################################

# The values below are the defaults used when a parameter isn't set (and
# when swarm is run without a config file).

# Catalog containing the initial particle states.
Input = input.txt

# The format of the input catalog. Must be one of [ Text | Table ].
# Text catalogs have one particle per line, written as
#     p=<x,y,z>, v=<x,y,z>, a=<x,y,z>
# Table catalogs have nine whitespace-separated integer columns per row:
#     x y z vx vy vz ax ay az
InputFormat = Text

# The simulation stops once the closest particle has stayed the same for more
# than this many consecutive steps. There's no proof that it won't change
# afterwards, so raise this if you have particles with tiny accelerations.
Threshold = 1000000

#######################
# Optional Parameters #
#######################

# Writes a plot of the closest particle's distance against step count. A
# point is always recorded at every change of the closest particle.
# PlotFile = trace.png

# Additionally record a point every TraceInterval steps. 0 turns this off.
# Requires PlotFile.
# TraceInterval = 1000

# Output files which are useful for profiling and debugging. Generally, there
# isn't a reason to use these unless something goes wrong.
# ProfileFile = prof.out
# LogFile = log.out`
)

type SwarmConfig struct {
	// Defaulted
	Input       string
	InputFormat string
	Threshold   int

	// Optional
	TraceInterval                  int
	PlotFile, LogFile, ProfileFile string
}

type SwarmWrapper struct {
	Swarm SwarmConfig
}

// DefaultSwarmWrapper returns a wrapper around the configuration used when
// no config file is given.
func DefaultSwarmWrapper() *SwarmWrapper {
	con := SwarmConfig{}
	con.Input = "input.txt"
	con.InputFormat = catalog.Text.String()
	con.Threshold = swarm.DefaultThreshold
	return &SwarmWrapper{con}
}

func (con *SwarmConfig) ValidInput() bool {
	return con.Input != ""
}
func (con *SwarmConfig) ValidInputFormat() bool {
	_, ok := catalog.FormatFromString(con.InputFormat)
	return ok
}
func (con *SwarmConfig) ValidThreshold() bool {
	return con.Threshold >= 0
}
func (con *SwarmConfig) ValidTraceInterval() bool {
	return con.TraceInterval >= 0
}
func (con *SwarmConfig) ValidPlotFile() bool {
	return con.PlotFile != ""
}
func (con *SwarmConfig) ValidLogFile() bool {
	return con.LogFile != ""
}
func (con *SwarmConfig) ValidProfileFile() bool {
	return con.ProfileFile != ""
}

// Format returns the catalog format named by InputFormat.
func (con *SwarmConfig) Format() catalog.Format {
	f, ok := catalog.FormatFromString(con.InputFormat)
	if !ok {
		panic(fmt.Sprintf("Unrecognized InputFormat '%s'.", con.InputFormat))
	}
	return f
}

// CheckInit returns a descriptive error for the first invalid field.
func (con *SwarmConfig) CheckInit() error {
	if !con.ValidInput() {
		return fmt.Errorf("Invalid/non-existent 'Input' value.")
	} else if !con.ValidInputFormat() {
		return fmt.Errorf(
			"InputFormat must be one of [Text | Table]. '%s' is not "+
				"recognized.", con.InputFormat,
		)
	} else if !con.ValidThreshold() {
		return fmt.Errorf(
			"Threshold must be non-negative, but is %d.", con.Threshold,
		)
	} else if !con.ValidTraceInterval() {
		return fmt.Errorf(
			"TraceInterval must be non-negative, but is %d.",
			con.TraceInterval,
		)
	} else if con.TraceInterval > 0 && !con.ValidPlotFile() {
		return fmt.Errorf(
			"TraceInterval is set to %d, but there is no PlotFile to "+
				"write the trace to.", con.TraceInterval,
		)
	}
	return nil
}

// ReadSwarmConfig reads and validates the [Swarm] config file fname. Unset
// values take their defaults.
func ReadSwarmConfig(fname string) (*SwarmConfig, error) {
	wrap := DefaultSwarmWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	if err := wrap.Swarm.CheckInit(); err != nil {
		return nil, fmt.Errorf("%s: %s", fname, err.Error())
	}
	return &wrap.Swarm, nil
}

// ParseSwarmConfig is identical to ReadSwarmConfig, except that the config
// is given as a string.
func ParseSwarmConfig(text string) (*SwarmConfig, error) {
	wrap := DefaultSwarmWrapper()
	if err := gcfg.ReadStringInto(wrap, text); err != nil {
		return nil, err
	}
	if err := wrap.Swarm.CheckInit(); err != nil {
		return nil, err
	}
	return &wrap.Swarm, nil
}
