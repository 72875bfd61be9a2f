package main

import (
	"flag"
	"fmt"
	stdio "io"
	"log"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/phil-mansfield/swarm"
	"github.com/phil-mansfield/swarm/catalog"
	"github.com/phil-mansfield/swarm/io"
	"github.com/phil-mansfield/swarm/render"
)

// FileGroup contains utility files for logging and writing profiles to.
type FileGroup struct {
	log, prof *os.File
}

// Close closes the files inside FileGroup.
func (fg *FileGroup) Close() {
	if fg.log != nil {
		log.SetOutput(os.Stderr)
		err := fg.log.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}
}

func main() {
	var config, exampleConfig string
	vars := map[string]*string{
		"Config":        &config,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&config, "Config", "",
		"Configuration file for [Swarm] mode. If no flags are given, "+
			"input.txt is read with the default configuration.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. The only accepted argument is 'Swarm'.",
	)
	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "":
		run(&io.DefaultSwarmWrapper().Swarm)
	case "Config":
		con, err := io.ReadSwarmConfig(config)
		if err != nil {
			log.Fatal(err.Error())
		}
		run(con)
	case "ExampleConfig":
		switch exampleConfig {
		case "Swarm":
			fmt.Println(io.ExampleSwarmFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. The only " +
					"recognized argument is 'Swarm'.",
			)
		}
	default:
		panic("Impossible")
	}
}

// run is the entry point for [Swarm] mode. By the time swarmMain returns,
// log output is back on stderr, so fatal errors always reach the console.
func run(con *io.SwarmConfig) {
	if _, err := swarmMain(con, os.Stdout); err != nil {
		log.Fatal(err.Error())
	}
}

// getModeName returns the name of the mode flag which was set, or "" if none
// were. It fails with a descriptive error if more than one was set.
func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", nil
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but swarm only accepts "+
				"one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

// setupFiles opens the log and profile files requested by con.
func setupFiles(con *io.SwarmConfig) (*FileGroup, error) {
	fg := &FileGroup{}

	if con.ValidLogFile() {
		var err error
		fg.log, err = os.Create(con.LogFile)
		if err != nil {
			return nil, err
		}
		log.SetOutput(fg.log)
	}

	if con.ValidProfileFile() {
		var err error
		fg.prof, err = os.Create(con.ProfileFile)
		if err != nil {
			fg.Close()
			return nil, err
		}
		if err = pprof.StartCPUProfile(fg.prof); err != nil {
			fg.prof.Close()
			fg.prof = nil
			fg.Close()
			return nil, err
		}
	}

	return fg, nil
}

// swarmMain loads the input catalog and steps it until the closest particle
// stabilizes. Narration is written to w. The log and profile files are
// closed before swarmMain returns, and errors are also written to the log
// file if there is one.
func swarmMain(con *io.SwarmConfig, w stdio.Writer) (solution int, err error) {
	fg, err := setupFiles(con)
	if err != nil {
		return -1, err
	}
	defer func() {
		if err != nil && fg.log != nil {
			log.Println(err.Error())
		}
		fg.Close()
	}()

	log.Printf("Reading %s catalog %s", con.Format(), con.Input)
	ps, err := catalog.Read(con.Input, con.Format())
	if err != nil {
		return -1, err
	} else if len(ps) == 0 {
		return -1, fmt.Errorf("No particles in %s.", con.Input)
	}

	sim := swarm.NewSimulation(ps)
	fmt.Fprintf(w, "Loaded %d particles.\n\n", sim.Len())

	d := swarm.NewDriver(sim, int64(con.Threshold))
	var tr *swarm.Trace
	if con.ValidPlotFile() {
		tr = swarm.NewTrace(int64(con.TraceInterval))
		d.SetTrace(tr)
	}

	idx, p := d.Closest()
	fmt.Fprintf(w, "Closest particle: %d (distance %d)\n", idx, p.Manhattan())

	solution = d.Run(func(c swarm.Change) {
		fmt.Fprintf(w,
			"Closest particle changed after %d steps: %d (distance %d)\n",
			c.Step, c.Index, c.Distance,
		)
	})
	log.Printf("Converged after %d steps.", d.Steps())

	fmt.Fprintf(w,
		"Closest particle hasn't changed since %d simulation steps!\n",
		con.Threshold,
	)
	fmt.Fprintf(w, "Solution: Particle %d\n", solution)

	if tr != nil {
		log.Printf("Plotting %d trace samples to %s", tr.Len(), con.PlotFile)
		render.PlotTrace(con.PlotFile, tr)
	}

	return solution, nil
}
