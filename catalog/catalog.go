/*package catalog reads initial particle states from catalog files.

Two formats are supported. Text catalogs contain one particle per line:

    p=<x,y,z>, v=<x,y,z>, a=<x,y,z>

Table catalogs are whitespace-separated columns of numbers, one particle per
row, with columns ordered as x, y, z, vx, vy, vz, ax, ay, az.
*/
package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/phil-mansfield/swarm"
	"github.com/phil-mansfield/swarm/geom"
)

// Format identifies the layout of a catalog file.
type Format int

const (
	// Text catalogs have one p=<x,y,z>, v=<x,y,z>, a=<x,y,z> line per
	// particle.
	Text Format = iota
	// Table catalogs have nine integer columns per particle.
	Table
	// EndFormat is one past the last valid Format and can be used to loop
	// over all of them.
	EndFormat
)

// FormatFromString returns the Format with the given name. Names are case
// insensitive.
func FormatFromString(s string) (f Format, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text":
		return Text, true
	case "table":
		return Table, true
	}
	return Text, false
}

func (f Format) String() string {
	switch f {
	case Text:
		return "Text"
	case Table:
		return "Table"
	}
	panic(fmt.Sprintf("Unrecognized catalog format %d.", int(f)))
}

var lineRe = regexp.MustCompile(
	`^p=<(-?\d+),(-?\d+),(-?\d+)>, ` +
		`v=<(-?\d+),(-?\d+),(-?\d+)>, ` +
		`a=<(-?\d+),(-?\d+),(-?\d+)>$`,
)

// ParseLine parses a single text catalog line.
func ParseLine(line string) (swarm.Particle, error) {
	p := swarm.Particle{}
	m := lineRe.FindStringSubmatch(line)
	if m == nil {
		return p, fmt.Errorf(
			"'%s' is not of the form p=<x,y,z>, v=<x,y,z>, a=<x,y,z>.", line,
		)
	}

	vecs := [3]*geom.Vec{&p.X, &p.V, &p.A}
	for i, tok := range m[1:] {
		x, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return swarm.Particle{}, fmt.Errorf(
				"%s does not parse as a 64-bit int.", tok,
			)
		}
		vecs[i/3][i%3] = x
	}

	return p, nil
}

// ReadText parses a text catalog. Particles are returned in the order they
// appear. The first bad line aborts the read and no particles are returned.
func ReadText(r io.Reader) ([]swarm.Particle, error) {
	ps := []swarm.Particle{}
	scanner := bufio.NewScanner(r)
	for i := 1; scanner.Scan(); i++ {
		p, err := ParseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("Line %d: %s", i, err.Error())
		}
		ps = append(ps, p)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ps, nil
}

// ReadTextFile parses the text catalog at fname.
func ReadTextFile(fname string) ([]swarm.Particle, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ps, err := ReadText(f)
	if err != nil {
		return nil, fmt.Errorf("%s, %s", fname, err.Error())
	}
	return ps, nil
}

// Read reads the catalog at fname with the given format.
func Read(fname string, f Format) ([]swarm.Particle, error) {
	switch f {
	case Text:
		return ReadTextFile(fname)
	case Table:
		return ReadTableFile(fname)
	}
	return nil, fmt.Errorf("Unrecognized catalog format %d.", int(f))
}
