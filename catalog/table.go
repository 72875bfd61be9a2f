package catalog

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/swarm"
	"github.com/phil-mansfield/swarm/geom"
)

const (
	tableColumns = 9
	// Largest magnitude at which every integer is exactly representable as a
	// float64.
	maxExactInt = 1 << 53
)

// ReadTableFile reads a table catalog. Every value must be an integer.
func ReadTableFile(fname string) ([]swarm.Particle, error) {
	colIdxs := make([]int, tableColumns)
	for i := range colIdxs {
		colIdxs[i] = i
	}

	cols, err := table.ReadTable(fname, colIdxs, nil)
	if err != nil {
		return nil, err
	} else if len(cols) != tableColumns {
		return nil, fmt.Errorf(
			"%s: expected %d columns, but read %d.",
			fname, tableColumns, len(cols),
		)
	}

	ps := make([]swarm.Particle, len(cols[0]))
	for j, col := range cols {
		for i, x := range col {
			if x != math.Trunc(x) || math.Abs(x) > maxExactInt {
				return nil, fmt.Errorf(
					"%s, row %d, column %d: %g is not an integer.",
					fname, i+1, j+1, x,
				)
			}
			vecs := [3]*geom.Vec{&ps[i].X, &ps[i].V, &ps[i].A}
			vecs[j/3][j%3] = int64(x)
		}
	}

	return ps, nil
}
