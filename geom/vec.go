/*package geom contains the integer vector type used for particle positions,
velocities, and accelerations.
*/
package geom

import (
	"fmt"
)

// Vec is a three dimensional vector with integer components.
type Vec [3]int64

// Add returns the sum of v and u.
func (v Vec) Add(u Vec) Vec {
	return Vec{v[0] + u[0], v[1] + u[1], v[2] + u[2]}
}

// AddSelf adds u to v in place.
func (v *Vec) AddSelf(u *Vec) {
	v[0] += u[0]
	v[1] += u[1]
	v[2] += u[2]
}

// Manhattan returns the Manhattan distance from v to the origin,
// |x| + |y| + |z|.
func (v Vec) Manhattan() uint64 {
	return abs(v[0]) + abs(v[1]) + abs(v[2])
}

// abs is exact for every int64, including math.MinInt64.
func abs(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}

// String returns v in the <x,y,z> form used by text catalogs.
func (v Vec) String() string {
	return fmt.Sprintf("<%d,%d,%d>", v[0], v[1], v[2])
}
