package swarm

import (
	"fmt"

	"github.com/phil-mansfield/swarm/geom"
)

// Particle is a point particle under constant acceleration. X, V, and A are
// its position, velocity, and acceleration.
type Particle struct {
	X, V, A geom.Vec
}

// Step advances the particle by a single tick. The velocity is updated first
// and the updated velocity is then added to the position.
func (p *Particle) Step() {
	p.V.AddSelf(&p.A)
	p.X.AddSelf(&p.V)
}

// Manhattan returns the Manhattan distance between the particle's current
// position and the origin.
func (p Particle) Manhattan() uint64 { return p.X.Manhattan() }

func (p Particle) String() string {
	return fmt.Sprintf("p=%s, v=%s, a=%s", p.X, p.V, p.A)
}
