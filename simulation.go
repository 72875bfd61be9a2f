/*package swarm simulates a fixed set of point particles under constant
acceleration and tracks which of them is closest to the origin.
*/
package swarm

// Simulation is an ordered set of particles which are advanced in lock-step.
// A particle's index is its identity and never changes.
type Simulation struct {
	ps []Particle
}

// NewSimulation creates a Simulation from a copy of ps.
func NewSimulation(ps []Particle) *Simulation {
	sim := &Simulation{make([]Particle, len(ps))}
	copy(sim.ps, ps)
	return sim
}

// Len returns the number of particles in the simulation.
func (sim *Simulation) Len() int { return len(sim.ps) }

// Particle returns the current state of the i-th particle.
func (sim *Simulation) Particle(i int) Particle { return sim.ps[i] }

// Particles returns a copy of the current state of every particle.
func (sim *Simulation) Particles() []Particle {
	ps := make([]Particle, len(sim.ps))
	copy(ps, sim.ps)
	return ps
}

// Step advances every particle by one tick. Particles don't interact, so
// the order they're updated in doesn't matter.
func (sim *Simulation) Step() {
	for i := range sim.ps {
		sim.ps[i].Step()
	}
}

// Closest returns the index and state of the particle with the smallest
// Manhattan distance to the origin. Ties go to the lowest index. Closest
// panics if the simulation is empty.
func (sim *Simulation) Closest() (int, Particle) {
	i := ArgMin(len(sim.ps), func(i int) uint64 {
		return sim.ps[i].Manhattan()
	})
	return i, sim.ps[i]
}

// ArgMin returns the index in [0, n) which minimizes key. The best candidate
// is only replaced on a strict improvement, so the first of several equal
// minima is returned.
func ArgMin(n int, key func(i int) uint64) int {
	if n < 1 {
		panic("ArgMin called on an empty sequence.")
	}

	best, bestKey := 0, key(0)
	for i := 1; i < n; i++ {
		if k := key(i); k < bestKey {
			best, bestKey = i, k
		}
	}
	return best
}
