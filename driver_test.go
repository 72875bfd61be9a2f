package swarm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/swarm/geom"
)

// twoParticles is the canonical example: particle 0 ends up closest.
func twoParticles() []Particle {
	return []Particle{
		{X: geom.Vec{3, 0, 0}, V: geom.Vec{2, 0, 0}, A: geom.Vec{-1, 0, 0}},
		{X: geom.Vec{4, 0, 0}, V: geom.Vec{0, 0, 0}, A: geom.Vec{-2, 0, 0}},
	}
}

// threeParticles adds a stationary particle at distance 8, which both of the
// accelerating particles eventually pass.
func threeParticles() []Particle {
	return append(twoParticles(), Particle{X: geom.Vec{-8, 0, 0}})
}

func collect(d *Driver) (int, []Change) {
	changes := []Change{}
	idx := d.Run(func(c Change) { changes = append(changes, c) })
	return idx, changes
}

func TestDriverTwoParticles(t *testing.T) {
	d := NewDriver(NewSimulation(twoParticles()), 10)
	idx, p := d.Closest()
	require.Equal(t, 0, idx)
	require.Equal(t, uint64(3), p.Manhattan())

	idx, changes := collect(d)
	assert.Equal(t, 0, idx)
	assert.Equal(t, []Change{
		{Step: 1, Index: 1, Distance: 2},
		{Step: 3, Index: 0, Distance: 3},
	}, changes)
	assert.Equal(t, int64(3+10+1), d.Steps())
	assert.True(t, d.Converged())
}

func TestDriverThreeParticles(t *testing.T) {
	d := NewDriver(NewSimulation(threeParticles()), 100)

	idx, changes := collect(d)
	assert.Equal(t, 2, idx)
	assert.Equal(t, []Change{
		{Step: 1, Index: 1, Distance: 2},
		{Step: 3, Index: 0, Distance: 3},
		{Step: 7, Index: 2, Distance: 8},
	}, changes)
	assert.Equal(t, int64(7+100+1), d.Steps())
	assert.Equal(t, int64(101), d.Unchanged())
}

func TestDriverSingleParticle(t *testing.T) {
	sim := NewSimulation([]Particle{
		{X: geom.Vec{5, -3, 1}, V: geom.Vec{1, 1, 1}, A: geom.Vec{0, 0, -1}},
	})
	d := NewDriver(sim, DefaultThreshold)
	idx, _ := d.Closest()
	require.Equal(t, 0, idx)

	idx, changes := collect(d)
	assert.Equal(t, 0, idx)
	assert.Empty(t, changes)
	assert.Equal(t, int64(DefaultThreshold+1), d.Steps())
}

func TestDriverAdvance(t *testing.T) {
	d := NewDriver(NewSimulation(twoParticles()), 0)
	assert.False(t, d.Converged())

	c, changed := d.Advance()
	assert.True(t, changed)
	assert.Equal(t, Change{Step: 1, Index: 1, Distance: 2}, c)
	assert.Equal(t, int64(0), d.Unchanged())
	assert.False(t, d.Converged())

	_, changed = d.Advance()
	assert.False(t, changed)
	assert.Equal(t, int64(1), d.Unchanged())
	assert.True(t, d.Converged(), "a threshold of 0 is passed after one step")

	idx, p := d.Closest()
	assert.Equal(t, 1, idx)
	assert.Equal(t, geom.Vec{-2, 0, 0}, p.X, "closest state follows the simulation")
}

func TestDriverNilCallback(t *testing.T) {
	d := NewDriver(NewSimulation(threeParticles()), 5)
	assert.Equal(t, 2, d.Run(nil))
}

func TestTrace(t *testing.T) {
	d := NewDriver(NewSimulation(threeParticles()), 10)
	tr := NewTrace(5)
	d.SetTrace(tr)
	assert.Equal(t, 2, d.Run(nil))

	assert.Equal(t, []int64{0, 1, 3, 5, 7, 10, 15, 18}, tr.Steps)
	assert.Equal(t, []int{0, 1, 0, 0, 2, 2, 2, 2}, tr.Indices)
	assert.Equal(t, []uint64{3, 2, 3, 2, 8, 8, 8, 8}, tr.Distances)
	assert.Equal(t,
		[]bool{false, true, true, false, true, false, false, false},
		tr.Changed,
	)
	assert.Equal(t, 8, tr.Len())
}

func TestTraceNoInterval(t *testing.T) {
	d := NewDriver(NewSimulation(twoParticles()), 3)
	tr := NewTrace(0)
	d.SetTrace(tr)
	d.Run(nil)

	assert.Equal(t, []int64{0, 1, 3, 7}, tr.Steps)
	assert.Equal(t, []int{0, 1, 0, 0}, tr.Indices)
}
