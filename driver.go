package swarm

const (
	// DefaultThreshold is the number of consecutive unchanged steps after
	// which the closest particle is considered stable. It's an empirical
	// cutoff, not a convergence proof: some configurations could still change
	// afterwards.
	DefaultThreshold = 1000000
)

// Change records a step at which the closest particle changed.
type Change struct {
	Step     int64
	Index    int
	Distance uint64
}

// Driver steps a Simulation until the index of its closest particle has been
// unchanged for more than a fixed number of steps.
type Driver struct {
	sim       *Simulation
	threshold int64

	steps, unchanged int64
	closest          int
	particle         Particle

	trace *Trace
}

// NewDriver creates a Driver for sim. The closest particle is computed
// immediately, before any steps are taken.
func NewDriver(sim *Simulation, threshold int64) *Driver {
	d := &Driver{sim: sim, threshold: threshold}
	d.closest, d.particle = sim.Closest()
	return d
}

// SetTrace starts recording samples into tr. The current state is recorded
// immediately.
func (d *Driver) SetTrace(tr *Trace) {
	d.trace = tr
	tr.add(d.steps, d.closest, d.particle.Manhattan(), false)
}

// Closest returns the index and state of the current closest particle.
func (d *Driver) Closest() (int, Particle) { return d.closest, d.particle }

// Steps returns the number of steps taken so far.
func (d *Driver) Steps() int64 { return d.steps }

// Unchanged returns the number of consecutive steps over which the closest
// index hasn't changed.
func (d *Driver) Unchanged() int64 { return d.unchanged }

// Threshold returns the stability threshold.
func (d *Driver) Threshold() int64 { return d.threshold }

// Converged returns true once the closest index has been unchanged for more
// than Threshold() steps.
func (d *Driver) Converged() bool { return d.unchanged > d.threshold }

// Advance steps the simulation once and recomputes the closest particle. If
// its index changed, the change is returned along with true.
func (d *Driver) Advance() (Change, bool) {
	d.sim.Step()
	d.steps++

	i, p := d.sim.Closest()
	if i == d.closest {
		d.unchanged++
		d.particle = p
		if d.trace != nil && d.trace.due(d.steps) {
			d.trace.add(d.steps, i, p.Manhattan(), false)
		}
		return Change{}, false
	}

	d.closest, d.particle = i, p
	d.unchanged = 0

	c := Change{Step: d.steps, Index: i, Distance: p.Manhattan()}
	if d.trace != nil {
		d.trace.add(c.Step, c.Index, c.Distance, true)
	}
	return c, true
}

// Run advances the simulation until it converges and returns the index of
// the closest particle. onChange is called on every change of the closest
// index and may be nil.
func (d *Driver) Run(onChange func(Change)) int {
	for !d.Converged() {
		c, changed := d.Advance()
		if changed && onChange != nil {
			onChange(c)
		}
	}

	if d.trace != nil && d.trace.last() != d.steps {
		d.trace.add(d.steps, d.closest, d.particle.Manhattan(), false)
	}
	return d.closest
}

// Trace samples the distance of the closest particle over the course of a
// run. A sample is taken when tracing starts, at every change, every
// Interval steps, and at the end of Driver.Run. An Interval of zero disables
// periodic samples.
type Trace struct {
	Interval int64

	Steps     []int64
	Indices   []int
	Distances []uint64
	Changed   []bool
}

// NewTrace creates an empty Trace with the given sampling interval.
func NewTrace(interval int64) *Trace {
	return &Trace{Interval: interval}
}

// Len returns the number of samples.
func (tr *Trace) Len() int { return len(tr.Steps) }

func (tr *Trace) due(step int64) bool {
	return tr.Interval > 0 && step%tr.Interval == 0
}

func (tr *Trace) last() int64 {
	if len(tr.Steps) == 0 {
		return -1
	}
	return tr.Steps[len(tr.Steps)-1]
}

func (tr *Trace) add(step int64, idx int, dist uint64, changed bool) {
	tr.Steps = append(tr.Steps, step)
	tr.Indices = append(tr.Indices, idx)
	tr.Distances = append(tr.Distances, dist)
	tr.Changed = append(tr.Changed, changed)
}
