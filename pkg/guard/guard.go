// Package guard breaks feedback loops between a form and its fields: writing
// a computed output into a field fires that field's change event, which must
// not start another computation.
package guard

type State int

const (
	Idle State = iota
	Computing
)

func (s State) String() string {
	if s == Computing {
		return "Computing"
	}
	return "Idle"
}

// Guard is a two-state flag owned by one form. It is not safe for concurrent
// use; the forms run on a single event thread.
type Guard struct {
	state State
}

// Run executes fn unless a computation is already in progress, and reports
// whether fn ran. The guard returns to Idle even if fn panics.
func (g *Guard) Run(fn func()) bool {
	if g.state == Computing {
		return false
	}
	g.state = Computing
	defer func() { g.state = Idle }()
	fn()
	return true
}

func (g *Guard) Busy() bool {
	return g.state == Computing
}

func (g *Guard) State() State {
	return g.state
}
