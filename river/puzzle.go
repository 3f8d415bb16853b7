package river

// Puzzle holds the rules of one instance. It is immutable after New and
// safe for concurrent use.
type Puzzle struct {
	cfg   Config
	loads []Load
}

// New validates cfg and returns its puzzle.
func New(cfg Config) (*Puzzle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	// seats beyond the total head count never change a crossing
	seats := min(cfg.BoatCapacity, cfg.Missionaries+cfg.Cannibals)
	return &Puzzle{cfg: cfg, loads: Loads(seats)}, nil
}

// Classic returns the 3 missionaries / 3 cannibals / 2-seat boat instance.
func Classic() *Puzzle {
	p, _ := New(DefaultConfig()) // defaults always validate
	return p
}

// Config returns the parameters p was built from.
func (p *Puzzle) Config() Config { return p.cfg }

// Loads returns a copy of the boat loads in expansion order. Loads larger
// than the whole party are left out.
func (p *Puzzle) Loads() []Load { return append([]Load(nil), p.loads...) }

// Start is everybody on the start bank with the boat.
func (p *Puzzle) Start() State {
	return State{Missionaries: p.cfg.Missionaries, Cannibals: p.cfg.Cannibals, Boat: Start}
}

// Goal is everybody on the far bank with the boat.
func (p *Puzzle) Goal() State {
	return State{Boat: Far}
}

// Legal reports whether s has in-range counts and nobody is eaten on either
// bank. A bank without missionaries is always safe.
func (p *Puzzle) Legal(s State) bool {
	m, c := s.Missionaries, s.Cannibals
	if m < 0 || m > p.cfg.Missionaries || c < 0 || c > p.cfg.Cannibals {
		return false
	}
	if s.Boat != Start && s.Boat != Far {
		return false
	}
	// start bank
	if m > 0 && m < c {
		return false
	}
	// far bank
	farM, farC := p.cfg.Missionaries-m, p.cfg.Cannibals-c
	if farM > 0 && farM < farC {
		return false
	}
	return true
}

// cross applies l to s: the load leaves the bank holding the boat.
func cross(s State, l Load) State {
	if s.Boat == Start {
		return State{Missionaries: s.Missionaries - l.Missionaries, Cannibals: s.Cannibals - l.Cannibals, Boat: Far}
	}
	return State{Missionaries: s.Missionaries + l.Missionaries, Cannibals: s.Cannibals + l.Cannibals, Boat: Start}
}

// Expand returns the legal states one crossing away from s, in load order.
// s itself is not validated.
func (p *Puzzle) Expand(s State) []State {
	next := make([]State, 0, len(p.loads))
	for _, l := range p.loads {
		if n := cross(s, l); p.Legal(n) {
			next = append(next, n)
		}
	}
	return next
}

// MoveBetween reports the load that takes from to to in one legal crossing.
func (p *Puzzle) MoveBetween(from, to State) (Load, bool) {
	for _, l := range p.loads {
		if cross(from, l) == to && p.Legal(to) {
			return l, true
		}
	}
	return Load{}, false
}
