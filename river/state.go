package river

import "fmt"

// Bank identifies a river bank. The numeric values match the boat bit of
// the (m, c, b) triple.
type Bank uint8

const (
	// Far is the destination bank.
	Far Bank = 0
	// Start is the bank everybody begins on.
	Start Bank = 1
)

// Other returns the opposite bank.
func (b Bank) Other() Bank {
	if b == Start {
		return Far
	}
	return Start
}

func (b Bank) String() string {
	if b == Start {
		return "start"
	}
	return "far"
}

// State is one puzzle configuration. Counts are people on the start bank.
// State is a comparable value and is used directly as a map key.
type State struct {
	Missionaries int
	Cannibals    int
	Boat         Bank
}

// String renders the state as the triple (m,c,b).
func (s State) String() string {
	return fmt.Sprintf("(%d,%d,%d)", s.Missionaries, s.Cannibals, s.Boat)
}
