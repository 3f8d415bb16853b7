package river

import "fmt"

// Load is the group riding the boat on one crossing.
type Load struct {
	Missionaries int
	Cannibals    int
}

// Size is the number of people in the boat.
func (l Load) Size() int { return l.Missionaries + l.Cannibals }

func (l Load) String() string {
	switch {
	case l.Cannibals == 0:
		return fmt.Sprintf("%dM", l.Missionaries)
	case l.Missionaries == 0:
		return fmt.Sprintf("%dC", l.Cannibals)
	default:
		return fmt.Sprintf("%dM+%dC", l.Missionaries, l.Cannibals)
	}
}

// Loads lists every non-empty boat load for a boat seating capacity people,
// in expansion order: missionaries alone (1..capacity), cannibals alone
// (1..capacity), then mixed loads by ascending size with more missionaries
// first. For capacity 2 this is 1M, 2M, 1C, 2C, 1M+1C.
// A capacity below 1 yields no loads.
func Loads(capacity int) []Load {
	if capacity < 1 {
		return nil
	}
	loads := make([]Load, 0, capacity*(capacity+3)/2)
	for m := 1; m <= capacity; m++ {
		loads = append(loads, Load{Missionaries: m})
	}
	for c := 1; c <= capacity; c++ {
		loads = append(loads, Load{Cannibals: c})
	}
	for size := 2; size <= capacity; size++ {
		for m := size - 1; m >= 1; m-- {
			loads = append(loads, Load{Missionaries: m, Cannibals: size - m})
		}
	}
	return loads
}
