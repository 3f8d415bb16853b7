package bfs

// queueItem pairs a state with its BFS depth.
type queueItem[S comparable] struct {
	state S
	depth int
}

// frontier is a FIFO queue backed by a membership set, so "is this state
// waiting?" is O(1) while expansion order stays insertion order.
type frontier[S comparable] struct {
	items   []queueItem[S]
	members map[S]struct{}
}

func newFrontier[S comparable](capHint int) *frontier[S] {
	return &frontier[S]{
		items:   make([]queueItem[S], 0, capHint),
		members: make(map[S]struct{}, capHint),
	}
}

// push appends s at the tail.
func (f *frontier[S]) push(s S, depth int) {
	f.items = append(f.items, queueItem[S]{state: s, depth: depth})
	f.members[s] = struct{}{}
}

// pop removes and returns the head. The caller checks empty first.
func (f *frontier[S]) pop() queueItem[S] {
	item := f.items[0]
	var zero queueItem[S]
	f.items[0] = zero
	f.items = f.items[1:]
	delete(f.members, item.state)
	return item
}

func (f *frontier[S]) contains(s S) bool {
	_, ok := f.members[s]
	return ok
}

func (f *frontier[S]) empty() bool { return len(f.items) == 0 }
