package pathfinder

import (
	"fmt"

	"github.com/beka-birhanu/vinom-pathfinder/grid"
)

// State is the phase of a search.
type State int

const (
	StateInitialized State = iota // Start seeded, nothing expanded yet
	StateExpanding                // At least one cell expanded
	StateFound                    // Destination closed
	StateExhausted                // Frontier empty, destination never closed
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateExpanding:
		return "expanding"
	case StateFound:
		return "found"
	case StateExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether no further expansion can happen.
func (s State) Terminal() bool {
	return s == StateFound || s == StateExhausted
}

type cellStatus uint8

const (
	statusUnseen cellStatus = iota
	statusOpen
	statusClosed
)

// Snapshot exposes the state of the search after one step.
type Snapshot struct {
	Step    int          // Number of expansions so far
	State   State        // State after the step
	Current grid.Point   // Cell expanded by the step
	Open    int          // Cells waiting in the frontier
	Closed  int          // Cells already expanded
	Path    []grid.Point // Set once the state is StateFound
}

// Stepper runs a search one expansion at a time.
type Stepper struct {
	grid        *grid.Grid
	mode        Mode
	start       int
	destination int
	startPos    grid.Point
	destPos     grid.Point

	open   frontier
	items  []*queueItem // Queue entry per open cell
	status []cellStatus

	state    State
	expanded int
	current  int
	path     []grid.Point
}

// NewStepper resets the grid's search metrics and seeds a new search with
// the start cell. It fails with ErrPreconditionNotMet when the grid, its
// start or its destination is missing.
func (p *PathFinder) NewStepper() (*Stepper, error) {
	if p.grid == nil {
		return nil, fmt.Errorf("%w: no grid", ErrPreconditionNotMet)
	}
	start, ok := p.grid.Start()
	if !ok {
		return nil, fmt.Errorf("%w: start not set", ErrPreconditionNotMet)
	}
	dest, ok := p.grid.Destination()
	if !ok {
		return nil, fmt.Errorf("%w: destination not set", ErrPreconditionNotMet)
	}

	startIdx, _ := p.grid.IndexOf(start.X(), start.Y())
	destIdx, _ := p.grid.IndexOf(dest.X(), dest.Y())

	p.grid.ResetSearch()
	s := &Stepper{
		grid:        p.grid,
		mode:        p.opts.Mode,
		start:       startIdx,
		destination: destIdx,
		startPos:    start.Point(),
		destPos:     dest.Point(),
		items:       make([]*queueItem, p.grid.Len()),
		status:      make([]cellStatus, p.grid.Len()),
		state:       StateInitialized,
		current:     startIdx,
	}

	start.G = 0
	start.H = grid.Manhattan(s.startPos, s.destPos)
	start.F = start.H
	s.items[startIdx] = s.open.push(startIdx, start.F)
	s.status[startIdx] = statusOpen
	return s, nil
}

// State returns the current state of the search.
func (s *Stepper) State() State {
	return s.state
}

// Step expands the best open cell. Once the search is terminal it keeps
// returning the terminal snapshot.
func (s *Stepper) Step() Snapshot {
	if s.state.Terminal() {
		return s.snapshot()
	}
	if s.open.len() == 0 {
		s.state = StateExhausted
		return s.snapshot()
	}

	s.state = StateExpanding
	item := s.open.pop()
	cur := item.cell
	s.items[cur] = nil
	s.status[cur] = statusClosed
	s.expanded++
	s.current = cur

	if cur == s.destination {
		s.state = StateFound
		s.path = s.reconstruct()
		return s.snapshot()
	}

	s.expand(cur)
	if s.open.len() == 0 {
		s.state = StateExhausted
	}
	return s.snapshot()
}

// Result summarises the search so far.
func (s *Stepper) Result() Result {
	return Result{
		Path:     s.path,
		Found:    s.state == StateFound,
		Expanded: s.expanded,
		State:    s.state,
	}
}

func (s *Stepper) snapshot() Snapshot {
	return Snapshot{
		Step:    s.expanded,
		State:   s.state,
		Current: s.grid.CellAt(s.current).Point(),
		Open:    s.open.len(),
		Closed:  s.expanded,
		Path:    s.path,
	}
}

func (s *Stepper) expand(cur int) {
	curCell := s.grid.CellAt(cur)
	for _, n := range curCell.Neighbours() {
		nc := s.grid.CellAt(n)
		if nc.Type() == grid.Wall || s.status[n] == statusClosed {
			continue
		}
		switch s.mode {
		case ModeAccumulated:
			s.relaxAccumulated(cur, curCell, n, nc)
		default:
			s.relaxLegacy(cur, curCell, n, nc)
		}
	}
}

// relaxLegacy prices a neighbour by its position alone. An open neighbour
// only gets a new parent; its metrics stay as first written.
func (s *Stepper) relaxLegacy(cur int, curCell *grid.Cell, n int, nc *grid.Cell) {
	g := grid.Manhattan(s.startPos, nc.Point()) + nc.Cost()
	h := grid.Manhattan(nc.Point(), s.destPos)

	if s.status[n] != statusOpen {
		nc.G, nc.H, nc.F = g, h, g+h
		nc.Parent = cur
		s.items[n] = s.open.push(n, nc.F)
		s.status[n] = statusOpen
		return
	}
	if nc.F > h+curCell.G {
		nc.Parent = cur
	}
}

func (s *Stepper) relaxAccumulated(cur int, curCell *grid.Cell, n int, nc *grid.Cell) {
	g := curCell.G + nc.Cost()

	if s.status[n] != statusOpen {
		nc.G = g
		nc.H = grid.Manhattan(nc.Point(), s.destPos)
		nc.F = nc.G + nc.H
		nc.Parent = cur
		s.items[n] = s.open.push(n, nc.F)
		s.status[n] = statusOpen
		return
	}
	if g < nc.G {
		nc.G = g
		nc.F = g + nc.H
		nc.Parent = cur
		s.open.update(s.items[n], nc.F)
	}
}

// reconstruct walks parent links back from the destination. The start cell,
// which has no parent, is not part of the path.
func (s *Stepper) reconstruct() []grid.Point {
	var path []grid.Point
	for c := s.grid.CellAt(s.destination); c.Parent != grid.NoParent; c = s.grid.CellAt(c.Parent) {
		path = append(path, c.Point())
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
