// Package pathfinder searches a grid.Grid for a route between its start and
// destination cells.
//
// The search keeps an open frontier ordered by f = g + h, with ties going to
// the cell that entered the frontier first, and a closed set of expanded
// cells. The heuristic is the Manhattan distance, which matches the
// grid's 4-connected movement.
//
// Two cost modes exist. ModeLegacy computes g as the Manhattan distance from
// the start to the cell plus the cell cost, independent of the route taken,
// and only re-links the parent of an open cell when a better f is seen. It
// produces plausible but not always shortest routes and is kept as the
// default so results match the long-standing behaviour of the game.
// ModeAccumulated is textbook A*: g is the accumulated cost along the route
// and improving an open cell rewrites its g, f and queue position.
//
// A PathFinder holds no state between searches; every search resets the
// grid's per-cell metrics first.
package pathfinder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beka-birhanu/vinom-pathfinder/grid"
)

var (
	ErrPreconditionNotMet = errors.New("search precondition not met")
	ErrUnknownMode        = errors.New("unknown search mode")
)

// Mode selects how path costs are computed.
type Mode int

const (
	ModeLegacy      Mode = iota // Distance-from-start g, parent-only improvement
	ModeAccumulated             // Accumulated g, full relaxation
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeLegacy:
		return "legacy"
	case ModeAccumulated:
		return "accumulated"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a configuration name into a Mode. The empty string
// selects ModeLegacy.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "legacy":
		return ModeLegacy, nil
	case "accumulated", "astar", "canonical":
		return ModeAccumulated, nil
	default:
		return ModeLegacy, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Options defines parameters for the search.
type Options struct {
	Mode Mode
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithMode selects the cost mode.
func WithMode(m Mode) Option {
	return func(o *Options) { o.Mode = m }
}

// Result is the outcome of a complete search.
type Result struct {
	Path     []grid.Point // Steps after the start up to and including the destination
	Found    bool         // Whether the destination was reached
	Expanded int          // Number of cells moved to the closed set
	State    State        // Terminal state of the search
}

// PathFinder searches the grid it was created with.
type PathFinder struct {
	grid *grid.Grid
	opts Options
}

// New returns a PathFinder bound to g.
func New(g *grid.Grid, options ...Option) *PathFinder {
	opts := Options{Mode: ModeLegacy}
	for _, o := range options {
		o(&opts)
	}
	return &PathFinder{grid: g, opts: opts}
}

// Mode returns the cost mode used by the finder.
func (p *PathFinder) Mode() Mode {
	return p.opts.Mode
}

// ComputePath runs a full search and returns the route from the step after
// the start to the destination. An empty path with a nil error means no
// route exists. The grid must have both a start and a destination.
func (p *PathFinder) ComputePath() ([]grid.Point, error) {
	res, err := p.Search()
	if err != nil {
		return nil, err
	}
	return res.Path, nil
}

// Search runs the search to a terminal state and reports the outcome.
func (p *PathFinder) Search() (Result, error) {
	st, err := p.NewStepper()
	if err != nil {
		return Result{}, err
	}
	for !st.State().Terminal() {
		st.Step()
	}
	return st.Result(), nil
}
