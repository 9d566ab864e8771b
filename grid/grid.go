/*
Package grid provides the rectangular board searched by the path finder.

A Grid owns a flat arena of Cells addressed by index. Boards are generated
with walls on every border cell and random interior walls, or built from a
fixed symbol layout. Neighbours are the in-bounds north, south, east and west
cells only and are computed once the arena is fully populated.
*/
package grid

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// NoCell marks an unset start or destination reference.
const NoCell = -1

const (
	defaultWallChance = 0.15
	defaultCost       = 1
)

var (
	ErrInvalidDimension = errors.New("invalid grid dimension")
	ErrOutOfBounds      = errors.New("coordinate out of bounds")
	ErrInvalidSymbol    = errors.New("invalid layout symbol")
)

// Options control how a grid is built.
type Options struct {
	Rand       *rand.Rand // Random source for interior walls
	WallChance float64    // Probability of an interior cell being a wall
	Cost       int        // Uniform traversal cost of every cell
}

// Option modifies Options.
type Option func(*Options)

// WithRand uses r for wall generation. Boards built with the same seeded
// source have the same layout.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

// WithWallChance sets the probability of an interior cell being a wall.
// Values are clamped to [0, 1].
func WithWallChance(p float64) Option {
	return func(o *Options) { o.WallChance = min(max(p, 0), 1) }
}

// WithCost sets the uniform traversal cost. Non-positive values are ignored.
func WithCost(cost int) Option {
	return func(o *Options) {
		if cost > 0 {
			o.Cost = cost
		}
	}
}

func buildOptions(opts []Option) Options {
	o := Options{WallChance: defaultWallChance, Cost: defaultCost}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}

// Grid is a rectangular board of cells.
type Grid struct {
	width       int    // Number of columns
	height      int    // Number of rows
	cells       []Cell // Row-major cell arena
	start       int    // Arena index of the start cell or NoCell
	destination int    // Arena index of the destination cell or NoCell
}

// Generate builds a width x height board. Border cells are walls; every
// interior cell is a wall with the configured chance and floor otherwise.
func Generate(width, height int, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	o := buildOptions(opts)

	g := newGrid(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			typ := Floor
			if g.onBorder(x, y) || o.Rand.Float64() < o.WallChance {
				typ = Wall
			}
			g.cells[g.index(x, y)] = Cell{typ: typ, pos: Point{X: x, Y: y}, cost: o.Cost}
		}
	}
	g.linkNeighbours()
	return g, nil
}

// FromLayout builds a board from rows of cell symbols (X, -, S, D, *).
// Every row must have the same length. Border cells are taken as given.
func FromLayout(rows []string, opts ...Option) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrInvalidDimension)
	}
	o := buildOptions(opts)
	width, height := len(rows[0]), len(rows)

	g := newGrid(width, height)
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidDimension, y, len(row), width)
		}
		for x := 0; x < width; x++ {
			typ, err := parseSymbol(row[x])
			if err != nil {
				return nil, fmt.Errorf("%w at (%d,%d)", err, x, y)
			}
			g.cells[g.index(x, y)] = Cell{typ: Floor, pos: Point{X: x, Y: y}, cost: o.Cost}
			switch typ {
			case Start:
				_ = g.SetStart(x, y)
			case Destination:
				_ = g.SetDestination(x, y)
			default:
				g.cells[g.index(x, y)].typ = typ
			}
		}
	}
	g.linkNeighbours()
	return g, nil
}

func parseSymbol(b byte) (CellType, error) {
	switch b {
	case 'X':
		return Wall, nil
	case '-':
		return Floor, nil
	case 'S':
		return Start, nil
	case 'D':
		return Destination, nil
	case '*':
		return Path, nil
	default:
		return Wall, fmt.Errorf("%w %q", ErrInvalidSymbol, b)
	}
}

func newGrid(width, height int) *Grid {
	return &Grid{
		width:       width,
		height:      height,
		cells:       make([]Cell, width*height),
		start:       NoCell,
		destination: NoCell,
	}
}

// linkNeighbours fills every cell's neighbour list. The scan order is west,
// north, south, east, and the search relies on it for reproducible paths.
func (g *Grid) linkNeighbours() {
	for i := range g.cells {
		c := &g.cells[i]
		c.Parent = NoParent
		c.neighbours = c.neighbours[:0]
		for nx := c.pos.X - 1; nx <= c.pos.X+1; nx++ {
			for ny := c.pos.Y - 1; ny <= c.pos.Y+1; ny++ {
				if (nx == c.pos.X) == (ny == c.pos.Y) {
					continue // diagonal or self
				}
				if g.InBounds(nx, ny) {
					c.neighbours = append(c.neighbours, g.index(nx, ny))
				}
			}
		}
	}
}

func (g *Grid) onBorder(x, y int) bool {
	return x == 0 || y == 0 || x == g.width-1 || y == g.height-1
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// InBounds reports whether (x, y) lies on the board.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsTraversable reports whether (x, y) is on the board and is a floor cell.
func (g *Grid) IsTraversable(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[g.index(x, y)].typ == Floor
}

// Cell returns the cell at (x, y).
func (g *Grid) Cell(x, y int) (*Cell, error) {
	if !g.InBounds(x, y) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	return &g.cells[g.index(x, y)], nil
}

// CellAt returns the cell stored at the given arena index.
func (g *Grid) CellAt(index int) *Cell {
	return &g.cells[index]
}

// IndexOf returns the arena index of (x, y).
func (g *Grid) IndexOf(x, y int) (int, error) {
	if !g.InBounds(x, y) {
		return NoCell, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	return g.index(x, y), nil
}

// SetStart marks (x, y) as the start cell. A previous start cell reverts to
// floor. Callers are expected to check IsTraversable first.
func (g *Grid) SetStart(x, y int) error {
	idx, err := g.IndexOf(x, y)
	if err != nil {
		return err
	}
	g.start = g.relocate(g.start, idx, Start)
	if g.destination == idx {
		g.destination = NoCell
	}
	return nil
}

// SetDestination marks (x, y) as the destination cell. A previous
// destination cell reverts to floor. Callers are expected to check
// IsTraversable first.
func (g *Grid) SetDestination(x, y int) error {
	idx, err := g.IndexOf(x, y)
	if err != nil {
		return err
	}
	g.destination = g.relocate(g.destination, idx, Destination)
	if g.start == idx {
		g.start = NoCell
	}
	return nil
}

func (g *Grid) relocate(prev, next int, typ CellType) int {
	if prev != NoCell && prev != next && g.cells[prev].typ == typ {
		g.cells[prev].typ = Floor
	}
	g.cells[next].typ = typ
	return next
}

// Start returns the start cell, if set.
func (g *Grid) Start() (*Cell, bool) {
	if g.start == NoCell {
		return nil, false
	}
	return &g.cells[g.start], true
}

// Destination returns the destination cell, if set.
func (g *Grid) Destination() (*Cell, bool) {
	if g.destination == NoCell {
		return nil, false
	}
	return &g.cells[g.destination], true
}

// MarkPath turns every floor cell of path into a path cell. Cells of other
// types and points off the board are left alone.
func (g *Grid) MarkPath(path []Point) {
	for _, p := range path {
		if !g.InBounds(p.X, p.Y) {
			continue
		}
		c := &g.cells[g.index(p.X, p.Y)]
		if c.typ == Floor {
			c.typ = Path
		}
	}
}

// ClearMarks turns start, destination and path cells back into floor and
// forgets the start and destination references.
func (g *Grid) ClearMarks() {
	for i := range g.cells {
		switch g.cells[i].typ {
		case Start, Destination, Path:
			g.cells[i].typ = Floor
		}
	}
	g.start, g.destination = NoCell, NoCell
}

// ResetSearch clears the search metrics of every cell.
func (g *Grid) ResetSearch() {
	for i := range g.cells {
		g.cells[i].resetSearch()
	}
}
