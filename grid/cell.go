package grid

import "fmt"

// NoParent marks a cell that has no predecessor in the current search.
const NoParent = -1

// CellType is the role a cell plays on the board.
type CellType uint8

// Cell types.
const (
	Wall CellType = iota
	Floor
	Start
	Destination
	Path
)

// Symbol returns the single character used to draw the cell type.
func (t CellType) Symbol() string {
	switch t {
	case Wall:
		return "X"
	case Start:
		return "S"
	case Destination:
		return "D"
	case Path:
		return "*"
	default:
		return "-"
	}
}

// String returns the name of the cell type.
func (t CellType) String() string {
	switch t {
	case Wall:
		return "wall"
	case Floor:
		return "floor"
	case Start:
		return "start"
	case Destination:
		return "destination"
	case Path:
		return "path"
	default:
		return fmt.Sprintf("CellType(%d)", uint8(t))
	}
}

// Point is a column/row coordinate on the board.
type Point struct {
	X int `json:"x"` // Column index
	Y int `json:"y"` // Row index
}

// String renders the point as (x,y).
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Manhattan returns |dx| + |dy| between two points.
func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Cell is a single position on the board.
// Coordinates, cost and neighbours are fixed once the grid is built; the type
// is changed only through the owning Grid. G, H, F and Parent are scratch
// values written by a search and reset before every new one.
type Cell struct {
	typ        CellType
	pos        Point
	cost       int
	neighbours []int // Arena indices of the in-bounds N/S/E/W cells

	G      int // Cost estimate from the start
	H      int // Heuristic distance to the destination
	F      int // G + H
	Parent int // Arena index of the predecessor or NoParent
}

// Type returns the current cell type.
func (c *Cell) Type() CellType {
	return c.typ
}

// X returns the column index of the cell.
func (c *Cell) X() int {
	return c.pos.X
}

// Y returns the row index of the cell.
func (c *Cell) Y() int {
	return c.pos.Y
}

// Point returns the coordinate of the cell.
func (c *Cell) Point() Point {
	return c.pos
}

// Cost returns the traversal cost of the cell.
func (c *Cell) Cost() int {
	return c.cost
}

// Neighbours returns the arena indices of the adjacent cells.
// The returned slice must not be modified.
func (c *Cell) Neighbours() []int {
	return c.neighbours
}

// Symbol returns the display character for the cell.
func (c *Cell) Symbol() string {
	return c.typ.Symbol()
}

// String implements fmt.Stringer.
func (c *Cell) String() string {
	return c.Symbol()
}

func (c *Cell) resetSearch() {
	c.G, c.H, c.F = 0, 0, 0
	c.Parent = NoParent
}
