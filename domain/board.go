package domain

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/grid"
	"github.com/google/uuid"
)

const (
	minBoardDimension = 3
)

var (
	ErrBoardTooSmall = errors.New("board dimension too small")
)

// Board is one round of the game: a grid identified by ID. The embedded
// mutex serialises searches and marks on the grid.
type Board struct {
	ID        uuid.UUID
	Grid      *grid.Grid
	Seed      int64
	CreatedAt time.Time
	sync.Mutex
}

// BoardConfig holds the parameters for creating a Board.
// When Layout is set the board is built from it and Width, Height, Seed and
// WallChance are ignored.
type BoardConfig struct {
	ID         uuid.UUID
	Width      int
	Height     int
	Seed       int64
	WallChance *float64 // Nil keeps the grid default
	Layout     []string
}

// NewBoard creates a new Board with the provided configuration.
func NewBoard(config BoardConfig) (*Board, error) {
	if config.ID == uuid.Nil {
		config.ID = uuid.New()
	}

	var (
		g   *grid.Grid
		err error
	)
	if len(config.Layout) > 0 {
		g, err = grid.FromLayout(config.Layout)
	} else {
		if config.Seed == 0 {
			config.Seed = time.Now().UnixNano()
		}
		opts := []grid.Option{grid.WithRand(rand.New(rand.NewSource(config.Seed)))}
		if config.WallChance != nil {
			opts = append(opts, grid.WithWallChance(*config.WallChance))
		}
		g, err = grid.Generate(config.Width, config.Height, opts...)
	}
	if err != nil {
		return nil, err
	}
	if g.Width() < minBoardDimension || g.Height() < minBoardDimension {
		return nil, ErrBoardTooSmall
	}

	return &Board{
		ID:        config.ID,
		Grid:      g,
		Seed:      config.Seed,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// BoardView is a read-only copy of a board's visible state.
type BoardView struct {
	ID          uuid.UUID
	Width       int
	Height      int
	Rows        []string
	Start       *grid.Point
	Destination *grid.Point
}

// View copies the board state. The caller must hold the board lock.
func (b *Board) View() BoardView {
	v := BoardView{
		ID:     b.ID,
		Width:  b.Grid.Width(),
		Height: b.Grid.Height(),
		Rows:   b.Grid.Rows(),
	}
	if c, ok := b.Grid.Start(); ok {
		p := c.Point()
		v.Start = &p
	}
	if c, ok := b.Grid.Destination(); ok {
		p := c.Point()
		v.Destination = &p
	}
	return v
}

// SolveRequest asks for a route between two points of a board.
type SolveRequest struct {
	Start       grid.Point
	Destination grid.Point
	Mode        string // Empty selects the configured default
}

// Solution is the outcome of a search on a board.
type Solution struct {
	Path     []grid.Point
	Found    bool
	Expanded int
	Mode     string
	Board    BoardView
}
