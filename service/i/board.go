package i

import (
	"github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/google/uuid"
)

// BoardService manages boards and runs searches on them.
type BoardService interface {
	// Create builds and stores a board and returns its view with a bearer
	// token scoped to it.
	Create(config domain.BoardConfig) (domain.BoardView, string, error)

	// View returns the current state of a board.
	View(id uuid.UUID) (domain.BoardView, error)

	// Solve places start and destination on a board, searches and marks
	// the route.
	Solve(id uuid.UUID, req domain.SolveRequest) (*domain.Solution, error)

	// Delete drops a board.
	Delete(id uuid.UUID) error
}
