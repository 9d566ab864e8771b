package i

import (
	"github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/google/uuid"
)

// BoardRepo defines the interface for board storage.
type BoardRepo interface {
	// Save inserts a board or replaces the one with the same ID.
	Save(board *domain.Board) error

	// ByID retrieves a board by its unique ID.
	// Returns an error if the board is not found.
	ByID(id uuid.UUID) (*domain.Board, error)

	// Delete removes a board. Deleting an unknown board is an error.
	Delete(id uuid.UUID) error

	// Count returns the number of stored boards.
	Count() int
}
