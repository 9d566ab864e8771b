package repo

import (
	"errors"
	"sync"

	"github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
)

var (
	ErrBoardNotFound = errors.New("board not found")
	ErrNilBoard      = errors.New("board is nil")
	ErrRepoFull      = errors.New("board limit reached")
)

var _ i.BoardRepo = &BoardRepo{}

// BoardRepo keeps boards in memory for the lifetime of the process.
type BoardRepo struct {
	boards    map[uuid.UUID]*domain.Board
	maxBoards int // Zero means unlimited
	sync.RWMutex
}

// NewBoardRepo creates an empty BoardRepo holding at most maxBoards boards.
func NewBoardRepo(maxBoards int) *BoardRepo {
	return &BoardRepo{
		boards:    make(map[uuid.UUID]*domain.Board),
		maxBoards: max(maxBoards, 0),
	}
}

// Save inserts or replaces a board.
func (r *BoardRepo) Save(board *domain.Board) error {
	if board == nil {
		return ErrNilBoard
	}

	r.Lock()
	defer r.Unlock()

	if _, exists := r.boards[board.ID]; !exists && r.maxBoards > 0 && len(r.boards) >= r.maxBoards {
		return ErrRepoFull
	}
	r.boards[board.ID] = board
	return nil
}

// ByID retrieves a board by its ID.
func (r *BoardRepo) ByID(id uuid.UUID) (*domain.Board, error) {
	r.RLock()
	defer r.RUnlock()

	board, ok := r.boards[id]
	if !ok {
		return nil, ErrBoardNotFound
	}
	return board, nil
}

// Delete removes a board by its ID.
func (r *BoardRepo) Delete(id uuid.UUID) error {
	r.Lock()
	defer r.Unlock()

	if _, ok := r.boards[id]; !ok {
		return ErrBoardNotFound
	}
	delete(r.boards, id)
	return nil
}

// Count returns the number of stored boards.
func (r *BoardRepo) Count() int {
	r.RLock()
	defer r.RUnlock()
	return len(r.boards)
}
