// Package boardapi provides the request and response bodies of the board endpoints.
package boardapi

import (
	"github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/grid"
	"github.com/google/uuid"
)

// CreateBoardRequest asks for a new board. A non-empty Layout takes
// precedence over the generation parameters.
type CreateBoardRequest struct {
	Width      int      `json:"width" binding:"omitempty,min=1"`
	Height     int      `json:"height" binding:"omitempty,min=1"`
	Seed       int64    `json:"seed"`
	WallChance *float64 `json:"wallChance" binding:"omitempty,min=0,max=1"`
	Layout     []string `json:"layout"`
}

// BoardResponse is the visible state of a board.
type BoardResponse struct {
	ID          uuid.UUID   `json:"id"`
	Width       int         `json:"width"`
	Height      int         `json:"height"`
	Rows        []string    `json:"rows"`
	Start       *grid.Point `json:"start,omitempty"`
	Destination *grid.Point `json:"destination,omitempty"`
}

// CreateBoardResponse carries the new board and the bearer token scoped to it.
type CreateBoardResponse struct {
	Board BoardResponse `json:"board"`
	Token string        `json:"token"`
}

// SolveRequest asks for a route between two cells of a board.
type SolveRequest struct {
	Start       *grid.Point `json:"start" binding:"required"`
	Destination *grid.Point `json:"destination" binding:"required"`
	Mode        string      `json:"mode"`
}

// SolveResponse is the outcome of a search.
type SolveResponse struct {
	Found    bool          `json:"found"`
	Path     []grid.Point  `json:"path"`
	Expanded int           `json:"expanded"`
	Mode     string        `json:"mode"`
	Board    BoardResponse `json:"board"`
}

func newBoardResponse(v domain.BoardView) BoardResponse {
	return BoardResponse{
		ID:          v.ID,
		Width:       v.Width,
		Height:      v.Height,
		Rows:        v.Rows,
		Start:       v.Start,
		Destination: v.Destination,
	}
}

func newSolveResponse(s *domain.Solution) SolveResponse {
	path := s.Path
	if path == nil {
		path = []grid.Point{}
	}
	return SolveResponse{
		Found:    s.Found,
		Path:     path,
		Expanded: s.Expanded,
		Mode:     s.Mode,
		Board:    newBoardResponse(s.Board),
	}
}
