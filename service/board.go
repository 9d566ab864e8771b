package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/grid"
	"github.com/beka-birhanu/vinom-pathfinder/pathfinder"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
)

const (
	defaultMaxDimension = 64
	defaultTokenTTL     = time.Hour
)

var (
	ErrMissingDependency = errors.New("missing dependency")
	ErrBoardTooLarge     = errors.New("board too large")
	ErrNotTraversable    = errors.New("coordinate is not a free floor cell")
)

var _ i.BoardService = &BoardService{}

// BoardOptions tunes the board service.
type BoardOptions struct {
	MaxDimension int             // Largest accepted width or height
	WallChance   float64         // Interior wall chance when a request sets none
	DefaultMode  pathfinder.Mode // Cost mode when a request sets none
	TokenTTL     time.Duration   // Lifetime of board tokens
}

// Config holds the dependencies of a BoardService.
type Config struct {
	Repo      i.BoardRepo
	Tokenizer i.Tokenizer
	Logger    i.Logger
	Options   BoardOptions
}

// BoardService creates boards and runs searches on them.
type BoardService struct {
	repo      i.BoardRepo
	tokenizer i.Tokenizer
	logger    i.Logger
	opts      BoardOptions
}

// NewBoardService creates a BoardService. Zero options fall back to defaults.
func NewBoardService(c *Config) (*BoardService, error) {
	if c == nil || c.Repo == nil || c.Tokenizer == nil || c.Logger == nil {
		return nil, ErrMissingDependency
	}

	opts := c.Options
	if opts.MaxDimension <= 0 {
		opts.MaxDimension = defaultMaxDimension
	}
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = defaultTokenTTL
	}

	return &BoardService{
		repo:      c.Repo,
		tokenizer: c.Tokenizer,
		logger:    c.Logger,
		opts:      opts,
	}, nil
}

// Create builds a board, stores it and issues a token scoped to it.
func (s *BoardService) Create(config domain.BoardConfig) (domain.BoardView, string, error) {
	if err := s.checkSize(config); err != nil {
		return domain.BoardView{}, "", err
	}
	if config.WallChance == nil {
		chance := s.opts.WallChance
		config.WallChance = &chance
	}

	board, err := domain.NewBoard(config)
	if err != nil {
		return domain.BoardView{}, "", err
	}
	if err := s.repo.Save(board); err != nil {
		s.logger.Error(fmt.Sprintf("Saving board %s: %v", board.ID, err))
		return domain.BoardView{}, "", err
	}

	token, err := s.tokenizer.Generate(map[string]any{i.ClaimBoardID: board.ID.String()}, s.opts.TokenTTL)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Issuing token for board %s: %v", board.ID, err))
		_ = s.repo.Delete(board.ID)
		return domain.BoardView{}, "", err
	}

	board.Lock()
	view := board.View()
	board.Unlock()

	s.logger.Info(fmt.Sprintf("Board created: ID=%s Size=%dx%d Seed=%d", board.ID, view.Width, view.Height, board.Seed))
	return view, token, nil
}

func (s *BoardService) checkSize(config domain.BoardConfig) error {
	width, height := config.Width, config.Height
	if len(config.Layout) > 0 {
		width, height = len(config.Layout[0]), len(config.Layout)
	}
	if width > s.opts.MaxDimension || height > s.opts.MaxDimension {
		return fmt.Errorf("%w: %dx%d exceeds %d", ErrBoardTooLarge, width, height, s.opts.MaxDimension)
	}
	return nil
}

// View returns the current state of a board.
func (s *BoardService) View(id uuid.UUID) (domain.BoardView, error) {
	board, err := s.repo.ByID(id)
	if err != nil {
		return domain.BoardView{}, err
	}

	board.Lock()
	defer board.Unlock()
	return board.View(), nil
}

// Solve clears the previous round's marks, places start and destination,
// searches and marks the route on the board. Both points must be free floor
// cells once the old marks are gone.
func (s *BoardService) Solve(id uuid.UUID, req domain.SolveRequest) (*domain.Solution, error) {
	mode := s.opts.DefaultMode
	if req.Mode != "" {
		var err error
		if mode, err = pathfinder.ParseMode(req.Mode); err != nil {
			return nil, err
		}
	}

	board, err := s.repo.ByID(id)
	if err != nil {
		return nil, err
	}

	board.Lock()
	defer board.Unlock()

	g := board.Grid
	g.ClearMarks()
	if err := checkFree(g, "start", req.Start); err != nil {
		return nil, err
	}
	if err := checkFree(g, "destination", req.Destination); err != nil {
		return nil, err
	}
	if req.Start == req.Destination {
		return nil, fmt.Errorf("%w: start and destination are both %v", ErrNotTraversable, req.Start)
	}
	if err := g.SetStart(req.Start.X, req.Start.Y); err != nil {
		return nil, err
	}
	if err := g.SetDestination(req.Destination.X, req.Destination.Y); err != nil {
		return nil, err
	}

	res, err := pathfinder.New(g, pathfinder.WithMode(mode)).Search()
	if err != nil {
		return nil, err
	}
	g.MarkPath(res.Path)

	if res.Found {
		s.logger.Info(fmt.Sprintf("Path found on board %s: Steps=%d Expanded=%d Mode=%s", id, len(res.Path), res.Expanded, mode))
	} else {
		s.logger.Info(fmt.Sprintf("No path on board %s: Expanded=%d Mode=%s", id, res.Expanded, mode))
	}

	return &domain.Solution{
		Path:     res.Path,
		Found:    res.Found,
		Expanded: res.Expanded,
		Mode:     mode.String(),
		Board:    board.View(),
	}, nil
}

func checkFree(g *grid.Grid, name string, p grid.Point) error {
	if !g.InBounds(p.X, p.Y) {
		return fmt.Errorf("%s %v: %w", name, p, grid.ErrOutOfBounds)
	}
	if !g.IsTraversable(p.X, p.Y) {
		return fmt.Errorf("%s %v: %w", name, p, ErrNotTraversable)
	}
	return nil
}

// Delete drops a board.
func (s *BoardService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.logger.Info(fmt.Sprintf("Board deleted: ID=%s", id))
	return nil
}
