package boardapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/vinom-pathfinder/api/identity"
	"github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/grid"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/repo"
	"github.com/beka-birhanu/vinom-pathfinder/pathfinder"
	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BoardController exposes boards over HTTP.
type BoardController struct {
	boardService i.BoardService
}

// NewBoardController initializes a BoardController.
func NewBoardController(bs i.BoardService) (*BoardController, error) {
	if bs == nil {
		return nil, service.ErrMissingDependency
	}
	return &BoardController{boardService: bs}, nil
}

// RegisterPublic registers public routes.
func (bc *BoardController) RegisterPublic(route *gin.RouterGroup) {
	route.POST("/boards", bc.create)
}

// RegisterProtected registers routes that need a token scoped to the board.
func (bc *BoardController) RegisterProtected(route *gin.RouterGroup) {
	board := route.Group("/boards/:ID", identity.BoardScope("ID"))
	{
		board.GET("", bc.view)
		board.POST("/path", bc.solve)
		board.DELETE("", bc.delete)
	}
}

// create builds a board and returns it with its bearer token.
func (bc *BoardController) create(ctx *gin.Context) {
	var request CreateBoardRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, token, err := bc.boardService.Create(domain.BoardConfig{
		Width:      request.Width,
		Height:     request.Height,
		Seed:       request.Seed,
		WallChance: request.WallChance,
		Layout:     request.Layout,
	})
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, CreateBoardResponse{Board: newBoardResponse(view), Token: token})
}

// view returns the current state of a board.
func (bc *BoardController) view(ctx *gin.Context) {
	id, ok := boardID(ctx)
	if !ok {
		return
	}

	view, err := bc.boardService.View(id)
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newBoardResponse(view))
}

// solve runs one round of the game on a board.
func (bc *BoardController) solve(ctx *gin.Context) {
	id, ok := boardID(ctx)
	if !ok {
		return
	}

	var request SolveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	solution, err := bc.boardService.Solve(id, domain.SolveRequest{
		Start:       *request.Start,
		Destination: *request.Destination,
		Mode:        request.Mode,
	})
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newSolveResponse(solution))
}

// delete drops a board.
func (bc *BoardController) delete(ctx *gin.Context) {
	id, ok := boardID(ctx)
	if !ok {
		return
	}

	if err := bc.boardService.Delete(id); err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func boardID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid board id"})
		return uuid.Nil, false
	}
	return id, true
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, repo.ErrBoardNotFound):
		return http.StatusNotFound
	case errors.Is(err, repo.ErrRepoFull):
		return http.StatusServiceUnavailable
	case errors.Is(err, grid.ErrInvalidDimension),
		errors.Is(err, grid.ErrInvalidSymbol),
		errors.Is(err, grid.ErrOutOfBounds),
		errors.Is(err, domain.ErrBoardTooSmall),
		errors.Is(err, service.ErrBoardTooLarge),
		errors.Is(err, service.ErrNotTraversable),
		errors.Is(err, pathfinder.ErrUnknownMode):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
