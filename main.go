package main

import (
	"fmt"
	"io"
	"os"

	"github.com/beka-birhanu/vinom-pathfinder/api"
	boardapi "github.com/beka-birhanu/vinom-pathfinder/api/board"
	api_i "github.com/beka-birhanu/vinom-pathfinder/api/i"
	"github.com/beka-birhanu/vinom-pathfinder/api/identity"
	"github.com/beka-birhanu/vinom-pathfinder/cli"
	"github.com/beka-birhanu/vinom-pathfinder/config"
	logger "github.com/beka-birhanu/vinom-pathfinder/infrastruture/log"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/repo"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/token"
	"github.com/beka-birhanu/vinom-pathfinder/pathfinder"
	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
)

// Global variables for dependencies
var (
	appLogger       i.Logger
	searchMode      pathfinder.Mode
	boardRepo       i.BoardRepo
	jwtTokenizer    i.Tokenizer
	boardService    i.BoardService
	boardController api_i.Controller
	router          *api.Router
	driver          *cli.Driver
)

func newLogger(prefix, color string, w io.Writer) i.Logger {
	l, err := logger.New(prefix, color, w)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating %s logger: %v", prefix, err))
		os.Exit(1)
	}
	return l
}

func initSearchMode() {
	var err error
	searchMode, err = pathfinder.ParseMode(config.Envs.SearchMode)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Reading search mode: %v", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Search mode: %s", searchMode))
}

func initBoardRepo() {
	boardRepo = repo.NewBoardRepo(config.Envs.MaxBoards)
	appLogger.Info("Board repository initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initBoardService() {
	var err error
	boardService, err = service.NewBoardService(&service.Config{
		Repo:      boardRepo,
		Tokenizer: jwtTokenizer,
		Logger:    newLogger("BOARD", config.ColorCyan, os.Stdout),
		Options: service.BoardOptions{
			MaxDimension: config.Envs.MaxBoardDimension,
			WallChance:   config.Envs.WallChance,
			DefaultMode:  searchMode,
			TokenTTL:     config.Envs.TokenTTL,
		},
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating board service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Board service initialized")
}

func initBoardController() {
	var err error
	boardController, err = boardapi.NewBoardController(boardService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating board controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Board controller initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    config.Envs.Addr(),
		BaseURL:                 "/api",
		GinMode:                 config.Envs.GinMode,
		Controllers:             []api_i.Controller{boardController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func initDriver() {
	var err error
	driver, err = cli.NewDriver(&cli.Config{
		In:         os.Stdin,
		Out:        os.Stdout,
		Logger:     newLogger("CLI", config.ColorBlue, os.Stderr),
		Width:      config.Envs.BoardWidth,
		Height:     config.Envs.BoardHeight,
		WallChance: config.Envs.WallChance,
		Seed:       config.Envs.BoardSeed,
		Mode:       searchMode,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating cli driver: %v", err))
		os.Exit(1)
	}
	appLogger.Info("CLI driver initialized")
}

func runHTTP() {
	initBoardRepo()
	initJWTTokenizer()
	initBoardService()
	initBoardController()
	initRouter(jwtTokenizer)

	appLogger.Info(fmt.Sprintf("Serving on %s", config.Envs.Addr()))
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}

func runCLI() {
	initDriver()
	if err := driver.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Running cli: %v", err))
		os.Exit(1)
	}
}

func main() {
	var err error
	appLogger, err = logger.New("APP", config.ColorGreen, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating app logger: %v\n", err)
		os.Exit(1)
	}

	initSearchMode()

	switch config.Envs.AppMode {
	case config.ModeHTTP:
		runHTTP()
	default:
		runCLI()
	}
}
