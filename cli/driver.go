// Package cli runs the pathfinder as an interactive terminal game: each
// round generates a board, asks for a start and a destination, searches
// and draws the route.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/grid"
	"github.com/beka-birhanu/vinom-pathfinder/pathfinder"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
)

const helpText = `Symbol Description
- : floor node.
X : wall node.
S : starting node.
D : destination node.
* : path node.
Commands
Type help to show this text.
Type exit to close the application.`

var (
	ErrMissingDependency = errors.New("missing dependency")
	errExit              = errors.New("exit requested")
)

// Config holds the settings of a Driver.
type Config struct {
	In         io.Reader
	Out        io.Writer
	Logger     i.Logger
	Width      int
	Height     int
	WallChance float64
	Seed       int64 // Zero seeds from the clock
	Mode       pathfinder.Mode
	Rounds     int // Zero plays until exit or end of input
}

// Driver is the interactive read-eval-print loop.
type Driver struct {
	in      *bufio.Scanner
	out     io.Writer
	logger  i.Logger
	width   int
	height  int
	chance  float64
	mode    pathfinder.Mode
	rounds  int
	rng     *rand.Rand
	current *grid.Grid
}

// NewDriver creates a Driver. Missing dimensions default to 10x10.
func NewDriver(c *Config) (*Driver, error) {
	if c == nil || c.In == nil || c.Out == nil || c.Logger == nil {
		return nil, ErrMissingDependency
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	d := &Driver{
		in:     bufio.NewScanner(c.In),
		out:    c.Out,
		logger: c.Logger,
		width:  c.Width,
		height: c.Height,
		chance: c.WallChance,
		mode:   c.Mode,
		rounds: max(c.Rounds, 0),
		rng:    rand.New(rand.NewSource(seed)),
	}
	if d.width <= 0 {
		d.width = 10
	}
	if d.height <= 0 {
		d.height = 10
	}
	return d, nil
}

// Run plays rounds until the user types exit, the input ends or the
// configured number of rounds is reached. Those endings return nil.
func (d *Driver) Run() error {
	for round := 1; d.rounds == 0 || round <= d.rounds; round++ {
		err := d.round(round)
		switch {
		case err == nil:
		case errors.Is(err, errExit):
			d.logger.Info("Exit requested")
			return nil
		case errors.Is(err, io.EOF):
			d.logger.Info("Input closed")
			return nil
		default:
			d.logger.Error(fmt.Sprintf("Round %d: %v", round, err))
			return err
		}
	}
	return nil
}

func (d *Driver) round(n int) error {
	d.println(helpText)
	d.println("Press enter to start.")
	if _, err := d.readLine(); err != nil {
		return err
	}

	g, err := grid.Generate(d.width, d.height, grid.WithRand(d.rng), grid.WithWallChance(d.chance))
	if err != nil {
		return err
	}
	d.current = g
	d.logger.Info(fmt.Sprintf("Round %d: board %dx%d", n, d.width, d.height))

	start, err := d.askCoordinates("starting")
	if err != nil {
		return err
	}
	if err := g.SetStart(start.X, start.Y); err != nil {
		return err
	}
	d.draw()

	dest, err := d.askCoordinates("destination")
	if err != nil {
		return err
	}
	if err := g.SetDestination(dest.X, dest.Y); err != nil {
		return err
	}
	d.draw()

	d.println("Press enter to start the pathfinding.")
	if _, err := d.readLine(); err != nil {
		return err
	}

	res, err := pathfinder.New(g, pathfinder.WithMode(d.mode)).Search()
	if err != nil {
		return err
	}
	if res.Found {
		d.println("Path found.")
	} else {
		d.println("No path found.")
	}
	d.logger.Info(fmt.Sprintf("Round %d: found=%t steps=%d expanded=%d", n, res.Found, len(res.Path), res.Expanded))

	g.MarkPath(res.Path)
	d.draw()

	_, err = d.readLine()
	return err
}

// askCoordinates repeats until the user names a free floor cell.
func (d *Driver) askCoordinates(name string) (grid.Point, error) {
	for {
		d.draw()
		x, err := d.askNumber(fmt.Sprintf("Please type the %s column number.", name))
		if err != nil {
			return grid.Point{}, err
		}
		y, err := d.askNumber(fmt.Sprintf("Please type the %s row number.", name))
		if err != nil {
			return grid.Point{}, err
		}
		if d.current.IsTraversable(x, y) {
			return grid.Point{X: x, Y: y}, nil
		}
		d.println(fmt.Sprintf("(%d,%d) is not a free floor cell.", x, y))
	}
}

func (d *Driver) askNumber(prompt string) (int, error) {
	d.println(prompt)
	for {
		line, err := d.readLine()
		if err != nil {
			return 0, err
		}
		if v, err := strconv.Atoi(line); err == nil {
			return v, nil
		}
		d.println("Please try again.")
	}
}

// readLine returns the next trimmed input line after handling the help and
// exit commands.
func (d *Driver) readLine() (string, error) {
	if !d.in.Scan() {
		if err := d.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	line := strings.TrimSpace(d.in.Text())
	switch strings.ToLower(line) {
	case "exit":
		return "", errExit
	case "help":
		d.println(helpText)
	}
	return line, nil
}

func (d *Driver) draw() {
	if d.current != nil {
		fmt.Fprint(d.out, d.current.String())
	}
}

func (d *Driver) println(s string) {
	fmt.Fprintln(d.out, s)
}
