package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/beka-birhanu/vinom-pathfinder/config"
	logger "github.com/beka-birhanu/vinom-pathfinder/infrastruture/log"
	"github.com/beka-birhanu/vinom-pathfinder/pathfinder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// solvedOpenBoard is what a 5x5 board with no interior walls looks like after the
// legacy search from (1,1) to (3,3).
const solvedOpenBoard = `  0 1 2 3 4
0 X X X X X
1 X S * * X
2 X - - * X
3 X - - D X
4 X X X X X
`

func newDriver(t *testing.T, input string, rounds int) (*Driver, *bytes.Buffer) {
	t.Helper()
	l, err := logger.New("CLI", config.ColorBlue, io.Discard)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	d, err := NewDriver(&Config{
		In:         strings.NewReader(input),
		Out:        out,
		Logger:     l,
		Width:      5,
		Height:     5,
		WallChance: 0,
		Seed:       1,
		Mode:       pathfinder.ModeLegacy,
		Rounds:     rounds,
	})
	require.NoError(t, err)
	return d, out
}

func script(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func TestNewDriver(t *testing.T) {
	_, err := NewDriver(nil)
	assert.ErrorIs(t, err, ErrMissingDependency)

	_, err = NewDriver(&Config{In: strings.NewReader(""), Out: io.Discard})
	assert.ErrorIs(t, err, ErrMissingDependency)

	l, err := logger.New("CLI", config.ColorBlue, io.Discard)
	require.NoError(t, err)
	d, err := NewDriver(&Config{In: strings.NewReader(""), Out: io.Discard, Logger: l})
	require.NoError(t, err)
	assert.Equal(t, 10, d.width)
	assert.Equal(t, 10, d.height)
}

func TestRun(t *testing.T) {
	t.Run("Scripted round", func(t *testing.T) {
		d, out := newDriver(t, script(
			"",         // start
			"one", "1", // column after a bad number
			"1",        // row
			"0", "0",   // wall, asked again
			"3", "3",
			"", // run search
			"", // next round
		), 1)

		require.NoError(t, d.Run())
		text := out.String()
		assert.Contains(t, text, "Symbol Description")
		assert.Contains(t, text, "Please type the starting column number.")
		assert.Contains(t, text, "Please try again.")
		assert.Contains(t, text, "(0,0) is not a free floor cell.")
		assert.Contains(t, text, "Please type the destination row number.")
		assert.Contains(t, text, "Path found.")
		assert.Contains(t, text, solvedOpenBoard)
		assert.NotContains(t, text, "No path found.")
	})

	t.Run("Start cell cannot be the destination", func(t *testing.T) {
		d, out := newDriver(t, script("", "1", "1", "1", "1", "2", "2", "", ""), 1)
		require.NoError(t, d.Run())
		assert.Contains(t, out.String(), "(1,1) is not a free floor cell.")
		assert.Contains(t, out.String(), "Path found.")
	})

	t.Run("Exit at a prompt", func(t *testing.T) {
		d, out := newDriver(t, script("", "2", "exit", "3"), 0)
		require.NoError(t, d.Run())
		assert.Contains(t, out.String(), "Please type the starting row number.")
		assert.NotContains(t, out.String(), "Please type the destination")
	})

	t.Run("Help at a prompt", func(t *testing.T) {
		d, out := newDriver(t, script("help"), 0)
		require.NoError(t, d.Run())
		assert.Equal(t, 2, strings.Count(out.String(), "Symbol Description"))
	})

	t.Run("End of input", func(t *testing.T) {
		d, out := newDriver(t, "", 0)
		require.NoError(t, d.Run())
		assert.Contains(t, out.String(), "Press enter to start.")
	})

	t.Run("Rounds keep going until exit", func(t *testing.T) {
		round := []string{"", "1", "1", "3", "3", "", ""}
		input := script(append(append(round, round...), "exit")...)
		d, out := newDriver(t, input, 0)
		require.NoError(t, d.Run())
		assert.Equal(t, 2, strings.Count(out.String(), "Path found."))
		assert.Equal(t, 3, strings.Count(out.String(), "Press enter to start.\n"))
	})
}
