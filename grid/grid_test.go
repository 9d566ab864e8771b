package grid

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

func TestGenerate(t *testing.T) {
	t.Run("Rejects non-positive dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {3, -2}} {
			_, err := Generate(dims[0], dims[1])
			assert.ErrorIs(t, err, ErrInvalidDimension, "dims %v", dims)
		}
	})

	t.Run("Border cells are walls", func(t *testing.T) {
		for seed := int64(0); seed < 20; seed++ {
			g, err := Generate(9, 7, seeded(seed), WithWallChance(0))
			require.NoError(t, err)

			for y := 0; y < g.Height(); y++ {
				for x := 0; x < g.Width(); x++ {
					c, err := g.Cell(x, y)
					require.NoError(t, err)
					if x == 0 || y == 0 || x == g.Width()-1 || y == g.Height()-1 {
						assert.Equal(t, Wall, c.Type(), "border (%d,%d)", x, y)
					} else {
						assert.Equal(t, Floor, c.Type(), "interior (%d,%d)", x, y)
					}
				}
			}
		}
	})

	t.Run("Full wall chance walls every interior cell", func(t *testing.T) {
		g, err := Generate(6, 6, seeded(1), WithWallChance(1))
		require.NoError(t, err)
		for y := 0; y < 6; y++ {
			for x := 0; x < 6; x++ {
				assert.False(t, g.IsTraversable(x, y))
			}
		}
	})

	t.Run("Default wall chance is roughly fifteen percent", func(t *testing.T) {
		g, err := Generate(102, 102, seeded(42))
		require.NoError(t, err)

		walls := 0
		for y := 1; y < 101; y++ {
			for x := 1; x < 101; x++ {
				if !g.IsTraversable(x, y) {
					walls++
				}
			}
		}
		ratio := float64(walls) / 10000
		assert.InDelta(t, 0.15, ratio, 0.02)
	})

	t.Run("Same seed gives the same board", func(t *testing.T) {
		a, err := Generate(12, 8, seeded(7))
		require.NoError(t, err)
		b, err := Generate(12, 8, seeded(7))
		require.NoError(t, err)
		assert.Equal(t, a.Rows(), b.Rows())
	})

	t.Run("Cells carry coordinates and uniform cost", func(t *testing.T) {
		g, err := Generate(4, 3, seeded(3), WithCost(5))
		require.NoError(t, err)
		c, err := g.Cell(3, 2)
		require.NoError(t, err)
		assert.Equal(t, 3, c.X())
		assert.Equal(t, 2, c.Y())
		assert.Equal(t, Point{X: 3, Y: 2}, c.Point())
		assert.Equal(t, 5, c.Cost())
		assert.Equal(t, NoParent, c.Parent)
	})
}

func TestNeighbours(t *testing.T) {
	g, err := Generate(5, 4, seeded(11))
	require.NoError(t, err)

	for i := 0; i < g.Len(); i++ {
		c := g.CellAt(i)

		want := map[Point]bool{}
		for _, d := range []Point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			p := Point{X: c.X() + d.X, Y: c.Y() + d.Y}
			if g.InBounds(p.X, p.Y) {
				want[p] = true
			}
		}

		got := map[Point]bool{}
		for _, n := range c.Neighbours() {
			nc := g.CellAt(n)
			got[nc.Point()] = true
			assert.Equal(t, 1, Manhattan(c.Point(), nc.Point()), "neighbour of %v", c.Point())

			assert.Contains(t, nc.Neighbours(), i, "symmetry %v <-> %v", c.Point(), nc.Point())
		}
		assert.Equal(t, want, got, "cell %v", c.Point())
	}

	t.Run("Scan order is west, north, south, east", func(t *testing.T) {
		c, err := g.Cell(2, 2)
		require.NoError(t, err)
		var pts []Point
		for _, n := range c.Neighbours() {
			pts = append(pts, g.CellAt(n).Point())
		}
		assert.Equal(t, []Point{{1, 2}, {2, 1}, {2, 3}, {3, 2}}, pts)
	})

	t.Run("Corner cell has two neighbours", func(t *testing.T) {
		c, err := g.Cell(0, 0)
		require.NoError(t, err)
		assert.Len(t, c.Neighbours(), 2)
	})
}

func TestIsTraversable(t *testing.T) {
	g, err := FromLayout([]string{
		"XXXXX",
		"X-X*X",
		"XS-DX",
		"XXXXX",
	})
	require.NoError(t, err)

	tests := []struct {
		x, y int
		want bool
	}{
		{1, 1, true},
		{2, 2, true},
		{2, 1, false}, // wall
		{3, 1, false}, // path
		{1, 2, false}, // start
		{3, 2, false}, // destination
		{-1, 0, false},
		{0, -1, false},
		{5, 1, false},
		{1, 4, false},
	}
	for _, tc := range tests {
		if got := g.IsTraversable(tc.x, tc.y); got != tc.want {
			t.Errorf("IsTraversable(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestStartAndDestination(t *testing.T) {
	newBoard := func(t *testing.T) *Grid {
		g, err := Generate(6, 6, seeded(5), WithWallChance(0))
		require.NoError(t, err)
		return g
	}

	t.Run("Unset by default", func(t *testing.T) {
		g := newBoard(t)
		_, ok := g.Start()
		assert.False(t, ok)
		_, ok = g.Destination()
		assert.False(t, ok)
	})

	t.Run("Out of bounds fails", func(t *testing.T) {
		g := newBoard(t)
		assert.ErrorIs(t, g.SetStart(6, 1), ErrOutOfBounds)
		assert.ErrorIs(t, g.SetDestination(1, -1), ErrOutOfBounds)
		_, ok := g.Start()
		assert.False(t, ok)
	})

	t.Run("Sets type and reference", func(t *testing.T) {
		g := newBoard(t)
		require.NoError(t, g.SetStart(1, 1))
		require.NoError(t, g.SetDestination(4, 4))

		s, ok := g.Start()
		require.True(t, ok)
		assert.Equal(t, Start, s.Type())
		assert.Equal(t, Point{1, 1}, s.Point())

		d, ok := g.Destination()
		require.True(t, ok)
		assert.Equal(t, Destination, d.Type())
		assert.Equal(t, "D", g.Symbol(4, 4))
	})

	t.Run("Relocating reverts the previous cell", func(t *testing.T) {
		g := newBoard(t)
		require.NoError(t, g.SetStart(1, 1))
		require.NoError(t, g.SetStart(2, 3))
		assert.True(t, g.IsTraversable(1, 1))
		assert.Equal(t, "S", g.Symbol(2, 3))

		require.NoError(t, g.SetDestination(4, 4))
		require.NoError(t, g.SetDestination(3, 4))
		assert.True(t, g.IsTraversable(4, 4))
		assert.Equal(t, "D", g.Symbol(3, 4))
	})

	t.Run("Destination over start clears start", func(t *testing.T) {
		g := newBoard(t)
		require.NoError(t, g.SetStart(1, 1))
		require.NoError(t, g.SetDestination(1, 1))
		_, ok := g.Start()
		assert.False(t, ok)
		d, ok := g.Destination()
		require.True(t, ok)
		assert.Equal(t, Point{1, 1}, d.Point())
	})
}

func TestMarkPath(t *testing.T) {
	g, err := FromLayout([]string{
		"XXXXXX",
		"XS---X",
		"X---DX",
		"XXXXXX",
	})
	require.NoError(t, err)

	g.MarkPath([]Point{{2, 1}, {3, 1}, {3, 2}, {4, 2}, {1, 1}, {0, 0}, {9, 9}})

	assert.Equal(t, []string{
		"XXXXXX",
		"XS**-X",
		"X--*DX",
		"XXXXXX",
	}, g.Rows())

	t.Run("Clear marks restores floor", func(t *testing.T) {
		g.ClearMarks()
		assert.Equal(t, []string{
			"XXXXXX",
			"X----X",
			"X----X",
			"XXXXXX",
		}, g.Rows())
		_, ok := g.Start()
		assert.False(t, ok)
		_, ok = g.Destination()
		assert.False(t, ok)
	})
}

func TestFromLayout(t *testing.T) {
	t.Run("Rejects empty layout", func(t *testing.T) {
		_, err := FromLayout(nil)
		assert.ErrorIs(t, err, ErrInvalidDimension)
		_, err = FromLayout([]string{""})
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})

	t.Run("Rejects ragged rows", func(t *testing.T) {
		_, err := FromLayout([]string{"XXX", "XX"})
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})

	t.Run("Rejects unknown symbols", func(t *testing.T) {
		_, err := FromLayout([]string{"XXX", "X?X", "XXX"})
		assert.ErrorIs(t, err, ErrInvalidSymbol)
	})

	t.Run("Records start and destination", func(t *testing.T) {
		g, err := FromLayout([]string{"XXXX", "XSDX", "XXXX"})
		require.NoError(t, err)
		s, ok := g.Start()
		require.True(t, ok)
		assert.Equal(t, Point{1, 1}, s.Point())
		d, ok := g.Destination()
		require.True(t, ok)
		assert.Equal(t, Point{2, 1}, d.Point())
	})
}

func TestResetSearch(t *testing.T) {
	g, err := Generate(4, 4, seeded(2))
	require.NoError(t, err)

	c := g.CellAt(5)
	c.G, c.H, c.F, c.Parent = 3, 4, 7, 1
	g.ResetSearch()

	assert.Zero(t, c.G)
	assert.Zero(t, c.H)
	assert.Zero(t, c.F)
	assert.Equal(t, NoParent, c.Parent)
}

func TestSymbols(t *testing.T) {
	tests := map[CellType]string{
		Wall:        "X",
		Floor:       "-",
		Start:       "S",
		Destination: "D",
		Path:        "*",
	}
	for typ, want := range tests {
		assert.Equal(t, want, typ.Symbol(), typ.String())
	}
}

func TestString(t *testing.T) {
	g, err := FromLayout([]string{
		"XXX",
		"XSX",
		"XXX",
	})
	require.NoError(t, err)
	assert.Equal(t, "  0 1 2\n0 X X X\n1 X S X\n2 X X X\n", g.String())

	t.Run("Pads two digit indices", func(t *testing.T) {
		g, err := Generate(11, 2, seeded(1))
		require.NoError(t, err)
		lines := splitLines(g.String())
		require.Len(t, lines, 3)
		assert.Equal(t, "   0  1  2  3  4  5  6  7  8  9 10", lines[0])
		assert.Equal(t, "0  X  X  X  X  X  X  X  X  X  X  X", lines[1])
	})
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return lines
}
