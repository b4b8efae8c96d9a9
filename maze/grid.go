/*
Package maze provides the cell abstraction rectangular mazes are built on.

A Cell knows its position, its in-bounds neighbors, a visited flag used by
generation algorithms, and four walls indexed by Direction. A Grid owns every
cell of a maze and mediates operations that touch two cells at once, so that
the wall shared by two adjacent cells is always opened on both sides.
*/
package maze

import (
	"fmt"
	"strings"
	"sync"
)

// Grid is a rectangular maze owning one Cell per position, stored row-major.
// Its mutating methods take the write lock; cells obtained through Cell are
// not synchronized.
type Grid struct {
	width        int     // Number of columns
	height       int     // Number of rows
	cells        []*Cell // Row-major arena of cells
	sync.RWMutex         // Serializes writers.
}

// NewGrid creates a width x height grid of fully walled, unvisited cells.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidGeometry, width, height)
	}

	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]*Cell, 0, width*height),
	}
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			c, err := NewCell(row, col, width, height)
			if err != nil {
				return nil, err
			}
			g.cells = append(g.cells, c)
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBound reports whether (row, col) lies inside the grid.
func (g *Grid) InBound(row, col int) bool {
	return inBound(row, col, g.width, g.height)
}

// Cell returns the cell at pos.
func (g *Grid) Cell(pos CellPosition) (*Cell, error) {
	if !g.InBound(pos.Row, pos.Col) {
		return nil, fmt.Errorf("%w: %s outside %dx%d", ErrIndexOutOfRange, pos, g.width, g.height)
	}
	return g.cells[pos.Row*g.width+pos.Col], nil
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(*Cell)) {
	for _, c := range g.cells {
		fn(c)
	}
}

// RemoveWallBetween opens the wall shared by the cells at from and to.
func (g *Grid) RemoveWallBetween(from, to CellPosition) error {
	g.Lock()
	defer g.Unlock()

	a, err := g.Cell(from)
	if err != nil {
		return err
	}
	b, err := g.Cell(to)
	if err != nil {
		return err
	}
	return a.RemoveWallBetween(b)
}

// RemoveWall opens a single wall of the cell at pos without touching its
// neighbor.
func (g *Grid) RemoveWall(pos CellPosition, d Direction) error {
	g.Lock()
	defer g.Unlock()

	c, err := g.Cell(pos)
	if err != nil {
		return err
	}
	return c.RemoveWall(d)
}

// SetWalls overwrites the walls of the cell at pos.
func (g *Grid) SetWalls(pos CellPosition, walls []bool) error {
	g.Lock()
	defer g.Unlock()

	c, err := g.Cell(pos)
	if err != nil {
		return err
	}
	return c.SetWalls(walls)
}

// SetVisited sets the visited mark of the cell at pos.
func (g *Grid) SetVisited(pos CellPosition, visited bool) error {
	g.Lock()
	defer g.Unlock()

	c, err := g.Cell(pos)
	if err != nil {
		return err
	}
	if visited {
		c.MakeVisited()
	} else {
		c.MakeUnvisited()
	}
	return nil
}

// ResetVisited clears the visited mark of every cell.
func (g *Grid) ResetVisited() {
	g.Lock()
	defer g.Unlock()

	for _, c := range g.cells {
		c.MakeUnvisited()
	}
}

// Passable reports whether a step from one position to an adjacent one is
// open on both sides.
func (g *Grid) Passable(from, to CellPosition) bool {
	g.RLock()
	defer g.RUnlock()

	a, err := g.Cell(from)
	if err != nil {
		return false
	}
	b, err := g.Cell(to)
	if err != nil {
		return false
	}
	d, err := DirectionBetween(from, to)
	if err != nil {
		return false
	}
	return !a.HasWall(d) && !b.HasWall(d.Opposite())
}

// Consistent checks that every pair of adjacent cells agrees on the wall
// they share.
func (g *Grid) Consistent() error {
	g.RLock()
	defer g.RUnlock()

	for _, c := range g.cells {
		// East and South cover every adjacent pair exactly once.
		for _, d := range []Direction{East, South} {
			n := c.pos.Step(d)
			if !g.InBound(n.Row, n.Col) {
				continue
			}
			other := g.cells[n.Row*g.width+n.Col]
			if c.HasWall(d) != other.HasWall(d.Opposite()) {
				return fmt.Errorf("%w: %s %s and %s %s", ErrAsymmetricWalls, c.pos, d, other.pos, d.Opposite())
			}
		}
	}
	return nil
}

// String provides a textual representation of the maze.
func (g *Grid) String() string {
	g.RLock()
	defer g.RUnlock()

	var output strings.Builder

	// Top boundary
	output.WriteString("+" + strings.Repeat("---+", g.width) + "\n")

	for row := 0; row < g.height; row++ {
		cellRow := "|"
		wallRow := "+"
		for col := 0; col < g.width; col++ {
			c := g.cells[row*g.width+col]
			if c.HasWall(East) {
				cellRow += "   |"
			} else {
				cellRow += "    "
			}
			if c.HasWall(South) {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		output.WriteString(cellRow + "\n")
		output.WriteString(wallRow + "\n")
	}

	return output.String()
}
