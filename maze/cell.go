package maze

import (
	"fmt"
	"slices"
)

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// GetRow returns the row index of the position.
func (cp CellPosition) GetRow() int {
	return cp.Row
}

// GetCol returns the column index of the position.
func (cp CellPosition) GetCol() int {
	return cp.Col
}

// Step returns the position one cell away in direction d.
func (cp CellPosition) Step(d Direction) CellPosition {
	offset := d.Offset()
	return CellPosition{Row: cp.Row + offset.Row, Col: cp.Col + offset.Col}
}

func (cp CellPosition) String() string {
	return fmt.Sprintf("(%d, %d)", cp.Row, cp.Col)
}

// Cell represents a single cell in a maze grid.
// It tracks its position, whether a generation algorithm visited it, and the
// four walls separating it from its orthogonal neighbors.
type Cell struct {
	pos       CellPosition   // Fixed at construction.
	width     int            // Width of the owning maze.
	height    int            // Height of the owning maze.
	neighbors []CellPosition // In-bounds neighbors in North, East, South, West order.
	visited   bool
	walls     [4]bool // Indexed by Direction; true means the wall is present.
}

// NewCell creates a cell at (row, col) of a width x height maze with all four
// walls present. It fails with ErrInvalidGeometry if the maze is empty or the
// position lies outside of it.
func NewCell(row, col, width, height int) (*Cell, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidGeometry, width, height)
	}
	if !inBound(row, col, width, height) {
		return nil, fmt.Errorf("%w: position (%d, %d) outside %dx%d", ErrInvalidGeometry, row, col, width, height)
	}

	c := &Cell{
		pos:    CellPosition{Row: row, Col: col},
		width:  width,
		height: height,
		walls:  [4]bool{true, true, true, true},
	}
	for _, d := range Directions {
		n := c.pos.Step(d)
		if inBound(n.Row, n.Col, width, height) {
			c.neighbors = append(c.neighbors, n)
		}
	}
	return c, nil
}

func inBound(row, col, width, height int) bool {
	return row >= 0 && row < height && col >= 0 && col < width
}

// MakeVisited marks the cell as visited.
func (c *Cell) MakeVisited() {
	c.visited = true
}

// MakeUnvisited clears the visited mark.
func (c *Cell) MakeUnvisited() {
	c.visited = false
}

// IsVisited returns the visited mark.
func (c *Cell) IsVisited() bool {
	return c.visited
}

// GetRow returns the row index of the cell.
func (c *Cell) GetRow() int {
	return c.pos.Row
}

// GetCol returns the column index of the cell.
func (c *Cell) GetCol() int {
	return c.pos.Col
}

// Position returns the cell's coordinates.
func (c *Cell) Position() CellPosition {
	return c.pos
}

// Neighbors returns a copy of the in-bounds neighbor positions in North,
// East, South, West order.
func (c *Cell) Neighbors() []CellPosition {
	return slices.Clone(c.neighbors)
}

// AccessibleNeighbors returns the neighbors whose shared wall has been
// removed on this cell's side, in North, East, South, West order.
func (c *Cell) AccessibleNeighbors() []CellPosition {
	var accessible []CellPosition
	for _, d := range Directions {
		n := c.pos.Step(d)
		if !c.walls[d] && slices.Contains(c.neighbors, n) {
			accessible = append(accessible, n)
		}
	}
	return accessible
}

// HasWall reports whether the wall facing d is present. Invalid directions
// are reported as walled.
func (c *Cell) HasWall(d Direction) bool {
	if !d.Valid() {
		return true
	}
	return c.walls[d]
}

// Walls returns the wall flags indexed by Direction.
func (c *Cell) Walls() [4]bool {
	return c.walls
}

// SetWalls overwrites all four wall flags. It does not touch any neighbor;
// keeping adjacent cells consistent is the caller's job.
func (c *Cell) SetWalls(walls []bool) error {
	if len(walls) != len(c.walls) {
		return fmt.Errorf("%w: expected %d walls, got %d", ErrInvalidArgument, len(c.walls), len(walls))
	}
	copy(c.walls[:], walls)
	return nil
}

// WallsFromValues converts untyped wall flags, as decoded from JSON, into a
// slice accepted by SetWalls. Every element must be a bool.
func WallsFromValues(values []any) ([]bool, error) {
	if len(values) != len(Directions) {
		return nil, fmt.Errorf("%w: expected %d walls, got %d", ErrInvalidArgument, len(Directions), len(values))
	}
	walls := make([]bool, len(values))
	for i, v := range values {
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("%w: wall %d is %T, not bool", ErrInvalidArgument, i, v)
		}
		walls[i] = b
	}
	return walls, nil
}

// RemoveWall opens the wall facing d on this cell only.
func (c *Cell) RemoveWall(d Direction) error {
	if !d.Valid() {
		return fmt.Errorf("%w: wall index %d", ErrIndexOutOfRange, int(d))
	}
	c.walls[d] = false
	return nil
}

// RemoveWallBetween opens the wall shared by c and other on both cells.
// Nothing is mutated unless other is a distinct cell adjacent to c.
func (c *Cell) RemoveWallBetween(other *Cell) error {
	if other == nil || other == c {
		return fmt.Errorf("%w: cell %s cannot open a wall to itself", ErrInvalidArgument, c.pos)
	}
	if !slices.Contains(c.neighbors, other.pos) {
		return fmt.Errorf("%w: %s and %s", ErrNotAdjacent, c.pos, other.pos)
	}

	d, err := DirectionBetween(c.pos, other.pos)
	if err != nil {
		return err
	}
	c.walls[d] = false
	other.walls[d.Opposite()] = false
	return nil
}

// String renders the cell as "(row, column)".
func (c *Cell) String() string {
	return c.pos.String()
}
