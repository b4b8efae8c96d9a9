package maze

import (
	"fmt"
	"strings"
)

// Direction indexes a cell's walls. The numeric value is the wall index.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists every direction in wall index order.
var Directions = [4]Direction{North, East, South, West}

var (
	directionOffsets = [4]CellPosition{
		North: {Row: -1, Col: 0},
		East:  {Row: 0, Col: 1},
		South: {Row: 1, Col: 0},
		West:  {Row: 0, Col: -1},
	}
	directionNames = [4]string{
		North: "North",
		East:  "East",
		South: "South",
		West:  "West",
	}
)

// Valid reports whether d is one of the four compass directions.
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

// Offset returns the row and column delta of a step in direction d.
func (d Direction) Offset() CellPosition {
	if !d.Valid() {
		return CellPosition{}
	}
	return directionOffsets[d]
}

// Opposite returns the direction facing back, e.g. Opposite(East) == West.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection parses a direction name, ignoring case.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if strings.EqualFold(s, directionNames[d]) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown direction %q", ErrInvalidArgument, s)
}

// DirectionBetween returns the direction of the step leading from one
// position to an orthogonally adjacent one.
func DirectionBetween(from, to CellPosition) (Direction, error) {
	delta := CellPosition{Row: to.Row - from.Row, Col: to.Col - from.Col}
	for _, d := range Directions {
		if directionOffsets[d] == delta {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %s and %s", ErrNotAdjacent, from, to)
}
