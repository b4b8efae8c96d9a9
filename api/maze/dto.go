// Package mazeapi exposes mazes and their cells over HTTP.
package mazeapi

import "github.com/beka-birhanu/vinom-maze/maze"

// CreateMazeRequest represents a request to generate a new maze.
type CreateMazeRequest struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Algorithm string `json:"algorithm"`
	Seed      int64  `json:"seed"`
}

// CreateMazeResponse carries the ID of a created maze.
type CreateMazeResponse struct {
	ID string `json:"id"`
}

// Position is a cell coordinate.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// PassageRequest asks to open the wall between two adjacent cells.
type PassageRequest struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// WallsRequest overwrites a cell's walls. Elements are left untyped so that
// non-boolean values can be reported instead of failing JSON decoding.
type WallsRequest struct {
	Walls []any `json:"walls" binding:"required"`
}

// VisitedRequest sets a cell's visited mark.
type VisitedRequest struct {
	Visited *bool `json:"visited" binding:"required"`
}

// CellResponse describes one cell.
type CellResponse struct {
	Row                 int        `json:"row"`
	Column              int        `json:"column"`
	Visited             bool       `json:"visited"`
	Walls               [4]bool    `json:"walls"`
	Neighbors           []Position `json:"neighbors"`
	AccessibleNeighbors []Position `json:"accessible_neighbors"`
}

// MazeResponse describes a maze and all of its cells in row-major order.
type MazeResponse struct {
	ID     string         `json:"id"`
	Width  int            `json:"width"`
	Height int            `json:"height"`
	Cells  []CellResponse `json:"cells"`
}

func (p Position) cellPosition() maze.CellPosition {
	return maze.CellPosition{Row: p.Row, Col: p.Col}
}

func toPositions(positions []maze.CellPosition) []Position {
	result := make([]Position, 0, len(positions))
	for _, p := range positions {
		result = append(result, Position{Row: p.Row, Col: p.Col})
	}
	return result
}

func toCellResponse(c *maze.Cell) CellResponse {
	return CellResponse{
		Row:                 c.GetRow(),
		Column:              c.GetCol(),
		Visited:             c.IsVisited(),
		Walls:               c.Walls(),
		Neighbors:           toPositions(c.Neighbors()),
		AccessibleNeighbors: toPositions(c.AccessibleNeighbors()),
	}
}
