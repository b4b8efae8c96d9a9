package i

import (
	"context"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// MazeRepo defines the interface for maze persistence operations.
type MazeRepo interface {
	// Save inserts or updates the maze with the given ID.
	Save(ctx context.Context, id uuid.UUID, g *maze.Grid) error

	// ByID restores a maze by its ID.
	// Returns an error wrapping ErrMazeNotFound if no maze has that ID.
	ByID(ctx context.Context, id uuid.UUID) (*maze.Grid, error)
}
