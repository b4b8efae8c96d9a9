package i

import (
	"context"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// MazeService creates mazes and applies cell mutations to stored mazes.
type MazeService interface {
	Create(ctx context.Context, width, height int, algorithm string, seed int64) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*maze.Grid, error)
	CarvePassage(ctx context.Context, id uuid.UUID, from, to maze.CellPosition) error
	SetWalls(ctx context.Context, id uuid.UUID, pos maze.CellPosition, walls []bool) error
	RemoveWall(ctx context.Context, id uuid.UUID, pos maze.CellPosition, d maze.Direction) error
	SetVisited(ctx context.Context, id uuid.UUID, pos maze.CellPosition, visited bool) error
}
