package service

import (
	"context"
	"fmt"

	"github.com/beka-birhanu/vinom-maze/generator"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

const (
	defaultLockPrefix   = "maze:lock"
	defaultMaxDimension = 50
	lockKeyFmt          = "%s:%s"
)

var _ i.MazeService = &MazeService{}

type Options struct {
	LockPrefix   string
	MaxDimension int
}

// MazeService applies cell operations to stored mazes. Every mutation holds
// the maze's lock from load to save so that a single writer touches a maze at
// a time.
type MazeService struct {
	repo   i.MazeRepo
	locker i.Locker
	logger i.Logger
	opts   *Options
}

func NewMazeService(repo i.MazeRepo, locker i.Locker, logger i.Logger, opts *Options) (*MazeService, error) {
	if opts == nil {
		opts = &Options{}
	}

	if opts.LockPrefix == "" {
		opts.LockPrefix = defaultLockPrefix
	}

	if opts.MaxDimension <= 0 {
		opts.MaxDimension = defaultMaxDimension
	}

	return &MazeService{
		repo:   repo,
		locker: locker,
		logger: logger,
		opts:   opts,
	}, nil
}

// Create generates and stores a new maze.
func (ms *MazeService) Create(ctx context.Context, width, height int, algorithm string, seed int64) (uuid.UUID, error) {
	if max(width, height) > ms.opts.MaxDimension {
		return uuid.Nil, fmt.Errorf("%w: %dx%d exceeds %d", ErrDimensionTooLarge, width, height, ms.opts.MaxDimension)
	}

	alg, err := generator.ParseAlgorithm(algorithm)
	if err != nil {
		return uuid.Nil, err
	}

	grid, err := maze.NewGrid(width, height)
	if err != nil {
		return uuid.Nil, err
	}

	if err := generator.Generate(grid, generator.Config{Algorithm: alg, Seed: seed}); err != nil {
		ms.logger.Error(fmt.Sprintf("Generating %dx%d maze with %s: %s", width, height, alg, err))
		return uuid.Nil, err
	}

	id := uuid.New()
	if err := ms.repo.Save(ctx, id, grid); err != nil {
		ms.logger.Error(fmt.Sprintf("Failed to save maze %s: %s", id, err))
		return uuid.Nil, err
	}

	ms.logger.Info(fmt.Sprintf("Maze created: ID=%s Size=%dx%d Algorithm=%s", id, width, height, alg))
	return id, nil
}

// Get loads a maze.
func (ms *MazeService) Get(ctx context.Context, id uuid.UUID) (*maze.Grid, error) {
	return ms.repo.ByID(ctx, id)
}

// CarvePassage opens the wall shared by two adjacent cells.
func (ms *MazeService) CarvePassage(ctx context.Context, id uuid.UUID, from, to maze.CellPosition) error {
	return ms.update(ctx, id, func(g *maze.Grid) error {
		return g.RemoveWallBetween(from, to)
	})
}

// SetWalls overwrites the walls of a cell. The result must keep every shared
// wall consistent with the neighboring cell, otherwise nothing is saved.
func (ms *MazeService) SetWalls(ctx context.Context, id uuid.UUID, pos maze.CellPosition, walls []bool) error {
	return ms.update(ctx, id, func(g *maze.Grid) error {
		return g.SetWalls(pos, walls)
	})
}

// RemoveWall opens one wall of a cell. Like SetWalls it is rejected when it
// would leave the neighbor's matching wall standing.
func (ms *MazeService) RemoveWall(ctx context.Context, id uuid.UUID, pos maze.CellPosition, d maze.Direction) error {
	return ms.update(ctx, id, func(g *maze.Grid) error {
		return g.RemoveWall(pos, d)
	})
}

// SetVisited sets the visited mark of a cell.
func (ms *MazeService) SetVisited(ctx context.Context, id uuid.UUID, pos maze.CellPosition, visited bool) error {
	return ms.update(ctx, id, func(g *maze.Grid) error {
		return g.SetVisited(pos, visited)
	})
}

// update runs fn on the stored maze under its lock and saves the result.
func (ms *MazeService) update(ctx context.Context, id uuid.UUID, fn func(*maze.Grid) error) error {
	unlock, err := ms.locker.Lock(ctx, ms.lockKey(id))
	if err != nil {
		ms.logger.Error(fmt.Sprintf("Obtaining lock for maze %s: %s", id, err))
		return err
	}
	defer unlock()

	grid, err := ms.repo.ByID(ctx, id)
	if err != nil {
		return err
	}

	if err := fn(grid); err != nil {
		return err
	}

	if err := grid.Consistent(); err != nil {
		ms.logger.Warning(fmt.Sprintf("Rejected update of maze %s: %s", id, err))
		return err
	}

	if err := ms.repo.Save(ctx, id, grid); err != nil {
		ms.logger.Error(fmt.Sprintf("Failed to save maze %s: %s", id, err))
		return err
	}

	return nil
}

func (ms *MazeService) lockKey(id uuid.UUID) string {
	return fmt.Sprintf(lockKeyFmt, ms.opts.LockPrefix, id)
}
