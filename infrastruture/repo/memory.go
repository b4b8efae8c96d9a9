package repo

import (
	"context"
	"fmt"
	"sync"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

var _ i.MazeRepo = &MemoryMazeRepo{}

// MemoryMazeRepo keeps mazes in process memory as documents, so a grid
// returned by ByID never aliases the stored state.
type MemoryMazeRepo struct {
	mazes map[uuid.UUID]mazeDocument
	sync.RWMutex
}

// NewMemoryMazeRepo creates an empty MemoryMazeRepo.
func NewMemoryMazeRepo() *MemoryMazeRepo {
	return &MemoryMazeRepo{
		mazes: make(map[uuid.UUID]mazeDocument),
	}
}

// Save inserts or updates a maze.
func (r *MemoryMazeRepo) Save(_ context.Context, id uuid.UUID, g *maze.Grid) error {
	doc := toDocument(id, g)

	r.Lock()
	defer r.Unlock()
	r.mazes[id] = doc
	return nil
}

// ByID retrieves a maze by its ID.
func (r *MemoryMazeRepo) ByID(_ context.Context, id uuid.UUID) (*maze.Grid, error) {
	r.RLock()
	doc, ok := r.mazes[id]
	r.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", service.ErrMazeNotFound, id)
	}
	return fromDocument(doc)
}
