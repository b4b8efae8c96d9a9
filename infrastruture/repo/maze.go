package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ i.MazeRepo = &MazeRepo{}

// cellDocument is the BSON form of a single cell.
type cellDocument struct {
	Row     int    `bson:"row"`
	Col     int    `bson:"col"`
	Visited bool   `bson:"visited"`
	Walls   []bool `bson:"walls"`
}

// mazeDocument is the BSON form of a maze; cells are stored row-major.
type mazeDocument struct {
	ID        uuid.UUID      `bson:"_id"`
	Width     int            `bson:"width"`
	Height    int            `bson:"height"`
	Cells     []cellDocument `bson:"cells"`
	UpdatedAt time.Time      `bson:"updatedAt"`
}

// MazeRepo handles the persistence of mazes.
type MazeRepo struct {
	collection *mongo.Collection
	timeout    time.Duration
}

// NewMazeRepo creates a new MazeRepo with the given MongoDB client, database name, and collection name.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string) *MazeRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &MazeRepo{
		collection: collection,
		timeout:    2 * time.Second,
	}
}

// Save inserts or updates a maze in the repository.
func (r *MazeRepo) Save(ctx context.Context, id uuid.UUID, g *maze.Grid) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	doc := toDocument(id, g)
	filter := bson.M{"_id": id}
	update := bson.M{
		"$set": bson.M{
			"width":     doc.Width,
			"height":    doc.Height,
			"cells":     doc.Cells,
			"updatedAt": time.Now(),
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}

	return nil
}

// ByID retrieves a maze by its ID.
func (r *MazeRepo) ByID(ctx context.Context, id uuid.UUID) (*maze.Grid, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var doc mazeDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", service.ErrMazeNotFound, id)
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}

	return fromDocument(doc)
}

func toDocument(id uuid.UUID, g *maze.Grid) mazeDocument {
	doc := mazeDocument{
		ID:     id,
		Width:  g.Width(),
		Height: g.Height(),
		Cells:  make([]cellDocument, 0, g.Width()*g.Height()),
	}
	g.Each(func(c *maze.Cell) {
		walls := c.Walls()
		doc.Cells = append(doc.Cells, cellDocument{
			Row:     c.GetRow(),
			Col:     c.GetCol(),
			Visited: c.IsVisited(),
			Walls:   walls[:],
		})
	})
	return doc
}

// fromDocument restores a grid and refuses documents that break the shared
// wall invariant.
func fromDocument(doc mazeDocument) (*maze.Grid, error) {
	g, err := maze.NewGrid(doc.Width, doc.Height)
	if err != nil {
		return nil, fmt.Errorf("maze %s: %w", doc.ID, err)
	}
	if len(doc.Cells) != doc.Width*doc.Height {
		return nil, fmt.Errorf("maze %s: %w: %d cells stored for %dx%d", doc.ID, maze.ErrInvalidGeometry, len(doc.Cells), doc.Width, doc.Height)
	}

	seen := make(map[maze.CellPosition]bool, len(doc.Cells))
	for _, cd := range doc.Cells {
		pos := maze.CellPosition{Row: cd.Row, Col: cd.Col}
		c, err := g.Cell(pos)
		if err != nil {
			return nil, fmt.Errorf("maze %s: %w", doc.ID, err)
		}
		if seen[pos] {
			return nil, fmt.Errorf("maze %s: %w: cell %s stored twice", doc.ID, maze.ErrInvalidGeometry, pos)
		}
		seen[pos] = true
		if err := c.SetWalls(cd.Walls); err != nil {
			return nil, fmt.Errorf("maze %s cell %s: %w", doc.ID, c, err)
		}
		if cd.Visited {
			c.MakeVisited()
		}
	}

	if err := g.Consistent(); err != nil {
		return nil, fmt.Errorf("maze %s: %w", doc.ID, err)
	}
	return g, nil
}
