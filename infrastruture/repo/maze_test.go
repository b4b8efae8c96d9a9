package repo

import (
	"testing"

	"github.com/beka-birhanu/vinom-maze/generator"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMazeDocument(t *testing.T) {
	t.Run("Restores a generated maze", func(t *testing.T) {
		g, err := maze.NewGrid(7, 4)
		require.NoError(t, err)
		require.NoError(t, generator.Generate(g, generator.Config{Algorithm: generator.AlgorithmWilson, Seed: 3}))
		require.NoError(t, g.SetVisited(maze.CellPosition{Row: 2, Col: 5}, true))

		id := uuid.New()
		doc := toDocument(id, g)
		assert.Equal(t, id, doc.ID)
		assert.Len(t, doc.Cells, 28)
		assert.Equal(t, 2, doc.Cells[19].Row)
		assert.Equal(t, 5, doc.Cells[19].Col)
		assert.True(t, doc.Cells[19].Visited)

		restored, err := fromDocument(doc)
		require.NoError(t, err)
		assert.Equal(t, g.String(), restored.String())
		c, err := restored.Cell(maze.CellPosition{Row: 2, Col: 5})
		require.NoError(t, err)
		assert.True(t, c.IsVisited())
	})

	t.Run("Rejects asymmetric walls", func(t *testing.T) {
		g, err := maze.NewGrid(2, 1)
		require.NoError(t, err)
		doc := toDocument(uuid.New(), g)
		doc.Cells[0].Walls = []bool{true, false, true, true}

		_, err = fromDocument(doc)
		assert.ErrorIs(t, err, maze.ErrAsymmetricWalls)
	})

	t.Run("Rejects malformed cells", func(t *testing.T) {
		g, err := maze.NewGrid(2, 2)
		require.NoError(t, err)

		doc := toDocument(uuid.New(), g)
		doc.Cells[3].Walls = []bool{true, true}
		_, err = fromDocument(doc)
		assert.ErrorIs(t, err, maze.ErrInvalidArgument)

		doc = toDocument(uuid.New(), g)
		doc.Cells = doc.Cells[:3]
		_, err = fromDocument(doc)
		assert.ErrorIs(t, err, maze.ErrInvalidGeometry)

		doc = toDocument(uuid.New(), g)
		doc.Cells[1].Row = 5
		_, err = fromDocument(doc)
		assert.ErrorIs(t, err, maze.ErrIndexOutOfRange)

		doc = toDocument(uuid.New(), g)
		doc.Cells[1].Row, doc.Cells[1].Col = 0, 0
		_, err = fromDocument(doc)
		assert.ErrorIs(t, err, maze.ErrInvalidGeometry)

		doc = toDocument(uuid.New(), g)
		doc.Width = 0
		_, err = fromDocument(doc)
		assert.ErrorIs(t, err, maze.ErrInvalidGeometry)
	})
}
