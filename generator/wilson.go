package generator

import (
	"math/rand"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// wilson builds a uniform spanning tree with loop-erased random walks. A
// cell's visited flag means it is already part of the tree.
func wilson(g *maze.Grid, rng *rand.Rand) error {
	order := make([]maze.CellPosition, 0, g.Width()*g.Height())
	g.Each(func(c *maze.Cell) {
		order = append(order, c.Position())
	})
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	root, err := g.Cell(order[0])
	if err != nil {
		return err
	}
	root.MakeVisited()

	for _, start := range order[1:] {
		cell, err := g.Cell(start)
		if err != nil {
			return err
		}
		if cell.IsVisited() {
			continue
		}

		exits, err := randomWalk(g, cell, rng)
		if err != nil {
			return err
		}

		// Following the last exit of every cell erases the loops of the walk.
		pos := start
		for {
			cell, err := g.Cell(pos)
			if err != nil {
				return err
			}
			if cell.IsVisited() {
				break
			}
			cell.MakeVisited()
			next := exits[pos]
			if err := g.RemoveWallBetween(pos, next); err != nil {
				return err
			}
			pos = next
		}
	}

	return nil
}

// randomWalk wanders from start until it reaches the tree and returns the
// last step taken out of every cell it crossed.
func randomWalk(g *maze.Grid, start *maze.Cell, rng *rand.Rand) (map[maze.CellPosition]maze.CellPosition, error) {
	exits := make(map[maze.CellPosition]maze.CellPosition)
	cell := start

	for {
		next := randomNeighbor(cell, rng)
		exits[cell.Position()] = next

		nextCell, err := g.Cell(next)
		if err != nil {
			return nil, err
		}
		if nextCell.IsVisited() {
			return exits, nil
		}
		cell = nextCell
	}
}
