package generator

import (
	"math/rand"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// backtracker carves a maze with an iterative depth-first search.
func backtracker(g *maze.Grid, rng *rand.Rand) error {
	start, err := g.Cell(maze.CellPosition{Row: rng.Intn(g.Height()), Col: rng.Intn(g.Width())})
	if err != nil {
		return err
	}
	start.MakeVisited()
	stack := []*maze.Cell{start}

	for len(stack) > 0 {
		cell := stack[len(stack)-1]

		var unvisited []*maze.Cell
		for _, pos := range cell.Neighbors() {
			n, err := g.Cell(pos)
			if err != nil {
				return err
			}
			if !n.IsVisited() {
				unvisited = append(unvisited, n)
			}
		}

		if len(unvisited) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := unvisited[rng.Intn(len(unvisited))]
		if err := g.RemoveWallBetween(cell.Position(), next.Position()); err != nil {
			return err
		}
		next.MakeVisited()
		stack = append(stack, next)
	}

	return nil
}
