/*
Package generator carves perfect mazes into a maze.Grid.

Generators only use the public cell API: they read neighbors, use the visited
flag as traversal state and open passages with Grid.RemoveWallBetween. Every
visited flag is cleared again once generation completes.
*/
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// Algorithm names a maze generation algorithm.
type Algorithm string

const (
	AlgorithmWilson      Algorithm = "wilson"
	AlgorithmBacktracker Algorithm = "backtracker"
)

var ErrUnknownAlgorithm = errors.New("unknown generation algorithm")

// Config selects the algorithm and its random source.
type Config struct {
	Algorithm Algorithm // Defaults to AlgorithmWilson.
	Seed      int64     // Optional (0 = time based)
}

// Generate carves a perfect maze into g, which is expected to be fully walled.
func Generate(g *maze.Grid, cfg Config) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var err error
	switch cfg.Algorithm {
	case AlgorithmWilson, "":
		err = wilson(g, rng)
	case AlgorithmBacktracker:
		err = backtracker(g, rng)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, cfg.Algorithm)
	}

	g.ResetVisited()
	return err
}

// ParseAlgorithm validates an algorithm name. The empty name selects the default.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch a := Algorithm(name); a {
	case AlgorithmWilson, AlgorithmBacktracker:
		return a, nil
	case "":
		return AlgorithmWilson, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

func randomNeighbor(c *maze.Cell, rng *rand.Rand) maze.CellPosition {
	neighbors := c.Neighbors()
	return neighbors[rng.Intn(len(neighbors))]
}
