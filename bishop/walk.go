package bishop

import (
	"github.com/katalvlaran/bishopart/board"
	"github.com/katalvlaran/bishopart/step"
)

// Walk validates cfg, decodes its data and moves the bishop across the board.
//
// Steps:
//  1. Empty board: return an empty Result.
//  2. Single cell: the cell is both start and end; no moves are simulated.
//  3. Otherwise start at Home (or the centre) and apply every decoded
//     direction, clamping each axis at the board edge.
//
// Complexity: O(steps) time and memory.
func Walk(cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	b, _ := board.New(cfg.Columns, cfg.Rows)

	return walk(cfg, b), nil
}

// walk runs the simulation on an already validated configuration.
func walk(cfg Config, b *board.Board) Result {
	switch b.Cells() {
	case 0:
		return Result{Visited: []int{}}
	case 1:
		return Result{Visited: []int{}, Start: 0, Current: 0}
	}

	start := cfg.home(b)
	moves := step.Decode(cfg.Data, cfg.Steps)
	visited := make([]int, 0, len(moves))

	pos := start
	for _, d := range moves {
		pos = b.Move(pos, d)
		visited = append(visited, pos)
	}

	return Result{Visited: visited, Start: start, Current: pos}
}

// Counts tallies how often each index appears in r.Visited.
// The start cell is counted only when a move lands on it.
func (r Result) Counts() map[int]int {
	counts := make(map[int]int, len(r.Visited))
	for _, idx := range r.Visited {
		counts[idx]++
	}

	return counts
}
