package dungeon

import (
	"fmt"

	"github.com/lawnchairsociety/dungeonforge/internal/rng"
)

// exitCandidateScans bounds the farthest-exit search. This is a deliberate
// local-improvement heuristic, not a global farthest-point computation, and
// the bound is load-bearing for reproducibility of existing seeds.
const exitCandidateScans = 20

// minEnemyStartDistance keeps enemies out of the player's landing zone.
// Placements closer than this (Manhattan) are skipped, not retried.
const minEnemyStartDistance = 5

// placeContent marks a start tile, a far-away exit tile, and scattered
// treasure and enemy tiles on a finished grid.
func placeContent(grid Grid, rooms []*Room, r *rng.SeededRandom, log *stepLog) {
	pool := rng.Shuffle(r, grid.WalkableCells())
	if len(pool) < 2 {
		return
	}

	start := pool[0]
	exit := pool[1]
	pool = pool[2:]

	// Greedily improve the provisional exit against a bounded number of
	// further candidates, keeping whichever is Manhattan-farther from start.
	scans := exitCandidateScans
	if scans > len(pool) {
		scans = len(pool)
	}
	for i := 0; i < scans; i++ {
		if ManhattanDistance(pool[i], start) > ManhattanDistance(exit, start) {
			exit = pool[i]
		}
	}
	pool = pool[scans:]

	grid[start.Y][start.X] = TileStart
	grid[exit.Y][exit.X] = TileExit
	log.record(StepPlace, fmt.Sprintf("Placed start at (%d,%d) and exit at (%d,%d)", start.X, start.Y, exit.X, exit.Y), grid, rooms, []Point{start, exit}, nil)

	treasureCount := r.Range(3, 6)
	if limit := len(pool) * 2 / 100; limit < treasureCount {
		treasureCount = limit
	}
	var placed []Point
	for i := 0; i < treasureCount && len(pool) > 0; i++ {
		p := pool[0]
		pool = pool[1:]
		grid[p.Y][p.X] = TileTreasure
		placed = append(placed, p)
	}
	log.record(StepPlace, fmt.Sprintf("Placed %d treasure tiles", len(placed)), grid, rooms, placed, nil)

	enemyCount := r.Range(4, 8)
	if limit := len(pool) * 3 / 100; limit < enemyCount {
		enemyCount = limit
	}
	placed = nil
	for i := 0; i < enemyCount && len(pool) > 0; i++ {
		p := pool[0]
		pool = pool[1:]
		// Skip placements near the start; the slot is consumed so the
		// final enemy count may come in under the requested number.
		if ManhattanDistance(p, start) <= minEnemyStartDistance {
			continue
		}
		grid[p.Y][p.X] = TileEnemy
		placed = append(placed, p)
	}
	log.record(StepPlace, fmt.Sprintf("Placed %d enemy tiles", len(placed)), grid, rooms, placed, nil)
}
