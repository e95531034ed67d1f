package dungeon

import (
	"fmt"
	"math"

	"github.com/lawnchairsociety/dungeonforge/internal/rng"
)

// generateDrunkard carves floor with a single random walker starting at grid
// center. The walker carves any wall cell it stands on, then moves to a
// random axis-aligned neighbor; moves that would leave the interior are
// rejected and the walker stays put that tick. Carving stops once the target
// floor fraction is reached, or at stepLimit ticks for pathological targets
// that never converge. A stepLimit of zero means totalTiles * 10.
func generateDrunkard(grid Grid, r *rng.SeededRandom, targetFloorPercent float64, stepLimit int, log *stepLog) []*Room {
	width := grid.Width()
	height := grid.Height()

	interior := (width - 2) * (height - 2)
	// Ceil, not truncate: the carved fraction must reach the target, so a
	// fractional tile count rounds up to the next whole tile.
	targetFloors := int(math.Ceil(float64(interior) * targetFloorPercent))
	if stepLimit <= 0 {
		stepLimit = width * height * 10
	}

	x, y := width/2, height/2
	floors := 0
	steps := 0

	for floors < targetFloors && steps < stepLimit {
		if grid[y][x] == TileWall {
			grid[y][x] = TileFloor
			floors++
		}

		nx, ny := x, y
		switch r.Range(0, 3) {
		case 0:
			ny--
		case 1:
			nx++
		case 2:
			ny++
		case 3:
			nx--
		}
		if grid.Interior(nx, ny) {
			x, y = nx, ny
		}

		steps++
		if steps%50 == 0 {
			log.record(StepCarve, fmt.Sprintf("Walker carved %d of %d floor tiles", floors, targetFloors), grid, nil, []Point{{X: x, Y: y}}, nil)
		}
	}

	// The whole carved interior counts as one open region.
	room := NewRoom(1, 1, 1, width-2, height-2)
	room.Connected = true
	rooms := []*Room{room}

	log.record(StepCarve, fmt.Sprintf("Walk finished: %d floor tiles in %d steps", floors, steps), grid, rooms, nil, nil)
	return rooms
}
