package dungeon

import (
	"fmt"

	"github.com/lawnchairsociety/dungeonforge/internal/noise"
	"github.com/lawnchairsociety/dungeonforge/internal/rng"
)

// hybridNoiseThreshold is the Perlin sample above which a wall tile erodes.
const hybridNoiseThreshold = 0.4

// generateHybrid runs the BSP generator unmodified, then erodes interior
// wall tiles where the noise field is strong. Erosion requires 8-neighbor
// adjacency to existing floor or corridor, so it only ever grows open area
// outward from carved space; the whole layout stays one 8-connected region.
func generateHybrid(grid Grid, r *rng.SeededRandom, minRoomSize, maxRoomSize int, log *stepLog) []*Room {
	rooms := generateBSP(grid, r, minRoomSize, maxRoomSize, log)

	perlin := noise.NewPerlin(r)
	eroded := 0
	for y := 1; y < grid.Height()-1; y++ {
		for x := 1; x < grid.Width()-1; x++ {
			if grid[y][x] != TileWall {
				continue
			}
			if perlin.Noise2D(float64(x)*0.1, float64(y)*0.1) <= hybridNoiseThreshold {
				continue
			}
			if touchesOpenSpace(grid, x, y) {
				grid[y][x] = TileFloor
				eroded++
			}
		}
	}

	log.record(StepSmooth, fmt.Sprintf("Eroded %d wall tiles with noise field", eroded), grid, rooms, nil, nil)
	return rooms
}

// touchesOpenSpace reports whether any of the 8 neighbors of (x, y) is floor
// or corridor.
func touchesOpenSpace(grid Grid, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !grid.InBounds(nx, ny) {
				continue
			}
			if grid[ny][nx] == TileFloor || grid[ny][nx] == TileCorridor {
				return true
			}
		}
	}
	return false
}
