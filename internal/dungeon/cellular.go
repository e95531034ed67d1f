package dungeon

import (
	"fmt"

	"github.com/lawnchairsociety/dungeonforge/internal/rng"
)

// generateCellular carves a cave system: random interior seeding, repeated
// majority-rule smoothing, then a flood fill that keeps only the largest
// connected floor region. The kept region's bounding box becomes a single
// synthetic room.
func generateCellular(grid Grid, r *rng.SeededRandom, fillProbability float64, iterations int, log *stepLog) []*Room {
	width := grid.Width()
	height := grid.Height()

	// Seed interior cells; the outer border stays wall.
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			if r.Chance(fillProbability) {
				grid[y][x] = TileFloor
			}
		}
	}
	log.record(StepCarve, fmt.Sprintf("Seeded interior with %.0f%% floor", fillProbability*100), grid, nil, nil, nil)

	for i := 0; i < iterations; i++ {
		smoothOnce(grid)
		log.record(StepSmooth, fmt.Sprintf("Smoothing pass %d of %d", i+1, iterations), grid, nil, nil, nil)
	}

	room := keepLargestRegion(grid)
	var rooms []*Room
	if room != nil {
		rooms = append(rooms, room)
	}
	log.record(StepConnect, "Kept largest connected region", grid, rooms, nil, nil)

	return rooms
}

// smoothOnce applies one generation of the smoothing rule: a cell with five
// or more wall neighbors (out-of-bounds counts as wall) becomes wall,
// anything else becomes floor. The next grid is computed in full from the
// previous generation, not in place.
func smoothOnce(grid Grid) {
	width := grid.Width()
	height := grid.Height()
	next := NewGrid(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !grid.Interior(x, y) {
				next[y][x] = TileWall
				continue
			}
			if wallNeighbors(grid, x, y) >= 5 {
				next[y][x] = TileWall
			} else {
				next[y][x] = TileFloor
			}
		}
	}

	for y := range grid {
		copy(grid[y], next[y])
	}
}

// wallNeighbors counts wall or out-of-bounds cells in the 3x3 Moore
// neighborhood around (x, y).
func wallNeighbors(grid Grid, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !grid.InBounds(nx, ny) || grid[ny][nx] == TileWall {
				count++
			}
		}
	}
	return count
}

// keepLargestRegion flood-fills every 4-connected floor component, keeps the
// largest, and converts all other floor cells back to wall. Returns a
// synthetic room spanning the kept region's bounding box, or nil if no floor
// survived.
func keepLargestRegion(grid Grid) *Room {
	width := grid.Width()
	height := grid.Height()
	visited := make([][]bool, height)
	for y := range visited {
		visited[y] = make([]bool, width)
	}

	var largest []Point
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if grid[y][x] != TileFloor || visited[y][x] {
				continue
			}
			region := floodFill(grid, visited, x, y)
			if len(region) > len(largest) {
				largest = region
			}
		}
	}

	if len(largest) == 0 {
		return nil
	}

	keep := make(map[Point]bool, len(largest))
	for _, p := range largest {
		keep[p] = true
	}
	minX, minY := width, height
	maxX, maxY := 0, 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if grid[y][x] != TileFloor {
				continue
			}
			if !keep[Point{X: x, Y: y}] {
				grid[y][x] = TileWall
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	room := NewRoom(1, minX, minY, maxX-minX+1, maxY-minY+1)
	room.Connected = true
	return room
}

// floodFill collects the 4-connected floor region containing (x, y) with an
// iterative stack walk.
func floodFill(grid Grid, visited [][]bool, x, y int) []Point {
	var region []Point
	stack := []Point{{X: x, Y: y}}
	visited[y][x] = true

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		region = append(region, p)

		for _, d := range [4]Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}} {
			nx, ny := p.X+d.X, p.Y+d.Y
			if !grid.InBounds(nx, ny) || visited[ny][nx] || grid[ny][nx] != TileFloor {
				continue
			}
			visited[ny][nx] = true
			stack = append(stack, Point{X: nx, Y: ny})
		}
	}
	return region
}
