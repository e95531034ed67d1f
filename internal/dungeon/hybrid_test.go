package dungeon

import (
	"testing"

	"github.com/lawnchairsociety/dungeonforge/internal/rng"
)

func TestHybridOnlyGrowsFromExistingFloor(t *testing.T) {
	const seed = "hybrid-grow"
	const width, height = 50, 40

	// Run plain BSP and hybrid from the same seed: hybrid's split, room and
	// corridor draws are identical, so any difference is noise erosion.
	bspGrid := NewGrid(width, height)
	generateBSP(bspGrid, rng.NewFromString(seed), 4, 10, &stepLog{})

	hybridGrid := NewGrid(width, height)
	generateHybrid(hybridGrid, rng.NewFromString(seed), 4, 10, &stepLog{})

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if bspGrid[y][x].Walkable() && !hybridGrid[y][x].Walkable() {
				t.Fatalf("hybrid removed open space at (%d,%d)", x, y)
			}
		}
	}
}

func TestHybridConnectivity(t *testing.T) {
	for _, seed := range []string{"hybrid1", "hybrid2", "999"} {
		res, err := Generate(Request{Seed: seed, Algorithm: AlgorithmHybrid, Width: 50, Height: 40, MinRoomSize: 4, MaxRoomSize: 10})
		if err != nil {
			t.Fatalf("seed %q: Generate() failed: %v", seed, err)
		}
		if len(res.Rooms) < 2 {
			t.Fatalf("seed %q: expected multiple rooms", seed)
		}

		reachable := walkableComponent(res.Grid, res.Rooms[0].Center())
		for _, room := range res.Rooms {
			if !reachable[room.Center()] {
				t.Errorf("seed %q: room %d center unreachable after erosion", seed, room.ID)
			}
		}
	}
}

func TestHybridNoDisconnectedPockets(t *testing.T) {
	res, err := Generate(Request{Seed: "pockets", Algorithm: AlgorithmHybrid, Width: 50, Height: 40, MinRoomSize: 4, MaxRoomSize: 10})
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	// Eroded tiles may touch open space only diagonally, so connectivity
	// here is 8-connected rather than the corridor test's 4-connected walk.
	cells := res.Grid.WalkableCells()
	g := res.Grid
	visited := map[Point]bool{cells[0]: true}
	stack := []Point{cells[0]}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				n := Point{X: p.X + dx, Y: p.Y + dy}
				if !g.InBounds(n.X, n.Y) || visited[n] || !g[n.Y][n.X].Walkable() {
					continue
				}
				visited[n] = true
				stack = append(stack, n)
			}
		}
	}
	if len(visited) != len(cells) {
		t.Errorf("%d walkable cells but only %d reachable; erosion created a pocket", len(cells), len(visited))
	}
}

func TestHybridBorderIntact(t *testing.T) {
	res, err := Generate(Request{Seed: "hborder", Algorithm: AlgorithmHybrid, Width: 40, Height: 30})
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	g := res.Grid
	for x := 0; x < g.Width(); x++ {
		if g[0][x] != TileWall || g[g.Height()-1][x] != TileWall {
			t.Fatalf("erosion touched the border in column %d", x)
		}
	}
	for y := 0; y < g.Height(); y++ {
		if g[y][0] != TileWall || g[y][g.Width()-1] != TileWall {
			t.Fatalf("erosion touched the border in row %d", y)
		}
	}
}
