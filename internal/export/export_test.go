package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/lawnchairsociety/dungeonforge/internal/dungeon"
)

func generateFixture(t *testing.T) *dungeon.Result {
	t.Helper()
	res, err := dungeon.Generate(dungeon.Request{
		Seed:        "export-fixture",
		Algorithm:   dungeon.AlgorithmBSP,
		Width:       40,
		Height:      30,
		MinRoomSize: 4,
		MaxRoomSize: 10,
	})
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	return res
}

func TestSnapshotShape(t *testing.T) {
	res := generateFixture(t)
	snap := NewSnapshot(res)

	if snap.Seed != "export-fixture" || snap.Algorithm != "bsp" {
		t.Errorf("snapshot header = (%q, %q)", snap.Seed, snap.Algorithm)
	}
	if snap.Width != 40 || snap.Height != 30 {
		t.Errorf("snapshot size = %dx%d, want 40x30", snap.Width, snap.Height)
	}
	if len(snap.Grid) != 30 {
		t.Fatalf("grid rows = %d, want 30", len(snap.Grid))
	}
	for y, row := range snap.Grid {
		if len(row) != 40 {
			t.Fatalf("row %d has %d cells, want 40", y, len(row))
		}
		for x, cell := range row {
			if len(cell) != 1 {
				t.Fatalf("cell (%d,%d) = %q, want single letter", x, y, cell)
			}
		}
	}
	if len(snap.Rooms) != len(res.Rooms) {
		t.Errorf("snapshot rooms = %d, want %d", len(snap.Rooms), len(res.Rooms))
	}
}

func TestSnapshotLetterEncoding(t *testing.T) {
	res := generateFixture(t)
	snap := NewSnapshot(res)

	for y, row := range res.Grid {
		for x, tile := range row {
			if snap.Grid[y][x] != tile.Letter() {
				t.Fatalf("cell (%d,%d) = %q, want %q", x, y, snap.Grid[y][x], tile.Letter())
			}
		}
	}
}

func TestSnapshotJSONRoundsThroughGenerically(t *testing.T) {
	res := generateFixture(t)
	data, err := NewSnapshot(res).JSON()
	if err != nil {
		t.Fatalf("JSON() failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	for _, key := range []string{"seed", "algorithm", "width", "height", "grid", "rooms"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("export missing %q key", key)
		}
	}
}

func TestASCIIRender(t *testing.T) {
	res := generateFixture(t)
	out := ASCII(res, true)

	lines := strings.Split(out, "\n")
	if len(lines) < 33 {
		t.Fatalf("ASCII output has %d lines, want header plus 30 map rows", len(lines))
	}

	// Map rows follow the 3-line header.
	for i := 3; i < 33; i++ {
		if len(lines[i]) != 40 {
			t.Fatalf("map row %d has width %d, want 40", i-3, len(lines[i]))
		}
	}

	if !strings.Contains(out, "@") {
		t.Error("rendered map has no start marker")
	}
	if !strings.Contains(out, ">") {
		t.Error("rendered map has no exit marker")
	}
	if !strings.Contains(out, "Legend:") {
		t.Error("legend requested but missing")
	}

	if plain := ASCII(res, false); strings.Contains(plain, "Legend:") {
		t.Error("legend rendered when not requested")
	}
}
