// Package export turns generation results into their two outward formats:
// the JSON snapshot shared with the browser tooling, and the ASCII map the
// CLI prints. Both are lossy, human-auditable views; neither is meant for
// re-import.
package export

import (
	"encoding/json"

	"github.com/lawnchairsociety/dungeonforge/internal/dungeon"
)

// Snapshot is the JSON export format. Grid cells carry the first letter of
// their tile name.
type Snapshot struct {
	Seed      string         `yaml:"seed" json:"seed"`
	Algorithm string         `yaml:"algorithm" json:"algorithm"`
	Width     int            `yaml:"width" json:"width"`
	Height    int            `yaml:"height" json:"height"`
	Grid      [][]string     `yaml:"grid" json:"grid"`
	Rooms     []dungeon.Room `yaml:"rooms" json:"rooms"`
}

// NewSnapshot builds the export view of a result.
func NewSnapshot(res *dungeon.Result) *Snapshot {
	grid := make([][]string, res.Grid.Height())
	for y, row := range res.Grid {
		grid[y] = make([]string, len(row))
		for x, tile := range row {
			grid[y][x] = tile.Letter()
		}
	}
	return &Snapshot{
		Seed:      res.Request.Seed,
		Algorithm: string(res.Request.Algorithm),
		Width:     res.Grid.Width(),
		Height:    res.Grid.Height(),
		Grid:      grid,
		Rooms:     res.Rooms,
	}
}

// JSON renders the snapshot as indented JSON.
func (s *Snapshot) JSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
