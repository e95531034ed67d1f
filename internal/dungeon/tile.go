// Package dungeon implements the procedural dungeon generation pipeline:
// BSP partitioning, cellular automata caves, drunkard's walk carving, a
// hybrid BSP+noise mode, and content placement. Every run is fully
// deterministic in its seed; the recorded step log supports step-by-step
// playback by a rendering client.
package dungeon

// Tile is one cell of the dungeon grid.
type Tile int

const (
	TileWall Tile = iota // default/background value
	TileFloor
	TileCorridor
	TileDoor
	TileTreasure
	TileEnemy
	TileExit
	TileStart
)

// String returns the tile's name.
func (t Tile) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	case TileCorridor:
		return "corridor"
	case TileDoor:
		return "door"
	case TileTreasure:
		return "treasure"
	case TileEnemy:
		return "enemy"
	case TileExit:
		return "exit"
	case TileStart:
		return "start"
	default:
		return "unknown"
	}
}

// Letter returns the first letter of the tile's name, the cell encoding used
// by the JSON export snapshot. The format is lossy ("enemy" and "exit" both
// map to "e") and is not meant for re-import.
func (t Tile) Letter() string {
	return t.String()[:1]
}

// MarshalJSON encodes the tile as its single-letter name so exported grids
// stay compact and human-auditable.
func (t Tile) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Letter() + `"`), nil
}

// Walkable reports whether the tile can be part of a path. Everything except
// wall is walkable: corridors, doors, and placed content all sit on carved
// floor.
func (t Tile) Walkable() bool {
	return t != TileWall
}
