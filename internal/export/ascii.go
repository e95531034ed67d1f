package export

import (
	"fmt"
	"strings"

	"github.com/lawnchairsociety/dungeonforge/internal/dungeon"
)

// tileSymbol maps tiles to the single-character glyphs used by the ASCII
// renderer.
func tileSymbol(t dungeon.Tile) byte {
	switch t {
	case dungeon.TileWall:
		return '#'
	case dungeon.TileFloor:
		return '.'
	case dungeon.TileCorridor:
		return ','
	case dungeon.TileDoor:
		return '+'
	case dungeon.TileTreasure:
		return '$'
	case dungeon.TileEnemy:
		return 'M'
	case dungeon.TileExit:
		return '>'
	case dungeon.TileStart:
		return '@'
	default:
		return '?'
	}
}

// ASCII renders the final grid as a character map with a summary header and
// room list.
func ASCII(res *dungeon.Result, showLegend bool) string {
	var out strings.Builder

	out.WriteString(fmt.Sprintf("Dungeon (seed %q, algorithm %s, %dx%d)\n",
		res.Request.Seed, res.Request.Algorithm, res.Grid.Width(), res.Grid.Height()))
	out.WriteString(fmt.Sprintf("Rooms: %d  Floor: %.1f%%  Steps: %d\n",
		res.Stats.RoomCount, res.Stats.FloorFraction*100, len(res.Steps)))
	out.WriteString(strings.Repeat("=", 60) + "\n")

	for _, row := range res.Grid {
		line := make([]byte, len(row))
		for x, tile := range row {
			line[x] = tileSymbol(tile)
		}
		out.Write(line)
		out.WriteByte('\n')
	}

	if len(res.Rooms) > 0 {
		out.WriteString("\nRoom Details:\n")
		for _, room := range res.Rooms {
			marker := ""
			if room.Connected {
				marker = " [connected]"
			}
			out.WriteString(fmt.Sprintf("  room %-3d (%d,%d) %dx%d center (%d,%d)%s\n",
				room.ID, room.X, room.Y, room.Width, room.Height, room.CenterX, room.CenterY, marker))
		}
	}

	if showLegend {
		out.WriteString(legend())
	}

	return out.String()
}

func legend() string {
	return `
Legend:
  [#] Wall
  [.] Floor
  [,] Corridor
  [+] Door
  [$] Treasure
  [M] Enemy
  [>] Exit
  [@] Start
`
}
