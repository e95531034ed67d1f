package dungeon

// Room is a carved rectangular area. Coordinates always lie within grid
// bounds and the footprint is set to floor at creation time. Rooms are never
// mutated after creation except for the Connected flag.
type Room struct {
	ID        int  `json:"id"`
	X         int  `json:"x"`
	Y         int  `json:"y"`
	Width     int  `json:"width"`
	Height    int  `json:"height"`
	CenterX   int  `json:"centerX"`
	CenterY   int  `json:"centerY"`
	Connected bool `json:"connected"`
}

// NewRoom builds a room with its floor-divided center point derived from the
// bounds.
func NewRoom(id, x, y, width, height int) *Room {
	return &Room{
		ID:      id,
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		CenterX: x + width/2,
		CenterY: y + height/2,
	}
}

// Center returns the room's center point.
func (r *Room) Center() Point {
	return Point{X: r.CenterX, Y: r.CenterY}
}

// carve sets the room's footprint to floor.
func (r *Room) carve(g Grid) {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			g[y][x] = TileFloor
		}
	}
}

// snapshotRooms copies a room pointer list into a value slice for step
// records and results.
func snapshotRooms(rooms []*Room) []Room {
	if rooms == nil {
		return nil
	}
	out := make([]Room, len(rooms))
	for i, r := range rooms {
		out[i] = *r
	}
	return out
}
