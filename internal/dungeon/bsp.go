package dungeon

import (
	"fmt"

	"github.com/lawnchairsociety/dungeonforge/internal/rng"
)

// maxSplitDepth bounds BSP recursion. Five levels gives up to 32 leaves,
// plenty for any grid size this system targets.
const maxSplitDepth = 5

type splitDirection int

const (
	splitNone splitDirection = iota
	splitHorizontal
	splitVertical
)

// bspNode is one node of the partition tree. Children are exclusively owned
// by their parent; traversal is always top-down or bottom-up via return
// values, so no parent pointers are kept. A node is a leaf iff both children
// are nil, and only leaves hold a room.
type bspNode struct {
	x, y          int
	width, height int
	left, right   *bspNode
	room          *Room
	splitDir      splitDirection
}

func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

func (n *bspNode) bounds() *Rect {
	return &Rect{X: n.x, Y: n.y, Width: n.width, Height: n.height}
}

// representativeRoom returns the room for corridor routing: the node's own
// room on a leaf, otherwise the first room found in a descendant, left
// subtree preferred.
func (n *bspNode) representativeRoom() *Room {
	if n.isLeaf() {
		return n.room
	}
	if n.left != nil {
		if r := n.left.representativeRoom(); r != nil {
			return r
		}
	}
	if n.right != nil {
		return n.right.representativeRoom()
	}
	return nil
}

type bspGenerator struct {
	grid        Grid
	rng         *rng.SeededRandom
	log         *stepLog
	minRoomSize int
	maxRoomSize int
	rooms       []*Room
}

// generateBSP partitions the grid into a binary tree of regions, carves one
// room per leaf, and connects sibling subtrees with L-shaped corridors.
// Returns the room list; the hybrid generator reuses this unmodified.
func generateBSP(grid Grid, r *rng.SeededRandom, minRoomSize, maxRoomSize int, log *stepLog) []*Room {
	b := &bspGenerator{
		grid:        grid,
		rng:         r,
		log:         log,
		minRoomSize: minRoomSize,
		maxRoomSize: maxRoomSize,
	}

	root := &bspNode{width: grid.Width(), height: grid.Height()}
	b.split(root, 0)
	b.createRooms(root)
	b.connect(root)
	return b.rooms
}

// split recursively divides a node. A node may split along an axis only if
// both halves keep at least minSize = minRoomSize*2+2 along that axis.
func (b *bspGenerator) split(n *bspNode, depth int) {
	if depth >= maxSplitDepth {
		return
	}

	minSize := b.minRoomSize*2 + 2
	canHorizontal := n.height >= 2*minSize
	canVertical := n.width >= 2*minSize
	if !canHorizontal && !canVertical {
		return
	}

	horizontal := canHorizontal
	if canHorizontal && canVertical {
		horizontal = b.rng.Chance(0.5)
	}

	var line []Point
	if horizontal {
		offset := b.rng.Range(minSize, n.height-minSize)
		n.left = &bspNode{x: n.x, y: n.y, width: n.width, height: offset}
		n.right = &bspNode{x: n.x, y: n.y + offset, width: n.width, height: n.height - offset}
		n.splitDir = splitHorizontal
		line = make([]Point, n.width)
		for i := range line {
			line[i] = Point{X: n.x + i, Y: n.y + offset}
		}
	} else {
		offset := b.rng.Range(minSize, n.width-minSize)
		n.left = &bspNode{x: n.x, y: n.y, width: offset, height: n.height}
		n.right = &bspNode{x: n.x + offset, y: n.y, width: n.width - offset, height: n.height}
		n.splitDir = splitVertical
		line = make([]Point, n.height)
		for i := range line {
			line[i] = Point{X: n.x + offset, Y: n.y + i}
		}
	}

	dir := "vertically"
	if horizontal {
		dir = "horizontally"
	}
	b.log.record(StepSplit, fmt.Sprintf("Split %dx%d region at (%d,%d) %s", n.width, n.height, n.x, n.y, dir), b.grid, b.rooms, line, n.bounds())

	b.split(n.left, depth+1)
	b.split(n.right, depth+1)
}

// createRooms walks the tree post-order and carves a room into every leaf.
func (b *bspGenerator) createRooms(n *bspNode) {
	if n == nil {
		return
	}
	if !n.isLeaf() {
		b.createRooms(n.left)
		b.createRooms(n.right)
		return
	}

	room := b.makeRoom(n)
	n.room = room
	b.rooms = append(b.rooms, room)
	room.carve(b.grid)

	b.log.record(StepRoom, fmt.Sprintf("Carved room %d (%dx%d at %d,%d)", room.ID, room.Width, room.Height, room.X, room.Y), b.grid, b.rooms, nil, n.bounds())
}

// makeRoom draws room dimensions in [minRoomSize, maxRoomSize] clamped to
// the leaf's interior, then positions it with random margins. A leaf too
// small for minRoomSize gets a room occupying most of its area.
func (b *bspGenerator) makeRoom(n *bspNode) *Room {
	w := b.roomDimension(n.width)
	h := b.roomDimension(n.height)

	x := b.roomOffset(n.x, n.width, w)
	y := b.roomOffset(n.y, n.height, h)

	return NewRoom(len(b.rooms)+1, x, y, w, h)
}

func (b *bspGenerator) roomDimension(nodeDim int) int {
	max := nodeDim - 2
	if max > b.maxRoomSize {
		max = b.maxRoomSize
	}
	if max < 1 {
		max = 1
	}
	if max < b.minRoomSize {
		return max
	}
	return b.rng.Range(b.minRoomSize, max)
}

func (b *bspGenerator) roomOffset(nodePos, nodeDim, roomDim int) int {
	lo := nodePos + 1
	hi := nodePos + nodeDim - roomDim - 1
	if hi < lo {
		hi = lo
	}
	return b.rng.Range(lo, hi)
}

// connect walks the tree post-order, connecting grandchildren before joining
// the representative rooms of each interior node's two subtrees.
func (b *bspGenerator) connect(n *bspNode) {
	if n == nil || n.left == nil || n.right == nil {
		return
	}
	b.connect(n.left)
	b.connect(n.right)

	from := n.left.representativeRoom()
	to := n.right.representativeRoom()
	if from == nil || to == nil {
		return
	}

	carved := b.carveCorridor(from.Center(), to.Center())
	from.Connected = true
	to.Connected = true

	b.log.record(StepCorridor, fmt.Sprintf("Connected room %d to room %d", from.ID, to.ID), b.grid, b.rooms, carved, nil)
}

// carveCorridor cuts an L-shaped corridor between two points, choosing
// horizontal-first or vertical-first at random. Only wall tiles are
// overwritten, so room floors keep their shape.
func (b *bspGenerator) carveCorridor(from, to Point) []Point {
	var carved []Point
	if b.rng.Chance(0.5) {
		carved = append(carved, b.carveHorizontal(from.X, to.X, from.Y)...)
		carved = append(carved, b.carveVertical(from.Y, to.Y, to.X)...)
	} else {
		carved = append(carved, b.carveVertical(from.Y, to.Y, from.X)...)
		carved = append(carved, b.carveHorizontal(from.X, to.X, to.Y)...)
	}
	return carved
}

func (b *bspGenerator) carveHorizontal(x1, x2, y int) []Point {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	var carved []Point
	for x := x1; x <= x2; x++ {
		if b.grid.InBounds(x, y) && b.grid[y][x] == TileWall {
			b.grid[y][x] = TileCorridor
			carved = append(carved, Point{X: x, Y: y})
		}
	}
	return carved
}

func (b *bspGenerator) carveVertical(y1, y2, x int) []Point {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	var carved []Point
	for y := y1; y <= y2; y++ {
		if b.grid.InBounds(x, y) && b.grid[y][x] == TileWall {
			b.grid[y][x] = TileCorridor
			carved = append(carved, Point{X: x, Y: y})
		}
	}
	return carved
}
