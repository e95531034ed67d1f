package dungeon

import (
	"errors"
	"fmt"
	"time"

	"github.com/lawnchairsociety/dungeonforge/internal/rng"
)

// ErrUnknownAlgorithm is returned when a request names an algorithm the
// pipeline does not implement.
var ErrUnknownAlgorithm = errors.New("unknown generation algorithm")

// Algorithm selects which generator a run uses.
type Algorithm string

const (
	AlgorithmBSP      Algorithm = "bsp"
	AlgorithmCellular Algorithm = "cellular"
	AlgorithmDrunkard Algorithm = "drunkard"
	AlgorithmHybrid   Algorithm = "hybrid"
)

// Valid reports whether the algorithm is one of the implemented modes.
func (a Algorithm) Valid() bool {
	switch a {
	case AlgorithmBSP, AlgorithmCellular, AlgorithmDrunkard, AlgorithmHybrid:
		return true
	}
	return false
}

// Request holds one generation run's inputs. The seed string accepts either
// a decimal number or free text (hashed); parameters left at zero take the
// defaults below. Callers are expected to clamp slider-style inputs to sane
// ranges before calling in.
type Request struct {
	Seed      string    `json:"seed"`
	Algorithm Algorithm `json:"algorithm"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`

	// BSP and hybrid.
	MinRoomSize int `json:"minRoomSize,omitempty"`
	MaxRoomSize int `json:"maxRoomSize,omitempty"`

	// Cellular automata.
	FillProbability float64 `json:"fillProbability,omitempty"`
	Iterations      int     `json:"iterations,omitempty"`

	// Drunkard's walk. WalkStepLimit of zero means width*height*10.
	TargetFloorPercent float64 `json:"targetFloorPercent,omitempty"`
	WalkStepLimit      int     `json:"walkStepLimit,omitempty"`
}

// DefaultRequest returns a request with the standard parameter set.
func DefaultRequest() Request {
	return Request{
		Algorithm:          AlgorithmBSP,
		Width:              50,
		Height:             40,
		MinRoomSize:        4,
		MaxRoomSize:        10,
		FillProbability:    0.45,
		Iterations:         4,
		TargetFloorPercent: 0.4,
	}
}

// withDefaults fills unset parameters from DefaultRequest.
func (r Request) withDefaults() Request {
	def := DefaultRequest()
	if r.Algorithm == "" {
		r.Algorithm = def.Algorithm
	}
	if r.Width <= 0 {
		r.Width = def.Width
	}
	if r.Height <= 0 {
		r.Height = def.Height
	}
	if r.MinRoomSize <= 0 {
		r.MinRoomSize = def.MinRoomSize
	}
	if r.MaxRoomSize <= 0 {
		r.MaxRoomSize = def.MaxRoomSize
	}
	if r.FillProbability <= 0 {
		r.FillProbability = def.FillProbability
	}
	if r.Iterations <= 0 {
		r.Iterations = def.Iterations
	}
	if r.TargetFloorPercent <= 0 {
		r.TargetFloorPercent = def.TargetFloorPercent
	}
	return r
}

// Stats summarizes a finished run.
type Stats struct {
	RoomCount     int           `json:"roomCount"`
	FloorFraction float64       `json:"floorFraction"`
	Elapsed       time.Duration `json:"elapsed"`
}

// Result is the output of one generation run: the final grid, the room
// list, and the ordered step log for playback. The caller owns all of it;
// nothing is shared with later runs.
type Result struct {
	Request Request          `json:"request"`
	Grid    Grid             `json:"grid"`
	Rooms   []Room           `json:"rooms"`
	Steps   []GenerationStep `json:"steps"`
	Stats   Stats            `json:"stats"`
}

// Generate runs the full pipeline: build the seeded generator, run exactly
// one of the four algorithms, then place content. The run is synchronous and
// single-threaded; two calls with the same request produce bit-identical
// results.
func Generate(req Request) (*Result, error) {
	req = req.withDefaults()
	if !req.Algorithm.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, req.Algorithm)
	}

	started := time.Now()
	r := rng.NewFromString(req.Seed)
	grid := NewGrid(req.Width, req.Height)
	log := &stepLog{}

	var rooms []*Room
	switch req.Algorithm {
	case AlgorithmBSP:
		rooms = generateBSP(grid, r, req.MinRoomSize, req.MaxRoomSize, log)
	case AlgorithmCellular:
		rooms = generateCellular(grid, r, req.FillProbability, req.Iterations, log)
	case AlgorithmDrunkard:
		rooms = generateDrunkard(grid, r, req.TargetFloorPercent, req.WalkStepLimit, log)
	case AlgorithmHybrid:
		rooms = generateHybrid(grid, r, req.MinRoomSize, req.MaxRoomSize, log)
	}

	placeContent(grid, rooms, r, log)

	total := req.Width * req.Height
	walkable := total - grid.Count(TileWall)
	return &Result{
		Request: req,
		Grid:    grid,
		Rooms:   snapshotRooms(rooms),
		Steps:   log.steps,
		Stats: Stats{
			RoomCount:     len(rooms),
			FloorFraction: float64(walkable) / float64(total),
			Elapsed:       time.Since(started),
		},
	}, nil
}
