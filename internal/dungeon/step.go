package dungeon

// StepType tags what kind of generation event a step records.
type StepType string

const (
	StepSplit    StepType = "split"
	StepRoom     StepType = "room"
	StepCorridor StepType = "corridor"
	StepCarve    StepType = "carve"
	StepSmooth   StepType = "smooth"
	StepConnect  StepType = "connect"
	StepPlace    StepType = "place"
)

// Rect is a rectangular region, used to report the bounds of a BSP node in
// split steps.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GenerationStep is one immutable entry of the step log. The grid and room
// snapshots are deep copies taken at record time, so later mutation of the
// live grid never rewrites history. Steps exist solely so a rendering client
// can replay the run.
type GenerationStep struct {
	Type        StepType `json:"type"`
	Description string   `json:"description"`
	Grid        Grid     `json:"grid"`
	Highlights  []Point  `json:"highlights,omitempty"`
	Rooms       []Room   `json:"rooms,omitempty"`
	Node        *Rect    `json:"node,omitempty"`
}

// stepLog accumulates steps in strict chronological order.
type stepLog struct {
	steps []GenerationStep
}

// record appends a step, snapshotting the grid and room list.
func (l *stepLog) record(t StepType, desc string, g Grid, rooms []*Room, highlights []Point, node *Rect) {
	step := GenerationStep{
		Type:        t,
		Description: desc,
		Grid:        g.Clone(),
		Rooms:       snapshotRooms(rooms),
		Node:        node,
	}
	if len(highlights) > 0 {
		step.Highlights = make([]Point, len(highlights))
		copy(step.Highlights, highlights)
	}
	l.steps = append(l.steps, step)
}
