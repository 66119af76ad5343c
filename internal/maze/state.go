package maze

import "github.com/vovakirdan/joystick-maze/internal/core"

// Phase is the state machine position of a playthrough.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseWon
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// Outcome is what one frame did to the ball. The loop driver dispatches
// feedback from it; the state never touches hardware itself.
type Outcome int

const (
	OutcomeMoved Outcome = iota
	OutcomeBlocked
	OutcomeWon
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeBlocked:
		return "blocked"
	case OutcomeWon:
		return "won"
	default:
		return "unknown"
	}
}

// Level describes one maze: its walls, where the ball starts and where the
// goal is.
type Level struct {
	Walls    []core.Rect
	Start    core.Vec2
	Goal     core.Vec2
	GoalSize int
}

// State owns the ball for one playthrough.
// Invariant: the ball is never left inside a wall.
type State struct {
	world    World
	start    core.Vec2
	goal     core.Vec2
	goalSize int

	ball  core.Vec2
	phase Phase

	moves  int
	blocks int
	wins   int
}

// NewState creates a playing state with the ball at the level start.
func NewState(level Level) *State {
	return &State{
		world:    NewWorld(level.Walls),
		start:    level.Start,
		goal:     level.Goal,
		goalSize: level.GoalSize,
		ball:     level.Start,
		phase:    PhasePlaying,
	}
}

// AttemptMove proposes ball+delta. A collision-free candidate is committed
// and reported as OutcomeMoved; otherwise the ball stays put and the result
// is OutcomeBlocked. A zero delta on a free cell counts as a move.
// While the phase is Won the ball is frozen and every attempt is blocked.
func (s *State) AttemptMove(delta core.Vec2) Outcome {
	if s.phase == PhaseWon {
		s.blocks++
		return OutcomeBlocked
	}

	candidate := s.ball.Add(delta)
	if s.world.Intersects(candidate) {
		s.blocks++
		return OutcomeBlocked
	}

	s.ball = candidate
	s.moves++
	return OutcomeMoved
}

// CheckWin applies the win test to the committed ball position and moves to
// PhaseWon when it passes. It returns true only on the transition.
func (s *State) CheckWin() bool {
	if s.phase == PhaseWon {
		return false
	}
	if !WithinGoal(s.ball, s.goal, s.goalSize) {
		return false
	}
	s.phase = PhaseWon
	s.wins++
	return true
}

// Reset puts the ball back at the start and resumes play.
func (s *State) Reset() {
	s.ball = s.start
	s.phase = PhasePlaying
}

// WithinGoal is the win test: both axes independently closer than size to
// the goal point. It is deliberately looser than a rectangle overlap with
// the drawn goal square.
func WithinGoal(ball, goal core.Vec2, size int) bool {
	return core.Abs(ball.X-goal.X) < size && core.Abs(ball.Y-goal.Y) < size
}

// Ball returns the committed ball position.
func (s *State) Ball() core.Vec2 {
	return s.ball
}

// Start returns the ball's start position.
func (s *State) Start() core.Vec2 {
	return s.start
}

// Phase returns the current phase.
func (s *State) Phase() Phase {
	return s.phase
}

// Walls returns the maze walls in their fixed order.
func (s *State) Walls() []core.Rect {
	return s.world.Walls()
}

// World returns the wall set.
func (s *State) World() World {
	return s.world
}

// Goal returns the goal point.
func (s *State) Goal() core.Vec2 {
	return s.goal
}

// GoalRect returns the goal square as drawn, centred on the goal point.
func (s *State) GoalRect() core.Rect {
	return core.CenteredSquare(s.goal, s.goalSize)
}
