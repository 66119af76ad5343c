package maze

// Snapshot captures the complete game state for determinism testing and logs.
type Snapshot struct {
	BallX  int
	BallY  int
	Phase  Phase
	Moves  int // Committed moves, including zero-delta moves
	Blocks int // Rejected moves
	Wins   int
}

// Snapshot returns the current game snapshot.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		BallX:  s.ball.X,
		BallY:  s.ball.Y,
		Phase:  s.phase,
		Moves:  s.moves,
		Blocks: s.blocks,
		Wins:   s.wins,
	}
}
