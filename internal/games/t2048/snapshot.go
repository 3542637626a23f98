package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateGameOver GameStateType = "game_over"
)

// Snapshot is the read-only view of a session handed to front ends.
type Snapshot struct {
	Board     Board
	Score     int
	Best      int
	GameOver  bool
	Submitted bool
	CanUndo   bool
	MaxTile   int
	Tiles     int
	State     GameStateType
}

// Snapshot returns the current session view.
func (s *Session) Snapshot() Snapshot {
	board := s.engine.Board()
	state := StatePlaying
	if s.engine.GameOver() {
		state = StateGameOver
	}

	return Snapshot{
		Board:     board,
		Score:     s.engine.Score(),
		Best:      s.best,
		GameOver:  s.engine.GameOver(),
		Submitted: s.submitted,
		CanUndo:   s.CanUndo(),
		MaxTile:   MaxTile(board),
		Tiles:     CountTiles(board),
		State:     state,
	}
}
