package t2048

import (
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/leaderboard"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	// ErrNoLeaderboard is returned by SubmitScore when the session has no leaderboard.
	ErrNoLeaderboard = errors.New("t2048: no leaderboard configured")
	// ErrAlreadySubmitted is returned by SubmitScore once the current game is on the leaderboard.
	ErrAlreadySubmitted = errors.New("t2048: score already submitted")
)

// Leaderboard is the part of the leaderboard a session depends on.
type Leaderboard interface {
	BestScore() int
	Submit(name string, score int) (leaderboard.Entry, error)
}

// Session orchestrates a single game: moves, one-level undo, best score
// tracking and persistence. Every committed change is written through the
// gateway; storage failures are logged and never returned.
type Session struct {
	engine  *Engine
	gateway storage.Gateway
	leaders Leaderboard
	game    config.GameConfig
	rng     *rand.Rand
	logger  *log.Logger

	best       int
	undo       *UndoSnapshot
	submitted  bool
	onGameOver func(Snapshot)
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithRand sets the random source used for tile spawns.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

// WithGameOverHook registers fn to be called once the game reaches a terminal state.
func WithGameOverHook(fn func(Snapshot)) Option {
	return func(s *Session) { s.onGameOver = fn }
}

// NewSession creates a session. leaders may be nil. Call Load or StartNew
// before playing.
func NewSession(gateway storage.Gateway, leaders Leaderboard, game config.GameConfig, opts ...Option) *Session {
	s := &Session{
		gateway: gateway,
		leaders: leaders,
		game:    game,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s.engine = NewEngine(s.rng, game)
	return s
}

// Load restores the persisted session. A missing, unreadable or invalid
// blob starts a new game instead, with best seeded from the leaderboard.
func (s *Session) Load() {
	blob, ok, err := s.gateway.Get(storage.KeyState)
	if err != nil {
		s.logger.Warn("could not read saved game", "error", err)
		s.startFresh()
		return
	}
	if !ok {
		s.logger.Debug("no saved game, starting new")
		s.startFresh()
		return
	}

	state, err := DecodeState(blob)
	if err != nil {
		s.logger.Warn("discarding saved game", "error", err)
		s.startFresh()
		return
	}

	s.engine.Restore(state.Board, state.Score)
	s.engine.SetGameOver(state.GameOver)
	s.undo = state.UndoSnapshot
	s.submitted = state.Submitted
	if state.Best != nil {
		s.best = *state.Best
	} else {
		s.best = s.leaderboardBest()
	}

	s.logger.Debug("restored saved game", "score", state.Score, "best", s.best, "gameOver", state.GameOver)

	// A stuck board saved without the flag would never finish
	if !state.GameOver && s.engine.IsTerminal() {
		s.logger.Info("saved game has no moves left", "score", state.Score)
		s.engine.SetGameOver(true)
		s.persist()
	}
}

func (s *Session) startFresh() {
	s.best = s.leaderboardBest()
	s.StartNew()
}

func (s *Session) leaderboardBest() int {
	if s.leaders == nil {
		return 0
	}
	return s.leaders.BestScore()
}

// StartNew discards the current game and places the starting tiles:
// two tiles, plus a third with probability ThirdStartTileProb.
func (s *Session) StartNew() {
	s.engine.Reset()
	s.undo = nil
	s.submitted = false

	s.engine.placeTile()
	s.engine.placeTile()
	if s.rng.Float64() < s.game.ThirdStartTileProb {
		s.engine.placeTile()
	}

	s.persist()
}

// ApplyMove shifts the board in dir. It is a no-op once the game is over.
// A move that changes nothing has no side effects and returns false.
func (s *Session) ApplyMove(dir Direction) bool {
	if s.engine.GameOver() {
		return false
	}

	before := UndoSnapshot{Board: s.engine.Board(), Score: s.engine.Score()}
	if !s.engine.Move(dir) {
		return false
	}

	s.engine.SpawnTile()

	over := s.engine.IsTerminal()
	if over {
		s.engine.SetGameOver(true)
	}

	if score := s.engine.Score(); score > s.best {
		s.best = score
	}
	s.undo = &before
	s.persist()

	if over {
		s.logger.Info("game over", "score", s.engine.Score(), "maxTile", MaxTile(s.engine.Board()))
		if s.onGameOver != nil {
			s.onGameOver(s.Snapshot())
		}
	}
	return true
}

// Undo restores the board and score from before the last successful move.
// Only one level is kept, and undo is disabled once the game is over.
func (s *Session) Undo() bool {
	if s.undo == nil || s.engine.GameOver() {
		return false
	}

	s.engine.Restore(s.undo.Board, s.undo.Score)
	s.undo = nil
	s.persist()
	return true
}

// SubmitScore records the current score on the leaderboard under name and
// raises best if the score exceeds it. Each game is recorded at most once;
// a failed save can be retried.
func (s *Session) SubmitScore(name string) (leaderboard.Entry, error) {
	if s.leaders == nil {
		return leaderboard.Entry{}, ErrNoLeaderboard
	}
	if s.submitted {
		return leaderboard.Entry{}, ErrAlreadySubmitted
	}

	score := s.engine.Score()
	entry, err := s.leaders.Submit(name, score)
	dirty := err == nil
	if dirty {
		s.submitted = true
	}
	if score > s.best {
		s.best = score
		dirty = true
	}
	if dirty {
		s.persist()
	}
	return entry, err
}

// Dispatch applies a device-independent action and reports whether the
// session changed.
func (s *Session) Dispatch(a core.Action) bool {
	if a.IsDirection() {
		return s.ApplyMove(actionDirections[a])
	}

	switch a {
	case core.ActionUndo:
		return s.Undo()
	case core.ActionNewGame:
		s.StartNew()
		return true
	default:
		return false
	}
}

var actionDirections = map[core.Action]Direction{
	core.ActionUp:    DirUp,
	core.ActionDown:  DirDown,
	core.ActionLeft:  DirLeft,
	core.ActionRight: DirRight,
}

// State returns the persisted form of the session.
func (s *Session) State() SessionState {
	best := s.best
	state := SessionState{
		Version:   StateVersion,
		Board:     s.engine.Board(),
		Score:     s.engine.Score(),
		Best:      &best,
		GameOver:  s.engine.GameOver(),
		Submitted: s.submitted,
	}
	if s.undo != nil {
		snap := *s.undo
		state.UndoSnapshot = &snap
	}
	return state
}

// Board returns the current board.
func (s *Session) Board() Board { return s.engine.Board() }

// Score returns the current score.
func (s *Session) Score() int { return s.engine.Score() }

// Best returns the best score seen by this session.
func (s *Session) Best() int { return s.best }

// GameOver reports whether the game has ended.
func (s *Session) GameOver() bool { return s.engine.GameOver() }

// Submitted reports whether the current game is already on the leaderboard.
func (s *Session) Submitted() bool { return s.submitted }

// CanUndo reports whether Undo would do anything.
func (s *Session) CanUndo() bool { return s.undo != nil && !s.engine.GameOver() }

func (s *Session) persist() {
	blob, err := EncodeState(s.State())
	if err != nil {
		s.logger.Warn("could not encode session", "error", err)
		return
	}
	if err := s.gateway.Set(storage.KeyState, blob); err != nil {
		s.logger.Warn("could not save session", "error", err)
	}
}
