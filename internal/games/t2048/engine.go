package t2048

import (
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/config"
)

// Engine owns a board, its cumulative score and the terminal flag.
// It is not safe for concurrent use.
type Engine struct {
	rng  *rand.Rand
	game config.GameConfig

	board    Board
	score    int
	gameOver bool
}

// NewEngine creates an engine with an empty board.
func NewEngine(rng *rand.Rand, game config.GameConfig) *Engine {
	return &Engine{rng: rng, game: game}
}

// Board returns a copy of the current board.
func (e *Engine) Board() Board { return e.board }

// Score returns the cumulative score.
func (e *Engine) Score() int { return e.score }

// GameOver reports whether the terminal flag is set.
func (e *Engine) GameOver() bool { return e.gameOver }

// SetGameOver sets the terminal flag.
func (e *Engine) SetGameOver(over bool) { e.gameOver = over }

// Reset clears the board, score and terminal flag.
func (e *Engine) Reset() {
	e.board = Board{}
	e.score = 0
	e.gameOver = false
}

// Restore replaces the board and score, e.g. from an undo snapshot.
func (e *Engine) Restore(board Board, score int) {
	e.board = board
	e.score = score
}

// Move shifts every tile in dir. The board and score are replaced only
// when at least one row changed; an unchanged board consumes no turn.
func (e *Engine) Move(dir Direction) bool {
	newBoard, gained, changed := Slide(e.board, dir)
	if !changed {
		return false
	}

	e.board = newBoard
	e.score += gained
	return true
}

// SpawnTile places one tile, or two with probability DoubleSpawnProb,
// into distinct empty cells. A full board is left untouched.
func (e *Engine) SpawnTile() {
	count := 1
	if e.rng.Float64() < e.game.DoubleSpawnProb {
		count = 2
	}

	empty := EmptyCells(e.board)
	for range count {
		if len(empty) == 0 {
			return
		}
		idx := e.rng.Intn(len(empty))
		cell := empty[idx]
		empty = append(empty[:idx], empty[idx+1:]...)
		e.board[cell.R][cell.C] = e.tileValue()
	}
}

// placeTile puts exactly one tile in a random empty cell.
func (e *Engine) placeTile() bool {
	empty := EmptyCells(e.board)
	if len(empty) == 0 {
		return false
	}
	cell := empty[e.rng.Intn(len(empty))]
	e.board[cell.R][cell.C] = e.tileValue()
	return true
}

// tileValue draws 2 with probability TwoProb, else 4.
func (e *Engine) tileValue() int {
	if e.rng.Float64() < e.game.TwoProb {
		return 2
	}
	return 4
}

// IsTerminal reports whether no move is possible on the current board.
func (e *Engine) IsTerminal() bool {
	return IsTerminal(e.board)
}
