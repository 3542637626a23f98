package t2048

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidState is returned by DecodeState for blobs that cannot be restored.
var ErrInvalidState = errors.New("t2048: invalid session state")

// StateVersion is the schema version written by EncodeState.
const StateVersion = 1

// UndoSnapshot is the board and score captured before the last successful move.
type UndoSnapshot struct {
	Board Board `json:"board"`
	Score int   `json:"score"`
}

// SessionState is the persisted form of a game session.
// Best is nil when the blob did not carry a best score.
type SessionState struct {
	Version      int           `json:"version"`
	Board        Board         `json:"board"`
	Score        int           `json:"score"`
	Best         *int          `json:"best,omitempty"`
	GameOver     bool          `json:"gameOver"`
	UndoSnapshot *UndoSnapshot `json:"undoSnapshot"`
	Submitted    bool          `json:"submitted,omitempty"`
}

// rawSnapshot and rawState decode boards as slices so that wrong
// dimensions are detected instead of silently padded.
type rawSnapshot struct {
	Board [][]int `json:"board"`
	Score int     `json:"score"`
}

type rawState struct {
	Version      *int         `json:"version"`
	Board        [][]int      `json:"board"`
	Score        int          `json:"score"`
	Best         *int         `json:"best"`
	GameOver     bool         `json:"gameOver"`
	UndoSnapshot *rawSnapshot `json:"undoSnapshot"`
	PrevState    *rawSnapshot `json:"prevState"` // unversioned blobs used this key
	Submitted    bool         `json:"submitted"`
}

// EncodeState serializes a session state at the current schema version.
func EncodeState(s SessionState) (string, error) {
	s.Version = StateVersion
	data, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("t2048: encode state: %w", err)
	}
	return string(data), nil
}

// DecodeState parses and validates a persisted session state.
// A missing version is treated as version 1. A malformed undo snapshot is
// dropped; any other defect fails with ErrInvalidState.
func DecodeState(blob string) (SessionState, error) {
	var raw rawState
	if err := json.Unmarshal([]byte(blob), &raw); err != nil {
		return SessionState{}, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}

	version := StateVersion
	if raw.Version != nil {
		version = *raw.Version
	}
	if version < 1 || version > StateVersion {
		return SessionState{}, fmt.Errorf("%w: unsupported version %d", ErrInvalidState, version)
	}

	board, err := boardFromRows(raw.Board)
	if err != nil {
		return SessionState{}, err
	}
	if raw.Score < 0 {
		return SessionState{}, fmt.Errorf("%w: negative score %d", ErrInvalidState, raw.Score)
	}
	if raw.Best != nil && *raw.Best < 0 {
		return SessionState{}, fmt.Errorf("%w: negative best %d", ErrInvalidState, *raw.Best)
	}

	state := SessionState{
		Version:   version,
		Board:     board,
		Score:     raw.Score,
		Best:      raw.Best,
		GameOver:  raw.GameOver,
		Submitted: raw.Submitted,
	}

	snap := raw.UndoSnapshot
	if snap == nil {
		snap = raw.PrevState
	}
	if snap != nil && snap.Score >= 0 {
		if b, err := boardFromRows(snap.Board); err == nil {
			state.UndoSnapshot = &UndoSnapshot{Board: b, Score: snap.Score}
		}
	}

	return state, nil
}

func boardFromRows(rows [][]int) (Board, error) {
	var b Board
	if len(rows) != BoardSize {
		return b, fmt.Errorf("%w: board has %d rows", ErrInvalidState, len(rows))
	}
	for r, row := range rows {
		if len(row) != BoardSize {
			return b, fmt.Errorf("%w: board row %d has %d cells", ErrInvalidState, r, len(row))
		}
		for c, v := range row {
			if !IsTileValue(v) {
				return b, fmt.Errorf("%w: cell (%d,%d) holds %d", ErrInvalidState, r, c, v)
			}
			b[r][c] = v
		}
	}
	return b, nil
}
