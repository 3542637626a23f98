// Package t2048 implements 2048: board math, the tile-spawning engine, and
// the persisted session with undo and best-score tracking.
package t2048

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDirection is returned by ParseDirection for unknown tokens.
var ErrInvalidDirection = errors.New("t2048: invalid direction")

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction in declaration order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lowercase direction token.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection parses a direction token (up, down, left, right or u/d/l/r).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// BoardSize is the board dimension.
const BoardSize = 4

// Row is a single board row.
type Row [BoardSize]int

// Board represents a 4x4 game board. 0 is an empty cell.
type Board [BoardSize]Row

// Cell is a board coordinate.
type Cell struct{ R, C int }

// RotateLeft rotates the board 90° counter-clockwise: (r,c) -> (SIZE-1-c, r).
func RotateLeft(b Board) Board {
	var out Board
	for r := range BoardSize {
		for c := range BoardSize {
			out[BoardSize-1-c][r] = b[r][c]
		}
	}
	return out
}

// RotateRight rotates the board 90° clockwise: (r,c) -> (c, SIZE-1-r).
func RotateRight(b Board) Board {
	var out Board
	for r := range BoardSize {
		for c := range BoardSize {
			out[c][BoardSize-1-r] = b[r][c]
		}
	}
	return out
}

// ReverseRows mirrors every row.
func ReverseRows(b Board) Board {
	var out Board
	for r := range BoardSize {
		for c := range BoardSize {
			out[r][c] = b[r][BoardSize-1-c]
		}
	}
	return out
}

// CompressAndMergeRow slides a row to the left and merges equal neighbours.
// Each tile merges at most once per call, so [4,4,4,4] becomes [8,8,0,0].
// Returns the new row, the sum of merged values and whether the row changed.
func CompressAndMergeRow(row Row) (result Row, gained int, changed bool) {
	var tiles []int
	for _, v := range row {
		if v != 0 {
			tiles = append(tiles, v)
		}
	}

	writePos := 0
	for i := 0; i < len(tiles); i++ {
		if i+1 < len(tiles) && tiles[i] == tiles[i+1] {
			merged := tiles[i] * 2
			result[writePos] = merged
			gained += merged
			i++ // The partner is consumed
		} else {
			result[writePos] = tiles[i]
		}
		writePos++
	}

	return result, gained, result != row
}

type transform func(Board) Board

func identity(b Board) Board { return b }

// moveTransforms maps each direction onto the compress-left pipeline:
// pre-transform, compress rows, post-transform.
var moveTransforms = map[Direction]struct{ pre, post transform }{
	DirUp:    {RotateLeft, RotateRight},
	DirDown:  {RotateRight, RotateLeft},
	DirLeft:  {identity, identity},
	DirRight: {ReverseRows, ReverseRows},
}

// Slide performs a move in the given direction.
// Returns the new board, score gained, and whether the board changed.
// Unknown directions leave the board untouched.
func Slide(board Board, dir Direction) (Board, int, bool) {
	t, ok := moveTransforms[dir]
	if !ok {
		return board, 0, false
	}

	working := t.pre(board)
	total := 0
	changed := false
	for r := range BoardSize {
		row, gained, rowChanged := CompressAndMergeRow(working[r])
		working[r] = row
		total += gained
		changed = changed || rowChanged
	}

	return t.post(working), total, changed
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func EmptyCells(board Board) []Cell {
	var cells []Cell
	for r := range BoardSize {
		for c := range BoardSize {
			if board[r][c] == 0 {
				cells = append(cells, Cell{R: r, C: c})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(board Board) bool {
	for r := range BoardSize {
		for c := range BoardSize {
			if board[r][c] == 0 {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if any two orthogonal neighbours hold the same tile.
func HasPossibleMerge(board Board) bool {
	for r := range BoardSize {
		for c := range BoardSize {
			val := board[r][c]
			if val == 0 {
				continue
			}
			// Check right neighbor
			if c < BoardSize-1 && board[r][c+1] == val {
				return true
			}
			// Check bottom neighbor
			if r < BoardSize-1 && board[r+1][c] == val {
				return true
			}
		}
	}
	return false
}

// IsTerminal returns true if the board is full and no merge is possible.
func IsTerminal(board Board) bool {
	return !HasEmptyCell(board) && !HasPossibleMerge(board)
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(board Board) int {
	maxVal := 0
	for r := range BoardSize {
		for c := range BoardSize {
			if board[r][c] > maxVal {
				maxVal = board[r][c]
			}
		}
	}
	return maxVal
}

// CountTiles returns the number of non-empty cells.
func CountTiles(board Board) int {
	return BoardSize*BoardSize - len(EmptyCells(board))
}

// IsTileValue reports whether v is a legal cell value: 0 or a power of two >= 2.
func IsTileValue(v int) bool {
	if v == 0 {
		return true
	}
	return v >= 2 && v&(v-1) == 0
}

// ValidBoard reports whether every cell holds a legal value.
func ValidBoard(board Board) bool {
	for r := range BoardSize {
		for c := range BoardSize {
			if !IsTileValue(board[r][c]) {
				return false
			}
		}
	}
	return true
}

// String renders the board as a fixed-width text grid, "." for empty cells.
func (b Board) String() string {
	var sb strings.Builder
	for r := range BoardSize {
		for c := range BoardSize {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if b[r][c] == 0 {
				fmt.Fprintf(&sb, "%5s", ".")
			} else {
				fmt.Fprintf(&sb, "%5d", b[r][c])
			}
		}
		if r < BoardSize-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
