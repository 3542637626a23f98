package t2048

import (
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell including its left border
	cellHeight = 2 // Height of each cell including its top border

	// BoardWidth and BoardHeight are the rendered board size in characters.
	BoardWidth  = BoardSize*cellWidth + 1
	BoardHeight = BoardSize*cellHeight + 1
)

// TileColor returns the display color for a tile value.
func TileColor(v int) core.Color {
	switch {
	case v <= 0:
		return core.ColorDefault
	case v <= 4:
		return core.ColorTileLow
	case v <= 16:
		return core.ColorTileMid
	case v <= 64:
		return core.ColorTileWarm
	case v <= 256:
		return core.ColorTileHot
	case v <= 1024:
		return core.ColorTileHigh
	case v == 2048:
		return core.ColorTileWin
	default:
		return core.ColorTileBeyond
	}
}

// RenderBoard draws the 4x4 grid with its tiles into dst, top-left corner
// at (x, y). Values are centered in their cells; empty cells stay blank.
func RenderBoard(dst *core.Screen, board Board, x, y int) {
	dst.DrawBox(core.NewRect(x, y, BoardWidth, BoardHeight), core.ColorGrid)

	for gy := range BoardSize + 1 {
		for gx := range BoardSize + 1 {
			px := x + gx*cellWidth
			py := y + gy*cellHeight
			edgeX := gx == 0 || gx == BoardSize
			edgeY := gy == 0 || gy == BoardSize

			var junction rune
			switch {
			case edgeX && edgeY:
				// Outer corners come from the frame
			case gy == 0:
				junction = '┬'
			case gy == BoardSize:
				junction = '┴'
			case gx == 0:
				junction = '├'
			case gx == BoardSize:
				junction = '┤'
			default:
				junction = '┼'
			}
			if junction != 0 {
				dst.SetColored(px, py, junction, core.ColorGrid)
			}

			if gx < BoardSize && !edgeY {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGrid)
				}
			}
			if gy < BoardSize && !edgeX {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGrid)
				}
			}
		}
	}

	for r := range BoardSize {
		for c := range BoardSize {
			v := board[r][c]
			if v == 0 {
				continue
			}

			label := strconv.Itoa(v)
			inner := core.NewRect(x+c*cellWidth+1, y+r*cellHeight+1, cellWidth-1, cellHeight-1)
			cx, cy := inner.Center()
			dst.DrawTextColored(max(cx-(len(label)+1)/2, inner.X), cy, label, TileColor(v))
		}
	}
}
