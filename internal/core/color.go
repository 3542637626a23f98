package core

// Color represents a foreground color for a screen cell.
// Front ends map it to ANSI 256-color codes.
type Color uint8

// Colors used by the board renderer. Tile colors warm up as values grow.
const (
	ColorDefault Color = iota
	ColorGrid
	ColorTileLow  // 2, 4
	ColorTileMid  // 8, 16
	ColorTileWarm // 32, 64
	ColorTileHot  // 128, 256
	ColorTileHigh // 512, 1024
	ColorTileWin  // 2048
	ColorTileBeyond
)
