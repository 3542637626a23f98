package t2048

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func TestRenderBoard(t *testing.T) {
	s := core.NewScreen(BoardWidth, BoardHeight)
	RenderBoard(s, Board{
		{2, 0, 0, 2048},
		{},
		{},
		{0, 0, 131072, 0},
	}, 0, 0)

	lines := strings.Split(s.String(), "\n")
	if len(lines) != BoardHeight {
		t.Fatalf("rendered %d lines, want %d", len(lines), BoardHeight)
	}

	want := map[int]string{
		0: "┌──────┬──────┬──────┬──────┐",
		1: "│  2   │      │      │ 2048 │",
		2: "├──────┼──────┼──────┼──────┤",
		7: "│      │      │131072│      │",
		8: "└──────┴──────┴──────┴──────┘",
	}
	for i, line := range want {
		if lines[i] != line {
			t.Errorf("line %d = %q, want %q", i, lines[i], line)
		}
	}
}

func TestRenderBoardColors(t *testing.T) {
	s := core.NewScreen(BoardWidth, BoardHeight)
	RenderBoard(s, Board{{2, 64}}, 0, 0)

	if c := s.GetCell(0, 0); c.Color != core.ColorGrid {
		t.Errorf("grid color = %v", c.Color)
	}
	if c := s.GetCell(3, 1); c.Rune != '2' || c.Color != core.ColorTileLow {
		t.Errorf("tile 2 cell = %+v", c)
	}
	if c := s.GetCell(10, 1); c.Rune != '6' || c.Color != core.ColorTileWarm {
		t.Errorf("tile 64 cell = %+v", c)
	}
}

func TestRenderBoardOffset(t *testing.T) {
	s := core.NewScreen(BoardWidth+2, BoardHeight+1)
	RenderBoard(s, Board{}, 2, 1)

	if s.GetCell(2, 1).Rune != '┌' || s.GetCell(0, 0).Rune != ' ' {
		t.Error("board should be drawn at the requested offset")
	}
}

func TestTileColor(t *testing.T) {
	tests := []struct {
		value int
		want  core.Color
	}{
		{0, core.ColorDefault},
		{2, core.ColorTileLow},
		{4, core.ColorTileLow},
		{16, core.ColorTileMid},
		{32, core.ColorTileWarm},
		{256, core.ColorTileHot},
		{512, core.ColorTileHigh},
		{2048, core.ColorTileWin},
		{4096, core.ColorTileBeyond},
	}

	for _, tt := range tests {
		if got := TileColor(tt.value); got != tt.want {
			t.Errorf("TileColor(%d) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
