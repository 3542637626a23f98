package t2048

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/config"
)

func newTestEngine(seed int64, game config.GameConfig) *Engine {
	return NewEngine(rand.New(rand.NewSource(seed)), game)
}

func TestEngineMoveUnchanged(t *testing.T) {
	e := newTestEngine(1, config.DefaultConfig().Game)
	board := Board{{4, 2, 0, 0}}
	e.Restore(board, 10)

	if e.Move(DirLeft) {
		t.Error("Move should report no change for left-aligned tiles")
	}
	if e.Board() != board || e.Score() != 10 {
		t.Error("unchanged move must not touch board or score")
	}
}

func TestEngineMoveAccumulatesScore(t *testing.T) {
	e := newTestEngine(1, config.DefaultConfig().Game)
	e.Restore(Board{{4, 4, 8, 8}, {2, 2, 0, 0}}, 100)

	if !e.Move(DirLeft) {
		t.Fatal("Move should report a change")
	}
	if e.Score() != 100+24+4 {
		t.Errorf("Score = %d, want 128", e.Score())
	}
	if got := e.Board()[0]; got != (Row{8, 16, 0, 0}) {
		t.Errorf("row 0 = %v, want [8 16 0 0]", got)
	}
}

func TestSpawnTileCount(t *testing.T) {
	tests := []struct {
		name        string
		doubleProb  float64
		wantSpawned int
	}{
		{"always single", 0, 1},
		{"always double", 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := config.DefaultConfig().Game
			game.DoubleSpawnProb = tt.doubleProb

			for seed := range int64(20) {
				e := newTestEngine(seed, game)
				e.SpawnTile()
				if n := CountTiles(e.Board()); n != tt.wantSpawned {
					t.Fatalf("seed %d: spawned %d tiles, want %d", seed, n, tt.wantSpawned)
				}
			}
		})
	}
}

func TestSpawnTileDoubleWithOneEmptyCell(t *testing.T) {
	game := config.DefaultConfig().Game
	game.DoubleSpawnProb = 1

	e := newTestEngine(3, game)
	e.Restore(Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 0},
	}, 0)

	e.SpawnTile()
	if HasEmptyCell(e.Board()) {
		t.Error("the last empty cell should be filled")
	}
}

func TestSpawnTileFullBoardNoop(t *testing.T) {
	e := newTestEngine(1, config.DefaultConfig().Game)
	full := Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}
	e.Restore(full, 0)

	e.SpawnTile()
	if e.Board() != full {
		t.Error("SpawnTile on a full board must be a no-op")
	}
}

func TestSpawnTileValues(t *testing.T) {
	tests := []struct {
		name    string
		twoProb float64
		want    int
	}{
		{"only twos", 1, 2},
		{"only fours", 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := config.DefaultConfig().Game
			game.TwoProb = tt.twoProb

			e := newTestEngine(5, game)
			for range 6 {
				e.SpawnTile()
			}
			for _, row := range e.Board() {
				for _, v := range row {
					if v != 0 && v != tt.want {
						t.Fatalf("spawned %d, want only %d", v, tt.want)
					}
				}
			}
		})
	}
}

func TestSpawnTileDistribution(t *testing.T) {
	e := newTestEngine(99, config.DefaultConfig().Game)

	twos, fours, doubles := 0, 0, 0
	const rounds = 4000
	for range rounds {
		e.Reset()
		e.SpawnTile()
		n := 0
		for _, row := range e.Board() {
			for _, v := range row {
				switch v {
				case 2:
					twos++
					n++
				case 4:
					fours++
					n++
				}
			}
		}
		if n == 2 {
			doubles++
		}
	}

	fourRatio := float64(fours) / float64(twos+fours)
	if fourRatio < 0.07 || fourRatio > 0.13 {
		t.Errorf("share of 4s = %.3f, want about 0.10", fourRatio)
	}
	doubleRatio := float64(doubles) / rounds
	if doubleRatio < 0.35 || doubleRatio > 0.45 {
		t.Errorf("share of double spawns = %.3f, want about 0.40", doubleRatio)
	}
}

func TestDeterministicSpawn(t *testing.T) {
	// Same seed produces the same sequence of spawns
	game := config.DefaultConfig().Game

	e1 := newTestEngine(12345, game)
	e2 := newTestEngine(12345, game)
	for range 5 {
		e1.SpawnTile()
		e2.SpawnTile()
	}

	if e1.Board() != e2.Board() {
		t.Errorf("Same seed should produce same board:\n%v\nvs\n%v", e1.Board(), e2.Board())
	}
}

func TestEngineReset(t *testing.T) {
	e := newTestEngine(1, config.DefaultConfig().Game)
	e.Restore(Board{{2}}, 40)
	e.SetGameOver(true)

	e.Reset()
	if e.Board() != (Board{}) || e.Score() != 0 || e.GameOver() {
		t.Error("Reset should clear board, score and terminal flag")
	}
}
