package core

import "testing"

func TestActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionNone, "None"},
		{ActionUp, "Up"},
		{ActionRight, "Right"},
		{ActionUndo, "Undo"},
		{ActionNewGame, "NewGame"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, want %q", tt.action, got, tt.want)
		}
	}
}

func TestActionIsDirection(t *testing.T) {
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		if !a.IsDirection() {
			t.Errorf("%v should be a direction", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionUndo, ActionNewGame, ActionLeaderboard, ActionQuit} {
		if a.IsDirection() {
			t.Errorf("%v should not be a direction", a)
		}
	}
}

func TestResolveSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 42
	if cfg.ResolveSeed() != 42 {
		t.Error("explicit seed should be kept")
	}

	cfg.Seed = 0
	if cfg.ResolveSeed() == 0 {
		t.Error("zero seed should resolve to a time-based value")
	}
}
