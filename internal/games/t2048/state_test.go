package t2048

import (
	"errors"
	"strings"
	"testing"
)

func TestStateRoundTrip(t *testing.T) {
	best := 2048
	state := SessionState{
		Board: Board{
			{2, 4, 8, 16},
			{0, 0, 0, 32},
			{0, 2, 0, 0},
			{1024, 0, 0, 4},
		},
		Score:    1500,
		Best:     &best,
		GameOver: true,
		UndoSnapshot: &UndoSnapshot{
			Board: Board{{2, 2}},
			Score: 1496,
		},
	}

	blob, err := EncodeState(state)
	if err != nil {
		t.Fatalf("EncodeState() failed: %v", err)
	}

	got, err := DecodeState(blob)
	if err != nil {
		t.Fatalf("DecodeState() failed: %v", err)
	}

	if got.Version != StateVersion {
		t.Errorf("Version = %d, want %d", got.Version, StateVersion)
	}
	if got.Board != state.Board || got.Score != state.Score || got.GameOver != state.GameOver {
		t.Errorf("round trip changed state:\n%+v\nvs\n%+v", got, state)
	}
	if got.Best == nil || *got.Best != best {
		t.Errorf("Best = %v, want %d", got.Best, best)
	}
	if got.UndoSnapshot == nil || *got.UndoSnapshot != *state.UndoSnapshot {
		t.Errorf("UndoSnapshot = %+v, want %+v", got.UndoSnapshot, state.UndoSnapshot)
	}
}

func TestEncodeStateShape(t *testing.T) {
	best := 0
	blob, err := EncodeState(SessionState{Best: &best})
	if err != nil {
		t.Fatal(err)
	}

	for _, key := range []string{`"board":[[0,0,0,0],`, `"score":0`, `"best":0`, `"gameOver":false`, `"undoSnapshot":null`, `"version":1`} {
		if !strings.Contains(blob, key) {
			t.Errorf("encoded state %s missing %s", blob, key)
		}
	}
}

func TestDecodeStateDefaults(t *testing.T) {
	blob := `{"board":[[2,0,0,0],[0,0,0,0],[0,0,0,0],[0,0,0,4]],"score":12}`

	state, err := DecodeState(blob)
	if err != nil {
		t.Fatalf("DecodeState() failed: %v", err)
	}
	if state.Version != 1 {
		t.Errorf("missing version should default to 1, got %d", state.Version)
	}
	if state.Best != nil {
		t.Errorf("missing best should decode as nil, got %d", *state.Best)
	}
	if state.GameOver || state.UndoSnapshot != nil {
		t.Error("missing flags should default to zero values")
	}
}

func TestDecodeStateLegacyPrevState(t *testing.T) {
	blob := `{"board":[[2,0,0,0],[0,0,0,0],[0,0,0,0],[0,0,0,0]],"score":4,` +
		`"prevState":{"board":[[0,2,0,0],[0,0,0,0],[0,0,0,0],[0,0,0,0]],"score":0}}`

	state, err := DecodeState(blob)
	if err != nil {
		t.Fatalf("DecodeState() failed: %v", err)
	}
	if state.UndoSnapshot == nil || state.UndoSnapshot.Board[0][1] != 2 {
		t.Errorf("prevState should populate the undo snapshot, got %+v", state.UndoSnapshot)
	}
}

func TestDecodeStateDropsBadSnapshot(t *testing.T) {
	blob := `{"board":[[2,0,0,0],[0,0,0,0],[0,0,0,0],[0,0,0,0]],"score":4,` +
		`"undoSnapshot":{"board":[[3]],"score":0}}`

	state, err := DecodeState(blob)
	if err != nil {
		t.Fatalf("DecodeState() failed: %v", err)
	}
	if state.UndoSnapshot != nil {
		t.Error("malformed undo snapshot should be dropped")
	}
}

func TestDecodeStateInvalid(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{"not json", `{board`},
		{"empty", ``},
		{"missing board", `{"score":1}`},
		{"three rows", `{"board":[[0,0,0,0],[0,0,0,0],[0,0,0,0]]}`},
		{"short row", `{"board":[[0,0,0],[0,0,0,0],[0,0,0,0],[0,0,0,0]]}`},
		{"not power of two", `{"board":[[3,0,0,0],[0,0,0,0],[0,0,0,0],[0,0,0,0]]}`},
		{"one is not a tile", `{"board":[[1,0,0,0],[0,0,0,0],[0,0,0,0],[0,0,0,0]]}`},
		{"negative score", `{"board":[[0,0,0,0],[0,0,0,0],[0,0,0,0],[0,0,0,0]],"score":-5}`},
		{"negative best", `{"board":[[0,0,0,0],[0,0,0,0],[0,0,0,0],[0,0,0,0]],"best":-1}`},
		{"future version", `{"version":2,"board":[[0,0,0,0],[0,0,0,0],[0,0,0,0],[0,0,0,0]]}`},
		{"fractional score", `{"board":[[0,0,0,0],[0,0,0,0],[0,0,0,0],[0,0,0,0]],"score":1.5}`},
		{"array", `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeState(tt.blob); !errors.Is(err, ErrInvalidState) {
				t.Errorf("DecodeState(%s) error = %v, want ErrInvalidState", tt.blob, err)
			}
		})
	}
}
