package leaderboard

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

func fixedClock() func() time.Time {
	t := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Minute)
		return t
	}
}

func TestAllEmpty(t *testing.T) {
	lb := New(storage.NewMemory())

	entries := lb.All()
	if entries == nil || len(entries) != 0 {
		t.Errorf("All() on empty store = %v, want empty non-nil slice", entries)
	}
	if lb.BestScore() != 0 {
		t.Errorf("BestScore() = %d, want 0", lb.BestScore())
	}
}

func TestSubmitSortsDescending(t *testing.T) {
	lb := New(storage.NewMemory(), WithClock(fixedClock()))

	for _, score := range []int{100, 300, 200} {
		if _, err := lb.Submit("p", score); err != nil {
			t.Fatalf("Submit() failed: %v", err)
		}
	}

	entries := lb.All()
	want := []int{300, 200, 100}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, e := range entries {
		if e.Score != want[i] {
			t.Errorf("entries[%d].Score = %d, want %d", i, e.Score, want[i])
		}
	}
	if lb.BestScore() != 300 {
		t.Errorf("BestScore() = %d, want 300", lb.BestScore())
	}
}

func TestSubmitTiesKeepSubmissionOrder(t *testing.T) {
	lb := New(storage.NewMemory(), WithClock(fixedClock()))

	lb.Submit("first", 50)
	lb.Submit("high", 80)
	lb.Submit("second", 50)
	lb.Submit("third", 50)

	entries := lb.All()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	want := []string{"high", "first", "second", "third"}
	if fmt.Sprint(names) != fmt.Sprint(want) {
		t.Errorf("order = %v, want %v", names, want)
	}
}

func TestSubmitTruncatesToCapacity(t *testing.T) {
	lb := New(storage.NewMemory(), WithClock(fixedClock()))

	for i := range 15 {
		lb.Submit(fmt.Sprintf("p%d", i), i*10)
	}

	entries := lb.All()
	if len(entries) != DefaultCapacity {
		t.Fatalf("expected %d entries, got %d", DefaultCapacity, len(entries))
	}
	if entries[0].Score != 140 || entries[9].Score != 50 {
		t.Errorf("kept range = %d..%d, want 140..50", entries[0].Score, entries[9].Score)
	}

	// A score below the cut is dropped immediately
	lb.Submit("low", 1)
	for _, e := range lb.All() {
		if e.Name == "low" {
			t.Error("score below the cut should not be kept")
		}
	}
}

func TestSubmitCustomCapacity(t *testing.T) {
	lb := New(storage.NewMemory(), WithCapacity(3))
	if lb.Capacity() != 3 {
		t.Fatalf("expected capacity 3, got %d", lb.Capacity())
	}
	for i := range 5 {
		lb.Submit("p", i)
	}
	if n := len(lb.All()); n != 3 {
		t.Errorf("expected 3 entries, got %d", n)
	}
}

func TestSubmitBlankNameUsesDefault(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		in   string
		want string
	}{
		{"empty", nil, "", DefaultName},
		{"whitespace", nil, "   \t", DefaultName},
		{"trimmed", nil, "  Ann ", "Ann"},
		{"custom default", []Option{WithDefaultName("Anon")}, "", "Anon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lb := New(storage.NewMemory(), tt.opts...)
			entry, err := lb.Submit(tt.in, 10)
			if err != nil {
				t.Fatalf("Submit() failed: %v", err)
			}
			if entry.Name != tt.want {
				t.Errorf("Name = %q, want %q", entry.Name, tt.want)
			}
		})
	}
}

func TestSubmitCapturesTimestamp(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	lb := New(storage.NewMemory(), WithClock(func() time.Time { return now }))

	lb.Submit("a", 4)
	entries := lb.All()
	if !entries[0].Date.Equal(now) {
		t.Errorf("Date = %v, want %v", entries[0].Date, now)
	}
}

func TestCorruptBlobIsEmpty(t *testing.T) {
	mem := storage.NewMemory()
	mem.Set(storage.KeyLeaders, "{not json")

	lb := New(mem)
	if n := len(lb.All()); n != 0 {
		t.Errorf("corrupt blob should read as empty, got %d entries", n)
	}

	// Submitting replaces the corrupt blob
	lb.Submit("a", 8)
	if n := len(lb.All()); n != 1 {
		t.Errorf("expected 1 entry after submit, got %d", n)
	}
}

func TestBlobFormat(t *testing.T) {
	mem := storage.NewMemory()
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	lb := New(mem, WithClock(func() time.Time { return now }))

	lb.Submit("Ann", 128)

	blob, _, _ := mem.Get(storage.KeyLeaders)
	want := `[{"name":"Ann","score":128,"date":"2026-01-02T03:04:05Z"}]`
	if blob != want {
		t.Errorf("blob = %s, want %s", blob, want)
	}
}

type failingGateway struct{ storage.Memory }

func (f *failingGateway) Set(string, string) error { return errors.New("disk full") }

func TestSubmitReportsWriteFailure(t *testing.T) {
	lb := New(&failingGateway{})

	entry, err := lb.Submit("a", 16)
	if err == nil {
		t.Fatal("Submit() should report a failed write")
	}
	if entry.Score != 16 {
		t.Errorf("entry should still be returned, got %+v", entry)
	}
}

// flakyGateway fails reads while down is set.
type flakyGateway struct {
	storage.Memory
	down bool
}

func (f *flakyGateway) Get(key string) (string, bool, error) {
	if f.down {
		return "", false, errors.New("database is locked")
	}
	return f.Memory.Get(key)
}

func TestSubmitReadFailureKeepsEntries(t *testing.T) {
	gw := &flakyGateway{}
	lb := New(gw, WithClock(fixedClock()))
	for i := range 5 {
		if _, err := lb.Submit(fmt.Sprintf("p%d", i), (i+1)*100); err != nil {
			t.Fatalf("Submit() failed: %v", err)
		}
	}

	gw.down = true
	if _, err := lb.Submit("late", 1); err == nil {
		t.Fatal("Submit() should report a failed read")
	}
	if len(lb.All()) != 0 {
		t.Error("All() should be empty while reads fail")
	}
	gw.down = false

	entries := lb.All()
	if len(entries) != 5 {
		t.Fatalf("expected 5 entries after failed submit, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Name == "late" {
			t.Errorf("entry from failed submit was stored: %+v", e)
		}
	}
}
