// Package leaderboard keeps the ranked list of saved scores, persisted as a
// single JSON blob through a storage.Gateway.
package leaderboard

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Defaults used when no option overrides them.
const (
	DefaultCapacity = 10
	DefaultName     = "Player"
)

// DateLayout is how entry dates are shown to players.
const DateLayout = "02.01.2006 15:04"

// Entry is a single saved score.
type Entry struct {
	Name  string    `json:"name"`
	Score int       `json:"score"`
	Date  time.Time `json:"date"`
}

// Store is the leaderboard. It reads the blob on every call, so several
// stores over one gateway stay consistent. Submit is safe for concurrent use.
type Store struct {
	mu          sync.Mutex
	gateway     storage.Gateway
	capacity    int
	defaultName string
	now         func() time.Time
	logger      *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithCapacity sets how many entries are kept.
func WithCapacity(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.capacity = n
		}
	}
}

// WithDefaultName sets the name recorded for blank submissions.
func WithDefaultName(name string) Option {
	return func(s *Store) {
		if name = strings.TrimSpace(name); name != "" {
			s.defaultName = name
		}
	}
}

// WithClock overrides the submission timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the store logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New creates a leaderboard over gateway.
func New(gateway storage.Gateway, opts ...Option) *Store {
	s := &Store{
		gateway:     gateway,
		capacity:    DefaultCapacity,
		defaultName: DefaultName,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	return s
}

// Submit records score under name, keeps the entries sorted by descending
// score (equal scores stay in submission order) and truncates to capacity.
// A failed read or write is returned and the stored entries are left as they
// were; the returned entry is still valid.
func (s *Store) Submit(name string, score int) (Entry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = s.defaultName
	}
	entry := Entry{Name: name, Score: max(score, 0), Date: s.now().UTC()}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		s.logger.Warn("could not read leaderboard, score not saved", "error", err)
		return entry, err
	}
	entries = append(entries, entry)
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return b.Score - a.Score
	})
	if len(entries) > s.capacity {
		entries = entries[:s.capacity]
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return entry, fmt.Errorf("leaderboard: encode: %w", err)
	}
	if err := s.gateway.Set(storage.KeyLeaders, string(data)); err != nil {
		s.logger.Warn("could not save leaderboard", "error", err)
		return entry, fmt.Errorf("leaderboard: save: %w", err)
	}
	return entry, nil
}

// BestScore returns the highest stored score, or 0 when empty.
func (s *Store) BestScore() int {
	best := 0
	for _, e := range s.All() {
		best = max(best, e.Score)
	}
	return best
}

// All returns the stored entries in rank order. A missing, unreadable or
// corrupt blob yields an empty list.
func (s *Store) All() []Entry {
	entries, err := s.read()
	if err != nil {
		s.logger.Warn("could not read leaderboard", "error", err)
		return []Entry{}
	}
	return entries
}

// read loads the stored entries. Only a gateway failure is an error; a
// missing or corrupt blob reads as an empty list.
func (s *Store) read() ([]Entry, error) {
	blob, ok, err := s.gateway.Get(storage.KeyLeaders)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: load: %w", err)
	}
	if !ok {
		return []Entry{}, nil
	}

	var entries []Entry
	if err := json.Unmarshal([]byte(blob), &entries); err != nil {
		s.logger.Warn("discarding corrupt leaderboard", "error", err)
		return []Entry{}, nil
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

// Capacity returns the maximum number of entries kept.
func (s *Store) Capacity() int { return s.capacity }
